package api

import (
	"nsgo/api/objs"
	"nsgo/api/shards"

	"github.com/samber/lo"
)

// Builder for nation lookups. Obtain one via [Client.Nation], chain shard and
// option setters, then call Send.
type NationRequest struct {
	apiRequest
}

// Starts a request for the nation with the given (human-readable) name.
func (c *Client) Nation(name string) *NationRequest {
	r := &NationRequest{apiRequest: newRequest(c, scopeNation, "nation")}
	r.args.Set("nation", NormalizeName(name))
	r.shards = newShardList(r.args)

	return r
}

// Replaces the shard list outright.
func (r *NationRequest) Shards(list ...shards.NationShard) *NationRequest {
	r.shards.set(nationTokens(list)...)
	return r
}

// Unions the given shards into the list, preserving first-seen order.
func (r *NationRequest) AddShards(list ...shards.NationShard) *NationRequest {
	r.shards.add(nationTokens(list)...)
	return r
}

// Current shard list in insertion order.
func (r *NationRequest) GetShards() []shards.NationShard {
	return lo.Map(r.shards.tokens(), func(t string, _ int) shards.NationShard {
		return shards.NationShard(t)
	})
}

// Attaches the credential used to authenticate this request, enabling the
// private shards. Overrides the client's default credential.
func (r *NationRequest) Credential(cred *Credential) *NationRequest {
	r.cred = cred
	return r
}

// Selects explicit census scales. Guarantees the census shard.
func (r *NationRequest) CensusScales(scaleIDs ...int) *NationRequest {
	setCensusScales(&r.apiRequest, scaleIDs...)
	r.shards.require(string(shards.NATION_CENSUS))
	return r
}

// Requests every census scale at once. Guarantees the census shard.
func (r *NationRequest) AllCensusScales() *NationRequest {
	setAllCensusScales(&r.apiRequest)
	r.shards.require(string(shards.NATION_CENSUS))
	return r
}

// Selects census modes. Incompatible with CensusHistory. Guarantees the
// census shard.
func (r *NationRequest) CensusModes(modes ...shards.CensusMode) *NationRequest {
	setCensusModes(&r.apiRequest, modes...)
	r.shards.require(string(shards.NATION_CENSUS))
	return r
}

// Requests census history between the given unix timestamps. Overwrites any
// previously selected census mode; history cannot be combined with other
// modes. Guarantees the census shard.
func (r *NationRequest) CensusHistory(from, to int64) *NationRequest {
	setCensusHistory(&r.apiRequest, from, to)
	r.shards.require(string(shards.NATION_CENSUS))
	return r
}

// Sends the request, unwraps the NATION tag and decodes the shards that were
// requested into a typed snapshot.
func (r *NationRequest) Send() (*objs.Nation, error) {
	root, err := r.sendXML()
	if err != nil {
		return nil, err
	}

	return objs.DecodeNation(root, r.GetShards())
}

func nationTokens(list []shards.NationShard) []string {
	return lo.Map(list, func(s shards.NationShard, _ int) string { return string(s) })
}
