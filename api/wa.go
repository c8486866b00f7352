package api

import (
	"strconv"

	"nsgo/api/objs"
	"nsgo/api/shards"

	"github.com/samber/lo"
)

// Builder for World Assembly council lookups. Obtain one via [Client.WA].
type WARequest struct {
	apiRequest
}

func (c *Client) WA(council shards.Council) *WARequest {
	r := &WARequest{apiRequest: newRequest(c, scopeWA, "wa")}
	r.args.Set("wa", strconv.Itoa(int(council)))
	r.shards = newShardList(r.args)

	return r
}

// Replaces the shard list. Vote-detail shards (votetrack, voters, delvotes,
// dellog) silently guarantee the resolution shard; without it the remote
// cannot populate them.
func (r *WARequest) Shards(list ...shards.WAShard) *WARequest {
	r.shards.set(waTokens(list)...)
	r.impliedShards()
	return r
}

func (r *WARequest) AddShards(list ...shards.WAShard) *WARequest {
	r.shards.add(waTokens(list)...)
	r.impliedShards()
	return r
}

func (r *WARequest) GetShards() []shards.WAShard {
	return lo.Map(r.shards.tokens(), func(t string, _ int) shards.WAShard {
		return shards.WAShard(t)
	})
}

// Targets a passed resolution by id instead of the one currently at vote.
// Guarantees the resolution shard.
func (r *WARequest) ResolutionID(id int) *WARequest {
	r.args.Set("id", strconv.Itoa(id))
	r.shards.require(string(shards.WA_RESOLUTION))
	return r
}

func (r *WARequest) impliedShards() {
	for _, token := range r.shards.tokens() {
		if shards.WA_VOTE_DETAIL_SHARDS.Has(shards.WAShard(token)) {
			r.shards.require(string(shards.WA_RESOLUTION))
			return
		}
	}
}

// Sends the request, unwraps the WA tag and decodes the requested shards.
func (r *WARequest) Send() (*objs.WorldAssembly, error) {
	root, err := r.sendXML()
	if err != nil {
		return nil, err
	}

	return objs.DecodeWorldAssembly(root, r.GetShards())
}

func waTokens(list []shards.WAShard) []string {
	return lo.Map(list, func(s shards.WAShard, _ int) string { return string(s) })
}
