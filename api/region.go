package api

import (
	"strconv"

	"nsgo/api/objs"
	"nsgo/api/shards"

	"github.com/samber/lo"
)

// Builder for region lookups. Obtain one via [Client.Region].
type RegionRequest struct {
	apiRequest
}

// Starts a request for the region with the given (human-readable) name.
func (c *Client) Region(name string) *RegionRequest {
	r := &RegionRequest{apiRequest: newRequest(c, scopeRegion, "region")}
	r.args.Set("region", NormalizeName(name))
	r.shards = newShardList(r.args)

	return r
}

func (r *RegionRequest) Shards(list ...shards.RegionShard) *RegionRequest {
	r.shards.set(regionTokens(list)...)
	return r
}

func (r *RegionRequest) AddShards(list ...shards.RegionShard) *RegionRequest {
	r.shards.add(regionTokens(list)...)
	return r
}

func (r *RegionRequest) GetShards() []shards.RegionShard {
	return lo.Map(r.shards.tokens(), func(t string, _ int) shards.RegionShard {
		return shards.RegionShard(t)
	})
}

// Windows the regional message board: up to limit posts, skipping offset
// newest ones, or starting from a specific post id when fromID is non-zero.
// Guarantees the messages shard.
func (r *RegionRequest) RMBWindow(limit, offset, fromID int) *RegionRequest {
	if limit > 0 {
		r.args.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		r.args.Set("offset", strconv.Itoa(offset))
	}
	if fromID > 0 {
		r.args.Set("fromid", strconv.Itoa(fromID))
	}

	r.shards.require(string(shards.REGION_MESSAGES))
	return r
}

// Selects explicit census scales. Guarantees the census shard.
func (r *RegionRequest) CensusScales(scaleIDs ...int) *RegionRequest {
	setCensusScales(&r.apiRequest, scaleIDs...)
	r.shards.require(string(shards.REGION_CENSUS))
	return r
}

// Requests every census scale at once. Guarantees the census shard.
func (r *RegionRequest) AllCensusScales() *RegionRequest {
	setAllCensusScales(&r.apiRequest)
	r.shards.require(string(shards.REGION_CENSUS))
	return r
}

// Selects census modes. Incompatible with CensusHistory. Guarantees the
// census shard.
func (r *RegionRequest) CensusModes(modes ...shards.CensusMode) *RegionRequest {
	setCensusModes(&r.apiRequest, modes...)
	r.shards.require(string(shards.REGION_CENSUS))
	return r
}

// Requests census history between the given unix timestamps. Overwrites any
// previously selected census mode. Guarantees the census shard.
func (r *RegionRequest) CensusHistory(from, to int64) *RegionRequest {
	setCensusHistory(&r.apiRequest, from, to)
	r.shards.require(string(shards.REGION_CENSUS))
	return r
}

// Sends the request, unwraps the REGION tag and decodes the requested shards.
func (r *RegionRequest) Send() (*objs.Region, error) {
	root, err := r.sendXML()
	if err != nil {
		return nil, err
	}

	return objs.DecodeRegion(root, r.GetShards())
}

func regionTokens(list []shards.RegionShard) []string {
	return lo.Map(list, func(s shards.RegionShard, _ int) string { return string(s) })
}
