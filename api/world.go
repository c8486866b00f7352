package api

import (
	"strconv"

	"nsgo/api/objs"
	"nsgo/api/shards"

	"github.com/samber/lo"
)

// Builder for world-level lookups. Obtain one via [Client.World]. The world
// resource has no identifier argument; only shards and their options.
type WorldRequest struct {
	apiRequest
}

func (c *Client) World() *WorldRequest {
	r := &WorldRequest{apiRequest: newRequest(c, scopeWorld)}
	r.shards = newShardList(r.args)

	return r
}

func (r *WorldRequest) Shards(list ...shards.WorldShard) *WorldRequest {
	r.shards.set(worldTokens(list)...)
	return r
}

func (r *WorldRequest) AddShards(list ...shards.WorldShard) *WorldRequest {
	r.shards.add(worldTokens(list)...)
	return r
}

func (r *WorldRequest) GetShards() []shards.WorldShard {
	return lo.Map(r.shards.tokens(), func(t string, _ int) shards.WorldShard {
		return shards.WorldShard(t)
	})
}

// Targets a single dispatch by id. Guarantees the dispatch shard.
func (r *WorldRequest) DispatchID(id int) *WorldRequest {
	r.args.Set("dispatchid", strconv.Itoa(id))
	r.shards.require(string(shards.WORLD_DISPATCH))
	return r
}

// Filters the dispatch list by author and/or category, sorted as requested.
// Empty filter values are skipped. Guarantees the dispatchlist shard.
func (r *WorldRequest) DispatchSearch(author string, category shards.DispatchCategory, sort shards.DispatchSort) *WorldRequest {
	if author != "" {
		r.args.Set("dispatchauthor", NormalizeName(author))
	}
	if category != "" {
		r.args.Set("dispatchcategory", string(category))
	}
	if sort != "" {
		r.args.Set("dispatchsort", string(sort))
	}

	r.shards.require(string(shards.WORLD_DISPATCH_LIST))
	return r
}

// Lists the regions carrying all of the given tags; prefix a tag with "-" to
// exclude it instead. Guarantees the regionsbytag shard.
func (r *WorldRequest) RegionsByTag(tags ...string) *WorldRequest {
	r.args.Set("tags", tags...)
	r.shards.require(string(shards.WORLD_REGIONS_BY_TAG))
	return r
}

// Restricts the happenings feed to events of the given kinds.
// Guarantees the happenings shard.
func (r *WorldRequest) HappeningsFilter(filters ...shards.HappeningsFilter) *WorldRequest {
	r.args.Set("filter", lo.Map(filters, func(f shards.HappeningsFilter, _ int) string {
		return string(f)
	})...)
	r.shards.require(string(shards.WORLD_HAPPENINGS))
	return r
}

// Restricts the happenings feed to the given nations ("nation.NAME") or
// regions ("region.NAME"). Guarantees the happenings shard.
func (r *WorldRequest) HappeningsView(view string) *WorldRequest {
	r.args.Set("view", view)
	r.shards.require(string(shards.WORLD_HAPPENINGS))
	return r
}

// Windows the happenings feed by event id and count. Zero values are skipped.
// Guarantees the happenings shard.
func (r *WorldRequest) HappeningsWindow(sinceID, beforeID, limit int) *WorldRequest {
	if sinceID > 0 {
		r.args.Set("sinceid", strconv.Itoa(sinceID))
	}
	if beforeID > 0 {
		r.args.Set("beforeid", strconv.Itoa(beforeID))
	}
	if limit > 0 {
		r.args.Set("limit", strconv.Itoa(limit))
	}

	r.shards.require(string(shards.WORLD_HAPPENINGS))
	return r
}

// Windows the happenings feed by unix timestamps. Zero values are skipped.
// Guarantees the happenings shard.
func (r *WorldRequest) HappeningsTimeWindow(sinceTime, beforeTime int64) *WorldRequest {
	if sinceTime > 0 {
		r.args.Set("sincetime", strconv.FormatInt(sinceTime, 10))
	}
	if beforeTime > 0 {
		r.args.Set("beforetime", strconv.FormatInt(beforeTime, 10))
	}

	r.shards.require(string(shards.WORLD_HAPPENINGS))
	return r
}

// Targets a specific poll by id. Guarantees the poll shard.
func (r *WorldRequest) PollID(id int) *WorldRequest {
	r.args.Set("pollid", strconv.Itoa(id))
	r.shards.require(string(shards.WORLD_POLL))
	return r
}

// Selects the census scale the censusname/censustitle/censusdesc/censusscale
// shards describe, and the scales of the census shard itself.
func (r *WorldRequest) CensusScales(scaleIDs ...int) *WorldRequest {
	setCensusScales(&r.apiRequest, scaleIDs...)
	return r
}

func (r *WorldRequest) CensusModes(modes ...shards.CensusMode) *WorldRequest {
	setCensusModes(&r.apiRequest, modes...)
	return r
}

// Requests world census history between the given unix timestamps.
// Overwrites any previously selected census mode.
func (r *WorldRequest) CensusHistory(from, to int64) *WorldRequest {
	setCensusHistory(&r.apiRequest, from, to)
	return r
}

// Sends the request, unwraps the WORLD tag and decodes the requested shards.
func (r *WorldRequest) Send() (*objs.World, error) {
	root, err := r.sendXML()
	if err != nil {
		return nil, err
	}

	return objs.DecodeWorld(root, r.GetShards())
}

func worldTokens(list []shards.WorldShard) []string {
	return lo.Map(list, func(s shards.WorldShard, _ int) string { return string(s) })
}
