package api

import (
	"strconv"

	"nsgo/api/shards"
	"nsgo/utils/sets"

	"github.com/samber/lo"
)

// The distinguished "q" argument: a de-duplicated, insertion-ordered list of
// shard tokens. Every mutation rewrites the argument so the wire value never
// drifts from the tracked list.
type shardList struct {
	args *Args
	list []string
	seen sets.Set[string]
}

func newShardList(args *Args) *shardList {
	return &shardList{args: args, seen: sets.New[string]()}
}

// Replaces the current shard list outright.
func (s *shardList) set(tokens ...string) {
	s.list = s.list[:0]
	s.seen = sets.New[string]()
	s.add(tokens...)
}

// Unions the given tokens into the list, preserving first-seen order.
func (s *shardList) add(tokens ...string) {
	for _, t := range tokens {
		if s.seen.Has(t) {
			continue
		}

		s.seen.Append(t)
		s.list = append(s.list, t)
	}

	s.sync()
}

// Adds a single token only if it is not already present. Convenience setters
// call this to guarantee the shards their fields depend on.
func (s *shardList) require(token string) {
	s.add(token)
}

func (s *shardList) has(token string) bool {
	return s.seen.Has(token)
}

func (s *shardList) tokens() []string {
	return append([]string(nil), s.list...)
}

func (s *shardList) sync() {
	if len(s.list) == 0 {
		s.args.Remove("q")
		return
	}

	s.args.Set("q", s.list...)
}

// ---- census capability ----------------------------------------------------
//
// Census selection is shared by nation, region and world requests. Each of
// those builders exposes fluent wrappers that delegate here and require the
// "census" shard as a side effect.

func setCensusScales(r *apiRequest, scaleIDs ...int) {
	r.args.Set("scale", lo.Map(scaleIDs, func(id int, _ int) string {
		return strconv.Itoa(id)
	})...)
}

func setAllCensusScales(r *apiRequest) {
	r.args.Set("scale", shards.CENSUS_SCALE_ALL)
}

func setCensusModes(r *apiRequest, modes ...shards.CensusMode) {
	r.args.Set("mode", lo.Map(modes, func(m shards.CensusMode, _ int) string {
		return string(m)
	})...)
}

// Switches the census mode to "history" bounded by the given unix timestamps.
// History is mutually exclusive with every other census mode; the remote
// rejects mixed requests, so this overwrites any mode previously selected.
func setCensusHistory(r *apiRequest, from, to int64) {
	r.args.Set("mode", string(shards.CENSUS_MODE_HISTORY))
	r.args.Set("from", strconv.FormatInt(from, 10))
	r.args.Set("to", strconv.FormatInt(to, 10))
}
