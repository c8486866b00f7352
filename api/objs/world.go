package objs

import (
	"fmt"

	"nsgo/api/shards"
	"nsgo/utils/sets"

	"github.com/beevik/etree"
)

// Immutable snapshot of world-level data, shard-gated like Nation.
type World struct {
	Census          []CensusRecord
	CensusID        *int
	CensusDesc      *string
	CensusName      *string
	CensusScaleUnit *string
	CensusTitle     *string
	Dispatch        *Dispatch
	DispatchList    []DispatchOverview
	FeaturedRegion  *string
	Happenings      []Happening
	LastEventID     *int
	Nations         []string
	NewNations      []string
	NumNations      *int
	NumRegions      *int
	Poll            *Poll
	Regions         []string
	RegionsByTag    []string
	TVTotal         *int
}

// Like nations, the world resource has a shared-tag pair: regions and
// regionsbytag both answer with a REGIONS tag and disambiguate by index.
type worldDecodeCtx struct {
	requested sets.Set[shards.WorldShard]
}

type worldDecoder func(w *World, root *etree.Element, ctx worldDecodeCtx) error

// DecodeWorld converts a parsed WORLD subtree into a typed snapshot.
func DecodeWorld(root *etree.Element, requested []shards.WorldShard) (*World, error) {
	w := &World{}
	ctx := worldDecodeCtx{requested: sets.FromSlice(requested)}

	for _, sh := range requested {
		dec, ok := worldDecoders[sh]
		if !ok {
			continue
		}

		if err := dec(w, root, ctx); err != nil {
			return nil, fmt.Errorf("failed to decode world shard %q: %w", sh, err)
		}
	}

	return w, nil
}

var worldDecoders = map[shards.WorldShard]worldDecoder{
	shards.WORLD_CENSUS: func(w *World, root *etree.Element, _ worldDecodeCtx) (err error) {
		w.Census, err = decodeCensus(root.SelectElement("CENSUS"))
		return
	},
	shards.WORLD_CENSUS_ID: func(w *World, root *etree.Element, _ worldDecodeCtx) (err error) {
		w.CensusID, err = intOf(root, "CENSUSID")
		return
	},
	shards.WORLD_CENSUS_DESC: func(w *World, root *etree.Element, _ worldDecodeCtx) error {
		w.CensusDesc = strOf(root, "CENSUSDESC")
		return nil
	},
	shards.WORLD_CENSUS_NAME: func(w *World, root *etree.Element, _ worldDecodeCtx) error {
		w.CensusName = strOf(root, "CENSUSNAME")
		return nil
	},
	shards.WORLD_CENSUS_SCALE: func(w *World, root *etree.Element, _ worldDecodeCtx) error {
		w.CensusScaleUnit = strOf(root, "CENSUSSCALE")
		return nil
	},
	shards.WORLD_CENSUS_TITLE: func(w *World, root *etree.Element, _ worldDecodeCtx) error {
		w.CensusTitle = strOf(root, "CENSUSTITLE")
		return nil
	},
	shards.WORLD_DISPATCH: func(w *World, root *etree.Element, _ worldDecodeCtx) (err error) {
		w.Dispatch, err = decodeDispatch(root.SelectElement("DISPATCH"))
		return
	},
	shards.WORLD_DISPATCH_LIST: func(w *World, root *etree.Element, _ worldDecodeCtx) (err error) {
		w.DispatchList, err = decodeDispatchList(root.SelectElement("DISPATCHLIST"))
		return
	},
	shards.WORLD_FEATURED_REGION: func(w *World, root *etree.Element, _ worldDecodeCtx) error {
		w.FeaturedRegion = strOf(root, "FEATUREDREGION")
		return nil
	},
	shards.WORLD_HAPPENINGS: func(w *World, root *etree.Element, _ worldDecodeCtx) (err error) {
		w.Happenings, err = decodeHappenings(root.SelectElement("HAPPENINGS"))
		return
	},
	shards.WORLD_LAST_EVENT_ID: func(w *World, root *etree.Element, _ worldDecodeCtx) (err error) {
		w.LastEventID, err = intOf(root, "LASTEVENTID")
		return
	},
	shards.WORLD_NATIONS: func(w *World, root *etree.Element, _ worldDecodeCtx) error {
		w.Nations = delimitedOf(root, "NATIONS", ",")
		return nil
	},
	shards.WORLD_NEW_NATIONS: func(w *World, root *etree.Element, _ worldDecodeCtx) error {
		w.NewNations = delimitedOf(root, "NEWNATIONS", ",")
		return nil
	},
	shards.WORLD_NUM_NATIONS: func(w *World, root *etree.Element, _ worldDecodeCtx) (err error) {
		w.NumNations, err = intOf(root, "NUMNATIONS")
		return
	},
	shards.WORLD_NUM_REGIONS: func(w *World, root *etree.Element, _ worldDecodeCtx) (err error) {
		w.NumRegions, err = intOf(root, "NUMREGIONS")
		return
	},
	shards.WORLD_POLL: func(w *World, root *etree.Element, _ worldDecodeCtx) (err error) {
		w.Poll, err = decodePoll(root.SelectElement("POLL"))
		return
	},
	shards.WORLD_REGIONS: func(w *World, root *etree.Element, _ worldDecodeCtx) error {
		if root.SelectElement("REGIONS") != nil {
			w.Regions = splitNonEmpty(textAt(root, "REGIONS", 0), ",")
		}
		return nil
	},
	shards.WORLD_REGIONS_BY_TAG: func(w *World, root *etree.Element, ctx worldDecodeCtx) error {
		idx := 0
		if ctx.requested.Has(shards.WORLD_REGIONS) {
			idx = 1
		}

		if len(root.SelectElements("REGIONS")) > idx {
			w.RegionsByTag = splitNonEmpty(textAt(root, "REGIONS", idx), ",")
		}
		return nil
	},
	shards.WORLD_TV_TOTAL: func(w *World, root *etree.Element, _ worldDecodeCtx) (err error) {
		w.TVTotal, err = intOf(root, "TVTOTAL")
		return
	},
}
