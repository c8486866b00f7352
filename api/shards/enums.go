package shards

import "nsgo/utils/sets"

// One of the two voting bodies whose proposals/resolutions can be queried.
type Council int

const (
	COUNCIL_GENERAL_ASSEMBLY Council = 1
	COUNCIL_SECURITY_COUNCIL Council = 2
)

type CensusMode string

const (
	CENSUS_MODE_SCORE  CensusMode = "score"
	CENSUS_MODE_RANK   CensusMode = "rank"
	CENSUS_MODE_RRANK  CensusMode = "rrank"
	CENSUS_MODE_PRANK  CensusMode = "prank"
	CENSUS_MODE_PRRANK CensusMode = "prrank"

	// Mutually exclusive with every other mode. Set via the history window
	// setter on a census-capable request, never mixed in manually.
	CENSUS_MODE_HISTORY CensusMode = "history"
)

// Sentinel for requesting every census scale at once.
const CENSUS_SCALE_ALL = "all"

type DispatchCategory string

const (
	DISPATCH_CATEGORY_FACTBOOK DispatchCategory = "Factbook"
	DISPATCH_CATEGORY_BULLETIN DispatchCategory = "Bulletin"
	DISPATCH_CATEGORY_ACCOUNT  DispatchCategory = "Account"
	DISPATCH_CATEGORY_META     DispatchCategory = "Meta"
)

// Numeric subcategory codes the remote expects alongside a DispatchCategory.
// The hundreds digit matches the category (1xx Factbook, 3xx Account,
// 5xx Bulletin, 8xx Meta).
type DispatchSubcategory int

const (
	DISPATCH_SUBCATEGORY_OVERVIEW      DispatchSubcategory = 100
	DISPATCH_SUBCATEGORY_HISTORY       DispatchSubcategory = 101
	DISPATCH_SUBCATEGORY_GEOGRAPHY     DispatchSubcategory = 102
	DISPATCH_SUBCATEGORY_CULTURE       DispatchSubcategory = 103
	DISPATCH_SUBCATEGORY_POLITICS      DispatchSubcategory = 104
	DISPATCH_SUBCATEGORY_LEGISLATION   DispatchSubcategory = 105
	DISPATCH_SUBCATEGORY_RELIGION      DispatchSubcategory = 106
	DISPATCH_SUBCATEGORY_MILITARY      DispatchSubcategory = 107
	DISPATCH_SUBCATEGORY_ECONOMY       DispatchSubcategory = 108
	DISPATCH_SUBCATEGORY_INTERNATIONAL DispatchSubcategory = 109
	DISPATCH_SUBCATEGORY_TRIVIA        DispatchSubcategory = 110
	DISPATCH_SUBCATEGORY_MISCELLANEOUS DispatchSubcategory = 111

	DISPATCH_SUBCATEGORY_ACCOUNT_MILITARY  DispatchSubcategory = 305
	DISPATCH_SUBCATEGORY_ACCOUNT_TRADE     DispatchSubcategory = 315
	DISPATCH_SUBCATEGORY_ACCOUNT_SPORT     DispatchSubcategory = 325
	DISPATCH_SUBCATEGORY_ACCOUNT_DRAMA     DispatchSubcategory = 335
	DISPATCH_SUBCATEGORY_ACCOUNT_DIPLOMACY DispatchSubcategory = 345
	DISPATCH_SUBCATEGORY_ACCOUNT_SCIENCE   DispatchSubcategory = 355
	DISPATCH_SUBCATEGORY_ACCOUNT_CULTURE   DispatchSubcategory = 365
	DISPATCH_SUBCATEGORY_ACCOUNT_OTHER     DispatchSubcategory = 375

	DISPATCH_SUBCATEGORY_BULLETIN_POLICY   DispatchSubcategory = 505
	DISPATCH_SUBCATEGORY_BULLETIN_NEWS     DispatchSubcategory = 515
	DISPATCH_SUBCATEGORY_BULLETIN_OPINION  DispatchSubcategory = 525
	DISPATCH_SUBCATEGORY_BULLETIN_CAMPAIGN DispatchSubcategory = 535

	DISPATCH_SUBCATEGORY_META_GAMEPLAY  DispatchSubcategory = 835
	DISPATCH_SUBCATEGORY_META_REFERENCE DispatchSubcategory = 845
)

// A nation's declared plan for the annual zombie outbreak, as reported by the
// zombie shard.
type ZombieAction string

const (
	ZOMBIE_ACTION_RESEARCH    ZombieAction = "research"
	ZOMBIE_ACTION_EXTERMINATE ZombieAction = "exterminate"
	ZOMBIE_ACTION_EXPORT      ZombieAction = "export"
)

type DispatchSort string

const (
	DISPATCH_SORT_NEW  DispatchSort = "new"
	DISPATCH_SORT_BEST DispatchSort = "best"
)

type HappeningsFilter string

const (
	HAPPENINGS_FILTER_LAW      HappeningsFilter = "law"
	HAPPENINGS_FILTER_CHANGE   HappeningsFilter = "change"
	HAPPENINGS_FILTER_DISPATCH HappeningsFilter = "dispatch"
	HAPPENINGS_FILTER_RMB      HappeningsFilter = "rmb"
	HAPPENINGS_FILTER_EMBASSY  HappeningsFilter = "embassy"
	HAPPENINGS_FILTER_EJECT    HappeningsFilter = "eject"
	HAPPENINGS_FILTER_ADMIN    HappeningsFilter = "admin"
	HAPPENINGS_FILTER_MOVE     HappeningsFilter = "move"
	HAPPENINGS_FILTER_FOUNDING HappeningsFilter = "founding"
	HAPPENINGS_FILTER_CEASE    HappeningsFilter = "cease"
	HAPPENINGS_FILTER_VOTE     HappeningsFilter = "vote"
	HAPPENINGS_FILTER_RESO     HappeningsFilter = "resolution"
	HAPPENINGS_FILTER_MEMBER   HappeningsFilter = "member"
	HAPPENINGS_FILTER_ENDO     HappeningsFilter = "endo"
)

// Shards that cannot be requested anonymously. The client scans a nation
// request's shard list against this set before it ever touches the network.
var PRIVATE_NATION_SHARDS = sets.FromSlice([]NationShard{
	NATION_DOSSIER,
	NATION_ISSUES,
	NATION_ISSUE_SUMMARIES,
	NATION_NEXT_ISSUE,
	NATION_NEXT_ISSUE_TIME,
	NATION_NOTICES,
	NATION_PACKS,
	NATION_PING,
	NATION_RDOSSIER,
	NATION_UNREAD,
})

// Vote-detail WA shards that are useless unless the resolution currently at
// vote is also requested. The WA request builder adds WA_RESOLUTION for you
// whenever one of these appears.
var WA_VOTE_DETAIL_SHARDS = sets.FromSlice([]WAShard{
	WA_VOTE_TRACK,
	WA_VOTERS,
	WA_DEL_VOTES,
	WA_DEL_LOG,
})
