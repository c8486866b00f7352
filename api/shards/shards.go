// =========================================================================
// THIS PACKAGE IS THE REGISTRY OF EVERY SHARD AND ENUM TOKEN THE REMOTE
// API UNDERSTANDS. PURE CONSTANTS, NO BEHAVIOUR.
//
// REQUEST BUILDERS AND RESPONSE DECODERS BOTH KEY OFF THESE IDENTIFIERS,
// WHICH IS WHAT KEEPS A BUILDER'S SHARD LIST ALIGNED WITH THE FIELDS ITS
// DECODER KNOWS HOW TO POPULATE.
// =========================================================================

package shards

// A shard is a named field selector sent in the "q" argument of a request.
// The constant value is the exact wire token.

type NationShard string

const (
	NATION_ADMIRABLE       NationShard = "admirable"
	NATION_ANIMAL          NationShard = "animal"
	NATION_ANIMAL_TRAIT    NationShard = "animaltrait"
	NATION_ANSWERED        NationShard = "answered"
	NATION_BANNERS         NationShard = "banners"
	NATION_CAPITAL         NationShard = "capital"
	NATION_CATEGORY        NationShard = "category"
	NATION_CENSUS          NationShard = "census"
	NATION_CURRENCY        NationShard = "currency"
	NATION_CUSTOM_CAPITAL  NationShard = "customcapital"
	NATION_CUSTOM_LEADER   NationShard = "customleader"
	NATION_CUSTOM_RELIGION NationShard = "customreligion"
	NATION_DBID            NationShard = "dbid"
	NATION_DEATHS          NationShard = "deaths"
	NATION_DEMONYM         NationShard = "demonym"
	NATION_DEMONYM2        NationShard = "demonym2"
	NATION_DEMONYM2_PLURAL NationShard = "demonym2plural"
	NATION_DISPATCHES      NationShard = "dispatches"
	NATION_DISPATCH_LIST   NationShard = "dispatchlist"
	NATION_ENDORSEMENTS    NationShard = "endorsements"
	NATION_FLAG            NationShard = "flag"
	NATION_FOUNDED         NationShard = "founded"
	NATION_FOUNDED_TIME    NationShard = "foundedtime"
	NATION_FREEDOM         NationShard = "freedom"
	NATION_FULL_NAME       NationShard = "fullname"
	NATION_GDP             NationShard = "gdp"
	NATION_GOVT            NationShard = "govt"
	NATION_HAPPENINGS      NationShard = "happenings"
	NATION_INCOME          NationShard = "income"
	NATION_INFLUENCE       NationShard = "influence"
	NATION_LAST_ACTIVITY   NationShard = "lastactivity"
	NATION_LAST_LOGIN      NationShard = "lastlogin"
	NATION_LEADER          NationShard = "leader"
	NATION_LEGISLATION     NationShard = "legislation"
	NATION_MAJOR_INDUSTRY  NationShard = "majorindustry"
	NATION_MOTTO           NationShard = "motto"
	NATION_NAME            NationShard = "name"
	NATION_NOTABLE         NationShard = "notable"
	NATION_NOTABLES        NationShard = "notables"
	NATION_POLICIES        NationShard = "policies"
	NATION_POOREST         NationShard = "poorest"
	NATION_POPULATION      NationShard = "population"
	NATION_PUBLIC_SECTOR   NationShard = "publicsector"
	NATION_REGION          NationShard = "region"
	NATION_RELIGION        NationShard = "religion"
	NATION_RICHEST         NationShard = "richest"
	NATION_SENSIBILITIES   NationShard = "sensibilities"
	NATION_TAX             NationShard = "tax"
	NATION_TYPE            NationShard = "type"
	NATION_WA_BADGES       NationShard = "wabadges"
	NATION_WA_STATUS       NationShard = "wa"
	NATION_ZOMBIE          NationShard = "zombie"

	// Private shards. Requesting any of these without a credential on the
	// request (or a default credential on the client) fails before any
	// network activity.
	NATION_DOSSIER         NationShard = "dossier"
	NATION_ISSUES          NationShard = "issues"
	NATION_ISSUE_SUMMARIES NationShard = "issuesummary"
	NATION_NEXT_ISSUE      NationShard = "nextissue"
	NATION_NEXT_ISSUE_TIME NationShard = "nextissuetime"
	NATION_NOTICES         NationShard = "notices"
	NATION_PACKS           NationShard = "packs"
	NATION_PING            NationShard = "ping"
	NATION_RDOSSIER        NationShard = "rdossier"
	NATION_UNREAD          NationShard = "unread"
)

type RegionShard string

const (
	REGION_BANNER         RegionShard = "banner"
	REGION_CENSUS         RegionShard = "census"
	REGION_DELEGATE       RegionShard = "delegate"
	REGION_DELEGATE_AUTH  RegionShard = "delegateauth"
	REGION_DELEGATE_VOTES RegionShard = "delegatevotes"
	REGION_DISPATCHES     RegionShard = "dispatches"
	REGION_EMBASSIES      RegionShard = "embassies"
	REGION_FACTBOOK       RegionShard = "factbook"
	REGION_FLAG           RegionShard = "flag"
	REGION_FOUNDED        RegionShard = "founded"
	REGION_FOUNDED_TIME   RegionShard = "foundedtime"
	REGION_FOUNDER        RegionShard = "founder"
	REGION_HAPPENINGS     RegionShard = "happenings"
	REGION_HISTORY        RegionShard = "history"
	REGION_LAST_UPDATE    RegionShard = "lastupdate"
	REGION_MESSAGES       RegionShard = "messages"
	REGION_MOST_LIKED     RegionShard = "mostliked"
	REGION_MOST_LIKES     RegionShard = "mostlikes"
	REGION_MOST_POSTS     RegionShard = "mostposts"
	REGION_NAME           RegionShard = "name"
	REGION_NATIONS        RegionShard = "nations"
	REGION_NUM_NATIONS    RegionShard = "numnations"
	REGION_OFFICERS       RegionShard = "officers"
	REGION_POLL           RegionShard = "poll"
	REGION_POWER          RegionShard = "power"
	REGION_TAGS           RegionShard = "tags"
	REGION_ZOMBIE         RegionShard = "zombie"
)

type WorldShard string

const (
	WORLD_CENSUS          WorldShard = "census"
	WORLD_CENSUS_ID       WorldShard = "censusid"
	WORLD_CENSUS_DESC     WorldShard = "censusdesc"
	WORLD_CENSUS_NAME     WorldShard = "censusname"
	WORLD_CENSUS_SCALE    WorldShard = "censusscale"
	WORLD_CENSUS_TITLE    WorldShard = "censustitle"
	WORLD_DISPATCH        WorldShard = "dispatch"
	WORLD_DISPATCH_LIST   WorldShard = "dispatchlist"
	WORLD_FEATURED_REGION WorldShard = "featuredregion"
	WORLD_HAPPENINGS      WorldShard = "happenings"
	WORLD_LAST_EVENT_ID   WorldShard = "lasteventid"
	WORLD_NATIONS         WorldShard = "nations"
	WORLD_NEW_NATIONS     WorldShard = "newnations"
	WORLD_NUM_NATIONS     WorldShard = "numnations"
	WORLD_NUM_REGIONS     WorldShard = "numregions"
	WORLD_POLL            WorldShard = "poll"
	WORLD_REGIONS         WorldShard = "regions"
	WORLD_REGIONS_BY_TAG  WorldShard = "regionsbytag"
	WORLD_TV_TOTAL        WorldShard = "tvtotal"
)

type WAShard string

const (
	WA_DELEGATES       WAShard = "delegates"
	WA_DEL_LOG         WAShard = "dellog"
	WA_DEL_VOTES       WAShard = "delvotes"
	WA_HAPPENINGS      WAShard = "happenings"
	WA_LAST_RESOLUTION WAShard = "lastresolution"
	WA_MEMBERS         WAShard = "members"
	WA_NUM_DELEGATES   WAShard = "numdelegates"
	WA_NUM_NATIONS     WAShard = "numnations"
	WA_PROPOSALS       WAShard = "proposals"
	WA_RESOLUTION      WAShard = "resolution"
	WA_VOTERS          WAShard = "voters"
	WA_VOTE_TRACK      WAShard = "votetrack"
)
