package objs

import (
	"fmt"

	"nsgo/api/shards"
	"nsgo/utils/sets"

	"github.com/beevik/etree"
)

// Immutable snapshot of a nation, keyed by the shards that were on the
// originating request. A field is populated if and only if its shard was
// requested; everything else stays nil.
type Nation struct {
	Admirable      *string
	Animal         *string
	AnimalTrait    *string
	IssuesAnswered *int
	Banners        []string
	Capital        *string
	Category       *string
	Census         []CensusRecord
	Currency       *string
	CustomCapital  *string
	CustomLeader   *string
	CustomReligion *string
	DBID           *int
	Deaths         []DeathCause
	Demonym        *string
	Demonym2       *string
	Demonym2Plural *string
	DispatchCount  *int
	DispatchList   []DispatchOverview
	Endorsements   []string
	Flag           *string
	Founded        *string
	FoundedTime    *int64
	Freedom        *FreedomDescriptors
	FullName       *string
	GDP            *int64
	Govt           *GovtSpending
	Happenings     []Happening
	Income         *int
	Influence      *string
	LastActivity   *string
	LastLogin      *int64
	Leader         *string
	Legislation    []string
	MajorIndustry  *string
	Motto          *string
	Name           *string
	Notable        *string
	Notables       []string
	Policies       []Policy
	Poorest        *int
	Population     *int
	PublicSector   *float64
	Region         *string
	Religion       *string
	Richest        *int
	Sensibilities  *string
	Tax            *float64
	Type           *string
	WABadges       []WABadge
	WAStatus       *string
	Zombie         *ZombieState

	// Private shards. Only ever populated on authenticated requests.
	Dossier        []string
	Issues         []Issue
	IssueSummaries []IssueSummary
	NextIssue      *string
	NextIssueTime  *int64
	Notices        []Notice
	Packs          *int
	Ping           *bool
	RegionDossier  []string
	Unread         *UnreadCounts
}

type DeathCause struct {
	Cause   string
	Percent float64
}

type FreedomDescriptors struct {
	CivilRights      string
	Economy          string
	PoliticalFreedom string
}

// Government expenditure, percent of budget per sector.
type GovtSpending struct {
	Administration   float64
	Defence          float64
	Education        float64
	Environment      float64
	Healthcare       float64
	Commerce         float64
	InternationalAid float64
	LawAndOrder      float64
	PublicTransport  float64
	SocialEquality   float64
	Spirituality     float64
	Welfare          float64
}

type WABadge struct {
	Type       string
	Resolution int
}

type ZombieState struct {
	Action    shards.ZombieAction
	Survivors int
	Zombies   int
	Dead      int
}

// A pending issue, as delivered by the private issues shard.
type Issue struct {
	ID      int
	Title   string
	Text    string
	Author  string
	Editor  string
	Options []IssueOption
}

type IssueOption struct {
	ID   int
	Text string
}

type IssueSummary struct {
	ID    int
	Title string
}

type Notice struct {
	Title     string
	Text      string
	Type      string
	URL       string
	Timestamp int64
	Who       string
	New       bool
}

type UnreadCounts struct {
	Issues    int
	Telegrams int
	Notices   int
	RMB       int
	WA        int
	News      int
}

// Decode context: the full requested-shard set, needed by the shards that
// share a wire tag and disambiguate by index.
type nationDecodeCtx struct {
	requested sets.Set[shards.NationShard]
}

type nationDecoder func(n *Nation, root *etree.Element, ctx nationDecodeCtx) error

// DecodeNation converts a parsed NATION subtree into a typed snapshot,
// populating one field per requested shard via the table below.
func DecodeNation(root *etree.Element, requested []shards.NationShard) (*Nation, error) {
	n := &Nation{}
	ctx := nationDecodeCtx{requested: sets.FromSlice(requested)}

	for _, sh := range requested {
		dec, ok := nationDecoders[sh]
		if !ok {
			continue
		}

		if err := dec(n, root, ctx); err != nil {
			return nil, fmt.Errorf("failed to decode nation shard %q: %w", sh, err)
		}
	}

	return n, nil
}

var nationDecoders = map[shards.NationShard]nationDecoder{
	shards.NATION_ADMIRABLE: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Admirable = strOf(root, "ADMIRABLE")
		return nil
	},
	shards.NATION_ANIMAL: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Animal = strOf(root, "ANIMAL")
		return nil
	},
	shards.NATION_ANIMAL_TRAIT: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.AnimalTrait = strOf(root, "ANIMALTRAIT")
		return nil
	},
	shards.NATION_ANSWERED: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.IssuesAnswered, err = intOf(root, "ISSUES_ANSWERED")
		return
	},
	shards.NATION_BANNERS: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Banners = childTexts(root, "BANNERS", "BANNER")
		return nil
	},
	// CAPITAL, LEADER and RELIGION each share their tag with the customised
	// override shard. The base value always occupies index 0; the override
	// shifts to index 1 whenever the base shard was requested alongside it.
	shards.NATION_CAPITAL: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		if root.SelectElement("CAPITAL") != nil {
			v := textAt(root, "CAPITAL", 0)
			n.Capital = &v
		}
		return nil
	},
	shards.NATION_CUSTOM_CAPITAL: func(n *Nation, root *etree.Element, ctx nationDecodeCtx) error {
		n.CustomCapital = aliasedText(root, "CAPITAL", ctx.requested.Has(shards.NATION_CAPITAL))
		return nil
	},
	shards.NATION_CATEGORY: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Category = strOf(root, "CATEGORY")
		return nil
	},
	shards.NATION_CENSUS: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.Census, err = decodeCensus(root.SelectElement("CENSUS"))
		return
	},
	shards.NATION_CURRENCY: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Currency = strOf(root, "CURRENCY")
		return nil
	},
	shards.NATION_CUSTOM_LEADER: func(n *Nation, root *etree.Element, ctx nationDecodeCtx) error {
		n.CustomLeader = aliasedText(root, "LEADER", ctx.requested.Has(shards.NATION_LEADER))
		return nil
	},
	shards.NATION_CUSTOM_RELIGION: func(n *Nation, root *etree.Element, ctx nationDecodeCtx) error {
		n.CustomReligion = aliasedText(root, "RELIGION", ctx.requested.Has(shards.NATION_RELIGION))
		return nil
	},
	shards.NATION_DBID: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.DBID, err = intOf(root, "DBID")
		return
	},
	shards.NATION_DEATHS: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		deaths := root.SelectElement("DEATHS")
		if deaths == nil {
			return nil
		}

		for _, cause := range deaths.SelectElements("CAUSE") {
			pct, err := parseFloat(cause.Text())
			if err != nil {
				return err
			}

			n.Deaths = append(n.Deaths, DeathCause{Cause: attr(cause, "type"), Percent: pct})
		}
		return nil
	},
	shards.NATION_DEMONYM: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Demonym = strOf(root, "DEMONYM")
		return nil
	},
	shards.NATION_DEMONYM2: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Demonym2 = strOf(root, "DEMONYM2")
		return nil
	},
	shards.NATION_DEMONYM2_PLURAL: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Demonym2Plural = strOf(root, "DEMONYM2PLURAL")
		return nil
	},
	shards.NATION_DISPATCHES: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.DispatchCount, err = intOf(root, "DISPATCHES")
		return
	},
	shards.NATION_DISPATCH_LIST: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.DispatchList, err = decodeDispatchList(root.SelectElement("DISPATCHLIST"))
		return
	},
	shards.NATION_ENDORSEMENTS: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Endorsements = delimitedOf(root, "ENDORSEMENTS", ",")
		return nil
	},
	shards.NATION_FLAG: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Flag = strOf(root, "FLAG")
		return nil
	},
	shards.NATION_FOUNDED: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Founded = strOf(root, "FOUNDED")
		return nil
	},
	shards.NATION_FOUNDED_TIME: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.FoundedTime, err = int64Of(root, "FOUNDEDTIME")
		return
	},
	shards.NATION_FREEDOM: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		freedom := root.SelectElement("FREEDOM")
		if freedom == nil {
			return nil
		}

		n.Freedom = &FreedomDescriptors{
			CivilRights:      text(freedom, "CIVILRIGHTS"),
			Economy:          text(freedom, "ECONOMY"),
			PoliticalFreedom: text(freedom, "POLITICALFREEDOM"),
		}
		return nil
	},
	shards.NATION_FULL_NAME: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.FullName = strOf(root, "FULLNAME")
		return nil
	},
	shards.NATION_GDP: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.GDP, err = int64Of(root, "GDP")
		return
	},
	shards.NATION_GOVT: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		govt := root.SelectElement("GOVT")
		if govt == nil {
			return nil
		}

		spending := &GovtSpending{}
		fields := map[string]*float64{
			"ADMINISTRATION":   &spending.Administration,
			"DEFENCE":          &spending.Defence,
			"EDUCATION":        &spending.Education,
			"ENVIRONMENT":      &spending.Environment,
			"HEALTHCARE":       &spending.Healthcare,
			"COMMERCE":         &spending.Commerce,
			"INTERNATIONALAID": &spending.InternationalAid,
			"LAWANDORDER":      &spending.LawAndOrder,
			"PUBLICTRANSPORT":  &spending.PublicTransport,
			"SOCIALEQUALITY":   &spending.SocialEquality,
			"SPIRITUALITY":     &spending.Spirituality,
			"WELFARE":          &spending.Welfare,
		}

		for tag, target := range fields {
			raw := text(govt, tag)
			if raw == "" {
				continue
			}

			v, err := parseFloat(raw)
			if err != nil {
				return err
			}
			*target = v
		}

		n.Govt = spending
		return nil
	},
	shards.NATION_HAPPENINGS: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.Happenings, err = decodeHappenings(root.SelectElement("HAPPENINGS"))
		return
	},
	shards.NATION_INCOME: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.Income, err = intOf(root, "INCOME")
		return
	},
	shards.NATION_INFLUENCE: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Influence = strOf(root, "INFLUENCE")
		return nil
	},
	shards.NATION_LAST_ACTIVITY: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.LastActivity = strOf(root, "LASTACTIVITY")
		return nil
	},
	shards.NATION_LAST_LOGIN: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.LastLogin, err = int64Of(root, "LASTLOGIN")
		return
	},
	shards.NATION_LEADER: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		if root.SelectElement("LEADER") != nil {
			v := textAt(root, "LEADER", 0)
			n.Leader = &v
		}
		return nil
	},
	shards.NATION_LEGISLATION: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Legislation = childTexts(root, "LEGISLATION", "LAW")
		return nil
	},
	shards.NATION_MAJOR_INDUSTRY: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.MajorIndustry = strOf(root, "MAJORINDUSTRY")
		return nil
	},
	shards.NATION_MOTTO: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Motto = strOf(root, "MOTTO")
		return nil
	},
	shards.NATION_NAME: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Name = strOf(root, "NAME")
		return nil
	},
	shards.NATION_NOTABLE: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Notable = strOf(root, "NOTABLE")
		return nil
	},
	shards.NATION_NOTABLES: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Notables = childTexts(root, "NOTABLES", "NOTABLE")
		return nil
	},
	shards.NATION_POLICIES: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Policies = decodePolicies(root.SelectElement("POLICIES"))
		return nil
	},
	shards.NATION_POOREST: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.Poorest, err = intOf(root, "POOREST")
		return
	},
	shards.NATION_POPULATION: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.Population, err = intOf(root, "POPULATION")
		return
	},
	shards.NATION_PUBLIC_SECTOR: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.PublicSector, err = floatOf(root, "PUBLICSECTOR")
		return
	},
	shards.NATION_REGION: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Region = strOf(root, "REGION")
		return nil
	},
	shards.NATION_RELIGION: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		if root.SelectElement("RELIGION") != nil {
			v := textAt(root, "RELIGION", 0)
			n.Religion = &v
		}
		return nil
	},
	shards.NATION_RICHEST: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.Richest, err = intOf(root, "RICHEST")
		return
	},
	shards.NATION_SENSIBILITIES: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Sensibilities = strOf(root, "SENSIBILITIES")
		return nil
	},
	shards.NATION_TAX: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.Tax, err = floatOf(root, "TAX")
		return
	},
	shards.NATION_TYPE: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Type = strOf(root, "TYPE")
		return nil
	},
	shards.NATION_WA_BADGES: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		badges := root.SelectElement("WABADGES")
		if badges == nil {
			return nil
		}

		for _, badge := range badges.SelectElements("WABADGE") {
			resolution, err := parseInt(badge.Text())
			if err != nil {
				return err
			}

			n.WABadges = append(n.WABadges, WABadge{Type: attr(badge, "type"), Resolution: resolution})
		}
		return nil
	},
	shards.NATION_WA_STATUS: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.WAStatus = strOf(root, "UNSTATUS")
		return nil
	},
	shards.NATION_ZOMBIE: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		zombie := root.SelectElement("ZOMBIE")
		if zombie == nil {
			return nil
		}

		z := &ZombieState{Action: shards.ZombieAction(text(zombie, "ZACTION"))}

		var err error
		for tag, target := range map[string]*int{
			"SURVIVORS": &z.Survivors,
			"ZOMBIES":   &z.Zombies,
			"DEAD":      &z.Dead,
		} {
			raw := text(zombie, tag)
			if raw == "" {
				continue
			}
			if *target, err = parseInt(raw); err != nil {
				return err
			}
		}

		n.Zombie = z
		return nil
	},

	// ---- private shards ----

	shards.NATION_DOSSIER: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.Dossier = childTexts(root, "DOSSIER", "NATION")
		return nil
	},
	shards.NATION_ISSUES: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		issues := root.SelectElement("ISSUES")
		if issues == nil {
			return nil
		}

		for _, el := range issues.SelectElements("ISSUE") {
			id, err := attrInt(el, "id")
			if err != nil {
				return err
			}

			issue := Issue{
				ID:     id,
				Title:  text(el, "TITLE"),
				Text:   text(el, "TEXT"),
				Author: text(el, "AUTHOR"),
				Editor: text(el, "EDITOR"),
			}

			for _, opt := range el.SelectElements("OPTION") {
				optID, err := attrInt(opt, "id")
				if err != nil {
					return err
				}

				issue.Options = append(issue.Options, IssueOption{ID: optID, Text: opt.Text()})
			}

			n.Issues = append(n.Issues, issue)
		}
		return nil
	},
	shards.NATION_ISSUE_SUMMARIES: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		issues := root.SelectElement("ISSUESUMMARY")
		if issues == nil {
			return nil
		}

		for _, el := range issues.SelectElements("ISSUE") {
			id, err := attrInt(el, "id")
			if err != nil {
				return err
			}

			n.IssueSummaries = append(n.IssueSummaries, IssueSummary{ID: id, Title: el.Text()})
		}
		return nil
	},
	shards.NATION_NEXT_ISSUE: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.NextIssue = strOf(root, "NEXTISSUE")
		return nil
	},
	shards.NATION_NEXT_ISSUE_TIME: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.NextIssueTime, err = int64Of(root, "NEXTISSUETIME")
		return
	},
	shards.NATION_NOTICES: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		notices := root.SelectElement("NOTICES")
		if notices == nil {
			return nil
		}

		for _, el := range notices.SelectElements("NOTICE") {
			notice := Notice{
				Title: text(el, "TITLE"),
				Text:  text(el, "TEXT"),
				Type:  text(el, "TYPE"),
				URL:   text(el, "URL"),
				Who:   text(el, "WHO"),
				New:   text(el, "NEW") == "1",
			}

			if raw := text(el, "TIMESTAMP"); raw != "" {
				ts, err := parseInt64(raw)
				if err != nil {
					return err
				}
				notice.Timestamp = ts
			}

			n.Notices = append(n.Notices, notice)
		}
		return nil
	},
	shards.NATION_PACKS: func(n *Nation, root *etree.Element, _ nationDecodeCtx) (err error) {
		n.Packs, err = intOf(root, "PACKS")
		return
	},
	shards.NATION_PING: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		if c := root.SelectElement("PING"); c != nil {
			v := text(root, "PING") == "1"
			n.Ping = &v
		}
		return nil
	},
	shards.NATION_RDOSSIER: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		n.RegionDossier = childTexts(root, "RDOSSIER", "REGION")
		return nil
	},
	shards.NATION_UNREAD: func(n *Nation, root *etree.Element, _ nationDecodeCtx) error {
		unread := root.SelectElement("UNREAD")
		if unread == nil {
			return nil
		}

		counts := &UnreadCounts{}

		var err error
		for tag, target := range map[string]*int{
			"ISSUES":    &counts.Issues,
			"TELEGRAMS": &counts.Telegrams,
			"NOTICES":   &counts.Notices,
			"RMB":       &counts.RMB,
			"WA":        &counts.WA,
			"NEWS":      &counts.News,
		} {
			raw := text(unread, tag)
			if raw == "" {
				continue
			}
			if *target, err = parseInt(raw); err != nil {
				return err
			}
		}

		n.Unread = counts
		return nil
	},
}

// Resolves the index-aliasing contract for the custom* shards: the override
// sits at index 1 of the shared tag when the base shard was also requested,
// index 0 otherwise.
func aliasedText(root *etree.Element, tag string, baseRequested bool) *string {
	idx := 0
	if baseRequested {
		idx = 1
	}

	if len(root.SelectElements(tag)) <= idx {
		return nil
	}

	v := textAt(root, tag, idx)
	return &v
}
