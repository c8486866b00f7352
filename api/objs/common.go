package objs

import (
	"strings"

	"github.com/beevik/etree"
)

// A single entry of a nation's, region's or the world's event feed.
type Happening struct {
	ID        int // 0 when the feed variant carries no event ids
	Timestamp int64
	Text      string
}

func decodeHappenings(container *etree.Element) ([]Happening, error) {
	if container == nil {
		return nil, nil
	}

	events := container.SelectElements("EVENT")
	out := make([]Happening, 0, len(events))

	for _, ev := range events {
		h := Happening{Text: text(ev, "TEXT")}

		if raw := attr(ev, "id"); raw != "" {
			id, err := parseInt(raw)
			if err != nil {
				return nil, err
			}
			h.ID = id
		}

		if raw := text(ev, "TIMESTAMP"); raw != "" {
			ts, err := parseInt64(raw)
			if err != nil {
				return nil, err
			}
			h.Timestamp = ts
		}

		out = append(out, h)
	}

	return out, nil
}

// One census scale reading. Which of the value fields are set depends on the
// census modes selected on the originating request.
type CensusRecord struct {
	ScaleID           int
	Score             *float64
	Rank              *int
	RegionRank        *int
	PercentRank       *float64
	RegionPercentRank *float64
	History           []CensusPoint
}

type CensusPoint struct {
	Timestamp int64
	Score     float64
}

func decodeCensus(container *etree.Element) ([]CensusRecord, error) {
	if container == nil {
		return nil, nil
	}

	scales := container.SelectElements("SCALE")
	out := make([]CensusRecord, 0, len(scales))

	for _, sc := range scales {
		id, err := attrInt(sc, "id")
		if err != nil {
			return nil, err
		}

		rec := CensusRecord{ScaleID: id}

		if rec.Score, err = floatOf(sc, "SCORE"); err != nil {
			return nil, err
		}
		if rec.Rank, err = intOf(sc, "RANK"); err != nil {
			return nil, err
		}
		if rec.RegionRank, err = intOf(sc, "RRANK"); err != nil {
			return nil, err
		}
		if rec.PercentRank, err = floatOf(sc, "PRANK"); err != nil {
			return nil, err
		}
		if rec.RegionPercentRank, err = floatOf(sc, "PRRANK"); err != nil {
			return nil, err
		}

		for _, pt := range sc.SelectElements("POINT") {
			ts, err := parseInt64(text(pt, "TIMESTAMP"))
			if err != nil {
				return nil, err
			}
			score, err := parseFloat(text(pt, "SCORE"))
			if err != nil {
				return nil, err
			}

			rec.History = append(rec.History, CensusPoint{Timestamp: ts, Score: score})
		}

		out = append(out, rec)
	}

	return out, nil
}

// A regional (or world-featured) poll and its options.
type Poll struct {
	ID      int
	Title   string
	Text    string
	Region  string
	Start   int64
	Stop    int64
	Author  string
	Options []PollOption
}

type PollOption struct {
	ID     int
	Text   string
	Votes  int
	Voters []string
}

func decodePoll(el *etree.Element) (*Poll, error) {
	if el == nil {
		return nil, nil
	}

	id, err := attrInt(el, "id")
	if err != nil {
		return nil, err
	}

	p := &Poll{
		ID:     id,
		Title:  text(el, "TITLE"),
		Text:   text(el, "TEXT"),
		Region: text(el, "REGION"),
		Author: text(el, "AUTHOR"),
	}

	if raw := text(el, "START"); raw != "" {
		if p.Start, err = parseInt64(raw); err != nil {
			return nil, err
		}
	}
	if raw := text(el, "STOP"); raw != "" {
		if p.Stop, err = parseInt64(raw); err != nil {
			return nil, err
		}
	}

	options := el.SelectElement("OPTIONS")
	if options == nil {
		return p, nil
	}

	for _, opt := range options.SelectElements("OPTION") {
		optID, err := attrInt(opt, "id")
		if err != nil {
			return nil, err
		}

		votes := 0
		if raw := text(opt, "VOTES"); raw != "" {
			if votes, err = parseInt(raw); err != nil {
				return nil, err
			}
		}

		var voters []string
		if raw := text(opt, "VOTERS"); raw != "" {
			voters = splitNonEmpty(raw, ":")
		}

		p.Options = append(p.Options, PollOption{
			ID:     optID,
			Text:   text(opt, "OPTIONTEXT"),
			Votes:  votes,
			Voters: voters,
		})
	}

	return p, nil
}

// A nation's policy as shown on its page and in issue outcomes.
type Policy struct {
	Name        string
	Picture     string
	Category    string
	Description string
}

func decodePolicies(container *etree.Element) []Policy {
	if container == nil {
		return nil
	}

	policies := container.SelectElements("POLICY")
	out := make([]Policy, 0, len(policies))

	for _, p := range policies {
		out = append(out, Policy{
			Name:        text(p, "NAME"),
			Picture:     text(p, "PIC"),
			Category:    text(p, "CAT"),
			Description: text(p, "DESC"),
		})
	}

	return out
}

func splitNonEmpty(raw string, sep string) []string {
	if raw == "" {
		return []string{}
	}

	return strings.Split(raw, sep)
}
