package objs

import (
	"fmt"

	"github.com/beevik/etree"
)

// Outcome of answering an issue: the talking point, the census effects and
// whatever the chosen option unlocked or reclassified. Unlike the snapshot
// types there is no shard gating here; the issue command always returns the
// full payload.
type AnsweredIssue struct {
	ID                int
	OK                bool
	Desc              string
	Rankings          []CensusDelta
	Headlines         []string
	Unlocks           []string
	Reclassifications []Reclassification
	NewPolicies       []Policy
	RemovedPolicies   []Policy
}

// Change to one census scale caused by the answer.
type CensusDelta struct {
	ScaleID       int
	Score         float64
	Change        float64
	PercentChange float64
}

type Reclassification struct {
	Type string
	From string
	To   string
}

// DecodeAnsweredIssue converts the ISSUE element of an issue command's
// execute response.
func DecodeAnsweredIssue(el *etree.Element) (*AnsweredIssue, error) {
	if el == nil {
		return nil, fmt.Errorf("issue command response carries no ISSUE tag")
	}

	id, err := attrInt(el, "id")
	if err != nil {
		return nil, err
	}

	issue := &AnsweredIssue{
		ID:        id,
		OK:        text(el, "OK") == "1",
		Desc:      text(el, "DESC"),
		Headlines: childTexts(el, "HEADLINES", "HEADLINE"),
		Unlocks:   childTexts(el, "UNLOCKS", "BANNER"),
	}

	if rankings := el.SelectElement("RANKINGS"); rankings != nil {
		for _, rank := range rankings.SelectElements("RANK") {
			scaleID, err := attrInt(rank, "id")
			if err != nil {
				return nil, err
			}

			delta := CensusDelta{ScaleID: scaleID}
			for tag, target := range map[string]*float64{
				"SCORE":   &delta.Score,
				"CHANGE":  &delta.Change,
				"PCHANGE": &delta.PercentChange,
			} {
				raw := text(rank, tag)
				if raw == "" {
					continue
				}
				if *target, err = parseFloat(raw); err != nil {
					return nil, err
				}
			}

			issue.Rankings = append(issue.Rankings, delta)
		}
	}

	if reclassify := el.SelectElement("RECLASSIFICATIONS"); reclassify != nil {
		for _, el := range reclassify.SelectElements("RECLASSIFY") {
			issue.Reclassifications = append(issue.Reclassifications, Reclassification{
				Type: attr(el, "type"),
				From: text(el, "FROM"),
				To:   text(el, "TO"),
			})
		}
	}

	issue.NewPolicies = decodePolicies(el.SelectElement("NEW_POLICIES"))
	issue.RemovedPolicies = decodePolicies(el.SelectElement("REMOVED_POLICIES"))

	return issue, nil
}
