package objs

import (
	"fmt"

	"nsgo/api/shards"

	"github.com/beevik/etree"
)

// Immutable snapshot of one World Assembly council, shard-gated like Nation.
type WorldAssembly struct {
	Delegates      []string
	DelegateLog    []DelegateLogEntry
	Happenings     []Happening
	LastResolution *string
	Members        []string
	NumDelegates   *int
	NumNations     *int
	Proposals      []WAProposal
	Resolution     *Resolution
}

// A proposal before the council. This shape is consumed by the debate
// tracking layer downstream, so its public fields stay stable.
type WAProposal struct {
	ID           string
	Title        string
	Author       string
	Text         string
	Category     string
	Created      int64
	Approvals    []string
	VotesFor     int
	VotesAgainst int
}

// The resolution currently at vote, plus whichever vote-detail blocks were
// requested alongside it.
type Resolution struct {
	ID           string
	Title        string
	Author       string
	Text         string
	Category     string
	Option       string
	Created      int64
	Promoted     int64
	VotesFor     int
	VotesAgainst int

	VoteTrack *VoteTrack
	Voters    *Voters
	DelVotes  *DelegateVotes
}

// Hourly tallies since the resolution went to vote.
type VoteTrack struct {
	For     []int
	Against []int
}

type Voters struct {
	For     []string
	Against []string
}

type DelegateVotes struct {
	For     []DelegateVote
	Against []DelegateVote
}

type DelegateVote struct {
	Nation    string
	Votes     int
	Timestamp int64
}

type DelegateLogEntry struct {
	Timestamp int64
	Nation    string
	Action    string
	Votes     int
}

type waDecoder func(w *WorldAssembly, root *etree.Element) error

// DecodeWorldAssembly converts a parsed WA subtree into a typed snapshot.
func DecodeWorldAssembly(root *etree.Element, requested []shards.WAShard) (*WorldAssembly, error) {
	w := &WorldAssembly{}

	for _, sh := range requested {
		dec, ok := waDecoders[sh]
		if !ok {
			continue
		}

		if err := dec(w, root); err != nil {
			return nil, fmt.Errorf("failed to decode WA shard %q: %w", sh, err)
		}
	}

	return w, nil
}

var waDecoders = map[shards.WAShard]waDecoder{
	shards.WA_DELEGATES: func(w *WorldAssembly, root *etree.Element) error {
		w.Delegates = delimitedOf(root, "DELEGATES", ",")
		return nil
	},
	shards.WA_DEL_LOG: func(w *WorldAssembly, root *etree.Element) error {
		resolution := root.SelectElement("RESOLUTION")
		if resolution == nil {
			return nil
		}

		container := resolution.SelectElement("DELLOG")
		if container == nil {
			return nil
		}

		for _, el := range container.SelectElements("ENTRY") {
			entry := DelegateLogEntry{
				Nation: text(el, "NATION"),
				Action: text(el, "ACTION"),
			}

			var err error
			if raw := text(el, "TIMESTAMP"); raw != "" {
				if entry.Timestamp, err = parseInt64(raw); err != nil {
					return err
				}
			}
			if raw := text(el, "VOTES"); raw != "" {
				if entry.Votes, err = parseInt(raw); err != nil {
					return err
				}
			}

			w.DelegateLog = append(w.DelegateLog, entry)
		}
		return nil
	},
	shards.WA_DEL_VOTES: func(w *WorldAssembly, root *etree.Element) error {
		resolution := root.SelectElement("RESOLUTION")
		if resolution == nil {
			return nil
		}

		votesFor, err := decodeDelegateVotes(resolution.SelectElement("DELVOTES_FOR"))
		if err != nil {
			return err
		}
		votesAgainst, err := decodeDelegateVotes(resolution.SelectElement("DELVOTES_AGAINST"))
		if err != nil {
			return err
		}

		r := ensureResolution(w)
		r.DelVotes = &DelegateVotes{For: votesFor, Against: votesAgainst}
		return nil
	},
	shards.WA_HAPPENINGS: func(w *WorldAssembly, root *etree.Element) (err error) {
		w.Happenings, err = decodeHappenings(root.SelectElement("HAPPENINGS"))
		return
	},
	shards.WA_LAST_RESOLUTION: func(w *WorldAssembly, root *etree.Element) error {
		w.LastResolution = strOf(root, "LASTRESOLUTION")
		return nil
	},
	shards.WA_MEMBERS: func(w *WorldAssembly, root *etree.Element) error {
		w.Members = delimitedOf(root, "MEMBERS", ",")
		return nil
	},
	shards.WA_NUM_DELEGATES: func(w *WorldAssembly, root *etree.Element) (err error) {
		w.NumDelegates, err = intOf(root, "NUMDELEGATES")
		return
	},
	shards.WA_NUM_NATIONS: func(w *WorldAssembly, root *etree.Element) (err error) {
		w.NumNations, err = intOf(root, "NUMNATIONS")
		return
	},
	shards.WA_PROPOSALS: func(w *WorldAssembly, root *etree.Element) error {
		container := root.SelectElement("PROPOSALS")
		if container == nil {
			return nil
		}

		for _, el := range container.SelectElements("PROPOSAL") {
			proposal := WAProposal{
				ID:       attr(el, "id"),
				Title:    text(el, "NAME"),
				Author:   text(el, "PROPOSED_BY"),
				Text:     text(el, "DESC"),
				Category: text(el, "CATEGORY"),
			}

			var err error
			if raw := text(el, "CREATED"); raw != "" {
				if proposal.Created, err = parseInt64(raw); err != nil {
					return err
				}
			}
			if raw := text(el, "APPROVALS"); raw != "" {
				proposal.Approvals = splitNonEmpty(raw, ":")
			}

			// Tallies only appear once the proposal is promoted to a vote.
			if raw := text(el, "TOTAL_VOTES_FOR"); raw != "" {
				if proposal.VotesFor, err = parseInt(raw); err != nil {
					return err
				}
			}
			if raw := text(el, "TOTAL_VOTES_AGAINST"); raw != "" {
				if proposal.VotesAgainst, err = parseInt(raw); err != nil {
					return err
				}
			}

			w.Proposals = append(w.Proposals, proposal)
		}
		return nil
	},
	shards.WA_RESOLUTION: func(w *WorldAssembly, root *etree.Element) error {
		el := root.SelectElement("RESOLUTION")
		if el == nil {
			return nil
		}

		r := ensureResolution(w)
		r.ID = text(el, "ID")
		r.Title = text(el, "NAME")
		r.Author = text(el, "PROPOSED_BY")
		r.Text = text(el, "DESC")
		r.Category = text(el, "CATEGORY")
		r.Option = text(el, "OPTION")

		var err error
		if raw := text(el, "CREATED"); raw != "" {
			if r.Created, err = parseInt64(raw); err != nil {
				return err
			}
		}
		if raw := text(el, "PROMOTED"); raw != "" {
			if r.Promoted, err = parseInt64(raw); err != nil {
				return err
			}
		}
		if raw := text(el, "TOTAL_VOTES_FOR"); raw != "" {
			if r.VotesFor, err = parseInt(raw); err != nil {
				return err
			}
		}
		if raw := text(el, "TOTAL_VOTES_AGAINST"); raw != "" {
			if r.VotesAgainst, err = parseInt(raw); err != nil {
				return err
			}
		}
		return nil
	},
	shards.WA_VOTERS: func(w *WorldAssembly, root *etree.Element) error {
		resolution := root.SelectElement("RESOLUTION")
		if resolution == nil {
			return nil
		}

		r := ensureResolution(w)
		r.Voters = &Voters{
			For:     childTexts(resolution, "VOTES_FOR", "NATION"),
			Against: childTexts(resolution, "VOTES_AGAINST", "NATION"),
		}
		return nil
	},
	shards.WA_VOTE_TRACK: func(w *WorldAssembly, root *etree.Element) error {
		resolution := root.SelectElement("RESOLUTION")
		if resolution == nil {
			return nil
		}

		track := &VoteTrack{}

		for _, raw := range childTexts(resolution, "VOTE_TRACK_FOR", "N") {
			v, err := parseInt(raw)
			if err != nil {
				return err
			}
			track.For = append(track.For, v)
		}
		for _, raw := range childTexts(resolution, "VOTE_TRACK_AGAINST", "N") {
			v, err := parseInt(raw)
			if err != nil {
				return err
			}
			track.Against = append(track.Against, v)
		}

		r := ensureResolution(w)
		r.VoteTrack = track
		return nil
	},
}

// The vote-detail decoders may run before the resolution shard's own decoder
// depending on list order, so they all attach through this.
func ensureResolution(w *WorldAssembly) *Resolution {
	if w.Resolution == nil {
		w.Resolution = &Resolution{}
	}

	return w.Resolution
}

func decodeDelegateVotes(container *etree.Element) ([]DelegateVote, error) {
	if container == nil {
		return nil, nil
	}

	delegates := container.SelectElements("DELEGATE")
	out := make([]DelegateVote, 0, len(delegates))

	for _, el := range delegates {
		vote := DelegateVote{Nation: text(el, "NATION")}

		var err error
		if raw := text(el, "VOTES"); raw != "" {
			if vote.Votes, err = parseInt(raw); err != nil {
				return nil, err
			}
		}
		if raw := text(el, "TIMESTAMP"); raw != "" {
			if vote.Timestamp, err = parseInt64(raw); err != nil {
				return nil, err
			}
		}

		out = append(out, vote)
	}

	return out, nil
}
