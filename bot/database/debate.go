package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nsgo/api/objs"

	"github.com/dgraph-io/badger/v4"
)

const DEBATES_KEY_PREFIX = "debates/"

// A point-in-time reading of a debate's support, kept so vote momentum can be
// charted across refreshes.
type VoteSnapshot struct {
	Timestamp    int64 `json:"timestamp"`
	VotesFor     int   `json:"votesFor"`
	VotesAgainst int   `json:"votesAgainst"`
}

// The bot's record of one WA proposal under debate. Created the first time a
// proposal is seen and updated on every refresh; the proposal fields mirror
// [objs.WAProposal] and nothing else.
type Debate struct {
	ProposalID  string         `json:"proposalID"`
	Title       string         `json:"title"`
	Author      string         `json:"author"`
	Text        string         `json:"text"`
	Category    string         `json:"category"`
	Approvals   int            `json:"approvals"`
	FirstSeen   int64          `json:"firstSeen"`
	LastSeen    int64          `json:"lastSeen"`
	VoteHistory []VoteSnapshot `json:"voteHistory,omitempty"`
}

func GetDebate(db *badger.DB, proposalID string) (*Debate, error) {
	return GetInsensitive[Debate](db, DEBATES_KEY_PREFIX+proposalID)
}

func PutDebate(db *badger.DB, d *Debate) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("error putting debate '%s' into db:\n%v", d.ProposalID, err)
	}

	return PutInsensitive(db, DEBATES_KEY_PREFIX+d.ProposalID, data)
}

// Creates or refreshes the debate record for a proposal, appending a vote
// snapshot when the tallies moved since the last one.
func UpsertDebate(db *badger.DB, p objs.WAProposal) (*Debate, error) {
	now := time.Now().Unix()

	debate, err := GetDebate(db, p.ID)
	if errors.Is(err, badger.ErrKeyNotFound) {
		debate = &Debate{ProposalID: p.ID, FirstSeen: now}
	} else if err != nil {
		return nil, err
	}

	debate.Title = p.Title
	debate.Author = p.Author
	debate.Text = p.Text
	debate.Category = p.Category
	debate.Approvals = len(p.Approvals)
	debate.LastSeen = now

	last := VoteSnapshot{VotesFor: -1, VotesAgainst: -1}
	if n := len(debate.VoteHistory); n > 0 {
		last = debate.VoteHistory[n-1]
	}

	if p.VotesFor != last.VotesFor || p.VotesAgainst != last.VotesAgainst {
		debate.VoteHistory = append(debate.VoteHistory, VoteSnapshot{
			Timestamp:    now,
			VotesFor:     p.VotesFor,
			VotesAgainst: p.VotesAgainst,
		})
	}

	return debate, PutDebate(db, debate)
}

// All tracked debates, newest activity first is up to the caller.
func ListDebates(db *badger.DB) (debates []Debate, err error) {
	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(DEBATES_KEY_PREFIX)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}

			var d Debate
			if err := json.Unmarshal(val, &d); err != nil {
				return err
			}

			debates = append(debates, d)
		}

		return nil
	})

	return
}
