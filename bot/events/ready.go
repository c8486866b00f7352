package events

import (
	"time"

	"nsgo/api/objs"
	"nsgo/api/shards"
	"nsgo/bot/common"
	"nsgo/bot/database"
	"nsgo/bot/slashcommands"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const PROPOSAL_REFRESH_INTERVAL = 30 * time.Minute

func OnReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Infof("Logged in as: %s", s.State.User.Username)

	if err := slashcommands.SyncWithRemote(s); err != nil {
		log.Errorf("failed to sync commands with remote:\n%v", err)
	}

	scheduleTask(func() {
		start := time.Now()
		refreshed, err := RefreshDebates()
		elapsed := time.Since(start)

		if err != nil {
			log.Errorf("debate refresh task failed:\n%v", err)
			return
		}

		log.Infof("Refreshed %d tracked debates. Took: %s", refreshed, elapsed)
	}, true, PROPOSAL_REFRESH_INTERVAL)
}

func scheduleTask(task func(), runInitial bool, interval time.Duration) {
	if runInitial {
		task()
	}

	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			task()
		}
	}()
}

// Pulls the proposal lists and at-vote resolutions of both councils and folds
// each into its tracked debate, appending a vote snapshot where the tallies
// moved. A proposal leaves the list once promoted, so the resolution is the
// only tally source for debates that reached the floor.
func RefreshDebates() (int, error) {
	refreshed := 0

	for _, council := range []shards.Council{shards.COUNCIL_GENERAL_ASSEMBLY, shards.COUNCIL_SECURITY_COUNCIL} {
		wa, err := common.Client.WA(council).Shards(shards.WA_PROPOSALS, shards.WA_RESOLUTION).Send()
		if err != nil {
			return refreshed, err
		}

		for _, p := range wa.Proposals {
			if _, err := database.UpsertDebate(common.DB, p); err != nil {
				log.Errorf("failed to refresh debate for proposal '%s':\n%v", p.ID, err)
				continue
			}

			refreshed++
		}

		if r := wa.Resolution; r != nil && r.Title != "" {
			atVote := objs.WAProposal{
				ID:           r.ID,
				Title:        r.Title,
				Author:       r.Author,
				Text:         r.Text,
				Category:     r.Category,
				VotesFor:     r.VotesFor,
				VotesAgainst: r.VotesAgainst,
			}

			if _, err := database.UpsertDebate(common.DB, atVote); err != nil {
				log.Errorf("failed to refresh debate for resolution '%s':\n%v", r.ID, err)
				continue
			}

			refreshed++
		}
	}

	return refreshed, nil
}
