package slashcommands

import (
	"fmt"
	"sort"
	"strings"

	"nsgo/bot/common"
	"nsgo/bot/database"
	"nsgo/bot/discordutil"

	"github.com/bwmarrin/discordgo"
)

type DebatesCommand struct{}

func (cmd DebatesCommand) Name() string { return "debates" }
func (cmd DebatesCommand) Description() string {
	return "Base command for tracked debate subcommands."
}

func (cmd DebatesCommand) Options() AppCommandOpts {
	return AppCommandOpts{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "show",
			Description: "Show a tracked debate and its vote momentum.",
			Options: AppCommandOpts{
				discordutil.RequiredStringOption("id", "The proposal ID of the debate.", 2, 80),
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "list",
			Description: "Sends a paginator enabling navigation through all tracked debates.",
		},
	}
}

func (cmd DebatesCommand) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	cdata := i.ApplicationCommandData()
	if opt := cdata.GetOption("show"); opt != nil {
		err := discordutil.DeferReply(s, i.Interaction)
		if err != nil {
			return err
		}

		idArg := opt.GetOption("id").StringValue()
		_, err = executeShowDebate(s, i.Interaction, idArg)
		return err
	}
	if opt := cdata.GetOption("list"); opt != nil {
		// No defer here, the paginator sends the initial response itself.
		return executeListDebates(s, i.Interaction)
	}

	return nil
}

func executeShowDebate(s *discordgo.Session, i *discordgo.Interaction, proposalID string) (*discordgo.Message, error) {
	debate, err := database.GetDebate(common.DB, proposalID)
	if err != nil {
		return discordutil.FollowUpContentEphemeral(s, i, fmt.Sprintf(
			"No tracked debate with ID `%s`. Run `/proposals list` to start tracking.", proposalID,
		))
	}

	return discordutil.FollowUpEmbeds(s, i, common.NewDebateEmbed(debate))
}

func executeListDebates(s *discordgo.Session, i *discordgo.Interaction) error {
	debates, err := database.ListDebates(common.DB)
	if err != nil {
		return err
	}

	count := len(debates)
	if count == 0 {
		return discordutil.Reply(s, i, &discordgo.InteractionResponseData{
			Content: "No debates are being tracked yet. Run `/proposals list` to start tracking.",
		})
	}

	// Most recently refreshed first.
	sort.Slice(debates, func(i, j int) bool {
		return debates[i].LastSeen > debates[j].LastSeen
	})

	// Init paginator with X items per page. Pressing a btn will change the current page and call PageFunc again.
	perPage := 5
	paginator := discordutil.NewInteractionPaginator(s, i, count, perPage)

	paginator.PageFunc = func(curPage, pageLen int, data *discordgo.InteractionResponseData) {
		start, end := paginator.CurrentPageBounds(count)

		lines := []string{}
		for idx, d := range debates[start:end] {
			votes := ""
			if n := len(d.VoteHistory); n > 0 {
				latest := d.VoteHistory[n-1]
				votes = fmt.Sprintf("\nVotes: `%d` for, `%d` against", latest.VotesFor, latest.VotesAgainst)
			}

			lines = append(lines, fmt.Sprintf(
				"%d. **%s** by `%s`\nCategory: `%s`, Approvals: `%d`%s\nLast refresh: <t:%d:R>",
				start+idx+1, d.Title, d.Author, d.Category, d.Approvals, votes, d.LastSeen,
			))
		}

		pageStr := fmt.Sprintf("Page %d/%d", curPage+1, paginator.TotalPages())
		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("[%d] Tracked Debates | %s", count, pageStr),
			Description: strings.Join(lines, "\n\n"),
			Color:       discordutil.GOLD,
		}

		data.Embeds = []*discordgo.MessageEmbed{embed}
		data.Components = []discordgo.MessageComponent{paginator.NewNavigationButtonRow()}
	}

	return paginator.Start()
}
