package slashcommands

import (
	"fmt"
	"strings"

	"nsgo/api/shards"
	"nsgo/bot/common"
	"nsgo/bot/database"
	"nsgo/bot/discordutil"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func councilFromOption(value string) (shards.Council, string) {
	if value == "sc" {
		return shards.COUNCIL_SECURITY_COUNCIL, "Security Council"
	}

	return shards.COUNCIL_GENERAL_ASSEMBLY, "General Assembly"
}

var councilOption = &discordgo.ApplicationCommandOption{
	Type:        discordgo.ApplicationCommandOptionString,
	Name:        "council",
	Description: "Which World Assembly council to look at.",
	Required:    true,
	Choices: []*discordgo.ApplicationCommandOptionChoice{
		{Name: "General Assembly", Value: "ga"},
		{Name: "Security Council", Value: "sc"},
	},
}

type ProposalsCommand struct{}

func (cmd ProposalsCommand) Name() string { return "proposals" }
func (cmd ProposalsCommand) Description() string {
	return "Base command for World Assembly proposal subcommands."
}

func (cmd ProposalsCommand) Options() AppCommandOpts {
	return AppCommandOpts{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "list",
			Description: "List proposals currently gathering approvals and track them as debates.",
			Options:     AppCommandOpts{councilOption},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "atvote",
			Description: "Show the resolution currently at vote.",
			Options:     AppCommandOpts{councilOption},
		},
	}
}

func (cmd ProposalsCommand) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	err := discordutil.DeferReply(s, i.Interaction)
	if err != nil {
		return err
	}

	cdata := i.ApplicationCommandData()
	if opt := cdata.GetOption("list"); opt != nil {
		council, label := councilFromOption(opt.GetOption("council").StringValue())
		_, err := executeListProposals(s, i.Interaction, council, label)
		return err
	}
	if opt := cdata.GetOption("atvote"); opt != nil {
		council, label := councilFromOption(opt.GetOption("council").StringValue())
		_, err := executeAtVote(s, i.Interaction, council, label)
		return err
	}

	return nil
}

func executeListProposals(s *discordgo.Session, i *discordgo.Interaction, council shards.Council, label string) (*discordgo.Message, error) {
	wa, err := common.Client.WA(council).Shards(shards.WA_PROPOSALS).Send()
	if err != nil {
		return discordutil.FollowUpContentEphemeral(s, i, fmt.Sprintf("Query failed!```%s```", err))
	}

	count := len(wa.Proposals)
	if count == 0 {
		return discordutil.FollowUpContent(s, i, fmt.Sprintf("The %s has no proposals gathering approvals right now.", label))
	}

	// Every listed proposal becomes (or refreshes) a tracked debate.
	lines := make([]string, 0, count)
	for idx, p := range wa.Proposals {
		if _, err := database.UpsertDebate(common.DB, p); err != nil {
			log.Errorf("failed to track debate for proposal '%s':\n%v", p.ID, err)
		}

		lines = append(lines, fmt.Sprintf(
			"%d. **%s** by `%s`\nCategory: `%s`, Approvals: `%d`, ID: `%s`",
			idx+1, p.Title, p.Author, p.Category, len(p.Approvals), p.ID,
		))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("[%d] %s Proposals", count, label),
		Description: strings.Join(lines, "\n\n"),
		Color:       discordutil.BLURPLE,
	}

	return discordutil.FollowUpEmbeds(s, i, embed)
}

func executeAtVote(s *discordgo.Session, i *discordgo.Interaction, council shards.Council, label string) (*discordgo.Message, error) {
	wa, err := common.Client.WA(council).Shards(shards.WA_RESOLUTION).Send()
	if err != nil {
		return discordutil.FollowUpContentEphemeral(s, i, fmt.Sprintf("Query failed!```%s```", err))
	}

	if wa.Resolution == nil || wa.Resolution.Title == "" {
		return discordutil.FollowUpContent(s, i, fmt.Sprintf("The %s has nothing at vote right now.", label))
	}

	return discordutil.FollowUpEmbeds(s, i, common.NewResolutionEmbed(wa.Resolution, label))
}
