package slashcommands

import (
	"errors"
	"fmt"

	"nsgo/api"
	"nsgo/api/shards"
	"nsgo/bot/common"
	"nsgo/bot/discordutil"

	"github.com/bwmarrin/discordgo"
)

// The shard set every `/nation query` asks for.
var nationQueryShards = []shards.NationShard{
	shards.NATION_NAME, shards.NATION_FULL_NAME, shards.NATION_MOTTO,
	shards.NATION_CATEGORY, shards.NATION_REGION, shards.NATION_POPULATION,
	shards.NATION_CURRENCY, shards.NATION_ANIMAL, shards.NATION_FLAG,
	shards.NATION_FREEDOM, shards.NATION_WA_STATUS,
	shards.NATION_FOUNDED_TIME, shards.NATION_LAST_LOGIN,
}

type NationCommand struct{}

func (cmd NationCommand) Name() string { return "nation" }
func (cmd NationCommand) Description() string {
	return "Base command for nation related subcommands."
}

func (cmd NationCommand) Options() AppCommandOpts {
	return AppCommandOpts{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "query",
			Description: "Query information about a nation.",
			Options: AppCommandOpts{
				discordutil.RequiredStringOption("name", "The name of the nation to query.", 2, 40),
			},
		},
	}
}

func (cmd NationCommand) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	err := discordutil.DeferReply(s, i.Interaction)
	if err != nil {
		return err
	}

	cdata := i.ApplicationCommandData()
	if opt := cdata.GetOption("query"); opt != nil {
		nationNameArg := opt.GetOption("name").StringValue()
		_, err := executeQueryNation(s, i.Interaction, nationNameArg)
		return err
	}

	return nil
}

func executeQueryNation(s *discordgo.Session, i *discordgo.Interaction, nationName string) (*discordgo.Message, error) {
	nation, err := common.Client.Nation(nationName).Shards(nationQueryShards...).Send()
	if err != nil {
		var remote *api.RemoteError
		if errors.As(err, &remote) {
			return discordutil.FollowUpContentEphemeral(s, i, fmt.Sprintf("Nation `%s` does not seem to exist.", nationName))
		}

		return discordutil.FollowUpContentEphemeral(s, i, fmt.Sprintf("Query failed!```%s```", err))
	}

	embed := common.NewNationEmbed(nation)
	return discordutil.FollowUpEmbeds(s, i, embed)
}
