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

var regionQueryShards = []shards.RegionShard{
	shards.REGION_NAME, shards.REGION_NUM_NATIONS, shards.REGION_DELEGATE,
	shards.REGION_FOUNDER, shards.REGION_FLAG, shards.REGION_TAGS,
	shards.REGION_POWER, shards.REGION_FOUNDED_TIME,
}

type RegionCommand struct{}

func (cmd RegionCommand) Name() string { return "region" }
func (cmd RegionCommand) Description() string {
	return "Base command for region related subcommands."
}

func (cmd RegionCommand) Options() AppCommandOpts {
	return AppCommandOpts{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "query",
			Description: "Query information about a region.",
			Options: AppCommandOpts{
				discordutil.RequiredStringOption("name", "The name of the region to query.", 2, 40),
			},
		},
	}
}

func (cmd RegionCommand) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	err := discordutil.DeferReply(s, i.Interaction)
	if err != nil {
		return err
	}

	cdata := i.ApplicationCommandData()
	if opt := cdata.GetOption("query"); opt != nil {
		regionNameArg := opt.GetOption("name").StringValue()
		_, err := executeQueryRegion(s, i.Interaction, regionNameArg)
		return err
	}

	return nil
}

func executeQueryRegion(s *discordgo.Session, i *discordgo.Interaction, regionName string) (*discordgo.Message, error) {
	region, err := common.Client.Region(regionName).Shards(regionQueryShards...).Send()
	if err != nil {
		var remote *api.RemoteError
		if errors.As(err, &remote) {
			return discordutil.FollowUpContentEphemeral(s, i, fmt.Sprintf("Region `%s` does not seem to exist.", regionName))
		}

		return discordutil.FollowUpContentEphemeral(s, i, fmt.Sprintf("Query failed!```%s```", err))
	}

	embed := common.NewRegionEmbed(region)
	return discordutil.FollowUpEmbeds(s, i, embed)
}
