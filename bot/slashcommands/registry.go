package slashcommands

import (
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// 0 for Guild, 1 for User
var integrationTypes = []discordgo.ApplicationIntegrationType{
	discordgo.ApplicationIntegrationUserInstall,
	discordgo.ApplicationIntegrationGuildInstall,
}

// 0 for Guilds, 2 for DMs, 3 for Private Channels
var contexts = []discordgo.InteractionContextType{
	discordgo.InteractionContextBotDM,
	discordgo.InteractionContextGuild,
}

var commands = map[string]SlashCommand{}

type AppCommandOpts = []*discordgo.ApplicationCommandOption
type SlashCommand interface {
	Name() string
	Description() string
	Options() AppCommandOpts
	Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

func ToApplicationCommand(cmd SlashCommand) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:             cmd.Name(),
		Description:      cmd.Description(),
		Options:          cmd.Options(),
		IntegrationTypes: &integrationTypes,
		Contexts:         &contexts,
		Type:             discordgo.ChatApplicationCommand,
	}
}

func All() map[string]SlashCommand {
	return commands
}

func Register(cmd SlashCommand) {
	if _, exists := commands[cmd.Name()]; exists {
		log.Warnf("Command '%s' is already registered!", cmd.Name())
		return
	}

	commands[cmd.Name()] = cmd
}

// Overwrites the application's remote command set with everything registered
// locally. Stale remote commands disappear as a side effect of the overwrite.
func SyncWithRemote(s *discordgo.Session) error {
	defs := make([]*discordgo.ApplicationCommand, 0, len(commands))
	for _, cmd := range commands {
		defs = append(defs, ToApplicationCommand(cmd))
	}

	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, "", defs)
	return err
}

// Called before the bot runs (just before main).
func init() {
	Register(NationCommand{})
	Register(RegionCommand{})
	Register(ProposalsCommand{})
	Register(DebatesCommand{})
}
