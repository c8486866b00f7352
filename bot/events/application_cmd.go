package events

import (
	"runtime/debug"
	"time"

	"nsgo/bot/common"
	"nsgo/bot/discordutil"
	"nsgo/bot/slashcommands"
	"nsgo/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func OnInteractionCreateApplicationCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("handler OnInteractionCreateApplicationCommand recovered from a panic.\n%v\n%s", err, debug.Stack())
			discordutil.ReplyWithPanicError(s, i.Interaction, err)
		}
	}()

	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	author := discordutil.UserFromInteraction(i.Interaction)

	cmdName := i.ApplicationCommandData().Name
	cmd, ok := slashcommands.All()[cmdName]
	if !ok {
		log.Warnf("'%s' invoked unknown command /%s", author.Username, cmdName)
		return
	}

	if !common.AllowCommand(author.ID) {
		discordutil.Reply(s, i.Interaction, &discordgo.InteractionResponseData{
			Flags:   discordgo.MessageFlagsEphemeral,
			Content: "You are running commands too quickly! Give it a few seconds.",
		})
		return
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("/%s options:\n%s", cmdName, utils.Prettify(i.ApplicationCommandData().Options))
	}

	start := time.Now()
	err := cmd.Execute(s, i)
	elapsed := time.Since(start)

	if err == nil {
		log.Infof("'%s' successfully executed command /%s (took: %s)", author.Username, cmdName, elapsed)
	} else {
		log.Errorf("'%s' failed to execute command /%s:\n%v", author.Username, cmdName, err)
	}
}
