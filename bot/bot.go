package bot

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"nsgo/api"
	"nsgo/bot/common"
	"nsgo/bot/database"
	"nsgo/bot/events"

	dgo "github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

var guildIntents = dgo.IntentGuilds | dgo.IntentGuildMessages

func Run(botToken, userAgent string) {
	client, err := api.NewClient(userAgent)
	if err != nil {
		log.Fatal(err)
	}

	// Initialize a Discord Session
	s, err := dgo.New("Bot " + botToken)
	if err != nil {
		log.Fatal(err)
	}

	// Never run handlers synchronously, always run them in a goroutine.
	s.SyncEvents = false

	// Register funcs that handle specific gateway events.
	// https://discord.com/developers/docs/events/gateway-events#receive-events
	s.AddHandler(events.OnReady)
	s.AddHandler(events.OnInteractionCreateApplicationCommand) // Slash cmds

	s.Identify.Intents = guildIntents

	log.Info("Initializing debate database..")

	// Create or open DB
	db, err := database.Open("debates")
	if err != nil {
		log.Fatalf("Cannot initialize debate database:\n%v", err)
	}

	common.Init(client, db)

	log.Info("Establishing connection to Discord..")

	// Open WS connection to Discord.
	err = s.Open()
	if err != nil {
		log.Fatal("Cannot open Discord session: ", err)
	}

	// Wait for Ctrl+C or kill.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	sig := <-c

	log.Infof("Shutting down bot with signal: %s", strings.ToUpper(sig.String()))

	// Since the `defer` keyword only works in successful exits,
	// closing explicitly here makes sure we always properly cleanup.
	if err := db.Close(); err != nil {
		log.Errorf("Error closing DB: %v", err)
	}
	if err := s.Close(); err != nil {
		log.Errorf("Error closing Discord session: %v", err)
	}
}
