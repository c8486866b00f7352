package main

import (
	"runtime"

	"nsgo/bot"
	"nsgo/utils/config"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func loadEnv() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	loadEnv()

	token, err := config.GetEnviroVar("BOT_TOKEN")
	if err != nil {
		log.Fatal(err)
	}

	// The remote API refuses anonymous traffic, so the agent is mandatory too.
	agent, err := config.GetEnviroVar("USER_AGENT")
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("Loaded ENV. Starting bot with %d threads.", runtime.GOMAXPROCS(-1))
	bot.Run(token, agent)
}
