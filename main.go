package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/courtside/attendbot/api"
	"github.com/courtside/attendbot/api/env"
	"github.com/courtside/attendbot/api/logger"
	"github.com/courtside/attendbot/attendance"
	"github.com/courtside/attendbot/database"
	"github.com/courtside/attendbot/modules/rsvp"
)

func main() {
	defer func() {
		err := logger.Close()
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error closing logger: %s", err.Error())
		}
	}()

	token := env.Get("discord_token")
	if token == "" {
		logger.Err().Print("DISCORD_TOKEN must be set in the environment to run this process")
		return
	}

	store, err := openStore()
	if err != nil {
		logger.Err().Print(err.Error())
		os.Exit(1)
	}

	engine := attendance.NewEngine(store)

	if !strings.HasPrefix(token, "Bot ") {
		token = "Bot " + token
	}

	session, err := discordgo.New(token)
	if err != nil {
		logger.Err().Print(err.Error())
		os.Exit(1)
	}
	defer session.Close()

	for _, m := range []api.Module{&rsvp.Module{Engine: engine}} {
		m.Load(session)
		logger.Out().Printf("Loaded %s\n", m.Name())
	}

	if err = session.Open(); err != nil {
		logger.Err().Print(err.Error())
		os.Exit(1)
	}

	// Wait for a CTRL-C
	fmt.Println(`Now running. Press CTRL-C to exit.`)
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-sc
	fmt.Println("Shutting down")
}

func openStore() (attendance.Store, error) {
	connString := env.Get("database")
	if connString == "" {
		logger.Out().Print("No database configured, polls will only be kept in memory")
		return attendance.NewMemoryStore(), nil
	}
	return database.Connect(connString, env.GetBool("database.debug"))
}
