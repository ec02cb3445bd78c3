package rsvp

import (
	"github.com/bwmarrin/discordgo"
	"github.com/courtside/attendbot/api/env"
	"github.com/courtside/attendbot/api/logger"
	"github.com/courtside/attendbot/attendance"
)

// Module wires the attendance engine to discord: a /poll slash command
// to open a poll, and message-component buttons for casting and
// withdrawing votes.
type Module struct {
	Engine *attendance.Engine

	appId  string
	guilds []string
}

var startPollOperation = &discordgo.ApplicationCommand{
	Name:        "poll",
	Description: "Start an attendance poll for a session date",
	Type:        discordgo.ChatApplicationCommand,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Name:        "date",
			Description: "Session date, YYYY-MM-DD with optional HH:MM or HH:MM:SS (defaults to today)",
			Type:        discordgo.ApplicationCommandOptionString,
			Required:    false,
		},
	},
}

func (m *Module) Load(ds *discordgo.Session) {
	m.appId = env.Get("app.id")
	m.guilds = env.GetStringArray("rsvp.guilds", ";")

	ds.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		for _, guild := range m.guilds {
			logger.Out().Printf("Registering %s for guild %s\n", startPollOperation.Name, guild)
			_, err := s.ApplicationCommandCreate(m.appId, guild, startPollOperation)
			if err != nil {
				logger.Err().Printf("Cannot create slash command %q: %v", startPollOperation.Name, err)
			}
		}
	})

	ds.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if i.ApplicationCommandData().Name == startPollOperation.Name {
				m.runStartCommand(s, i)
			}
		case discordgo.InteractionMessageComponent:
			if date, label, ok := parseCustomID(i.MessageComponentData().CustomID); ok {
				m.runAction(s, i, date, label)
			}
		}
	})
}

func (Module) Name() string {
	return "rsvp"
}

// actingUser is the opaque user identifier the engine keys votes by.
func actingUser(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return ""
}
