package api

import "github.com/bwmarrin/discordgo"

// Module is a feature that attaches its handlers to the discord session.
type Module interface {
	Load(ds *discordgo.Session)
	Name() string
}
