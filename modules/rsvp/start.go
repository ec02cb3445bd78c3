package rsvp

import (
	"github.com/bwmarrin/discordgo"
	"github.com/courtside/attendbot/api/logger"
)

func (m *Module) runStartCommand(ds *discordgo.Session, i *discordgo.InteractionCreate) {
	_ = ds.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})

	var dateArg string
	for _, v := range i.ApplicationCommandData().Options {
		if v.Name == "date" {
			dateArg = v.StringValue()
		}
	}

	creator := actingUser(i)

	poll, err := m.Engine.StartPoll(dateArg, creator)
	if err != nil {
		m.respond(ds, i, err.Error())
		return
	}

	view, err := m.Engine.AggregateView(poll.Date)
	if err != nil {
		m.respond(ds, i, "Unable to render poll: "+err.Error())
		return
	}

	_, err = ds.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Content:    renderContent(view),
		Components: buttonRows(poll.Date, view.Buttons),
	})
	if err != nil {
		m.respond(ds, i, "Error sending poll: "+err.Error())
		return
	}

	logger.Out().Printf("Poll started by %s for %s\n", creator, poll.Date)
	m.respond(ds, i, "Poll started for "+poll.Date)
}

func (m *Module) respond(ds *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	_, _ = ds.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &msg})
}
