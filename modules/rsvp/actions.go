package rsvp

import (
	"github.com/bwmarrin/discordgo"
	"github.com/courtside/attendbot/api/logger"
	"github.com/courtside/attendbot/attendance"
)

func (m *Module) runAction(ds *discordgo.Session, i *discordgo.InteractionCreate, date, label string) {
	_ = ds.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})

	user := actingUser(i)

	var ack string
	var err error
	if label == attendance.WithdrawLabel {
		err = m.Engine.Withdraw(user, date)
		ack = "Your vote for " + date + " has been withdrawn."
	} else {
		var choice attendance.Choice
		if choice, err = attendance.ParseChoice(label); err == nil {
			err = m.Engine.Cast(user, date, choice)
			ack = "You voted " + label + " for " + date + "."
		}
	}

	if err != nil {
		m.respond(ds, i, err.Error())
		return
	}

	logger.Out().Printf("%s chose %s for %s\n", user, label, date)

	// The vote is committed at this point. A failed refresh only costs
	// one frame of the display, so it is logged and the user still gets
	// their acknowledgement.
	if err = m.refresh(ds, i, date); err != nil {
		logger.Err().Printf("Error refreshing poll message for %s: %s\n", date, err.Error())
	}
	m.respond(ds, i, ack)
}

func (m *Module) refresh(ds *discordgo.Session, i *discordgo.InteractionCreate, date string) error {
	view, err := m.Engine.AggregateView(date)
	if err != nil {
		return err
	}

	content := renderContent(view)
	components := buttonRows(date, view.Buttons)

	edit := discordgo.NewMessageEdit(i.ChannelID, i.Message.ID)
	edit.Content = &content
	edit.Components = &components

	_, err = ds.ChannelMessageEditComplex(edit)
	return err
}
