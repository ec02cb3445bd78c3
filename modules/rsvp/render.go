package rsvp

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/courtside/attendbot/attendance"
)

const customIDPrefix = "rsvp"

// renderContent wraps the fixed-width summary in a code block so discord
// leaves the column alignment alone.
func renderContent(view *attendance.View) string {
	return "```\n" + sanitize(attendance.FormatView(view)) + "```"
}

// sanitize keeps rendered text safe inside a code block. Backticks are
// the only structurally significant characters there; user names can
// contain them.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "`", "'")
}

func customID(date, label string) string {
	return customIDPrefix + ":" + date + ":" + label
}

func parseCustomID(id string) (date, label string, ok bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != customIDPrefix {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// buttonRows lays the action buttons out five to a row, the component
// limit discord imposes.
func buttonRows(date string, labels []string) []discordgo.MessageComponent {
	limit := 5

	components := make([]discordgo.MessageComponent, 0)
	row := discordgo.ActionsRow{}

	for _, label := range labels {
		row.Components = append(row.Components, discordgo.Button{
			CustomID: customID(date, label),
			Style:    discordgo.PrimaryButton,
			Label:    label,
		})

		if len(row.Components) == limit {
			components = append(components, row)
			row = discordgo.ActionsRow{}
		}
	}

	if len(row.Components) > 0 {
		components = append(components, row)
	}

	return components
}
