package attendance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column budgets for the rendered table, measured in display cells.
const (
	colUser   = 16
	colChoice = 6
	colCount  = 2
)

const timeLayout = "2006-01-02 15:04:05"

// Buttons returns the labels of the actions currently legal for the
// poll. An option that can no longer be accepted is absent, never shown
// disabled: attendee options disappear at the hard ceiling, the shadow
// option when both shadow slots are taken. Withdraw is always offered.
func Buttons(a Allocation) []string {
	var out []string
	if a.TotalAttending < HardCeiling {
		for _, c := range AttendeeChoices() {
			out = append(out, c.Label())
		}
	}
	if a.ShadowCount < MaxShadows {
		out = append(out, ChoiceShadow.Label())
	}
	return append(out, WithdrawLabel)
}

// FormatView renders the poll summary as fixed-width text, one table per
// tier. Field widths are measured in display cells so wide runes do not
// break alignment; over-budget fields are truncated, not wrapped.
func FormatView(v *View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Attending (%s) session\n", v.Poll.Date)

	writeTier(&b, "Attending", v.Allocation.Attendees)
	writeTier(&b, "Waitlist", v.Allocation.Waitlist)
	writeTier(&b, "Shadows", v.Allocation.Shadows)

	fmt.Fprintf(&b, "\nTotal going: %d/%d\n", v.Allocation.TotalAttending, v.Allocation.Capacity())
	if v.Allocation.ShadowCount > 0 {
		fmt.Fprintf(&b, "Shadows: %d/%d\n", v.Allocation.ShadowCount, MaxShadows)
	}
	return b.String()
}

func writeTier(b *strings.Builder, title string, votes []Vote) {
	if len(votes) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, v := range votes {
		b.WriteString(formatRow(v))
		b.WriteByte('\n')
	}
}

func formatRow(v Vote) string {
	user := runewidth.FillRight(runewidth.Truncate(v.User, colUser, ""), colUser)
	choice := runewidth.FillRight(v.Choice.Label(), colChoice)
	count := runewidth.FillLeft(strconv.Itoa(v.Weight), colCount)
	return user + " " + choice + " " + count + "  " + v.SubmittedAt.Format(timeLayout)
}
