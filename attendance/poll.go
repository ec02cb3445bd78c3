package attendance

import (
	"strings"
	"time"
)

const dateKeyLayout = "2006-01-02"

// Accepted poll date inputs, tried in this order. The first layout that
// parses wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseDate validates a poll date input and returns the poll key. A time
// of day may be supplied but only the date portion identifies the poll.
func ParseDate(input string) (string, error) {
	input = strings.TrimSpace(input)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t.Format(dateKeyLayout), nil
		}
	}
	return "", ErrInvalidDateFormat
}

// StartPoll opens the poll for the given date input, defaulting to today
// when the input is empty. Fails with ErrDuplicatePoll if a poll already
// exists for the date. Any stale vote rows for the date are cleared so a
// fresh poll never inherits votes.
func (e *Engine) StartPoll(input, creator string) (*Poll, error) {
	var date string
	if strings.TrimSpace(input) == "" {
		date = time.Now().Format(dateKeyLayout)
	} else {
		var err error
		if date, err = ParseDate(input); err != nil {
			return nil, err
		}
	}

	unlock := e.lockDate(date)
	defer unlock()

	now := time.Now().UTC()
	if err := e.store.CreatePoll(date, creator, now); err != nil {
		return nil, err
	}
	if _, err := e.store.ClearVotes(date); err != nil {
		return nil, err
	}

	return &Poll{Date: date, Creator: creator, CreatedAt: now}, nil
}

// View is everything the renderer needs: the poll, its allocation, and
// the action labels currently legal for it.
type View struct {
	Poll       Poll
	Allocation Allocation
	Buttons    []string
}

// AggregateView composes the current vote snapshot into tiers and the
// legal button set. The snapshot may trail an in-flight mutation;
// rendering is re-triggered after every write, so a stale read only
// means the previous frame.
func (e *Engine) AggregateView(date string) (*View, error) {
	poll, err := e.store.FindPoll(date)
	if err != nil {
		return nil, err
	}
	votes, err := e.store.ListVotes(date)
	if err != nil {
		return nil, err
	}

	alloc := Allocate(votes)
	return &View{
		Poll:       *poll,
		Allocation: alloc,
		Buttons:    Buttons(alloc),
	}, nil
}
