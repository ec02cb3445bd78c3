package attendance

import "time"

// Cast records the user's choice for the poll on the given date,
// replacing any earlier vote by the same user. Capacity is evaluated net
// of the user's own retiring vote, so changing a count is judged against
// the room left by everyone else, not stacked on top of the old vote.
//
// Fails with ErrPollNotFound, ErrInvalidChoice, ErrCapacityExceeded,
// ErrShadowSlotsFull or ErrAlreadyShadow; on any failure the vote set is
// untouched.
func (e *Engine) Cast(user, date string, choice Choice) error {
	if !choice.known() {
		return ErrInvalidChoice
	}

	unlock := e.lockDate(date)
	defer unlock()

	if _, err := e.store.FindPoll(date); err != nil {
		return err
	}
	votes, err := e.store.ListVotes(date)
	if err != nil {
		return err
	}

	var existing *Vote
	for i := range votes {
		if votes[i].User == user {
			existing = &votes[i]
			break
		}
	}

	if choice.IsShadow() {
		if existing != nil && existing.Choice.IsShadow() {
			return ErrAlreadyShadow
		}
		shadows := 0
		for _, v := range votes {
			if v.Choice.IsShadow() && v.User != user {
				shadows++
			}
		}
		if shadows >= MaxShadows {
			return ErrShadowSlotsFull
		}
	} else {
		total := 0
		for _, v := range votes {
			if !v.Choice.IsShadow() && v.User != user {
				total += v.Weight
			}
		}
		if total+choice.Weight() > HardCeiling {
			return ErrCapacityExceeded
		}
	}

	if existing != nil {
		if _, err = e.store.DeleteVotes(user, date); err != nil {
			return err
		}
	}

	return e.store.InsertVote(&Vote{
		PollDate:    date,
		User:        user,
		Choice:      choice,
		Weight:      choice.Weight(),
		SubmittedAt: time.Now().UTC(),
	})
}

// Withdraw removes all of the user's vote rows for the poll. Fails with
// ErrPollNotFound if the poll does not exist and ErrNothingToWithdraw if
// the user has no vote.
func (e *Engine) Withdraw(user, date string) error {
	unlock := e.lockDate(date)
	defer unlock()

	if _, err := e.store.FindPoll(date); err != nil {
		return err
	}

	n, err := e.store.DeleteVotes(user, date)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNothingToWithdraw
	}
	return nil
}
