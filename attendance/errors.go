package attendance

import "errors"

// Every failure an action can end in. None of them leaves poll or vote
// data in a different state than before the attempt.
var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD, YYYY-MM-DD HH:MM or YYYY-MM-DD HH:MM:SS")
	ErrDuplicatePoll     = errors.New("a poll already exists for this date")
	ErrPollNotFound      = errors.New("no poll exists for this date")
	ErrCapacityExceeded  = errors.New("total attendee limit reached")
	ErrShadowSlotsFull   = errors.New("all shadow slots are taken")
	ErrAlreadyShadow     = errors.New("you are already registered as a shadow")
	ErrNothingToWithdraw = errors.New("you have no vote to withdraw")
	ErrInvalidChoice     = errors.New("not a recognized choice")
)
