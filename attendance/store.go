package attendance

import "time"

// Poll is one attendance poll, keyed by its date. One poll per date.
type Poll struct {
	Date      string
	Creator   string
	CreatedAt time.Time
}

// Vote is one user's current answer for a poll. Rows are only ever
// inserted or deleted, never updated; changing a vote retires the old
// row and inserts a new one.
type Vote struct {
	PollDate    string
	User        string
	Choice      Choice
	Weight      int
	SubmittedAt time.Time

	// Seq is a store-assigned monotonic insertion sequence. SubmittedAt
	// has second resolution, so two votes can share a timestamp; Seq
	// breaks the tie.
	Seq uint64
}

// Store is the narrow repository the engine runs against. It holds no
// business logic. Implementations must be safe for concurrent use; the
// engine additionally serializes all capacity-relevant calls per poll
// date.
type Store interface {
	// CreatePoll creates the poll row, returning ErrDuplicatePoll if one
	// already exists for the date.
	CreatePoll(date, creator string, ts time.Time) error

	// FindPoll returns the poll for the date, or ErrPollNotFound.
	FindPoll(date string) (*Poll, error)

	// ListVotes returns all vote rows for the date in insertion order.
	ListVotes(date string) ([]Vote, error)

	// InsertVote appends a vote row and fills in its Seq.
	InsertVote(v *Vote) error

	// DeleteVotes removes all of a user's vote rows for the date and
	// reports how many were removed.
	DeleteVotes(user, date string) (int64, error)

	// ClearVotes removes every vote row for the date.
	ClearVotes(date string) (int64, error)
}
