package attendance

import (
	"sync"
	"time"
)

// MemoryStore keeps polls and votes in process memory. It backs the test
// suites and serves as the store when no database is configured; votes
// are then lost on restart, which matches how throwaway attendance polls
// are actually used.
type MemoryStore struct {
	mu    sync.Mutex
	polls map[string]Poll
	votes map[string][]Vote
	seq   uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		polls: make(map[string]Poll),
		votes: make(map[string][]Vote),
	}
}

func (s *MemoryStore) CreatePoll(date, creator string, ts time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.polls[date]; exists {
		return ErrDuplicatePoll
	}
	s.polls[date] = Poll{Date: date, Creator: creator, CreatedAt: ts}
	return nil
}

func (s *MemoryStore) FindPoll(date string) (*Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	poll, exists := s.polls[date]
	if !exists {
		return nil, ErrPollNotFound
	}
	return &poll, nil
}

func (s *MemoryStore) ListVotes(date string) ([]Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Vote, len(s.votes[date]))
	copy(out, s.votes[date])
	return out, nil
}

func (s *MemoryStore) InsertVote(v *Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	v.Seq = s.seq
	s.votes[v.PollDate] = append(s.votes[v.PollDate], *v)
	return nil
}

func (s *MemoryStore) DeleteVotes(user, date string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.votes[date][:0]
	var removed int64
	for _, v := range s.votes[date] {
		if v.User == user {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	s.votes[date] = kept
	return removed, nil
}

func (s *MemoryStore) ClearVotes(date string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := int64(len(s.votes[date]))
	delete(s.votes, date)
	return removed, nil
}
