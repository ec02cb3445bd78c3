package attendance

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2024-06-08"

func newTestEngine(t *testing.T) *Engine {
	e := NewEngine(NewMemoryStore())
	_, err := e.StartPoll(testDate, "organizer")
	require.NoError(t, err)
	return e
}

func totals(t *testing.T, e *Engine) Allocation {
	view, err := e.AggregateView(testDate)
	require.NoError(t, err)
	return view.Allocation
}

func TestCast_SingleActiveVotePerUser(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Cast("alice", testDate, ChoiceMe))
	require.NoError(t, e.Cast("alice", testDate, ChoiceMePlusTwo))

	alloc := totals(t, e)
	require.Len(t, alloc.Attendees, 1)
	assert.Equal(t, ChoiceMePlusTwo, alloc.Attendees[0].Choice)
	assert.Equal(t, 3, alloc.TotalAttending)

	require.NoError(t, e.Withdraw("alice", testDate))
	assert.Equal(t, 0, totals(t, e).TotalAttending)

	assert.ErrorIs(t, e.Withdraw("alice", testDate), ErrNothingToWithdraw)
}

func TestCast_PollMustExist(t *testing.T) {
	e := NewEngine(NewMemoryStore())

	assert.ErrorIs(t, e.Cast("alice", testDate, ChoiceMe), ErrPollNotFound)
	assert.ErrorIs(t, e.Withdraw("alice", testDate), ErrPollNotFound)
}

func TestCast_InvalidChoice(t *testing.T) {
	e := newTestEngine(t)

	assert.ErrorIs(t, e.Cast("alice", testDate, Choice(42)), ErrInvalidChoice)
	assert.ErrorIs(t, e.Cast("alice", testDate, Choice(0)), ErrInvalidChoice)
	assert.Equal(t, 0, totals(t, e).TotalAttending)
}

func TestCast_HardCeiling(t *testing.T) {
	e := newTestEngine(t)

	// 5 x Me+3 fills the hard ceiling exactly.
	for _, user := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, e.Cast(user, testDate, ChoiceMePlusThree))
	}
	require.Equal(t, HardCeiling, totals(t, e).TotalAttending)

	// The 21st head-count unit does not fit; the vote set is unchanged.
	assert.ErrorIs(t, e.Cast("f", testDate, ChoiceMe), ErrCapacityExceeded)

	alloc := totals(t, e)
	assert.Equal(t, HardCeiling, alloc.TotalAttending)
	assert.Len(t, alloc.Attendees, 5)
}

func TestCast_ChangeEvaluatedNetOfOwnVote(t *testing.T) {
	e := newTestEngine(t)

	for _, user := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, e.Cast(user, testDate, ChoiceMePlusThree))
	}

	// The poll is full, but "a" shrinking their own party frees room:
	// the check runs against the 16 head-counts everyone else holds.
	require.NoError(t, e.Cast("a", testDate, ChoiceMe))
	assert.Equal(t, 17, totals(t, e).TotalAttending)

	// Growing back is fine too, it fits the freed room.
	require.NoError(t, e.Cast("a", testDate, ChoiceMePlusThree))
	assert.Equal(t, HardCeiling, totals(t, e).TotalAttending)
}

func TestCast_ShadowSlots(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Cast("alice", testDate, ChoiceShadow))
	require.NoError(t, e.Cast("bob", testDate, ChoiceShadow))

	assert.ErrorIs(t, e.Cast("carol", testDate, ChoiceShadow), ErrShadowSlotsFull)
	assert.ErrorIs(t, e.Cast("alice", testDate, ChoiceShadow), ErrAlreadyShadow)

	alloc := totals(t, e)
	assert.Equal(t, 2, alloc.ShadowCount)
	assert.Equal(t, 0, alloc.TotalAttending)
}

func TestCast_ShadowToAttendeeAndBack(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Cast("alice", testDate, ChoiceShadow))
	require.NoError(t, e.Cast("alice", testDate, ChoiceMePlusOne))

	alloc := totals(t, e)
	assert.Equal(t, 0, alloc.ShadowCount)
	assert.Equal(t, 2, alloc.TotalAttending)

	// Switching back fails once others hold both shadow slots.
	require.NoError(t, e.Cast("bob", testDate, ChoiceShadow))
	require.NoError(t, e.Cast("carol", testDate, ChoiceShadow))
	assert.ErrorIs(t, e.Cast("alice", testDate, ChoiceShadow), ErrShadowSlotsFull)
}

func TestCast_ShadowsDoNotConsumeAttendeeCapacity(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Cast("s1", testDate, ChoiceShadow))
	require.NoError(t, e.Cast("s2", testDate, ChoiceShadow))

	for _, user := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, e.Cast(user, testDate, ChoiceMePlusThree))
	}

	alloc := totals(t, e)
	assert.Equal(t, HardCeiling, alloc.TotalAttending)
	assert.Equal(t, 2, alloc.ShadowCount)
}

func TestCast_ConcurrentVotesNeverOvercommit(t *testing.T) {
	e := newTestEngine(t)

	// 10 parties of 3 want in; only 6 fit under the ceiling of 20.
	users := []string{"u0", "u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8", "u9"}

	var wg sync.WaitGroup
	errs := make(chan error, len(users))
	for _, user := range users {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			errs <- e.Cast(user, testDate, ChoiceMePlusTwo)
		}(user)
	}
	wg.Wait()
	close(errs)

	var accepted, rejected int
	for err := range errs {
		if err == nil {
			accepted++
		} else {
			require.ErrorIs(t, err, ErrCapacityExceeded)
			rejected++
		}
	}

	assert.Equal(t, 6, accepted)
	assert.Equal(t, 4, rejected)
	assert.Equal(t, 18, totals(t, e).TotalAttending)
}

func TestCast_ConcurrentShadowsNeverOvercommit(t *testing.T) {
	e := newTestEngine(t)

	users := []string{"s0", "s1", "s2", "s3", "s4"}

	var wg sync.WaitGroup
	errs := make(chan error, len(users))
	for _, user := range users {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			errs <- e.Cast(user, testDate, ChoiceShadow)
		}(user)
	}
	wg.Wait()
	close(errs)

	var accepted int
	for err := range errs {
		if err == nil {
			accepted++
		} else {
			require.ErrorIs(t, err, ErrShadowSlotsFull)
		}
	}

	assert.Equal(t, MaxShadows, accepted)
	assert.Equal(t, MaxShadows, totals(t, e).ShadowCount)
}
