package attendance

import "sort"

// Capacity thresholds for a session.
const (
	// CoreCapacity is the head-count up to which votes are shown as
	// confirmed attendees without qualification.
	CoreCapacity = 10

	// ExtendedCapacity is the head-count at which the waitlist collapses
	// and everyone counted is shown as attending.
	ExtendedCapacity = 14

	// HardCeiling is the absolute head-count cap. Votes that would push
	// the total past it are rejected outright.
	HardCeiling = 20

	// MaxShadows caps the non-counted observer slots.
	MaxShadows = 2
)

// Allocation partitions a poll's votes into display tiers.
type Allocation struct {
	Attendees []Vote
	Waitlist  []Vote
	Shadows   []Vote

	TotalAttending int
	ShadowCount    int
}

// Allocate partitions the poll's current votes into tiers. Capacity is
// granted strictly by submission time, ties broken by insertion sequence.
// Pure function: same votes in, same tiers out.
//
// The walk accumulates head-count. A vote lands in the attendee tier
// while it still fits within core capacity, on the waitlist until the
// running total reaches extended capacity, and in an overflow bucket
// past that. If the final total reaches extended capacity the waitlist
// and overflow are promoted wholesale into the attendee tier: the poll
// is big enough that the waitlist concept collapses.
func Allocate(votes []Vote) Allocation {
	var regular, shadows []Vote
	for _, v := range votes {
		if v.Choice.IsShadow() {
			shadows = append(shadows, v)
		} else {
			regular = append(regular, v)
		}
	}
	sortBySubmission(regular)
	sortBySubmission(shadows)

	var attendees, waitlist, overflow []Vote
	total := 0
	for _, v := range regular {
		switch {
		case total >= ExtendedCapacity:
			overflow = append(overflow, v)
		case total >= CoreCapacity:
			waitlist = append(waitlist, v)
		case total+v.Weight <= CoreCapacity:
			attendees = append(attendees, v)
		default:
			waitlist = append(waitlist, v)
		}
		total += v.Weight
	}

	if total >= ExtendedCapacity {
		attendees = append(attendees, waitlist...)
		attendees = append(attendees, overflow...)
		waitlist = nil
	}

	alloc := Allocation{
		Attendees:   attendees,
		Waitlist:    waitlist,
		Shadows:     shadows,
		ShadowCount: len(shadows),
	}
	for _, v := range attendees {
		alloc.TotalAttending += v.Weight
	}
	return alloc
}

// Capacity is the denominator displayed next to the attending total: the
// capacity tier the poll's demand has actually reached.
func (a Allocation) Capacity() int {
	demand := a.TotalAttending
	for _, v := range a.Waitlist {
		demand += v.Weight
	}
	switch {
	case demand <= CoreCapacity:
		return CoreCapacity
	case demand < ExtendedCapacity:
		return ExtendedCapacity
	default:
		return HardCeiling
	}
}

func sortBySubmission(votes []Vote) {
	sort.SliceStable(votes, func(i, j int) bool {
		if votes[i].SubmittedAt.Equal(votes[j].SubmittedAt) {
			return votes[i].Seq < votes[j].Seq
		}
		return votes[i].SubmittedAt.Before(votes[j].SubmittedAt)
	})
}
