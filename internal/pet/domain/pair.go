package domain

import (
	"strings"
	"time"
)

// MoodState is the public five-value mood enumeration shared by both
// partners. It is the only thing the pet ever reveals about the underlying
// private emotions.
type MoodState uint8

const (
	MoodNeutral MoodState = iota
	MoodPositive
	MoodLowEnergy
	MoodConflict
	MoodGrowth
)

// Valid reports whether m is inside the enumeration.
func (m MoodState) Valid() bool { return m <= MoodGrowth }

func (m MoodState) String() string {
	switch m {
	case MoodNeutral:
		return "neutral"
	case MoodPositive:
		return "positive"
	case MoodLowEnergy:
		return "low_energy"
	case MoodConflict:
		return "conflict"
	case MoodGrowth:
		return "growth"
	default:
		return "unknown"
	}
}

// Pair is the shared record of two linked identities and their pet.
//
// UpdateCount equals the number of successful mood mutations recorded for the
// pair, counting the creating submission itself. Pairs created by invitation
// acceptance start at 0 because no mood has been proven yet; pairs created by
// a standalone proof submission start at 1. Pairs are never deleted.
type Pair struct {
	ID          string
	MoodState   MoodState
	UpdateCount int64

	// ParticipantA/B are usernames, order not significant. Both are empty on
	// pairs created by a standalone proof submission that no invitation
	// preceded.
	ParticipantA string
	ParticipantB string

	// PetLabel is the display name chosen at invitation time.
	PetLabel string

	CreatedAt  time.Time
	LastUpdate time.Time
}

// HasParticipant reports whether username occupies either slot,
// case-insensitively. Matching is done in the store for queries; this helper
// exists for in-memory checks.
func (p Pair) HasParticipant(username string) bool {
	username = strings.TrimSpace(username)
	return strings.EqualFold(p.ParticipantA, username) ||
		strings.EqualFold(p.ParticipantB, username)
}
