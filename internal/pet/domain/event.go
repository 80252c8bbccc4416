package domain

import "time"

// EventType names the events the submission pipeline emits.
type EventType string

const (
	EventPairCreated EventType = "PairCreated"
	EventMoodUpdated EventType = "MoodUpdated"
)

// Event is one entry of a pair's append-only event log. Seq is a per-pair
// sequence number starting at 1, so replaying events for a pair is
// deterministic regardless of wall-clock ties.
type Event struct {
	ID     string
	PairID string
	Seq    int64
	Type   EventType

	// Mood is set for MoodUpdated events and nil for PairCreated.
	Mood *MoodState

	Timestamp time.Time
}
