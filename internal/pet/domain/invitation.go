package domain

import "time"

// Invitation is a one-time, one-directional proposal to form a Pair between
// two usernames. It transitions once from pending to accepted and is terminal
// after that; there is no reject or expiry transition.
type Invitation struct {
	ID           string
	FromUserID   string
	FromUsername string
	ToUsername   string
	PetLabel     string
	Accepted     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
