package domain

import "time"

// User binds an identity-provider subject to a unique username. The ID is
// opaque and assigned externally; the username is assigned once at
// registration and never changes afterwards.
type User struct {
	ID          string
	Username    string
	DisplayName string
	Email       string // optional, used only for notifications
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
