package store

import (
	"context"
	"errors"
	"time"

	"github.com/moodachu/moodachu/internal/pet/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and make it obvious
// which operations participate in a transaction.
type Store interface {
	Users() Users
	Pairs() Pairs
	Invitations() Invitations
	Events() Events

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing if fn returns nil
	// and rolling back otherwise. This is the recommended way to do
	// multi-step writes (accept + pair creation, pair update + event).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Same repos, plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by its identity-provider subject id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername performs a case-insensitive, trimmed lookup.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user. The username column is unique, so a
	// concurrent registration race surfaces as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error
}

type Pairs interface {
	// GetPair returns a pair by id.
	GetPair(ctx context.Context, id string) (domain.Pair, error)

	// CreatePair inserts a new pair record exactly as given.
	CreatePair(ctx context.Context, p domain.Pair) error

	// UpdateMood sets the mood, increments update_count, and refreshes
	// last_update in a single statement.
	UpdateMood(ctx context.Context, id string, mood domain.MoodState, now time.Time) error

	// ListByParticipant returns pairs where either participant slot matches
	// username case-insensitively after trimming.
	ListByParticipant(ctx context.Context, username string) ([]domain.Pair, error)
}

type Invitations interface {
	// CreateInvitation persists a new pending invitation.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation by id.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// ListPendingForUsername returns unaccepted invitations addressed to
	// username, oldest first.
	ListPendingForUsername(ctx context.Context, username string) ([]domain.Invitation, error)

	// MarkAccepted flips accepted to true. It only matches pending rows, so
	// a lost race reports ErrNotFound rather than silently re-accepting.
	MarkAccepted(ctx context.Context, id string, now time.Time) error
}

type Events interface {
	// AppendEvent appends ev to the pair's log, assigning the next per-pair
	// sequence number. The returned event carries the assigned Seq.
	AppendEvent(ctx context.Context, ev domain.Event) (domain.Event, error)

	// ListEventsByPair returns a pair's events in sequence order.
	ListEventsByPair(ctx context.Context, pairID string) ([]domain.Event, error)
}
