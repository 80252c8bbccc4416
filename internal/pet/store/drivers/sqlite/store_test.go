package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/moodachu/moodachu/internal/pet/domain"
	"github.com/moodachu/moodachu/internal/pet/store"
	"github.com/moodachu/moodachu/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestUsersRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	u := domain.User{
		ID:          "auth0|abc123",
		Username:    "moodfan",
		DisplayName: "Mood Fan",
		Email:       "fan@example.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, got.Username)
	require.Equal(t, u.Email, got.Email)

	// Lookup is case-insensitive and trims whitespace.
	got, err = s.Users().GetUserByUsername(ctx, "  MoodFan ")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Same username from a different identity is a conflict.
	dup := u
	dup.ID = "auth0|other"
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func TestPairsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	p := domain.Pair{
		ID:           idx.New().String(),
		MoodState:    domain.MoodNeutral,
		UpdateCount:  0,
		ParticipantA: "alice",
		ParticipantB: "bob",
		PetLabel:     "Sparky",
		CreatedAt:    now,
		LastUpdate:   now,
	}
	require.NoError(t, s.Pairs().CreatePair(ctx, p))
	require.ErrorIs(t, s.Pairs().CreatePair(ctx, p), store.ErrAlreadyExists)

	later := now.Add(time.Minute)
	require.NoError(t, s.Pairs().UpdateMood(ctx, p.ID, domain.MoodPositive, later))
	require.NoError(t, s.Pairs().UpdateMood(ctx, p.ID, domain.MoodConflict, later.Add(time.Minute)))

	got, err := s.Pairs().GetPair(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, domain.MoodConflict, got.MoodState)
	require.Equal(t, int64(2), got.UpdateCount)

	require.ErrorIs(t, s.Pairs().UpdateMood(ctx, "missing", domain.MoodNeutral, later), store.ErrNotFound)

	pairs, err := s.Pairs().ListByParticipant(ctx, "BOB")
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	require.Equal(t, p.ID, pairs[0].ID)

	pairs, err = s.Pairs().ListByParticipant(ctx, "carol")
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestInvitationsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	inv := domain.Invitation{
		ID:           idx.New().String(),
		FromUserID:   "auth0|alice",
		FromUsername: "alice",
		ToUsername:   "bob",
		PetLabel:     "Sparky",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Invitations().CreateInvitation(ctx, inv))

	pending, err := s.Invitations().ListPendingForUsername(ctx, " Bob ")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, inv.ID, pending[0].ID)

	require.NoError(t, s.Invitations().MarkAccepted(ctx, inv.ID, now.Add(time.Minute)))

	// Accepting twice only matches a pending row the first time.
	require.ErrorIs(t, s.Invitations().MarkAccepted(ctx, inv.ID, now), store.ErrNotFound)

	pending, err = s.Invitations().ListPendingForUsername(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, pending)

	got, err := s.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.True(t, got.Accepted)
}

func TestEventsRepoSequencing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	pairA := domain.Pair{ID: idx.New().String(), CreatedAt: now, LastUpdate: now}
	pairB := domain.Pair{ID: idx.New().String(), CreatedAt: now, LastUpdate: now}
	require.NoError(t, s.Pairs().CreatePair(ctx, pairA))
	require.NoError(t, s.Pairs().CreatePair(ctx, pairB))

	mood := domain.MoodPositive
	ev1, err := s.Events().AppendEvent(ctx, domain.Event{
		ID:        idx.New().String(),
		PairID:    pairA.ID,
		Type:      domain.EventPairCreated,
		Timestamp: now,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), ev1.Seq)

	ev2, err := s.Events().AppendEvent(ctx, domain.Event{
		ID:        idx.New().String(),
		PairID:    pairA.ID,
		Type:      domain.EventMoodUpdated,
		Mood:      &mood,
		Timestamp: now,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), ev2.Seq)

	// Sequences are per pair, not global.
	evB, err := s.Events().AppendEvent(ctx, domain.Event{
		ID:        idx.New().String(),
		PairID:    pairB.ID,
		Type:      domain.EventPairCreated,
		Timestamp: now,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), evB.Seq)

	events, err := s.Events().ListEventsByPair(ctx, pairA.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, domain.EventPairCreated, events[0].Type)
	require.Nil(t, events[0].Mood)
	require.Equal(t, domain.EventMoodUpdated, events[1].Type)
	require.NotNil(t, events[1].Mood)
	require.Equal(t, domain.MoodPositive, *events[1].Mood)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	p := domain.Pair{ID: idx.New().String(), CreatedAt: now, LastUpdate: now}

	errBoom := context.Canceled
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Pairs().CreatePair(ctx, p); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = s.Pairs().GetPair(ctx, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	p := domain.Pair{ID: idx.New().String(), CreatedAt: now, LastUpdate: now}

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Pairs().CreatePair(ctx, p); err != nil {
			return err
		}
		_, err := tx.Events().AppendEvent(ctx, domain.Event{
			ID:        idx.New().String(),
			PairID:    p.ID,
			Type:      domain.EventPairCreated,
			Timestamp: now,
		})
		return err
	})
	require.NoError(t, err)

	got, err := s.Pairs().GetPair(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	events, err := s.Events().ListEventsByPair(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
}
