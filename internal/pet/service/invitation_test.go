package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moodachu/moodachu/internal/pet/domain"
	"github.com/moodachu/moodachu/internal/pet/store"
)

type recordingNotifier struct {
	calls atomic.Int64
	fail  bool
}

func (n *recordingNotifier) InvitationAccepted(ctx context.Context, toEmail, acceptedBy, petLabel string) error {
	n.calls.Add(1)
	if n.fail {
		return errors.New("smtp down")
	}
	return nil
}

func registerTwo(t *testing.T, st store.Store) (alice, bob domain.User) {
	t.Helper()
	dir := &DirectoryService{Store: st}
	ctx := context.Background()

	alice, err := dir.Register(ctx, "id-alice", "alice", "Alice", "alice@example.com")
	require.NoError(t, err)
	bob, err = dir.Register(ctx, "id-bob", "bob", "Bob", "bob@example.com")
	require.NoError(t, err)
	return alice, bob
}

func TestProposeRequiresExistingRecipient(t *testing.T) {
	st := newTestStore(t)
	alice, _ := registerTwo(t, st)
	svc := NewInvitationService(st, nil)
	ctx := context.Background()

	_, err := svc.Propose(ctx, alice.ID, "nobody", "Sparky")
	require.ErrorIs(t, err, ErrRecipientNotFound)

	// Nothing was persisted for the failed proposal.
	pending, err := st.Invitations().ListPendingForUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestProposeRejectsSelfInvitation(t *testing.T) {
	st := newTestStore(t)
	alice, _ := registerTwo(t, st)
	svc := NewInvitationService(st, nil)

	_, err := svc.Propose(context.Background(), alice.ID, "ALICE", "Sparky")
	require.ErrorIs(t, err, ErrSelfInvitation)
}

func TestProposeAndListPending(t *testing.T) {
	st := newTestStore(t)
	alice, bob := registerTwo(t, st)
	svc := NewInvitationService(st, nil)
	ctx := context.Background()

	inv, err := svc.Propose(ctx, alice.ID, "Bob", "Sparky")
	require.NoError(t, err)
	require.Equal(t, alice.Username, inv.FromUsername)
	require.Equal(t, bob.Username, inv.ToUsername)
	require.False(t, inv.Accepted)

	pending, err := svc.ListPending(ctx, bob.Username)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, inv.ID, pending[0].ID)

	// Repeat proposals are allowed; each is its own invitation.
	_, err = svc.Propose(ctx, alice.ID, "bob", "Sparky II")
	require.NoError(t, err)

	pending, err = svc.ListPending(ctx, bob.Username)
	require.NoError(t, err)
	require.Len(t, pending, 2)
}

func TestAcceptCreatesPair(t *testing.T) {
	st := newTestStore(t)
	alice, bob := registerTwo(t, st)
	notifier := &recordingNotifier{}
	svc := NewInvitationService(st, notifier)
	ctx := context.Background()

	inv, err := svc.Propose(ctx, alice.ID, "bob", "Sparky")
	require.NoError(t, err)

	accepted, pair, err := svc.Accept(ctx, inv.ID)
	require.NoError(t, err)
	require.True(t, accepted.Accepted)
	require.Equal(t, domain.MoodNeutral, pair.MoodState)
	require.Equal(t, int64(0), pair.UpdateCount)
	require.Equal(t, "Sparky", pair.PetLabel)
	require.True(t, pair.HasParticipant(alice.Username))
	require.True(t, pair.HasParticipant(bob.Username))

	// The pair opens its event log with PairCreated.
	events, err := st.Events().ListEventsByPair(ctx, pair.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, domain.EventPairCreated, events[0].Type)

	require.Equal(t, int64(1), notifier.calls.Load())
}

func TestAcceptUnknownInvitation(t *testing.T) {
	svc := NewInvitationService(newTestStore(t), nil)

	_, _, err := svc.Accept(context.Background(), "missing")
	require.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestAcceptTwiceFails(t *testing.T) {
	st := newTestStore(t)
	alice, _ := registerTwo(t, st)
	svc := NewInvitationService(st, nil)
	ctx := context.Background()

	inv, err := svc.Propose(ctx, alice.ID, "bob", "")
	require.NoError(t, err)

	_, _, err = svc.Accept(ctx, inv.ID)
	require.NoError(t, err)

	_, _, err = svc.Accept(ctx, inv.ID)
	require.ErrorIs(t, err, ErrAlreadyAccepted)
}

func TestAcceptConcurrentlyCreatesExactlyOnePair(t *testing.T) {
	st := newTestStore(t)
	alice, bob := registerTwo(t, st)
	svc := NewInvitationService(st, nil)
	ctx := context.Background()

	inv, err := svc.Propose(ctx, alice.ID, "bob", "Sparky")
	require.NoError(t, err)

	const n = 8
	var (
		wg        sync.WaitGroup
		successes atomic.Int64
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _, err := svc.Accept(ctx, inv.ID)
			if err == nil {
				successes.Add(1)
				return
			}
			require.ErrorIs(t, err, ErrAlreadyAccepted)
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), successes.Load())

	pairs, err := st.Pairs().ListByParticipant(ctx, bob.Username)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
}

func TestAcceptSurvivesNotifierFailure(t *testing.T) {
	st := newTestStore(t)
	alice, _ := registerTwo(t, st)
	notifier := &recordingNotifier{fail: true}
	svc := NewInvitationService(st, notifier)
	ctx := context.Background()

	inv, err := svc.Propose(ctx, alice.ID, "bob", "")
	require.NoError(t, err)

	_, pair, err := svc.Accept(ctx, inv.ID)
	require.NoError(t, err)

	got, err := st.Pairs().GetPair(ctx, pair.ID)
	require.NoError(t, err)
	require.Equal(t, pair.ID, got.ID)
	require.Equal(t, int64(1), notifier.calls.Load())
}
