package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moodachu/moodachu/internal/pet/domain"
)

func TestPairServiceGet(t *testing.T) {
	st := newTestStore(t)
	sub := NewSubmissionService(st, &stubVerifier{})
	svc := &PairService{Store: st}
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrPairNotFound)

	res, err := sub.Submit(ctx, "pair-1", uint8(domain.MoodLowEnergy), []byte("p"))
	require.NoError(t, err)

	pair, err := svc.Get(ctx, "pair-1")
	require.NoError(t, err)
	require.Equal(t, res.Pair.MoodState, pair.MoodState)
}

func TestPairServiceListEvents(t *testing.T) {
	st := newTestStore(t)
	sub := NewSubmissionService(st, &stubVerifier{})
	svc := &PairService{Store: st}
	ctx := context.Background()

	_, err := svc.ListEvents(ctx, "missing")
	require.ErrorIs(t, err, ErrPairNotFound)

	_, err = sub.Submit(ctx, "pair-1", uint8(domain.MoodPositive), []byte("p"))
	require.NoError(t, err)
	_, err = sub.Submit(ctx, "pair-1", uint8(domain.MoodGrowth), []byte("p"))
	require.NoError(t, err)

	events, err := svc.ListEvents(ctx, "pair-1")
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, domain.EventPairCreated, events[0].Type)
}

func TestPairServiceListByParticipant(t *testing.T) {
	st := newTestStore(t)
	alice, bob := registerTwo(t, st)
	inv := NewInvitationService(st, nil)
	svc := &PairService{Store: st}
	ctx := context.Background()

	proposal, err := inv.Propose(ctx, alice.ID, "bob", "Sparky")
	require.NoError(t, err)
	_, created, err := inv.Accept(ctx, proposal.ID)
	require.NoError(t, err)

	pairs, err := svc.ListByParticipant(ctx, bob.Username)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	require.Equal(t, created.ID, pairs[0].ID)
}
