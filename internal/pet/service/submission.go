package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/moodachu/moodachu/internal/pet/domain"
	"github.com/moodachu/moodachu/internal/pet/store"
	"github.com/moodachu/moodachu/pkg/idx"
	"github.com/moodachu/moodachu/pkg/slogx"
	"github.com/moodachu/moodachu/pkg/zkproof"
)

var (
	ErrInvalidMoodValue  = errors.New("claimed mood outside the valid range")
	ErrInvalidProofShape = errors.New("proof bytes are structurally malformed")
	ErrProofInvalid      = errors.New("proof does not verify for the claimed mood")
	ErrInvalidPairID     = errors.New("pair id must not be empty")
)

// ProofVerifier checks a serialized proof against a claimed public mood.
// *zkproof.Verifier satisfies this.
type ProofVerifier interface {
	Verify(mood uint8, proofBytes []byte) (bool, error)
}

// SubmissionResult reports what one accepted submission did to the pair.
type SubmissionResult struct {
	Pair    domain.Pair
	Created bool
	Events  []domain.Event
}

// SubmissionService runs the proof submission pipeline: validate, verify,
// then mutate the pair and its event log atomically.
type SubmissionService struct {
	Store    store.Store
	Verifier ProofVerifier

	locks *keyedMutex
}

func NewSubmissionService(st store.Store, verifier ProofVerifier) *SubmissionService {
	return &SubmissionService{
		Store:    st,
		Verifier: verifier,
		locks:    newKeyedMutex(),
	}
}

// Submit verifies a mood proof and applies it to the pair, creating the pair
// on first submission. No state changes unless the proof verifies.
func (s *SubmissionService) Submit(
	ctx context.Context,
	pairID string,
	claimedMood uint8,
	proofBytes []byte,
) (SubmissionResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Cheap validation before any cryptography.
	if pairID == "" {
		return SubmissionResult{}, ErrInvalidPairID
	}
	mood := domain.MoodState(claimedMood)
	if !mood.Valid() {
		log.Warn("submission with out-of-range mood",
			slog.String("pair_id", pairID),
			slog.Int("claimed_mood", int(claimedMood)),
		)
		return SubmissionResult{}, ErrInvalidMoodValue
	}

	// 2. Verify outside the pair lock; verification is pure and CPU-bound.
	ok, err := s.Verifier.Verify(claimedMood, proofBytes)
	if err != nil {
		if errors.Is(err, zkproof.ErrInvalidProofShape) {
			log.Warn("submission with malformed proof", slog.String("pair_id", pairID))
			return SubmissionResult{}, ErrInvalidProofShape
		}
		log.Error("proof verification failed", slog.Any("error", err))
		return SubmissionResult{}, err
	}
	if !ok {
		log.Warn("submission with invalid proof",
			slog.String("pair_id", pairID),
			slog.Int("claimed_mood", int(claimedMood)),
		)
		return SubmissionResult{}, ErrProofInvalid
	}

	// 3. Serialize per pair so concurrent submissions cannot interleave their
	// read-modify-write, then apply everything in one transaction.
	unlock := s.locks.Lock(pairID)
	defer unlock()

	now := time.Now().UTC()
	var result SubmissionResult

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		pair, err := tx.Pairs().GetPair(ctx, pairID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return s.createPair(ctx, tx, pairID, mood, now, &result)
		case err != nil:
			return err
		default:
			return s.updatePair(ctx, tx, pair, mood, now, &result)
		}
	})
	if err != nil {
		log.Error("failed to apply submission",
			slog.String("pair_id", pairID),
			slog.Any("error", err),
		)
		return SubmissionResult{}, err
	}

	log.Info("mood submission applied",
		slog.String("pair_id", pairID),
		slog.String("mood", mood.String()),
		slog.Bool("created", result.Created),
		slog.Int64("update_count", result.Pair.UpdateCount),
	)

	return result, nil
}

// createPair handles the first submission for a pair id. The creating
// submission counts as the first update, so the log opens with PairCreated
// followed by MoodUpdated.
func (s *SubmissionService) createPair(
	ctx context.Context,
	tx store.Tx,
	pairID string,
	mood domain.MoodState,
	now time.Time,
	result *SubmissionResult,
) error {
	pair := domain.Pair{
		ID:          pairID,
		MoodState:   mood,
		UpdateCount: 1,
		CreatedAt:   now,
		LastUpdate:  now,
	}
	if err := tx.Pairs().CreatePair(ctx, pair); err != nil {
		return err
	}

	created, err := tx.Events().AppendEvent(ctx, domain.Event{
		ID:        idx.New().String(),
		PairID:    pairID,
		Type:      domain.EventPairCreated,
		Timestamp: now,
	})
	if err != nil {
		return err
	}
	updated, err := tx.Events().AppendEvent(ctx, domain.Event{
		ID:        idx.New().String(),
		PairID:    pairID,
		Type:      domain.EventMoodUpdated,
		Mood:      &mood,
		Timestamp: now,
	})
	if err != nil {
		return err
	}

	result.Pair = pair
	result.Created = true
	result.Events = []domain.Event{created, updated}
	return nil
}

func (s *SubmissionService) updatePair(
	ctx context.Context,
	tx store.Tx,
	pair domain.Pair,
	mood domain.MoodState,
	now time.Time,
	result *SubmissionResult,
) error {
	if err := tx.Pairs().UpdateMood(ctx, pair.ID, mood, now); err != nil {
		return err
	}

	ev, err := tx.Events().AppendEvent(ctx, domain.Event{
		ID:        idx.New().String(),
		PairID:    pair.ID,
		Type:      domain.EventMoodUpdated,
		Mood:      &mood,
		Timestamp: now,
	})
	if err != nil {
		return err
	}

	pair.MoodState = mood
	pair.UpdateCount++
	pair.LastUpdate = now

	result.Pair = pair
	result.Created = false
	result.Events = []domain.Event{ev}
	return nil
}
