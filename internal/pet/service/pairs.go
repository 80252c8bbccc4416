package service

import (
	"context"
	"errors"

	"github.com/moodachu/moodachu/internal/pet/domain"
	"github.com/moodachu/moodachu/internal/pet/store"
)

var ErrPairNotFound = errors.New("pair not found")

// PairService exposes read access to pairs and their event logs.
type PairService struct {
	Store store.Store
}

func (s *PairService) Get(ctx context.Context, pairID string) (domain.Pair, error) {
	pair, err := s.Store.Pairs().GetPair(ctx, pairID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Pair{}, ErrPairNotFound
		}
		return domain.Pair{}, err
	}
	return pair, nil
}

func (s *PairService) ListByParticipant(ctx context.Context, username string) ([]domain.Pair, error) {
	return s.Store.Pairs().ListByParticipant(ctx, username)
}

// ListEvents returns the pair's event log in sequence order. The pair must
// exist; an empty log on an existing pair returns an empty slice.
func (s *PairService) ListEvents(ctx context.Context, pairID string) ([]domain.Event, error) {
	if _, err := s.Get(ctx, pairID); err != nil {
		return nil, err
	}
	return s.Store.Events().ListEventsByPair(ctx, pairID)
}
