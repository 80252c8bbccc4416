package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/moodachu/moodachu/internal/pet/domain"
	"github.com/moodachu/moodachu/internal/pet/notify"
	"github.com/moodachu/moodachu/internal/pet/store"
	"github.com/moodachu/moodachu/pkg/idx"
	"github.com/moodachu/moodachu/pkg/slogx"
)

var (
	ErrRecipientNotFound  = errors.New("invited username is not registered")
	ErrSelfInvitation     = errors.New("cannot invite yourself")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrAlreadyAccepted    = errors.New("invitation has already been accepted")
)

// InvitationService manages the propose/accept handshake that links two
// usernames into a pair.
type InvitationService struct {
	Store    store.Store
	Notifier notify.Sender

	locks *keyedMutex
}

func NewInvitationService(st store.Store, notifier notify.Sender) *InvitationService {
	return &InvitationService{
		Store:    st,
		Notifier: notifier,
		locks:    newKeyedMutex(),
	}
}

// Propose creates a pending invitation from the caller to toUsername. The
// recipient must already exist; nothing is persisted otherwise. Repeat
// proposals between the same two users are allowed, each accepted one yields
// its own pair.
func (s *InvitationService) Propose(
	ctx context.Context,
	fromUserID string,
	toUsername string,
	petLabel string,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. The proposer must be registered.
	from, err := s.Store.Users().GetUserByID(ctx, fromUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrUserNotFound
		}
		log.Error("failed to fetch proposer", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 2. Resolve the recipient before persisting anything.
	to, err := s.Store.Users().GetUserByUsername(ctx, toUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invitation to unknown username",
				slog.String("from", from.Username),
				slog.String("to_username", toUsername),
			)
			return domain.Invitation{}, ErrRecipientNotFound
		}
		log.Error("failed to resolve recipient", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 3. A pet needs two people.
	if to.ID == from.ID {
		return domain.Invitation{}, ErrSelfInvitation
	}

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:           idx.New().String(),
		FromUserID:   from.ID,
		FromUsername: from.Username,
		ToUsername:   to.Username,
		PetLabel:     strings.TrimSpace(petLabel),
		Accepted:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	log.Info("invitation proposed",
		slog.String("invitation_id", inv.ID),
		slog.String("from", inv.FromUsername),
		slog.String("to", inv.ToUsername),
	)

	return inv, nil
}

// ListPending returns the open invitations addressed to username, oldest
// first.
func (s *InvitationService) ListPending(ctx context.Context, username string) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListPendingForUsername(ctx, username)
}

// Accept transitions the invitation to accepted and creates the shared pair,
// both in one transaction. Accepting is at-most-once: a concurrent second
// accept observes ErrAlreadyAccepted and no second pair exists.
func (s *InvitationService) Accept(ctx context.Context, invitationID string) (domain.Invitation, domain.Pair, error) {
	log := slogx.FromContext(ctx)

	// Serialize per invitation so two accepts cannot both pass the pending
	// check.
	unlock := s.locks.Lock(invitationID)
	defer unlock()

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, domain.Pair{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, domain.Pair{}, err
	}
	if inv.Accepted {
		return domain.Invitation{}, domain.Pair{}, ErrAlreadyAccepted
	}

	now := time.Now().UTC()
	pair := domain.Pair{
		ID:           idx.New().String(),
		MoodState:    domain.MoodNeutral,
		UpdateCount:  0,
		ParticipantA: inv.FromUsername,
		ParticipantB: inv.ToUsername,
		PetLabel:     inv.PetLabel,
		CreatedAt:    now,
		LastUpdate:   now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().MarkAccepted(ctx, inv.ID, now); err != nil {
			// Only pending rows match, so a lost race surfaces here.
			if errors.Is(err, store.ErrNotFound) {
				return ErrAlreadyAccepted
			}
			return err
		}
		if err := tx.Pairs().CreatePair(ctx, pair); err != nil {
			return err
		}
		_, err := tx.Events().AppendEvent(ctx, domain.Event{
			ID:        idx.New().String(),
			PairID:    pair.ID,
			Type:      domain.EventPairCreated,
			Timestamp: now,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyAccepted) {
			log.Error("failed to accept invitation",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
		}
		return domain.Invitation{}, domain.Pair{}, err
	}

	inv.Accepted = true
	inv.UpdatedAt = now

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("pair_id", pair.ID),
	)

	// Best effort: tell the proposer. A notifier failure never undoes the
	// accept.
	s.notifyProposer(ctx, inv, pair)

	return inv, pair, nil
}

func (s *InvitationService) notifyProposer(ctx context.Context, inv domain.Invitation, pair domain.Pair) {
	if s.Notifier == nil {
		return
	}
	log := slogx.FromContext(ctx)

	from, err := s.Store.Users().GetUserByID(ctx, inv.FromUserID)
	if err != nil || from.Email == "" {
		return
	}

	if err := s.Notifier.InvitationAccepted(ctx, from.Email, inv.ToUsername, pair.PetLabel); err != nil {
		log.Warn("failed to notify proposer",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
	}
}
