package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/moodachu/moodachu/internal/pet/domain"
	"github.com/moodachu/moodachu/internal/pet/store"
	"github.com/moodachu/moodachu/pkg/slogx"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// DirectoryService assigns usernames and resolves them back to users. A
// username is assigned exactly once per identity; registering again returns
// the existing record.
type DirectoryService struct {
	Store store.Store
}

// NormalizeUsername lowercases candidate and strips every rune outside
// [a-z0-9_-]. If nothing survives, the fallback seeds are normalized in order
// until one yields a non-empty result; the final fallback is "user".
func NormalizeUsername(candidate string, fallbackSeeds ...string) string {
	if n := normalizeOne(candidate); n != "" {
		return n
	}
	for _, seed := range fallbackSeeds {
		if n := normalizeOne(seed); n != "" {
			return n
		}
	}
	return "user"
}

func normalizeOne(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Register binds id to a username. It is idempotent per id: a second call
// returns the already-registered user untouched regardless of the requested
// username.
//
// On collision the smallest positive integer suffix that frees the name is
// appended (alice, alice1, alice2, ...).
func (s *DirectoryService) Register(
	ctx context.Context,
	id string,
	requestedUsername string,
	displayName string,
	email string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if id == "" {
		return domain.User{}, ErrUserNotFound
	}

	// 1. Idempotency: an identity that already registered keeps its name.
	existing, err := s.Store.Users().GetUserByID(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Derive the base username, falling back to the display name and the
	// email local part when the request carries nothing usable.
	base := NormalizeUsername(requestedUsername, displayName, emailLocalPart(email))

	// 3. Find the first free name: base, then base1, base2, ...
	username := base
	for suffix := 1; ; suffix++ {
		_, err := s.Store.Users().GetUserByUsername(ctx, username)
		if errors.Is(err, store.ErrNotFound) {
			break
		}
		if err != nil {
			log.Error("failed to check username availability", slog.Any("error", err))
			return domain.User{}, err
		}
		username = fmt.Sprintf("%s%d", base, suffix)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:          id,
		Username:    username,
		DisplayName: strings.TrimSpace(displayName),
		Email:       strings.TrimSpace(email),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race on the unique username; the next attempt will pick
			// the following suffix.
			log.Warn("username registration race", slog.String("username", username))
			return s.Register(ctx, id, requestedUsername, displayName, email)
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Get returns the user registered for the identity id.
func (s *DirectoryService) Get(ctx context.Context, id string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// Resolve returns the user owning username, matching case-insensitively after
// trimming.
func (s *DirectoryService) Resolve(ctx context.Context, username string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func emailLocalPart(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return ""
}
