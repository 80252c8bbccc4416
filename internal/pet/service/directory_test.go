package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moodachu/moodachu/internal/pet/store"
	"github.com/moodachu/moodachu/internal/pet/store/drivers/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		fallbacks []string
		want      string
	}{
		{
			name:      "already clean",
			candidate: "alice",
			want:      "alice",
		},
		{
			name:      "uppercase and spaces",
			candidate: "  Alice Smith  ",
			want:      "alicesmith",
		},
		{
			name:      "symbols stripped",
			candidate: "al!ce@2024",
			want:      "alce2024",
		},
		{
			name:      "underscore and dash survive",
			candidate: "al_ice-99",
			want:      "al_ice-99",
		},
		{
			name:      "empty falls back to display name",
			candidate: "",
			fallbacks: []string{"Bob Jones", "bob@example.com"},
			want:      "bobjones",
		},
		{
			name:      "all symbols falls through to email seed",
			candidate: "!!!",
			fallbacks: []string{"@@@", "bob"},
			want:      "bob",
		},
		{
			name:      "nothing usable anywhere",
			candidate: "!!!",
			fallbacks: []string{"", "   "},
			want:      "user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeUsername(tt.candidate, tt.fallbacks...)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRegisterAssignsAndKeepsUsername(t *testing.T) {
	svc := &DirectoryService{Store: newTestStore(t)}
	ctx := context.Background()

	u, err := svc.Register(ctx, "auth0|alice", "Alice!", "Alice Smith", "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)

	// Second registration for the same identity changes nothing, even with a
	// different requested name.
	again, err := svc.Register(ctx, "auth0|alice", "totally-different", "", "")
	require.NoError(t, err)
	require.Equal(t, u.Username, again.Username)
	require.Equal(t, u.ID, again.ID)
}

func TestRegisterSuffixesOnCollision(t *testing.T) {
	svc := &DirectoryService{Store: newTestStore(t)}
	ctx := context.Background()

	first, err := svc.Register(ctx, "id-1", "sam", "", "")
	require.NoError(t, err)
	require.Equal(t, "sam", first.Username)

	second, err := svc.Register(ctx, "id-2", "sam", "", "")
	require.NoError(t, err)
	require.Equal(t, "sam1", second.Username)

	third, err := svc.Register(ctx, "id-3", "SAM", "", "")
	require.NoError(t, err)
	require.Equal(t, "sam2", third.Username)
}

func TestRegisterFallsBackToEmailLocalPart(t *testing.T) {
	svc := &DirectoryService{Store: newTestStore(t)}
	ctx := context.Background()

	u, err := svc.Register(ctx, "id-1", "", "", "Pat.Doe@example.com")
	require.NoError(t, err)
	require.Equal(t, "patdoe", u.Username)
}

func TestResolve(t *testing.T) {
	svc := &DirectoryService{Store: newTestStore(t)}
	ctx := context.Background()

	u, err := svc.Register(ctx, "id-1", "casey", "", "")
	require.NoError(t, err)

	got, err := svc.Resolve(ctx, "  CASEY ")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = svc.Resolve(ctx, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}
