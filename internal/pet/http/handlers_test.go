package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/moodachu/moodachu/internal/pet/domain"
	"github.com/moodachu/moodachu/internal/pet/service"
	"github.com/moodachu/moodachu/internal/pet/store/drivers/sqlite"
	"github.com/moodachu/moodachu/pkg/jwtx"
	"github.com/moodachu/moodachu/pkg/petsdk"
	"github.com/moodachu/moodachu/pkg/slogx"
)

const (
	testSecret = "test-secret"
	testIssuer = "test-issuer"
)

type acceptAllVerifier struct{}

func (acceptAllVerifier) Verify(mood uint8, proofBytes []byte) (bool, error) {
	return len(proofBytes) > 0, nil
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "pet-service",
		Version: "test",
		Env:     "dev",
		Level:   "error",
		Format:  "text",
	})

	r := NewRouter(
		jwtx.NewHS256Verifier([]byte(testSecret), testIssuer),
		"test",
		st,
		logger,
	)
	r.DirectoryService = &service.DirectoryService{Store: st}
	r.SubmissionService = service.NewSubmissionService(st, acceptAllVerifier{})
	r.InvitationService = service.NewInvitationService(st, nil)
	r.PairService = &service.PairService{Store: st}
	r.ApplyRoutes()
	return r
}

func mintToken(t *testing.T, subject, name, email string) string {
	t.Helper()

	claims := jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Name:  name,
		Email: email,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequestWithContext(context.Background(), method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := mintToken(t, "id-alice", "Alice Smith", "alice@example.com")

	rec := doJSON(t, r, http.MethodPost, "/v1/users/register", token, petsdk.RegisterRequest{})
	require.Equal(t, http.StatusOK, rec.Code)

	user := decode[petsdk.UserResponse](t, rec)
	require.Equal(t, "alicesmith", user.Username)

	// Registering again keeps the same username.
	rec = doJSON(t, r, http.MethodPost, "/v1/users/register", token,
		petsdk.RegisterRequest{Username: "different"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alicesmith", decode[petsdk.UserResponse](t, rec).Username)
}

func TestRegisterRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/users/register", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResolveEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := mintToken(t, "id-bob", "", "")

	rec := doJSON(t, r, http.MethodPost, "/v1/users/register", token,
		petsdk.RegisterRequest{Username: "bob"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/v1/users/BOB", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "bob", decode[petsdk.UserResponse](t, rec).Username)

	rec = doJSON(t, r, http.MethodGet, "/v1/users/ghost", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitProofEndpoint(t *testing.T) {
	r := newTestRouter(t)
	proof := base64.StdEncoding.EncodeToString([]byte("proof"))

	rec := doJSON(t, r, http.MethodPost, "/v1/proofs", "", petsdk.SubmitProofRequest{
		PairID:      "pair-1",
		ClaimedMood: uint8(domain.MoodPositive),
		Proof:       proof,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[petsdk.SubmitProofResponse](t, rec)
	require.True(t, resp.Created)
	require.Equal(t, int64(1), resp.Pair.UpdateCount)
	require.Equal(t, "positive", resp.Pair.Mood)
	require.Len(t, resp.Events, 2)

	// Second submission updates in place.
	rec = doJSON(t, r, http.MethodPost, "/v1/proofs", "", petsdk.SubmitProofRequest{
		PairID:      "pair-1",
		ClaimedMood: uint8(domain.MoodGrowth),
		Proof:       proof,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[petsdk.SubmitProofResponse](t, rec)
	require.False(t, resp.Created)
	require.Equal(t, int64(2), resp.Pair.UpdateCount)
}

func TestSubmitProofValidation(t *testing.T) {
	r := newTestRouter(t)
	proof := base64.StdEncoding.EncodeToString([]byte("proof"))

	// Out-of-range mood.
	rec := doJSON(t, r, http.MethodPost, "/v1/proofs", "", petsdk.SubmitProofRequest{
		PairID:      "pair-1",
		ClaimedMood: 9,
		Proof:       proof,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_request", decode[petsdk.ErrorResponse](t, rec).Error)

	// Missing pair id.
	rec = doJSON(t, r, http.MethodPost, "/v1/proofs", "", petsdk.SubmitProofRequest{
		ClaimedMood: 0,
		Proof:       proof,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Proof not base64.
	rec = doJSON(t, r, http.MethodPost, "/v1/proofs", "", petsdk.SubmitProofRequest{
		PairID:      "pair-1",
		ClaimedMood: 0,
		Proof:       "not base64!!!",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPairEndpoints(t *testing.T) {
	r := newTestRouter(t)
	proof := base64.StdEncoding.EncodeToString([]byte("proof"))

	rec := doJSON(t, r, http.MethodGet, "/v1/pairs/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/v1/proofs", "", petsdk.SubmitProofRequest{
		PairID:      "pair-1",
		ClaimedMood: uint8(domain.MoodLowEnergy),
		Proof:       proof,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/v1/pairs/pair-1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "low_energy", decode[petsdk.PairResponse](t, rec).Mood)

	rec = doJSON(t, r, http.MethodGet, "/v1/pairs/pair-1/events", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	events := decode[petsdk.EventListResponse](t, rec)
	require.Len(t, events.Events, 2)
	require.Equal(t, "PairCreated", events.Events[0].Type)

	rec = doJSON(t, r, http.MethodGet, "/v1/pairs", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvitationFlow(t *testing.T) {
	r := newTestRouter(t)
	aliceToken := mintToken(t, "id-alice", "alice", "alice@example.com")
	bobToken := mintToken(t, "id-bob", "bob", "bob@example.com")

	rec := doJSON(t, r, http.MethodPost, "/v1/users/register", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/v1/users/register", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Alice invites bob.
	rec = doJSON(t, r, http.MethodPost, "/v1/invitations", aliceToken,
		petsdk.ProposeInvitationRequest{ToUsername: "bob", PetLabel: "Sparky"})
	require.Equal(t, http.StatusOK, rec.Code)
	inv := decode[petsdk.InvitationResponse](t, rec)
	require.Equal(t, "alice", inv.FromUsername)
	require.False(t, inv.Accepted)

	// Bob sees it pending.
	rec = doJSON(t, r, http.MethodGet, "/v1/invitations/pending", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pending := decode[petsdk.InvitationListResponse](t, rec)
	require.Len(t, pending.Invitations, 1)

	// Bob accepts; a pair appears.
	rec = doJSON(t, r, http.MethodPost, "/v1/invitations/"+inv.ID+"/accept", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	accepted := decode[petsdk.AcceptInvitationResponse](t, rec)
	require.True(t, accepted.Invitation.Accepted)
	require.Equal(t, "Sparky", accepted.Pair.PetLabel)
	require.Equal(t, int64(0), accepted.Pair.UpdateCount)

	// Accepting again conflicts.
	rec = doJSON(t, r, http.MethodPost, "/v1/invitations/"+inv.ID+"/accept", bobToken, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	// The pair lists under both participants.
	rec = doJSON(t, r, http.MethodGet, "/v1/pairs?participant=alice", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[petsdk.PairListResponse](t, rec).Pairs, 1)
}

func TestInvitationErrors(t *testing.T) {
	r := newTestRouter(t)
	aliceToken := mintToken(t, "id-alice", "alice", "")

	rec := doJSON(t, r, http.MethodPost, "/v1/users/register", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Unknown recipient.
	rec = doJSON(t, r, http.MethodPost, "/v1/invitations", aliceToken,
		petsdk.ProposeInvitationRequest{ToUsername: "nobody"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Self invite.
	rec = doJSON(t, r, http.MethodPost, "/v1/invitations", aliceToken,
		petsdk.ProposeInvitationRequest{ToUsername: "alice"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing recipient field.
	rec = doJSON(t, r, http.MethodPost, "/v1/invitations", aliceToken,
		petsdk.ProposeInvitationRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Accept of unknown invitation.
	rec = doJSON(t, r, http.MethodPost, "/v1/invitations/missing/accept", aliceToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[petsdk.HealthResponse](t, rec).Status)

	rec = doJSON(t, r, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[petsdk.HealthResponse](t, rec)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)
}
