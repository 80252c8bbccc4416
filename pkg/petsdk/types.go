// Package petsdk holds the wire types of the pet service HTTP API. Handlers
// and clients share these so the two cannot drift apart.
package petsdk

import "time"

// RegisterRequest asks the directory to bind the caller's identity to a
// username. All fields are optional hints; the service falls back to the
// identity token's name and email when they are empty.
type RegisterRequest struct {
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmitProofRequest carries one zero-knowledge mood submission. Proof is the
// base64 (std encoding) serialized groth16 proof.
type SubmitProofRequest struct {
	PairID      string `json:"pair_id"`
	ClaimedMood uint8  `json:"claimed_mood"`
	Proof       string `json:"proof"`
}

type SubmitProofResponse struct {
	Pair    PairResponse    `json:"pair"`
	Created bool            `json:"created"`
	Events  []EventResponse `json:"events"`
}

type PairResponse struct {
	ID           string    `json:"id"`
	MoodState    uint8     `json:"mood_state"`
	Mood         string    `json:"mood"`
	UpdateCount  int64     `json:"update_count"`
	ParticipantA string    `json:"participant_a,omitempty"`
	ParticipantB string    `json:"participant_b,omitempty"`
	PetLabel     string    `json:"pet_label,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastUpdate   time.Time `json:"last_update"`
}

type PairListResponse struct {
	Pairs []PairResponse `json:"pairs"`
}

type EventResponse struct {
	ID        string    `json:"id"`
	PairID    string    `json:"pair_id"`
	Seq       int64     `json:"seq"`
	Type      string    `json:"type"`
	Mood      *uint8    `json:"mood,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// ProposeInvitationRequest invites another username to share a pet.
type ProposeInvitationRequest struct {
	ToUsername string `json:"to_username"`
	PetLabel   string `json:"pet_label,omitempty"`
}

type InvitationResponse struct {
	ID           string    `json:"id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	PetLabel     string    `json:"pet_label,omitempty"`
	Accepted     bool      `json:"accepted"`
	CreatedAt    time.Time `json:"created_at"`
}

type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// AcceptInvitationResponse returns the accepted invitation together with the
// pair it created.
type AcceptInvitationResponse struct {
	Invitation InvitationResponse `json:"invitation"`
	Pair       PairResponse       `json:"pair"`
}

// ErrorResponse is the uniform error body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Verifier string `json:"verifier"`
}
