package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moodachu/moodachu/internal/pet/service"
	"github.com/moodachu/moodachu/pkg/httpx"
	"github.com/moodachu/moodachu/pkg/petsdk"
	"github.com/moodachu/moodachu/pkg/slogx"
)

type ProofsHandler struct {
	SubmissionService *service.SubmissionService
}

// ServeHTTP godoc
//
//	@Summary		Submit Mood Proof Endpoint
//	@Description	Submit a groth16 proof that the claimed mood derives from the partners'
//	@Description	private emotions. A valid proof creates the pair on first submission and
//	@Description	updates its mood afterwards; an invalid proof changes nothing.
//	@Tags			Proofs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		petsdk.SubmitProofRequest	true	"pair_id, claimed_mood (0-4), proof (base64)"
//	@Success		200		{object}	petsdk.SubmitProofResponse	"pair, created, events"
//	@Failure		400		{object}	petsdk.ErrorResponse		"error, error_description"
//	@Failure		422		{object}	petsdk.ErrorResponse		"proof rejected"
//	@Failure		500		{object}	petsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/proofs [post].
func (h *ProofsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req petsdk.SubmitProofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	proofBytes, err := base64.StdEncoding.DecodeString(req.Proof)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "proof must be base64",
		})
		return
	}

	result, err := h.SubmissionService.Submit(ctx, req.PairID, req.ClaimedMood, proofBytes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPairID):
			httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "pair_id is required",
			})
		case errors.Is(err, service.ErrInvalidMoodValue):
			httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "claimed_mood must be between 0 and 4",
			})
		case errors.Is(err, service.ErrInvalidProofShape):
			httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
				Error:            "invalid_proof",
				ErrorDescription: "Proof bytes are structurally malformed",
			})
		case errors.Is(err, service.ErrProofInvalid):
			httpx.WriteJSON(w, http.StatusUnprocessableEntity, petsdk.ErrorResponse{
				Error:            "proof_rejected",
				ErrorDescription: "Proof does not verify for the claimed mood",
			})
		default:
			log.Error("failed to process submission", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, petsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to process submission",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, petsdk.SubmitProofResponse{
		Pair:    toPairResponse(result.Pair),
		Created: result.Created,
		Events:  toEventResponses(result.Events),
	})
}
