package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/moodachu/moodachu/internal/pet/service"
	"github.com/moodachu/moodachu/pkg/httpx"
	"github.com/moodachu/moodachu/pkg/petsdk"
	"github.com/moodachu/moodachu/pkg/slogx"
)

type PairsHandler struct {
	PairService *service.PairService
}

// HandleGet godoc
//
//	@Summary		Get Pair Endpoint
//	@Description	Return the current state of a pair: mood, update count, participants
//	@Tags			Pairs
//	@Produce		json
//	@Param			id	path		string					true	"Pair ID"
//	@Success		200	{object}	petsdk.PairResponse		"pair state"
//	@Failure		404	{object}	petsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	petsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/pairs/{id} [get].
func (h *PairsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	pair, err := h.PairService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrPairNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, petsdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "No pair with that id",
			})
			return
		}
		log.Error("failed to fetch pair", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, petsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to fetch pair",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPairResponse(pair))
}

// HandleList godoc
//
//	@Summary		List Pairs Endpoint
//	@Description	List the pairs a username participates in
//	@Tags			Pairs
//	@Produce		json
//	@Param			participant	query		string					true	"Username to filter by"
//	@Success		200			{object}	petsdk.PairListResponse	"pairs"
//	@Failure		400			{object}	petsdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	petsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/pairs [get].
func (h *PairsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	participant := strings.TrimSpace(r.URL.Query().Get("participant"))
	if participant == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "participant query parameter is required",
		})
		return
	}

	pairs, err := h.PairService.ListByParticipant(ctx, participant)
	if err != nil {
		log.Error("failed to list pairs", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, petsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list pairs",
		})
		return
	}

	resp := petsdk.PairListResponse{Pairs: make([]petsdk.PairResponse, 0, len(pairs))}
	for _, p := range pairs {
		resp.Pairs = append(resp.Pairs, toPairResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleEvents godoc
//
//	@Summary		Pair Event Log Endpoint
//	@Description	Return a pair's append-only event log in sequence order
//	@Tags			Pairs
//	@Produce		json
//	@Param			id	path		string						true	"Pair ID"
//	@Success		200	{object}	petsdk.EventListResponse	"events"
//	@Failure		404	{object}	petsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	petsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/pairs/{id}/events [get].
func (h *PairsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	events, err := h.PairService.ListEvents(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrPairNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, petsdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "No pair with that id",
			})
			return
		}
		log.Error("failed to list pair events", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, petsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list pair events",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, petsdk.EventListResponse{
		Events: toEventResponses(events),
	})
}
