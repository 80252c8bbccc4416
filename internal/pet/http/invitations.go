package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moodachu/moodachu/internal/pet/service"
	"github.com/moodachu/moodachu/pkg/httpx"
	"github.com/moodachu/moodachu/pkg/petsdk"
	"github.com/moodachu/moodachu/pkg/slogx"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
	DirectoryService  *service.DirectoryService
}

// HandlePropose godoc
//
//	@Summary		Propose Invitation Endpoint
//	@Description	Invite another registered username to share a pet. The recipient must
//	@Description	already exist; nothing is stored otherwise.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		petsdk.ProposeInvitationRequest	true	"to_username, optional pet_label"
//	@Success		200		{object}	petsdk.InvitationResponse		"pending invitation"
//	@Failure		400		{object}	petsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	petsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	petsdk.ErrorResponse			"recipient not registered"
//	@Failure		500		{object}	petsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invitations [post].
func (h *InvitationsHandler) HandlePropose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, petsdk.ErrorResponse{
			Error:            "invalid_token",
			ErrorDescription: "Authentication required",
		})
		return
	}

	var req petsdk.ProposeInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}
	if req.ToUsername == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "to_username is required",
		})
		return
	}

	inv, err := h.InvitationService.Propose(ctx, identity.Subject, req.ToUsername, req.PetLabel)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Register a username before inviting others",
			})
		case errors.Is(err, service.ErrRecipientNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, petsdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Invited username is not registered",
			})
		case errors.Is(err, service.ErrSelfInvitation):
			httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "You cannot invite yourself",
			})
		default:
			log.Error("failed to propose invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, petsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to propose invitation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvitationResponse(inv))
}

// HandleListPending godoc
//
//	@Summary		Pending Invitations Endpoint
//	@Description	List the open invitations addressed to the caller, oldest first
//	@Tags			Invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	petsdk.InvitationListResponse	"invitations"
//	@Failure		401	{object}	petsdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	petsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invitations/pending [get].
func (h *InvitationsHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, petsdk.ErrorResponse{
			Error:            "invalid_token",
			ErrorDescription: "Authentication required",
		})
		return
	}

	user, err := h.DirectoryService.Get(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// Not registered yet means nothing can be pending.
			httpx.WriteJSON(w, http.StatusOK, petsdk.InvitationListResponse{
				Invitations: []petsdk.InvitationResponse{},
			})
			return
		}
		log.Error("failed to fetch caller", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, petsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list invitations",
		})
		return
	}

	pending, err := h.InvitationService.ListPending(ctx, user.Username)
	if err != nil {
		log.Error("failed to list pending invitations", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, petsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list invitations",
		})
		return
	}

	resp := petsdk.InvitationListResponse{
		Invitations: make([]petsdk.InvitationResponse, 0, len(pending)),
	}
	for _, inv := range pending {
		resp.Invitations = append(resp.Invitations, toInvitationResponse(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation Endpoint
//	@Description	Accept a pending invitation, creating the shared pair. Accepting is
//	@Description	at-most-once; a second accept fails without creating another pair.
//	@Tags			Invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string								true	"Invitation ID"
//	@Success		200	{object}	petsdk.AcceptInvitationResponse		"invitation, pair"
//	@Failure		401	{object}	petsdk.ErrorResponse				"error, error_description"
//	@Failure		404	{object}	petsdk.ErrorResponse				"error, error_description"
//	@Failure		409	{object}	petsdk.ErrorResponse				"already accepted"
//	@Failure		500	{object}	petsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/invitations/{id}/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	inv, pair, err := h.InvitationService.Accept(ctx, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, petsdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "No invitation with that id",
			})
		case errors.Is(err, service.ErrAlreadyAccepted):
			httpx.WriteJSON(w, http.StatusConflict, petsdk.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "Invitation has already been accepted",
			})
		default:
			log.Error("failed to accept invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, petsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to accept invitation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, petsdk.AcceptInvitationResponse{
		Invitation: toInvitationResponse(inv),
		Pair:       toPairResponse(pair),
	})
}
