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

type UsersHandler struct {
	DirectoryService *service.DirectoryService
}

// HandleRegister godoc
//
//	@Summary		Register Username Endpoint
//	@Description	Bind the caller's identity to a username. Idempotent: registering again
//	@Description	returns the existing record regardless of the requested username.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		petsdk.RegisterRequest	false	"Optional username, display name, and email hints"
//	@Success		200		{object}	petsdk.UserResponse		"id, username, display_name, created_at"
//	@Failure		401		{object}	petsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	petsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/register [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
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

	// The body is optional; an empty body registers with token-derived hints.
	var req petsdk.RegisterRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteJSON(w, http.StatusBadRequest, petsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Invalid JSON body",
			})
			return
		}
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = identity.Name
	}
	email := req.Email
	if email == "" {
		email = identity.Email
	}

	user, err := h.DirectoryService.Register(ctx, identity.Subject, req.Username, displayName, email)
	if err != nil {
		log.Error("failed to register user", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, petsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to register user",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleResolve godoc
//
//	@Summary		Resolve Username Endpoint
//	@Description	Look up a registered user by username, case-insensitively
//	@Tags			Users
//	@Produce		json
//	@Param			username	path		string					true	"Username to resolve"
//	@Success		200			{object}	petsdk.UserResponse		"id, username, display_name, created_at"
//	@Failure		404			{object}	petsdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	petsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/{username} [get].
func (h *UsersHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.DirectoryService.Resolve(ctx, r.PathValue("username"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, petsdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "No user with that username",
			})
			return
		}
		log.Error("failed to resolve username", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, petsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to resolve username",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
