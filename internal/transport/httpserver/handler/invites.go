package handler

import (
	"errors"
	"net/http"
	"strings"

	identitydomain "github.com/harshitajain06/Memorylane/internal/domain/identity"
	invitedomain "github.com/harshitajain06/Memorylane/internal/domain/invite"
	"github.com/harshitajain06/Memorylane/internal/transport/httpserver/middleware"
)

type redeemInviteRequest struct {
	Code     string `json:"code"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type inviteResponse struct {
	Code string `json:"code"`
}

// CreateInvite generates a shareable code for the authenticated caregiver.
func (h *Handlers) CreateInvite(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	code, err := h.Invites.Generate(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("invites.create: generate failed", err, "caregiver_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, inviteResponse{Code: code})
}

// RedeemInvite creates a patient account linked to the caregiver behind the
// code. It is a public route: the patient does not have an account yet.
func (h *Handlers) RedeemInvite(w http.ResponseWriter, r *http.Request) {
	var req redeemInviteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.Code = strings.TrimSpace(req.Code)
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "code is required")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	acct, session, err := h.Invites.Redeem(r.Context(), req.Code, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, invitedomain.ErrInviteNotFound):
			h.log.BusinessError("invites.redeem: code not found", err, "code", req.Code)
			writeError(w, http.StatusNotFound, "invite_not_found", "this invite code does not exist")
		case errors.Is(err, invitedomain.ErrInviteExpired):
			h.log.BusinessError("invites.redeem: code expired", err, "code", req.Code)
			writeError(w, http.StatusGone, "invite_expired", "this invite code has expired")
		case errors.Is(err, invitedomain.ErrInviteConsumed):
			h.log.BusinessError("invites.redeem: code already used", err, "code", req.Code)
			writeError(w, http.StatusConflict, "invite_consumed", "this invite code was already used")
		case errors.Is(err, identitydomain.ErrEmailTaken):
			h.log.BusinessError("invites.redeem: email taken", err, "email", req.Email)
			writeError(w, http.StatusConflict, "email_taken", "email already in use")
		case errors.Is(err, invitedomain.ErrLinkingFailed):
			h.log.InternalError("invites.redeem: linking failed", err, "code", req.Code)
			writeError(w, http.StatusInternalServerError, "linking_failed", "account linking failed")
		default:
			h.log.InternalError("invites.redeem: redeem failed", err, "code", req.Code)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Role:      acct.Role,
		Account:   toAccountResponse(acct),
	})
}
