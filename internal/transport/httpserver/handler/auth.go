package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	accountdomain "github.com/harshitajain06/Memorylane/internal/domain/account"
	identitydomain "github.com/harshitajain06/Memorylane/internal/domain/identity"
	"github.com/harshitajain06/Memorylane/internal/transport/httpserver/middleware"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountResponse struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	Role        accountdomain.Role `json:"role"`
	CaregiverID *string            `json:"caregiver_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type authResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
	Role      accountdomain.Role `json:"role"`
	Account   accountResponse    `json:"account"`
}

// Register creates a caregiver account. Patients register through invite
// redemption instead.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	acct, session, err := h.Accounts.RegisterCaregiver(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identitydomain.ErrEmailTaken):
			h.log.BusinessError("auth.register: email taken", err, "email", req.Email)
			writeError(w, http.StatusConflict, "email_taken", "email already in use")
		case errors.Is(err, accountdomain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("auth.register: register caregiver failed", err, "email", req.Email)
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

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	acct, session, err := h.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identitydomain.ErrInvalidCredentials):
			h.log.BusinessError("auth.login: invalid credentials", err, "email", req.Email)
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
		case errors.Is(err, accountdomain.ErrProfileMissing):
			h.log.BusinessError("auth.login: profile missing", err, "email", req.Email)
			writeError(w, http.StatusConflict, "profile_missing", "account profile missing")
		default:
			h.log.InternalError("auth.login: login failed", err, "email", req.Email)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Role:      acct.Role,
		Account:   toAccountResponse(acct),
	})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if err := h.Accounts.Logout(r.Context(), token); err != nil {
		h.log.InternalError("auth.logout: delete session failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	acct, err := h.Accounts.GetByID(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("auth.me: get account failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(acct))
}

// ListPatients returns the caregiver's linked patients.
func (h *Handlers) ListPatients(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	patients, err := h.Accounts.ListPatients(r.Context(), user.ID)
	if err != nil {
		h.log.InternalError("accounts.list_patients: list failed", err, "caregiver_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]accountResponse, 0, len(patients))
	for i := range patients {
		response = append(response, toAccountResponse(&patients[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func toAccountResponse(acct *accountdomain.Account) accountResponse {
	return accountResponse{
		ID:          acct.ID,
		Email:       acct.Email,
		Role:        acct.Role,
		CaregiverID: acct.CaregiverID,
		CreatedAt:   acct.CreatedAt,
	}
}
