package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	accountdomain "github.com/harshitajain06/Memorylane/internal/domain/account"
	memoriesdomain "github.com/harshitajain06/Memorylane/internal/domain/memories"
	"github.com/harshitajain06/Memorylane/internal/transport/httpserver/middleware"
)

type createMemoryRequest struct {
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

type memoryResponse struct {
	ID          string    `json:"id"`
	CaregiverID string    `json:"caregiver_id"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *Handlers) CreateMemory(w http.ResponseWriter, r *http.Request) {
	var req createMemoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	req.Description = strings.TrimSpace(req.Description)
	if req.ImageURL == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "image_url and description are required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	memory, err := h.Memories.Add(r.Context(), user.ID, req.ImageURL, req.Description)
	if err != nil {
		h.log.InternalError("memories.create: add failed", err, "caregiver_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toMemoryResponse(memory))
}

// ListMemories returns the caregiver's own memories, or for a patient the
// memories shared by their linked caregiver.
func (h *Handlers) ListMemories(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var (
		result []memoriesdomain.Memory
		err    error
	)
	switch user.Role {
	case accountdomain.RoleCaregiver:
		result, err = h.Memories.ListForCaregiver(r.Context(), user.ID)
	case accountdomain.RolePatient:
		result, err = h.Memories.ListForPatient(r.Context(), user.ID)
	default:
		writeError(w, http.StatusForbidden, "forbidden", "unknown role")
		return
	}
	if err != nil {
		if errors.Is(err, memoriesdomain.ErrNotLinked) {
			h.log.BusinessError("memories.list: patient not linked", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "not_linked", "no linked caregiver")
			return
		}
		h.log.InternalError("memories.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]memoryResponse, 0, len(result))
	for i := range result {
		response = append(response, toMemoryResponse(&result[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) DeleteMemory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	memoryID := chi.URLParam(r, "memory_id")
	if err := h.Memories.Delete(r.Context(), user.ID, memoryID); err != nil {
		switch {
		case errors.Is(err, memoriesdomain.ErrMemoryNotFound):
			h.log.BusinessError("memories.delete: memory not found", err, "memory_id", memoryID)
			writeError(w, http.StatusNotFound, "memory_not_found", "memory not found")
		case errors.Is(err, memoriesdomain.ErrNotOwner):
			h.log.BusinessError("memories.delete: not owner", err, "memory_id", memoryID, "user_id", user.ID)
			writeError(w, http.StatusForbidden, "forbidden", "memory belongs to another caregiver")
		default:
			h.log.InternalError("memories.delete: delete failed", err, "memory_id", memoryID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMemoryResponse(memory *memoriesdomain.Memory) memoryResponse {
	return memoryResponse{
		ID:          memory.ID,
		CaregiverID: memory.CaregiverID,
		Description: memory.Description,
		ImageURL:    memory.ImageURL,
		CreatedAt:   memory.CreatedAt,
	}
}
