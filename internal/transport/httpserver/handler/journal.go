package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	journaldomain "github.com/harshitajain06/Memorylane/internal/domain/journal"
	"github.com/harshitajain06/Memorylane/internal/transport/httpserver/middleware"
)

type createEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
	Date    string `json:"date"`
}

type updateEntryRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Mood    *string `json:"mood"`
	Date    *string `json:"date"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handlers) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title and content are required")
		return
	}
	if !validEntryDate(req.Date) {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	entry, err := h.Journal.Create(r.Context(), journaldomain.CreateEntryInput{
		OwnerID: user.ID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Date:    req.Date,
	})
	if err != nil {
		h.log.InternalError("journal.create: create failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (h *Handlers) ListJournalEntries(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	entries, err := h.Journal.List(r.Context(), user.ID, journaldomain.ListFilter{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		h.log.InternalError("journal.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]entryResponse, 0, len(entries))
	for i := range entries {
		response = append(response, toEntryResponse(&entries[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) UpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req updateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.Title == nil && req.Content == nil && req.Mood == nil && req.Date == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		return
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "content is required")
		return
	}
	if req.Date != nil && !validEntryDate(*req.Date) {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	entryID := chi.URLParam(r, "entry_id")
	entry, err := h.Journal.Update(r.Context(), journaldomain.UpdateEntryInput{
		ID:      entryID,
		OwnerID: user.ID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Date:    req.Date,
	})
	if err != nil {
		if errors.Is(err, journaldomain.ErrEntryNotFound) {
			h.log.BusinessError("journal.update: entry not found", err, "entry_id", entryID)
			writeError(w, http.StatusNotFound, "entry_not_found", "journal entry not found")
			return
		}
		h.log.InternalError("journal.update: update failed", err, "entry_id", entryID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *Handlers) DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	entryID := chi.URLParam(r, "entry_id")
	if err := h.Journal.Delete(r.Context(), user.ID, entryID); err != nil {
		if errors.Is(err, journaldomain.ErrEntryNotFound) {
			h.log.BusinessError("journal.delete: entry not found", err, "entry_id", entryID)
			writeError(w, http.StatusNotFound, "entry_not_found", "journal entry not found")
			return
		}
		h.log.InternalError("journal.delete: delete failed", err, "entry_id", entryID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validEntryDate(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func toEntryResponse(entry *journaldomain.Entry) entryResponse {
	return entryResponse{
		ID:        entry.ID,
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		Date:      entry.Date,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
