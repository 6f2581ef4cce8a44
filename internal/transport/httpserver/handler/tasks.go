package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	accountdomain "github.com/harshitajain06/Memorylane/internal/domain/account"
	tasksdomain "github.com/harshitajain06/Memorylane/internal/domain/tasks"
	"github.com/harshitajain06/Memorylane/internal/transport/httpserver/middleware"
)

type createTaskRequest struct {
	PatientID   string `json:"patient_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTaskRequest struct {
	Completed *bool `json:"completed"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	CaregiverID string    `json:"caregiver_id"`
	PatientID   string    `json:"patient_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.PatientID = strings.TrimSpace(req.PatientID)
	if req.Title == "" || req.Description == "" || req.PatientID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "patient_id, title and description are required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	task, err := h.Tasks.Create(r.Context(), tasksdomain.CreateTaskInput{
		CaregiverID: user.ID,
		PatientID:   req.PatientID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, tasksdomain.ErrPatientNotLinked):
			h.log.BusinessError("tasks.create: patient not linked", err, "caregiver_id", user.ID, "patient_id", req.PatientID)
			writeError(w, http.StatusUnprocessableEntity, "patient_not_linked", "patient is not linked to this caregiver")
		default:
			h.log.InternalError("tasks.create: create failed", err, "caregiver_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

// ListTasks returns the caller's tasks: assigned ones for a patient, created
// ones for a caregiver.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var (
		result []tasksdomain.Task
		err    error
	)
	switch user.Role {
	case accountdomain.RoleCaregiver:
		result, err = h.Tasks.ListForCaregiver(r.Context(), user.ID)
	case accountdomain.RolePatient:
		result, err = h.Tasks.ListForPatient(r.Context(), user.ID)
	default:
		writeError(w, http.StatusForbidden, "forbidden", "unknown role")
		return
	}
	if err != nil {
		h.log.InternalError("tasks.list: list failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]taskResponse, 0, len(result))
	for i := range result {
		response = append(response, toTaskResponse(&result[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.Completed == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "completed is required")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	taskID := chi.URLParam(r, "task_id")
	task, err := h.Tasks.SetCompleted(r.Context(), user.ID, taskID, *req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, tasksdomain.ErrTaskNotFound):
			h.log.BusinessError("tasks.update: task not found", err, "task_id", taskID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
		case errors.Is(err, tasksdomain.ErrNotAllowed):
			h.log.BusinessError("tasks.update: not allowed", err, "task_id", taskID, "user_id", user.ID)
			writeError(w, http.StatusForbidden, "forbidden", "task belongs to another caregiver/patient pair")
		default:
			h.log.InternalError("tasks.update: update failed", err, "task_id", taskID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	taskID := chi.URLParam(r, "task_id")
	if err := h.Tasks.Delete(r.Context(), user.ID, taskID); err != nil {
		switch {
		case errors.Is(err, tasksdomain.ErrTaskNotFound):
			h.log.BusinessError("tasks.delete: task not found", err, "task_id", taskID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
		case errors.Is(err, tasksdomain.ErrNotAllowed):
			h.log.BusinessError("tasks.delete: not allowed", err, "task_id", taskID, "user_id", user.ID)
			writeError(w, http.StatusForbidden, "forbidden", "task belongs to another caregiver")
		default:
			h.log.InternalError("tasks.delete: delete failed", err, "task_id", taskID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTaskResponse(task *tasksdomain.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		CaregiverID: task.CaregiverID,
		PatientID:   task.PatientID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
}
