package handler

import (
	"net/http"

	accountdomain "github.com/harshitajain06/Memorylane/internal/domain/account"
	invitedomain "github.com/harshitajain06/Memorylane/internal/domain/invite"
	journaldomain "github.com/harshitajain06/Memorylane/internal/domain/journal"
	memoriesdomain "github.com/harshitajain06/Memorylane/internal/domain/memories"
	tasksdomain "github.com/harshitajain06/Memorylane/internal/domain/tasks"
	"github.com/harshitajain06/Memorylane/pkg/logger"
)

type Handlers struct {
	Accounts *accountdomain.Service
	Invites  *invitedomain.Service
	Tasks    *tasksdomain.Service
	Memories *memoriesdomain.Service
	Journal  *journaldomain.Service
	log      logger.Logger
}

func New(accounts *accountdomain.Service, invites *invitedomain.Service, tasks *tasksdomain.Service, memories *memoriesdomain.Service, journal *journaldomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Accounts: accounts,
		Invites:  invites,
		Tasks:    tasks,
		Memories: memories,
		Journal:  journal,
		log:      log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
