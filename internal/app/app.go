package app

import (
	"net/http"

	"github.com/harshitajain06/Memorylane/internal/config"
	"github.com/harshitajain06/Memorylane/internal/db"
	accountdomain "github.com/harshitajain06/Memorylane/internal/domain/account"
	invitedomain "github.com/harshitajain06/Memorylane/internal/domain/invite"
	journaldomain "github.com/harshitajain06/Memorylane/internal/domain/journal"
	memoriesdomain "github.com/harshitajain06/Memorylane/internal/domain/memories"
	tasksdomain "github.com/harshitajain06/Memorylane/internal/domain/tasks"
	accountrepo "github.com/harshitajain06/Memorylane/internal/repository/postgres/account"
	identityrepo "github.com/harshitajain06/Memorylane/internal/repository/postgres/identity"
	inviterepo "github.com/harshitajain06/Memorylane/internal/repository/postgres/invite"
	journalrepo "github.com/harshitajain06/Memorylane/internal/repository/postgres/journal"
	memoriesrepo "github.com/harshitajain06/Memorylane/internal/repository/postgres/memories"
	tasksrepo "github.com/harshitajain06/Memorylane/internal/repository/postgres/tasks"
	"github.com/harshitajain06/Memorylane/internal/transport/httpserver"
	"github.com/harshitajain06/Memorylane/internal/transport/httpserver/handler"
	authmw "github.com/harshitajain06/Memorylane/internal/transport/httpserver/middleware"
	"github.com/harshitajain06/Memorylane/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	identities := identityrepo.NewPostgres(dbConn)
	accounts := accountdomain.NewService(accountrepo.NewPostgres(dbConn), identities, identities, cfg.Auth.SessionTTL)
	invites := invitedomain.NewService(inviterepo.NewPostgres(dbConn), identities, accounts, invitedomain.Policy{
		SingleUse: cfg.Invite.SingleUse,
		TTL:       cfg.Invite.TTL,
	}, log)
	tasks := tasksdomain.NewService(tasksrepo.NewPostgres(dbConn), accounts)
	memories := memoriesdomain.NewService(memoriesrepo.NewPostgres(dbConn), accounts)
	journal := journaldomain.NewService(journalrepo.NewPostgres(dbConn))

	log.Info("app: initializing router")
	handlers := handler.New(accounts, invites, tasks, memories, journal, log)
	auth := authmw.NewSessionAuth(accounts, log)
	router := httpserver.NewRouter(handlers, auth, cfg.AllowedOrigins)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		log:        log,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
