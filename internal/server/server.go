package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kingksjo/recipe-platform/internal/config"
	apperrors "github.com/kingksjo/recipe-platform/internal/errors"
)

// Store is the database surface the server needs: a connectivity check for
// readiness and collection listing for the root endpoint. Implemented by
// database.Manager.
type Store interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
}

type Server struct {
	echo       *echo.Echo
	config     *config.Config
	store      Store
	clock      clockwork.Clock
	startTime  time.Time
	instanceID uuid.UUID
}

func NewServer(cfg *config.Config, store Store, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:       e,
		config:     cfg,
		store:      store,
		clock:      clock,
		startTime:  clock.Now(),
		instanceID: uuid.New(),
	}

	srv.registerRoutes()

	return srv
}

// InstanceID identifies this process, mainly for log correlation.
func (s *Server) InstanceID() uuid.UUID {
	return s.instanceID
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
