package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "github.com/kingksjo/recipe-platform/internal/errors"
	"github.com/kingksjo/recipe-platform/internal/version"
)

const rootQueryTimeout = 5 * time.Second

type rootResponse struct {
	Message     string   `json:"message"`
	Env         string   `json:"env"`
	Debug       bool     `json:"debug"`
	Database    string   `json:"database"`
	Collections []string `json:"collections"`
	InstanceID  string   `json:"instance_id"`
}

// handleRoot echoes the runtime environment and the collection names of the
// configured database.
func (s *Server) handleRoot(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), rootQueryTimeout)
	defer cancel()

	collections, err := s.store.ListCollections(ctx)
	if err != nil {
		return apperrors.UnavailableError("database unavailable", err).
			WithContext("database", s.config.DatabaseName)
	}

	return c.JSON(http.StatusOK, rootResponse{
		Message:     "Welcome to the Recipe Sharing Platform API!",
		Env:         s.config.Env,
		Debug:       s.config.Debug,
		Database:    s.config.DatabaseName,
		Collections: collections,
		InstanceID:  s.instanceID.String(),
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}
