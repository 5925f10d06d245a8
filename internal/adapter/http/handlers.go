package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Health reports liveness. Readiness (DB, Redis) is checked once at
// startup; this endpoint stays dependency-free so load balancers can
// probe it cheaply.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "whitecoat-backend",
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}
