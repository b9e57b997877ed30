package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HandleHealth reports liveness. It does not contact the backend.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
