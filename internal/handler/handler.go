package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marianozunino/share/internal/middleware"
	"github.com/marianozunino/share/internal/session"
)

// Handler handles HTTP requests. Per-browser state lives in the session
// attached by middleware.Session.
type Handler struct {
	store *session.Store
	now   func() time.Time
}

// NewHandler creates a new handler over the session store
func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

func (h *Handler) session(c echo.Context) (*session.Session, error) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Session not available")
	}
	return sess, nil
}

// back sends the browser to the home page after a form post
func back(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}
