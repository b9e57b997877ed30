package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HandleDownload sends the browser to the file's retrieval locator. Expiry is
// checked by the backend, not here.
func (h *Handler) HandleDownload(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}

	platform := newRequestPlatform(c)
	card := sess.Page.Card(id, h.now())
	if err := card.Download(c.Request().Context(), platform); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, platform.opened)
}
