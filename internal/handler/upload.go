package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/marianozunino/share/internal/ui"
)

// HandleUpload streams the browser's file straight to the backend. The panel
// reports the outcome through the session's toasts; on success the page has
// already refreshed its list and switched to the files tab.
func (h *Handler) HandleUpload(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	err = sess.Panel.Pick(c.Request().Context(), newRequestPlatform(c))
	switch {
	case err == nil:
		return back(c)
	case errors.Is(err, ui.ErrUploadInProgress):
		sess.Toasts.Notify(ui.Notification{
			Title:       "Upload in progress",
			Description: "Wait for the current upload to finish",
			Variant:     ui.VariantDestructive,
		})
		return h.render(c, http.StatusConflict, sess)
	case errors.Is(err, errBadUpload):
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	default:
		log.Warn().Err(err).Str("session", sess.ID.String()).Msg("Upload failed")
		return back(c)
	}
}
