package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/marianozunino/share/internal/middleware"
	"github.com/marianozunino/share/internal/session"
	"github.com/marianozunino/share/internal/ui"
	"github.com/marianozunino/share/templates"
)

// HandleHome serves the tabbed home page. ?tab= switches tabs without fetching.
func (h *Handler) HandleHome(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	if tab, ok := ui.ParseTab(c.QueryParam("tab")); ok {
		sess.Page.SetTab(tab)
	}

	return h.render(c, http.StatusOK, sess)
}

// HandleRefresh re-fetches the file list on demand
func (h *Handler) HandleRefresh(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	if err := sess.Page.LoadFiles(c.Request().Context()); err != nil {
		sess.Toasts.Notify(ui.Notification{
			Title:       "Could not refresh files",
			Description: "Showing the last known list",
			Variant:     ui.VariantDestructive,
		})
	}

	return back(c)
}

// HandleReset ends the browser's session and expires its cookie. The next
// page load mounts a fresh session.
func (h *Handler) HandleReset(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	h.store.Remove(sess.ID.String())
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	log.Debug().Str("session", sess.ID.String()).Msg("Session reset")

	return back(c)
}

func (h *Handler) render(c echo.Context, status int, sess *session.Session) error {
	data := templates.HomeData{
		View:   sess.Page.View(h.now()),
		Panel:  sess.Panel.State(),
		Toasts: sess.Toasts.Drain(),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	if err := templates.HomePage(data).Render(c.Request().Context(), c.Response()); err != nil {
		log.Error().Err(err).Msg("Error rendering home page")
		return fmt.Errorf("error rendering template: %w", err)
	}

	return nil
}
