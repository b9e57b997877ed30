package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marianozunino/share/internal/session"
)

// SessionCookie holds the browser's session id
const SessionCookie = "share_session"

const sessionKey = "session"

// SecurityHeaders adds security-related HTTP headers to responses
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
			c.Response().Header().Set("X-Frame-Options", "sameorigin")
			c.Response().Header().Set("X-Content-Type-Options", "nosniff")
			c.Response().Header().Set("X-XSS-Protection", "1; mode=block")
			c.Response().Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; font-src 'self'")
			c.Response().Header().Set("Referrer-Policy", "no-referrer, strict-origin-when-cross-origin")
			c.Response().Header().Del("Server")

			return next(c)
		}
	}
}

// Session attaches the browser's session to the context, creating one and
// setting the cookie when the browser has none or its session has expired
func Session(store *session.Store, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie.Value
			}

			sess, created := store.GetOrCreate(c.Request().Context(), id)
			if created {
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    sess.ID.String(),
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// SessionFrom returns the session attached by Session
func SessionFrom(c echo.Context) (*session.Session, bool) {
	sess, ok := c.Get(sessionKey).(*session.Session)
	return sess, ok && sess != nil
}
