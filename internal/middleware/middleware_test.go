package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianozunino/share/internal/backend"
	"github.com/marianozunino/share/internal/metrics"
	"github.com/marianozunino/share/internal/session"
	fake "github.com/marianozunino/share/internal/testutil"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()

	testHandler := func(c echo.Context) error {
		return c.String(http.StatusOK, "test response")
	}

	e.Use(SecurityHeaders())
	e.GET("/test", testHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	headers := rec.Header()

	assert.Equal(t, "max-age=63072000; includeSubDomains; preload", headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "sameorigin", headers.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "1; mode=block", headers.Get("X-XSS-Protection"))
	assert.Equal(t, "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; font-src 'self'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "no-referrer, strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))

	assert.Empty(t, headers.Get("Server"))
}

func TestSecurityHeadersWithErrorResponse(t *testing.T) {
	e := echo.New()

	errorHandler := func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	e.Use(SecurityHeaders())
	e.GET("/error", errorHandler)

	req := httptest.NewRequest(http.MethodGet, "/error", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	headers := rec.Header()
	assert.Equal(t, "sameorigin", headers.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Empty(t, headers.Get("Server"))
}

func newSessionEcho(t *testing.T) (*echo.Echo, *session.Store) {
	t.Helper()

	backendFake := fake.NewFakeBackend(t)
	store := session.NewStore(backend.NewClient(backendFake.Config()), "100 MB", 8, time.Hour)

	e := echo.New()
	e.Use(Session(store, time.Hour))
	e.GET("/", func(c echo.Context) error {
		sess, ok := SessionFrom(c)
		require.True(t, ok)
		return c.String(http.StatusOK, sess.ID.String())
	})

	return e, store
}

func TestSessionCreatesCookie(t *testing.T) {
	e, store := newSessionEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, rec.Body.String(), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.Equal(t, 1, store.Len())
}

func TestSessionReusesCookie(t *testing.T) {
	e, store := newSessionEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, cookie.Value, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 1, store.Len())
}

func TestSessionReplacesUnknownCookie(t *testing.T) {
	e, _ := newSessionEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "6f1d3c2a-0000-4000-8000-000000000000"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "6f1d3c2a-0000-4000-8000-000000000000", cookies[0].Value)
}

func TestSessionFromWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := SessionFrom(c)
	assert.False(t, ok)
}

func TestMetricsRecordsRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/files/:id/download", func(c echo.Context) error {
		return c.NoContent(http.StatusFound)
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "backend down")
	})

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/files/:id/download", "302")
	before := testutil.ToFloat64(counter)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/files/abc/download", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/files/def/download", nil))
	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	failed := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/boom", "502")
	before = testutil.ToFloat64(failed)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(failed))
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger())
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
