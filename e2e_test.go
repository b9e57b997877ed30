package share_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianozunino/share/internal/app"
	"github.com/marianozunino/share/internal/backend"
	"github.com/marianozunino/share/internal/testutil"
)

// startServer runs the web front end against a fake backend
func startServer(t *testing.T) (*httptest.Server, *testutil.FakeBackend) {
	t.Helper()

	fake := testutil.NewFakeBackend(t)
	cfg := fake.Config()
	cfg.LogLevel = "error"

	a, err := app.NewWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(a.Stop)

	server := httptest.NewServer(a)
	t.Cleanup(server.Close)

	return server, fake
}

// newBrowser returns a client that keeps its session cookie and follows redirects
func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func getPage(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func uploadFile(t *testing.T, client *http.Client, baseURL, filename, content string) (int, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := client.Post(baseURL+"/upload", writer.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()

	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(page)
}

func TestBrowserUploadAndDownload(t *testing.T) {
	server, fake := startServer(t)
	browser := newBrowser(t)

	status, page := getPage(t, browser, server.URL+"/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, page, "FILE SHARE")
	assert.Contains(t, page, `action="/upload"`)
	assert.Contains(t, page, "Maximum file size: 100 MB")

	content := strings.Repeat("This is a test line. ", 100)
	status, page = uploadFile(t, browser, server.URL, "large.txt", content)
	require.Equal(t, http.StatusOK, status)

	assert.Contains(t, page, `data-file-id="file-1"`)
	assert.Contains(t, page, "large.txt")
	assert.Contains(t, page, "<strong>File uploaded!</strong>")
	assert.Equal(t, 2, fake.ListCalls())

	status, downloaded := getPage(t, browser, server.URL+"/files/file-1/download")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, content, downloaded)
}

func TestToastsAreShownOnce(t *testing.T) {
	server, _ := startServer(t)
	browser := newBrowser(t)

	getPage(t, browser, server.URL+"/")
	_, page := uploadFile(t, browser, server.URL, "a.txt", "a")
	assert.Contains(t, page, "<strong>File uploaded!</strong>")

	_, page = getPage(t, browser, server.URL+"/")
	assert.NotContains(t, page, "<strong>File uploaded!</strong>")
}

func TestTabSwitchingDoesNotRefetch(t *testing.T) {
	server, fake := startServer(t)
	browser := newBrowser(t)

	getPage(t, browser, server.URL+"/")

	_, page := getPage(t, browser, server.URL+"/?tab=files")
	assert.Contains(t, page, "No files uploaded")

	_, page = getPage(t, browser, server.URL+"/?tab=info")
	assert.Contains(t, page, "How does it work?")

	_, page = getPage(t, browser, server.URL+"/")
	assert.Contains(t, page, "How does it work?")

	assert.Equal(t, 1, fake.ListCalls())
}

func TestUploadFailureStaysOnUploadTab(t *testing.T) {
	server, fake := startServer(t)
	browser := newBrowser(t)
	getPage(t, browser, server.URL+"/")

	fake.FailUpload(http.StatusInternalServerError)
	status, page := uploadFile(t, browser, server.URL, "a.txt", "a")
	require.Equal(t, http.StatusOK, status)

	assert.Contains(t, page, "<strong>Upload failed</strong>")
	assert.Contains(t, page, `action="/upload"`)
	assert.Equal(t, 1, fake.ListCalls())
}

func TestRefreshFailureKeepsLastList(t *testing.T) {
	server, fake := startServer(t)
	browser := newBrowser(t)

	getPage(t, browser, server.URL+"/")
	uploadFile(t, browser, server.URL, "kept.txt", "kept")

	fake.FailList(http.StatusBadGateway)
	resp, err := browser.Post(server.URL+"/refresh", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	page, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Contains(t, string(page), "kept.txt")
	assert.Contains(t, string(page), "<strong>Could not refresh files</strong>")
}

func TestSessionsAreIndependent(t *testing.T) {
	server, _ := startServer(t)
	alice := newBrowser(t)
	bob := newBrowser(t)

	getPage(t, alice, server.URL+"/")
	getPage(t, bob, server.URL+"/")

	_, page := uploadFile(t, alice, server.URL, "alice.txt", "hi")
	assert.Contains(t, page, `data-file-id="file-1"`)

	_, page = getPage(t, bob, server.URL+"/")
	assert.Contains(t, page, `action="/upload"`)
	assert.NotContains(t, page, "File uploaded!</strong>")
}

func TestUploadsFromOtherClientsAppearAfterRefresh(t *testing.T) {
	server, fake := startServer(t)
	browser := newBrowser(t)

	_, page := getPage(t, browser, server.URL+"/?tab=files")
	assert.Contains(t, page, "No files uploaded")

	client := backend.NewClient(fake.Config())
	_, err := client.Upload(t.Context(), "cli.txt", 3, strings.NewReader("cli"))
	require.NoError(t, err)

	resp, err := browser.Post(server.URL+"/refresh", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Contains(t, string(body), "cli.txt")
}

func TestInvalidInputs(t *testing.T) {
	server, fake := startServer(t)
	browser := newBrowser(t)

	resp, err := browser.Post(server.URL+"/upload", "text/plain", strings.NewReader("not a form"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	status, _ := getPage(t, browser, server.URL+"/does-not-exist")
	assert.Equal(t, http.StatusNotFound, status)

	assert.Equal(t, 0, fake.UploadCalls())
}

func TestConcurrentBrowsers(t *testing.T) {
	server, fake := startServer(t)

	const browsers = 5
	var wg sync.WaitGroup
	errs := make(chan error, browsers)

	for i := range browsers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jar, _ := cookiejar.New(nil)
			client := &http.Client{Jar: jar}

			var body bytes.Buffer
			writer := multipart.NewWriter(&body)
			part, _ := writer.CreateFormFile("file", "file.txt")
			io.WriteString(part, strings.Repeat("x", i+1))
			writer.Close()

			resp, err := client.Post(server.URL+"/upload", writer.FormDataContentType(), &body)
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	assert.Equal(t, browsers, fake.UploadCalls())
}

func TestHealth(t *testing.T) {
	server, _ := startServer(t)

	status, body := getPage(t, http.DefaultClient, server.URL+"/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}
