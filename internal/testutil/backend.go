package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/marianozunino/share/internal/config"
	"github.com/marianozunino/share/internal/model"
)

// ReceivedUpload is one upload accepted by the fake backend
type ReceivedUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// FakeBackend is an in-memory implementation of the upload/list/download contract
type FakeBackend struct {
	Server *httptest.Server

	mu           sync.Mutex
	files        []model.FileRecord
	data         map[string][]byte
	uploads      []ReceivedUpload
	listCalls    int
	uploadCalls  int
	listStatus   int
	uploadStatus int
	uploadBody   string
	nextID       int
	now          func() time.Time
}

// NewFakeBackend starts a fake backend that is closed when the test ends
func NewFakeBackend(t testing.TB) *FakeBackend {
	t.Helper()

	f := &FakeBackend{
		data: make(map[string][]byte),
		now:  time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload", f.handleUpload)
	mux.HandleFunc("GET /files", f.handleList)
	mux.HandleFunc("GET /download/{id}", f.handleDownload)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)

	return f
}

// Config returns a valid configuration pointing at the fake backend
func (f *FakeBackend) Config() *config.Config {
	return &config.Config{
		Port:             0,
		UploadURL:        f.Server.URL + "/upload",
		ListURL:          f.Server.URL + "/files",
		DownloadBaseURL:  f.Server.URL + "/download",
		MaxSize:          100,
		SessionTTL:       time.Hour,
		SessionCacheSize: 16,
		MetricsEnabled:   true,
		LogLevel:         "disabled",
	}
}

// SetNow overrides the clock used for upload and expiry timestamps
func (f *FakeBackend) SetNow(now func() time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

// Seed adds records (with empty content) to the listing
func (f *FakeBackend) Seed(records ...model.FileRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range records {
		f.files = append(f.files, rec)
		f.data[rec.ID] = nil
	}
}

// FailList makes the list endpoint answer with status. Zero restores normal behavior.
func (f *FakeBackend) FailList(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listStatus = status
}

// FailUpload makes the upload endpoint answer with status. Zero restores normal behavior.
func (f *FakeBackend) FailUpload(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploadStatus = status
}

// UploadResponseBody replaces the JSON body of successful uploads
func (f *FakeBackend) UploadResponseBody(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploadBody = body
}

// ListCalls returns how many list requests were served
func (f *FakeBackend) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// UploadCalls returns how many upload requests were received
func (f *FakeBackend) UploadCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploadCalls
}

// Uploads returns the uploads accepted so far
func (f *FakeBackend) Uploads() []ReceivedUpload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ReceivedUpload(nil), f.uploads...)
}

func (f *FakeBackend) handleUpload(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.uploadCalls++
	status, body := f.uploadStatus, f.uploadBody
	f.mu.Unlock()

	if status != 0 {
		writeJSON(w, status, map[string]string{"error": "Upload rejected"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to read file"})
		return
	}

	f.mu.Lock()
	f.nextID++
	id := fmt.Sprintf("file-%d", f.nextID)
	uploadedAt := f.now().UTC()
	rec := model.FileRecord{
		ID:          id,
		Name:        header.Filename,
		Size:        int64(len(content)),
		UploadedAt:  model.Timestamp{Time: uploadedAt},
		ExpiresAt:   model.Timestamp{Time: uploadedAt.Add(24 * time.Hour)},
		DownloadURL: "/download/" + id,
	}
	f.files = append([]model.FileRecord{rec}, f.files...)
	f.data[id] = content
	f.uploads = append(f.uploads, ReceivedUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        content,
	})
	f.mu.Unlock()

	if body != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, body)
		return
	}

	writeJSON(w, http.StatusOK, model.UploadResult{
		ID:          rec.ID,
		Name:        rec.Name,
		Size:        rec.Size,
		DownloadURL: rec.DownloadURL,
		ExpiresAt:   rec.ExpiresAt,
	})
}

func (f *FakeBackend) handleList(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.listCalls++
	status := f.listStatus
	now := f.now()
	var active []model.FileRecord
	for _, rec := range f.files {
		if rec.ExpiresAt.IsZero() || rec.ExpiresAt.After(now) {
			active = append(active, rec)
		}
	}
	f.mu.Unlock()

	if status != 0 {
		writeJSON(w, status, map[string]string{"error": "List unavailable"})
		return
	}

	if active == nil {
		active = []model.FileRecord{}
	}
	writeJSON(w, http.StatusOK, model.FileList{Files: active})
}

func (f *FakeBackend) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, rec := range f.files {
		if rec.ID != id {
			continue
		}
		if !rec.ExpiresAt.IsZero() && rec.ExpiresAt.Before(f.now()) {
			writeJSON(w, http.StatusGone, map[string]string{"error": "File expired"})
			return
		}
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.Name))
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(f.data[id])
		return
	}

	writeJSON(w, http.StatusNotFound, map[string]string{"error": "File not found"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
