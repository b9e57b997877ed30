package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianozunino/share/internal/config"
	"github.com/marianozunino/share/internal/model"
	"github.com/marianozunino/share/internal/testutil"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestNewClient(t *testing.T) {
	client := NewClient(&config.Config{
		UploadURL:       "https://api.example.com/upload",
		ListURL:         "https://api.example.com/files",
		DownloadBaseURL: "https://api.example.com/download/",
		RequestTimeout:  time.Minute,
	})

	assert.Equal(t, "https://api.example.com/upload", client.UploadURL)
	assert.Equal(t, "https://api.example.com/files", client.ListURL)
	assert.Equal(t, "https://api.example.com/download", client.DownloadBaseURL)
	assert.Equal(t, time.Minute, client.HTTPClient.Timeout)
}

func TestLink(t *testing.T) {
	client := &Client{DownloadBaseURL: "https://api.example.com/download"}
	assert.Equal(t, "https://api.example.com/download/d02e8975", client.Link("d02e8975"))

	client.DownloadBaseURL = "https://api.example.com/download/"
	assert.Equal(t, "https://api.example.com/download/d02e8975", client.Link("d02e8975"))

	assert.Equal(t, "https://api.example.com/download/a%2Fb", client.Link("a/b"))
}

func TestUploadStreamsMultipartFile(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	client := NewClient(fake.Config())

	content := append(append([]byte{}, pngHeader...), []byte(strings.Repeat("x", 10000))...)
	result, err := client.Upload(context.Background(), "photo.png", int64(len(content)), strings.NewReader(string(content)))
	require.NoError(t, err)

	assert.Equal(t, "file-1", result.ID)
	assert.Equal(t, "photo.png", result.Name)
	assert.Equal(t, int64(len(content)), result.Size)
	assert.False(t, result.ExpiresAt.IsZero())

	uploads := fake.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "photo.png", uploads[0].Name)
	assert.Equal(t, "image/png", uploads[0].ContentType)
	assert.Equal(t, content, uploads[0].Data)
}

func TestUploadSmallAndEmptyFiles(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	client := NewClient(fake.Config())

	_, err := client.Upload(context.Background(), "tiny.txt", 5, strings.NewReader("hello"))
	require.NoError(t, err)

	_, err = client.Upload(context.Background(), "empty.bin", 0, strings.NewReader(""))
	require.NoError(t, err)

	uploads := fake.Uploads()
	require.Len(t, uploads, 2)
	assert.Equal(t, []byte("hello"), uploads[0].Data)
	assert.Contains(t, uploads[0].ContentType, "text/plain")
	assert.Empty(t, uploads[1].Data)
}

func TestUploadEscapesFilename(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	client := NewClient(fake.Config())

	_, err := client.Upload(context.Background(), `my "quoted" file.txt`, 3, strings.NewReader("abc"))
	require.NoError(t, err)

	uploads := fake.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, `my "quoted" file.txt`, uploads[0].Name)
}

func TestUploadNonSuccessStatus(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	fake.FailUpload(http.StatusBadRequest)
	client := NewClient(fake.Config())

	result, err := client.Upload(context.Background(), "a.txt", 1, strings.NewReader("a"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrUploadFailed))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, OpUpload, statusErr.Op)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Upload rejected", statusErr.Message)
}

func TestUploadUnparseableResponse(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	fake.UploadResponseBody("<html>ok</html>")
	client := NewClient(fake.Config())

	_, err := client.Upload(context.Background(), "a.txt", 1, strings.NewReader("a"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUploadFailed))
}

func TestUploadAcceptsAnyJSONShape(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	fake.UploadResponseBody(`["stored"]`)
	client := NewClient(fake.Config())

	result, err := client.Upload(context.Background(), "a.txt", 1, strings.NewReader("a"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt", result.Name)
	assert.Empty(t, result.ID)
}

func TestUploadTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := &Client{UploadURL: server.URL, HTTPClient: http.DefaultClient}
	_, err := client.Upload(context.Background(), "a.txt", 1, strings.NewReader("a"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUploadFailed))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestUploadSourceReadError(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	client := NewClient(fake.Config())

	_, err := client.Upload(context.Background(), "a.txt", 1, failingReader{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUploadFailed))
	assert.Equal(t, 0, fake.UploadCalls())
}

func TestUploadCancelledContext(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	client := NewClient(fake.Config())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Upload(ctx, "a.txt", 1, strings.NewReader("a"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUploadFailed))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestList(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	now := time.Now().UTC()
	fake.Seed(
		model.FileRecord{ID: "a", Name: "a.txt", Size: 1, UploadedAt: model.Timestamp{Time: now}, ExpiresAt: model.Timestamp{Time: now.Add(time.Hour)}},
		model.FileRecord{ID: "b", Name: "b.txt", Size: 2, UploadedAt: model.Timestamp{Time: now}, ExpiresAt: model.Timestamp{Time: now.Add(2 * time.Hour)}},
	)
	client := NewClient(fake.Config())

	files, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a", files[0].ID)
	assert.Equal(t, "b", files[1].ID)
	assert.Equal(t, 1, fake.ListCalls())
}

func TestListMissingFilesField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()

	client := &Client{ListURL: server.URL, HTTPClient: server.Client()}
	files, err := client.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestListFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			status: http.StatusInternalServerError,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "<html></html>")
			},
		},
		{
			name: "bad timestamp",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"files":[{"id":"a","expiresAt":"soon"}]}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := &Client{ListURL: server.URL, HTTPClient: server.Client()}
			files, err := client.List(context.Background())
			require.Error(t, err)
			assert.Nil(t, files)
			assert.True(t, errors.Is(err, ErrListFetchFailed))

			var statusErr *StatusError
			if tt.status != 0 {
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, tt.status, statusErr.StatusCode)
				assert.Equal(t, "boom", statusErr.Message)
			} else {
				assert.False(t, errors.As(err, &statusErr))
			}
		})
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Op: OpList, StatusCode: 502}
	assert.Equal(t, "list: backend returned 502", err.Error())

	err.Message = "bad gateway"
	assert.Equal(t, "list: backend returned 502: bad gateway", err.Error())
}

func TestProgressReaderCountsBytes(t *testing.T) {
	pr := NewProgressReader(strings.NewReader(strings.Repeat("a", 4096)), 4096, "a.txt")
	n, err := io.Copy(io.Discard, pr)
	require.NoError(t, err)
	assert.Equal(t, int64(4096), n)
	assert.Equal(t, int64(4096), pr.BytesRead())
	assert.Equal(t, int64(10), pr.logged)
}
