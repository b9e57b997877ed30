package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"

	"github.com/marianozunino/share/internal/config"
	"github.com/marianozunino/share/internal/metrics"
	"github.com/marianozunino/share/internal/model"
)

// Operation names used in errors, logs and metric labels
const (
	OpUpload = "upload"
	OpList   = "list"
)

const (
	sniffLen        = 3072
	maxResponseBody = 1 << 20
	maxErrorBody    = 4 << 10
)

var (
	// ErrUploadFailed wraps every upload failure: transport, non-2xx or unparseable body.
	ErrUploadFailed = errors.New("upload failed")
	// ErrListFetchFailed wraps every list failure.
	ErrListFetchFailed = errors.New("list fetch failed")
)

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Op, e.StatusCode)
}

// Client talks to the external file-sharing backend
type Client struct {
	UploadURL       string
	ListURL         string
	DownloadBaseURL string
	HTTPClient      *http.Client
}

// NewClient creates a backend client from the configured endpoint locations
func NewClient(cfg *config.Config) *Client {
	return &Client{
		UploadURL:       cfg.UploadURL,
		ListURL:         cfg.ListURL,
		DownloadBaseURL: strings.TrimRight(cfg.DownloadBaseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// Link returns the fully qualified retrieval locator for a file id
func (c *Client) Link(id string) string {
	return strings.TrimRight(c.DownloadBaseURL, "/") + "/" + url.PathEscape(id)
}

// Upload streams r to the upload endpoint as the multipart field "file".
// size is only used for progress logging and may be zero when unknown.
func (c *Client) Upload(ctx context.Context, name string, size int64, r io.Reader) (*model.UploadResult, error) {
	start := time.Now()
	result, err := c.upload(ctx, name, size, r)

	metrics.BackendRequests.WithLabelValues(OpUpload, metrics.Result(err)).Inc()
	metrics.BackendDuration.WithLabelValues(OpUpload).Observe(time.Since(start).Seconds())

	if err != nil {
		log.Warn().Err(err).Str("file", name).Msg("Upload failed")
		return nil, err
	}

	log.Info().Str("file", name).Str("id", result.ID).Dur("took", time.Since(start)).Msg("Upload completed")
	return result, nil
}

func (c *Client) upload(ctx context.Context, name string, size int64, r io.Reader) (*model.UploadResult, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrUploadFailed, name, err)
	}
	head = head[:n]
	contentType := mimetype.Detect(head).String()

	body := NewProgressReader(io.MultiReader(bytes.NewReader(head), r), size, name)

	pr, pw := io.Pipe()
	defer pr.Close()
	writer := multipart.NewWriter(pw)

	go func() {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(name)))
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			pw.CloseWithError(err)
			return
		}

		written, err := io.Copy(part, body)
		metrics.UploadedBytes.Add(float64(written))
		if err != nil {
			pw.CloseWithError(err)
			return
		}

		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.UploadURL, pr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("file", name).Str("content_type", contentType).Int64("size", size).Msg("Starting upload")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, newStatusError(OpUpload, resp))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrUploadFailed, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: response is not JSON", ErrUploadFailed)
	}

	var result model.UploadResult
	if err := json.Unmarshal(data, &result); err != nil {
		// The body shape is not part of the contract; keep what was parsed.
		log.Debug().Err(err).Msg("Upload response has an unexpected shape")
	}
	if result.Name == "" {
		result.Name = name
	}

	return &result, nil
}

// List fetches the current file list. A missing "files" field yields an empty list.
func (c *Client) List(ctx context.Context) ([]model.FileRecord, error) {
	start := time.Now()
	files, err := c.list(ctx)

	metrics.BackendRequests.WithLabelValues(OpList, metrics.Result(err)).Inc()
	metrics.BackendDuration.WithLabelValues(OpList).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	log.Debug().Int("files", len(files)).Dur("took", time.Since(start)).Msg("File list fetched")
	return files, nil
}

func (c *Client) list(ctx context.Context) ([]model.FileRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ListURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrListFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFetchFailed, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("%w: %w", ErrListFetchFailed, newStatusError(OpList, resp))
	}

	var list model.FileList
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", ErrListFetchFailed, err)
	}

	if list.Files == nil {
		return []model.FileRecord{}, nil
	}
	return list.Files, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// newStatusError reads the {"error": "..."} body the backend sends with failures
func newStatusError(op string, resp *http.Response) *StatusError {
	statusErr := &StatusError{Op: op, StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return statusErr
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		statusErr.Message = body.Error
	} else {
		statusErr.Message = strings.TrimSpace(string(data))
	}

	return statusErr
}
