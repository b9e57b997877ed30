package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// FileRecord describes one uploaded file as reported by the backend
type FileRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	UploadedAt  Timestamp `json:"uploadedAt"`
	ExpiresAt   Timestamp `json:"expiresAt"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
}

// FileList is the body returned by the list endpoint
type FileList struct {
	Files []FileRecord `json:"files"`
}

// UploadResult is the body returned by the upload endpoint. Every field is optional.
type UploadResult struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name,omitempty"`
	Size        int64     `json:"size,omitempty"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
	ExpiresAt   Timestamp `json:"expiresAt,omitempty"`
}

// Timestamp accepts both zoned and naive ISO-8601 values. Naive values are UTC.
type Timestamp struct {
	time.Time
}

var timestampFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses the formats the backend is known to emit
func ParseTimestamp(s string) (time.Time, error) {
	for _, format := range timestampFormats {
		if t, err := time.ParseInLocation(format, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
