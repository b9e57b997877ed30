// Package ui is the headless presentation core shared by the web and terminal
// front ends: the file list page, the upload panel, file cards and the
// platform services they depend on.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/marianozunino/share/internal/model"
)

var (
	// ErrUploadInProgress is returned when the panel is busy with another upload.
	ErrUploadInProgress = errors.New("an upload is already in progress")
	// ErrPickCancelled is returned by PickLocalFile when the user dismisses the picker.
	ErrPickCancelled = errors.New("file selection cancelled")
	// ErrClipboardWriteFailed wraps clipboard failures.
	ErrClipboardWriteFailed = errors.New("clipboard write failed")
)

// LocalFile is a file chosen by the user. Open is called once per submission.
type LocalFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// OpenLocalFile describes a file on disk without reading it
func OpenLocalFile(path string) (LocalFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return LocalFile{}, fmt.Errorf("failed to get file info: %w", err)
	}
	if info.IsDir() {
		return LocalFile{}, fmt.Errorf("%s is a directory", path)
	}

	return LocalFile{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// Platform abstracts the host services the UI needs
type Platform interface {
	WriteClipboardText(ctx context.Context, text string) error
	OpenInNewContext(ctx context.Context, url string) error
	PickLocalFile(ctx context.Context) (LocalFile, error)
}

// Uploader sends one file to the backend
type Uploader interface {
	Upload(ctx context.Context, name string, size int64, r io.Reader) (*model.UploadResult, error)
}

// FileLister fetches the current list of files
type FileLister interface {
	List(ctx context.Context) ([]model.FileRecord, error)
}

// Linker builds the retrieval locator for a file id
type Linker interface {
	Link(id string) string
}

// Backend is everything the page and panel need from the backend client
type Backend interface {
	Uploader
	FileLister
	Linker
}

// Variant selects how a notification is presented
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient message shown to the user
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier shows notifications
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Toasts queues notifications until a front end drains them
type Toasts struct {
	mu    sync.Mutex
	items []Notification
}

func (t *Toasts) Notify(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, n)
}

// Drain returns and clears the queued notifications
func (t *Toasts) Drain() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	items := t.items
	t.items = nil
	return items
}

// UploadCompleted is emitted by UploadPanel after a successful upload
type UploadCompleted struct {
	Name   string
	Result model.UploadResult
}

// UploadListener receives upload completion events
type UploadListener interface {
	UploadCompleted(ctx context.Context, ev UploadCompleted)
}
