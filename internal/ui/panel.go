package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/marianozunino/share/internal/model"
)

// PanelState is a snapshot of the upload panel. Both dimensions default to idle.
type PanelState struct {
	Dragging  bool
	Uploading bool
	MaxSize   string
}

// UploadPanel accepts one file per submission and reports the outcome
type UploadPanel struct {
	uploader Uploader
	notifier Notifier
	maxSize  string

	dragging  atomic.Bool
	uploading atomic.Bool

	mu        sync.Mutex
	listeners []UploadListener
}

// NewUploadPanel creates an idle panel. maxSize is the advertised limit, shown but not enforced.
func NewUploadPanel(uploader Uploader, notifier Notifier, maxSize string) *UploadPanel {
	return &UploadPanel{
		uploader: uploader,
		notifier: notifier,
		maxSize:  maxSize,
	}
}

// Subscribe registers a listener for upload completion
func (p *UploadPanel) Subscribe(l UploadListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

// State returns the current panel state
func (p *UploadPanel) State() PanelState {
	return PanelState{
		Dragging:  p.dragging.Load(),
		Uploading: p.uploading.Load(),
		MaxSize:   p.maxSize,
	}
}

func (p *UploadPanel) DragEnter() { p.dragging.Store(true) }

func (p *UploadPanel) DragLeave() { p.dragging.Store(false) }

// Drop ends the drag and submits the first dropped file
func (p *UploadPanel) Drop(ctx context.Context, files []LocalFile) error {
	p.dragging.Store(false)
	if len(files) == 0 {
		return nil
	}
	return p.Submit(ctx, files[0])
}

// Pick asks the platform for a file and submits it. A cancelled pick is not an error.
func (p *UploadPanel) Pick(ctx context.Context, platform Platform) error {
	if p.uploading.Load() {
		return ErrUploadInProgress
	}

	file, err := platform.PickLocalFile(ctx)
	if errors.Is(err, ErrPickCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	return p.Submit(ctx, file)
}

// Submit uploads file and notifies listeners on success. Failures are reported
// through the notifier and returned; the panel is idle again either way.
func (p *UploadPanel) Submit(ctx context.Context, file LocalFile) error {
	if !p.uploading.CompareAndSwap(false, true) {
		return ErrUploadInProgress
	}

	result, err := p.upload(ctx, file)
	p.uploading.Store(false)

	if err != nil {
		p.notifier.Notify(Notification{
			Title:       "Upload failed",
			Description: "Could not upload the file",
			Variant:     VariantDestructive,
		})
		return err
	}

	p.notifier.Notify(Notification{
		Title:       "File uploaded!",
		Description: fmt.Sprintf("%s uploaded successfully", file.Name),
		Variant:     VariantDefault,
	})

	ev := UploadCompleted{Name: file.Name}
	if result != nil {
		ev.Result = *result
	}
	p.mu.Lock()
	listeners := append([]UploadListener(nil), p.listeners...)
	p.mu.Unlock()
	for _, l := range listeners {
		l.UploadCompleted(ctx, ev)
	}

	return nil
}

func (p *UploadPanel) upload(ctx context.Context, file LocalFile) (*model.UploadResult, error) {
	if file.Open == nil {
		return nil, fmt.Errorf("no content for %s", file.Name)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer rc.Close()

	return p.uploader.Upload(ctx, file.Name, file.Size, rc)
}
