package ui

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/marianozunino/share/internal/model"
)

// Tab is one of the page's top-level views
type Tab string

const (
	TabUpload Tab = "upload"
	TabFiles  Tab = "files"
	TabInfo   Tab = "info"
)

// Tabs lists the tabs in display order
var Tabs = []Tab{TabUpload, TabFiles, TabInfo}

// ParseTab validates a tab name
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Label is the tab's display name
func (t Tab) Label() string {
	switch t {
	case TabUpload:
		return "Upload"
	case TabFiles:
		return "My files"
	case TabInfo:
		return "Home"
	default:
		return string(t)
	}
}

// PageView is a read-only snapshot of the page, taken at render time
type PageView struct {
	Tab   Tab
	Count int
	Empty bool
	Cards []Card
}

// Page is the root controller: it owns the active tab and the last fetched file list
type Page struct {
	backend Backend

	mu    sync.RWMutex
	tab   Tab
	files []model.FileRecord
}

// NewPage creates a page on the upload tab with an empty list
func NewPage(backend Backend) *Page {
	return &Page{
		backend: backend,
		tab:     TabUpload,
	}
}

// Mount performs the initial list fetch
func (p *Page) Mount(ctx context.Context) error {
	return p.LoadFiles(ctx)
}

// LoadFiles replaces the list with the backend's current one. On failure the
// previous list is kept and the error is logged and returned.
func (p *Page) LoadFiles(ctx context.Context) error {
	files, err := p.backend.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error loading files")
		return err
	}

	p.SetFiles(files)
	return nil
}

// UploadCompleted refreshes the list and switches to the files tab
func (p *Page) UploadCompleted(ctx context.Context, ev UploadCompleted) {
	_ = p.LoadFiles(ctx)
	p.SetTab(TabFiles)
}

// SetTab switches tabs. It never fetches.
func (p *Page) SetTab(t Tab) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tab = t
}

// Tab returns the active tab
func (p *Page) Tab() Tab {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tab
}

// SetFiles replaces the file list with a copy of files
func (p *Page) SetFiles(files []model.FileRecord) {
	cp := make([]model.FileRecord, len(files))
	copy(cp, files)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.files = cp
}

// Files returns a copy of the current file list
func (p *Page) Files() []model.FileRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()
	cp := make([]model.FileRecord, len(p.files))
	copy(cp, p.files)
	return cp
}

// Card builds the card for id. Unknown ids get a card with only the locator set.
func (p *Page) Card(id string, now time.Time) Card {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, rec := range p.files {
		if rec.ID == id {
			return NewCard(rec, p.backend.Link(rec.ID), now)
		}
	}
	return NewCard(model.FileRecord{ID: id}, p.backend.Link(id), now)
}

// View snapshots the page with display values computed against now
func (p *Page) View(now time.Time) PageView {
	p.mu.RLock()
	defer p.mu.RUnlock()

	cards := make([]Card, 0, len(p.files))
	for _, rec := range p.files {
		cards = append(cards, NewCard(rec, p.backend.Link(rec.ID), now))
	}

	return PageView{
		Tab:   p.tab,
		Count: len(cards),
		Empty: len(cards) == 0,
		Cards: cards,
	}
}
