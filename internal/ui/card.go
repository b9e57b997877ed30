package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/marianozunino/share/internal/model"
	"github.com/marianozunino/share/internal/utils"
)

// Card is the display form of one file. Values are fixed at construction.
type Card struct {
	Record    model.FileRecord
	Link      string
	Size      string
	Remaining string
	Expired   bool
	Category  utils.FileCategory
	Icon      string
}

// NewCard derives the display values of rec as of now
func NewCard(rec model.FileRecord, link string, now time.Time) Card {
	category := utils.ClassifyFile(rec.Name)
	remaining := utils.FormatRemaining(rec.ExpiresAt.Time, now)

	return Card{
		Record:    rec,
		Link:      link,
		Size:      utils.FormatFileSize(rec.Size),
		Remaining: remaining,
		Expired:   remaining == utils.ExpiredLabel,
		Category:  category,
		Icon:      category.Icon(),
	}
}

// Key identifies the card among its siblings
func (c Card) Key() string {
	return c.Record.ID
}

// Name is the original filename
func (c Card) Name() string {
	return c.Record.Name
}

// Download opens the file's locator in a new browsing context. Expiry is left to the backend.
func (c Card) Download(ctx context.Context, platform Platform) error {
	if err := platform.OpenInNewContext(ctx, c.Link); err != nil {
		return fmt.Errorf("failed to open %s: %w", c.Link, err)
	}
	return nil
}

// CopyLink writes the locator to the clipboard and confirms through notifier
func (c Card) CopyLink(ctx context.Context, platform Platform, notifier Notifier) error {
	if err := platform.WriteClipboardText(ctx, c.Link); err != nil {
		notifier.Notify(Notification{
			Title:       "Could not copy link",
			Description: c.Link,
			Variant:     VariantDestructive,
		})
		return fmt.Errorf("%w: %w", ErrClipboardWriteFailed, err)
	}

	notifier.Notify(Notification{
		Title:       "Link copied!",
		Description: "Share the link with others",
		Variant:     VariantDefault,
	})
	return nil
}
