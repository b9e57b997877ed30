package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"github.com/marianozunino/share/internal/ui"
)

// errBadUpload marks requests that do not carry a readable multipart body
var errBadUpload = errors.New("malformed upload request")

// requestPlatform serves ui.Platform from within one HTTP request: the picked
// file is the request's "file" part and opening a locator becomes a redirect
type requestPlatform struct {
	c      echo.Context
	opened string
}

var _ ui.Platform = (*requestPlatform)(nil)

func newRequestPlatform(c echo.Context) *requestPlatform {
	return &requestPlatform{c: c}
}

// WriteClipboardText is done by the browser itself
func (p *requestPlatform) WriteClipboardText(context.Context, string) error {
	return errors.ErrUnsupported
}

func (p *requestPlatform) OpenInNewContext(_ context.Context, url string) error {
	p.opened = url
	return nil
}

// PickLocalFile streams the first "file" part without buffering it. A form
// submitted without a file counts as a cancelled pick.
func (p *requestPlatform) PickLocalFile(context.Context) (ui.LocalFile, error) {
	reader, err := p.c.Request().MultipartReader()
	if err != nil {
		return ui.LocalFile{}, fmt.Errorf("%w: %w", errBadUpload, err)
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return ui.LocalFile{}, ui.ErrPickCancelled
		}
		if err != nil {
			return ui.LocalFile{}, fmt.Errorf("%w: %w", errBadUpload, err)
		}

		if part.FormName() != "file" {
			part.Close()
			continue
		}
		if part.FileName() == "" {
			part.Close()
			return ui.LocalFile{}, ui.ErrPickCancelled
		}

		return partFile(part), nil
	}
}

func partFile(part *multipart.Part) ui.LocalFile {
	return ui.LocalFile{
		Name: part.FileName(),
		Open: func() (io.ReadCloser, error) {
			return part, nil
		},
	}
}
