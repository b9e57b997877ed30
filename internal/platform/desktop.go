// Package platform provides the host services used by the terminal front end.
package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/cli/browser"
	"github.com/rs/zerolog/log"

	"github.com/marianozunino/share/internal/ui"
)

// Test seams for the OS integrations.
var (
	writeClipboard = clipboard.WriteAll
	openURL        = browser.OpenURL
)

// Desktop implements ui.Platform on the local machine
type Desktop struct {
	// Prompt asks the user for a path. Nil uses an interactive huh input.
	Prompt func(ctx context.Context) (string, error)
}

var _ ui.Platform = (*Desktop)(nil)

// NewDesktop creates a desktop platform with the interactive prompt
func NewDesktop() *Desktop {
	return &Desktop{Prompt: promptPath}
}

// WriteClipboardText copies text to the system clipboard
func (d *Desktop) WriteClipboardText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeClipboard(text)
}

// OpenInNewContext opens url with the default browser
func (d *Desktop) OpenInNewContext(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Debug().Str("url", url).Msg("Opening in browser")
	return openURL(url)
}

// PickLocalFile prompts for a path. An empty answer or an aborted prompt cancels the pick.
func (d *Desktop) PickLocalFile(ctx context.Context) (ui.LocalFile, error) {
	prompt := d.Prompt
	if prompt == nil {
		prompt = promptPath
	}

	path, err := prompt(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ui.LocalFile{}, ui.ErrPickCancelled
	}
	if err != nil {
		return ui.LocalFile{}, fmt.Errorf("failed to read file path: %w", err)
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return ui.LocalFile{}, ui.ErrPickCancelled
	}

	return ui.OpenLocalFile(path)
}

func promptPath(ctx context.Context) (string, error) {
	var path string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File to upload").
				Description("Leave empty to cancel").
				Placeholder("./report.pdf").
				Value(&path).
				Validate(validatePath),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return path, nil
}

func validatePath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
