// Package templates renders the web front end's pages. The *.templ files are
// the source; regenerate the *_templ.go files with `go tool templ generate`.
package templates

import (
	"github.com/marianozunino/share/internal/ui"
)

const defaultTitle = "File Share"

// HomeData is everything the home page renders
type HomeData struct {
	Title  string
	View   ui.PageView
	Panel  ui.PanelState
	Toasts []ui.Notification
}

func (d HomeData) pageTitle() string {
	if d.Title == "" {
		return defaultTitle
	}
	return d.Title
}
