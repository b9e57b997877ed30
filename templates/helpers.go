package templates

import (
	"net/url"

	"github.com/marianozunino/share/internal/ui"
)

// Step is one entry of the "how it works" explainer
type Step struct {
	Title       string
	Description string
}

var steps = []Step{
	{Title: "1. Upload", Description: "Drag a file in or pick one from your device"},
	{Title: "2. Share", Description: "Copy the unique link to the file"},
	{Title: "3. Download", Description: "The recipient downloads the file from the link"},
}

// TabURL links to the home page with tab selected
func TabURL(tab ui.Tab) string {
	return "/?tab=" + url.QueryEscape(string(tab))
}

// DownloadURL is the front end's own download route for a file id
func DownloadURL(id string) string {
	return "/files/" + url.PathEscape(id) + "/download"
}

// VariantClass maps a notification variant to its CSS class
func VariantClass(v ui.Variant) string {
	if v == ui.VariantDestructive {
		return "destructive"
	}
	return ""
}

func toastClass(v ui.Variant) string {
	if class := VariantClass(v); class != "" {
		return "toast " + class
	}
	return "toast"
}

func tabClass(tab, active ui.Tab) string {
	if tab == active {
		return "active"
	}
	return ""
}

func dropZoneClass(dragging bool) string {
	if dragging {
		return "card drop-zone dragging"
	}
	return "card drop-zone"
}
