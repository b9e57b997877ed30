// Package tui is the interactive terminal front end.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/marianozunino/share/internal/ui"
)

type loadedMsg struct{ err error }

type uploadDoneMsg struct {
	name string
	err  error
}

type actionDoneMsg struct{ err error }

// Model is the bubbletea model wrapping a page and its upload panel
type Model struct {
	ctx      context.Context
	page     *ui.Page
	panel    *ui.UploadPanel
	toasts   *ui.Toasts
	platform ui.Platform
	now      func() time.Time

	picker  filepicker.Model
	picking bool
	spinner spinner.Model

	cursor  int
	notices []ui.Notification
	width   int
}

// New builds the model. The page is mounted by Init.
func New(ctx context.Context, backend ui.Backend, platform ui.Platform, maxSize string) Model {
	toasts := &ui.Toasts{}
	page := ui.NewPage(backend)
	panel := ui.NewUploadPanel(backend, toasts, maxSize)
	panel.Subscribe(page)

	picker := filepicker.New()
	if dir, err := os.Getwd(); err == nil {
		picker.CurrentDirectory = dir
	}

	return Model{
		ctx:      ctx,
		page:     page,
		panel:    panel,
		toasts:   toasts,
		platform: platform,
		now:      time.Now,
		picker:   picker,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Page exposes the underlying page
func (m Model) Page() *ui.Page {
	return m.page
}

func (m Model) Init() tea.Cmd {
	return m.load(true)
}

func (m Model) load(mount bool) tea.Cmd {
	return func() tea.Msg {
		if mount {
			return loadedMsg{err: m.page.Mount(m.ctx)}
		}
		return loadedMsg{err: m.page.LoadFiles(m.ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case loadedMsg:
		if msg.err != nil {
			m.notices = append(m.notices, ui.Notification{
				Title:       "Could not refresh files",
				Description: "Showing the last known list",
				Variant:     ui.VariantDestructive,
			})
		}
		m.clampCursor()
		return m, nil

	case uploadDoneMsg:
		if msg.err != nil {
			log.Debug().Err(msg.err).Str("file", msg.name).Msg("Upload failed")
		}
		m.notices = append(m.notices, m.toasts.Drain()...)
		m.cursor = 0
		return m, nil

	case actionDoneMsg:
		m.notices = append(m.notices, m.toasts.Drain()...)
		if msg.err != nil {
			log.Debug().Err(msg.err).Msg("Card action failed")
		}
		return m, nil

	case spinner.TickMsg:
		if !m.panel.State().Uploading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}

	if m.picking {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1":
		m.page.SetTab(ui.TabUpload)
	case "2":
		m.page.SetTab(ui.TabFiles)
	case "3":
		m.page.SetTab(ui.TabInfo)
	case "tab", "right", "l":
		m.page.SetTab(shiftTab(m.page.Tab(), 1))
	case "shift+tab", "left", "h":
		m.page.SetTab(shiftTab(m.page.Tab(), -1))
	case "r":
		return m, m.load(false)
	case "esc":
		m.notices = nil
	default:
		switch m.page.Tab() {
		case ui.TabUpload:
			return m.handleUploadKey(msg)
		case ui.TabFiles:
			return m.handleFilesKey(msg)
		}
	}
	return m, nil
}

func (m Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "u":
		if m.panel.State().Uploading {
			m.notices = append(m.notices, ui.Notification{
				Title:       "Upload in progress",
				Description: "Wait for the current upload to finish",
				Variant:     ui.VariantDestructive,
			})
			return m, nil
		}
		m.picking = true
		m.panel.DragEnter()
		return m, m.picker.Init()
	}
	return m, nil
}

func (m Model) handleFilesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.page.View(m.now())
	if view.Empty {
		if key := msg.String(); key == "enter" || key == "u" {
			m.page.SetTab(ui.TabUpload)
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(view.Cards)-1 {
			m.cursor++
		}
	case "d", "enter":
		card := view.Cards[m.cursor]
		return m, func() tea.Msg {
			err := card.Download(m.ctx, m.platform)
			if err != nil {
				m.toasts.Notify(ui.Notification{
					Title:       "Could not open link",
					Description: card.Link,
					Variant:     ui.VariantDestructive,
				})
			}
			return actionDoneMsg{err: err}
		}
	case "c", "y":
		card := view.Cards[m.cursor]
		return m, func() tea.Msg {
			return actionDoneMsg{err: card.CopyLink(m.ctx, m.platform, m.toasts)}
		}
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q":
			m.picking = false
			m.panel.DragLeave()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.picking = false
		file, err := ui.OpenLocalFile(path)
		if err != nil {
			m.panel.DragLeave()
			m.notices = append(m.notices, ui.Notification{
				Title:       "Upload failed",
				Description: err.Error(),
				Variant:     ui.VariantDestructive,
			})
			return m, nil
		}
		return m, m.submit([]ui.LocalFile{file})
	}

	return m, cmd
}

// submit drops files onto the panel; only the first is uploaded
func (m Model) submit(files []ui.LocalFile) tea.Cmd {
	upload := func() tea.Msg {
		name := ""
		if len(files) > 0 {
			name = files[0].Name
		}
		return uploadDoneMsg{name: name, err: m.panel.Drop(m.ctx, files)}
	}
	return tea.Batch(m.spinner.Tick, upload)
}

func (m *Model) clampCursor() {
	n := len(m.page.Files())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func shiftTab(current ui.Tab, delta int) ui.Tab {
	for i, t := range ui.Tabs {
		if t == current {
			n := len(ui.Tabs)
			return ui.Tabs[((i+delta)%n+n)%n]
		}
	}
	return ui.TabUpload
}

func (m Model) View() string {
	now := m.now()
	view := m.page.View(now)

	var b strings.Builder
	b.WriteString(titleStyle.Render("FILE SHARE"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Fast and secure file sharing"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs(view))
	b.WriteString("\n\n")

	switch view.Tab {
	case ui.TabUpload:
		b.WriteString(m.renderUpload())
	case ui.TabFiles:
		b.WriteString(m.renderFiles(view))
	default:
		b.WriteString(renderInfo())
	}

	if len(m.notices) > 0 {
		b.WriteString("\n\n")
		for _, n := range m.notices {
			style := noticeStyle
			if n.Variant == ui.VariantDestructive {
				style = destructiveStyle
			}
			b.WriteString(style.Render(n.Title))
			if n.Description != "" {
				b.WriteString(" " + mutedStyle.Render(n.Description))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help(view)))
	return b.String()
}

func (m Model) renderTabs(view ui.PageView) string {
	tabs := make([]string, 0, len(ui.Tabs))
	for _, t := range ui.Tabs {
		label := t.Label()
		if t == ui.TabFiles && view.Count > 0 {
			label += " " + badgeStyle.Render(fmt.Sprint(view.Count))
		}
		if t == view.Tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderUpload() string {
	state := m.panel.State()

	if m.picking {
		return "Pick a file to upload\n\n" + m.picker.View()
	}

	var body strings.Builder
	body.WriteString(titleStyle.Render("Upload a file"))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render("Press enter to choose a file"))
	body.WriteString("\n\n")
	if state.Uploading {
		body.WriteString(m.spinner.View() + " Uploading…")
	} else {
		body.WriteString("[ Choose file ]")
	}
	body.WriteString("\n\n")
	body.WriteString(mutedStyle.Render("Maximum file size: " + state.MaxSize))

	return panelStyle.Render(body.String())
}

func (m Model) renderFiles(view ui.PageView) string {
	if view.Empty {
		return panelStyle.Render(
			titleStyle.Render("No files uploaded") + "\n" +
				mutedStyle.Render("Upload your first file to get started") + "\n\n" +
				"[ Upload a file ]",
		)
	}

	cards := make([]string, 0, len(view.Cards))
	for i, card := range view.Cards {
		remaining := card.Remaining + " left"
		if card.Expired {
			remaining = expiredStyle.Render(card.Remaining)
		}

		content := fmt.Sprintf("%s %s\n%s · %s\n%s",
			card.Icon, card.Name(),
			card.Size, remaining,
			mutedStyle.Render(card.Link),
		)

		style := cardStyle
		if i == m.cursor {
			style = selectedCardStyle
		}
		if m.width > 4 {
			style = style.Width(min(m.width-4, 80))
		}
		cards = append(cards, style.Render(content))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderInfo() string {
	steps := []string{
		"1. Upload    Pick a file from your device",
		"2. Share     Copy the unique link to the file",
		"3. Download  The recipient downloads the file from the link",
	}

	return titleStyle.Render("How does it work?") + "\n" +
		mutedStyle.Render("Upload a file, get a unique link and share it with anyone") + "\n\n" +
		strings.Join(steps, "\n") + "\n\n" +
		panelStyle.Render(titleStyle.Render("Automatic deletion")+"\n"+
			mutedStyle.Render("Files are deleted automatically after 24 hours for security"))
}

func (m Model) help(view ui.PageView) string {
	if m.picking {
		return "↑/↓ navigate • enter select • esc cancel"
	}

	keys := []string{"1-3/tab switch", "r refresh"}
	switch view.Tab {
	case ui.TabUpload:
		keys = append(keys, "enter choose file")
	case ui.TabFiles:
		if view.Empty {
			keys = append(keys, "enter upload")
		} else {
			keys = append(keys, "↑/↓ select", "d download", "c copy link")
		}
	}
	keys = append(keys, "q quit")
	return strings.Join(keys, " • ")
}
