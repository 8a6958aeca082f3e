package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theatomus/listingscanner/internal/record"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// FindingsPageModel is the read-only findings/diagnostics browser
// (SPEC_FULL.md §4.20): it displays what the core produced for one parsed
// listing, it does not implement any extraction or validation logic itself.
type FindingsPageModel struct {
	width  int
	height int
	list   list.Model

	sourcePath  string
	diagnostics []string

	styles Styles
}

// fieldItem adapts one key/value pair to list.Item.
type fieldItem struct {
	key   string
	value string
}

func (i fieldItem) Title() string       { return i.key }
func (i fieldItem) Description() string { return i.value }
func (i fieldItem) FilterValue() string { return i.key + " " + i.value }

// NewFindingsPageModel builds a page from a freshly parsed record.
func NewFindingsPageModel(sourcePath string, rec *record.ListingRecord, diagnostics []string) FindingsPageModel {
	return NewFindingsPageModelFromFields(sourcePath, rec.StructuredView(), diagnostics)
}

// NewFindingsPageModelFromFields builds a page from an already-flattened
// field map, e.g. one reloaded from internal/store.
func NewFindingsPageModelFromFields(sourcePath string, fields map[string]string, diagnostics []string) FindingsPageModel {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]list.Item, 0, len(keys))
	for _, k := range keys {
		if fields[k] == "" {
			continue
		}
		items = append(items, fieldItem{key: k, value: fields[k]})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Findings: %s (%d fields)", sourcePath, len(items))
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return FindingsPageModel{
		list:        l,
		sourcePath:  sourcePath,
		diagnostics: diagnostics,
		styles:      DefaultStyles(),
	}
}

func (m FindingsPageModel) Init() tea.Cmd {
	return nil
}

func (m FindingsPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "c", "y":
			if m.list.FilterState() != list.Filtering {
				if sel, ok := m.list.SelectedItem().(fieldItem); ok {
					if err := clipboardWriteAll(sel.value); err != nil {
						cmd = m.list.NewStatusMessage(m.styles.Error.Render("failed to copy value"))
					} else {
						cmd = m.list.NewStatusMessage(m.styles.Success.Render(fmt.Sprintf("copied %s", sel.key)))
					}
					return m, cmd
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m FindingsPageModel) View() string {
	listView := m.styles.Content.Render(m.list.View())
	help := m.styles.Muted.Render(" c/y: copy value  •  /: filter  •  q: quit")
	if len(m.diagnostics) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, listView, help)
	}

	return lipgloss.JoinVertical(lipgloss.Left, listView, m.renderDiagnostics(), help)
}

// renderDiagnostics lists the gross-I/O or write failures collected for this
// listing (SPEC_FULL.md §7) as a numbered block, newest first — a findings
// browser has exactly one column of interest here (the message), so this
// skips a general-purpose table in favor of the one layout it needs.
func (m FindingsPageModel) renderDiagnostics() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Diagnostics (%d)", len(m.diagnostics))))
	sb.WriteString("\n")
	for i, d := range m.diagnostics {
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("%2d. ", i+1)))
		sb.WriteString(m.styles.Error.Render(d))
		sb.WriteString("\n")
	}
	return sb.String()
}

// SetSize updates the terminal dimensions.
func (m *FindingsPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	reserve := 3
	if len(m.diagnostics) > 0 {
		reserve += len(m.diagnostics) + 1
	}
	m.list.SetSize(w, h-reserve)
}
