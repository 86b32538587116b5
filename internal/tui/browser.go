package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mRC/internal/catalog"
)

// listHeight is the number of visible command rows in the list pane
const listHeight = 14

// BrowserModel is the interactive catalog browser
type BrowserModel struct {
	registry *catalog.Registry

	input    textinput.Model
	viewport viewport.Model

	// filter state
	categoryIdx int // 0 = all categories, 1..16 = fixed category order
	results     []*catalog.CommandEntry
	selected    int
	offset      int

	width  int
	height int
	ready  bool
	err    error
}

// NewBrowser creates a browser over the given registry
func NewBrowser(registry *catalog.Registry) BrowserModel {
	ti := textinput.New()
	ti.Placeholder = "Befehl oder Stichwort eingeben..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 48

	m := BrowserModel{
		registry: registry,
		input:    ti,
	}
	m.refilter()
	return m
}

// Init implements tea.Model
func (m BrowserModel) Init() tea.Cmd {
	return textinput.Blink
}

// currentCategory returns the active category filter, empty for all
func (m *BrowserModel) currentCategory() catalog.Category {
	if m.categoryIdx == 0 {
		return ""
	}
	return m.registry.Categories()[m.categoryIdx-1]
}

// refilter recomputes the result list from input and category
func (m *BrowserModel) refilter() {
	results, err := m.registry.Search(m.input.Value(), m.currentCategory())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.results = results
	if m.selected >= len(results) {
		m.selected = 0
		m.offset = 0
	}
	m.updateDetail()
}

// updateDetail renders the selected entry into the viewport
func (m *BrowserModel) updateDetail() {
	if !m.ready {
		return
	}
	if len(m.results) == 0 {
		m.viewport.SetContent(HelpStyle.Render("Keine Treffer."))
		return
	}
	m.viewport.SetContent(renderDetail(m.results[m.selected]))
	m.viewport.GotoTop()
}

// renderDetail formats one command entry for the detail pane
func renderDetail(entry *catalog.CommandEntry) string {
	var b strings.Builder

	b.WriteString(DetailLabelStyle.Render("Befehl:    "))
	b.WriteString(DetailValueStyle.Render(entry.CanonicalName))
	if entry.IsQuery() {
		b.WriteString(" " + QueryMarkerStyle.Render("[Abfrage]"))
	}
	b.WriteString("\n")

	b.WriteString(DetailLabelStyle.Render("Kategorie: "))
	b.WriteString(CategoryStyle.Render(string(entry.Category)))
	b.WriteString("\n")

	b.WriteString(DetailLabelStyle.Render("Syntax:    "))
	b.WriteString(DetailValueStyle.Render(entry.SyntaxTemplate))
	b.WriteString("\n\n")

	b.WriteString(DetailValueStyle.Render(entry.Description))
	b.WriteString("\n")

	if len(entry.Aliases) > 0 {
		b.WriteString("\n" + DetailLabelStyle.Render("Aliasse:") + "\n")
		for _, alias := range entry.Aliases {
			b.WriteString("  " + alias.Name)
			if alias.Provenance == catalog.ProvenanceOCR {
				b.WriteString(" " + OCRWarnStyle.Render("(OCR, unbestätigt)"))
			}
			b.WriteString("\n")
		}
	}

	if len(entry.SourceRefs) > 0 {
		b.WriteString("\n" + DetailLabelStyle.Render("Quellen:   "))
		b.WriteString(strings.Join(entry.SourceRefs, ", "))
		b.WriteString("\n")
	}

	return b.String()
}

// Update implements tea.Model
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		detailHeight := msg.Height - listHeight - 8
		if detailHeight < 5 {
			detailHeight = 5
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, detailHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = detailHeight
		}
		m.updateDetail()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.selected > 0 {
				m.selected--
				if m.selected < m.offset {
					m.offset = m.selected
				}
				m.updateDetail()
			}
			return m, nil

		case tea.KeyDown:
			if m.selected < len(m.results)-1 {
				m.selected++
				if m.selected >= m.offset+listHeight {
					m.offset = m.selected - listHeight + 1
				}
				m.updateDetail()
			}
			return m, nil

		case tea.KeyTab:
			m.categoryIdx = (m.categoryIdx + 1) % (len(m.registry.Categories()) + 1)
			m.selected = 0
			m.offset = 0
			m.refilter()
			return m, nil

		case tea.KeyShiftTab:
			m.categoryIdx--
			if m.categoryIdx < 0 {
				m.categoryIdx = len(m.registry.Categories())
			}
			m.selected = 0
			m.offset = 0
			m.refilter()
			return m, nil

		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if m.input.Value() != before {
			m.selected = 0
			m.offset = 0
			m.refilter()
		}
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m BrowserModel) View() string {
	if !m.ready {
		return "Initialisiere..."
	}

	var b strings.Builder
	b.WriteString(RenderTitle("mRC - Befehlskatalog MT8000A/MT8821C"))
	b.WriteString("\n")

	b.WriteString(FocusedBoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	categoryLabel := "alle Kategorien"
	if c := m.currentCategory(); c != "" {
		categoryLabel = string(c)
	}
	b.WriteString(StatusBarStyle.Render(fmt.Sprintf(
		" %d Treffer | Kategorie: %s ", len(m.results), categoryLabel)))
	b.WriteString("\n\n")

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(m.viewport.View()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(RenderError(m.err.Error()) + "\n")
	}

	b.WriteString(RenderHelp(
		"↑/↓ wählen | Tab Kategorie | Bild↑/↓ Details | Esc beenden"))
	return b.String()
}

// renderList renders the visible window of the result list
func (m BrowserModel) renderList() string {
	if len(m.results) == 0 {
		return ListItemStyle.Render("keine Befehle")
	}

	end := m.offset + listHeight
	if end > len(m.results) {
		end = len(m.results)
	}

	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		entry := m.results[i]
		label := entry.CanonicalName
		if i == m.selected {
			lines = append(lines, SelectedListItemStyle.Render("> "+label))
		} else {
			lines = append(lines, ListItemStyle.Render(label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
