package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andrader/pmpts/internal/prompt"
	"github.com/andrader/pmpts/internal/tui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseList
	phaseRename
	phaseConfirmTrash
	phaseTrashing
	phaseResults
)

// promptItem wraps an Entry with its frontmatter description for display.
type promptItem struct {
	entry prompt.Entry
	desc  string
}

// trashResult tracks the outcome of trashing a single prompt.
type trashResult struct {
	name string
	err  error
}

// RecordFunc persists the action produced by a mutation. The browse TUI
// calls it after each successful trash or rename so that "pmpts undo"
// sees the most recent one.
type RecordFunc func(*prompt.Action) error

// Model is the Bubble Tea model for the browse TUI.
type Model struct {
	store  *prompt.Store
	record RecordFunc

	phase   phase
	keys    keyMap
	spinner spinner.Model

	items    []promptItem
	filtered []int // indices into items
	cursor   int
	selected map[int]bool // keys are indices into items

	filter    textinput.Model
	filtering bool

	renameInput textinput.Model
	renameIdx   int // index into items being renamed

	results []trashResult
	status  string
	width   int
	height  int
}

// New creates a browse Model backed by the given store. record persists
// the last action after each mutation; it may be nil.
func New(store *prompt.Store, record RecordFunc) Model {
	if record == nil {
		record = func(*prompt.Action) error { return nil }
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	fi := textinput.New()
	fi.Placeholder = "filter..."
	fi.CharLimit = 256
	fi.Width = 40

	ri := textinput.New()
	ri.Placeholder = "new name..."
	ri.CharLimit = 256
	ri.Width = 50

	return Model{
		store:       store,
		record:      record,
		phase:       phaseLoading,
		keys:        newKeyMap(),
		spinner:     sp,
		filter:      fi,
		renameInput: ri,
		selected:    make(map[int]bool),
		width:       80,
		height:      24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.store))
}

func (m Model) View() string {
	switch m.phase {
	case phaseLoading:
		return fmt.Sprintf("%s Loading prompts...\n", m.spinner.View())
	case phaseList:
		return m.viewList()
	case phaseRename:
		return m.viewRename()
	case phaseConfirmTrash:
		return m.viewConfirmTrash()
	case phaseTrashing:
		return fmt.Sprintf("%s Trashing prompts...\n", m.spinner.View())
	case phaseResults:
		return m.viewResults()
	}
	return ""
}

// pageSize returns the number of items that fit on screen. Each prompt
// takes 2 lines (name + detail).
func (m Model) pageSize() int {
	overhead := 5
	if m.filtering {
		overhead += 2
	}
	ps := (m.height - overhead) / 2
	if ps < 1 {
		ps = 1
	}
	return ps
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("pmpts — Browse Prompts"))
	b.WriteString("  ")
	b.WriteString(theme.Dim.Render(m.store.Root()))
	b.WriteString("\n\n")

	if m.filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	items := m.filtered
	ps := m.pageSize()
	page := m.cursor / ps
	start := page * ps
	end := start + ps
	if end > len(items) {
		end = len(items)
	}

	for vi := start; vi < end; vi++ {
		item := m.items[items[vi]]

		check := theme.Uncheck.String()
		if m.selected[items[vi]] {
			check = theme.Check.String()
		}

		prefix := "  "
		style := lipgloss.NewStyle()
		if vi == m.cursor {
			prefix = theme.Cursor.Render("> ")
			style = theme.Cursor
		}
		if m.selected[items[vi]] {
			style = theme.Selected
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, check, style.Render(item.entry.Name)))

		detail := item.entry.File
		if item.desc != "" {
			detail += " • " + truncate(item.desc, m.width-len(item.entry.File)-10)
		}
		b.WriteString(fmt.Sprintf("      %s\n", theme.Dim.Render(detail)))
	}

	if len(items) == 0 {
		b.WriteString(theme.Dim.Render("  No prompts found."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(theme.Dim.Render(m.status))
		b.WriteString("\n")
	}
	selected := len(m.selected)
	if selected > 0 {
		b.WriteString(fmt.Sprintf(" %d prompts • %d selected", len(items), selected))
	} else {
		b.WriteString(fmt.Sprintf(" %d prompts", len(items)))
	}
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(theme.Help.Render("enter: apply filter • esc: clear filter"))
	} else if selected > 0 {
		b.WriteString(theme.Help.Render("j/k: navigate • space: select • a/A: all/none • d: trash • /: filter • q: quit"))
	} else {
		b.WriteString(theme.Help.Render("j/k: navigate • space: select • r: rename • /: filter • q: quit"))
	}

	return b.String()
}

func (m Model) viewRename() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("pmpts — Rename Prompt"))
	b.WriteString("\n\n")

	item := m.items[m.renameIdx]
	b.WriteString(fmt.Sprintf("Current: %s\n\n", theme.Dim.Render(item.entry.Name)))
	b.WriteString("New name:\n\n")
	b.WriteString(m.renameInput.View())
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(theme.Dim.Render(m.status))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Help.Render("enter: rename • esc: cancel"))
	return b.String()
}

func (m Model) viewConfirmTrash() string {
	names := m.selectedNames()
	var b strings.Builder
	b.WriteString(theme.Title.Render("Confirm Trash"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Move %d prompt(s) to trash?\n\n", len(names)))

	for _, name := range names {
		b.WriteString(fmt.Sprintf("  • %s\n", name))
	}

	b.WriteString("\n")
	b.WriteString(theme.Help.Render("y: confirm • n/esc: cancel"))
	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Trash Results"))
	b.WriteString("\n\n")

	var succeeded, failed int
	for _, r := range m.results {
		if r.err == nil {
			b.WriteString(theme.Success.Render(fmt.Sprintf("  ✓ Trashed %s", r.name)))
			succeeded++
		} else {
			b.WriteString(theme.Error.Render(fmt.Sprintf("  ✗ Failed %s: %s", r.name, r.err)))
			failed++
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %d succeeded, %d failed\n\n", succeeded, failed))
	b.WriteString(theme.Help.Render("enter: back to prompts • q/esc: quit"))
	return b.String()
}

// selectedNames returns the names of the selected prompts in list order.
func (m Model) selectedNames() []string {
	var names []string
	for i, item := range m.items {
		if m.selected[i] {
			names = append(names, item.entry.Name)
		}
	}
	return names
}

// truncate shortens s to at most max runes, never splitting a
// multi-byte rune.
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
