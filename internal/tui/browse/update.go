package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrader/pmpts/internal/prompt"
)

// Messages for async operations.
type entriesLoadedMsg []promptItem
type loadErrorMsg struct{ err error }
type trashDoneMsg []trashResult
type renameResultMsg struct {
	err     error
	newName string
}

// loadCmd reads the prompt entries and their frontmatter descriptions.
func loadCmd(store *prompt.Store) tea.Cmd {
	return func() tea.Msg {
		entries, err := store.Entries()
		if err != nil {
			return loadErrorMsg{err}
		}
		items := make([]promptItem, len(entries))
		for i, e := range entries {
			items[i] = promptItem{entry: e, desc: prompt.Frontmatter(e.Path)["description"]}
		}
		return entriesLoadedMsg(items)
	}
}

// trashCmd trashes the named prompts one by one, recording each action
// so the last one remains undoable.
func trashCmd(store *prompt.Store, record RecordFunc, names []string) tea.Cmd {
	return func() tea.Msg {
		results := make([]trashResult, 0, len(names))
		for _, name := range names {
			action, err := store.Remove(name, true)
			if err == nil {
				err = record(action)
			}
			results = append(results, trashResult{name: name, err: err})
		}
		return trashDoneMsg(results)
	}
}

// renameCmd renames a prompt. Overwrites are never confirmed from the
// TUI, so renaming onto an existing name aborts.
func renameCmd(store *prompt.Store, record RecordFunc, oldName, newName string) tea.Cmd {
	return func() tea.Msg {
		action, err := store.Rename(oldName, newName, false)
		if err == nil {
			err = record(action)
		}
		return renameResultMsg{err: err, newName: newName}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	switch m.phase {
	case phaseLoading:
		return m.updateLoading(msg)
	case phaseList:
		return m.updateList(msg)
	case phaseRename:
		return m.updateRename(msg)
	case phaseConfirmTrash:
		return m.updateConfirmTrash(msg)
	case phaseTrashing:
		return m.updateTrashing(msg)
	case phaseResults:
		return m.updateResults(msg)
	}

	return m, nil
}

func (m Model) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.items = msg
		m.filtered = allIndices(len(m.items))
		m.cursor = 0
		m.selected = make(map[int]bool)
		m.phase = phaseList
		return m, nil

	case loadErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.phase = phaseList
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.updateFilterInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
		case key.Matches(msg, m.keys.Bottom):
			if len(m.filtered) > 0 {
				m.cursor = len(m.filtered) - 1
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.filtered) == 0 {
				return m, nil
			}
			idx := m.filtered[m.cursor]
			if m.selected[idx] {
				delete(m.selected, idx)
			} else {
				m.selected[idx] = true
			}
		case key.Matches(msg, m.keys.SelAll):
			for _, idx := range m.filtered {
				m.selected[idx] = true
			}
		case key.Matches(msg, m.keys.DeselAll):
			m.selected = make(map[int]bool)
		case key.Matches(msg, m.keys.Trash):
			if len(m.selected) == 0 {
				return m, nil
			}
			m.phase = phaseConfirmTrash
			return m, nil
		case key.Matches(msg, m.keys.Rename):
			if len(m.filtered) == 0 {
				return m, nil
			}
			idx := m.filtered[m.cursor]
			m.renameIdx = idx
			m.renameInput.SetValue(m.items[idx].entry.Name)
			m.renameInput.Focus()
			m.renameInput.CursorEnd()
			m.status = ""
			m.phase = phaseRename
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			m.filter.SetValue("")
			m.filter.Focus()
			return m, nil
		}
	}

	return m, nil
}

func (m Model) updateRename(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			newName := strings.TrimSpace(m.renameInput.Value())
			if newName == "" {
				m.status = "Name cannot be empty."
				return m, nil
			}
			m.renameInput.Blur()
			oldName := m.items[m.renameIdx].entry.Name
			return m, renameCmd(m.store, m.record, oldName, newName)
		case tea.KeyEsc:
			m.renameInput.Blur()
			m.status = ""
			m.phase = phaseList
			return m, nil
		}

	case renameResultMsg:
		if msg.err != nil {
			m.status = "Rename failed: " + msg.err.Error()
			m.phase = phaseList
			return m, nil
		}
		m.status = ""
		m.phase = phaseLoading
		return m, tea.Batch(m.spinner.Tick, loadCmd(m.store))
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmTrash(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.phase = phaseTrashing
			return m, tea.Batch(m.spinner.Tick, trashCmd(m.store, m.record, m.selectedNames()))
		case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Back):
			m.phase = phaseList
			return m, nil
		}
	}

	return m, nil
}

func (m Model) updateTrashing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trashDoneMsg:
		m.results = msg
		m.phase = phaseResults
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			return m, tea.Quit
		default:
			if msg.Type == tea.KeyEnter {
				m.status = ""
				m.phase = phaseLoading
				return m, tea.Batch(m.spinner.Tick, loadCmd(m.store))
			}
		}
	}

	return m, nil
}

// updateFilterInput handles key input while the filter text input is focused.
func (m Model) updateFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.filtering = false
			m.filter.Blur()
			m.applyFilter()
			return m, nil
		case tea.KeyEsc:
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.filtered = allIndices(len(m.items))
			m.cursor = 0
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)

	// Live filter as the user types.
	m.applyFilter()

	return m, cmd
}

func (m *Model) applyFilter() {
	term := strings.ToLower(m.filter.Value())

	if term == "" {
		m.filtered = allIndices(len(m.items))
	} else {
		m.filtered = m.filtered[:0]
		for i, item := range m.items {
			searchable := strings.ToLower(item.entry.Name + " " + item.desc)
			if strings.Contains(searchable, term) {
				m.filtered = append(m.filtered, i)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
