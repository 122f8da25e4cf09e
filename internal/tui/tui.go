// Package tui is the interactive Bubble Tea view over an in-memory list.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// listItem adapts a list position to bubbles/list.Item
type listItem struct {
	pos   int
	title string
	done  bool
}

func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	box, text := t.Muted.Render(t.BoxUnchecked), it.title
	if it.done {
		box, text = t.Success.Render(t.BoxChecked), t.DoneText.Render(it.title)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

var (
	toggleKey  = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteKey  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	addKey     = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	allDoneKey = key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "all done"))
	allUndoKey = key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "all undone"))
)

// Model is the Bubble Tea model. The wrapped *model.List is the single
// source of truth; the bubbles list is rebuilt from it after every change.
type Model struct {
	todos  *model.List
	logger *log.Logger
	list   list.Model

	// Inline add
	adding bool
	input  textinput.Model
	addErr string
}

// New builds a model over todos.
func New(todos *model.List, logger *log.Logger) Model {
	t := ui.Current()
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	bindings := func() []key.Binding {
		return []key.Binding{toggleKey, deleteKey, addKey, allDoneKey, allUndoKey}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "New item title..."
	in.CharLimit = 200

	m := Model{todos: todos, logger: logger, list: l, input: in}
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(todos *model.List, logger *log.Logger) error {
	_, err := tea.NewProgram(New(todos, logger), tea.WithAltScreen()).Run()
	return err
}

// refresh rebuilds list rows and the header from the todo list.
func (m *Model) refresh() tea.Cmd {
	t := ui.Current()
	done, pending := m.todos.Stats()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.todos.Label(),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), m.todos.Size(),
	)

	rows := make([]list.Item, 0, m.todos.Size())
	for i, it := range m.todos.ToSlice() {
		rows = append(rows, listItem{pos: i, title: it.Title(), done: it.IsDone()})
	}
	cmd := m.list.SetItems(rows)
	if n := len(m.list.VisibleItems()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m Model) selected() (int, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	return it.pos, true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(size.Width-4, size.Height-6)
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case keyMsg.String() == "q", keyMsg.String() == "esc" && m.list.FilterState() == list.Unfiltered:
		return m, tea.Quit

	case key.Matches(keyMsg, toggleKey):
		pos, ok := m.selected()
		if !ok {
			return m, nil
		}
		it, err := m.todos.ItemAt(pos)
		if err != nil {
			m.logger.Error("toggle", "err", err)
			return m, nil
		}
		if it.IsDone() {
			err = m.todos.MarkUndoneAt(pos)
		} else {
			err = m.todos.MarkDoneAt(pos)
		}
		if err != nil {
			m.logger.Error("toggle", "err", err)
		}
		m.logger.Debug("toggled", "pos", pos, "done", it.IsDone())
		cmd := m.refresh()
		return m, cmd

	case key.Matches(keyMsg, deleteKey):
		pos, ok := m.selected()
		if !ok {
			return m, nil
		}
		removed, err := m.todos.RemoveAt(pos)
		if err != nil {
			m.logger.Error("remove", "err", err)
			return m, nil
		}
		m.logger.Debug("removed", "pos", pos, "title", removed.Title())
		cmd := m.refresh()
		return m, cmd

	case key.Matches(keyMsg, addKey):
		m.adding = true
		m.addErr = ""
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(keyMsg, allDoneKey):
		m.todos.MarkAllDone()
		cmd := m.refresh()
		return m, cmd

	case key.Matches(keyMsg, allUndoKey):
		m.todos.MarkAllUndone()
		cmd := m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			if err := m.todos.Add(model.NewItem(title)); err != nil {
				m.addErr = err.Error()
				return m, nil
			}
			m.logger.Debug("added", "title", title, "size", m.todos.Size())
			m.adding = false
			m.input.SetValue("")
			m.input.Blur()
			cmd := m.refresh()
			return m, cmd
		case "esc":
			m.adding = false
			m.input.SetValue("")
			m.input.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding {
		t := ui.Current()
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		title := "Add new item"
		if m.addErr != "" {
			title += ": " + t.Error.Render(m.addErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.input.View())
	}
	return ui.Panel([]string{content})
}
