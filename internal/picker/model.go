package picker

import (
	"unicode"

	"github.com/atomicstack/grouped-picker/internal/logging/events"
	"github.com/atomicstack/grouped-picker/internal/theme"
	"github.com/atomicstack/grouped-picker/internal/tree"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultMaxVisible = 10

// ChooseMsg asks the picker to choose the row at Index of the menu identified
// by Generation. Messages for any other generation are dropped.
type ChooseMsg struct {
	Generation uint64
	Index      int
}

// SelectedMsg reports a node chosen by the user.
type SelectedMsg struct {
	Node tree.Node
}

// Model is a Bubble Tea grouped dropdown. The caller owns the forest and the
// selection; the model keeps the latest values it was handed and the menu
// built from them.
type Model struct {
	items     []tree.Node
	selection tree.Node
	onChange  func(tree.Node)
	cfg       Config

	menu       Menu
	generation uint64
	popup      popup
	query      string

	KeyMap      KeyMap
	Placeholder string
	width       int
	maxVisible  int
	styles      *theme.Styles
}

// New builds a picker over items with the given selection. onChange, when
// set, is called every time the user chooses a node.
func New(items []tree.Node, selection tree.Node, onChange func(tree.Node)) Model {
	m := Model{
		items:       items,
		selection:   selection,
		onChange:    onChange,
		cfg:         DefaultConfig(),
		KeyMap:      DefaultKeyMap(),
		Placeholder: "(none)",
		maxVisible:  defaultMaxVisible,
		styles:      theme.Default(),
	}
	m.sync()
	return m
}

// MenuImage sets the group and leaf icons. An empty item icon renders leaves
// without an icon.
func (m Model) MenuImage(folder, item string) Model {
	m.cfg.FolderIcon = folder
	m.cfg.ItemIcon = item
	m.sync()
	return m
}

// DeselectItems disables the given leaves and switches to the deselect-list
// policy.
func (m Model) DeselectItems(nodes ...tree.Node) Model {
	m.cfg.Deselect = DeselectSet(nodes...)
	m.cfg.Policy = DeselectList
	m.sync()
	return m
}

// GroupSelectable toggles group rows and switches to the group-selectable
// policy.
func (m Model) GroupSelectable(enabled bool) Model {
	m.cfg.GroupsSelectable = enabled
	m.cfg.Policy = GroupSelectable
	m.sync()
	return m
}

// WithPolicy installs a custom enablement predicate.
func (m Model) WithPolicy(policy Policy) Model {
	m.cfg.Policy = policy
	m.sync()
	return m
}

// IndentPrefix renders depth by repeating prefix in front of the title
// instead of indenting the row.
func (m Model) IndentPrefix(prefix string) Model {
	m.cfg.IndentPrefix = prefix
	m.sync()
	return m
}

// Width fixes the rendered width; zero sizes the pop-up to its content.
func (m Model) Width(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	return m
}

// MaxVisible limits the number of rows shown at once.
func (m Model) MaxVisible(n int) Model {
	if n <= 0 {
		n = defaultMaxVisible
	}
	m.maxVisible = n
	m.popup.ensureVisible(len(m.menu.Rows), m.maxVisible)
	return m
}

// SetItems replaces the forest and rebuilds the menu.
func (m *Model) SetItems(items []tree.Node) {
	m.items = items
	m.sync()
}

// SetSelection replaces the selection and rebuilds the menu.
func (m *Model) SetSelection(selection tree.Node) {
	m.selection = selection
	m.sync()
}

// SetDeselect replaces the deselect set and rebuilds the menu. The active
// policy is left untouched.
func (m *Model) SetDeselect(nodes ...tree.Node) {
	m.cfg.Deselect = DeselectSet(nodes...)
	m.sync()
}

// SetConfig replaces the whole configuration and rebuilds the menu.
func (m *Model) SetConfig(cfg Config) {
	cfg.Deselect = cloneSet(cfg.Deselect)
	m.cfg = cfg
	m.sync()
}

// Config returns a copy of the active configuration.
func (m Model) Config() Config {
	cfg := m.cfg
	cfg.Deselect = cloneSet(cfg.Deselect)
	return cfg
}

// Menu returns the menu currently on display.
func (m Model) Menu() Menu { return m.menu }

// Selection returns the selection the model was last handed or published.
func (m Model) Selection() tree.Node { return m.selection }

// Open reports whether the pop-up is showing.
func (m Model) Open() bool { return m.popup.open }

// Cursor returns the highlighted row while the pop-up is open.
func (m Model) Cursor() int { return m.popup.cursor }

// sync rebuilds the menu from the latest inputs. The cursor and the index
// mapping are replaced in the same step.
func (m *Model) sync() {
	m.generation++
	menu := Build(m.items, m.selection, m.cfg)
	menu.Generation = m.generation
	m.menu = menu
	m.popup.cursor = menu.Selected
	m.popup.ensureVisible(len(menu.Rows), m.maxVisible)
	m.query = ""
	events.Picker.Sync(menu.Generation, len(menu.Rows), menu.EnabledCount(), menu.Selected)
}

// Choose is the positional entry point: it resolves index against the menu on
// display and publishes the node. Out-of-range indices are ignored.
func (m Model) Choose(index int) (Model, tea.Cmd) {
	cmd := m.choose(ChooseMsg{Generation: m.menu.Generation, Index: index})
	return m, cmd
}

func (m *Model) choose(msg ChooseMsg) tea.Cmd {
	if msg.Generation != m.menu.Generation {
		events.Picker.Reject("stale", msg.Index, msg.Generation)
		return nil
	}
	node, ok := m.menu.Resolve(msg.Index)
	if !ok {
		events.Picker.Reject("range", msg.Index, msg.Generation)
		return nil
	}
	events.Picker.Choose(msg.Index, node.ID(), node.Label())
	m.popup.open = false
	m.selection = node
	m.sync()
	if m.onChange != nil {
		m.onChange(node)
	}
	return func() tea.Msg { return SelectedMsg{Node: node} }
}

// Init is part of the tea.Model contract.
func (m Model) Init() tea.Cmd { return nil }

// Update handles choose requests and key presses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ChooseMsg:
		cmd := m.choose(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.popup.open {
			cmd := m.handleOpenKey(msg)
			return m, cmd
		}
		if key.Matches(msg, m.KeyMap.Open) {
			m.openPopup()
		}
	}
	return m, nil
}

func (m *Model) openPopup() {
	m.popup.open = true
	m.popup.cursor = m.menu.Selected
	m.query = ""
	m.popup.ensureVisible(len(m.menu.Rows), m.maxVisible)
	events.Picker.Open(m.popup.cursor)
}

func (m *Model) closePopup() {
	m.popup.open = false
	m.popup.cursor = m.menu.Selected
	m.query = ""
	events.Picker.Close()
}

func (m *Model) handleOpenKey(msg tea.KeyMsg) tea.Cmd {
	rows := m.menu.Rows
	moved := false
	switch {
	case key.Matches(msg, m.KeyMap.Dismiss):
		m.closePopup()
		return nil
	case key.Matches(msg, m.KeyMap.Choose):
		if m.popup.cursor < 0 || m.popup.cursor >= len(rows) || !rows[m.popup.cursor].Enabled {
			return nil
		}
		return m.choose(ChooseMsg{Generation: m.menu.Generation, Index: m.popup.cursor})
	case key.Matches(msg, m.KeyMap.Up):
		moved = m.popup.moveStep(rows, -1)
	case key.Matches(msg, m.KeyMap.Down):
		moved = m.popup.moveStep(rows, 1)
	case key.Matches(msg, m.KeyMap.PageUp):
		moved = m.popup.movePage(rows, m.maxVisible, -1)
	case key.Matches(msg, m.KeyMap.PageDown):
		moved = m.popup.movePage(rows, m.maxVisible, 1)
	case key.Matches(msg, m.KeyMap.Home):
		moved = m.popup.moveHome(rows)
	case key.Matches(msg, m.KeyMap.End):
		moved = m.popup.moveEnd(rows)
	case key.Matches(msg, m.KeyMap.Erase):
		runes := []rune(m.query)
		if len(runes) == 0 {
			return nil
		}
		m.query = string(runes[:len(runes)-1])
		m.jump()
		return nil
	case msg.Type == tea.KeySpace && !msg.Alt:
		m.query += " "
		m.jump()
		return nil
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.query += string(msg.Runes)
		m.jump()
		return nil
	}
	if moved {
		m.query = ""
		events.Picker.Cursor(m.popup.cursor)
	}
	m.popup.ensureVisible(len(rows), m.maxVisible)
	return nil
}

func (m *Model) jump() {
	if idx := matchRow(m.menu.Rows, m.query); idx >= 0 {
		m.popup.cursor = idx
		m.popup.ensureVisible(len(m.menu.Rows), m.maxVisible)
	}
	events.Picker.Jump(m.query, m.popup.cursor)
}
