package demo

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/atomicstack/grouped-picker/internal/logging"
	"github.com/atomicstack/grouped-picker/internal/logging/events"
	"github.com/atomicstack/grouped-picker/internal/picker"
	"github.com/atomicstack/grouped-picker/internal/source"
	"github.com/atomicstack/grouped-picker/internal/theme"
	"github.com/atomicstack/grouped-picker/internal/tree"
	"github.com/agnivade/levenshtein"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the demo model.
type Options struct {
	Items            []*tree.Item
	SelectedID       string
	GroupsSelectable bool
	DeselectIDs      []string
	FolderIcon       string
	ItemIcon         string
	IndentPrefix     string
	Width            int
	Height           int
	ShowFooter       bool
	Watcher          *source.Watcher
	// Copy writes text to the system clipboard; nil uses atotto/clipboard.
	Copy func(string) error
}

type keyMap struct {
	Quit         key.Binding
	SwitchPolicy key.Binding
	ToggleGroups key.Binding
	CopyID       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		SwitchPolicy: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch policy")),
		ToggleGroups: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "groups selectable")),
		CopyID:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy id")),
	}
}

// Model is the demo program.
type Model struct {
	picker      picker.Model
	forest      []tree.Node
	selected    tree.Node
	deselectIDs []string
	deselectOn  bool
	groupsOn    bool

	keys        keyMap
	watcher     *source.Watcher
	copy        func(string) error
	infoMsg     string
	errMsg      string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the demo with the picker configured from opts.
func NewModel(opts Options) *Model {
	m := &Model{
		forest:      tree.Nodes(opts.Items...),
		deselectIDs: append([]string(nil), opts.DeselectIDs...),
		deselectOn:  len(opts.DeselectIDs) > 0,
		groupsOn:    opts.GroupsSelectable,
		keys:        defaultKeyMap(),
		watcher:     opts.Watcher,
		copy:        opts.Copy,
		height:      opts.Height,
		fixedHeight: opts.Height > 0,
		showFooter:  opts.ShowFooter,
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	if opts.SelectedID != "" {
		if node, ok := tree.Find(m.forest, opts.SelectedID); ok {
			m.selected = node
		} else {
			m.errMsg = fmt.Sprintf("Unknown selection %q", opts.SelectedID)
			if near := suggestID(m.forest, opts.SelectedID); near != "" {
				m.errMsg += fmt.Sprintf(" (did you mean %q?)", near)
			}
		}
	}
	folder := opts.FolderIcon
	if folder == "" {
		folder = picker.DefaultConfig().FolderIcon
	}
	m.picker = picker.New(m.forest, m.selected, nil).
		MenuImage(folder, opts.ItemIcon).
		IndentPrefix(opts.IndentPrefix)
	m.applyPolicy()
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.picker = m.picker.Width(opts.Width)
	}
	m.resizePicker()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForSourceEvent(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(picker.SelectedMsg{}): m.handleSelectedMsg,
		reflect.TypeOf(picker.ChooseMsg{}):   m.forwardToPicker,
		reflect.TypeOf(sourceEventMsg{}):     m.handleSourceEventMsg,
		reflect.TypeOf(sourceDoneMsg{}):      m.handleSourceDoneMsg,
		reflect.TypeOf(copyResultMsg{}):      m.handleCopyResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) forwardToPicker(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.picker.Open() {
		return m.forwardToPicker(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.SwitchPolicy):
		m.deselectOn = !m.deselectOn
		m.applyPolicy()
		m.setInfo("Policy: " + m.policyName())
		return nil
	case key.Matches(keyMsg, m.keys.ToggleGroups):
		m.groupsOn = !m.groupsOn
		m.applyPolicy()
		m.setInfo("Policy: " + m.policyName())
		return nil
	case key.Matches(keyMsg, m.keys.CopyID):
		return m.copySelectedCmd()
	}
	return m.forwardToPicker(keyMsg)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
		m.picker = m.picker.Width(pickerWidth(size.Width))
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.resizePicker()
	return nil
}

func (m *Model) handleSelectedMsg(msg tea.Msg) tea.Cmd {
	selected, ok := msg.(picker.SelectedMsg)
	if !ok || selected.Node == nil {
		return nil
	}
	m.selected = selected.Node
	m.picker.SetSelection(m.selected)
	events.Demo.Selection(selected.Node.ID(), selected.Node.Label())
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Selected %s", selected.Node.Label()))
	return nil
}

// applyPolicy hands the picker the active policy and its inputs.
func (m *Model) applyPolicy() {
	cfg := m.picker.Config()
	cfg.GroupsSelectable = m.groupsOn
	cfg.Deselect = picker.DeselectSet(m.deselectNodes()...)
	if m.deselectOn {
		cfg.Policy = picker.DeselectList
	} else {
		cfg.Policy = picker.GroupSelectable
	}
	m.picker.SetConfig(cfg)
	events.Demo.Policy(m.policyName())
}

func (m *Model) deselectNodes() []tree.Node {
	nodes := make([]tree.Node, 0, len(m.deselectIDs))
	for _, id := range m.deselectIDs {
		if node, ok := tree.Find(m.forest, id); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func (m *Model) policyName() string {
	if m.deselectOn {
		return fmt.Sprintf("deselect list (%d)", len(m.deselectNodes()))
	}
	if m.groupsOn {
		return "group selectable (groups on)"
	}
	return "group selectable (groups off)"
}

// replaceForest swaps in a reloaded tree and re-points the selection at the
// matching node of the new tree when there is one.
func (m *Model) replaceForest(items []*tree.Item) {
	m.forest = tree.Nodes(items...)
	if m.selected != nil {
		if node, ok := tree.Find(m.forest, m.selected.ID()); ok {
			m.selected = node
		} else {
			m.setInfo(fmt.Sprintf("%s is no longer in the tree", m.selected.Label()))
		}
	}
	m.picker.SetSelection(m.selected)
	m.applyPolicy()
	m.picker.SetItems(m.forest)
}

func (m *Model) resizePicker() {
	if m.height <= 0 {
		m.picker = m.picker.MaxVisible(0)
		return
	}
	visible := m.height - reservedRows(m.showFooter)
	if visible < 1 {
		visible = 1
	}
	m.picker = m.picker.MaxVisible(visible)
}

// reservedRows counts the lines around the pop-up rows: header, blank,
// closed line, pop-up border and scroll hints, blank, selection, status.
func reservedRows(footer bool) int {
	rows := 10
	if footer {
		rows += 2
	}
	return rows
}

func pickerWidth(total int) int {
	if total <= 0 {
		return 0
	}
	w := total / 2
	if w < 24 {
		w = total
	}
	return w
}

func (m *Model) setInfo(msg string) {
	m.infoMsg = strings.TrimSpace(msg)
}

func (m *Model) copySelectedCmd() tea.Cmd {
	if m.selected == nil {
		m.setInfo("Nothing selected to copy")
		return nil
	}
	id := m.selected.ID()
	write := m.copy
	return func() tea.Msg {
		return copyResultMsg{id: id, err: write(id)}
	}
}

type copyResultMsg struct {
	id  string
	err error
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(copyResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		logging.Error(fmt.Errorf("copy to clipboard: %w", result.err))
		m.errMsg = result.err.Error()
		return nil
	}
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Copied %s", result.id))
	return nil
}

// suggestID returns the node id closest to id by edit distance, or "" when
// nothing is near enough to be a plausible typo.
func suggestID(forest []tree.Node, id string) string {
	best, bestDist := "", -1
	for _, e := range tree.Flatten(forest) {
		d := levenshtein.ComputeDistance(id, e.Node.ID())
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.Node.ID(), d
		}
	}
	limit := len(id) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}

// Selected returns the node the demo currently holds as its selection.
func (m *Model) Selected() tree.Node {
	return m.selected
}

// Picker exposes the hosted picker.
func (m *Model) Picker() picker.Model {
	return m.picker
}
