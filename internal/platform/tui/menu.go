package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	lifecore "github.com/vovakirdan/tui-life/internal/games/life/core"
	"github.com/vovakirdan/tui-life/internal/games/life/patterns"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// MenuItem represents a selectable seed pattern in the menu.
type MenuItem struct {
	Ref    string // reference accepted by patterns.Open
	Title  string
	Source string // "bundled" or the pattern directory
}

// PatternItems lists the bundled patterns followed by the ones found in dir.
// An unreadable dir only drops its entries.
func PatternItems(dir string) []MenuItem {
	var items []MenuItem
	for _, p := range registry.List() {
		items = append(items, MenuItem{Ref: p.ID, Title: p.Title, Source: "bundled"})
	}

	if dir == "" {
		return items
	}
	entries, err := patterns.NewLoader(dir).LoadAll()
	if err != nil {
		return items
	}
	for _, e := range entries {
		title := e.Pattern.Name
		if title == "" {
			title = e.ID
		}
		items = append(items, MenuItem{Ref: e.FilePath, Title: title, Source: filepath.Base(dir)})
	}
	return items
}

// MenuModel is the Bubble Tea model for the pattern picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	topology    lifecore.Topology
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects a pattern
	openHistory bool      // True if user pressed Tab for run history
}

// NewMenuModel creates a new menu model starting on topology topo.
func NewMenuModel(items []MenuItem, topo lifecore.Topology, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     items,
		topology:  topo,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionPrevTopology:
		m.topology = m.topology.Prev()

	case MenuActionNextTopology:
		m.topology = m.topology.Next()

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the run
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  G A M E   O F   L I F E  ", m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Select a seed pattern", m.width))
	b.WriteString("\n\n")

	// Keep the cursor visible on short terminals.
	visible := max(m.height-10, 3)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.items))

	for i := start; i < end; i++ {
		item := m.items[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := centerText(fmt.Sprintf("%s%-24s %-12s", cursor, item.Title, item.Source), m.width)
		if i == m.cursor {
			line = accent.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.items) == 0 {
		b.WriteString(centerText("No patterns found.", m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Edges: < %s >", m.topology), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Edges  |  Enter: Run  |  Tab: History  |  Q: Quit"
	b.WriteString(dim.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Topology returns the edge behaviour chosen in the menu.
func (m MenuModel) Topology() lifecore.Topology {
	return m.topology
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the run history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Ref          string
	Topology     lifecore.Topology
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(items []MenuItem, topo lifecore.Topology, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(items, topo, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Topology: topo}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Topology: topo, Quit: true}, nil
	}

	result := MenuResult{
		Config:   m.Config(),
		Topology: m.Topology(),
	}

	if m.WantsHistory() {
		result.WantsHistory = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.Ref = m.Selected().Ref
	} else {
		result.Quit = true
	}

	return result, nil
}
