package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/infiniscroll/pkg/engine"
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/scenario"
)

// Browser styles
var (
	browseItemStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	browseAltStyle     = lipgloss.NewStyle().Foreground(colorCyan)
	browseCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	browseGapStyle     = lipgloss.NewStyle().Foreground(colorDim)
	browseDimStyle     = lipgloss.NewStyle().Foreground(colorGray)
)

// chromeLines is the number of terminal lines taken by title, help and status.
const chromeLines = 4

// =============================================================================
// Key Map
// =============================================================================

type browseKeyMap struct {
	Back     key.Binding
	Forward  key.Binding
	PageBack key.Binding
	PageFwd  key.Binding
	FlingBk  key.Binding
	FlingFwd key.Binding
	Home     key.Binding
	Select   key.Binding
	Paging   key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

func defaultBrowseKeyMap(dir geom.Direction) browseKeyMap {
	back, fwd := []string{"up", "k"}, []string{"down", "j"}
	backHelp, fwdHelp := "↑", "↓"
	if dir == geom.Horizontal {
		back, fwd = []string{"left", "h"}, []string{"right", "l"}
		backHelp, fwdHelp = "←", "→"
	}
	return browseKeyMap{
		Back:     key.NewBinding(key.WithKeys(back...), key.WithHelp(backHelp, "scroll")),
		Forward:  key.NewBinding(key.WithKeys(fwd...), key.WithHelp(fwdHelp, "scroll")),
		PageBack: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page")),
		PageFwd:  key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page")),
		FlingBk:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "fling back")),
		FlingFwd: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "fling")),
		Home:     key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("0", "item 0")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "select")),
		Paging:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "paging")),
		Grow:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "resize items")),
		Shrink:   key.NewBinding(key.WithKeys("-")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Back, k.Forward, k.PageFwd, k.FlingFwd, k.Home, k.Select, k.Paging, k.Grow, k.Reload, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// =============================================================================
// BrowseModel - Interactive terminal host
// =============================================================================

// BrowseModel is the bubbletea model that hosts the engine in the terminal.
// One terminal cell is one point: rows for vertical lists, columns for
// horizontal ones.
type BrowseModel struct {
	host  *scenario.Host
	rec   *scenario.Recorder
	keys  browseKeyMap
	axis  geom.Axis
	sizes []float64

	width, height int
	status        string
	err           error
}

// NewBrowseModel lays out s in a host and returns the model driving it.
func NewBrowseModel(s *scenario.Scenario, c *CLI) (BrowseModel, error) {
	h, rec, err := scenario.NewSession(s, c.Logger)
	if err != nil {
		return BrowseModel{}, err
	}
	if err := h.Layout(); err != nil {
		return BrowseModel{}, err
	}
	dir := h.Engine().Direction()
	return BrowseModel{
		host:   h,
		rec:    rec,
		keys:   defaultBrowseKeyMap(dir),
		axis:   geom.NewAxis(dir),
		sizes:  append([]float64(nil), s.Items.Sizes...),
		width:  int(s.Viewport.Width),
		height: int(s.Viewport.Height) + chromeLines,
	}, nil
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.err = m.host.Resize(m.viewportSize())
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.err = m.handleKey(msg)
	}
	m.rec.Drain()
	return m, nil
}

func (m *BrowseModel) handleKey(msg tea.KeyMsg) error {
	step := 1.0
	if m.axis.IsHorizontal() {
		step = 4
	}
	page := m.axis.MainSize(m.host.Viewport().Size)

	switch {
	case key.Matches(msg, m.keys.Back):
		return m.host.ScrollBy(-step)
	case key.Matches(msg, m.keys.Forward):
		return m.host.ScrollBy(step)
	case key.Matches(msg, m.keys.PageBack):
		return m.host.ScrollBy(-page)
	case key.Matches(msg, m.keys.PageFwd):
		return m.host.ScrollBy(page)
	case key.Matches(msg, m.keys.FlingBk):
		_, err := m.host.Fling(-page / scenario.FlingDuration)
		return err
	case key.Matches(msg, m.keys.FlingFwd):
		_, err := m.host.Fling(page / scenario.FlingDuration)
		return err
	case key.Matches(msg, m.keys.Home):
		_, err := m.host.ScrollToItem(0, engine.Center, true)
		return err
	case key.Matches(msg, m.keys.Select):
		c := m.host.Viewport().Size
		if idx, ok := m.host.Select(c.W/2, c.H/2); ok {
			m.status = fmt.Sprintf("selected #%d", idx)
		}
	case key.Matches(msg, m.keys.Paging):
		enabled := !m.host.Engine().PagingEnabled()
		m.status = fmt.Sprintf("paging %v", enabled)
		return m.host.SetPaging(enabled)
	case key.Matches(msg, m.keys.Grow):
		return m.scaleItems(1)
	case key.Matches(msg, m.keys.Shrink):
		return m.scaleItems(-1)
	case key.Matches(msg, m.keys.Reload):
		m.status = "reloaded"
		return m.host.Reload()
	}
	return nil
}

// scaleItems changes every item length by delta and relayouts around the
// centered item.
func (m *BrowseModel) scaleItems(delta float64) error {
	next := make([]float64, len(m.sizes))
	for i, l := range m.sizes {
		next[i] = max(1, l+delta)
	}
	m.sizes = next
	m.rec.SetSizes(next)
	return m.host.Invalidate()
}

func (m BrowseModel) viewportSize() geom.Size {
	return geom.Size{W: float64(m.width), H: float64(max(1, m.height-chromeLines))}
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("infiniscroll"))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render(m.keys.help()))
	b.WriteString("\n")

	if m.axis.IsHorizontal() {
		b.WriteString(m.renderColumns())
	} else {
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// itemAt returns the label and index of the visible item covering main-axis
// content coordinate p.
func (m BrowseModel) itemAt(p float64) (string, int, bool) {
	e := m.host.Engine()
	for _, slot := range e.VisibleSlots() {
		c := e.Cell(slot)
		if p < m.axis.Origin(c.Frame) || p >= m.axis.MaxEdge(c.Frame) {
			continue
		}
		idx, _ := e.IndexOf(slot)
		text := fmt.Sprintf("#%d", idx)
		if l, ok := c.View.(*scenario.Label); ok {
			text = l.Text
		}
		return text, idx, true
	}
	return "", 0, false
}

func (m BrowseModel) styleFor(idx int) lipgloss.Style {
	switch {
	case idx == m.host.Engine().CurrentPage():
		return browseCurrentStyle
	case idx%2 == 0:
		return browseItemStyle
	}
	return browseAltStyle
}

func (m BrowseModel) renderRows() string {
	vp := m.host.Viewport()
	rows := int(vp.Size.H)
	lines := make([]string, rows)
	prev := 0
	started := false
	for r := range rows {
		text, idx, ok := m.itemAt(vp.Offset.Y + float64(r) + 0.5)
		switch {
		case !ok:
			lines[r] = browseGapStyle.Render("·")
			started = false
		case !started || idx != prev:
			lines[r] = m.styleFor(idx).Render("┃ " + text)
			started = true
		default:
			lines[r] = m.styleFor(idx).Render("┃")
		}
		prev = idx
	}
	return strings.Join(lines, "\n")
}

func (m BrowseModel) renderColumns() string {
	vp := m.host.Viewport()
	cols := int(vp.Size.W)
	var top, mid strings.Builder
	var label []rune
	prev, pos := 0, 0
	started := false
	for c := range cols {
		text, idx, ok := m.itemAt(vp.Offset.X + float64(c) + 0.5)
		if !ok {
			top.WriteString(browseGapStyle.Render(" "))
			mid.WriteString(browseGapStyle.Render("·"))
			started = false
			continue
		}
		if !started || idx != prev {
			label, pos, started = []rune(" "+text+" "), 0, true
		}
		prev = idx
		ch := "━"
		if pos < len(label) {
			ch = string(label[pos])
		}
		pos++
		st := m.styleFor(idx)
		top.WriteString(st.Render("━"))
		mid.WriteString(st.Render(ch))
	}
	return top.String() + "\n" + mid.String()
}

func (m BrowseModel) statusLine() string {
	e := m.host.Engine()
	idx := e.VisibleIndices()
	window := "—"
	if len(idx) > 0 {
		window = fmt.Sprintf("%d…%d", idx[0], idx[len(idx)-1])
	}
	parts := []string{
		fmt.Sprintf("offset %.0f", m.host.Offset()),
		"window " + window,
		fmt.Sprintf("page %d", e.CurrentPage()),
		fmt.Sprintf("cells %d", e.Pool().Created()),
	}
	line := browseDimStyle.Render(strings.Join(parts, " · "))
	if m.status != "" {
		line += "  " + StyleHighlight.Render(m.status)
	}
	if m.err != nil {
		line += "  " + styleIconError.Render(iconError+" "+m.err.Error())
	}
	return line
}
