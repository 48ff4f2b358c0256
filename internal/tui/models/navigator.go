package models

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Dallionking/notchbar/internal/animate"
	"github.com/Dallionking/notchbar/internal/config"
	"github.com/Dallionking/notchbar/internal/geometry"
	"github.com/Dallionking/notchbar/internal/routes"
	"github.com/Dallionking/notchbar/internal/tui/components"
	"github.com/Dallionking/notchbar/internal/tui/styles"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// NavigateMsg asks the navigator to make Key the current route.
type NavigateMsg struct {
	Key string
}

// FrameMsg advances the focus animation by one frame.
type FrameMsg time.Time

// ConfigReloadMsg carries a live config reload.
type ConfigReloadMsg config.Reload

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Navigator is the full-screen program: a content pane for the current
// route above the curved tab bar. It owns the navigation state; the bar only
// reads it.
type Navigator struct {
	cfg     *config.Config
	current string

	bar     *components.CurvedTabBar
	content viewport.Model
	keys    keyMap
	zones   *zone.Manager
	reloads <-chan config.Reload
	now     func() time.Time

	width    int
	height   int
	ticking  bool
	quitting bool
}

// NavigatorOption customises a Navigator.
type NavigatorOption func(*Navigator)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) NavigatorOption {
	return func(n *Navigator) { n.now = now }
}

// WithZones enables mouse hit regions on the tab cells.
func WithZones(zm *zone.Manager) NavigatorOption {
	return func(n *Navigator) { n.zones = zm }
}

// WithReloads feeds config reloads into the program.
func WithReloads(ch <-chan config.Reload) NavigatorOption {
	return func(n *Navigator) { n.reloads = ch }
}

// NewNavigator builds the program model. The initial route is
// cfg.InitialRoute, or the first route when that is unknown.
func NewNavigator(cfg *config.Config, opts ...NavigatorOption) Navigator {
	n := Navigator{
		cfg:     cfg,
		keys:    defaultKeyMap(),
		now:     time.Now,
		content: viewport.New(0, 0),
	}
	for _, o := range opts {
		o(&n)
	}

	n.bar = NewTabBar(cfg)
	if n.zones != nil {
		n.bar.WithZones(n.zones)
	}
	n.bar.OnSelect = selectRoute(n.bar)
	if list := n.bar.Routes(); len(list) > 0 {
		n.current = list[n.bar.Active()].Key
	}
	return n
}

// selectRoute turns a tab tap into a navigation request for that route.
func selectRoute(bar *components.CurvedTabBar) func(int) tea.Cmd {
	return func(i int) tea.Cmd {
		dest := bar.Routes()[i].Key
		return func() tea.Msg { return NavigateMsg{Key: dest} }
	}
}

// Current returns the current route key.
func (n Navigator) Current() string { return n.current }

// Bar exposes the tab bar, mostly for tests.
func (n Navigator) Bar() *components.CurvedTabBar { return n.bar }

// Ticking reports whether animation frames are scheduled.
func (n Navigator) Ticking() bool { return n.ticking }

func (n Navigator) frameCmd() tea.Cmd {
	return tea.Tick(n.cfg.FrameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (n Navigator) waitForReload() tea.Cmd {
	if n.reloads == nil {
		return nil
	}
	ch := n.reloads
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadMsg(r)
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea interface
// ---------------------------------------------------------------------------

// Init starts listening for config reloads.
func (n Navigator) Init() tea.Cmd {
	return n.waitForReload()
}

// Update handles resize, keyboard, mouse, navigation, frames and reloads.
func (n Navigator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.width = msg.Width
		n.height = msg.Height
		n.bar.SetWidth(msg.Width)
		n.reflow()
		return n, nil

	case tea.KeyMsg:
		return n.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
			var cmd tea.Cmd
			n.content, cmd = n.content.Update(msg)
			return n, cmd
		}
		if n.zones == nil && !n.onBar(msg.Y) {
			return n, nil
		}
		return n, n.bar.HandleMouse(msg)

	case NavigateMsg:
		return n.navigate(msg.Key)

	case FrameMsg:
		if n.bar.Animating(time.Time(msg)) {
			return n, n.frameCmd()
		}
		n.ticking = false
		return n, nil

	case ConfigReloadMsg:
		if msg.Err != nil {
			log.Printf("config reload: %v", msg.Err)
			return n, n.waitForReload()
		}
		if errs := config.Validate(msg.Config); len(errs) > 0 {
			log.Printf("config reload rejected: %v", errs[0])
			return n, n.waitForReload()
		}
		n.applyConfig(msg.Config)
		log.Printf("config reloaded: %d routes", len(msg.Config.Routes))
		return n, n.waitForReload()
	}

	return n, nil
}

func (n Navigator) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := n.bar.Routes()
	active := n.bar.Active()

	switch {
	case key.Matches(msg, n.keys.Quit):
		n.quitting = true
		return n, tea.Quit
	case key.Matches(msg, n.keys.Prev):
		return n, navigateTo(list, geometry.ClampIndex(active-1, len(list)))
	case key.Matches(msg, n.keys.Next):
		return n, navigateTo(list, geometry.ClampIndex(active+1, len(list)))
	case key.Matches(msg, n.keys.Cycle):
		if len(list) == 0 {
			return n, nil
		}
		return n, navigateTo(list, (active+1)%len(list))
	case key.Matches(msg, n.keys.Jump):
		i := int(msg.String()[0] - '1')
		if i >= len(list) {
			return n, nil
		}
		return n, navigateTo(list, i)
	case key.Matches(msg, n.keys.Scroll):
		var cmd tea.Cmd
		n.content, cmd = n.content.Update(msg)
		return n, cmd
	}
	return n, nil
}

// navigateTo requests navigation to the route at index i.
func navigateTo(list []routes.Descriptor, i int) tea.Cmd {
	if i < 0 || i >= len(list) {
		return nil
	}
	dest := list[i].Key
	return func() tea.Msg { return NavigateMsg{Key: dest} }
}

// navigate updates the navigation state, then hands the new index to the
// bar, which retargets its focus animation.
func (n Navigator) navigate(dest string) (tea.Model, tea.Cmd) {
	list := n.bar.Routes()
	found := false
	for _, r := range list {
		if r.Key == dest {
			found = true
			break
		}
	}
	if !found {
		return n, nil
	}

	now := n.now()
	n.current = dest
	n.bar.SetActive(routes.IndexOf(list, dest), now)
	n.refreshContent()

	if n.bar.Animating(now) && !n.ticking {
		n.ticking = true
		return n, n.frameCmd()
	}
	return n, nil
}

// applyConfig swaps in a reloaded configuration, keeping the current route
// when it still exists.
func (n *Navigator) applyConfig(cfg *config.Config) {
	n.cfg = cfg
	n.bar.Theme = ThemeFrom(cfg)
	n.bar.Metrics = MetricsFrom(cfg)

	easing, err := animate.ParseEasing(cfg.Animation.Easing)
	if err != nil {
		easing = animate.EaseInOut
	}
	n.bar.SetTiming(cfg.Duration(), easing)
	n.bar.SetRoutes(cfg.Routes)

	if len(cfg.Routes) > 0 {
		i := routes.IndexOf(cfg.Routes, n.current)
		n.current = cfg.Routes[i].Key
		n.bar.SetActive(i, n.now())
	}
	n.reflow()
}

// onBar reports whether terminal row y falls on the tab bar. The bar starts
// below the header and the bordered content pane, wherever that puts it on
// screens too short for the full layout.
func (n Navigator) onBar(y int) bool {
	top := 1 + n.content.Height + 2 // header, panel border
	return y >= top && y < top+n.bar.Rows()
}

// reflow sizes the content pane to the space between header and bar.
func (n *Navigator) reflow() {
	h := n.height - 1 - n.bar.Rows() - 1 - 2 // header, footer, panel border
	if h < 1 {
		// An empty pane still renders one line.
		h = 1
	}
	w := n.width - 4 // panel border and padding
	if w < 0 {
		w = 0
	}
	n.content.Width = w
	n.content.Height = h
	n.refreshContent()
}

func (n *Navigator) refreshContent() {
	list := n.bar.Routes()
	if len(list) == 0 {
		n.content.SetContent("")
		return
	}
	r := list[n.bar.Active()]
	n.content.SetContent(renderDescription(r, n.content.Width))
	n.content.GotoTop()
}

// renderDescription renders a route's markdown description. Rendering
// failures fall back to the raw text.
func renderDescription(r routes.Descriptor, width int) string {
	text := r.Description
	if text == "" {
		text = "# " + r.Label()
	}
	if width <= 0 {
		return text
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}

// View renders content, bar and footer. Outline and marker are drawn from a
// single sample of the focus animation.
func (n Navigator) View() string {
	if n.quitting {
		return ""
	}
	if n.width == 0 {
		return "Loading..."
	}

	header := components.Header{Width: n.width}
	if list := n.bar.Routes(); len(list) > 0 {
		header.Title = list[n.bar.Active()].Label()
		header.Index = n.bar.Active()
		header.Count = len(list)
	}
	panel := styles.Panel.Width(n.width - 2).Render(n.content.View())
	footer := components.Footer{Bindings: n.keys.hints(), Width: n.width}.Render()

	out := lipgloss.JoinVertical(lipgloss.Left, header.Render(), panel, n.bar.View(n.now()), footer)
	if n.zones != nil {
		return n.zones.Scan(out)
	}
	return out
}
