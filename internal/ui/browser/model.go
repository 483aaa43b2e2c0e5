// Package browser is the interactive front end: a Bubble Tea model that drives
// a navigation cursor with the keyboard and mouse.
package browser

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/EugeneDevastator/TraVis/internal/keys"
	"github.com/EugeneDevastator/TraVis/internal/log"
	"github.com/EugeneDevastator/TraVis/internal/nav"
	"github.com/EugeneDevastator/TraVis/internal/pubsub"
)

// DefaultTimeout bounds every cursor call made from the UI.
const DefaultTimeout = 10 * time.Second

// Registry resolves providers by id. *nav.Navigator satisfies it.
type Registry interface {
	Provider(id nav.ProviderID) (nav.Provider, bool)
}

// Refresher is implemented by providers that cache their enumeration.
type Refresher interface {
	Refresh(ctx context.Context)
}

// Locator is implemented by providers positioned on a real directory.
type Locator interface {
	Path() string
}

// DirWatcher follows the directory of the active provider.
type DirWatcher interface {
	Retarget(dir string) error
	Dir() string
}

// Config wires the model. Only Cursor is required.
type Config struct {
	Cursor   nav.Cursor
	Registry Registry
	Watcher  DirWatcher
	Events   pubsub.Subscriber[string]
	Timeout  time.Duration

	ShowProvider  bool
	ShowHelpBar   bool
	MarkdownStyle string
}

type mode int

const (
	modeBrowse mode = iota
	modePrompt
	modeHelp
)

// reloadMsg asks the model to query the cursor again.
type reloadMsg struct{}

// Model is the browser state.
type Model struct {
	cfg      Config
	keys     keys.KeyMap
	help     help.Model
	input    textinput.Model
	zones    *zone.Manager
	prefix   string
	listener *pubsub.Listener[string]
	ctx      context.Context
	cancel   context.CancelFunc

	view     nav.NodeView
	err      error
	selected int
	offset   int
	mode     mode
	helpText string

	width  int
	height int
}

// New creates a browser over cfg.Cursor.
func New(cfg Config) Model {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	ti := textinput.New()
	ti.Prompt = "cd "
	ti.Placeholder = "name or .."
	ti.CharLimit = 4096

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		cfg:    cfg,
		keys:   keys.DefaultKeyMap(),
		help:   help.New(),
		input:  ti,
		zones:  zone.New(),
		ctx:    ctx,
		cancel: cancel,
		width:  80,
		height: 24,
	}
	m.prefix = m.zones.NewPrefix()
	if cfg.Events != nil {
		m.listener = pubsub.NewListener[string](ctx, cfg.Events)
	}
	return m
}

// Close releases the event subscription and the zone manager.
func (m Model) Close() {
	m.cancel()
	m.zones.Close()
}

// Init loads the first view and starts listening for directory changes.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{func() tea.Msg { return reloadMsg{} }}
	if m.listener != nil {
		cmds = append(cmds, m.listener.Next())
	}
	return tea.Batch(cmds...)
}

// Current returns the last view loaded from the cursor.
func (m Model) Current() nav.NodeView {
	return m.view
}

// Err returns the last cursor error, if any.
func (m Model) Err() error {
	return m.err
}

// Selected returns the highlighted entry index.
func (m Model) Selected() int {
	return m.selected
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-2, 1)
		if m.mode == modeHelp {
			m.helpText = m.renderHelp()
		}
		m.clamp()
		return m, nil

	case reloadMsg:
		m.reload()
		m.syncWatcher()
		return m, nil

	case pubsub.Event[string]:
		return m.handleEvent(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modePrompt:
			return m.handlePromptKey(msg)
		case modeHelp:
			return m.handleHelpKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		m.helpText = m.renderHelp()
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		m.clamp()
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(m.view.Children) - 1
		m.clamp()
	case key.Matches(msg, m.keys.Enter):
		if len(m.view.Children) > 0 {
			m.advance(m.view.Children[m.selected])
		}
	case key.Matches(msg, m.keys.Back):
		m.advance(nav.ParentToken)
	case key.Matches(msg, m.keys.Cd):
		m.mode = modePrompt
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		m.mode = modeBrowse
		m.input.Blur()
		if value != "" {
			m.advance(value)
		}
		return m, nil
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		m.cancel()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape, m.keys.Help, m.keys.Quit):
		m.mode = modeBrowse
	}
	return m, nil
}

func (m Model) handleEvent(ev pubsub.Event[string]) (tea.Model, tea.Cmd) {
	var next tea.Cmd
	if m.listener != nil {
		next = m.listener.Next()
	}
	if ev.Topic != pubsub.TopicDirChanged {
		return m, next
	}
	if dir, ok := m.activeDir(); !ok || filepath.Clean(dir) != filepath.Clean(ev.Payload) {
		return m, next
	}
	log.Debug(log.CatUI, "Directory changed, reloading", "dir", ev.Payload)
	m.reload()
	return m, next
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeBrowse {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.move(-1)
	case tea.MouseButtonWheelDown:
		m.move(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		for i := m.offset; i < len(m.view.Children); i++ {
			z := m.zones.Get(m.entryZone(i))
			if z == nil || !z.InBounds(msg) {
				continue
			}
			if i == m.selected {
				m.advance(m.view.Children[i])
			} else {
				m.selected = i
			}
			break
		}
	}
	return m, nil
}

// advance performs one cursor step. A failed step keeps the view and shows the
// error.
func (m *Model) advance(input string) {
	ctx, cancel := m.callContext()
	defer cancel()

	prev := m.view.Name
	view, err := m.cfg.Cursor.Advance(ctx, input)
	if err != nil {
		log.ErrorErr(log.CatUI, "Advance failed", err, "input", input)
		m.err = err
		return
	}
	m.selected, m.offset = 0, 0
	if view.Kind == nav.KindInside && view.ProviderType == m.cfg.Cursor.Active() {
		m.err = nil
		m.view = view
		m.clamp()
	} else {
		// A transition returns the departing provider's view.
		m.reload()
	}
	if input == nav.ParentToken && m.err == nil {
		m.selectChild(filepath.Base(prev), prev)
	}
	m.syncWatcher()
}

func (m *Model) reload() {
	ctx, cancel := m.callContext()
	defer cancel()

	view, err := m.cfg.Cursor.CurrentView(ctx)
	if err != nil {
		log.ErrorErr(log.CatUI, "Loading view failed", err, "active", m.cfg.Cursor.Active())
		m.err = err
		return
	}
	m.err = nil
	m.view = view
	m.clamp()
}

func (m *Model) refresh() {
	if m.cfg.Registry != nil {
		if p, ok := m.cfg.Registry.Provider(m.cfg.Cursor.Active()); ok {
			if r, ok := p.(Refresher); ok {
				ctx, cancel := m.callContext()
				r.Refresh(ctx)
				cancel()
			}
		}
	}
	m.reload()
}

func (m *Model) syncWatcher() {
	if m.cfg.Watcher == nil {
		return
	}
	dir, _ := m.activeDir()
	if dir == m.cfg.Watcher.Dir() {
		return
	}
	if err := m.cfg.Watcher.Retarget(dir); err != nil {
		log.Warn(log.CatUI, "Could not watch directory", "dir", dir, "error", err)
	}
}

func (m Model) activeDir() (string, bool) {
	if m.cfg.Registry == nil {
		return "", false
	}
	p, ok := m.cfg.Registry.Provider(m.cfg.Cursor.Active())
	if !ok {
		return "", false
	}
	loc, ok := p.(Locator)
	if !ok {
		return "", false
	}
	return loc.Path(), true
}

func (m *Model) selectChild(candidates ...string) {
	for _, c := range candidates {
		for i, child := range m.view.Children {
			if child == c {
				m.selected = i
				m.clamp()
				return
			}
		}
	}
}

func (m *Model) move(delta int) {
	m.selected += delta
	m.clamp()
}

// clamp keeps the selection inside the children and scrolls it into view.
func (m *Model) clamp() {
	n := len(m.view.Children)
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	rows := m.listRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
	if m.offset > max(n-rows, 0) {
		m.offset = max(n-rows, 0)
	}
}

func (m Model) callContext() (context.Context, context.CancelFunc) {
	if m.cfg.Timeout < 0 {
		return context.WithCancel(m.ctx)
	}
	return context.WithTimeout(m.ctx, m.cfg.Timeout)
}
