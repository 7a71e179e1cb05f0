package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/stockdeck/internal/logging"
	"github.com/five82/stockdeck/internal/prefs"
	"github.com/five82/stockdeck/internal/state"
)

// Page identifies one of the top-level screens.
type Page int

const (
	PageDashboard Page = iota
	PageProducts
	PageSync
	PageSettings
)

var pageOrder = []Page{PageDashboard, PageProducts, PageSync, PageSettings}

// String returns the identifier stored in preferences.
func (p Page) String() string {
	switch p {
	case PageProducts:
		return "products"
	case PageSync:
		return "sync"
	case PageSettings:
		return "settings"
	default:
		return "dashboard"
	}
}

// Title returns the navigation label.
func (p Page) Title() string {
	switch p {
	case PageProducts:
		return "Products"
	case PageSync:
		return "Sync Status"
	case PageSettings:
		return "Settings"
	default:
		return "Dashboard"
	}
}

// ParsePage maps a preference value to a page; unknown values are the dashboard.
func ParsePage(value string) Page {
	for _, p := range pageOrder {
		if strings.EqualFold(strings.TrimSpace(value), p.String()) {
			return p
		}
	}
	return PageDashboard
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Logger    *logging.Logger
	LogPath   string // file shown by the log overlay
	ThemeName string
	StartPage string
	PrefsPath string
}

// Model is the root application state for Bubble Tea. Exactly one page
// state is live at a time; it is rebuilt from a fresh snapshot whenever the
// page is entered.
type Model struct {
	ctx       context.Context
	store     *state.Store
	log       *logging.Logger
	logPath   string
	prefsPath string
	startPage Page
	keys      keyMap

	theme  Theme
	width  int
	height int
	ready  bool

	page     Page
	scope    *Scope
	scopeSeq uint64
	snapshot state.Snapshot

	dashboard *dashboardPage
	products  *productsPage
	sync      *syncPage
	settings  *settingsPage

	showHelp bool
	logs     logOverlay
	errorMsg string
}

// New creates the model and enters the start page.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		log:       log,
		logPath:   opts.LogPath,
		prefsPath: prefsPath,
		startPage: ParsePage(opts.StartPage),
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.ThemeName),
	}
	m.enterPage(m.startPage)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case scopedMsg:
		if msg.scope != m.scope.ID() {
			m.log.Debug().Uint64("scope", msg.scope).Msg("dropped message from closed page")
			return m, nil
		}
		return m.handleScoped(msg.msg)

	case logsLoadedMsg:
		m.logs.apply(msg)
		return m, nil

	case logTickMsg:
		if !m.logs.open || msg.gen != m.logs.gen {
			return m, nil
		}
		return m, tea.Batch(loadLogsCmd(m.logPath), logTickCmd(msg.gen))
	}
	return m, nil
}

// handleScoped processes delayed messages from the current page's scope.
func (m Model) handleScoped(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resolveDoneMsg:
		m.completeResolution(msg)
	case saveAckMsg:
		m.clearSaveAck(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.logs.open {
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey routes input: overlays first, then focused text inputs, then
// global bindings and finally the active page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.logs.open {
		return m.handleLogsKey(msg)
	}

	if m.inputFocused() {
		return m.handlePageKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.logs.open = true
		m.logs.offset = 0
		m.logs.gen++
		return m, tea.Batch(loadLogsCmd(m.logPath), logTickCmd(m.logs.gen))

	case key.Matches(msg, m.keys.Tab):
		m.enterPage(m.offsetPage(1))
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.enterPage(m.offsetPage(-1))
		return m, nil

	case key.Matches(msg, m.keys.Dashboard):
		m.enterPage(PageDashboard)
		return m, nil

	case key.Matches(msg, m.keys.Products):
		m.enterPage(PageProducts)
		return m, nil

	case key.Matches(msg, m.keys.Sync):
		m.enterPage(PageSync)
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.enterPage(PageSettings)
		return m, nil
	}

	return m.handlePageKey(msg)
}

func (m Model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.page {
	case PageProducts:
		return m.handleProductsKey(msg)
	case PageSync:
		return m.handleSyncKey(msg)
	case PageSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

// inputFocused reports whether a text input currently owns the keyboard.
func (m Model) inputFocused() bool {
	switch m.page {
	case PageProducts:
		return m.products != nil && m.products.searching
	case PageSettings:
		return m.settings != nil && m.settings.editing
	}
	return false
}

// enterPage tears down the current page scope and seeds the new page from a
// fresh snapshot. Re-entering the current page also resets it.
func (m *Model) enterPage(p Page) {
	m.scope.Cancel()
	m.scopeSeq++
	m.scope = newScope(m.ctx, m.scopeSeq)

	m.page = p
	m.snapshot = m.store.Snapshot()
	m.dashboard, m.products, m.sync, m.settings = nil, nil, nil, nil
	switch p {
	case PageDashboard:
		m.dashboard = newDashboardPage(m.snapshot)
	case PageProducts:
		m.products = newProductsPage(m.snapshot)
	case PageSync:
		m.sync = newSyncPage(m.snapshot)
	case PageSettings:
		m.settings = newSettingsPage(m.snapshot)
	}
	m.errorMsg = ""

	m.log.Info().
		Str("page", p.String()).
		Uint64("scope", m.scopeSeq).
		Msg("page entered")
}

func (m Model) offsetPage(delta int) Page {
	n := len(pageOrder)
	return pageOrder[((int(m.page)+delta)%n+n)%n]
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	p := prefs.Prefs{Theme: m.theme.Name, StartPage: m.startPage.String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.errorMsg = "theme not saved"
		m.log.Warn().Err(err).Str("theme", m.theme.Name).Msg("save prefs failed")
		return
	}
	m.log.Info().Str("theme", m.theme.Name).Msg("theme changed")
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.scope.Cancel()
	m.log.Info().Str("page", m.page.String()).Msg("quit requested")
	return m, tea.Quit
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	_, err := tea.NewProgram(m, programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
