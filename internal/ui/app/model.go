package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	activitydto "trainlog/internal/modules/activity/dto"
	backupdto "trainlog/internal/modules/backup/dto"
	plandto "trainlog/internal/modules/plan/dto"
	statsdto "trainlog/internal/modules/stats/dto"
	"trainlog/internal/ui/components"
	"trainlog/internal/ui/theme"
	historyview "trainlog/internal/ui/views/history"
	settingsview "trainlog/internal/ui/views/settings"
	todayview "trainlog/internal/ui/views/today"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type activityPort interface {
	Today(ctx context.Context) (activitydto.TodayOutput, error)
	Toggle(ctx context.Context, exerciseID string) (activitydto.ToggleOutput, error)
}

type statsPort interface {
	Summary(ctx context.Context) statsdto.SummaryOutput
	Heatmap(ctx context.Context) [][]statsdto.HeatmapCell
	Week(ctx context.Context) []statsdto.WeekDayOutput
	MonthlyDigest(ctx context.Context, year int, month time.Month) []statsdto.DigestEntry
}

type settingsPort interface {
	DarkMode(ctx context.Context) bool
	SetDarkMode(ctx context.Context, enabled bool) bool
}

type planPort interface {
	Active(ctx context.Context) (plandto.PlanOutput, error)
	Profile(ctx context.Context) (plandto.ProfileOutput, error)
}

// backupPort works in files rather than raw bytes; the bootstrap layer
// binds it to the configured export directory.
type backupPort interface {
	ExportToFile(ctx context.Context) (string, error)
	ImportFromFile(ctx context.Context, path string) (backupdto.ImportOutput, error)
	Reset(ctx context.Context) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabToday tabID = iota
	tabHistory
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{"Today", "History", "Settings"}

// ─── async messages ──────────────────────────────────────────────────────────

type exportedMsg struct {
	path string
	err  error
}

type importedMsg struct {
	out backupdto.ImportOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Move    key.Binding
	Month   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle exercise")),
		Move:    key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move")),
		Month:   key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "change month")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Toggle, k.Move},
		{k.Month},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the theme, the
// help overlay and the command palette. All business logic is delegated to
// port interfaces; all rendering is delegated to sub-views.
type Model struct {
	activity activityPort
	stats    statsPort
	settings settingsPort
	plan     planPort
	backup   backupPort

	todayView    todayview.Model
	historyView  historyview.Model
	settingsView settingsview.Model

	activeTab tabID
	pal       theme.Palette
	dark      bool
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(
	activity activityPort,
	stats statsPort,
	settings settingsPort,
	plan planPort,
	backup backupPort,
) Model {
	dark := settings.DarkMode(context.Background())
	pal := theme.Select(dark)

	m := Model{
		activity: activity,
		stats:    stats,
		settings: settings,
		plan:     plan,
		backup:   backup,
		activeTab: tabToday,
		pal:       pal,
		dark:      dark,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(pal),
		status:    "ready",
	}
	m.buildViews()
	return m
}

// buildViews (re)constructs the sub-views against the current palette.
func (m *Model) buildViews() {
	m.todayView = todayview.New(m.activity, m.stats, m.pal)
	m.historyView = historyview.New(m.stats, m.pal, time.Now())
	m.settingsView = settingsview.New(m.settings, m.plan, backupBridge{p: m.backup}, m.pal)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.todayView.Init(),
		m.historyView.Init(),
		m.settingsView.Init(),
	)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width

	case settingsview.ThemeToggledMsg:
		return m.applyTheme(msg.Dark)

	case settingsview.DataChangedMsg:
		cmds = append(cmds, m.todayView.Reload(), m.historyView.Reload())

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported to " + msg.path
		}

	case importedMsg:
		if msg.err != nil {
			m.status = "import failed: " + msg.err.Error()
		} else {
			m.status = "backup imported"
			cmds = append(cmds, m.todayView.Reload(), m.historyView.Reload(), m.settingsView.Reload())
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case todayview.ToggledMsg:
		if msg.Err == nil && msg.Out.JustCompleted {
			m.status = "🎉 day complete"
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	// Propagate the message to the active tab's sub-view; messages produced
	// by background loads still reach the other tabs. Spinner ticks always
	// go to the today view so its loading state keeps animating while
	// another tab is in front.
	var tabCmd tea.Cmd
	switch msg.(type) {
	case todayview.LoadedMsg, todayview.ToggledMsg, todayview.StatsMsg, spinner.TickMsg:
		m.todayView, tabCmd = m.todayView.Update(msg)
	case historyview.LoadedMsg:
		m.historyView, tabCmd = m.historyView.Update(msg)
	case settingsview.LoadedMsg, settingsview.ExportedMsg, settingsview.ResetDoneMsg:
		m.settingsView, tabCmd = m.settingsView.Update(msg)
	default:
		switch m.activeTab {
		case tabToday:
			m.todayView, tabCmd = m.todayView.Update(msg)
		case tabHistory:
			m.historyView, tabCmd = m.historyView.Update(msg)
		case tabSettings:
			m.settingsView, tabCmd = m.settingsView.Update(msg)
		}
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) applyTheme(dark bool) (tea.Model, tea.Cmd) {
	m.dark = dark
	m.pal = theme.Select(dark)
	m.palette.SetTheme(m.pal)
	m.buildViews()
	m.status = "theme switched"
	return m, m.Init()
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabToday:
		return m.todayView.View()
	case tabHistory:
		return m.historyView.View()
	case tabSettings:
		return m.settingsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = m.pal.Hot.Render(" " + label + " ")
		} else {
			parts[i] = m.pal.Muted.Render(" " + label + " ")
		}
	}
	sep := m.pal.Muted.Render(" │ ")
	bar := "trainlog  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(m.pal.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := m.pal.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(m.pal.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "toggle":
		if len(parts) < 2 {
			m.status = "usage: toggle <exercise-id>"
			return m, nil
		}
		id := parts[1]
		return m, func() tea.Msg {
			out, err := m.activity.Toggle(context.Background(), id)
			return todayview.ToggledMsg{Out: out, Err: err}
		}

	case "export":
		return m, func() tea.Msg {
			path, err := m.backup.ExportToFile(context.Background())
			return exportedMsg{path: path, err: err}
		}

	case "import":
		if len(parts) < 2 {
			m.status = "usage: import <file>"
			return m, nil
		}
		path := parts[1]
		return m, func() tea.Msg {
			out, err := m.backup.ImportFromFile(context.Background(), path)
			return importedMsg{out: out, err: err}
		}

	// Reset is destructive, so the palette never runs it directly; it arms
	// the settings view's y/n confirmation instead.
	case "reset":
		m.activeTab = tabSettings
		m.settingsView = m.settingsView.PromptReset()
		m.status = "confirm reset in Settings"
		return m, nil

	case "theme:toggle":
		m.settings.SetDarkMode(context.Background(), !m.dark)
		return m.applyTheme(!m.dark)

	case "refresh":
		return m, tea.Batch(m.todayView.Reload(), m.historyView.Reload(), m.settingsView.Reload())
	}

	m.status = "unknown command: " + parts[0]
	return m, nil
}

// ─── port bridges ────────────────────────────────────────────────────────────

// backupBridge narrows the app-level backup port to what the settings view
// needs.
type backupBridge struct {
	p backupPort
}

func (b backupBridge) ExportToFile(ctx context.Context) (string, error) {
	return b.p.ExportToFile(ctx)
}

func (b backupBridge) Reset(ctx context.Context) error {
	return b.p.Reset(ctx)
}
