package settings

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plandto "trainlog/internal/modules/plan/dto"
	"trainlog/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type SettingsPort interface {
	DarkMode(ctx context.Context) bool
	SetDarkMode(ctx context.Context, enabled bool) bool
}

type PlanPort interface {
	Active(ctx context.Context) (plandto.PlanOutput, error)
	Profile(ctx context.Context) (plandto.ProfileOutput, error)
}

// BackupPort writes exports to the configured export directory and returns
// the file path.
type BackupPort interface {
	ExportToFile(ctx context.Context) (string, error)
	Reset(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Dark     bool
	PlanName string
	Profile  plandto.ProfileOutput
	HasPlan  bool
}

type ExportedMsg struct {
	Path string
	Err  error
}

type ResetDoneMsg struct {
	Err error
}

// ThemeToggledMsg bubbles up so the whole app can swap palettes.
type ThemeToggledMsg struct {
	Dark bool
}

// DataChangedMsg tells the other tabs to reload after an import or reset.
type DataChangedMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	settings SettingsPort
	plan     PlanPort
	backup   BackupPort
	pal      theme.Palette

	dark         bool
	planName     string
	hasPlan      bool
	profile      plandto.ProfileOutput
	status       string
	confirmReset bool
	width        int
	height       int
}

func New(settings SettingsPort, plan PlanPort, backup BackupPort, pal theme.Palette) Model {
	return Model{settings: settings, plan: plan, backup: backup, pal: pal}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.dark = msg.Dark
		m.planName = msg.PlanName
		m.hasPlan = msg.HasPlan
		m.profile = msg.Profile

	case ExportedMsg:
		if msg.Err != nil {
			m.status = "export failed: " + msg.Err.Error()
		} else {
			m.status = "exported to " + msg.Path
		}

	case ResetDoneMsg:
		m.confirmReset = false
		if msg.Err != nil {
			m.status = "reset failed: " + msg.Err.Error()
			return m, nil
		}
		m.status = "all data wiped"
		return m, tea.Batch(m.loadCmd(), func() tea.Msg { return DataChangedMsg{} })

	case tea.KeyMsg:
		if m.confirmReset {
			switch msg.String() {
			case "y":
				return m, m.resetCmd()
			case "n", "esc":
				m.confirmReset = false
				m.status = ""
			}
			return m, nil
		}
		switch msg.String() {
		case "d":
			m.dark = !m.dark
			m.settings.SetDarkMode(context.Background(), m.dark)
			return m, func() tea.Msg { return ThemeToggledMsg{Dark: m.dark} }
		case "e":
			m.status = "exporting…"
			return m, m.exportCmd()
		case "R":
			m.confirmReset = true
			m.status = ""
		}
	}

	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.pal.Title.Render("Settings") + "\n\n")

	mode := "light"
	if m.dark {
		mode = "dark"
	}
	sb.WriteString(row(m.pal, "Theme", mode+"  (d to toggle)"))

	if m.hasPlan {
		sb.WriteString(row(m.pal, "Plan", m.planName))
		sb.WriteString(row(m.pal, "Goal", m.profile.Goal))
		sb.WriteString(row(m.pal, "Time", m.profile.TimeBudget+" min/day"))
		sb.WriteString(row(m.pal, "Equipment", m.profile.Equipment))
	} else {
		sb.WriteString(row(m.pal, "Plan", "none (run: trainlog onboard)"))
	}

	sb.WriteString("\n" + m.pal.Title.Render("Data") + "\n\n")
	sb.WriteString(row(m.pal, "Export", "e: write backup JSON"))
	sb.WriteString(row(m.pal, "Reset", "R: wipe everything"))

	if m.confirmReset {
		sb.WriteString("\n" + m.pal.Bad.Render("Delete ALL data? This cannot be undone. (y/n)") + "\n")
	}
	if m.status != "" {
		sb.WriteString("\n" + m.pal.Muted.Render(m.status) + "\n")
	}
	return sb.String()
}

// Reload re-reads settings and plan after external changes.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

// PromptReset arms the reset confirmation; the next y/n keypress decides.
// Used when a reset is requested from outside this view.
func (m Model) PromptReset() Model {
	m.confirmReset = true
	m.status = ""
	return m
}

// ─── private ─────────────────────────────────────────────────────────────────

func row(pal theme.Palette, label, value string) string {
	return pal.Muted.Render(lipgloss.NewStyle().Width(12).Render(label)) + value + "\n"
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		out := LoadedMsg{Dark: m.settings.DarkMode(ctx)}
		if plan, err := m.plan.Active(ctx); err == nil {
			out.HasPlan = true
			out.PlanName = plan.Name
		}
		if profile, err := m.plan.Profile(ctx); err == nil {
			out.Profile = profile
		}
		return out
	}
}

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		path, err := m.backup.ExportToFile(context.Background())
		return ExportedMsg{Path: path, Err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		return ResetDoneMsg{Err: m.backup.Reset(context.Background())}
	}
}
