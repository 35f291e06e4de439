package today

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	activitydto "trainlog/internal/modules/activity/dto"
	statsdto "trainlog/internal/modules/stats/dto"
	apperrors "trainlog/internal/platform/errors"
	"trainlog/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type ActivityPort interface {
	Today(ctx context.Context) (activitydto.TodayOutput, error)
	Toggle(ctx context.Context, exerciseID string) (activitydto.ToggleOutput, error)
}

type StatsPort interface {
	Summary(ctx context.Context) statsdto.SummaryOutput
	Week(ctx context.Context) []statsdto.WeekDayOutput
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Out activitydto.TodayOutput
	Err error
}

type ToggledMsg struct {
	Out activitydto.ToggleOutput
	Err error
}

type StatsMsg struct {
	Summary statsdto.SummaryOutput
	Week    []statsdto.WeekDayOutput
}

type celebrationOverMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	activity ActivityPort
	stats    StatsPort
	pal      theme.Palette

	planName    string
	planDesc    string
	record      activitydto.RecordOutput
	summary     statsdto.SummaryOutput
	week        []statsdto.WeekDayOutput
	cursor      int
	progress    progress.Model
	spinner     spinner.Model
	loading     bool
	noPlan      bool
	celebrating bool
	err         error
	width       int
	height      int
}

func New(activity ActivityPort, stats StatsPort, pal theme.Palette) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(pal.Accent)

	pb := progress.New(progress.WithGradient(string(pal.Blue), string(pal.Green)))

	return Model{
		activity: activity,
		stats:    stats,
		pal:      pal,
		progress: pb,
		spinner:  sp,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.statsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(m.width-8, 50)

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrNoPlan) {
				m.noPlan = true
			} else {
				m.err = msg.Err
			}
			return m, nil
		}
		m.noPlan = false
		m.err = nil
		m.planName = msg.Out.PlanName
		m.planDesc = msg.Out.PlanDescription
		m.record = msg.Out.Record
		if m.cursor >= len(m.record.Exercises) {
			m.cursor = 0
		}

	case ToggledMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.record = msg.Out.Record
		cmds = append(cmds, m.statsCmd())
		if msg.Out.JustCompleted {
			m.celebrating = true
			cmds = append(cmds, tea.Tick(5*time.Second, func(time.Time) tea.Msg {
				return celebrationOverMsg{}
			}))
		}

	case StatsMsg:
		m.summary = msg.Summary
		m.week = msg.Week

	case celebrationOverMsg:
		m.celebrating = false

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.record.Exercises)-1 {
				m.cursor++
			}
		case " ", "enter":
			if m.cursor < len(m.record.Exercises) {
				cmds = append(cmds, m.toggleCmd(m.record.Exercises[m.cursor].ID))
			}
		case "r":
			cmds = append(cmds, m.loadCmd(), m.statsCmd())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading today…")
	}
	if m.noPlan {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.pal.Title.Render("No Training Plan")+"\n\n"+
				m.pal.Muted.Render("Run onboarding to generate one: trainlog onboard"))
	}
	if m.err != nil {
		return m.pal.Bad.Render("error: " + m.err.Error())
	}

	var sb strings.Builder
	sb.WriteString(m.pal.Title.Render(m.planName) + "\n")
	sb.WriteString(m.pal.Muted.Render(m.planDesc) + "\n\n")

	if m.celebrating {
		sb.WriteString(m.pal.Hot.Render("🎉 All done for today! Great work!") + "\n\n")
	}

	for i, ex := range m.record.Exercises {
		box := "[ ]"
		style := lipgloss.NewStyle().Foreground(m.pal.Text)
		if ex.Done {
			box = "[x]"
			style = m.pal.Good
		}
		prefix := "  "
		if i == m.cursor {
			prefix = m.pal.Hot.Render("> ")
		}
		line := fmt.Sprintf("%s %s", box, ex.Name)
		if ex.Duration != "" {
			line += m.pal.Muted.Render("  " + ex.Duration)
		}
		sb.WriteString(prefix + style.Render(line) + "\n")
		if i == m.cursor && ex.Description != "" {
			sb.WriteString("     " + m.pal.Muted.Render(ex.Description) + "\n")
		}
	}

	ratio := 0.0
	if m.record.TotalCount > 0 {
		ratio = float64(m.record.CompletedCount) / float64(m.record.TotalCount)
	}
	sb.WriteString("\n" + m.progress.ViewAs(ratio))
	sb.WriteString(fmt.Sprintf("  %d/%d\n\n", m.record.CompletedCount, m.record.TotalCount))

	sb.WriteString(m.pal.Hot.Render(fmt.Sprintf("🔥 %d day streak", m.summary.CurrentStreak)) + "\n\n")
	sb.WriteString(m.renderWeek())
	sb.WriteString("\n" + m.pal.Muted.Render("space: toggle  j/k: move  r: refresh"))
	return sb.String()
}

func (m Model) renderWeek() string {
	if len(m.week) == 0 {
		return ""
	}
	var names, marks []string
	for _, d := range m.week {
		name := d.DayName
		if d.IsToday {
			name = m.pal.Title.Render(name)
		} else {
			name = m.pal.Muted.Render(name)
		}
		names = append(names, name)
		if d.Completed {
			marks = append(marks, m.pal.Good.Render(" ● "))
		} else {
			marks = append(marks, m.pal.Muted.Render(" ○ "))
		}
	}
	return strings.Join(names, " ") + "\n" + strings.Join(marks, " ") + "\n"
}

// Reload re-fetches today's record and statistics, for use after an import
// or reset elsewhere in the app.
func (m Model) Reload() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.statsCmd())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.activity.Today(context.Background())
		return LoadedMsg{Out: out, Err: err}
	}
}

func (m Model) toggleCmd(exerciseID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.activity.Toggle(context.Background(), exerciseID)
		return ToggledMsg{Out: out, Err: err}
	}
}

func (m Model) statsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		return StatsMsg{Summary: m.stats.Summary(ctx), Week: m.stats.Week(ctx)}
	}
}
