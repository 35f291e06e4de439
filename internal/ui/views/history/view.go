package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	statsdto "trainlog/internal/modules/stats/dto"
	"trainlog/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type StatsPort interface {
	Summary(ctx context.Context) statsdto.SummaryOutput
	Heatmap(ctx context.Context) [][]statsdto.HeatmapCell
	MonthlyDigest(ctx context.Context, year int, month time.Month) []statsdto.DigestEntry
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Summary statsdto.SummaryOutput
	Heatmap [][]statsdto.HeatmapCell
	Digest  []statsdto.DigestEntry
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	stats StatsPort
	pal   theme.Palette

	summary statsdto.SummaryOutput
	heatmap [][]statsdto.HeatmapCell
	digest  []statsdto.DigestEntry
	year    int
	month   time.Month
	vp      viewport.Model
	width   int
	height  int
}

func New(stats StatsPort, pal theme.Palette, now time.Time) Model {
	vp := viewport.New(0, 0)
	return Model{
		stats: stats,
		pal:   pal,
		year:  now.Year(),
		month: now.Month(),
		vp:    vp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = m.width - 4
		m.vp.Height = max(m.height-16, 3)

	case LoadedMsg:
		m.summary = msg.Summary
		m.heatmap = msg.Heatmap
		m.digest = msg.Digest
		m.vp.SetContent(m.renderDigest())

	case tea.KeyMsg:
		switch msg.String() {
		case "[":
			m.prevMonth()
			cmds = append(cmds, m.loadCmd())
		case "]":
			m.nextMonth()
			cmds = append(cmds, m.loadCmd())
		case "r":
			cmds = append(cmds, m.loadCmd())
		}
	}

	var vCmd tea.Cmd
	m.vp, vCmd = m.vp.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderSummary() + "\n\n")
	sb.WriteString(m.pal.Title.Render("Past Year") + "\n")
	sb.WriteString(m.renderHeatmap() + "\n")
	sb.WriteString(m.pal.Title.Render(fmt.Sprintf("%s %d", m.month, m.year)) +
		m.pal.Muted.Render("  [ / ] change month") + "\n")
	sb.WriteString(m.vp.View())
	return sb.String()
}

// Reload re-fetches everything, for use after an import or reset.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) prevMonth() {
	if m.month == time.January {
		m.month = time.December
		m.year--
		return
	}
	m.month--
}

func (m *Model) nextMonth() {
	if m.month == time.December {
		m.month = time.January
		m.year++
		return
	}
	m.month++
}

func (m Model) renderSummary() string {
	s := m.summary
	cell := func(value int, suffix, label string) string {
		return m.pal.Pane.Render(
			m.pal.Title.Render(fmt.Sprintf("%d%s", value, suffix)) + "\n" +
				m.pal.Muted.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell(s.TotalDays, "", "Total Days"),
		cell(s.CurrentStreak, "", "Current Streak"),
		cell(s.LongestStreak, "", "Longest Streak"),
		cell(s.CompletionRate, "%", "Last 30 Days"),
		cell(s.ThisMonthDays, "", "This Month"),
	)
}

// renderHeatmap draws the year grid one weekday per row, week columns left
// to right, oldest first.
func (m Model) renderHeatmap() string {
	if len(m.heatmap) == 0 {
		return m.pal.Muted.Render("no data")
	}
	done := m.pal.Good
	empty := m.pal.Muted
	today := m.pal.Hot

	var sb strings.Builder
	for day := 0; day < 7; day++ {
		for _, week := range m.heatmap {
			cell := week[day]
			switch {
			case cell.IsFuture:
				sb.WriteString(" ")
			case cell.IsToday && cell.Completed:
				sb.WriteString(today.Render("■"))
			case cell.IsToday:
				sb.WriteString(today.Render("□"))
			case cell.Completed:
				sb.WriteString(done.Render("■"))
			default:
				sb.WriteString(empty.Render("·"))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderDigest() string {
	if len(m.digest) == 0 {
		return m.pal.Muted.Render("No completed days this month")
	}
	var sb strings.Builder
	for _, entry := range m.digest {
		sb.WriteString(m.pal.Good.Render("✓ ") + entry.Date +
			m.pal.Muted.Render(fmt.Sprintf("  %d/%d exercises", entry.Completed, entry.Total)) + "\n")
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	year, month := m.year, m.month
	return func() tea.Msg {
		ctx := context.Background()
		return LoadedMsg{
			Summary: m.stats.Summary(ctx),
			Heatmap: m.stats.Heatmap(ctx),
			Digest:  m.stats.MonthlyDigest(ctx, year, month),
		}
	}
}
