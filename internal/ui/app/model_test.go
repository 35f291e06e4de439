package app

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	activitydto "trainlog/internal/modules/activity/dto"
	backupdto "trainlog/internal/modules/backup/dto"
	plandto "trainlog/internal/modules/plan/dto"
	statsdto "trainlog/internal/modules/stats/dto"
	apperrors "trainlog/internal/platform/errors"
	"trainlog/internal/ui/components"
	settingsview "trainlog/internal/ui/views/settings"
)

type fakeActivity struct{}

func (fakeActivity) Today(context.Context) (activitydto.TodayOutput, error) {
	return activitydto.TodayOutput{}, apperrors.ErrNoPlan
}

func (fakeActivity) Toggle(context.Context, string) (activitydto.ToggleOutput, error) {
	return activitydto.ToggleOutput{}, nil
}

type fakeStats struct{}

func (fakeStats) Summary(context.Context) statsdto.SummaryOutput { return statsdto.SummaryOutput{} }

func (fakeStats) Heatmap(context.Context) [][]statsdto.HeatmapCell { return nil }

func (fakeStats) Week(context.Context) []statsdto.WeekDayOutput { return nil }

func (fakeStats) MonthlyDigest(context.Context, int, time.Month) []statsdto.DigestEntry {
	return nil
}

type fakeSettings struct{}

func (fakeSettings) DarkMode(context.Context) bool          { return false }
func (fakeSettings) SetDarkMode(context.Context, bool) bool { return true }

type fakePlan struct{}

func (fakePlan) Active(context.Context) (plandto.PlanOutput, error) {
	return plandto.PlanOutput{}, apperrors.ErrNoPlan
}

func (fakePlan) Profile(context.Context) (plandto.ProfileOutput, error) {
	return plandto.ProfileOutput{}, apperrors.ErrOnboardingIncomplete
}

type fakeBackup struct {
	resets int
}

func (f *fakeBackup) ExportToFile(context.Context) (string, error) { return "", nil }

func (f *fakeBackup) ImportFromFile(context.Context, string) (backupdto.ImportOutput, error) {
	return backupdto.ImportOutput{}, nil
}

func (f *fakeBackup) Reset(context.Context) error {
	f.resets++
	return nil
}

// collectMsgs executes a command tree and flattens the produced messages.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func paletteSubmit(input string) components.PaletteSubmitMsg {
	return components.PaletteSubmitMsg{Input: input}
}

func TestPaletteResetRequiresConfirmation(t *testing.T) {
	t.Parallel()

	backup := &fakeBackup{}
	m := NewModel(fakeActivity{}, fakeStats{}, fakeSettings{}, fakePlan{}, backup)

	// Submitting "reset" must not wipe anything; it arms the settings
	// view's confirmation prompt instead.
	updated, cmd := m.Update(paletteSubmit("reset"))
	model := updated.(Model)
	collectMsgs(t, cmd)
	if backup.resets != 0 {
		t.Fatalf("palette reset ran without confirmation, resets = %d", backup.resets)
	}
	if model.activeTab != tabSettings {
		t.Fatalf("activeTab = %d, want settings tab", model.activeTab)
	}

	// Declining leaves the stores alone.
	updated, cmd = model.Update(keyPress('n'))
	model = updated.(Model)
	collectMsgs(t, cmd)
	if backup.resets != 0 {
		t.Fatalf("declined reset still ran, resets = %d", backup.resets)
	}

	// Re-arm and confirm: only now does the wipe happen.
	updated, _ = model.Update(paletteSubmit("reset"))
	model = updated.(Model)
	_, cmd = model.Update(keyPress('y'))
	msgs := collectMsgs(t, cmd)
	if backup.resets != 1 {
		t.Fatalf("confirmed reset ran %d times, want 1", backup.resets)
	}
	found := false
	for _, msg := range msgs {
		if done, ok := msg.(settingsview.ResetDoneMsg); ok {
			found = true
			if done.Err != nil {
				t.Fatalf("ResetDoneMsg.Err = %v", done.Err)
			}
		}
	}
	if !found {
		t.Fatal("confirmed reset produced no ResetDoneMsg")
	}
}

func TestSpinnerTickReachesTodayViewFromAnyTab(t *testing.T) {
	t.Parallel()

	m := NewModel(fakeActivity{}, fakeStats{}, fakeSettings{}, fakePlan{}, &fakeBackup{})
	m.activeTab = tabHistory

	// The today view answers a tick with the next one; a dropped tick
	// would freeze its loading spinner whenever another tab is in front.
	_, cmd := m.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Fatal("spinner tick was not forwarded to the today view")
	}
}
