package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	activityinadapter "trainlog/internal/modules/activity/adapter/in"
	activityoutadapter "trainlog/internal/modules/activity/adapter/out"
	activityservice "trainlog/internal/modules/activity/service"
	activityusecase "trainlog/internal/modules/activity/usecase"
	backupinadapter "trainlog/internal/modules/backup/adapter/in"
	backupdto "trainlog/internal/modules/backup/dto"
	backupservice "trainlog/internal/modules/backup/service"
	backupusecase "trainlog/internal/modules/backup/usecase"
	planinadapter "trainlog/internal/modules/plan/adapter/in"
	planservice "trainlog/internal/modules/plan/service"
	planusecase "trainlog/internal/modules/plan/usecase"
	settingsinadapter "trainlog/internal/modules/settings/adapter/in"
	settingsoutadapter "trainlog/internal/modules/settings/adapter/out"
	settingsservice "trainlog/internal/modules/settings/service"
	settingsusecase "trainlog/internal/modules/settings/usecase"
	statsinadapter "trainlog/internal/modules/stats/adapter/in"
	statsoutadapter "trainlog/internal/modules/stats/adapter/out"
	statsservice "trainlog/internal/modules/stats/service"
	statsusecase "trainlog/internal/modules/stats/usecase"
	"trainlog/internal/platform/clock"
	"trainlog/internal/platform/config"
	"trainlog/internal/platform/dates"
	"trainlog/internal/platform/id"
	"trainlog/internal/platform/tx"
	uiapp "trainlog/internal/ui/app"
	"trainlog/internal/ui/onboarding"
)

type App struct {
	SettingsCLI settingsinadapter.CLIHandler
	PlanCLI     planinadapter.CLIHandler
	ActivityCLI activityinadapter.CLIHandler
	StatsCLI    statsinadapter.CLIHandler
	BackupCLI   backupinadapter.CLIHandler

	Backup *FileBackup
	Logger *logrus.Logger

	closeStores func() error
}

func New(cfg config.Config, logger *logrus.Logger) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	kvStore, err := settingsoutadapter.NewBadgerStore(cfg.SettingsDir)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	settingsSvc := settingsservice.NewSettingsService(kvStore, logger, lipgloss.HasDarkBackground)
	settingsUC := settingsusecase.NewInteractor(settingsSvc)

	planSvc := planservice.NewPlanService(clk, ids)
	planUC := planusecase.NewInteractor(planSvc, settingsUC, logger)

	recordStore, err := activityoutadapter.NewSQLiteRecordStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}
	activitySvc := activityservice.NewActivityService(clk, recordStore, logger)
	activityUC := activityusecase.NewInteractor(activitySvc, planUC)

	statsSvc := statsservice.NewStatsService(clk, statsoutadapter.NewActivitySource(recordStore), logger)
	statsUC := statsusecase.NewInteractor(statsSvc)

	backupSvc := backupservice.NewBackupService(clk, settingsSvc, activitySvc, tx.NoopManager{}, logger)
	backupUC := backupusecase.NewInteractor(backupSvc)

	return &App{
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		PlanCLI:     planinadapter.NewCLIHandler(planUC),
		ActivityCLI: activityinadapter.NewCLIHandler(activityUC),
		StatsCLI:    statsinadapter.NewCLIHandler(statsUC),
		BackupCLI:   backupinadapter.NewCLIHandler(backupUC),
		Backup:      &FileBackup{handler: backupinadapter.NewCLIHandler(backupUC), exportDir: cfg.ExportDir, clk: clk},
		Logger:      logger,
		closeStores: func() error {
			kvErr := kvStore.Close()
			if err := recordStore.Close(); err != nil {
				return err
			}
			return kvErr
		},
	}, nil
}

// Close releases the underlying stores; call on process exit.
func (a *App) Close() error {
	if a.closeStores == nil {
		return nil
	}
	return a.closeStores()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.ActivityCLI, app.StatsCLI, app.SettingsCLI, app.PlanCLI, app.Backup)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// RunOnboarding walks the questionnaire form and generates the plan.
func RunOnboarding(ctx context.Context, app *App) error {
	questions := app.PlanCLI.Questions(ctx)
	dark := app.SettingsCLI.DarkMode(ctx)
	answers, err := onboarding.Run(questions, dark)
	if err != nil {
		return err
	}
	plan, err := app.PlanCLI.CompleteOnboarding(ctx, answers)
	if err != nil {
		return err
	}
	fmt.Printf("Plan ready: %s (%d exercises)\n", plan.Name, len(plan.Exercises))
	return nil
}

// FileBackup binds the backup module to the filesystem: exports land in the
// configured export directory, imports read any path the user names.
type FileBackup struct {
	handler   backupinadapter.CLIHandler
	exportDir string
	clk       clock.Clock
}

func (f *FileBackup) ExportToFile(ctx context.Context) (string, error) {
	name := fmt.Sprintf("workout-manager-backup-%s.json", dates.Format(f.clk.Now()))
	return f.ExportTo(ctx, filepath.Join(f.exportDir, name))
}

// ExportTo writes the backup document to an explicit path.
func (f *FileBackup) ExportTo(ctx context.Context, path string) (string, error) {
	out, err := f.handler.Export(ctx)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, out.Data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}

func (f *FileBackup) ImportFromFile(ctx context.Context, path string) (backupdto.ImportOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return backupdto.ImportOutput{}, fmt.Errorf("read backup: %w", err)
	}
	return f.handler.Import(ctx, data)
}

func (f *FileBackup) Reset(ctx context.Context) error {
	return f.handler.Reset(ctx)
}
