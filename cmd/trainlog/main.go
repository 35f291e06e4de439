package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"trainlog/internal/bootstrap"
	"trainlog/internal/platform/config"
	"trainlog/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "trainlog",
		Short:         "Daily workout tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default: $TRAINLOG_DATA or ~/.trainlog)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newOnboardCmd(&dataDir))
	root.AddCommand(newTodayCmd(&dataDir))
	root.AddCommand(newCheckCmd(&dataDir))
	root.AddCommand(newUncheckCmd(&dataDir))
	root.AddCommand(newPlanCmd(&dataDir))
	root.AddCommand(newStatsCmd(&dataDir))
	root.AddCommand(newHeatmapCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newImportCmd(&dataDir))
	root.AddCommand(newResetCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(cfg.LogPath, cfg.LogLevel))
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the trainlog terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx := context.Background()
			if !app.SettingsCLI.OnboardingComplete(ctx) {
				if err := bootstrap.RunOnboarding(ctx, app); err != nil {
					return err
				}
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newOnboardCmd(dataDir *string) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Answer the questionnaire and generate a training plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx := context.Background()
			if app.SettingsCLI.OnboardingComplete(ctx) && !force {
				return fmt.Errorf("onboarding already completed; pass --force to redo it")
			}
			return bootstrap.RunOnboarding(ctx, app)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "redo onboarding and replace the current plan")
	return cmd
}

func newTodayCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's checklist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ActivityCLI.Today(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", out.Record.Date, out.PlanName)
			for _, ex := range out.Record.Exercises {
				mark := " "
				if ex.Done {
					mark = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-12s %-28s %s\n", mark, ex.ID, ex.Name, ex.Duration)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d/%d done\n", out.Record.CompletedCount, out.Record.TotalCount)
			return nil
		},
	}
}

func newCheckCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <exercise-id>",
		Short: "Toggle an exercise on today's checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx := context.Background()
			// Make sure today's record exists before toggling.
			if _, err := app.ActivityCLI.Today(ctx); err != nil {
				return err
			}
			out, err := app.ActivityCLI.Toggle(ctx, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d/%d done\n", out.Record.CompletedCount, out.Record.TotalCount)
			if out.JustCompleted {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "🎉 all exercises complete, great work!")
			}
			return nil
		},
	}
}

func newUncheckCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "uncheck <exercise-id>",
		Short: "Clear an exercise on today's checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx := context.Background()
			today, err := app.ActivityCLI.Today(ctx)
			if err != nil {
				return err
			}
			for _, ex := range today.Record.Exercises {
				if ex.ID == args[0] && !ex.Done {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is already unchecked\n", args[0])
					return nil
				}
			}
			out, err := app.ActivityCLI.Toggle(ctx, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d/%d done\n", out.Record.CompletedCount, out.Record.TotalCount)
			return nil
		},
	}
}

func newPlanCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the active training plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			plan, err := app.PlanCLI.Active(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n\n", plan.Name, plan.Description)
			for _, ex := range plan.Exercises {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-28s %-22s %s\n", ex.ID, ex.Name, ex.Duration, ex.Category)
			}
			return nil
		},
	}
}

func newStatsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show training statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			s := app.StatsCLI.Summary(context.Background())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total days:      %d\n", s.TotalDays)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "current streak:  %d\n", s.CurrentStreak)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "longest streak:  %d\n", s.LongestStreak)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "last 30 days:    %d%%\n", s.CompletionRate)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "this month:      %d\n", s.ThisMonthDays)
			return nil
		},
	}
}

func newHeatmapCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "heatmap",
		Short: "Print the trailing-year completion heatmap",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			grid := app.StatsCLI.Heatmap(context.Background())
			for day := 0; day < 7; day++ {
				var sb strings.Builder
				for _, week := range grid {
					cell := week[day]
					switch {
					case cell.IsFuture:
						sb.WriteString(" ")
					case cell.Completed:
						sb.WriteString("■")
					default:
						sb.WriteString("·")
					}
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), sb.String())
			}
			return nil
		},
	}
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	now := time.Now()
	var month, year int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed days of a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if month < 1 || month > 12 {
				return fmt.Errorf("--month must be 1..12, got %d", month)
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			digest := app.StatsCLI.MonthlyDigest(context.Background(), year, time.Month(month))
			if len(digest) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no completed days in %s %d\n", time.Month(month), year)
				return nil
			}
			for _, entry := range digest {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %d/%d exercises\n", entry.Date, entry.Completed, entry.Total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "month (1..12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "year")
	return cmd
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Inspect and change settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx := context.Background()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dark mode:  %t\n", app.SettingsCLI.DarkMode(ctx))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "onboarded:  %t\n", app.SettingsCLI.OnboardingComplete(ctx))
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "dark <on|off>",
		Short: "Set the dark-mode preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("argument must be on or off, got %q", args[0])
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if !app.SettingsCLI.SetDarkMode(context.Background(), enabled) {
				return fmt.Errorf("dark-mode preference not saved")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dark mode: %t\n", enabled)
			return nil
		},
	})

	return settings
}

func newExportCmd(dataDir *string) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup file with all settings and activity history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx := context.Background()
			var path string
			if out != "" {
				path, err = app.Backup.ExportTo(ctx, out)
			} else {
				path, err = app.Backup.ExportToFile(ctx)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the backup to this path instead of the export directory")
	return cmd
}

func newImportCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore settings and activity history from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.Backup.ImportFromFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d settings and %d activity records (exported %s)\n",
				out.SettingsCount, out.ActivityCount, out.ExportDate)
			return nil
		},
	}
}

func newResetCmd(dataDir *string) *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all settings and activity history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirm {
				return fmt.Errorf("refusing to wipe data without --confirm")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.Backup.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data wiped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirm, "confirm", false, "confirm the wipe")
	return cmd
}
