package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	activitydomain "trainlog/internal/modules/activity/domain"
	"trainlog/internal/modules/backup/domain"
	backupout "trainlog/internal/modules/backup/port/out"
	"trainlog/internal/platform/clock"
	apperrors "trainlog/internal/platform/errors"
	"trainlog/internal/platform/tx"
)

// BackupService coordinates export, import and reset across the settings
// and activity stores. Unlike the day-to-day read paths these operations
// surface real errors; a backup that silently half-worked is worse than
// one that failed loudly.
type BackupService struct {
	clock    clock.Clock
	settings backupout.SettingsPort
	activity backupout.ActivityPort
	txm      tx.Manager
	logger   *logrus.Logger
}

func NewBackupService(clk clock.Clock, settings backupout.SettingsPort, activity backupout.ActivityPort, txm tx.Manager, logger *logrus.Logger) *BackupService {
	return &BackupService{clock: clk, settings: settings, activity: activity, txm: txm, logger: logger}
}

// Export serializes both stores into one indented JSON document.
func (s *BackupService) Export(ctx context.Context) (domain.Snapshot, []byte, error) {
	settings, err := s.settings.ExportAll(ctx)
	if err != nil {
		return domain.Snapshot{}, nil, fmt.Errorf("export settings: %w", err)
	}
	records, err := s.activity.ExportAll(ctx)
	if err != nil {
		return domain.Snapshot{}, nil, fmt.Errorf("export activities: %w", err)
	}
	if records == nil {
		records = []activitydomain.Record{}
	}

	local := make(map[string]json.RawMessage, len(settings))
	for name, value := range settings {
		local[name] = json.RawMessage(value)
	}
	snapshot := domain.Snapshot{
		Version:      domain.Version,
		ExportDate:   s.clock.Now().Format(time.RFC3339),
		LocalStorage: local,
		Activities:   records,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return domain.Snapshot{}, nil, fmt.Errorf("encode backup: %w", err)
	}
	return snapshot, data, nil
}

// Import replaces store contents from a backup document. The document is
// fully validated before either store is touched; after that the two
// imports run sequentially inside the transaction boundary, so a failure
// partway leaves earlier writes committed.
func (s *BackupService) Import(ctx context.Context, data []byte) (domain.Snapshot, error) {
	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedBackup, err)
	}
	if err := snapshot.Validate(); err != nil {
		return domain.Snapshot{}, err
	}

	settings := make(map[string][]byte, len(snapshot.LocalStorage))
	for name, value := range snapshot.LocalStorage {
		settings[name] = []byte(value)
	}

	err := s.txm.Within(ctx, func(ctx context.Context) error {
		if err := s.settings.ImportAll(ctx, settings); err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
		if err := s.activity.ImportAll(ctx, snapshot.Activities); err != nil {
			return fmt.Errorf("import activities: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Snapshot{}, err
	}
	s.logger.WithFields(logrus.Fields{
		"settings":   len(settings),
		"activities": len(snapshot.Activities),
	}).Info("backup imported")
	return snapshot, nil
}

// Reset wipes both stores. Settings go first: losing activity history with
// settings intact is more confusing than the reverse.
func (s *BackupService) Reset(ctx context.Context) error {
	if err := s.settings.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	if err := s.activity.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear activities: %w", err)
	}
	s.logger.Info("all data reset")
	return nil
}
