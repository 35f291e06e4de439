package service

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	activityadapter "trainlog/internal/modules/activity/adapter/out"
	activitydomain "trainlog/internal/modules/activity/domain"
	activityservice "trainlog/internal/modules/activity/service"
	settingsadapter "trainlog/internal/modules/settings/adapter/out"
	settingsdomain "trainlog/internal/modules/settings/domain"
	settingsservice "trainlog/internal/modules/settings/service"
	apperrors "trainlog/internal/platform/errors"
	"trainlog/internal/platform/logging"
	"trainlog/internal/platform/tx"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fixture struct {
	backup   *BackupService
	settings *settingsservice.SettingsService
	activity *activityservice.ActivityService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := logging.Discard()
	clk := fakeClock{now: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)}

	kv, err := settingsadapter.NewBadgerStore(filepath.Join(t.TempDir(), "settings"))
	if err != nil {
		t.Fatalf("open settings store: %v", err)
	}
	settings := settingsservice.NewSettingsService(kv, logger, nil)

	records, err := activityadapter.NewSQLiteRecordStore(filepath.Join(t.TempDir(), "activities.db"))
	if err != nil {
		t.Fatalf("open record store: %v", err)
	}
	activity := activityservice.NewActivityService(clk, records, logger)

	return fixture{
		backup:   NewBackupService(clk, settings, activity, tx.NoopManager{}, logger),
		settings: settings,
		activity: activity,
	}
}

func seed(t *testing.T, f fixture) {
	t.Helper()
	ctx := context.Background()
	if !f.settings.SetDarkMode(ctx, true) {
		t.Fatal("seed dark mode")
	}
	if !f.settings.Set(ctx, settingsdomain.KeyUserProfile, []byte(`{"q1":"light","q2":"health"}`)) {
		t.Fatal("seed profile")
	}
	record := activitydomain.NewForDate("2026-08-30", []activitydomain.Exercise{
		{ID: "warmup", Name: "Warm-up"},
	})
	record.Toggle("warmup", time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))
	if !f.activity.Put(ctx, record) {
		t.Fatal("seed activity record")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	source := newFixture(t)
	seed(t, source)

	_, data, err := source.backup.Export(ctx)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	// The document shape is the stable contract.
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	for _, field := range []string{"version", "exportDate", "localStorage", "activities"} {
		if _, ok := doc[field]; !ok {
			t.Errorf("export missing field %q", field)
		}
	}

	target := newFixture(t)
	snapshot, err := target.backup.Import(ctx, data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if snapshot.Version != "1.0" {
		t.Errorf("imported version = %q", snapshot.Version)
	}

	if !target.settings.DarkMode(ctx) {
		t.Error("dark mode flag lost in round trip")
	}
	record, found := target.activity.Get(ctx, "2026-08-30")
	if !found {
		t.Fatal("activity record lost in round trip")
	}
	if !record.Done() || len(record.Exercises) != 1 {
		t.Errorf("imported record = %+v", record)
	}
}

func TestImportRejectsMalformedDocumentWithoutMutating(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	seed(t, f)

	malformed := [][]byte{
		[]byte(`not json at all`),
		[]byte(`{"version":"1.0","localStorage":{}}`),
		[]byte(`{"version":"1.0","activities":[]}`),
		[]byte(`{"localStorage":{},"activities":[]}`),
		[]byte(`{"version":"1.0","localStorage":{},"activities":[{"date":"bad-date"}]}`),
	}
	for _, data := range malformed {
		if _, err := f.backup.Import(ctx, data); !errors.Is(err, apperrors.ErrMalformedBackup) {
			t.Errorf("Import(%.40s) = %v, want ErrMalformedBackup", data, err)
		}
	}

	// Seeded state must survive every rejected import.
	if !f.settings.DarkMode(ctx) {
		t.Error("settings mutated by rejected import")
	}
	if _, found := f.activity.Get(ctx, "2026-08-30"); !found {
		t.Error("activities mutated by rejected import")
	}
}

func TestImportEmptyButWellFormedDocument(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	data := []byte(`{"version":"1.0","exportDate":"2026-08-31T10:00:00Z","localStorage":{},"activities":[]}`)
	snapshot, err := f.backup.Import(ctx, data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(snapshot.Activities) != 0 || len(snapshot.LocalStorage) != 0 {
		t.Errorf("snapshot = %+v", snapshot)
	}
}

func TestImportSkipsUnknownSettingsKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	data := []byte(`{"version":"1.0","exportDate":"x","localStorage":{"DARK_MODE":true,"MYSTERY_KEY":1},"activities":[]}`)
	if _, err := f.backup.Import(ctx, data); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if !f.settings.DarkMode(ctx) {
		t.Error("known key not imported")
	}
}

func TestResetWipesBothStores(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t)
	seed(t, f)

	if err := f.backup.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if f.settings.DarkMode(ctx) {
		t.Error("settings survived reset")
	}
	if _, found := f.activity.Get(ctx, "2026-08-30"); found {
		t.Error("activities survived reset")
	}
	if records := f.activity.All(ctx); len(records) != 0 {
		t.Errorf("All() after reset = %d records", len(records))
	}
}
