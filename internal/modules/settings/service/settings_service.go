package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"trainlog/internal/modules/settings/domain"
	settingsout "trainlog/internal/modules/settings/port/out"
)

// SettingsService applies the fail-closed contract over the raw store:
// reads degrade to absent, writes report a boolean, and every underlying
// failure is logged instead of propagated. Settings are non-critical; a
// failed write leaves prior state.
type SettingsService struct {
	store       settingsout.Store
	logger      *logrus.Logger
	ambientDark func() bool
}

// NewSettingsService builds the service. ambientDark supplies the host
// platform's theme preference, used only when DARK_MODE was never set.
func NewSettingsService(store settingsout.Store, logger *logrus.Logger, ambientDark func() bool) *SettingsService {
	if ambientDark == nil {
		ambientDark = func() bool { return false }
	}
	return &SettingsService{store: store, logger: logger, ambientDark: ambientDark}
}

func (s *SettingsService) Get(ctx context.Context, key domain.Key) ([]byte, bool) {
	value, found, err := s.store.Get(ctx, key.Storage)
	if err != nil {
		s.logger.WithError(err).WithField("key", key.Name).Warn("settings read failed")
		return nil, false
	}
	return value, found
}

func (s *SettingsService) Set(ctx context.Context, key domain.Key, value []byte) bool {
	if err := s.store.Set(ctx, key.Storage, value); err != nil {
		s.logger.WithError(err).WithField("key", key.Name).Warn("settings write failed")
		return false
	}
	return true
}

func (s *SettingsService) flag(ctx context.Context, key domain.Key) (value, present bool) {
	raw, found := s.Get(ctx, key)
	if !found {
		return false, false
	}
	return string(raw) == "true", true
}

func (s *SettingsService) setFlag(ctx context.Context, key domain.Key, enabled bool) bool {
	value := "false"
	if enabled {
		value = "true"
	}
	return s.Set(ctx, key, []byte(value))
}

func (s *SettingsService) OnboardingComplete(ctx context.Context) bool {
	value, _ := s.flag(ctx, domain.KeyOnboardingComplete)
	return value
}

func (s *SettingsService) SetOnboardingComplete(ctx context.Context, complete bool) bool {
	return s.setFlag(ctx, domain.KeyOnboardingComplete, complete)
}

// DarkMode falls back to the ambient platform preference when the flag was
// never explicitly set.
func (s *SettingsService) DarkMode(ctx context.Context) bool {
	value, present := s.flag(ctx, domain.KeyDarkMode)
	if !present {
		return s.ambientDark()
	}
	return value
}

func (s *SettingsService) SetDarkMode(ctx context.Context, enabled bool) bool {
	return s.setFlag(ctx, domain.KeyDarkMode, enabled)
}

// ExportAll returns the full key map keyed by backup-document names.
// Unlike the degrading readers above, the backup path needs real errors.
func (s *SettingsService) ExportAll(ctx context.Context) (map[string][]byte, error) {
	stored, err := s.store.ExportAll(ctx)
	if err != nil {
		return nil, err
	}
	out := map[string][]byte{}
	for _, key := range domain.All() {
		if value, ok := stored[key.Storage]; ok {
			out[key.Name] = value
		}
	}
	return out, nil
}

// ImportAll upserts the supplied backup-document map. Unknown key names are
// skipped; keys absent from the input are left untouched.
func (s *SettingsService) ImportAll(ctx context.Context, values map[string][]byte) error {
	mapped := map[string][]byte{}
	for name, value := range values {
		key, ok := domain.ByName(name)
		if !ok {
			s.logger.WithField("key", name).Debug("skipping unknown settings key on import")
			continue
		}
		mapped[key.Storage] = value
	}
	return s.store.ImportAll(ctx, mapped)
}

func (s *SettingsService) ClearAll(ctx context.Context) error {
	return s.store.ClearAll(ctx)
}
