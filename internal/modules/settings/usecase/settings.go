package usecase

import (
	"context"

	"trainlog/internal/modules/settings/domain"
	"trainlog/internal/modules/settings/service"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context, keyName string) ([]byte, bool) {
	key, ok := domain.ByName(keyName)
	if !ok {
		return nil, false
	}
	return i.svc.Get(ctx, key)
}

func (i *Interactor) Set(ctx context.Context, keyName string, value []byte) bool {
	key, ok := domain.ByName(keyName)
	if !ok {
		return false
	}
	return i.svc.Set(ctx, key, value)
}

func (i *Interactor) DarkMode(ctx context.Context) bool {
	return i.svc.DarkMode(ctx)
}

func (i *Interactor) SetDarkMode(ctx context.Context, enabled bool) bool {
	return i.svc.SetDarkMode(ctx, enabled)
}

func (i *Interactor) OnboardingComplete(ctx context.Context) bool {
	return i.svc.OnboardingComplete(ctx)
}

func (i *Interactor) SetOnboardingComplete(ctx context.Context, complete bool) bool {
	return i.svc.SetOnboardingComplete(ctx, complete)
}
