package in

import "context"

// Usecase exposes the settings store to other modules and the UI. Reads
// never fail: absent and unreadable both surface as the zero/default value.
type Usecase interface {
	Get(ctx context.Context, keyName string) ([]byte, bool)
	Set(ctx context.Context, keyName string, value []byte) bool
	DarkMode(ctx context.Context) bool
	SetDarkMode(ctx context.Context, enabled bool) bool
	OnboardingComplete(ctx context.Context) bool
	SetOnboardingComplete(ctx context.Context, complete bool) bool
}
