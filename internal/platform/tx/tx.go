package tx

import "context"

// Manager wraps transactional boundaries for multi-store operations.
// Backup import runs best-effort sequentially across the settings and
// activity stores; NoopManager marks that boundary so a stricter
// implementation can substitute a staging manager without touching the
// backup service.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
