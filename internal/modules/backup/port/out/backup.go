package out

import (
	"context"

	activitydomain "trainlog/internal/modules/activity/domain"
)

// SettingsPort is the slice of the settings module the backup coordinator
// needs. Values are keyed by backup-document names.
type SettingsPort interface {
	ExportAll(ctx context.Context) (map[string][]byte, error)
	ImportAll(ctx context.Context, values map[string][]byte) error
	ClearAll(ctx context.Context) error
}

// ActivityPort is the matching slice of the activity module.
type ActivityPort interface {
	ExportAll(ctx context.Context) ([]activitydomain.Record, error)
	ImportAll(ctx context.Context, records []activitydomain.Record) error
	ClearAll(ctx context.Context) error
}
