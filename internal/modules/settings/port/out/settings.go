package out

import "context"

// Store is flat key-value persistence for the small singleton settings
// values. Values are opaque JSON payloads; typing lives in the service
// layer.
type Store interface {
	Get(ctx context.Context, storageKey string) ([]byte, bool, error)
	Set(ctx context.Context, storageKey string, value []byte) error
	ClearAll(ctx context.Context) error
	ExportAll(ctx context.Context) (map[string][]byte, error)
	ImportAll(ctx context.Context, values map[string][]byte) error
}
