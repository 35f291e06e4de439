package in

import (
	"context"

	"trainlog/internal/modules/backup/dto"
)

type Usecase interface {
	Export(ctx context.Context) (dto.ExportOutput, error)
	// Import validates the document in full before mutating anything;
	// malformed input returns apperrors.ErrMalformedBackup and leaves both
	// stores untouched.
	Import(ctx context.Context, data []byte) (dto.ImportOutput, error)
	// Reset irreversibly wipes settings and activity history.
	Reset(ctx context.Context) error
}
