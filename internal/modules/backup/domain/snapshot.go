package domain

import (
	"encoding/json"
	"fmt"

	activitydomain "trainlog/internal/modules/activity/domain"
	apperrors "trainlog/internal/platform/errors"
)

const Version = "1.0"

// Snapshot is the backup document. The JSON shape is stable across
// releases so old export files keep importing: settings values ride under
// localStorage keyed by their document names, activity records as a flat
// list.
type Snapshot struct {
	Version      string                     `json:"version"`
	ExportDate   string                     `json:"exportDate"`
	LocalStorage map[string]json.RawMessage `json:"localStorage"`
	Activities   []activitydomain.Record    `json:"activities"`
}

// Validate gates import: version, localStorage and activities must all be
// present before any store is touched. A nil map or slice means the field
// was absent from the document, not merely empty.
func (s Snapshot) Validate() error {
	if s.Version == "" {
		return fmt.Errorf("%w: missing version", apperrors.ErrMalformedBackup)
	}
	if s.LocalStorage == nil {
		return fmt.Errorf("%w: missing localStorage", apperrors.ErrMalformedBackup)
	}
	if s.Activities == nil {
		return fmt.Errorf("%w: missing activities", apperrors.ErrMalformedBackup)
	}
	for _, record := range s.Activities {
		if err := record.Validate(); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrMalformedBackup, err)
		}
	}
	return nil
}
