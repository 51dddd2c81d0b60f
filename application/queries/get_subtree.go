package queries

import (
	"errors"

	"github.com/google/uuid"
)

// GetSubtreeQuery requests the two-tier descendant set of a root system.
type GetSubtreeQuery struct {
	RootID string `json:"root_id"`
}

// Validate validates the query
func (q GetSubtreeQuery) Validate() error {
	if _, err := uuid.Parse(q.RootID); err != nil {
		return errors.New("rootID must be a valid UUID")
	}
	return nil
}
