package commands

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// RestoreRevisionCommand re-applies a historical snapshot. The store owns
// the restore semantics; Restored carries back whatever row it rendered.
type RestoreRevisionCommand struct {
	RevisionID string `json:"revision_id"`
	// RequestedBy is the authenticated user id, when known. Logged only.
	RequestedBy string `json:"-"`

	Restored json.RawMessage `json:"-"`
}

// Validate validates the command
func (c *RestoreRevisionCommand) Validate() error {
	if _, err := uuid.Parse(c.RevisionID); err != nil {
		return errors.New("revisionID must be a valid UUID")
	}
	return nil
}
