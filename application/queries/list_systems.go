package queries

import (
	"errors"

	"github.com/google/uuid"
)

// ListSystemsQuery lists systems by parent. An empty ParentID selects the
// tree roots.
type ListSystemsQuery struct {
	ParentID string `json:"parent_id,omitempty"`
}

// Validate validates the query
func (q ListSystemsQuery) Validate() error {
	if q.ParentID == "" {
		return nil
	}
	if _, err := uuid.Parse(q.ParentID); err != nil {
		return errors.New("parentID must be a valid UUID")
	}
	return nil
}

// GetSystemQuery fetches a single system row.
type GetSystemQuery struct {
	SystemID string `json:"system_id"`
}

// Validate validates the query
func (q GetSystemQuery) Validate() error {
	if _, err := uuid.Parse(q.SystemID); err != nil {
		return errors.New("systemID must be a valid UUID")
	}
	return nil
}
