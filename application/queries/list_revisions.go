package queries

import (
	"errors"

	"sysmap-backend/domain"

	"github.com/google/uuid"
)

// ListRevisionsQuery lists the audit history of one entity, newest first.
type ListRevisionsQuery struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
}

// Validate validates the query
func (q ListRevisionsQuery) Validate() error {
	if !domain.EntityType(q.EntityType).IsValid() {
		return errors.New("entityType must be system or interface")
	}
	if _, err := uuid.Parse(q.EntityID); err != nil {
		return errors.New("entityID must be a valid UUID")
	}
	return nil
}

// RevisionView is one revision row joined with its rendered diff.
type RevisionView struct {
	domain.Revision
	Diff domain.RenderedDiff `json:"diff"`
}
