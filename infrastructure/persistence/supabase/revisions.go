package supabase

import (
	"context"
	"time"

	"sysmap-backend/domain"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

// ListRevisions fetches one entity's audit rows, newest first.
func (s *Store) ListRevisions(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Revision, error) {
	start := time.Now()
	var rows []domain.Revision
	_, err := s.client.From(tableRevisions).
		Select("*", "", false).
		Eq("entity_type", string(entityType)).
		Eq("entity_id", entityID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteToWithContext(ctx, &rows)
	s.observe("revisions.list", start, err)
	if err != nil {
		return nil, readError("revisions.list", "revisions", err)
	}
	return rows, nil
}
