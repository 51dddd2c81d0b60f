package supabase

import (
	"context"
	"time"

	"sysmap-backend/domain"

	"github.com/google/uuid"
)

// GetSystem fetches one system row.
func (s *Store) GetSystem(ctx context.Context, id uuid.UUID) (*domain.System, error) {
	start := time.Now()
	var row domain.System
	_, err := s.client.From(tableSystems).
		Select("*", "", false).
		Eq("id", id.String()).
		Single().
		ExecuteToWithContext(ctx, &row)
	s.observe("systems.get", start, err)
	if err != nil {
		return nil, readError("systems.get", "system", err)
	}
	return &row, nil
}

// ListSystemsByParent fetches the systems under one parent, name-ordered. A nil
// parentID selects the roots.
func (s *Store) ListSystemsByParent(ctx context.Context, parentID *uuid.UUID) ([]domain.System, error) {
	start := time.Now()
	query := s.client.From(tableSystems).Select("*", "", false)
	if parentID == nil {
		query = query.Is("parent_id", "null")
	} else {
		query = query.Eq("parent_id", parentID.String())
	}

	var rows []domain.System
	_, err := query.Order("name", nil).ExecuteToWithContext(ctx, &rows)
	s.observe("systems.list", start, err)
	if err != nil {
		return nil, readError("systems.list", "systems", err)
	}
	return rows, nil
}
