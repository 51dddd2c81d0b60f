package supabase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sysmap-backend/domain"

	"github.com/google/uuid"
)

// GetInterface fetches one interface row.
func (s *Store) GetInterface(ctx context.Context, id uuid.UUID) (*domain.Interface, error) {
	start := time.Now()
	var row domain.Interface
	_, err := s.client.From(tableInterfaces).
		Select("*", "", false).
		Eq("id", id.String()).
		Single().
		ExecuteToWithContext(ctx, &row)
	s.observe("interfaces.get", start, err)
	if err != nil {
		return nil, readError("interfaces.get", "interface", err)
	}
	return &row, nil
}

// ListInterfacesTouching fetches every interface where either endpoint is a member
// of ids, using one PostgREST or-filter round trip.
func (s *Store) ListInterfacesTouching(ctx context.Context, ids []uuid.UUID) ([]domain.Interface, error) {
	if len(ids) == 0 {
		return []domain.Interface{}, nil
	}

	list := make([]string, len(ids))
	for i, id := range ids {
		list[i] = id.String()
	}
	members := strings.Join(list, ",")
	filter := fmt.Sprintf("system1_id.in.(%s),system2_id.in.(%s)", members, members)

	start := time.Now()
	var rows []domain.Interface
	_, err := s.client.From(tableInterfaces).
		Select("*", "", false).
		Or(filter, "").
		ExecuteToWithContext(ctx, &rows)
	s.observe("interfaces.list", start, err)
	if err != nil {
		return nil, readError("interfaces.list", "interfaces", err)
	}
	return rows, nil
}
