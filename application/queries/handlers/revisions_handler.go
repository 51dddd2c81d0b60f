package handlers

import (
	"context"
	"fmt"

	"sysmap-backend/application/ports"
	"sysmap-backend/application/queries"
	"sysmap-backend/application/services"
	"sysmap-backend/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListRevisionsHandler handles revision history queries, joining every row
// with its rendered diff.
type ListRevisionsHandler struct {
	revisions ports.RevisionReader
	renderer  *services.RevisionDiffRenderer
	logger    *zap.Logger
}

// NewListRevisionsHandler creates a new revisions handler
func NewListRevisionsHandler(
	revisions ports.RevisionReader,
	renderer *services.RevisionDiffRenderer,
	logger *zap.Logger,
) *ListRevisionsHandler {
	return &ListRevisionsHandler{
		revisions: revisions,
		renderer:  renderer,
		logger:    logger,
	}
}

// Handle executes the revision listing
func (h *ListRevisionsHandler) Handle(ctx context.Context, query queries.ListRevisionsQuery) ([]queries.RevisionView, error) {
	entityID, err := uuid.Parse(query.EntityID)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	rows, err := h.revisions.ListRevisions(ctx, domain.EntityType(query.EntityType), entityID)
	if err != nil {
		return nil, err
	}

	views := make([]queries.RevisionView, 0, len(rows))
	for _, rev := range rows {
		views = append(views, queries.RevisionView{
			Revision: rev,
			Diff:     h.renderer.Render(rev),
		})
	}
	return views, nil
}
