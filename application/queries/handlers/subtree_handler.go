package handlers

import (
	"context"
	"fmt"

	"sysmap-backend/application/queries"
	"sysmap-backend/application/services"
	"sysmap-backend/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetSubtreeHandler handles subtree resolution queries
type GetSubtreeHandler struct {
	loader *services.SubtreeLoader
	logger *zap.Logger
}

// NewGetSubtreeHandler creates a new subtree handler
func NewGetSubtreeHandler(loader *services.SubtreeLoader, logger *zap.Logger) *GetSubtreeHandler {
	return &GetSubtreeHandler{
		loader: loader,
		logger: logger,
	}
}

// Handle executes the subtree query
func (h *GetSubtreeHandler) Handle(ctx context.Context, query queries.GetSubtreeQuery) (*domain.Subtree, error) {
	rootID, err := uuid.Parse(query.RootID)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	subtree, err := h.loader.Load(ctx, rootID)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("subtree resolved",
		zap.String("rootID", query.RootID),
		zap.Int("children", len(subtree.Children)),
		zap.Int("grandchildren", len(subtree.Grandchildren)),
	)
	return subtree, nil
}
