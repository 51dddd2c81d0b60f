package handlers

import (
	"context"
	"fmt"

	"sysmap-backend/application/ports"
	"sysmap-backend/application/queries"
	"sysmap-backend/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetSystemHandler handles single-system lookups
type GetSystemHandler struct {
	systems ports.SystemReader
	logger  *zap.Logger
}

// NewGetSystemHandler creates a new system handler
func NewGetSystemHandler(systems ports.SystemReader, logger *zap.Logger) *GetSystemHandler {
	return &GetSystemHandler{
		systems: systems,
		logger:  logger,
	}
}

// Handle executes the system lookup
func (h *GetSystemHandler) Handle(ctx context.Context, query queries.GetSystemQuery) (*domain.System, error) {
	id, err := uuid.Parse(query.SystemID)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	return h.systems.GetSystem(ctx, id)
}

// ListSystemsHandler handles parent-scoped system listings
type ListSystemsHandler struct {
	systems ports.SystemReader
	logger  *zap.Logger
}

// NewListSystemsHandler creates a new list handler
func NewListSystemsHandler(systems ports.SystemReader, logger *zap.Logger) *ListSystemsHandler {
	return &ListSystemsHandler{
		systems: systems,
		logger:  logger,
	}
}

// Handle executes the listing
func (h *ListSystemsHandler) Handle(ctx context.Context, query queries.ListSystemsQuery) ([]domain.System, error) {
	var parentID *uuid.UUID
	if query.ParentID != "" {
		id, err := uuid.Parse(query.ParentID)
		if err != nil {
			return nil, fmt.Errorf("invalid query: %w", err)
		}
		parentID = &id
	}

	systems, err := h.systems.ListSystemsByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if systems == nil {
		systems = []domain.System{}
	}
	return systems, nil
}
