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

// GetSystemInterfacesHandler handles classified interface list queries
type GetSystemInterfacesHandler struct {
	resolver   *services.DescendantResolver
	classifier *services.InterfaceClassifier
	logger     *zap.Logger
}

// NewGetSystemInterfacesHandler creates a new interfaces handler
func NewGetSystemInterfacesHandler(
	resolver *services.DescendantResolver,
	classifier *services.InterfaceClassifier,
	logger *zap.Logger,
) *GetSystemInterfacesHandler {
	return &GetSystemInterfacesHandler{
		resolver:   resolver,
		classifier: classifier,
		logger:     logger,
	}
}

// Handle executes the classification query
func (h *GetSystemInterfacesHandler) Handle(ctx context.Context, query queries.GetSystemInterfacesQuery) (*domain.ClassifiedInterfaces, error) {
	rootID, err := uuid.Parse(query.RootID)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	subtree, err := h.resolver.Resolve(ctx, rootID)
	if err != nil {
		return nil, err
	}

	classified := h.classifier.Classify(ctx, subtree)
	h.logger.Debug("interfaces classified",
		zap.String("rootID", query.RootID),
		zap.Int("direct", len(classified.Direct)),
		zap.Int("children", len(classified.Children)),
		zap.Int("grandchildren", len(classified.Grandchildren)),
	)
	return classified, nil
}

// GetInterfaceHandler handles single interface lookups
type GetInterfaceHandler struct {
	interfaces ports.InterfaceReader
	logger     *zap.Logger
}

// NewGetInterfaceHandler creates a new interface lookup handler
func NewGetInterfaceHandler(interfaces ports.InterfaceReader, logger *zap.Logger) *GetInterfaceHandler {
	return &GetInterfaceHandler{interfaces: interfaces, logger: logger}
}

// Handle executes the interface lookup
func (h *GetInterfaceHandler) Handle(ctx context.Context, query queries.GetInterfaceQuery) (*domain.Interface, error) {
	id, err := uuid.Parse(query.InterfaceID)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	return h.interfaces.GetInterface(ctx, id)
}

// GetAvailableSystemsHandler handles selection-list queries
type GetAvailableSystemsHandler struct {
	resolver   *services.DescendantResolver
	classifier *services.InterfaceClassifier
	logger     *zap.Logger
}

// NewGetAvailableSystemsHandler creates a new available-systems handler
func NewGetAvailableSystemsHandler(
	resolver *services.DescendantResolver,
	classifier *services.InterfaceClassifier,
	logger *zap.Logger,
) *GetAvailableSystemsHandler {
	return &GetAvailableSystemsHandler{
		resolver:   resolver,
		classifier: classifier,
		logger:     logger,
	}
}

// Handle executes the available-systems query
func (h *GetAvailableSystemsHandler) Handle(ctx context.Context, query queries.GetAvailableSystemsQuery) ([]domain.System, error) {
	rootID, err := uuid.Parse(query.RootID)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	subtree, err := h.resolver.Resolve(ctx, rootID)
	if err != nil {
		return nil, err
	}

	classified := h.classifier.Classify(ctx, subtree)
	return h.classifier.AvailableSystems(subtree, classified), nil
}
