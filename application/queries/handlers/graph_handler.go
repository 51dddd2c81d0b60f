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

// GetGraphHandler handles visualization graph queries
type GetGraphHandler struct {
	resolver      *services.DescendantResolver
	classifier    *services.InterfaceClassifier
	builder       *services.GraphBuilder
	circleBuilder *services.GraphBuilder
	logger        *zap.Logger
}

// NewGetGraphHandler creates a new graph handler
func NewGetGraphHandler(
	resolver *services.DescendantResolver,
	classifier *services.InterfaceClassifier,
	builder *services.GraphBuilder,
	logger *zap.Logger,
) *GetGraphHandler {
	return &GetGraphHandler{
		resolver:   resolver,
		classifier: classifier,
		builder:    builder,
		// layout=circle bypasses the configured engine entirely
		circleBuilder: services.NewGraphBuilder(nil, logger),
		logger:        logger,
	}
}

// Handle executes the graph query
func (h *GetGraphHandler) Handle(ctx context.Context, query queries.GetGraphQuery) (*domain.Graph, error) {
	rootID, err := uuid.Parse(query.RootID)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	subtree, err := h.resolver.Resolve(ctx, rootID)
	if err != nil {
		return nil, err
	}

	classified := h.classifier.Classify(ctx, subtree)

	builder := h.builder
	if query.Layout == queries.LayoutCircle {
		builder = h.circleBuilder
	}
	graph := builder.Build(subtree, classified.All())

	h.logger.Debug("graph built",
		zap.String("rootID", query.RootID),
		zap.Int("nodes", len(graph.Nodes)),
		zap.Int("edges", len(graph.Edges)),
	)
	return graph, nil
}
