package handlers

import (
	"context"

	"sysmap-backend/application/commands"
	"sysmap-backend/application/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSystemHandler handles system creation
type CreateSystemHandler struct {
	store  ports.MutationStore
	logger *zap.Logger
}

// NewCreateSystemHandler creates a new handler
func NewCreateSystemHandler(store ports.MutationStore, logger *zap.Logger) *CreateSystemHandler {
	return &CreateSystemHandler{store: store, logger: logger}
}

// Handle executes the creation RPC. The store writes the row and its audit
// revision in one call; on failure nothing local changes.
func (h *CreateSystemHandler) Handle(ctx context.Context, cmd *commands.CreateSystemCommand) error {
	var parentID *uuid.UUID
	if cmd.ParentID != nil {
		id, err := uuid.Parse(*cmd.ParentID)
		if err != nil {
			return err
		}
		parentID = &id
	}

	id, err := h.store.CreateSystem(ctx, cmd.Name, cmd.Category, parentID)
	if err != nil {
		h.logger.Error("create system failed",
			zap.String("name", cmd.Name),
			zap.Error(err),
		)
		return err
	}

	cmd.CreatedID = id
	h.logger.Info("system created",
		zap.String("systemID", id.String()),
		zap.String("name", cmd.Name),
	)
	return nil
}

// UpdateSystemHandler handles system updates
type UpdateSystemHandler struct {
	store  ports.MutationStore
	logger *zap.Logger
}

// NewUpdateSystemHandler creates a new handler
func NewUpdateSystemHandler(store ports.MutationStore, logger *zap.Logger) *UpdateSystemHandler {
	return &UpdateSystemHandler{store: store, logger: logger}
}

// Handle executes the update RPC
func (h *UpdateSystemHandler) Handle(ctx context.Context, cmd *commands.UpdateSystemCommand) error {
	id, err := uuid.Parse(cmd.SystemID)
	if err != nil {
		return err
	}

	updated, err := h.store.UpdateSystem(ctx, id, cmd.Name, cmd.Category)
	if err != nil {
		h.logger.Error("update system failed",
			zap.String("systemID", cmd.SystemID),
			zap.Error(err),
		)
		return err
	}

	cmd.Updated = updated
	return nil
}

// DeleteSystemHandler handles system deletion
type DeleteSystemHandler struct {
	store  ports.MutationStore
	logger *zap.Logger
}

// NewDeleteSystemHandler creates a new handler
func NewDeleteSystemHandler(store ports.MutationStore, logger *zap.Logger) *DeleteSystemHandler {
	return &DeleteSystemHandler{store: store, logger: logger}
}

// Handle executes the delete RPC
func (h *DeleteSystemHandler) Handle(ctx context.Context, cmd *commands.DeleteSystemCommand) error {
	id, err := uuid.Parse(cmd.SystemID)
	if err != nil {
		return err
	}

	if err := h.store.DeleteSystem(ctx, id); err != nil {
		h.logger.Error("delete system failed",
			zap.String("systemID", cmd.SystemID),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("system deleted", zap.String("systemID", cmd.SystemID))
	return nil
}
