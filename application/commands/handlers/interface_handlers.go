package handlers

import (
	"context"

	"sysmap-backend/application/commands"
	"sysmap-backend/application/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInterfaceHandler handles interface creation
type CreateInterfaceHandler struct {
	store  ports.MutationStore
	logger *zap.Logger
}

// NewCreateInterfaceHandler creates a new handler
func NewCreateInterfaceHandler(store ports.MutationStore, logger *zap.Logger) *CreateInterfaceHandler {
	return &CreateInterfaceHandler{store: store, logger: logger}
}

// Handle executes the creation RPC
func (h *CreateInterfaceHandler) Handle(ctx context.Context, cmd *commands.CreateInterfaceCommand) error {
	system1ID, err := uuid.Parse(cmd.System1ID)
	if err != nil {
		return err
	}
	system2ID, err := uuid.Parse(cmd.System2ID)
	if err != nil {
		return err
	}

	id, err := h.store.CreateInterface(ctx, system1ID, system2ID, cmd.Connection, cmd.Directional)
	if err != nil {
		h.logger.Error("create interface failed",
			zap.String("system1ID", cmd.System1ID),
			zap.String("system2ID", cmd.System2ID),
			zap.Error(err),
		)
		return err
	}

	cmd.CreatedID = id
	h.logger.Info("interface created", zap.String("interfaceID", id.String()))
	return nil
}

// UpdateInterfaceHandler handles interface updates
type UpdateInterfaceHandler struct {
	store  ports.MutationStore
	logger *zap.Logger
}

// NewUpdateInterfaceHandler creates a new handler
func NewUpdateInterfaceHandler(store ports.MutationStore, logger *zap.Logger) *UpdateInterfaceHandler {
	return &UpdateInterfaceHandler{store: store, logger: logger}
}

// Handle executes the update RPC
func (h *UpdateInterfaceHandler) Handle(ctx context.Context, cmd *commands.UpdateInterfaceCommand) error {
	id, err := uuid.Parse(cmd.InterfaceID)
	if err != nil {
		return err
	}
	system1ID, err := uuid.Parse(cmd.System1ID)
	if err != nil {
		return err
	}
	system2ID, err := uuid.Parse(cmd.System2ID)
	if err != nil {
		return err
	}

	updated, err := h.store.UpdateInterface(ctx, id, system1ID, system2ID, cmd.Connection, cmd.Directional)
	if err != nil {
		h.logger.Error("update interface failed",
			zap.String("interfaceID", cmd.InterfaceID),
			zap.Error(err),
		)
		return err
	}

	cmd.Updated = updated
	return nil
}

// DeleteInterfaceHandler handles interface deletion
type DeleteInterfaceHandler struct {
	store  ports.MutationStore
	logger *zap.Logger
}

// NewDeleteInterfaceHandler creates a new handler
func NewDeleteInterfaceHandler(store ports.MutationStore, logger *zap.Logger) *DeleteInterfaceHandler {
	return &DeleteInterfaceHandler{store: store, logger: logger}
}

// Handle executes the delete RPC
func (h *DeleteInterfaceHandler) Handle(ctx context.Context, cmd *commands.DeleteInterfaceCommand) error {
	id, err := uuid.Parse(cmd.InterfaceID)
	if err != nil {
		return err
	}

	if err := h.store.DeleteInterface(ctx, id); err != nil {
		h.logger.Error("delete interface failed",
			zap.String("interfaceID", cmd.InterfaceID),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("interface deleted", zap.String("interfaceID", cmd.InterfaceID))
	return nil
}
