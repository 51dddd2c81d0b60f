package handlers

import (
	"context"

	"sysmap-backend/application/commands"
	"sysmap-backend/application/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RestoreRevisionHandler handles revision restores
type RestoreRevisionHandler struct {
	store  ports.MutationStore
	logger *zap.Logger
}

// NewRestoreRevisionHandler creates a new handler
func NewRestoreRevisionHandler(store ports.MutationStore, logger *zap.Logger) *RestoreRevisionHandler {
	return &RestoreRevisionHandler{store: store, logger: logger}
}

// Handle executes the restore RPC. The store decides what a restore of the
// given revision means (re-create, re-delete, or rewind) and writes its own
// audit row for the restore itself.
func (h *RestoreRevisionHandler) Handle(ctx context.Context, cmd *commands.RestoreRevisionCommand) error {
	id, err := uuid.Parse(cmd.RevisionID)
	if err != nil {
		return err
	}

	restored, err := h.store.RestoreRevision(ctx, id)
	if err != nil {
		h.logger.Error("restore revision failed",
			zap.String("revisionID", cmd.RevisionID),
			zap.Error(err),
		)
		return err
	}

	cmd.Restored = restored
	h.logger.Info("revision restored",
		zap.String("revisionID", cmd.RevisionID),
		zap.String("userID", cmd.RequestedBy),
	)
	return nil
}
