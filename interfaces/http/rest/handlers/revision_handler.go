package handlers

import (
	"net/http"

	"sysmap-backend/application/commands"
	"sysmap-backend/application/commands/bus"
	"sysmap-backend/application/queries"
	querybus "sysmap-backend/application/queries/bus"
	"sysmap-backend/pkg/common"
	pkgerrors "sysmap-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RevisionHandler handles audit history HTTP requests
type RevisionHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	errors     *pkgerrors.ErrorHandler
	logger     *zap.Logger
}

// NewRevisionHandler creates a new revision handler
func NewRevisionHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *RevisionHandler {
	return &RevisionHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errors:     errorHandler,
		logger:     logger,
	}
}

// ListRevisions handles GET /revisions/{entityType}/{entityID}
func (h *RevisionHandler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	query := queries.ListRevisionsQuery{
		EntityType: chi.URLParam(r, "entityType"),
		EntityID:   chi.URLParam(r, "entityID"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// RestoreRevision handles POST /revisions/{revisionID}/restore
func (h *RevisionHandler) RestoreRevision(w http.ResponseWriter, r *http.Request) {
	cmd := &commands.RestoreRevisionCommand{RevisionID: chi.URLParam(r, "revisionID")}
	cmd.RequestedBy, _ = common.GetUserID(r.Context())
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, cmd.Restored)
}
