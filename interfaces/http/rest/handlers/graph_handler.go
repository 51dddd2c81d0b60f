package handlers

import (
	"net/http"

	"sysmap-backend/application/queries"
	querybus "sysmap-backend/application/queries/bus"
	"sysmap-backend/pkg/common"
	pkgerrors "sysmap-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GraphHandler handles visualization graph HTTP requests
type GraphHandler struct {
	queryBus *querybus.QueryBus
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		queryBus: queryBus,
		errors:   errorHandler,
		logger:   logger,
	}
}

// GetGraph handles GET /systems/{systemID}/graph?layout=auto|circle
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	query := queries.GetGraphQuery{
		RootID: chi.URLParam(r, "systemID"),
		Layout: r.URL.Query().Get("layout"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
