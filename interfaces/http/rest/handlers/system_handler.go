package handlers

import (
	"net/http"

	"sysmap-backend/application/commands"
	"sysmap-backend/application/commands/bus"
	"sysmap-backend/application/queries"
	querybus "sysmap-backend/application/queries/bus"
	"sysmap-backend/pkg/common"
	pkgerrors "sysmap-backend/pkg/errors"
	"sysmap-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	errors     *pkgerrors.ErrorHandler
	logger     *zap.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *SystemHandler {
	return &SystemHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errors:     errorHandler,
		logger:     logger,
	}
}

// CreateSystemRequest represents the request body for creating a system
type CreateSystemRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Category string  `json:"category" validate:"required,min=1,max=100"`
	ParentID *string `json:"parent_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateSystemRequest represents the request body for updating a system
type UpdateSystemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Category string `json:"category" validate:"required,min=1,max=100"`
}

// CreateSystemResponse represents the response for creating a system
type CreateSystemResponse struct {
	ID string `json:"id"`
}

// CreateSystem handles POST /systems
func (h *SystemHandler) CreateSystem(w http.ResponseWriter, r *http.Request) {
	var req CreateSystemRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	cmd := &commands.CreateSystemCommand{
		Name:     req.Name,
		Category: req.Category,
		ParentID: req.ParentID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, CreateSystemResponse{ID: cmd.CreatedID.String()})
}

// GetSystem handles GET /systems/{systemID}
func (h *SystemHandler) GetSystem(w http.ResponseWriter, r *http.Request) {
	query := queries.GetSystemQuery{SystemID: chi.URLParam(r, "systemID")}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// ListSystems handles GET /systems?parent={id}
func (h *SystemHandler) ListSystems(w http.ResponseWriter, r *http.Request) {
	query := queries.ListSystemsQuery{ParentID: r.URL.Query().Get("parent")}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateSystem handles PUT /systems/{systemID}
func (h *SystemHandler) UpdateSystem(w http.ResponseWriter, r *http.Request) {
	var req UpdateSystemRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	cmd := &commands.UpdateSystemCommand{
		SystemID: chi.URLParam(r, "systemID"),
		Name:     req.Name,
		Category: req.Category,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, cmd.Updated)
}

// DeleteSystem handles DELETE /systems/{systemID}
func (h *SystemHandler) DeleteSystem(w http.ResponseWriter, r *http.Request) {
	cmd := &commands.DeleteSystemCommand{SystemID: chi.URLParam(r, "systemID")}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSubtree handles GET /systems/{systemID}/subtree
func (h *SystemHandler) GetSubtree(w http.ResponseWriter, r *http.Request) {
	query := queries.GetSubtreeQuery{RootID: chi.URLParam(r, "systemID")}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetInterfaces handles GET /systems/{systemID}/interfaces
func (h *SystemHandler) GetInterfaces(w http.ResponseWriter, r *http.Request) {
	query := queries.GetSystemInterfacesQuery{RootID: chi.URLParam(r, "systemID")}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetAvailableSystems handles GET /systems/{systemID}/available-systems
func (h *SystemHandler) GetAvailableSystems(w http.ResponseWriter, r *http.Request) {
	query := queries.GetAvailableSystemsQuery{RootID: chi.URLParam(r, "systemID")}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
