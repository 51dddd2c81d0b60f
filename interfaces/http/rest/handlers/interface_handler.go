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

// InterfaceHandler handles interface-related HTTP requests
type InterfaceHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	errors     *pkgerrors.ErrorHandler
	logger     *zap.Logger
}

// NewInterfaceHandler creates a new interface handler
func NewInterfaceHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *InterfaceHandler {
	return &InterfaceHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errors:     errorHandler,
		logger:     logger,
	}
}

// InterfaceRequest represents the request body for creating or updating
// an interface
type InterfaceRequest struct {
	System1ID   string `json:"system1_id" validate:"required,uuid"`
	System2ID   string `json:"system2_id" validate:"required,uuid"`
	Connection  string `json:"connection" validate:"required,min=1,max=200"`
	Directional int    `json:"directional" validate:"oneof=0 1"`
}

// CreateInterfaceResponse represents the response for creating an interface
type CreateInterfaceResponse struct {
	ID string `json:"id"`
}

// CreateInterface handles POST /interfaces
func (h *InterfaceHandler) CreateInterface(w http.ResponseWriter, r *http.Request) {
	var req InterfaceRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	cmd := &commands.CreateInterfaceCommand{
		System1ID:   req.System1ID,
		System2ID:   req.System2ID,
		Connection:  req.Connection,
		Directional: req.Directional,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, CreateInterfaceResponse{ID: cmd.CreatedID.String()})
}

// GetInterface handles GET /interfaces/{interfaceID}
func (h *InterfaceHandler) GetInterface(w http.ResponseWriter, r *http.Request) {
	query := queries.GetInterfaceQuery{InterfaceID: chi.URLParam(r, "interfaceID")}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateInterface handles PUT /interfaces/{interfaceID}
func (h *InterfaceHandler) UpdateInterface(w http.ResponseWriter, r *http.Request) {
	var req InterfaceRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	cmd := &commands.UpdateInterfaceCommand{
		InterfaceID: chi.URLParam(r, "interfaceID"),
		System1ID:   req.System1ID,
		System2ID:   req.System2ID,
		Connection:  req.Connection,
		Directional: req.Directional,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, cmd.Updated)
}

// DeleteInterface handles DELETE /interfaces/{interfaceID}
func (h *InterfaceHandler) DeleteInterface(w http.ResponseWriter, r *http.Request) {
	cmd := &commands.DeleteInterfaceCommand{InterfaceID: chi.URLParam(r, "interfaceID")}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
