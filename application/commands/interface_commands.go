package commands

import (
	"errors"

	"sysmap-backend/domain"

	"github.com/google/uuid"
)

// CreateInterfaceCommand creates an interface between two systems through
// the audited store procedure. CreatedID is populated by the handler.
type CreateInterfaceCommand struct {
	System1ID   string `json:"system1_id"`
	System2ID   string `json:"system2_id"`
	Connection  string `json:"connection"`
	Directional int    `json:"directional"`

	CreatedID uuid.UUID `json:"-"`
}

// Validate validates the command
func (c *CreateInterfaceCommand) Validate() error {
	if _, err := uuid.Parse(c.System1ID); err != nil {
		return errors.New("system1ID must be a valid UUID")
	}
	if _, err := uuid.Parse(c.System2ID); err != nil {
		return errors.New("system2ID must be a valid UUID")
	}
	if c.Connection == "" {
		return errors.New("connection is required")
	}
	if c.Directional != 0 && c.Directional != 1 {
		return errors.New("directional must be 0 or 1")
	}
	return nil
}

// UpdateInterfaceCommand rewrites an interface's endpoints and attributes.
// Updated is populated by the handler with the row the store returned.
type UpdateInterfaceCommand struct {
	InterfaceID string `json:"interface_id"`
	System1ID   string `json:"system1_id"`
	System2ID   string `json:"system2_id"`
	Connection  string `json:"connection"`
	Directional int    `json:"directional"`

	Updated *domain.Interface `json:"-"`
}

// Validate validates the command
func (c *UpdateInterfaceCommand) Validate() error {
	if _, err := uuid.Parse(c.InterfaceID); err != nil {
		return errors.New("interfaceID must be a valid UUID")
	}
	if _, err := uuid.Parse(c.System1ID); err != nil {
		return errors.New("system1ID must be a valid UUID")
	}
	if _, err := uuid.Parse(c.System2ID); err != nil {
		return errors.New("system2ID must be a valid UUID")
	}
	if c.Connection == "" {
		return errors.New("connection is required")
	}
	if c.Directional != 0 && c.Directional != 1 {
		return errors.New("directional must be 0 or 1")
	}
	return nil
}

// DeleteInterfaceCommand deletes an interface through the audited store
// procedure.
type DeleteInterfaceCommand struct {
	InterfaceID string `json:"interface_id"`
}

// Validate validates the command
func (c *DeleteInterfaceCommand) Validate() error {
	if _, err := uuid.Parse(c.InterfaceID); err != nil {
		return errors.New("interfaceID must be a valid UUID")
	}
	return nil
}
