package commands

import (
	"errors"

	"sysmap-backend/domain"

	"github.com/google/uuid"
)

// CreateSystemCommand creates a system through the audited store
// procedure. CreatedID is populated by the handler on success.
type CreateSystemCommand struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	ParentID *string `json:"parent_id,omitempty"`

	CreatedID uuid.UUID `json:"-"`
}

// Validate validates the command
func (c *CreateSystemCommand) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Category == "" {
		return errors.New("category is required")
	}
	if c.ParentID != nil {
		if _, err := uuid.Parse(*c.ParentID); err != nil {
			return errors.New("parentID must be a valid UUID")
		}
	}
	return nil
}

// UpdateSystemCommand updates a system's editable attributes. Updated is
// populated by the handler with the row the store returned.
type UpdateSystemCommand struct {
	SystemID string `json:"system_id"`
	Name     string `json:"name"`
	Category string `json:"category"`

	Updated *domain.System `json:"-"`
}

// Validate validates the command
func (c *UpdateSystemCommand) Validate() error {
	if _, err := uuid.Parse(c.SystemID); err != nil {
		return errors.New("systemID must be a valid UUID")
	}
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Category == "" {
		return errors.New("category is required")
	}
	return nil
}

// DeleteSystemCommand deletes a system through the audited store procedure.
type DeleteSystemCommand struct {
	SystemID string `json:"system_id"`
}

// Validate validates the command
func (c *DeleteSystemCommand) Validate() error {
	if _, err := uuid.Parse(c.SystemID); err != nil {
		return errors.New("systemID must be a valid UUID")
	}
	return nil
}
