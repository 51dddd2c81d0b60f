package queries

import (
	"errors"

	"github.com/google/uuid"
)

// GetSystemInterfacesQuery requests the classified interface lists for a
// root system's resolved subtree.
type GetSystemInterfacesQuery struct {
	RootID string `json:"root_id"`
}

// Validate validates the query
func (q GetSystemInterfacesQuery) Validate() error {
	if _, err := uuid.Parse(q.RootID); err != nil {
		return errors.New("rootID must be a valid UUID")
	}
	return nil
}

// GetInterfaceQuery fetches a single interface row.
type GetInterfaceQuery struct {
	InterfaceID string `json:"interface_id"`
}

// Validate validates the query
func (q GetInterfaceQuery) Validate() error {
	if _, err := uuid.Parse(q.InterfaceID); err != nil {
		return errors.New("interfaceID must be a valid UUID")
	}
	return nil
}

// GetAvailableSystemsQuery requests the deduplicated selection list for
// interface create/edit forms.
type GetAvailableSystemsQuery struct {
	RootID string `json:"root_id"`
}

// Validate validates the query
func (q GetAvailableSystemsQuery) Validate() error {
	if _, err := uuid.Parse(q.RootID); err != nil {
		return errors.New("rootID must be a valid UUID")
	}
	return nil
}
