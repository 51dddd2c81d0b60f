package queries

import (
	"errors"

	"github.com/google/uuid"
)

// Layout mode values accepted by GetGraphQuery.
const (
	LayoutAuto   = "auto"
	LayoutCircle = "circle"
)

// GetGraphQuery requests the layout-ready visualization graph for a root
// system's subtree.
type GetGraphQuery struct {
	RootID string `json:"root_id"`
	// Layout selects the placement strategy: "auto" delegates to the
	// configured layout engine, "circle" forces the fallback rings.
	Layout string `json:"layout,omitempty"`
}

// Validate validates the query
func (q GetGraphQuery) Validate() error {
	if _, err := uuid.Parse(q.RootID); err != nil {
		return errors.New("rootID must be a valid UUID")
	}
	if q.Layout != "" && q.Layout != LayoutAuto && q.Layout != LayoutCircle {
		return errors.New("layout must be auto or circle")
	}
	return nil
}
