package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnknownSystemName is the placeholder label rendered for an interface
// endpoint whose system row could not be resolved.
const UnknownSystemName = "Unknown"

// Interface is a typed connection between two systems. Endpoint order only
// matters for directional semantics (System1 → System2). Nothing in the
// model prevents self-loops or duplicate edges; the store owns that.
type Interface struct {
	ID          uuid.UUID `json:"id"`
	System1ID   uuid.UUID `json:"system1_id"`
	System2ID   uuid.UUID `json:"system2_id"`
	Connection  string    `json:"connection"`
	Directional int       `json:"directional"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsDirectional reports whether the connection flows System1 → System2 only.
func (i Interface) IsDirectional() bool {
	return i.Directional != 0
}

// Touches reports whether either endpoint equals id.
func (i Interface) Touches(id uuid.UUID) bool {
	return i.System1ID == id || i.System2ID == id
}

// EnrichedInterface is an interface row joined with its endpoint system
// rows. A nil endpoint means the lookup missed or failed; it is rendered
// as UnknownSystemName, never dropped.
type EnrichedInterface struct {
	Interface
	System1 *System `json:"system1"`
	System2 *System `json:"system2"`
}

// System1Name returns the first endpoint's name, or the unknown placeholder.
func (e EnrichedInterface) System1Name() string {
	if e.System1 == nil {
		return UnknownSystemName
	}
	return e.System1.Name
}

// System2Name returns the second endpoint's name, or the unknown placeholder.
func (e EnrichedInterface) System2Name() string {
	if e.System2 == nil {
		return UnknownSystemName
	}
	return e.System2.Name
}

// InterfaceTier identifies which tier of the resolved hierarchy an
// interface touches.
type InterfaceTier string

const (
	TierDirect        InterfaceTier = "direct"
	TierChildren      InterfaceTier = "children"
	TierGrandchildren InterfaceTier = "grandchildren"
)

// ClassifiedInterfaces is the strict partition of every interface touching
// the resolved id set. Each interface appears in exactly one bucket.
type ClassifiedInterfaces struct {
	Direct        []EnrichedInterface `json:"direct"`
	Children      []EnrichedInterface `json:"children"`
	Grandchildren []EnrichedInterface `json:"grandchildren"`
}

// All returns every classified interface in bucket order.
func (c *ClassifiedInterfaces) All() []EnrichedInterface {
	all := make([]EnrichedInterface, 0, c.Len())
	all = append(all, c.Direct...)
	all = append(all, c.Children...)
	all = append(all, c.Grandchildren...)
	return all
}

// Len returns the total number of classified interfaces.
func (c *ClassifiedInterfaces) Len() int {
	return len(c.Direct) + len(c.Children) + len(c.Grandchildren)
}
