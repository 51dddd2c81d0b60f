package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EntityType names the kind of entity a revision belongs to.
type EntityType string

const (
	EntityTypeSystem    EntityType = "system"
	EntityTypeInterface EntityType = "interface"
)

// IsValid reports whether the entity type is one the audit log records.
func (t EntityType) IsValid() bool {
	return t == EntityTypeSystem || t == EntityTypeInterface
}

// Operation names the mutation a revision recorded.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Revision is one append-only audit row written by the store's mutation
// procedures. PreviousData and NewData are full row snapshots at the time
// of the mutation, not deltas.
type Revision struct {
	ID           uuid.UUID       `json:"id"`
	EntityType   EntityType      `json:"entity_type"`
	EntityID     uuid.UUID       `json:"entity_id"`
	Operation    Operation       `json:"operation"`
	PreviousData json.RawMessage `json:"previous_data"`
	NewData      json.RawMessage `json:"new_data"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DiffKind classifies how a rendered diff should be presented.
type DiffKind string

const (
	DiffKindAddition DiffKind = "addition"
	DiffKindRemoval  DiffKind = "removal"
	DiffKindChange   DiffKind = "change"
	// DiffKindNone marks operations the renderer does not recognize.
	DiffKindNone DiffKind = "none"
)

// FieldChange is one changed key in an update diff.
type FieldChange struct {
	Key      string      `json:"key"`
	OldValue interface{} `json:"old_value"`
	NewValue interface{} `json:"new_value"`
}

// RenderedDiff is the presentation-ready form of a revision's snapshots.
// Exactly one of Added, Removed or Changes is populated depending on Kind.
type RenderedDiff struct {
	Kind    DiffKind               `json:"kind"`
	Added   map[string]interface{} `json:"added,omitempty"`
	Removed map[string]interface{} `json:"removed,omitempty"`
	Changes []FieldChange          `json:"changes,omitempty"`
}

// IsEmpty reports whether the diff rendered nothing.
func (d RenderedDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changes) == 0
}
