package ports

import (
	"context"
	"encoding/json"

	"sysmap-backend/domain"

	"github.com/google/uuid"
)

// SystemReader reads system rows from the entity store.
// This is a port in hexagonal architecture - the core doesn't know about the implementation.
type SystemReader interface {
	// GetSystem fetches a single system row, or a not-found error.
	GetSystem(ctx context.Context, id uuid.UUID) (*domain.System, error)

	// ListSystemsByParent fetches systems with the given parent. A nil
	// parentID selects the roots.
	ListSystemsByParent(ctx context.Context, parentID *uuid.UUID) ([]domain.System, error)
}

// InterfaceReader reads interface rows from the entity store.
type InterfaceReader interface {
	// GetInterface fetches a single interface row, or a not-found error.
	GetInterface(ctx context.Context, id uuid.UUID) (*domain.Interface, error)

	// ListInterfacesTouching fetches every interface where either endpoint
	// is a member of ids.
	ListInterfacesTouching(ctx context.Context, ids []uuid.UUID) ([]domain.Interface, error)
}

// RevisionReader reads audit rows from the entity store.
type RevisionReader interface {
	// ListRevisions fetches the revisions of one entity, newest first.
	ListRevisions(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Revision, error)
}

// MutationStore is the stored-procedure RPC surface. Every call atomically
// mutates the row and appends the audit revision on the store side; the
// core treats each call as all-or-nothing and never compensates locally.
type MutationStore interface {
	CreateSystem(ctx context.Context, name, category string, parentID *uuid.UUID) (uuid.UUID, error)
	UpdateSystem(ctx context.Context, id uuid.UUID, name, category string) (*domain.System, error)
	DeleteSystem(ctx context.Context, id uuid.UUID) error

	CreateInterface(ctx context.Context, system1ID, system2ID uuid.UUID, connection string, directional int) (uuid.UUID, error)
	UpdateInterface(ctx context.Context, id, system1ID, system2ID uuid.UUID, connection string, directional int) (*domain.Interface, error)
	DeleteInterface(ctx context.Context, id uuid.UUID) error

	// RestoreRevision re-applies a historical snapshot and returns the
	// restored row as the store rendered it.
	RestoreRevision(ctx context.Context, revisionID uuid.UUID) (json.RawMessage, error)
}

// EntityStore aggregates the full store surface for wiring convenience.
type EntityStore interface {
	SystemReader
	InterfaceReader
	RevisionReader
	MutationStore
}

// LayoutEngine assigns positions to a structural graph. Implementations are
// treated as an oracle: the builder hands over nodes and edges and accepts
// whatever placement comes back.
type LayoutEngine interface {
	Layout(nodes []domain.GraphNode, edges []domain.GraphEdge) (map[string]domain.Position, error)
}
