package services

import (
	"context"
	"sync"

	"sysmap-backend/application/ports"
	"sysmap-backend/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InterfaceClassifier partitions the interfaces touching a resolved subtree
// by which tier of the hierarchy they reach, and derives the deduplicated
// set of connectable systems for selection UIs.
type InterfaceClassifier struct {
	systems    ports.SystemReader
	interfaces ports.InterfaceReader
	logger     *zap.Logger
}

// NewInterfaceClassifier creates a new classifier
func NewInterfaceClassifier(systems ports.SystemReader, interfaces ports.InterfaceReader, logger *zap.Logger) *InterfaceClassifier {
	return &InterfaceClassifier{
		systems:    systems,
		interfaces: interfaces,
		logger:     logger,
	}
}

// Classify fetches every interface touching the subtree's id set, enriches
// both endpoints with their system rows, and partitions the result. The
// partition is strict and priority-ordered by the deepest tier an interface
// reaches: an interface touching the root is always direct, even when its
// other endpoint is a child; below the root, grandchild involvement outranks
// child involvement, so a child to grandchild link lands in the
// grandchildren bucket. Edges out to external systems fall with the
// endpoint that is inside the subtree.
//
// A failed interface fetch degrades to an empty classification, not an
// error; a failed endpoint lookup degrades that endpoint to nil.
func (c *InterfaceClassifier) Classify(ctx context.Context, subtree *domain.Subtree) *domain.ClassifiedInterfaces {
	classified := &domain.ClassifiedInterfaces{
		Direct:        []domain.EnrichedInterface{},
		Children:      []domain.EnrichedInterface{},
		Grandchildren: []domain.EnrichedInterface{},
	}

	rows, err := c.interfaces.ListInterfacesTouching(ctx, subtree.IDs())
	if err != nil {
		c.logger.Warn("interface fetch failed, returning empty classification",
			zap.String("rootID", subtree.Root.ID.String()),
			zap.Error(err),
		)
		return classified
	}

	endpoints := c.lookupEndpoints(ctx, rows)
	childSet := subtree.ChildSet()
	grandchildSet := subtree.GrandchildSet()
	rootID := subtree.Root.ID

	for _, row := range rows {
		enriched := domain.EnrichedInterface{
			Interface: row,
			System1:   endpoints[row.System1ID],
			System2:   endpoints[row.System2ID],
		}

		switch {
		case row.Touches(rootID):
			classified.Direct = append(classified.Direct, enriched)
		case memberOf(grandchildSet, row.System1ID) || memberOf(grandchildSet, row.System2ID):
			classified.Grandchildren = append(classified.Grandchildren, enriched)
		case memberOf(childSet, row.System1ID) || memberOf(childSet, row.System2ID):
			classified.Children = append(classified.Children, enriched)
		default:
			classified.Grandchildren = append(classified.Grandchildren, enriched)
		}
	}

	return classified
}

// AvailableSystems returns the systems offered by interface create/edit
// forms: the root, the resolved descendants, and any external system that
// already has a connection into the subtree. Deduplicated by id; the root
// appears exactly once and comes from its own row rather than being
// inferred from interface data.
func (c *InterfaceClassifier) AvailableSystems(subtree *domain.Subtree, classified *domain.ClassifiedInterfaces) []domain.System {
	seen := make(map[uuid.UUID]struct{})
	available := make([]domain.System, 0, 1+len(subtree.Children)+len(subtree.Grandchildren))

	add := func(s domain.System) {
		if _, dup := seen[s.ID]; dup {
			return
		}
		seen[s.ID] = struct{}{}
		available = append(available, s)
	}

	add(subtree.Root)
	for _, s := range subtree.Children {
		add(s)
	}
	for _, s := range subtree.Grandchildren {
		add(s)
	}
	for _, e := range classified.All() {
		if e.System1 != nil {
			add(*e.System1)
		}
		if e.System2 != nil {
			add(*e.System2)
		}
	}

	return available
}

// lookupEndpoints resolves the unique endpoint ids of rows to system rows.
// Lookups run concurrently per id; a miss or failure leaves the id absent
// from the map, which renders as the unknown placeholder downstream.
func (c *InterfaceClassifier) lookupEndpoints(ctx context.Context, rows []domain.Interface) map[uuid.UUID]*domain.System {
	unique := make(map[uuid.UUID]struct{}, len(rows)*2)
	for _, row := range rows {
		unique[row.System1ID] = struct{}{}
		unique[row.System2ID] = struct{}{}
	}

	var mu sync.Mutex
	resolved := make(map[uuid.UUID]*domain.System, len(unique))

	var wg sync.WaitGroup
	for id := range unique {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			system, err := c.systems.GetSystem(ctx, id)
			if err != nil {
				c.logger.Debug("endpoint lookup missed",
					zap.String("systemID", id.String()),
					zap.Error(err),
				)
				return
			}
			mu.Lock()
			resolved[id] = system
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return resolved
}

func memberOf(set map[uuid.UUID]struct{}, id uuid.UUID) bool {
	_, ok := set[id]
	return ok
}
