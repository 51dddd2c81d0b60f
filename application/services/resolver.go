package services

import (
	"context"
	"sync"

	"sysmap-backend/application/ports"
	"sysmap-backend/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DescendantResolver assembles the two-tier descendant set of a root
// system. The walk is fixed-depth (children, then each child's children),
// so it needs no cycle guard: a corrupted tree deeper than two tiers is
// invisible to it by construction.
type DescendantResolver struct {
	systems ports.SystemReader
	logger  *zap.Logger
}

// NewDescendantResolver creates a new resolver
func NewDescendantResolver(systems ports.SystemReader, logger *zap.Logger) *DescendantResolver {
	return &DescendantResolver{
		systems: systems,
		logger:  logger,
	}
}

// Resolve fetches the root row, its children and their children. Branch
// fetch failures are logged and degrade to empty slices; a failed
// grandchild fetch for one child never aborts the others. Only a missing
// root row is an error for the whole resolution.
func (r *DescendantResolver) Resolve(ctx context.Context, rootID uuid.UUID) (*domain.Subtree, error) {
	root, err := r.systems.GetSystem(ctx, rootID)
	if err != nil {
		return nil, err
	}

	children, err := r.systems.ListSystemsByParent(ctx, &rootID)
	if err != nil {
		r.logger.Warn("children fetch failed, treating branch as empty",
			zap.String("rootID", rootID.String()),
			zap.Error(err),
		)
		return &domain.Subtree{Root: *root}, nil
	}

	// Grandchild fetches for different children are independent; run them
	// concurrently and collect per-child so ordering stays stable.
	perChild := make([][]domain.System, len(children))
	var wg sync.WaitGroup
	for i := range children {
		wg.Add(1)
		go func(i int, child domain.System) {
			defer wg.Done()
			rows, err := r.systems.ListSystemsByParent(ctx, &child.ID)
			if err != nil {
				r.logger.Warn("grandchildren fetch failed, treating branch as empty",
					zap.String("childID", child.ID.String()),
					zap.Error(err),
				)
				return
			}
			perChild[i] = rows
		}(i, children[i])
	}
	wg.Wait()

	var grandchildren []domain.System
	for _, rows := range perChild {
		grandchildren = append(grandchildren, rows...)
	}

	return &domain.Subtree{
		Root:          *root,
		Children:      children,
		Grandchildren: grandchildren,
	}, nil
}
