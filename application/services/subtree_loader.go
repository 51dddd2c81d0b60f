package services

import (
	"context"
	"sync"

	"sysmap-backend/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubtreeLoader wraps the resolver with supersession protection for a
// single navigation context: when the root changes while a resolution is
// still in flight, the stale result must not overwrite the snapshot
// committed for the newer root. A generation counter taken at load start
// is re-checked at commit time.
//
// There is no retry and no cross-navigation cache. A failed load leaves
// the previous snapshot in place and the caller re-triggers by loading
// again.
type SubtreeLoader struct {
	resolver *DescendantResolver
	logger   *zap.Logger

	mu       sync.Mutex
	gen      uint64
	snapshot *domain.Subtree
}

// NewSubtreeLoader creates a new loader around the resolver.
func NewSubtreeLoader(resolver *DescendantResolver, logger *zap.Logger) *SubtreeLoader {
	return &SubtreeLoader{
		resolver: resolver,
		logger:   logger,
	}
}

// Load resolves the subtree for rootID and commits it as the current
// snapshot unless a newer Load started in the meantime. The resolved
// subtree is returned to the caller either way.
func (l *SubtreeLoader) Load(ctx context.Context, rootID uuid.UUID) (*domain.Subtree, error) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	subtree, err := l.resolver.Resolve(ctx, rootID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen != gen {
		// Superseded by a newer root; the committed snapshot stays.
		l.logger.Debug("discarding superseded subtree resolution",
			zap.String("rootID", rootID.String()),
		)
		return subtree, nil
	}
	l.snapshot = subtree
	return subtree, nil
}

// Current returns the last committed snapshot, if any.
func (l *SubtreeLoader) Current() (*domain.Subtree, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.snapshot == nil {
		return nil, false
	}
	return l.snapshot, true
}
