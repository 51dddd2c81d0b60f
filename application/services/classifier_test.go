package services

import (
	"context"
	"testing"

	"sysmap-backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// classifierFixture builds the canonical tree: root with two children,
// one grandchild under the first child, and one external system that is
// connected into the tree but outside it.
type classifierFixture struct {
	store    *fakeStore
	subtree  *domain.Subtree
	root     domain.System
	child1   domain.System
	child2   domain.System
	grand    domain.System
	external domain.System
}

func newClassifierFixture(t *testing.T) *classifierFixture {
	t.Helper()
	store := newFakeStore()

	root := newSystem("Payments", "platform", nil)
	store.addSystem(root)
	child1 := newSystem("Billing", "service", &root.ID)
	child2 := newSystem("Ledger", "service", &root.ID)
	store.addSystem(child1)
	store.addSystem(child2)
	grand := newSystem("Invoicing", "service", &child1.ID)
	store.addSystem(grand)
	external := newSystem("CRM", "external", nil)
	store.addSystem(external)

	return &classifierFixture{
		store: store,
		subtree: &domain.Subtree{
			Root:          root,
			Children:      []domain.System{child1, child2},
			Grandchildren: []domain.System{grand},
		},
		root:     root,
		child1:   child1,
		child2:   child2,
		grand:    grand,
		external: external,
	}
}

func TestClassifyPartitionsByTier(t *testing.T) {
	fx := newClassifierFixture(t)

	rootToChild := newInterface(fx.root.ID, fx.child1.ID, "REST", 1)
	rootToExternal := newInterface(fx.external.ID, fx.root.ID, "SFTP", 0)
	childToChild := newInterface(fx.child1.ID, fx.child2.ID, "queue", 1)
	childToExternal := newInterface(fx.child2.ID, fx.external.ID, "REST", 0)
	grandToExternal := newInterface(fx.grand.ID, fx.external.ID, "file drop", 0)
	fx.store.interfaces = []domain.Interface{
		rootToChild, rootToExternal, childToChild, childToExternal, grandToExternal,
	}

	classifier := NewInterfaceClassifier(fx.store, fx.store, zap.NewNop())
	classified := classifier.Classify(context.Background(), fx.subtree)

	// Root involvement wins even when the other endpoint is a child.
	require.Len(t, classified.Direct, 2)
	assert.Equal(t, rootToChild.ID, classified.Direct[0].ID)
	assert.Equal(t, rootToExternal.ID, classified.Direct[1].ID)

	require.Len(t, classified.Children, 2)
	assert.Equal(t, childToChild.ID, classified.Children[0].ID)
	assert.Equal(t, childToExternal.ID, classified.Children[1].ID)

	require.Len(t, classified.Grandchildren, 1)
	assert.Equal(t, grandToExternal.ID, classified.Grandchildren[0].ID)
}

func TestClassifyChildToGrandchildReachesGrandchildTier(t *testing.T) {
	fx := newClassifierFixture(t)

	rootToChild := newInterface(fx.root.ID, fx.child1.ID, "REST", 1)
	childToGrand := newInterface(fx.child1.ID, fx.grand.ID, "queue", 1)
	childToExternal := newInterface(fx.child2.ID, fx.external.ID, "REST", 0)
	fx.store.interfaces = []domain.Interface{rootToChild, childToGrand, childToExternal}

	classifier := NewInterfaceClassifier(fx.store, fx.store, zap.NewNop())
	classified := classifier.Classify(context.Background(), fx.subtree)

	require.Len(t, classified.Direct, 1)
	assert.Equal(t, rootToChild.ID, classified.Direct[0].ID)

	// The child endpoint does not pull the link up a tier: reaching the
	// grandchild puts it in the grandchildren bucket.
	require.Len(t, classified.Grandchildren, 1)
	assert.Equal(t, childToGrand.ID, classified.Grandchildren[0].ID)

	require.Len(t, classified.Children, 1)
	assert.Equal(t, childToExternal.ID, classified.Children[0].ID)
}

func TestClassifyEnrichesEndpoints(t *testing.T) {
	fx := newClassifierFixture(t)
	fx.store.interfaces = []domain.Interface{
		newInterface(fx.root.ID, fx.external.ID, "REST", 1),
	}

	classifier := NewInterfaceClassifier(fx.store, fx.store, zap.NewNop())
	classified := classifier.Classify(context.Background(), fx.subtree)

	require.Len(t, classified.Direct, 1)
	enriched := classified.Direct[0]
	assert.Equal(t, "Payments", enriched.System1Name())
	assert.Equal(t, "CRM", enriched.System2Name())
}

func TestClassifyUnknownEndpointGetsPlaceholder(t *testing.T) {
	fx := newClassifierFixture(t)
	ghost := uuid.New() // row references a system that no longer exists
	fx.store.interfaces = []domain.Interface{
		newInterface(fx.root.ID, ghost, "REST", 0),
	}

	classifier := NewInterfaceClassifier(fx.store, fx.store, zap.NewNop())
	classified := classifier.Classify(context.Background(), fx.subtree)

	require.Len(t, classified.Direct, 1)
	assert.Nil(t, classified.Direct[0].System2)
	assert.Equal(t, domain.UnknownSystemName, classified.Direct[0].System2Name())
}

func TestClassifyFetchFailureReturnsEmpty(t *testing.T) {
	fx := newClassifierFixture(t)
	fx.store.interfacesErr = errStoreDown

	classifier := NewInterfaceClassifier(fx.store, fx.store, zap.NewNop())
	classified := classifier.Classify(context.Background(), fx.subtree)

	assert.Zero(t, classified.Len())
	assert.NotNil(t, classified.Direct)
	assert.NotNil(t, classified.Children)
	assert.NotNil(t, classified.Grandchildren)
}

func TestAvailableSystemsDeduplicates(t *testing.T) {
	fx := newClassifierFixture(t)
	fx.store.interfaces = []domain.Interface{
		// Root and child1 already appear via the subtree; the external
		// system appears twice via two interfaces and must show up once.
		newInterface(fx.root.ID, fx.child1.ID, "REST", 0),
		newInterface(fx.root.ID, fx.external.ID, "REST", 0),
		newInterface(fx.child2.ID, fx.external.ID, "queue", 1),
	}

	classifier := NewInterfaceClassifier(fx.store, fx.store, zap.NewNop())
	classified := classifier.Classify(context.Background(), fx.subtree)
	available := classifier.AvailableSystems(fx.subtree, classified)

	counts := make(map[uuid.UUID]int)
	for _, s := range available {
		counts[s.ID]++
	}
	for id, n := range counts {
		assert.Equal(t, 1, n, "system %s listed more than once", id)
	}

	// Root, two children, one grandchild, one external.
	assert.Len(t, available, 5)
	assert.Equal(t, fx.root.ID, available[0].ID, "root comes first, from its own row")
	assert.Contains(t, counts, fx.external.ID)
}
