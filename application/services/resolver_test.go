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

func TestResolveTwoTiers(t *testing.T) {
	store := newFakeStore()
	root := newSystem("Payments", "platform", nil)
	store.addSystem(root)

	c1 := newSystem("Billing", "service", &root.ID)
	c2 := newSystem("Ledger", "service", &root.ID)
	store.addSystem(c1)
	store.addSystem(c2)

	g1 := newSystem("Invoicing", "service", &c1.ID)
	g2 := newSystem("Dunning", "service", &c1.ID)
	g3 := newSystem("Postings", "service", &c2.ID)
	store.addSystem(g1)
	store.addSystem(g2)
	store.addSystem(g3)

	// A great-grandchild must stay invisible to the two-tier walk.
	store.addSystem(newSystem("Too Deep", "service", &g1.ID))

	resolver := NewDescendantResolver(store, zap.NewNop())
	subtree, err := resolver.Resolve(context.Background(), root.ID)
	require.NoError(t, err)

	assert.Equal(t, root.ID, subtree.Root.ID)
	assert.Len(t, subtree.Children, 2)
	assert.Len(t, subtree.Grandchildren, 3)

	// Grandchildren keep child order: c1's rows before c2's.
	assert.Equal(t, []uuid.UUID{g1.ID, g2.ID, g3.ID},
		[]uuid.UUID{subtree.Grandchildren[0].ID, subtree.Grandchildren[1].ID, subtree.Grandchildren[2].ID})
}

func TestResolveMissingRootFails(t *testing.T) {
	store := newFakeStore()
	resolver := NewDescendantResolver(store, zap.NewNop())

	_, err := resolver.Resolve(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestResolveLeafRoot(t *testing.T) {
	store := newFakeStore()
	root := newSystem("Standalone", "tool", nil)
	store.addSystem(root)

	resolver := NewDescendantResolver(store, zap.NewNop())
	subtree, err := resolver.Resolve(context.Background(), root.ID)
	require.NoError(t, err)

	assert.Empty(t, subtree.Children)
	assert.Empty(t, subtree.Grandchildren)
}

func TestResolveChildrenFetchFailureDegradesToRootOnly(t *testing.T) {
	store := newFakeStore()
	root := newSystem("Payments", "platform", nil)
	store.addSystem(root)
	store.addSystem(newSystem("Billing", "service", &root.ID))
	store.listErr[root.ID] = errStoreDown

	resolver := NewDescendantResolver(store, zap.NewNop())
	subtree, err := resolver.Resolve(context.Background(), root.ID)
	require.NoError(t, err)

	assert.Equal(t, root.ID, subtree.Root.ID)
	assert.Empty(t, subtree.Children)
	assert.Empty(t, subtree.Grandchildren)
}

func TestResolveGrandchildFailureIsIsolated(t *testing.T) {
	store := newFakeStore()
	root := newSystem("Payments", "platform", nil)
	store.addSystem(root)

	c1 := newSystem("Billing", "service", &root.ID)
	c2 := newSystem("Ledger", "service", &root.ID)
	store.addSystem(c1)
	store.addSystem(c2)

	store.addSystem(newSystem("Invoicing", "service", &c1.ID))
	g := newSystem("Postings", "service", &c2.ID)
	store.addSystem(g)

	// c1's branch fails; c2's grandchildren must still arrive.
	store.listErr[c1.ID] = errStoreDown

	resolver := NewDescendantResolver(store, zap.NewNop())
	subtree, err := resolver.Resolve(context.Background(), root.ID)
	require.NoError(t, err)

	assert.Len(t, subtree.Children, 2)
	require.Len(t, subtree.Grandchildren, 1)
	assert.Equal(t, g.ID, subtree.Grandchildren[0].ID)
}

func TestResolveGrandchildrenConcurrently(t *testing.T) {
	store := newFakeStore()
	root := newSystem("Hub", "platform", nil)
	store.addSystem(root)

	children := make([]domain.System, 0, 16)
	for i := 0; i < 16; i++ {
		c := newSystem("child", "service", &root.ID)
		store.addSystem(c)
		children = append(children, c)
		store.addSystem(newSystem("grandchild", "service", &c.ID))
	}

	resolver := NewDescendantResolver(store, zap.NewNop())
	subtree, err := resolver.Resolve(context.Background(), root.ID)
	require.NoError(t, err)

	assert.Len(t, subtree.Children, len(children))
	assert.Len(t, subtree.Grandchildren, len(children))
}
