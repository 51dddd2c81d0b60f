package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadCommitsSnapshot(t *testing.T) {
	store := newFakeStore()
	root := newSystem("Payments", "platform", nil)
	store.addSystem(root)

	loader := NewSubtreeLoader(NewDescendantResolver(store, zap.NewNop()), zap.NewNop())

	_, ok := loader.Current()
	assert.False(t, ok, "no snapshot before the first load")

	subtree, err := loader.Load(context.Background(), root.ID)
	require.NoError(t, err)

	current, ok := loader.Current()
	require.True(t, ok)
	assert.Equal(t, subtree.Root.ID, current.Root.ID)
}

func TestLoadFailureKeepsPreviousSnapshot(t *testing.T) {
	store := newFakeStore()
	root := newSystem("Payments", "platform", nil)
	store.addSystem(root)

	loader := NewSubtreeLoader(NewDescendantResolver(store, zap.NewNop()), zap.NewNop())
	_, err := loader.Load(context.Background(), root.ID)
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), uuid.New())
	require.Error(t, err)

	current, ok := loader.Current()
	require.True(t, ok)
	assert.Equal(t, root.ID, current.Root.ID, "failed load must not clear the snapshot")
}

func TestLoadSupersededResultDoesNotCommit(t *testing.T) {
	store := newFakeStore()
	oldRoot := newSystem("Old", "platform", nil)
	newRoot := newSystem("New", "platform", nil)
	store.addSystem(oldRoot)
	store.addSystem(newRoot)

	loader := NewSubtreeLoader(NewDescendantResolver(store, zap.NewNop()), zap.NewNop())

	// First load parks inside the store until released.
	release := make(chan struct{})
	store.mu.Lock()
	store.blockGet = release
	store.mu.Unlock()

	type result struct {
		rootID uuid.UUID
		err    error
	}
	stale := make(chan result, 1)
	go func() {
		subtree, err := loader.Load(context.Background(), oldRoot.ID)
		if err != nil {
			stale <- result{err: err}
			return
		}
		stale <- result{rootID: subtree.Root.ID}
	}()

	// Give the stale load time to take its generation before the newer one.
	time.Sleep(20 * time.Millisecond)

	store.mu.Lock()
	store.blockGet = nil
	store.mu.Unlock()

	_, err := loader.Load(context.Background(), newRoot.ID)
	require.NoError(t, err)

	close(release)

	select {
	case got := <-stale:
		require.NoError(t, got.err)
		assert.Equal(t, oldRoot.ID, got.rootID, "superseded load still returns its own subtree")
	case <-time.After(2 * time.Second):
		t.Fatal("stale load never finished")
	}

	current, ok := loader.Current()
	require.True(t, ok)
	assert.Equal(t, newRoot.ID, current.Root.ID, "stale result must not replace the newer snapshot")
}
