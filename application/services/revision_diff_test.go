package services

import (
	"encoding/json"
	"testing"

	"sysmap-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCreateShowsWholeSnapshot(t *testing.T) {
	renderer := NewRevisionDiffRenderer()

	diff := renderer.Render(domain.Revision{
		Operation: domain.OperationCreate,
		NewData:   json.RawMessage(`{"name":"Billing","category":"service"}`),
	})

	assert.Equal(t, domain.DiffKindAddition, diff.Kind)
	assert.Equal(t, "Billing", diff.Added["name"])
	assert.Empty(t, diff.Removed)
	assert.Empty(t, diff.Changes)
}

func TestRenderDeleteShowsPreviousSnapshot(t *testing.T) {
	renderer := NewRevisionDiffRenderer()

	diff := renderer.Render(domain.Revision{
		Operation:    domain.OperationDelete,
		PreviousData: json.RawMessage(`{"name":"Billing"}`),
	})

	assert.Equal(t, domain.DiffKindRemoval, diff.Kind)
	assert.Equal(t, "Billing", diff.Removed["name"])
}

func TestRenderUpdateEmitsOnlyChangedKeys(t *testing.T) {
	renderer := NewRevisionDiffRenderer()

	diff := renderer.Render(domain.Revision{
		Operation:    domain.OperationUpdate,
		PreviousData: json.RawMessage(`{"name":"Billing","category":"service"}`),
		NewData:      json.RawMessage(`{"name":"Billing","category":"platform","owner":"finance"}`),
	})

	assert.Equal(t, domain.DiffKindChange, diff.Kind)
	require.Len(t, diff.Changes, 2)

	// Sorted by key: category before owner; unchanged name is omitted.
	assert.Equal(t, "category", diff.Changes[0].Key)
	assert.Equal(t, "service", diff.Changes[0].OldValue)
	assert.Equal(t, "platform", diff.Changes[0].NewValue)

	assert.Equal(t, "owner", diff.Changes[1].Key)
	assert.Nil(t, diff.Changes[1].OldValue)
	assert.Equal(t, "finance", diff.Changes[1].NewValue)
}

func TestRenderUpdateDroppedKey(t *testing.T) {
	renderer := NewRevisionDiffRenderer()

	diff := renderer.Render(domain.Revision{
		Operation:    domain.OperationUpdate,
		PreviousData: json.RawMessage(`{"owner":"finance"}`),
		NewData:      json.RawMessage(`{}`),
	})

	require.Len(t, diff.Changes, 1)
	assert.Equal(t, "owner", diff.Changes[0].Key)
	assert.Equal(t, "finance", diff.Changes[0].OldValue)
	assert.Nil(t, diff.Changes[0].NewValue)
}

func TestRenderUnknownOperation(t *testing.T) {
	renderer := NewRevisionDiffRenderer()

	diff := renderer.Render(domain.Revision{Operation: "compact"})

	assert.Equal(t, domain.DiffKindNone, diff.Kind)
	assert.True(t, diff.IsEmpty())
}

func TestRenderToleratesMalformedSnapshots(t *testing.T) {
	renderer := NewRevisionDiffRenderer()

	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`), json.RawMessage(`{broken`), json.RawMessage(`[1,2]`)} {
		diff := renderer.Render(domain.Revision{
			Operation: domain.OperationCreate,
			NewData:   raw,
		})
		assert.Equal(t, domain.DiffKindAddition, diff.Kind)
		assert.Empty(t, diff.Added)
	}
}
