package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDRoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), "user-123")

	got, ok := GetUserID(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-123", got)

	_, ok = GetUserID(context.Background())
	assert.False(t, ok)
}

func TestHasRole(t *testing.T) {
	ctx := WithUserRoles(context.Background(), []string{"authenticated", "admin"})

	assert.True(t, HasRole(ctx, "admin"))
	assert.False(t, HasRole(ctx, "service_role"))
	assert.False(t, HasRole(context.Background(), "admin"))
}
