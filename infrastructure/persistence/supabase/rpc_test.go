package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestMutationsCallHistoryProcedures pins the stored-procedure names the
// hosted project exposes. A renamed procedure here means every mutation
// 404s against the real store.
func TestMutationsCallHistoryProcedures(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		procedure := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		switch {
		case strings.HasPrefix(procedure, "create_"):
			w.Write([]byte(strconv.Quote(uuid.New().String())))
		case strings.HasPrefix(procedure, "update_"):
			w.Write([]byte(`{}`))
		default:
			w.Write([]byte(`null`))
		}
	}))
	defer srv.Close()

	store, err := NewStore(srv.URL, "service-key", zap.NewNop(), nil)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.New()

	_, err = store.CreateSystem(ctx, "Payments", "platform", nil)
	require.NoError(t, err)
	_, err = store.UpdateSystem(ctx, id, "Payments", "platform")
	require.NoError(t, err)
	require.NoError(t, store.DeleteSystem(ctx, id))

	_, err = store.CreateInterface(ctx, uuid.New(), uuid.New(), "REST", 1)
	require.NoError(t, err)
	_, err = store.UpdateInterface(ctx, id, uuid.New(), uuid.New(), "REST", 0)
	require.NoError(t, err)
	require.NoError(t, store.DeleteInterface(ctx, id))

	_, err = store.RestoreRevision(ctx, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/rest/v1/rpc/create_system_with_history",
		"/rest/v1/rpc/update_system_with_history",
		"/rest/v1/rpc/delete_system_with_history",
		"/rest/v1/rpc/create_interface_with_history",
		"/rest/v1/rpc/update_interface_with_history",
		"/rest/v1/rpc/delete_interface_with_history",
		"/rest/v1/rpc/restore_revision",
	}, paths)
}
