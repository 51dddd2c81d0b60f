// Package supabase implements the entity store ports against a hosted
// Supabase project: PostgREST for row reads and stored procedures for every
// audited mutation.
package supabase

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	pkgerrors "sysmap-backend/pkg/errors"
	"sysmap-backend/pkg/observability"
)

// Table names in the hosted project.
const (
	tableSystems    = "systems"
	tableInterfaces = "interfaces"
	tableRevisions  = "revisions"
)

// Store talks to the Supabase project with the service-role key. Row-level
// reads go through the supabase client; stored procedures go through a
// dedicated postgrest client so RPC errors are observable.
type Store struct {
	client  *supabase.Client
	rpc     *postgrest.Client
	logger  *zap.Logger
	metrics *observability.Metrics

	// The postgrest client reports RPC failures via a field on itself,
	// so calls must not interleave.
	rpcMu sync.Mutex
}

// NewStore creates a store bound to one Supabase project. A nil metrics
// disables instrumentation.
func NewStore(projectURL, serviceKey string, logger *zap.Logger, metrics *observability.Metrics) (*Store, error) {
	client, err := supabase.NewClient(projectURL, serviceKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}

	restURL := strings.TrimSuffix(projectURL, "/") + "/rest/v1"
	rpc := postgrest.NewClient(restURL, "public", map[string]string{
		"apikey":        serviceKey,
		"Authorization": "Bearer " + serviceKey,
	})

	return &Store{
		client:  client,
		rpc:     rpc,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// observe records one store call when instrumentation is enabled.
func (s *Store) observe(operation string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.ObserveStoreCall(operation, time.Since(start), err)
	}
}

// isNoRows reports whether a PostgREST error means "no rows matched" on a
// single-row fetch rather than a transport or store failure.
func isNoRows(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "PGRST116") || strings.Contains(msg, "0 rows")
}

// readError maps a PostgREST read failure onto the error taxonomy.
func readError(operation, resource string, err error) error {
	if isNoRows(err) {
		return pkgerrors.NewNotFoundError(resource)
	}
	return pkgerrors.NewDatabaseError(operation, err)
}
