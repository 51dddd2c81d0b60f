package supabase

import (
	"context"
	"encoding/json"
	"time"

	"sysmap-backend/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"

	pkgerrors "sysmap-backend/pkg/errors"
)

// call invokes one stored procedure and decodes its JSON result into dest.
// A nil dest discards the result. The postgrest client surfaces failures
// through ClientError, so the call and the check happen under rpcMu.
func (s *Store) call(ctx context.Context, procedure string, params map[string]interface{}, dest interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	s.rpcMu.Lock()
	s.rpc.ClientError = nil
	raw := s.rpc.Rpc(procedure, "", params)
	callErr := s.rpc.ClientError
	s.rpcMu.Unlock()
	s.observe("rpc."+procedure, start, callErr)

	if callErr != nil {
		s.logger.Error("stored procedure failed",
			zap.String("procedure", procedure),
			zap.Error(callErr),
		)
		return pkgerrors.NewDatabaseError(procedure, callErr)
	}

	if dest == nil || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return pkgerrors.NewDatabaseError(procedure, err)
	}
	return nil
}

// callForID invokes a procedure whose result is the new row's id.
func (s *Store) callForID(ctx context.Context, procedure string, params map[string]interface{}) (uuid.UUID, error) {
	var id uuid.UUID
	if err := s.call(ctx, procedure, params, &id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// CreateSystem inserts a system and its creation revision in one transaction.
func (s *Store) CreateSystem(ctx context.Context, name, category string, parentID *uuid.UUID) (uuid.UUID, error) {
	params := map[string]interface{}{
		"p_name":     name,
		"p_category": category,
	}
	if parentID != nil {
		params["p_parent_id"] = parentID.String()
	} else {
		params["p_parent_id"] = nil
	}
	return s.callForID(ctx, "create_system_with_history", params)
}

// UpdateSystem rewrites a system's fields and appends the update revision.
func (s *Store) UpdateSystem(ctx context.Context, id uuid.UUID, name, category string) (*domain.System, error) {
	var row domain.System
	err := s.call(ctx, "update_system_with_history", map[string]interface{}{
		"p_id":       id.String(),
		"p_name":     name,
		"p_category": category,
	}, &row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteSystem removes a system and appends the deletion revision.
func (s *Store) DeleteSystem(ctx context.Context, id uuid.UUID) error {
	return s.call(ctx, "delete_system_with_history", map[string]interface{}{
		"p_id": id.String(),
	}, nil)
}

// CreateInterface inserts an interface and its creation revision.
func (s *Store) CreateInterface(ctx context.Context, system1ID, system2ID uuid.UUID, connection string, directional int) (uuid.UUID, error) {
	return s.callForID(ctx, "create_interface_with_history", map[string]interface{}{
		"p_system1_id":  system1ID.String(),
		"p_system2_id":  system2ID.String(),
		"p_connection":  connection,
		"p_directional": directional,
	})
}

// UpdateInterface rewrites an interface's fields and appends the update revision.
func (s *Store) UpdateInterface(ctx context.Context, id, system1ID, system2ID uuid.UUID, connection string, directional int) (*domain.Interface, error) {
	var row domain.Interface
	err := s.call(ctx, "update_interface_with_history", map[string]interface{}{
		"p_id":          id.String(),
		"p_system1_id":  system1ID.String(),
		"p_system2_id":  system2ID.String(),
		"p_connection":  connection,
		"p_directional": directional,
	}, &row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteInterface removes an interface and appends the deletion revision.
func (s *Store) DeleteInterface(ctx context.Context, id uuid.UUID) error {
	return s.call(ctx, "delete_interface_with_history", map[string]interface{}{
		"p_id": id.String(),
	}, nil)
}

// RestoreRevision re-applies a historical snapshot. The procedure decides
// what restoring the revision means and returns the row it produced.
func (s *Store) RestoreRevision(ctx context.Context, revisionID uuid.UUID) (json.RawMessage, error) {
	var restored json.RawMessage
	err := s.call(ctx, "restore_revision", map[string]interface{}{
		"p_revision_id": revisionID.String(),
	}, &restored)
	if err != nil {
		return nil, err
	}
	return restored, nil
}
