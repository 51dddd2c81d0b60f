package services

import (
	"encoding/json"
	"reflect"
	"sort"

	"sysmap-backend/domain"
)

// RevisionDiffRenderer turns a revision's before/after snapshots into a
// presentation-ready diff. It is a pure function of the revision row.
type RevisionDiffRenderer struct{}

// NewRevisionDiffRenderer creates a new diff renderer
func NewRevisionDiffRenderer() *RevisionDiffRenderer {
	return &RevisionDiffRenderer{}
}

// Render maps each operation onto its diff shape: creates render the whole
// new snapshot as an addition, deletes the whole previous snapshot as a
// removal, and updates the per-key changes with unchanged keys omitted.
// Unrecognized operations pass through with an empty diff rather than
// failing; the audit log may contain operations newer than this code.
func (r *RevisionDiffRenderer) Render(rev domain.Revision) domain.RenderedDiff {
	switch rev.Operation {
	case domain.OperationCreate:
		return domain.RenderedDiff{
			Kind:  domain.DiffKindAddition,
			Added: decodeSnapshot(rev.NewData),
		}
	case domain.OperationDelete:
		return domain.RenderedDiff{
			Kind:    domain.DiffKindRemoval,
			Removed: decodeSnapshot(rev.PreviousData),
		}
	case domain.OperationUpdate:
		return domain.RenderedDiff{
			Kind:    domain.DiffKindChange,
			Changes: diffSnapshots(decodeSnapshot(rev.PreviousData), decodeSnapshot(rev.NewData)),
		}
	default:
		return domain.RenderedDiff{Kind: domain.DiffKindNone}
	}
}

// diffSnapshots emits one change per key in the union of both snapshots
// whose values differ structurally. Keys are sorted so rendering is stable.
func diffSnapshots(previous, current map[string]interface{}) []domain.FieldChange {
	keys := make(map[string]struct{}, len(previous)+len(current))
	for k := range previous {
		keys[k] = struct{}{}
	}
	for k := range current {
		keys[k] = struct{}{}
	}

	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	changes := []domain.FieldChange{}
	for _, k := range sorted {
		oldValue, hadOld := previous[k]
		newValue, hasNew := current[k]
		if hadOld && hasNew && reflect.DeepEqual(oldValue, newValue) {
			continue
		}
		changes = append(changes, domain.FieldChange{
			Key:      k,
			OldValue: oldValue,
			NewValue: newValue,
		})
	}
	return changes
}

// decodeSnapshot unmarshals a snapshot into a key/value map. Null, empty
// or malformed snapshots decode to an empty map; the renderer never errors.
func decodeSnapshot(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return map[string]interface{}{}
	}
	var snapshot map[string]interface{}
	if err := json.Unmarshal(raw, &snapshot); err != nil || snapshot == nil {
		return map[string]interface{}{}
	}
	return snapshot
}
