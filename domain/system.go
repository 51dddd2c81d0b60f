package domain

import (
	"time"

	"github.com/google/uuid"
)

// System is a node in the systems hierarchy. Systems form a tree via
// ParentID; a nil ParentID marks a root. Depth is never stored, only
// computed relative to a chosen root at query time.
type System struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	ParentID  *uuid.UUID `json:"parent_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsRoot reports whether the system has no parent.
func (s System) IsRoot() bool {
	return s.ParentID == nil
}

// Subtree is the two-tier descendant set of a root system: the root's own
// row, its children (depth 1) and their children (depth 2). It is a derived,
// read-only projection recomputed on every resolution.
type Subtree struct {
	Root          System   `json:"root"`
	Children      []System `json:"children"`
	Grandchildren []System `json:"grandchildren"`
}

// IDs returns the root, child and grandchild ids, root first.
func (s *Subtree) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, 1+len(s.Children)+len(s.Grandchildren))
	ids = append(ids, s.Root.ID)
	for _, c := range s.Children {
		ids = append(ids, c.ID)
	}
	for _, g := range s.Grandchildren {
		ids = append(ids, g.ID)
	}
	return ids
}

// Contains reports whether id is the root or one of the resolved descendants.
func (s *Subtree) Contains(id uuid.UUID) bool {
	if id == s.Root.ID {
		return true
	}
	for _, c := range s.Children {
		if c.ID == id {
			return true
		}
	}
	for _, g := range s.Grandchildren {
		if g.ID == id {
			return true
		}
	}
	return false
}

// ChildSet returns the child ids as a set for membership checks.
func (s *Subtree) ChildSet() map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(s.Children))
	for _, c := range s.Children {
		set[c.ID] = struct{}{}
	}
	return set
}

// GrandchildSet returns the grandchild ids as a set for membership checks.
func (s *Subtree) GrandchildSet() map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(s.Grandchildren))
	for _, g := range s.Grandchildren {
		set[g.ID] = struct{}{}
	}
	return set
}
