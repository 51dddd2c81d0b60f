package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSystemIsRoot(t *testing.T) {
	parent := uuid.New()
	assert.True(t, System{ID: uuid.New()}.IsRoot())
	assert.False(t, System{ID: uuid.New(), ParentID: &parent}.IsRoot())
}

func TestSubtreeIDsRootFirst(t *testing.T) {
	root := System{ID: uuid.New()}
	child := System{ID: uuid.New(), ParentID: &root.ID}
	grand := System{ID: uuid.New(), ParentID: &child.ID}

	s := &Subtree{Root: root, Children: []System{child}, Grandchildren: []System{grand}}

	assert.Equal(t, []uuid.UUID{root.ID, child.ID, grand.ID}, s.IDs())
}

func TestSubtreeContains(t *testing.T) {
	root := System{ID: uuid.New()}
	child := System{ID: uuid.New(), ParentID: &root.ID}

	s := &Subtree{Root: root, Children: []System{child}}

	assert.True(t, s.Contains(root.ID))
	assert.True(t, s.Contains(child.ID))
	assert.False(t, s.Contains(uuid.New()))
}

func TestSubtreeChildSetExcludesRootAndGrandchildren(t *testing.T) {
	root := System{ID: uuid.New()}
	child := System{ID: uuid.New(), ParentID: &root.ID}
	grand := System{ID: uuid.New(), ParentID: &child.ID}

	s := &Subtree{Root: root, Children: []System{child}, Grandchildren: []System{grand}}
	set := s.ChildSet()

	assert.Contains(t, set, child.ID)
	assert.NotContains(t, set, root.ID)
	assert.NotContains(t, set, grand.ID)
}

func TestSubtreeGrandchildSetExcludesRootAndChildren(t *testing.T) {
	root := System{ID: uuid.New()}
	child := System{ID: uuid.New(), ParentID: &root.ID}
	grand := System{ID: uuid.New(), ParentID: &child.ID}

	s := &Subtree{Root: root, Children: []System{child}, Grandchildren: []System{grand}}
	set := s.GrandchildSet()

	assert.Contains(t, set, grand.ID)
	assert.NotContains(t, set, root.ID)
	assert.NotContains(t, set, child.ID)
}
