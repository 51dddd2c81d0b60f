package domain

import "github.com/google/uuid"

// NodeTier selects the visual preset for a graph node.
type NodeTier string

const (
	NodeTierCurrent    NodeTier = "current"
	NodeTierChild      NodeTier = "child"
	NodeTierGrandchild NodeTier = "grandchild"
)

// EdgeKind distinguishes hierarchy edges from interface edges.
type EdgeKind string

const (
	// EdgeKindStructural is a parent→child tree edge.
	EdgeKindStructural EdgeKind = "structural"
	// EdgeKindRelationship is an edge derived from an interface row.
	EdgeKindRelationship EdgeKind = "relationship"
)

// Position is a 2D layout coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GraphNode is a layout-ready node. Position is nil until a layout engine
// (or the fallback) assigns one; identity and tier never depend on layout.
type GraphNode struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Category string    `json:"category"`
	Tier     NodeTier  `json:"tier"`
	Position *Position `json:"position,omitempty"`
}

// EdgeStyle carries the presentation hints the UI maps onto strokes.
type EdgeStyle struct {
	Dashed   bool    `json:"dashed"`
	Width    float64 `json:"width"`
	Animated bool    `json:"animated"`
}

// GraphEdge connects two graph nodes by id.
type GraphEdge struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Target      string    `json:"target"`
	Kind        EdgeKind  `json:"kind"`
	Label       string    `json:"label,omitempty"`
	Directional bool      `json:"directional"`
	Style       EdgeStyle `json:"style"`
}

// Graph is the node/edge set handed to the layout engine and the UI.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// HasNode reports whether a node with the given system id is present.
func (g *Graph) HasNode(id uuid.UUID) bool {
	s := id.String()
	for _, n := range g.Nodes {
		if n.ID == s {
			return true
		}
	}
	return false
}
