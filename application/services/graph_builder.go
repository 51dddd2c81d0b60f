package services

import (
	"fmt"
	"math"

	"sysmap-backend/application/ports"
	"sysmap-backend/domain"

	"go.uber.org/zap"
)

// Edge styling presets. Structural tree edges are dashed and thin;
// directional interfaces get the heavier animated stroke.
var (
	structuralStyle    = domain.EdgeStyle{Dashed: true, Width: 1}
	directionalStyle   = domain.EdgeStyle{Dashed: false, Width: 2.5, Animated: true}
	bidirectionalStyle = domain.EdgeStyle{Dashed: true, Width: 1.5}
)

// GraphBuilder converts a resolved subtree plus its classified interfaces
// into a layout-ready node/edge graph. Node and edge sets are a pure
// function of the inputs; only positions depend on the layout engine.
type GraphBuilder struct {
	layout ports.LayoutEngine
	logger *zap.Logger
}

// NewGraphBuilder creates a new graph builder
func NewGraphBuilder(layout ports.LayoutEngine, logger *zap.Logger) *GraphBuilder {
	return &GraphBuilder{
		layout: layout,
		logger: logger,
	}
}

// Build produces one node per resolved system and two edge families:
// structural edges following the tree, and relationship edges for every
// interface whose endpoints are both present in the node set. Interfaces
// reaching an unresolved external system are excluded from the graph but
// still appear in the classifier's lists.
func (b *GraphBuilder) Build(subtree *domain.Subtree, interfaces []domain.EnrichedInterface) *domain.Graph {
	graph := &domain.Graph{
		Nodes: make([]domain.GraphNode, 0, 1+len(subtree.Children)+len(subtree.Grandchildren)),
		Edges: []domain.GraphEdge{},
	}

	present := make(map[string]struct{})
	addNode := func(s domain.System, tier domain.NodeTier) {
		id := s.ID.String()
		graph.Nodes = append(graph.Nodes, domain.GraphNode{
			ID:       id,
			Label:    s.Name,
			Category: s.Category,
			Tier:     tier,
		})
		present[id] = struct{}{}
	}

	addNode(subtree.Root, domain.NodeTierCurrent)
	for _, c := range subtree.Children {
		addNode(c, domain.NodeTierChild)
	}
	for _, g := range subtree.Grandchildren {
		addNode(g, domain.NodeTierGrandchild)
	}

	rootID := subtree.Root.ID.String()
	for _, c := range subtree.Children {
		graph.Edges = append(graph.Edges, domain.GraphEdge{
			ID:     fmt.Sprintf("tree:%s:%s", rootID, c.ID),
			Source: rootID,
			Target: c.ID.String(),
			Kind:   domain.EdgeKindStructural,
			Style:  structuralStyle,
		})
	}
	for _, g := range subtree.Grandchildren {
		if g.ParentID == nil {
			continue
		}
		graph.Edges = append(graph.Edges, domain.GraphEdge{
			ID:     fmt.Sprintf("tree:%s:%s", g.ParentID, g.ID),
			Source: g.ParentID.String(),
			Target: g.ID.String(),
			Kind:   domain.EdgeKindStructural,
			Style:  structuralStyle,
		})
	}

	for _, e := range interfaces {
		source := e.System1ID.String()
		target := e.System2ID.String()
		if _, ok := present[source]; !ok {
			continue
		}
		if _, ok := present[target]; !ok {
			continue
		}

		style := bidirectionalStyle
		if e.IsDirectional() {
			style = directionalStyle
		}
		graph.Edges = append(graph.Edges, domain.GraphEdge{
			ID:          "if:" + e.ID.String(),
			Source:      source,
			Target:      target,
			Kind:        domain.EdgeKindRelationship,
			Label:       e.Connection,
			Directional: e.IsDirectional(),
			Style:       style,
		})
	}

	b.applyLayout(graph)
	return graph
}

// applyLayout asks the layout engine for positions and falls back to the
// circular preset when no engine is wired or the engine fails.
func (b *GraphBuilder) applyLayout(graph *domain.Graph) {
	if b.layout != nil {
		positions, err := b.layout.Layout(graph.Nodes, graph.Edges)
		if err == nil {
			assignPositions(graph, positions)
			return
		}
		b.logger.Warn("layout engine failed, using circular fallback", zap.Error(err))
	}

	positions, _ := CircularLayout{}.Layout(graph.Nodes, graph.Edges)
	assignPositions(graph, positions)
}

func assignPositions(graph *domain.Graph, positions map[string]domain.Position) {
	for i := range graph.Nodes {
		if pos, ok := positions[graph.Nodes[i].ID]; ok {
			p := pos
			graph.Nodes[i].Position = &p
		}
	}
}

// Ring radii for the fallback layout.
const (
	childRingRadius      = 260.0
	grandchildRingRadius = 520.0
)

// CircularLayout is the built-in fallback: the current system sits at the
// origin, children on an inner ring, grandchildren on an outer ring.
type CircularLayout struct{}

// Layout implements ports.LayoutEngine.
func (CircularLayout) Layout(nodes []domain.GraphNode, _ []domain.GraphEdge) (map[string]domain.Position, error) {
	var children, grandchildren []string
	positions := make(map[string]domain.Position, len(nodes))

	for _, n := range nodes {
		switch n.Tier {
		case domain.NodeTierCurrent:
			positions[n.ID] = domain.Position{}
		case domain.NodeTierChild:
			children = append(children, n.ID)
		default:
			grandchildren = append(grandchildren, n.ID)
		}
	}

	placeRing(positions, children, childRingRadius)
	placeRing(positions, grandchildren, grandchildRingRadius)
	return positions, nil
}

func placeRing(positions map[string]domain.Position, ids []string, radius float64) {
	if len(ids) == 0 {
		return
	}
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		angle := step * float64(i)
		positions[id] = domain.Position{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
}
