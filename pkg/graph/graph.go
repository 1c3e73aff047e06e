// Package graph provides a mutable labelled graph that implements the
// dot capability sets, for callers who want to build a diagram
// imperatively instead of adapting an existing data structure.
package graph

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/dotwalk/pkg/dot"
)

var (
	// ErrDuplicateNode is returned by [Graph.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique.
	ErrDuplicateNode = errors.New("duplicate node ID")

	// ErrUnknownSource is returned by [Graph.AddEdge] when the From
	// node does not exist in the graph.
	ErrUnknownSource = errors.New("unknown source node")

	// ErrUnknownTarget is returned by [Graph.AddEdge] when the To
	// node does not exist in the graph.
	ErrUnknownTarget = errors.New("unknown target node")
)

// Node is a vertex with optional presentation attributes. Zero-value
// fields are omitted from the output: a zero Label falls back to the
// node ID, empty Color and Shape emit nothing.
type Node struct {
	ID    string
	Label dot.Label
	Style dot.Style
	Color string
	Shape string
	Attrs map[string]string
}

// Edge is a directed (or, in an undirected graph, unordered)
// connection between two nodes identified by ID. As with [Node],
// zero-value attribute fields are omitted; default arrows emit no
// arrowhead block.
type Edge struct {
	From       string
	To         string
	Label      dot.Label
	Style      dot.Style
	Color      string
	StartArrow dot.Arrow
	EndArrow   dot.Arrow
	Attrs      map[string]string
}

// Graph is a mutable labelled graph keyed by node ID. Nodes and edges
// are emitted in insertion order, so the same build sequence always
// produces the same DOT text.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	id      dot.ID
	kind    dot.Kind
	rankdir dot.RankDir
	hasDir  bool
	attrs   map[string]string
	nodes   map[string]*Node
	order   []string
	edges   []Edge
}

// New creates an empty directed graph with the given name.
// The name must be a valid DOT identifier.
func New(name string) (*Graph, error) {
	id, err := dot.NewID(name)
	if err != nil {
		return nil, fmt.Errorf("graph name %q: %w", name, err)
	}
	return &Graph{
		id:    id,
		nodes: make(map[string]*Node),
	}, nil
}

// SetKind switches the graph between digraph and undirected graph
// output. New graphs are digraphs.
func (g *Graph) SetKind(kind dot.Kind) { g.kind = kind }

// SetRankDir sets the layout direction emitted for digraphs.
// Undirected graphs ignore it.
func (g *Graph) SetRankDir(dir dot.RankDir) {
	g.rankdir = dir
	g.hasDir = true
}

// SetAttr sets a graph-level attribute. The value is emitted verbatim,
// so values that need quoting must be passed already quoted.
func (g *Graph) SetAttr(name, value string) {
	if g.attrs == nil {
		g.attrs = make(map[string]string)
	}
	g.attrs[name] = value
}

// AddNode adds a node to the graph. The node ID must be a valid DOT
// identifier and unique within the graph.
func (g *Graph) AddNode(n Node) error {
	if _, err := dot.NewID(n.ID); err != nil {
		return fmt.Errorf("node %q: %w", n.ID, err)
	}
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNode)
	}
	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	return nil
}

// AddEdge adds an edge between two existing nodes. Multiple edges
// between the same pair are allowed.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownSource)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownTarget)
	}
	g.edges = append(g.edges, e)
	return nil
}

// Node returns the node with the given ID and true, or nil and false
// if not found. The pointer refers to the stored node, so attribute
// changes take effect on the next render.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// DOT renders the graph to DOT text.
func (g *Graph) DOT() ([]byte, error) {
	var buf bytes.Buffer
	if err := dot.Render[*Node, Edge](g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// The methods below implement the dot capability sets.

// GraphID returns the graph name.
func (g *Graph) GraphID() dot.ID { return g.id }

// NodeID returns the identifier of n. IDs are validated on AddNode.
func (g *Graph) NodeID(n *Node) dot.ID { return dot.MustID(n.ID) }

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Source returns the node the edge leaves from.
func (g *Graph) Source(e Edge) *Node { return g.nodes[e.From] }

// Target returns the node the edge points to.
func (g *Graph) Target(e Edge) *Node { return g.nodes[e.To] }

// Kind reports whether the graph renders as a digraph or an
// undirected graph.
func (g *Graph) Kind() dot.Kind { return g.kind }

// RankDir returns the layout direction set via SetRankDir.
func (g *Graph) RankDir() (dot.RankDir, bool) { return g.rankdir, g.hasDir }

// GraphAttrs returns the graph-level attributes set via SetAttr.
func (g *Graph) GraphAttrs() map[string]string { return g.attrs }

// NodeLabel returns the node's label, falling back to its ID.
func (g *Graph) NodeLabel(n *Node) dot.Label {
	if n.Label.IsZero() {
		return dot.Plain(n.ID)
	}
	return n.Label
}

// NodeStyle returns the node's style.
func (g *Graph) NodeStyle(n *Node) dot.Style { return n.Style }

// NodeColor returns the node's color, if set.
func (g *Graph) NodeColor(n *Node) (dot.Label, bool) {
	if n.Color == "" {
		return dot.Label{}, false
	}
	return dot.Plain(n.Color), true
}

// NodeShape returns the node's shape, if set.
func (g *Graph) NodeShape(n *Node) (dot.Label, bool) {
	if n.Shape == "" {
		return dot.Label{}, false
	}
	return dot.Plain(n.Shape), true
}

// NodeAttrs returns the node's custom attributes.
func (g *Graph) NodeAttrs(n *Node) map[string]string { return n.Attrs }

// EdgeLabel returns the edge's label.
func (g *Graph) EdgeLabel(e Edge) dot.Label { return e.Label }

// EdgeStyle returns the edge's style.
func (g *Graph) EdgeStyle(e Edge) dot.Style { return e.Style }

// EdgeColor returns the edge's color, if set.
func (g *Graph) EdgeColor(e Edge) (dot.Label, bool) {
	if e.Color == "" {
		return dot.Label{}, false
	}
	return dot.Plain(e.Color), true
}

// EdgeStartArrow returns the arrow drawn at the edge's source end.
func (g *Graph) EdgeStartArrow(e Edge) dot.Arrow { return e.StartArrow }

// EdgeEndArrow returns the arrow drawn at the edge's target end.
func (g *Graph) EdgeEndArrow(e Edge) dot.Arrow { return e.EndArrow }

// EdgeAttrs returns the edge's custom attributes.
func (g *Graph) EdgeAttrs(e Edge) map[string]string { return e.Attrs }

var (
	_ dot.Graph[*Node, Edge]  = (*Graph)(nil)
	_ dot.Kinder              = (*Graph)(nil)
	_ dot.RankDirer           = (*Graph)(nil)
	_ dot.GraphAttrser        = (*Graph)(nil)
	_ dot.NodeLabeller[*Node] = (*Graph)(nil)
	_ dot.NodeStyler[*Node]   = (*Graph)(nil)
	_ dot.NodeColorer[*Node]  = (*Graph)(nil)
	_ dot.NodeShaper[*Node]   = (*Graph)(nil)
	_ dot.NodeAttrser[*Node]  = (*Graph)(nil)
	_ dot.EdgeLabeller[Edge]  = (*Graph)(nil)
	_ dot.EdgeStyler[Edge]    = (*Graph)(nil)
	_ dot.EdgeColorer[Edge]   = (*Graph)(nil)
	_ dot.EdgeArrower[Edge]   = (*Graph)(nil)
	_ dot.EdgeAttrser[Edge]   = (*Graph)(nil)
)
