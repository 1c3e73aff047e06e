// Package gonumgraph exposes gonum directed graphs through the dot
// capability sets, so any edge-enumerable [graph.Directed] value can
// be rendered without writing an adapter by hand.
//
// Node identifiers are derived from gonum node IDs ("N3", or "N_3"
// for negative IDs). Nodes that implement [encoding.Attributer] feed
// their "label" attribute into the node label and the rest into
// custom attributes; the same applies to edges.
package gonumgraph

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"

	"github.com/matzehuels/dotwalk/pkg/dot"
)

// Directed is the graph contract the wrapper needs: a gonum directed
// graph that can also enumerate its edges. The concrete graphs in
// gonum's simple and multi packages all satisfy it.
type Directed interface {
	graph.Directed
	Edges() graph.Edges
}

// Wrapper adapts a gonum directed graph to the dot capability sets.
// It holds a reference to the wrapped graph; mutations show up on the
// next render.
type Wrapper struct {
	id dot.ID
	g  Directed
}

// Wrap adapts g under the given graph name. The name must be a valid
// DOT identifier.
func Wrap(g Directed, name string) (*Wrapper, error) {
	id, err := dot.NewID(name)
	if err != nil {
		return nil, fmt.Errorf("graph name %q: %w", name, err)
	}
	return &Wrapper{id: id, g: g}, nil
}

// DOT renders the wrapped graph to DOT text.
func (w *Wrapper) DOT() ([]byte, error) {
	var buf bytes.Buffer
	if err := dot.Render[graph.Node, graph.Edge](w, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GraphID returns the graph name.
func (w *Wrapper) GraphID() dot.ID { return w.id }

// NodeID derives a DOT identifier from the gonum node ID.
func (w *Wrapper) NodeID(n graph.Node) dot.ID {
	if id := n.ID(); id < 0 {
		return dot.MustID(fmt.Sprintf("N_%d", -id))
	}
	return dot.MustID(fmt.Sprintf("N%d", n.ID()))
}

// Nodes returns the wrapped graph's nodes sorted by gonum ID, so
// output is reproducible regardless of gonum's iteration order.
func (w *Wrapper) Nodes() []graph.Node {
	nodes := graph.NodesOf(w.g.Nodes())
	slices.SortFunc(nodes, func(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) })
	return nodes
}

// Edges returns the wrapped graph's edges ordered by (from, to).
func (w *Wrapper) Edges() []graph.Edge {
	edges := graph.EdgesOf(w.g.Edges())
	slices.SortFunc(edges, func(a, b graph.Edge) int {
		if c := cmp.Compare(a.From().ID(), b.From().ID()); c != 0 {
			return c
		}
		return cmp.Compare(a.To().ID(), b.To().ID())
	})
	return edges
}

// Source returns the node the edge leaves from.
func (w *Wrapper) Source(e graph.Edge) graph.Node { return e.From() }

// Target returns the node the edge points to.
func (w *Wrapper) Target(e graph.Edge) graph.Node { return e.To() }

// NodeLabel returns the node's "label" attribute if it implements
// [encoding.Attributer], otherwise the derived identifier.
func (w *Wrapper) NodeLabel(n graph.Node) dot.Label {
	if label, ok := attribute(n, "label"); ok {
		return dot.Plain(label)
	}
	return dot.Plain(w.NodeID(n).String())
}

// NodeAttrs forwards the node's encoded attributes, except "label".
func (w *Wrapper) NodeAttrs(n graph.Node) map[string]string {
	return attributes(n)
}

// EdgeLabel returns the edge's "label" attribute if it implements
// [encoding.Attributer], otherwise an empty label.
func (w *Wrapper) EdgeLabel(e graph.Edge) dot.Label {
	if label, ok := attribute(e, "label"); ok {
		return dot.Plain(label)
	}
	return dot.Plain("")
}

// EdgeAttrs forwards the edge's encoded attributes, except "label".
func (w *Wrapper) EdgeAttrs(e graph.Edge) map[string]string {
	return attributes(e)
}

// attribute looks up a single encoded attribute by key.
func attribute(v any, key string) (string, bool) {
	a, ok := v.(encoding.Attributer)
	if !ok {
		return "", false
	}
	for _, attr := range a.Attributes() {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// attributes collects encoded attributes into a map, dropping "label"
// which is carried by the label capability instead.
func attributes(v any) map[string]string {
	a, ok := v.(encoding.Attributer)
	if !ok {
		return nil
	}
	var attrs map[string]string
	for _, attr := range a.Attributes() {
		if attr.Key == "label" {
			continue
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[attr.Key] = attr.Value
	}
	return attrs
}

var (
	_ dot.Graph[graph.Node, graph.Edge] = (*Wrapper)(nil)
	_ dot.NodeLabeller[graph.Node]      = (*Wrapper)(nil)
	_ dot.NodeAttrser[graph.Node]       = (*Wrapper)(nil)
	_ dot.EdgeLabeller[graph.Edge]      = (*Wrapper)(nil)
	_ dot.EdgeAttrser[graph.Edge]       = (*Wrapper)(nil)
)
