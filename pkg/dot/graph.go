package dot

// Labeller supplies DOT identifiers for a graph and its nodes.
// Implementations must return the same identifier for the same node
// every time, and identifiers must be unique per node; the renderer
// does not verify either.
//
// Only the identifiers are required. Presentational attributes - labels,
// styles, colors, shapes, arrows, custom attributes, graph kind, and
// rank direction - are supplied by additionally implementing the
// optional interfaces ([NodeLabeller], [EdgeStyler], [Kinder], ...).
// The renderer discovers them by type assertion and falls back to the
// documented default when one is absent, so a minimal implementation
// stays minimal.
type Labeller[N any] interface {
	// GraphID returns the identifier naming the graph.
	GraphID() ID

	// NodeID maps a node to its unique identifier.
	NodeID(n N) ID
}

// GraphWalk is an abstraction over a graph made up of node handles N
// and edge handles E, where each edge can be mapped to its endpoints.
//
// The slices returned by Nodes and Edges define the emission order of
// the node and edge lines. They are read, never mutated; implementers
// may return freshly built slices or views into internal storage.
// Duplicate entries are emitted once per occurrence.
type GraphWalk[N, E any] interface {
	// Nodes returns all nodes in the graph.
	Nodes() []N
	// Edges returns all edges in the graph.
	Edges() []E
	// Source returns the source node of an edge.
	Source(e E) N
	// Target returns the target node of an edge.
	Target(e E) N
}

// Graph is the union of the two capability sets a caller hands to
// [Render]: naming ([Labeller]) and structure ([GraphWalk]).
type Graph[N, E any] interface {
	Labeller[N]
	GraphWalk[N, E]
}

// Kinder is implemented by graphs that are not digraphs, or that want
// to state their kind explicitly. Default: [KindDigraph].
type Kinder interface {
	Kind() Kind
}

// RankDirer is implemented by graphs with an explicit rank direction.
// The attribute is only emitted for digraphs. Default: unset, letting
// Graphviz pick (generally top to bottom).
type RankDirer interface {
	RankDir() (RankDir, bool)
}

// GraphAttrser is implemented by graphs carrying graph-level
// attributes. Values are emitted verbatim; any quoting is the
// implementer's responsibility. Default: none.
type GraphAttrser interface {
	GraphAttrs() map[string]string
}

// NodeLabeller is implemented by graphs whose nodes have label text.
// Labels need not be unique and may be empty.
// Default: the node identifier's text as a [Plain] label.
type NodeLabeller[N any] interface {
	NodeLabel(n N) Label
}

// NodeShaper is implemented by graphs whose nodes override the default
// shape with one of the Graphviz shape names
// (https://graphviz.org/doc/info/shapes.html). Default: no shape
// attribute.
type NodeShaper[N any] interface {
	NodeShape(n N) (Label, bool)
}

// NodeStyler is implemented by graphs whose nodes carry a [Style].
// Default: [StyleNone].
type NodeStyler[N any] interface {
	NodeStyle(n N) Style
}

// NodeColorer is implemented by graphs whose nodes carry one of the
// Graphviz color names. Default: no color attribute.
type NodeColorer[N any] interface {
	NodeColor(n N) (Label, bool)
}

// NodeAttrser is implemented by graphs whose nodes carry arbitrary
// extra attributes. Values are emitted verbatim. Default: none.
type NodeAttrser[N any] interface {
	NodeAttrs(n N) map[string]string
}

// EdgeLabeller is implemented by graphs whose edges have label text.
// Default: the empty string.
type EdgeLabeller[E any] interface {
	EdgeLabel(e E) Label
}

// EdgeStyler is implemented by graphs whose edges carry a [Style].
// Default: [StyleNone].
type EdgeStyler[E any] interface {
	EdgeStyle(e E) Style
}

// EdgeColorer is implemented by graphs whose edges carry a color name.
// Default: no color attribute.
type EdgeColorer[E any] interface {
	EdgeColor(e E) (Label, bool)
}

// EdgeArrower is implemented by graphs whose edges decorate their
// endpoints. The end arrow is drawn at the target, the start arrow at
// the source. Default: the default [Arrow] on both ends, emitting no
// arrow attributes.
type EdgeArrower[E any] interface {
	EdgeStartArrow(e E) Arrow
	EdgeEndArrow(e E) Arrow
}

// EdgeAttrser is implemented by graphs whose edges carry arbitrary
// extra attributes. Values are emitted verbatim. Default: none.
type EdgeAttrser[E any] interface {
	EdgeAttrs(e E) map[string]string
}
