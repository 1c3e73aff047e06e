// Package dot generates Graphviz DOT text by walking a caller-supplied
// labelled graph.
//
// # Overview
//
// Rather than imposing a graph data structure, the package defines two
// capability sets that callers implement on their own types before
// handing them to [Render]:
//
//   - [Labeller]: stable DOT identifiers for the graph and its nodes
//   - [GraphWalk]: the node set, the edge set, and edge endpoints
//
// Everything else - labels, styles, colors, shapes, arrowheads, custom
// attributes, graph kind, rank direction - is optional. A graph opts in
// by implementing the matching extension interface ([NodeLabeller],
// [EdgeArrower], [Kinder], ...); the renderer falls back to a
// documented default for each one it does not find.
//
// The output is a deliberately regular, restricted subset of the DOT
// language (https://graphviz.org/doc/info/lang.html): no clusters,
// subgraphs, ports, or record labels, and nothing is read back. One
// line is written per node and per edge, so the text stays easy to
// diff and post-process before Graphviz lays it out.
//
// # Usage
//
// Implement the two capability sets on a type of your own:
//
//	type intEdges [][2]int
//
//	func (intEdges) GraphID() dot.ID        { return dot.MustID("example") }
//	func (intEdges) NodeID(n int) dot.ID    { return dot.MustID(fmt.Sprintf("N%d", n)) }
//	func (e intEdges) Edges() [][2]int      { return e }
//	func (e intEdges) Nodes() []int         { ... }
//	func (intEdges) Source(e [2]int) int    { return e[0] }
//	func (intEdges) Target(e [2]int) int    { return e[1] }
//
//	err := dot.Render[int, [2]int](g, os.Stdout)
//
// Ready-made implementations live in [pkg/graph] (a mutable builder)
// and [pkg/gonumgraph] (an adapter for gonum directed graphs); the
// emitted text can be rasterized with [pkg/render].
//
// # Determinism
//
// Node and edge lines follow the order of the slices the GraphWalk
// returns. Attribute maps have no inherent order, so the renderer
// emits them sorted by key - a deliberate strengthening over the
// unspecified map order of the classic renderers this package follows,
// chosen so identical graphs always produce identical bytes.
//
// [pkg/graph]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/graph
// [pkg/gonumgraph]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/gonumgraph
// [pkg/render]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/render
package dot
