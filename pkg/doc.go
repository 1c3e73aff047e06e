// Package pkg provides the core libraries for dotwalk graph emission.
//
// # Overview
//
// Dotwalk turns caller-supplied abstract graphs into Graphviz DOT text.
// Instead of copying a graph into a dedicated structure, callers expose
// their own data through small capability interfaces and the renderer
// walks it in place. The pkg directory is organized into four areas:
//
//  1. [dot] - Core types and the DOT emitter (identifiers, labels,
//     styles, arrows, capability interfaces, Render/RenderOpts)
//  2. [graph] - Ready-made mutable graph builder implementing the
//     capability sets
//  3. [gonumgraph] - Adapter exposing gonum directed graphs through
//     the capability sets
//  4. [render] - Rasterization of emitted DOT to SVG/PNG via the
//     embedded Graphviz port
//
// # Quick Start
//
// Adapt an existing structure by implementing the two required
// capability sets:
//
//	type deps struct{ ... }
//
//	func (d *deps) GraphID() dot.ID          { return dot.MustID("deps") }
//	func (d *deps) NodeID(n string) dot.ID   { return dot.MustID(n) }
//	func (d *deps) Nodes() []string          { ... }
//	func (d *deps) Edges() [][2]string       { ... }
//	func (d *deps) Source(e [2]string) string { return e[0] }
//	func (d *deps) Target(e [2]string) string { return e[1] }
//
//	dot.Render[string, [2]string](d, os.Stdout)
//
// Or build a graph imperatively:
//
//	g, _ := graph.New("deps")
//	g.AddNode(graph.Node{ID: "app"})
//	g.AddNode(graph.Node{ID: "lib"})
//	g.AddEdge(graph.Edge{From: "app", To: "lib"})
//	out, _ := g.DOT()
//
// # Main Packages
//
// [dot] - The emitter. Validated identifiers ([dot.NewID]), labels in
// three escaping disciplines ([dot.Plain], [dot.Escaped], [dot.HTML]),
// style and arrow vocabularies, and the capability interfaces the
// renderer discovers by type assertion. Output is deterministic:
// nodes and edges render in walk order, attribute maps in sorted key
// order.
//
// [graph] - A mutable labelled graph keyed by node ID, for callers
// without an existing structure to adapt. Emits in insertion order.
//
// [gonumgraph] - Wraps [gonum.org/v1/gonum/graph.Directed] values,
// forwarding gonum encoding attributes into DOT attributes.
//
// [render] - Turns DOT text into SVG or PNG in process using
// [github.com/goccy/go-graphviz].
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/dot/...    # Specific package
//	go test -run Example     # Examples only
//
// [dot]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/dot
// [graph]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/graph
// [gonumgraph]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/gonumgraph
// [render]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/render
package pkg
