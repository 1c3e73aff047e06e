package dot_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/dotwalk/pkg/dot"
)

// edgeList is the smallest useful graph source: nodes are ints, edges
// are index pairs.
type edgeList struct {
	name  string
	nodes int
	edges [][2]int
}

func (g *edgeList) GraphID() dot.ID     { return dot.MustID(g.name) }
func (g *edgeList) NodeID(n int) dot.ID { return dot.MustID(fmt.Sprintf("N%d", n)) }
func (g *edgeList) Edges() [][2]int     { return g.edges }
func (g *edgeList) Source(e [2]int) int { return e[0] }
func (g *edgeList) Target(e [2]int) int { return e[1] }

func (g *edgeList) Nodes() []int {
	nodes := make([]int, g.nodes)
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

func ExampleRender() {
	// A diamond-shaped dependency graph.
	g := &edgeList{
		name:  "diamond",
		nodes: 4,
		edges: [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}},
	}

	_ = dot.Render[int, [2]int](g, os.Stdout)
	// Output:
	// digraph diamond {
	//     N0[label="N0"];
	//     N1[label="N1"];
	//     N2[label="N2"];
	//     N3[label="N3"];
	//     N0 -> N1[label=""];
	//     N0 -> N2[label=""];
	//     N1 -> N3[label=""];
	//     N2 -> N3[label=""];
	// }
}

func ExampleLabel_StackAbove() {
	// Stack a type annotation under a variable name.
	name := dot.Plain("count")
	typ := dot.Plain("uint64")

	fmt.Println(name.StackAbove(typ).DotString())
	// Output:
	// "count\n\nuint64"
}

func ExampleEscaped() {
	// Escaped labels pass backslash sequences straight through to
	// Graphviz, here the left-justified line break \l.
	l := dot.Escaped(`first line\lsecond line\l`)

	fmt.Println(l.DotString())
	// Output:
	// "first line\lsecond line\l"
}

func ExampleArrowShape_WithFill() {
	open := dot.Diamond().WithFill(dot.FillOpen)
	left := open.WithSide(dot.SideLeft)

	fmt.Println(dot.NewArrow(open).DotString())
	fmt.Println(dot.NewArrow(left).DotString())
	// Output:
	// odiamond
	// oldiamond
}
