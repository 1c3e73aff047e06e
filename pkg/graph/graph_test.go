package graph

import (
	"errors"
	"testing"

	"github.com/matzehuels/dotwalk/pkg/dot"
)

func TestNewRejectsInvalidName(t *testing.T) {
	if _, err := New("not a name"); !errors.Is(err, dot.ErrInvalidID) {
		t.Errorf("New error = %v, want ErrInvalidID", err)
	}
	if _, err := New(""); !errors.Is(err, dot.ErrInvalidID) {
		t.Errorf("New(\"\") error = %v, want ErrInvalidID", err)
	}
}

func TestAddNode(t *testing.T) {
	g, err := New("g")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("duplicate AddNode error = %v, want ErrDuplicateNode", err)
	}
	if err := g.AddNode(Node{ID: "9lives"}); !errors.Is(err, dot.ErrInvalidID) {
		t.Errorf("invalid AddNode error = %v, want ErrInvalidID", err)
	}
	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount() = %d, want 1", got)
	}
}

func TestAddEdge(t *testing.T) {
	g, _ := New("g")
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	if err := g.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(Edge{From: "x", To: "b"}); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("unknown source error = %v, want ErrUnknownSource", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("unknown target error = %v, want ErrUnknownTarget", err)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
}

func TestNodeLookup(t *testing.T) {
	g, _ := New("g")
	_ = g.AddNode(Node{ID: "a", Color: "red"})

	n, ok := g.Node("a")
	if !ok || n.Color != "red" {
		t.Fatalf("Node(a) = %+v, %v", n, ok)
	}
	if _, ok := g.Node("missing"); ok {
		t.Error("Node(missing) reported ok")
	}
}

func TestNodesInsertionOrder(t *testing.T) {
	g, _ := New("g")
	for _, id := range []string{"z", "m", "a"} {
		_ = g.AddNode(Node{ID: id})
	}

	var got []string
	for _, n := range g.Nodes() {
		got = append(got, n.ID)
	}
	want := []string{"z", "m", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Nodes() order = %v, want %v", got, want)
		}
	}
}

func TestDOT(t *testing.T) {
	g, _ := New("deps")
	_ = g.AddNode(Node{ID: "app", Label: dot.Plain("application")})
	_ = g.AddNode(Node{ID: "lib", Style: dot.StyleDashed, Color: "gray", Shape: "box"})
	_ = g.AddEdge(Edge{From: "app", To: "lib", Label: dot.Plain("imports"), EndArrow: dot.NewArrow(dot.Vee())})

	out, err := g.DOT()
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}
	want := `digraph deps {
    app[label="application"];
    lib[label="lib"][style="dashed"][color="gray"][shape="box"];
    app -> lib[label="imports"][arrowhead="vee"];
}
`
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestDOTGraphLevelSettings(t *testing.T) {
	g, _ := New("g")
	g.SetRankDir(dot.RankDirLeftRight)
	g.SetAttr("ranksep", "0.7")
	_ = g.AddNode(Node{ID: "a"})

	out, err := g.DOT()
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}
	want := `digraph g {
    rankdir="LR";
ranksep=0.7
    a[label="a"];
}
`
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestDOTUndirected(t *testing.T) {
	g, _ := New("g")
	g.SetKind(dot.KindGraph)
	g.SetRankDir(dot.RankDirLeftRight) // ignored for undirected graphs
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})

	out, err := g.DOT()
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}
	want := `graph g {
    a[label="a"];
    b[label="b"];
    a -- b[label=""];
}
`
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestDOTCustomAttrs(t *testing.T) {
	g, _ := New("g")
	_ = g.AddNode(Node{ID: "a", Attrs: map[string]string{"fontsize": "18"}})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "b", Attrs: map[string]string{"weight": "3"}})

	out, err := g.DOT()
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}
	want := `digraph g {
    a[label="a"][fontsize=18];
    b[label="b"];
    a -> b[label=""][weight=3];
}
`
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestDOTStableAcrossRenders(t *testing.T) {
	g, _ := New("g")
	for _, id := range []string{"c", "a", "b"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "c", To: "a"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})

	first, err := g.DOT()
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}
	for i := 0; i < 10; i++ {
		out, err := g.DOT()
		if err != nil {
			t.Fatalf("DOT: %v", err)
		}
		if string(out) != string(first) {
			t.Fatalf("render %d differs:\n%s\nvs:\n%s", i, out, first)
		}
	}
}
