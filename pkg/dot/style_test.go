package dot

import "testing"

func TestStyleString(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{StyleNone, ""},
		{StyleSolid, "solid"},
		{StyleDashed, "dashed"},
		{StyleDotted, "dotted"},
		{StyleBold, "bold"},
		{StyleRounded, "rounded"},
		{StyleDiagonals, "diagonals"},
		{StyleFilled, "filled"},
		{StyleStriped, "striped"},
		{StyleWedged, "wedged"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("Style(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestRankDirString(t *testing.T) {
	tests := []struct {
		dir  RankDir
		want string
	}{
		{RankDirTopBottom, "TB"},
		{RankDirLeftRight, "LR"},
		{RankDirBottomTop, "BT"},
		{RankDirRightLeft, "RL"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("RankDir(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestKindTokens(t *testing.T) {
	if got := KindDigraph.keyword(); got != "digraph" {
		t.Errorf("KindDigraph.keyword() = %q", got)
	}
	if got := KindGraph.keyword(); got != "graph" {
		t.Errorf("KindGraph.keyword() = %q", got)
	}
	if got := KindDigraph.edgeop(); got != "->" {
		t.Errorf("KindDigraph.edgeop() = %q", got)
	}
	if got := KindGraph.edgeop(); got != "--" {
		t.Errorf("KindGraph.edgeop() = %q", got)
	}
}
