package dot

// Style selects the drawing style for a node or edge, per
// https://graphviz.org/doc/info/attrs.html#k:style. Some styles are
// only meaningful for nodes. StyleNone suppresses the style attribute
// entirely.
type Style int

const (
	StyleNone Style = iota
	StyleSolid
	StyleDashed
	StyleDotted
	StyleBold
	StyleRounded
	StyleDiagonals
	StyleFilled
	StyleStriped
	StyleWedged
)

// String returns the DOT token for the style; empty for StyleNone.
func (s Style) String() string {
	switch s {
	case StyleSolid:
		return "solid"
	case StyleDashed:
		return "dashed"
	case StyleDotted:
		return "dotted"
	case StyleBold:
		return "bold"
	case StyleRounded:
		return "rounded"
	case StyleDiagonals:
		return "diagonals"
	case StyleFilled:
		return "filled"
	case StyleStriped:
		return "striped"
	case StyleWedged:
		return "wedged"
	default:
		return ""
	}
}

// RankDir is the direction a directed graph is drawn, one rank at a
// time. See https://graphviz.org/docs/attr-types/rankdir.
type RankDir int

const (
	RankDirTopBottom RankDir = iota
	RankDirLeftRight
	RankDirBottomTop
	RankDirRightLeft
)

// String returns the two-letter DOT token for the direction.
func (d RankDir) String() string {
	switch d {
	case RankDirLeftRight:
		return "LR"
	case RankDirBottomTop:
		return "BT"
	case RankDirRightLeft:
		return "RL"
	default:
		return "TB"
	}
}

// Kind determines whether the graph is emitted as a digraph or an
// undirected graph. It selects the introducing keyword and the edge
// operator, and only digraphs may carry a rankdir attribute.
type Kind int

const (
	KindDigraph Kind = iota
	KindGraph
)

// keyword is the token that introduces the graph.
func (k Kind) keyword() string {
	if k == KindGraph {
		return "graph"
	}
	return "digraph"
}

// edgeop is the edge operator for this graph kind.
func (k Kind) edgeop() string {
	if k == KindGraph {
		return "--"
	}
	return "->"
}
