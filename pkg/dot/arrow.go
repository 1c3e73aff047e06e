package dot

import "strings"

// Fill determines whether an arrow shape is drawn open or filled.
// The zero value is FillFilled, the Graphviz default.
type Fill int

const (
	FillFilled Fill = iota
	FillOpen
)

// String returns the DOT modifier prefix: "o" for open, empty for filled.
func (f Fill) String() string {
	if f == FillOpen {
		return "o"
	}
	return ""
}

// Side clips an arrow shape to one side of the edge. SideLeft keeps
// only the left half visible. The zero value is SideBoth (no clipping).
type Side int

const (
	SideBoth Side = iota
	SideLeft
	SideRight
)

// String returns the DOT modifier prefix: "l", "r", or empty for both.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "l"
	case SideRight:
		return "r"
	default:
		return ""
	}
}

type shapeKind int

const (
	shapeNone shapeKind = iota
	shapeNormal
	shapeBox
	shapeCrow
	shapeCurve
	shapeICurve
	shapeDiamond
	shapeDot
	shapeInv
	shapeTee
	shapeVee
)

// ArrowShape is one primitive of an arrowhead, as defined in
// https://graphviz.org/doc/info/arrows.html. Shapes are built with the
// constructor for the base shape and refined with [ArrowShape.WithFill]
// and [ArrowShape.WithSide]:
//
//	dot.Crow().WithSide(dot.SideLeft)   // "lcrow"
//	dot.Box().WithFill(dot.FillOpen)    // "obox"
//
// Not every shape carries every modifier: crow, curve, tee, and vee
// support only clipping, dot supports only fill, and none supports
// neither. Modifiers a shape does not carry are ignored when encoding.
type ArrowShape struct {
	kind shapeKind
	fill Fill
	side Side
}

// None returns the shape that displays no arrow at all.
func None() ArrowShape { return ArrowShape{kind: shapeNone} }

// Normal returns the regular filled triangle arrow.
// Despite the official documentation, normal supports both fill and
// side clipping.
func Normal() ArrowShape { return ArrowShape{kind: shapeNormal} }

// Box returns an arrow ending in a filled square.
func Box() ArrowShape { return ArrowShape{kind: shapeBox} }

// Crow returns an arrow ending in three branching lines (crow's foot).
func Crow() ArrowShape { return ArrowShape{kind: shapeCrow} }

// Curve returns an arrow ending in a curve.
func Curve() ArrowShape { return ArrowShape{kind: shapeCurve} }

// ICurve returns an arrow ending in an inverted curve.
func ICurve() ArrowShape { return ArrowShape{kind: shapeICurve} }

// Diamond returns an arrow ending in a filled diamond.
func Diamond() ArrowShape { return ArrowShape{kind: shapeDiamond} }

// Dot returns an arrow ending in a filled circle.
func Dot() ArrowShape { return ArrowShape{kind: shapeDot} }

// Inv returns an arrow ending in a filled inverted triangle.
func Inv() ArrowShape { return ArrowShape{kind: shapeInv} }

// Tee returns a T-shaped arrow.
func Tee() ArrowShape { return ArrowShape{kind: shapeTee} }

// Vee returns a V-shaped arrow.
func Vee() ArrowShape { return ArrowShape{kind: shapeVee} }

// WithFill returns a copy of the shape with the given fill modifier.
func (s ArrowShape) WithFill(f Fill) ArrowShape {
	s.fill = f
	return s
}

// WithSide returns a copy of the shape clipped to the given side.
func (s ArrowShape) WithSide(sd Side) ArrowShape {
	s.side = sd
	return s
}

// DotString encodes the shape as it appears inside an arrowhead or
// arrowtail attribute: modifier prefixes first, then the shape name.
func (s ArrowShape) DotString() string {
	var b strings.Builder
	switch s.kind {
	case shapeNormal, shapeBox, shapeICurve, shapeDiamond, shapeInv:
		b.WriteString(s.fill.String())
		if s.side != SideBoth {
			b.WriteString(s.side.String())
		}
	case shapeCrow, shapeCurve, shapeTee, shapeVee:
		if s.side != SideBoth {
			b.WriteString(s.side.String())
		}
	case shapeDot:
		b.WriteString(s.fill.String())
	}
	b.WriteString(s.name())
	return b.String()
}

func (s ArrowShape) name() string {
	switch s.kind {
	case shapeNormal:
		return "normal"
	case shapeBox:
		return "box"
	case shapeCrow:
		return "crow"
	case shapeCurve:
		return "curve"
	case shapeICurve:
		return "icurve"
	case shapeDiamond:
		return "diamond"
	case shapeDot:
		return "dot"
	case shapeInv:
		return "inv"
	case shapeTee:
		return "tee"
	case shapeVee:
		return "vee"
	default:
		return "none"
	}
}

// Arrow describes the decoration of one edge endpoint as an ordered
// sequence of shapes. The zero value is the default arrow: it requests
// the endpoint's default arrowhead and emits no attribute at all. That
// is distinct from NewArrow(None()), which explicitly draws no arrow.
type Arrow struct {
	shapes []ArrowShape
}

// NewArrow returns an arrow drawing the given shapes in order, closest
// to the node first. With no arguments it returns the default arrow.
func NewArrow(shapes ...ArrowShape) Arrow {
	return Arrow{shapes: shapes}
}

// IsDefault reports whether this is the default arrow, for which no
// arrowhead or arrowtail attribute is emitted.
func (a Arrow) IsDefault() bool { return len(a.shapes) == 0 }

// DotString encodes the arrow as the value of an arrowhead or
// arrowtail attribute: the shape encodings concatenated without
// separator.
func (a Arrow) DotString() string {
	var b strings.Builder
	for _, s := range a.shapes {
		b.WriteString(s.DotString())
	}
	return b.String()
}
