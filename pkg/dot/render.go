package dot

import (
	"io"
	"maps"
	"slices"
	"strings"
)

// Options suppresses categories of optional attributes during
// rendering. The zero value emits everything.
type Options struct {
	NoNodeLabels bool // omit [label=...] from node lines
	NoEdgeLabels bool // omit [label=...] from edge lines
	NoNodeStyles bool // omit [style=...] from node lines
	NoEdgeStyles bool // omit [style=...] from edge lines
	NoNodeColors bool // omit [color=...] from node lines
	NoEdgeColors bool // omit [color=...] from edge lines
	NoArrows     bool // omit arrowhead/arrowtail blocks from edge lines
}

// DefaultOptions returns the option set that suppresses nothing.
func DefaultOptions() Options { return Options{} }

// Render walks g and writes it to w in DOT syntax with no suppression.
// It is a wrapper around [RenderOpts] with [DefaultOptions].
func Render[N, E any](g Graph[N, E], w io.Writer) error {
	return RenderOpts(g, w, DefaultOptions())
}

const indent = "    "

// RenderOpts walks g and writes it to w in DOT syntax.
//
// Output is one line per unit: the graph header, an optional rankdir
// line, one line per graph attribute, one line per node, one line per
// edge, and the closing brace. Node and edge order follow the slices
// returned by the [GraphWalk]; attribute maps are emitted in sorted key
// order so output is reproducible across runs. Each line is assembled
// in memory and written once; the first write error aborts the render
// and is returned as is, leaving whatever was already written in place.
func RenderOpts[N, E any](g Graph[N, E], w io.Writer, opts Options) error {
	kind := KindDigraph
	if k, ok := any(g).(Kinder); ok {
		kind = k.Kind()
	}

	var line strings.Builder
	line.WriteString(kind.keyword())
	line.WriteByte(' ')
	line.WriteString(g.GraphID().String())
	line.WriteString(" {\n")
	if err := writeLine(w, &line); err != nil {
		return err
	}

	// rankdir only makes sense for digraphs.
	if kind == KindDigraph {
		if rd, ok := any(g).(RankDirer); ok {
			if dir, ok := rd.RankDir(); ok {
				line.WriteString(indent)
				line.WriteString(`rankdir="`)
				line.WriteString(dir.String())
				line.WriteString("\";\n")
				if err := writeLine(w, &line); err != nil {
					return err
				}
			}
		}
	}

	if ga, ok := any(g).(GraphAttrser); ok {
		attrs := ga.GraphAttrs()
		for _, name := range slices.Sorted(maps.Keys(attrs)) {
			line.WriteString(name)
			line.WriteByte('=')
			line.WriteString(attrs[name])
			line.WriteByte('\n')
			if err := writeLine(w, &line); err != nil {
				return err
			}
		}
	}

	for _, n := range g.Nodes() {
		line.WriteString(indent)
		line.WriteString(g.NodeID(n).String())

		if !opts.NoNodeLabels {
			line.WriteString("[label=")
			line.WriteString(nodeLabel(g, n).DotString())
			line.WriteByte(']')
		}

		if style := nodeStyle(g, n); !opts.NoNodeStyles && style != StyleNone {
			line.WriteString(`[style="`)
			line.WriteString(style.String())
			line.WriteString(`"]`)
		}

		if color, ok := nodeColor(g, n); ok && !opts.NoNodeColors {
			line.WriteString("[color=")
			line.WriteString(color.DotString())
			line.WriteByte(']')
		}

		if shape, ok := nodeShape(g, n); ok {
			line.WriteString("[shape=")
			line.WriteString(shape.DotString())
			line.WriteByte(']')
		}

		if na, ok := any(g).(NodeAttrser[N]); ok {
			writeAttrs(&line, na.NodeAttrs(n))
		}

		line.WriteString(";\n")
		if err := writeLine(w, &line); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		sourceID := g.NodeID(g.Source(e))
		targetID := g.NodeID(g.Target(e))

		line.WriteString(indent)
		line.WriteString(sourceID.String())
		line.WriteByte(' ')
		line.WriteString(kind.edgeop())
		line.WriteByte(' ')
		line.WriteString(targetID.String())

		if !opts.NoEdgeLabels {
			line.WriteString("[label=")
			line.WriteString(edgeLabel(g, e).DotString())
			line.WriteByte(']')
		}

		if style := edgeStyle(g, e); !opts.NoEdgeStyles && style != StyleNone {
			line.WriteString(`[style="`)
			line.WriteString(style.String())
			line.WriteString(`"]`)
		}

		if color, ok := edgeColor(g, e); ok && !opts.NoEdgeColors {
			line.WriteString("[color=")
			line.WriteString(color.DotString())
			line.WriteByte(']')
		}

		if start, end := edgeArrows(g, e); !opts.NoArrows && (!start.IsDefault() || !end.IsDefault()) {
			line.WriteByte('[')
			if !end.IsDefault() {
				line.WriteString(`arrowhead="`)
				line.WriteString(end.DotString())
				line.WriteByte('"')
			}
			if !start.IsDefault() {
				line.WriteString(` dir="both" arrowtail="`)
				line.WriteString(start.DotString())
				line.WriteByte('"')
			}
			line.WriteByte(']')
		}

		if ea, ok := any(g).(EdgeAttrser[E]); ok {
			writeAttrs(&line, ea.EdgeAttrs(e))
		}

		line.WriteString(";\n")
		if err := writeLine(w, &line); err != nil {
			return err
		}
	}

	line.WriteString("}\n")
	return writeLine(w, &line)
}

// writeLine flushes the assembled line to the sink and resets the
// builder for the next one.
func writeLine(w io.Writer, line *strings.Builder) error {
	_, err := io.WriteString(w, line.String())
	line.Reset()
	return err
}

// writeAttrs emits one [name=value] block per attribute, in sorted key
// order. Values are taken verbatim; quoting is the capability
// implementer's responsibility.
func writeAttrs(line *strings.Builder, attrs map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		line.WriteByte('[')
		line.WriteString(name)
		line.WriteByte('=')
		line.WriteString(attrs[name])
		line.WriteByte(']')
	}
}

// The helpers below resolve an optional capability or fall back to its
// documented default.

func nodeLabel[N, E any](g Graph[N, E], n N) Label {
	if nl, ok := any(g).(NodeLabeller[N]); ok {
		return nl.NodeLabel(n)
	}
	return Plain(g.NodeID(n).String())
}

func nodeStyle[N, E any](g Graph[N, E], n N) Style {
	if ns, ok := any(g).(NodeStyler[N]); ok {
		return ns.NodeStyle(n)
	}
	return StyleNone
}

func nodeColor[N, E any](g Graph[N, E], n N) (Label, bool) {
	if nc, ok := any(g).(NodeColorer[N]); ok {
		return nc.NodeColor(n)
	}
	return Label{}, false
}

func nodeShape[N, E any](g Graph[N, E], n N) (Label, bool) {
	if ns, ok := any(g).(NodeShaper[N]); ok {
		return ns.NodeShape(n)
	}
	return Label{}, false
}

func edgeLabel[N, E any](g Graph[N, E], e E) Label {
	if el, ok := any(g).(EdgeLabeller[E]); ok {
		return el.EdgeLabel(e)
	}
	return Plain("")
}

func edgeStyle[N, E any](g Graph[N, E], e E) Style {
	if es, ok := any(g).(EdgeStyler[E]); ok {
		return es.EdgeStyle(e)
	}
	return StyleNone
}

func edgeColor[N, E any](g Graph[N, E], e E) (Label, bool) {
	if ec, ok := any(g).(EdgeColorer[E]); ok {
		return ec.EdgeColor(e)
	}
	return Label{}, false
}

func edgeArrows[N, E any](g Graph[N, E], e E) (start, end Arrow) {
	if ea, ok := any(g).(EdgeArrower[E]); ok {
		return ea.EdgeStartArrow(e), ea.EdgeEndArrow(e)
	}
	return Arrow{}, Arrow{}
}
