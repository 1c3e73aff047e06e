package dot

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type labelKind int

const (
	labelUnset labelKind = iota // behaves like an empty Plain label
	labelPlain
	labelEscaped
	labelHTML
)

// Label is the text drawn for a node or edge, tagged with one of three
// escaping disciplines:
//
//   - [Plain]: text preserved as is. Backslashes are escaped and appear
//     literally in the rendered label.
//   - [Escaped]: text in Graphviz escString syntax
//     (https://graphviz.org/docs/attr-types/escString). Backslashes are
//     not escaped; they introduce escape sequences such as \n (centered
//     line break), \l (left-justified), and \r (right-justified).
//   - [HTML]: a Graphviz HTML string, printed exactly as given between
//     < and >. No escaping is performed; the caller is responsible for
//     well-formed markup.
//
// The zero value renders as an empty Plain label.
type Label struct {
	kind labelKind
	text string
}

// Plain returns a label whose text is preserved as is.
func Plain(s string) Label { return Label{kind: labelPlain, text: s} }

// Escaped returns a label whose text is already in escString syntax.
func Escaped(s string) Label { return Label{kind: labelEscaped, text: s} }

// HTML returns an HTML string label. The text is emitted unescaped.
func HTML(s string) Label { return Label{kind: labelHTML, text: s} }

// IsZero reports whether l is the zero Label.
// Builder packages use this to tell "no label set" apart from an
// intentionally empty [Plain] label.
func (l Label) IsZero() bool { return l == Label{} }

// DotString renders the label as it appears in a .dot file, including
// the quote or angle-bracket delimiters.
func (l Label) DotString() string {
	switch l.kind {
	case labelEscaped:
		return `"` + escapeText(l.text, false) + `"`
	case labelHTML:
		return "<" + l.text + ">"
	default:
		return `"` + escapeText(l.text, true) + `"`
	}
}

// preEscaped decomposes the label into text suitable for building an
// Escaped label with identical rendering: for every label l,
// l.DotString() == Escaped(l.preEscaped()).DotString().
func (l Label) preEscaped() string {
	switch l.kind {
	case labelEscaped, labelHTML:
		return l.text
	default:
		// A Plain label without backslashes renders identically under
		// both disciplines, so skip the escaping pass.
		if strings.ContainsRune(l.text, '\\') {
			return escapeText(l.text, true)
		}
		return l.text
	}
}

// StackAbove places l on a line above lower, separated by a blank line.
// The result is an Escaped label.
func (l Label) StackAbove(lower Label) Label {
	return Escaped(l.preEscaped() + `\n\n` + lower.preEscaped())
}

// StackBelow places l on a line below upper, separated by a blank line.
// The result is an Escaped label.
func (l Label) StackBelow(upper Label) Label {
	return upper.StackAbove(l)
}

// EscapeHTML escapes text for inclusion in an [HTML] label.
func EscapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// escapeText runs every rune through the default escape rule. When
// escapeBackslash is false (the escString discipline) backslashes are
// passed through so Graphviz can interpret the sequences they start.
func escapeText(s string, escapeBackslash bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\\' && !escapeBackslash {
			b.WriteByte('\\')
			continue
		}
		escapeRune(&b, r)
	}
	return b.String()
}

// escapeRune writes the canonical escape representation of r. ASCII,
// control, and whitespace runes are escaped; everything else passes
// through unchanged, so non-ASCII label text keeps its bytes.
func escapeRune(b *strings.Builder, r rune) {
	switch r {
	case '\\':
		b.WriteString(`\\`)
	case '"':
		b.WriteString(`\"`)
	case '\'':
		b.WriteString(`\'`)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	default:
		switch {
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(b, `\u{%x}`, r)
		case r < utf8.RuneSelf:
			b.WriteByte(byte(r))
		case unicode.IsControl(r) || unicode.IsSpace(r):
			fmt.Fprintf(b, `\u{%x}`, r)
		default:
			b.WriteRune(r)
		}
	}
}
