package dot

import "errors"

// ErrInvalidID is returned by [NewID] when the name does not conform to
// the DOT identifier subset accepted by this package. Valid names match
// [A-Za-z_][A-Za-z_0-9]* - non-empty, starting with a letter or
// underscore, followed by letters, digits, or underscores.
var ErrInvalidID = errors.New("invalid DOT identifier")

// ID is a validated Graphviz identifier, used both as the name of a
// graph and as the name of every node. It is a strict subset of the ID
// production in the DOT grammar: quoted strings, numerals, and HTML
// strings are deliberately not accepted so that emitted names never
// need their own escaping.
//
// The zero value is the empty identifier and renders as an empty
// string; use [NewID] or [MustID] to construct a usable ID.
type ID struct {
	name string
}

// NewID validates name and returns it as an ID.
// No normalization or trimming is performed - the name is taken exactly
// as given or rejected with [ErrInvalidID]. The error carries no detail
// about which character failed.
func NewID(name string) (ID, error) {
	if name == "" {
		return ID{}, ErrInvalidID
	}
	for i, r := range name {
		if isIDLetter(r) || (i > 0 && r >= '0' && r <= '9') {
			continue
		}
		return ID{}, ErrInvalidID
	}
	return ID{name: name}, nil
}

// MustID is like [NewID] but panics if the name is invalid.
// It simplifies initialization with identifiers known to be valid:
//
//	var root = dot.MustID("cluster_root")
func MustID(name string) ID {
	id, err := NewID(name)
	if err != nil {
		panic(`dot: MustID(` + name + `): invalid identifier`)
	}
	return id
}

// String returns the identifier text.
func (id ID) String() string { return id.name }

func isIDLetter(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
