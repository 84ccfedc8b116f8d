// Package tag maps HTML tag names to stable identifiers and back.
//
// The set of identifiers is closed: names outside of it resolve to
// Undefined. The table is static and safe for concurrent reads.
package tag

// ID identifies a known HTML element or one of the pseudo-tags.
type ID uint16

type entry struct {
	name   string
	symbol string
}

var byName = func() map[string]ID {
	m := make(map[string]ID, numIDs)
	for id := EndOfFile + 1; id < numIDs; id++ {
		m[asciiLower(table[id].name)] = id
	}
	return m
}()

// Lookup returns the identifier for an element name. Matching is
// ASCII case-insensitive. Unknown names, and the spellings of the
// pseudo-tags, resolve to Undefined.
func Lookup(name string) ID {
	if id, ok := byName[asciiLower(name)]; ok {
		return id
	}
	return Undefined
}

// Name returns the canonical spelling of id.
func Name(id ID) string {
	return id.String()
}

// String returns the canonical spelling: lowercase for elements
// (foreignObject keeps its SVG casing) and a marker such as "-text" or
// "!--" for pseudo-tags.
func (id ID) String() string {
	if id >= numIDs {
		return table[Undefined].name
	}
	return table[id].name
}

// Symbol returns the upper-case form used in s-expressions, e.g.
// "ANNOTATION_XML" or "_TEXT".
func (id ID) Symbol() string {
	if id >= numIDs {
		return table[Undefined].symbol
	}
	return table[id].symbol
}

// IsPseudo reports whether id stands for something other than a markup
// element. Undefined counts as a pseudo-tag.
func (id ID) IsPseudo() bool {
	return id <= EndOfFile || id >= numIDs
}

// Count is the number of identifiers, pseudo-tags included.
func Count() int {
	return int(numIDs)
}

func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
