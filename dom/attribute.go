package dom

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Attribute is a single name/value pair from a start tag.
type Attribute struct {
	Name     string
	Value    string
	HasValue bool
}

// Attr returns an attribute with a value, which may be empty.
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value, HasValue: true}
}

// BoolAttr returns an attribute without a value, as in <input disabled>.
func BoolAttr(name string) Attribute {
	return Attribute{Name: name}
}

// Cursor points at one entry of an AttributeList.
type Cursor int

// AttributeList keeps attributes in source order. Duplicate names are
// stored as they come; Get applies the first-wins rule.
type AttributeList struct {
	items []Attribute
}

// Append adds a at the end of the list.
func (l *AttributeList) Append(a Attribute) error {
	if a.Name == "" {
		return errors.Wrap(ErrInvalidOperation, "attribute name is empty")
	}
	l.items = append(l.items, a)
	return nil
}

func (l AttributeList) Len() int {
	return len(l.items)
}

func (l AttributeList) First() (Cursor, bool) {
	if len(l.items) == 0 {
		return -1, false
	}
	return 0, true
}

func (l AttributeList) Next(c Cursor) (Cursor, bool) {
	if c < 0 || int(c)+1 >= len(l.items) {
		return -1, false
	}
	return c + 1, true
}

func (l AttributeList) Name(c Cursor) string {
	return l.items[c].Name
}

// Value returns the value at c and whether the attribute had one.
func (l AttributeList) Value(c Cursor) (string, bool) {
	a := l.items[c]
	return a.Value, a.HasValue
}

// Get returns the first attribute called name.
func (l AttributeList) Get(name string) (Attribute, bool) {
	for _, a := range l.items {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// All yields the attributes in source order.
func (l AttributeList) All() iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		for _, a := range l.items {
			if !yield(a) {
				return
			}
		}
	}
}

// view returns a copy of the list header whose appends never reach the
// backing array of l.
func (l AttributeList) view() AttributeList {
	return AttributeList{items: slices.Clip(l.items)}
}
