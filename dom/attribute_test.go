package dom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeListOrder(t *testing.T) {
	var l AttributeList
	require.NoError(t, l.Append(Attr("src", "123")))
	require.NoError(t, l.Append(BoolAttr("async")))
	require.NoError(t, l.Append(Attr("src", "456")))
	require.NoError(t, l.Append(Attr("alt", "")))

	var names []string
	for c, ok := l.First(); ok; c, ok = l.Next(c) {
		names = append(names, l.Name(c))
	}
	assert.Equal(t, []string{"src", "async", "src", "alt"}, names)
	assert.Equal(t, 4, l.Len())

	v, ok := l.Value(1)
	assert.False(t, ok, "boolean attribute has no value")
	assert.Equal(t, "", v)
	v, ok = l.Value(3)
	assert.True(t, ok, "empty value is still a value")
	assert.Equal(t, "", v)
}

func TestAttributeListFirstWins(t *testing.T) {
	var l AttributeList
	require.NoError(t, l.Append(Attr("src", "123")))
	require.NoError(t, l.Append(Attr("src", "456")))

	a, ok := l.Get("src")
	require.True(t, ok)
	assert.Equal(t, "123", a.Value)
	_, ok = l.Get("href")
	assert.False(t, ok)
}

func TestAttributeListEmptyName(t *testing.T) {
	var l AttributeList
	err := l.Append(Attr("", "x"))
	assert.True(t, errors.Is(err, ErrInvalidOperation))
	assert.Equal(t, 0, l.Len())
}

func TestAttributeListEmpty(t *testing.T) {
	var l AttributeList
	_, ok := l.First()
	assert.False(t, ok)
	for range l.All() {
		t.Fatal("empty list yielded an attribute")
	}
}

func TestAttributeListIndependentIterations(t *testing.T) {
	var l AttributeList
	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, l.Append(Attr(n, n)))
	}

	var pairs []string
	for outer := range l.All() {
		for inner := range l.All() {
			pairs = append(pairs, outer.Name+inner.Name)
		}
	}
	assert.Equal(t, []string{"aa", "ab", "ac", "ba", "bb", "bc", "ca", "cb", "cc"}, pairs)

	var stopped []string
	for a := range l.All() {
		stopped = append(stopped, a.Name)
		if a.Name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, stopped)
}
