package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type lookupTestcase struct {
	in     string
	id     ID
	name   string
	symbol string
}

var lookupTests = []lookupTestcase{
	{"html", HTML, "html", "HTML"},
	{"HTML", HTML, "html", "HTML"},
	{"BoDy", Body, "body", "BODY"},
	{"annotation-xml", AnnotationXML, "annotation-xml", "ANNOTATION_XML"},
	{"foreignobject", ForeignObject, "foreignObject", "FOREIGNOBJECT"},
	{"FOREIGNOBJECT", ForeignObject, "foreignObject", "FOREIGNOBJECT"},
	{"comment", CommentElement, "comment", "COMMENT"},
	{"h6", H6, "h6", "H6"},
	{"xmp", XMP, "xmp", "XMP"},
	{"blink-foo", Undefined, "-undef", "_UNDEF"},
	{"", Undefined, "-undef", "_UNDEF"},
	{"-text", Undefined, "-undef", "_UNDEF"},
	{"!DOCTYPE", Undefined, "-undef", "_UNDEF"},
	{"dİv", Undefined, "-undef", "_UNDEF"},
}

func TestLookup(t *testing.T) {
	for _, tt := range lookupTests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			id := Lookup(tt.in)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.name, id.String())
			assert.Equal(t, tt.name, Name(id))
			assert.Equal(t, tt.symbol, id.Symbol())
		})
	}
}

func TestRoundTripAllElements(t *testing.T) {
	for id := EndOfFile + 1; int(id) < Count(); id++ {
		name := id.String()
		assert.Equal(t, id, Lookup(name), name)
		assert.False(t, id.IsPseudo(), name)
	}
}

func TestPseudoTags(t *testing.T) {
	tests := map[ID]string{
		Undefined: "_UNDEF",
		Text:      "_TEXT",
		Comment:   "_COMMENT",
		Doctype:   "_DOCTYPE",
		EndOfFile: "_END_OF_FILE",
	}
	for id, symbol := range tests {
		assert.True(t, id.IsPseudo())
		assert.Equal(t, symbol, id.Symbol())
	}
}

func TestOutOfRange(t *testing.T) {
	id := ID(Count() + 10)
	assert.Equal(t, "-undef", id.String())
	assert.Equal(t, "_UNDEF", id.Symbol())
	assert.True(t, id.IsPseudo())
}
