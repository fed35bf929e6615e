package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/internal/document"
	"fixture-generator/internal/format"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	m, ok := ParseMode("Comment")
	assert.True(t, ok)
	assert.Equal(t, CommentOut, m)
	assert.Equal(t, "comment", m.String())

	m, ok = ParseMode("remove")
	assert.True(t, ok)
	assert.Equal(t, Remove, m)

	_, ok = ParseMode("drop")
	assert.False(t, ok)
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry(nil)

	for _, tag := range []format.Tag{format.JSON, format.YAML, format.XML, format.EDIX12, format.EDIFACT, format.IDOC} {
		s, err := r.Lookup(tag)
		require.NoError(t, err, tag.String())
		assert.NotNil(t, s)
	}

	_, err := r.Lookup(format.Unknown)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestStrategies_RejectWrongDocumentKind(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry(nil)
	text := document.NewText(format.XML, []byte("<a/>"))
	tree := document.NewTree(format.JSON, &document.Object{})

	s, _ := r.Lookup(format.JSON)
	_, err := s.Mutate(text, "a", Remove)
	require.ErrorIs(t, err, ErrDocumentKind)

	for _, tag := range []format.Tag{format.XML, format.EDIX12, format.EDIFACT, format.IDOC} {
		s, _ := r.Lookup(tag)
		_, err := s.Mutate(tree, "a", Remove)
		require.ErrorIs(t, err, ErrDocumentKind, tag.String())
	}
}

// Absent fields leave the document byte-for-byte unchanged, however often
// the mutation is attempted.
func TestStrategies_AbsentFieldIsIdempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag     format.Tag
		content string
		path    string
	}{
		{format.JSON, `{"order":{"id":"123","item":{"qty":"2"}}}`, "order.item.sku"},
		{format.YAML, "order:\n  id: \"123\"\n", "order.sku"},
		{format.XML, `<order><id>123</id></order>`, "sku"},
		{format.EDIX12, "ST*850*0001~BEG*00*SA*PO1~", "N101"},
		{format.EDIFACT, "UNH+1+ORDERS:D:96A:UN'BGM+220+PO1'", "NAD02"},
		{format.IDOC, "EDI_DC40  800\nE1EDK01   005 EUR", "E1EDP01"},
	}

	r := DefaultRegistry(nil)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.tag.String(), func(t *testing.T) {
			t.Parallel()

			sample, err := document.Parse([]byte(tt.content), tt.tag)
			require.NoError(t, err)

			before, err := sample.Encode()
			require.NoError(t, err)

			s, err := r.Lookup(tt.tag)
			require.NoError(t, err)

			for _, mode := range []Mode{Remove, CommentOut, Remove} {
				out, err := s.Mutate(sample, tt.path, mode)
				require.NoError(t, err)
				assert.False(t, out.Changed)
				assert.ErrorIs(t, out.Reason, ErrFieldNotFound)

				after, err := out.Document.Encode()
				require.NoError(t, err)
				assert.Equal(t, before, after)
			}
		})
	}
}
