package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/internal/document"
	"fixture-generator/internal/format"
)

func mutateXML(t *testing.T, src, path string, mode Mode) (Outcome, string) {
	t.Helper()

	doc := document.NewText(format.XML, []byte(src))

	out, err := NewXML(nopLogger()).Mutate(doc, path, mode)
	require.NoError(t, err)

	data, err := out.Document.Encode()
	require.NoError(t, err)

	return out, string(data)
}

func TestXML_RemoveAllMatches(t *testing.T) {
	t.Parallel()

	src := "<order>\n  <id>1</id>\n  <item><sku>A</sku><qty>1</qty></item>\n  <item><sku>B</sku></item>\n</order>"

	out, got := mutateXML(t, src, "/order/item/sku", Remove)
	assert.True(t, out.Changed)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "<order>\n  <id>1</id>\n  <item><qty>1</qty></item>\n  <item/>\n</order>", got)
}

func TestXML_RemoveDropsIndentation(t *testing.T) {
	t.Parallel()

	src := "<order>\n  <id>1</id>\n  <note>x</note>\n</order>"

	_, got := mutateXML(t, src, "note", Remove)
	assert.Equal(t, "<order>\n  <id>1</id>\n</order>", got)
}

func TestXML_CommentOut(t *testing.T) {
	t.Parallel()

	src := `<?xml version="1.0"?>` + "\n<order><id>1</id><sku>X--1</sku><qty>2</qty></order>"

	out, got := mutateXML(t, src, "sku", CommentOut)
	assert.True(t, out.Changed)
	assert.Equal(t, `<?xml version="1.0"?>`+"\n<order><id>1</id><!-- commented-sku: X- -1 --><qty>2</qty></order>", got)
}

func TestXML_CommentPreservesValue(t *testing.T) {
	t.Parallel()

	_, got := mutateXML(t, "<a><b>keep me</b></a>", "b", CommentOut)
	assert.Equal(t, "<a><!-- commented-b: keep me --></a>", got)
}

func TestXML_RootIsNotMatched(t *testing.T) {
	t.Parallel()

	out, got := mutateXML(t, "<order><id>1</id></order>", "order", Remove)
	assert.False(t, out.Changed)
	require.ErrorIs(t, out.Reason, ErrFieldNotFound)
	assert.Equal(t, "<order><id>1</id></order>", got)
}

func TestXML_NotFoundSuggestsClosestTag(t *testing.T) {
	t.Parallel()

	out, _ := mutateXML(t, "<order><ShipTo>x</ShipTo></order>", "order/ship_to", Remove)
	require.ErrorIs(t, out.Reason, ErrFieldNotFound)
	assert.Contains(t, out.Reason.Error(), `closest match "ShipTo"`)
}

func TestXML_Namespaced(t *testing.T) {
	t.Parallel()

	src := `<r xmlns:a="urn:a"><a:id>1</a:id><id>2</id></r>`

	_, got := mutateXML(t, src, "a:id", Remove)
	assert.Equal(t, `<r xmlns:a="urn:a"><id>2</id></r>`, got)

	out, _ := mutateXML(t, src, "id", Remove)
	assert.Equal(t, 2, out.Count, "bare tags match the local name")
}

func TestXML_ParseFailure(t *testing.T) {
	t.Parallel()

	src := "<order><id>1</order>"

	out, got := mutateXML(t, src, "id", Remove)
	assert.False(t, out.Changed)
	require.ErrorIs(t, out.Reason, ErrDocumentParse)
	assert.Equal(t, src, got)
}

func TestXML_EmptyTag(t *testing.T) {
	t.Parallel()

	out, _ := mutateXML(t, "<a/>", "order/", Remove)
	require.ErrorIs(t, out.Reason, ErrMalformedFieldPath)
}
