package document

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/internal/format"
)

func TestParseJSON_KeepsOrderAndNumbers(t *testing.T) {
	t.Parallel()

	src := `{"z":1,"a":{"big":12345678901234567890,"f":1.50,"s":"<b>&"},"list":[true,null,[]],"empty":{}}`

	doc, err := Parse([]byte(src), format.JSON)
	require.NoError(t, err)

	out, err := doc.Encode()
	require.NoError(t, err)

	want := `{
  "z": 1,
  "a": {
    "big": 12345678901234567890,
    "f": 1.50,
    "s": "<b>&"
  },
  "list": [
    true,
    null,
    []
  ],
  "empty": {}
}
`
	assert.Equal(t, want, string(out))
}

func TestParseJSON_Invalid(t *testing.T) {
	t.Parallel()

	for _, src := range []string{``, `{"a":`, `{"a":1} {"b":2}`, `[1,]`} {
		_, err := Parse([]byte(src), format.JSON)
		assert.Error(t, err, src)
	}
}

func TestTree_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"order":{"items":[{"sku":"X1"}]}}`), format.JSON)
	require.NoError(t, err)

	clone := doc.Clone().(*Tree)

	order, _ := clone.Root.(*Object).Get("order")
	items, _ := order.(*Object).Get("items")
	items.(*Array).Items[0].(*Object).Delete("sku")
	order.(*Object).Set("id", "1")

	orig, err := doc.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"order":{"items":[{"sku":"X1"}]}}`, string(orig))

	mutated, err := clone.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"order":{"items":[{}],"id":"1"}}`, string(mutated))
}

func TestObject_Rename(t *testing.T) {
	t.Parallel()

	obj := &Object{Members: []Member{
		{Key: "a", Value: "1"},
		{Key: "commented-b", Value: "old"},
		{Key: "b", Value: "2"},
		{Key: "c", Value: "3"},
	}}

	assert.False(t, obj.Rename("b", "commented-b"), "existing member is kept")
	assert.Equal(t, []string{"a", "commented-b", "b", "c"}, obj.Keys())

	v, _ := obj.Get("commented-b")
	assert.Equal(t, "old", v)

	assert.True(t, obj.Rename("c", "commented-c"))
	assert.Equal(t, []string{"a", "commented-b", "b", "commented-c"}, obj.Keys())

	assert.True(t, obj.Rename("a", "a"))
	assert.False(t, obj.Rename("zzz", "y"))
}

func TestParseYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	src := `order:
  id: "123"
  qty: 2
  price: 9.5
  active: true
  note: null
  items:
    - sku: X1
    - sku: X2
`

	doc, err := Parse([]byte(src), format.YAML)
	require.NoError(t, err)

	order, ok := doc.(*Tree).Root.(*Object).Get("order")
	require.True(t, ok)

	id, _ := order.(*Object).Get("id")
	qty, _ := order.(*Object).Get("qty")
	active, _ := order.(*Object).Get("active")
	note, hasNote := order.(*Object).Get("note")

	assert.Equal(t, "123", id)
	assert.Equal(t, json.Number("2"), qty)
	assert.Equal(t, true, active)
	assert.True(t, hasNote)
	assert.Nil(t, note)

	out, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestText(t *testing.T) {
	t.Parallel()

	src := []byte("ISA*00*~GS*PO~")
	doc, err := Parse(src, format.EDIX12)
	require.NoError(t, err)

	src[0] = 'X'

	text := doc.(*Text)
	assert.Equal(t, "ISA*00*~GS*PO~", text.String())

	clone := text.Clone().(*Text)
	clone.SetContent([]byte("changed"))
	assert.Equal(t, "ISA*00*~GS*PO~", text.String())
	assert.Equal(t, format.EDIX12, clone.Format())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sampleMax.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":{"b":1}}`), 0o644))

	doc, err := Load(path, format.JSON, WithIndent(4))
	require.NoError(t, err)

	out, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": {\n        \"b\": 1\n    }\n}\n", string(out))

	_, err = Load(path, format.Unknown)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "absent.json"), format.JSON)
	require.Error(t, err)
}

func TestStringify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "X1", Stringify("X1"))
	assert.Equal(t, `{"sku":"X1","n":[1,true]}`, Stringify(&Object{Members: []Member{
		{Key: "sku", Value: "X1"},
		{Key: "n", Value: &Array{Items: []any{json.Number("1"), true}}},
	}}))
	assert.Equal(t, "null", Stringify(nil))
}
