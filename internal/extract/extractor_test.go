package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/internal/diagnostic"
	"fixture-generator/internal/format"
	"fixture-generator/internal/spec"
	"fixture-generator/internal/tabular"
)

func keys(s *spec.Specification) []string {
	var out []string
	for _, f := range s.Fields() {
		out = append(out, f.Key())
	}

	return out
}

func TestExtract_Tree(t *testing.T) {
	t.Parallel()

	tbl := tabular.New(
		[]string{"Level 1", "Level 2", "Level 3", "Source Occurs", "Output Path", "Output Element", "Note"},
		[][]string{
			{"order", "id", "", "1...1", "/JSON/order", "id", ""},
			{"order", "item", "sku", "1…1", "/JSON/order.item", "sku", "nan"},
			{"order", "item", "qty", "0...1", "/JSON/order.item", "qty", "  "},
			{"", "null", "", "", "", "", ""},
			{"order", "comment", "", "", "", "", "NULL"},
		},
	)
	tbl.HeaderRow = 13

	s, diags, err := New(format.JSON, nil).Extract(tbl)
	require.NoError(t, err)

	assert.Equal(t, format.JSON, s.Format)
	assert.Equal(t, []string{"order/id", "order/item/sku", "order/item/qty"}, keys(s))

	sku, ok := s.Get("order/item/sku")
	require.True(t, ok)
	assert.Equal(t, "/order/item/sku", sku.SourcePath)
	assert.Equal(t, spec.ExactlyOne, sku.Occurrence)
	assert.Equal(t, "1...1", sku.Attributes["Source Occurs"])
	assert.Equal(t, "/JSON/order.item", sku.OutputPath)
	assert.Equal(t, "sku", sku.OutputElement)
	assert.NotContains(t, sku.Attributes, "Note")

	assert.Equal(t, 1, diags.CountByCode(diagnostic.CodeEmptyRow))
	assert.Equal(t, 1, diags.CountByCode(diagnostic.CodeNoAttributes))
	assert.False(t, diags.HasErrors())
}

func TestExtract_DuplicateDisambiguation(t *testing.T) {
	t.Parallel()

	tbl := tabular.New(
		[]string{"L1", "L2", "Source Occurs"},
		[][]string{
			{"order", "ref", "1...1"},
			{"invoice", "ref", "1...1"},
			{"order", "ref", "0...1"},
			{"order", "ref", "0...*"},
		},
	)

	s, _, err := New(format.JSON, nil).Extract(tbl)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"order/ref",
		"invoice/ref",
		"order/ref_occurrence_2",
		"order/ref_occurrence_3",
	}, keys(s))

	second, ok := s.Get("order/ref_occurrence_2")
	require.True(t, ok)
	assert.Equal(t, "ref_occurrence_2", second.ElementName)
	assert.Equal(t, spec.ZeroOrOne, second.Occurrence)
	assert.Equal(t, "/order/ref", second.SourcePath)
}

func TestExtract_Segmented(t *testing.T) {
	t.Parallel()

	header := []string{"Segment", "Element", "Source Occurs", "Output Path", "Output Element"}

	tests := []struct {
		name       string
		tag        format.Tag
		rows       [][]string
		wantKeys   []string
		wantSource string
	}{
		{
			name:       "x12",
			tag:        format.EDIX12,
			rows:       [][]string{{"ISA", "ISA06", "1...1", "ISA", "ISA06"}, {"ISA", "", "1...1", "", ""}},
			wantKeys:   []string{"ISA/ISA_ISA06", "ISA/ISA"},
			wantSource: "ISA*ISA06",
		},
		{
			name:       "edifact",
			tag:        format.EDIFACT,
			rows:       [][]string{{"UNB", "UNB02", "1...1", "UNB", "UNB02"}},
			wantKeys:   []string{"UNB/UNB_UNB02"},
			wantSource: "UNB*UNB02",
		},
		{
			name:       "idoc",
			tag:        format.IDOC,
			rows:       [][]string{{"E1EDK01", "BELNR", "0...1", "", ""}},
			wantKeys:   []string{"E1EDK01/E1EDK01_BELNR"},
			wantSource: "E1EDK01/BELNR",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _, err := New(tt.tag, nil).Extract(tabular.New(header, tt.rows))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, keys(s))
			assert.Equal(t, tt.wantSource, s.Fields()[0].SourcePath)
		})
	}
}

func TestExtract_MissingOccurrenceColumn(t *testing.T) {
	t.Parallel()

	tbl := tabular.New([]string{"L1", "Type"}, [][]string{{"order", "string"}})

	s, diags, err := New(format.JSON, nil).Extract(tbl)
	require.ErrorIs(t, err, ErrMissingOccurrenceColumn)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, diags.CountByCode(diagnostic.CodeMissingOccurrenceColumn))
}

func TestExtract_LiteralCollision(t *testing.T) {
	t.Parallel()

	tbl := tabular.New(
		[]string{"L1", "L2", "Source Occurs"},
		[][]string{
			{"order", "ref_occurrence_2", "1...1"},
			{"order", "ref", "1...1"},
			{"order", "ref", "1...1"},
			{"order", "tail", "1...1"},
		},
	)

	s, diags, err := New(format.JSON, nil).Extract(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"order/ref_occurrence_2", "order/ref", "order/tail"}, keys(s))
	assert.Equal(t, 1, diags.CountByCode(diagnostic.CodeDuplicateElement))
}
