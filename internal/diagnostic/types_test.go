package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	d.AddWarning(CodeFieldNotFound, "no node for path", "sku", "order.item.sku")
	d.AddInfo(CodeEmptyRow, "row 3 skipped", "", "")

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	var other Diagnostics
	other.AddError(CodeUnsupportedFormat, "no strategy for UNKNOWN", "", "")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	require.Len(t, d.All(), 3)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)
	assert.Equal(t, 1, d.CountByCode(CodeFieldNotFound))
	assert.EqualError(t, d.Error(), "[unsupported_format] no strategy for UNKNOWN")
}

func TestDiagnostic_String(t *testing.T) {
	t.Parallel()

	d := Diagnostic{Code: CodeMalformedFieldPath, Message: "bad index", Element: "items", FieldPath: "items[x]"}
	assert.Equal(t, "[items] items[x]: [malformed_field_path] bad index", d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
