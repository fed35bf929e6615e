package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EDI-X12", EDIX12.String())
	assert.Equal(t, "UNKNOWN", Unknown.String())
	assert.Equal(t, "Tag(42)", Tag(42).String())
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Tag
		ok   bool
	}{
		{"json", JSON, true},
		{" EDI-X12 ", EDIX12, true},
		{"x12", EDIX12, true},
		{"Edifact", EDIFACT, true},
		{"IDOC", IDOC, true},
		{"yml", YAML, true},
		{"csv", Unknown, false},
	}

	for _, tt := range tests {
		got, ok := ParseTag(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    Tag
	}{
		{"json extension", "sampleMax.json", "", JSON},
		{"yaml extension", "sample.yml", "", YAML},
		{"xml extension", "sample.xml", "", XML},
		{"edi extension", "sample.edi", "", EDIX12},
		{"edifact by UNA", "sample.txt", "UNA:+.? 'UNB+UNOC:3+SENDER'", EDIFACT},
		{"edifact by UNB", "sample.txt", "UNB+UNOC:3+SENDER+RECEIVER'", EDIFACT},
		{"x12 by ISA", "sample.txt", "ISA*00*          *00*~", EDIX12},
		{"x12 by GS", "sample.txt", "XXX*1~\nGS*PO*SENDER~", EDIX12},
		{"idoc by prefix", "sample.txt", "E1EDK01005  ", IDOC},
		{"idoc by control record", "sample.txt", "EDI_DC40  800\nE1EDK01", IDOC},
		{"xml by content", "sample.dat", "  <?xml version=\"1.0\"?><a/>", XML},
		{"json default", "sample.dat", `{"a":1}`, JSON},
		{"empty content", "sample.dat", "", Unknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.path, []byte(tt.content), nil))
		})
	}
}

func TestClassify_GroupHeaderAfterLongEnvelope(t *testing.T) {
	t.Parallel()

	envelope := "ENV*" + strings.Repeat("0", 110)
	content := envelope + "~GS*PO*SENDER*RECEIVER*20210101*1200*1*X*004010~"

	assert.Equal(t, EDIX12, Classify("sample.txt", []byte(content), nil))
	assert.Equal(t, JSON, Classify("sample.txt", []byte(strings.Repeat("x", 300)+"~GS*PO~"), nil))
}

func TestClassify_Override(t *testing.T) {
	t.Parallel()

	overrides := map[string]string{
		"in/sampleMax.txt": "IDOC",
		"orders.json":      "EDIFACT",
		"broken.json":      "CSV",
	}

	assert.Equal(t, IDOC, Classify("in/sampleMax.txt", []byte("ISA*00~"), overrides))
	assert.Equal(t, EDIFACT, Classify("data/orders.json", nil, overrides))
	assert.Equal(t, Unknown, Classify("broken.json", []byte("{}"), overrides))
}

func TestDetectTable(t *testing.T) {
	t.Parallel()

	x12 := [][]string{{"ISA", "ISA01", "", "1...1"}}
	edifact := [][]string{{"UNB", "UNB01"}}
	idoc := [][]string{{"", "E1EDK01", "BELNR"}}
	tree := [][]string{{"order", "item", "sku", "1...1"}}
	late := [][]string{{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "ISA01"}}

	assert.Equal(t, EDIX12, DetectTable("spec.xlsx", x12, nil))
	assert.Equal(t, EDIFACT, DetectTable("spec.xlsx", edifact, nil))
	assert.Equal(t, IDOC, DetectTable("spec.xlsx", idoc, nil))
	assert.Equal(t, JSON, DetectTable("spec.xlsx", tree, nil))
	assert.Equal(t, JSON, DetectTable("spec.xlsx", late, nil), "only the first ten columns count")
	assert.Equal(t, XML, DetectTable("spec.xlsx", x12, map[string]string{"spec.xlsx": "xml"}))
}
