package diagnostic

// Diagnostic codes, one per error class of the generator.
const (
	CodeMissingOccurrenceColumn = "missing_occurrence_column"
	CodeFieldNotFound           = "field_not_found"
	CodeMalformedFieldPath      = "malformed_field_path"
	CodeDocumentParseFailure    = "document_parse_failure"
	CodeUnsupportedFormat       = "unsupported_format"
	CodeEmptyRow                = "empty_row"
	CodeNoAttributes            = "no_attributes"
	CodeDuplicateElement        = "duplicate_element"
)
