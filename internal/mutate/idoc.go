package mutate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"fixture-generator/internal/document"
)

// IDOCCommentPrefix marks a commented-out IDOC line.
const IDOCCommentPrefix = "* commented: "

// idocTypeLen is how many leading characters identify a segment type.
const idocTypeLen = 6

var nonSpace = regexp.MustCompile(`\S+`)

// IDOC mutates fixed-width IDOC flat files line by line.
//
// Data lines start with "E1" or "E2". A line is mutated when its first six
// characters prefix the field path, so the path is a segment type such as
// "E1EDK01". Remove blanks the line to spaces of the same width; CommentOut
// prefixes it with IDOCCommentPrefix. There is no per-field column model.
type IDOC struct {
	logger *zap.Logger
}

// NewIDOC creates the IDOC strategy.
func NewIDOC(logger *zap.Logger) *IDOC {
	return &IDOC{logger: logger}
}

func (s *IDOC) Mutate(doc document.Document, fieldPath string, mode Mode) (Outcome, error) {
	text, ok := doc.(*document.Text)
	if !ok {
		return Outcome{}, kindError("text document", doc)
	}

	path := strings.TrimSpace(fieldPath)
	if path == "" {
		return unchanged(doc, fmt.Errorf("%w: empty path", ErrMalformedFieldPath)), nil
	}

	lines := strings.Split(text.String(), "\n")
	count := 0

	for i, line := range lines {
		if len(line) < idocTypeLen || (!strings.HasPrefix(line, "E1") && !strings.HasPrefix(line, "E2")) {
			continue
		}

		if !strings.HasPrefix(path, line[:idocTypeLen]) {
			continue
		}

		switch mode {
		case Remove:
			lines[i] = nonSpace.ReplaceAllStringFunc(line, func(m string) string {
				return strings.Repeat(" ", utf8.RuneCountInString(m))
			})
		case CommentOut:
			lines[i] = IDOCCommentPrefix + line
		}

		count++
	}

	if count == 0 {
		return unchanged(doc, fmt.Errorf("%w: %s", ErrFieldNotFound, path)), nil
	}

	s.logger.Debug("idoc lines mutated", zap.String("path", path), zap.Int("lines", count))
	text.SetContent([]byte(strings.Join(lines, "\n")))

	return changed(doc, count), nil
}
