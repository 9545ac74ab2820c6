package parser

import (
	"strings"

	"ledger-service/internal/domain"
)

// Delimiter separates the fields of a ledger line.
const Delimiter = "|"

// Tokenizer splits normalised lines and classifies them by record code.
type Tokenizer struct {
	width int
}

// NewTokenizer creates a tokenizer. A positive width additionally requires
// codes of exactly that many characters.
func NewTokenizer(width int) *Tokenizer {
	if width < 0 {
		width = 0
	}
	return &Tokenizer{width: width}
}

// ValidCode reports whether code is non-empty ASCII alphanumeric (and of the
// configured width, when set).
func (t *Tokenizer) ValidCode(code string) bool {
	if code == "" {
		return false
	}
	if t.width > 0 && len(code) != t.width {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}

// Tokenize splits line on the delimiter. The boolean is false when the line
// is rejected because its first field is not a valid record code.
func (t *Tokenizer) Tokenize(line string) (domain.TokenizedLine, bool) {
	fields := strings.Split(line, Delimiter)
	fields[0] = strings.TrimSpace(fields[0])
	if !t.ValidCode(fields[0]) {
		return nil, false
	}
	return domain.TokenizedLine(fields), true
}

// PadColumns pads every line on the right with empty fields up to the widest
// line and returns that width.
func PadColumns(lines []domain.TokenizedLine) int {
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	for i, l := range lines {
		for len(l) < width {
			l = append(l, "")
		}
		lines[i] = l
	}
	return width
}
