// Package export serialises inverse-projected ledger rows to pipe-delimited
// text, CSV, workbooks and zip archives, and reads edited workbooks back.
package export

import (
	"path/filepath"
	"strings"

	"ledger-service/internal/core/projection"
	"ledger-service/internal/core/textenc"
)

// Delimiter frames and separates the fields of an exported ledger line.
const Delimiter = "|"

// Artifact is one named output file.
type Artifact struct {
	Name    string
	Content []byte
}

// Line renders one row as |f1|f2|…|fn|.
func Line(fields []string) string {
	return Delimiter + strings.Join(fields, Delimiter) + Delimiter
}

// Text renders the rows of blocks in order, one line per row, joined by "\n".
// label selects the output encoding ("" keeps UTF-8).
func Text(blocks []projection.Block, label string) ([]byte, error) {
	var b strings.Builder
	first := true
	for _, block := range blocks {
		for _, row := range block.Rows {
			if !first {
				b.WriteByte('\n')
			}
			first = false
			b.WriteString(Line(row))
		}
	}
	return textenc.Encode(b.String(), label)
}

// TextFiles renders one text artifact per bucket. Buckets split by provenance
// are named after their identifier; the untagged bucket takes fallback.
func TextFiles(buckets []projection.Bucket, fallback, label string) ([]Artifact, error) {
	out := make([]Artifact, 0, len(buckets))
	for _, bucket := range buckets {
		content, err := Text(bucket.Blocks, label)
		if err != nil {
			return nil, err
		}
		name := fallback
		if bucket.ID != "" {
			name = bucket.ID
		}
		out = append(out, Artifact{Name: TextFileName(name), Content: content})
	}
	return out, nil
}

// TextFileName makes sure name carries a .txt extension.
func TextFileName(name string) string {
	name = strings.TrimSpace(filepath.Base(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "exported_file"
	}
	if strings.EqualFold(filepath.Ext(name), ".txt") {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".txt"
}
