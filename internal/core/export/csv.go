package export

import (
	"strings"

	"ledger-service/internal/core/projection"
	"ledger-service/internal/domain"
)

// CSV renders the data rows of sheets (header rows skipped) as comma-separated
// fields, every field double-quoted. Sheets are separated by a blank line.
func CSV(sheets domain.SheetCollection, selected []string) ([]byte, error) {
	sheets, err := projection.Select(sheets, selected)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for i, sheet := range sheets {
		if i > 0 {
			b.WriteString("\n")
		}
		grid, err := projection.Grid(sheet)
		if err != nil {
			return nil, err
		}
		for r := 1; r < len(grid); r++ {
			if len(grid[r]) == 0 {
				continue
			}
			writeQuoted(&b, grid[r])
			b.WriteString("\n")
		}
	}
	return []byte(b.String()), nil
}

func writeQuoted(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}
