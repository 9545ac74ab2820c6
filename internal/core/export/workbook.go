package export

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ledger-service/internal/core/projection"
	"ledger-service/internal/domain"

	"github.com/xuri/excelize/v2"
)

// MaxSheetNameLength is the longest worksheet name a workbook accepts.
const MaxSheetNameLength = 31

const defaultSheet = "Sheet1"

var invalidSheetChars = strings.NewReplacer(
	":", "_", `\`, "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// Workbook writes one worksheet per sheet, with the full cell grid (header
// row included) as plain values. Sheets without cells are skipped; when none
// is left the workbook keeps a single empty worksheet.
func Workbook(sheets domain.SheetCollection, selected []string) ([]byte, error) {
	sheets, err := projection.Select(sheets, selected)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	filled := make(domain.SheetCollection, 0, len(sheets))
	for _, sheet := range sheets {
		if len(sheet.Cells) > 0 {
			filled = append(filled, sheet)
		}
	}

	names := SheetNames(filled.Names())
	for i, sheet := range filled {
		name := names[i]
		grid, err := projection.Grid(sheet)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return nil, fmt.Errorf("falha ao renomear planilha %s: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("falha ao criar planilha %s: %w", name, err)
		}
		if err := writeSheet(f, name, grid); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, grid [][]string) error {
	sw, err := f.NewStreamWriter(name)
	if err != nil {
		return fmt.Errorf("falha ao abrir planilha %s: %w", name, err)
	}
	for r, row := range grid {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("falha ao escrever linha %d da planilha %s: %w", r+1, name, err)
		}
	}
	return sw.Flush()
}

// SheetNames makes names usable as worksheet names: invalid characters are
// replaced, names are cut to MaxSheetNameLength runes and repeated names get
// a numeric suffix.
func SheetNames(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, name := range names {
		base := strings.Trim(invalidSheetChars.Replace(strings.TrimSpace(name)), "'")
		if base == "" {
			base = fmt.Sprintf("Planilha%d", i+1)
		}
		base = truncateRunes(base, MaxSheetNameLength)
		candidate := base
		for n := 2; used[strings.ToLower(candidate)]; n++ {
			suffix := fmt.Sprintf("_%d", n)
			candidate = truncateRunes(base, MaxSheetNameLength-len(suffix)) + suffix
		}
		used[strings.ToLower(candidate)] = true
		out[i] = candidate
	}
	return out
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
