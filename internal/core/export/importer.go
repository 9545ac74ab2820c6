package export

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ledger-service/internal/domain"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook turns an edited workbook back into sheets: one sheet per
// worksheet, every present cell as a text cell. .xlsx files are read with
// excelize and legacy .xls files with xlsReader; when the extension is not
// conclusive both are tried.
func ReadWorkbook(r io.Reader, filename string) (domain.SheetCollection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler planilha: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".xls" {
		if sheets, err := readXLS(data); err == nil {
			return sheets, nil
		}
	}
	if sheets, err := readXLSX(data); err == nil {
		return sheets, nil
	}
	if ext != ".xls" {
		if sheets, err := readXLS(data); err == nil {
			return sheets, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedWorkbook, filename)
}

func readXLSX(data []byte) (domain.SheetCollection, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets domain.SheetCollection
	for i, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler planilha %s: %w", name, err)
		}
		sheets = append(sheets, sheetFromRows(name, i, rows))
	}
	return sheets, nil
}

func readXLS(data []byte) (sheets domain.SheetCollection, err error) {
	// xlsReader panics on some malformed BIFF streams
	defer func() {
		if rec := recover(); rec != nil {
			sheets, err = nil, fmt.Errorf("arquivo .xls inválido: %v", rec)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	for i, sheet := range workbook.GetSheets() {
		var rows [][]string
		for _, row := range sheet.GetRows() {
			var values []string
			for _, cell := range row.GetCols() {
				values = append(values, cell.GetString())
			}
			rows = append(rows, values)
		}
		sheets = append(sheets, sheetFromRows(sheet.GetName(), i, rows))
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("o arquivo .xls não contém planilhas")
	}
	return sheets, nil
}

func sheetFromRows(name string, order int, rows [][]string) domain.Sheet {
	s := domain.Sheet{Name: name, Order: order, Rows: len(rows)}
	for r, row := range rows {
		if len(row) > s.Columns {
			s.Columns = len(row)
		}
		for c, v := range row {
			s.Cells = append(s.Cells, domain.NewTextCell(r, c, strings.TrimSpace(v)))
		}
	}
	return s
}
