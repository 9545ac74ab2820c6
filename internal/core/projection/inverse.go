package projection

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"ledger-service/internal/domain"

	"github.com/schollz/closestmatch"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// InvertOptions select what an inverse projection emits.
type InvertOptions struct {
	// SelectedBlocks restricts the output to the named sheets. Empty means all.
	SelectedBlocks []string
	// SplitByProvenance treats the first three columns of every sheet as
	// provenance even when the header does not name them.
	SplitByProvenance bool
}

// Block is the data of one sheet: header skipped, provenance stripped.
type Block struct {
	Name string
	Rows [][]string
}

// Bucket groups the blocks that came from one source file. Untagged data
// lands in the bucket with an empty ID.
type Bucket struct {
	ID         string
	Provenance domain.FileProvenance
	Blocks     []Block
}

// MaxColumns is the highest column count a sheet may address, the width
// limit of a workbook.
const MaxColumns = 16384

// Grid rebuilds the rows of a sheet from its cells, ordered by row then
// column. Index 0 always holds the header row (nil when the sheet has no row
// 0 cell); the data rows that have cells follow in row order, so gaps between
// row numbers are not materialised. Within a row, gaps from column 0 up to the
// highest column seen are filled with "".
func Grid(sheet domain.Sheet) ([][]string, error) {
	if len(sheet.Cells) == 0 {
		return nil, nil
	}
	byRow := make(map[int]map[int]string)
	for _, c := range sheet.Cells {
		if c.Row < 0 || c.Column < 0 {
			continue
		}
		if c.Column >= MaxColumns {
			return nil, fmt.Errorf("%w: planilha %q linha %d coluna %d", domain.ErrInvalidCell, sheet.Name, c.Row, c.Column)
		}
		cols, ok := byRow[c.Row]
		if !ok {
			cols = make(map[int]string)
			byRow[c.Row] = cols
		}
		cols[c.Column] = cellText(c)
	}
	if len(byRow) == 0 {
		return nil, nil
	}

	rowKeys := make([]int, 0, len(byRow))
	for r := range byRow {
		if r > 0 {
			rowKeys = append(rowKeys, r)
		}
	}
	sort.Ints(rowKeys)

	grid := make([][]string, 1, len(rowKeys)+1)
	if cols, ok := byRow[0]; ok {
		grid[0] = gridRow(cols)
	}
	for _, r := range rowKeys {
		grid = append(grid, gridRow(byRow[r]))
	}
	return grid, nil
}

func gridRow(cols map[int]string) []string {
	maxCol := -1
	for col := range cols {
		if col > maxCol {
			maxCol = col
		}
	}
	row := make([]string, maxCol+1)
	for col, v := range cols {
		row[col] = v
	}
	return row
}

func cellText(c domain.Cell) string {
	if c.Value.Kind() == domain.KindEmpty {
		return c.Display
	}
	return c.Value.String()
}

// Invert rebuilds ledger rows from sheets. The header row is always skipped
// and rows without cells are dropped. Sheets whose header starts with the
// provenance columns (or every sheet, with SplitByProvenance) are split into
// one bucket per provenance triple, in first-seen order.
func Invert(sheets domain.SheetCollection, opts InvertOptions) ([]Bucket, error) {
	selected, err := Select(sheets, opts.SelectedBlocks)
	if err != nil {
		return nil, err
	}

	var buckets []*Bucket
	index := make(map[string]*Bucket)
	bucketFor := func(prov domain.FileProvenance) *Bucket {
		id := ""
		if !prov.IsZero() {
			id = prov.ID()
		}
		if b, ok := index[id]; ok {
			return b
		}
		b := &Bucket{ID: id, Provenance: prov}
		index[id] = b
		buckets = append(buckets, b)
		return b
	}
	appendRow := func(b *Bucket, name string, row []string) {
		n := len(b.Blocks)
		if n == 0 || b.Blocks[n-1].Name != name {
			b.Blocks = append(b.Blocks, Block{Name: name})
			n++
		}
		b.Blocks[n-1].Rows = append(b.Blocks[n-1].Rows, row)
	}

	for _, sheet := range selected {
		grid, err := Grid(sheet)
		if err != nil {
			return nil, err
		}
		tagged := opts.SplitByProvenance || (len(grid) > 0 && HasProvenanceHeader(grid[0]))
		if !tagged {
			b := bucketFor(domain.FileProvenance{})
			b.Blocks = append(b.Blocks, Block{Name: sheet.Name})
		}
		for r := 1; r < len(grid); r++ {
			row := grid[r]
			if len(row) == 0 {
				continue
			}
			if !tagged {
				appendRow(bucketFor(domain.FileProvenance{}), sheet.Name, row)
				continue
			}
			prov, rest := splitProvenance(row)
			appendRow(bucketFor(prov), sheet.Name, rest)
		}
	}

	out := make([]Bucket, len(buckets))
	for i, b := range buckets {
		out[i] = *b
	}
	return out, nil
}

// HasProvenanceHeader reports whether a header row starts with the provenance
// column names.
func HasProvenanceHeader(header []string) bool {
	names := domain.ProvenanceHeaders()
	if len(header) < len(names) {
		return false
	}
	for i, name := range names {
		if strings.TrimSpace(header[i]) != name {
			return false
		}
	}
	return true
}

func splitProvenance(row []string) (domain.FileProvenance, []string) {
	var cols [domain.ProvenanceColumns]string
	copy(cols[:], row)
	prov := domain.FileProvenance{
		PeriodStart: strings.TrimSpace(cols[0]),
		PeriodEnd:   strings.TrimSpace(cols[1]),
		TaxpayerID:  strings.TrimSpace(cols[2]),
	}
	if len(row) <= domain.ProvenanceColumns {
		return prov, nil
	}
	return prov, row[domain.ProvenanceColumns:]
}

// Select filters sheets by name, keeping collection order. Names are compared
// after case and accent folding; an unknown name fails with a
// *domain.SheetNotFoundError carrying the closest existing name.
func Select(sheets domain.SheetCollection, names []string) (domain.SheetCollection, error) {
	if len(names) == 0 {
		return sheets, nil
	}
	known := make(map[string]bool, len(sheets))
	for _, s := range sheets {
		known[CanonicalName(s.Name)] = true
	}
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		key := CanonicalName(name)
		if !known[key] {
			return nil, &domain.SheetNotFoundError{Name: name, Suggestion: suggest(sheets.Names(), name)}
		}
		wanted[key] = true
	}

	out := make(domain.SheetCollection, 0, len(wanted))
	for _, s := range sheets {
		if wanted[CanonicalName(s.Name)] {
			out = append(out, s)
		}
	}
	return out, nil
}

func suggest(candidates []string, name string) string {
	if len(candidates) == 0 {
		return ""
	}
	cm := closestmatch.New(candidates, []int{2, 3})
	return cm.Closest(name)
}

// CanonicalName folds a sheet name for comparison: accents removed, upper
// case, surrounding spaces trimmed.
func CanonicalName(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToUpper(strings.TrimSpace(folded))
}
