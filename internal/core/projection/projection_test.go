package projection

import (
	"errors"
	"strings"
	"testing"

	"ledger-service/internal/core/grouping"
	"ledger-service/internal/core/parser"
	"ledger-service/internal/core/registry"
	"ledger-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOf(rows ...domain.Row) *domain.GroupedTable {
	t := domain.NewGroupedTable()
	for _, r := range rows {
		t.Append(r.Code, r)
	}
	return t
}

func row(fields ...string) domain.Row {
	return domain.Row{Code: fields[0], Fields: fields}
}

func TestProjectSheetOrdering(t *testing.T) {
	reg := registry.New([]registry.Schema{
		{Code: "A", Fields: []string{"REG", "X"}},
		{Code: "B", Fields: []string{"REG", "X"}},
		{Code: "C", Fields: []string{"REG", "X"}},
	})
	p := NewProjector(reg, nil)
	table := tableOf(row("C", "1"), row("A", "2"), row("D", "3"))

	sheets := p.Project(table, []string{"A", "B", "C"}, false)
	assert.Equal(t, []string{"A", "C", "D"}, sheets.Names())
	for i, s := range sheets {
		assert.Equal(t, i, s.Order)
	}

	sheets = p.Project(table, nil, false)
	assert.Equal(t, []string{"A", "C", "D"}, sheets.Names())
}

func TestProjectHeaderAndCells(t *testing.T) {
	p := NewProjector(registry.Default(), nil)
	sheets := p.Project(tableOf(row("0001", " 0 ")), nil, false)
	require.Len(t, sheets, 1)

	s := sheets[0]
	assert.Equal(t, 2, s.Rows)
	assert.Equal(t, 2, s.Columns)
	grid := mustGrid(t, s)
	assert.Equal(t, [][]string{{"REG", "IND_MOV"}, {"0001", "0"}}, grid)
	assert.Equal(t, domain.GeneralFormat, s.Cells[0].Format)
	assert.Equal(t, "0", s.Cells[3].Display)
}

func TestProjectTruncatesWideRows(t *testing.T) {
	p := NewProjector(registry.Default(), nil)
	s := p.Project(tableOf(row("0001", "0", "extra", "more")), nil, false)[0]
	assert.Equal(t, []string{"0001", "0"}, mustGrid(t, s)[1])
	assert.Equal(t, 2, s.Columns)
}

func TestProjectKeepsShortRowsShort(t *testing.T) {
	p := NewProjector(registry.Default(), nil)
	s := p.Project(tableOf(row("0000", "006")), nil, false)[0]
	assert.Equal(t, []string{"0000", "006"}, mustGrid(t, s)[1])
	assert.Equal(t, registry.Default().Width("0000"), s.Columns)
}

func TestProjectParentSheetFitsChildRows(t *testing.T) {
	reg := registry.Default()
	p := NewProjector(reg, nil)
	child := make([]string, reg.Width("C170"))
	child[0] = "C170"
	table := domain.NewGroupedTable()
	table.Append("C100", row("C100", "0"), domain.Row{Code: "C170", Fields: child, Group: 1})

	s := p.Project(table, nil, false)[0]
	assert.Equal(t, "C100", s.Name)
	assert.GreaterOrEqual(t, s.Columns, reg.Width("C170"))
	assert.Len(t, mustGrid(t, s)[2], reg.Width("C170"))
}

func TestProjectUnknownCodePassthrough(t *testing.T) {
	p := NewProjector(registry.Default(), nil)
	s := p.Project(tableOf(row("Z999", "a", "b")), nil, false)
	require.Len(t, s, 1)
	grid := mustGrid(t, s[0])
	assert.Equal(t, []string{"CAMPO_01", "CAMPO_02", "CAMPO_03"}, grid[0])
	assert.Equal(t, []string{"Z999", "a", "b"}, grid[1])
}

func TestProjectTaggedHeader(t *testing.T) {
	p := NewProjector(registry.Default(), nil)
	r := row("0001", "0")
	r.Provenance = &domain.FileProvenance{PeriodStart: "01", PeriodEnd: "31", TaxpayerID: "X"}
	s := p.Project(tableOf(r), nil, true)[0]
	grid := mustGrid(t, s)
	assert.True(t, HasProvenanceHeader(grid[0]))
	assert.Equal(t, []string{"01", "31", "X", "0001", "0"}, grid[1])
}

func mustGrid(t *testing.T, s domain.Sheet) [][]string {
	t.Helper()
	grid, err := Grid(s)
	require.NoError(t, err)
	return grid
}

func TestGridFillsGaps(t *testing.T) {
	s := domain.Sheet{Cells: []domain.Cell{
		domain.NewTextCell(1, 3, "d"),
		domain.NewTextCell(0, 0, "h"),
		domain.NewTextCell(1, 1, "b"),
		domain.NewTextCell(3, 0, "x"),
	}}
	grid := mustGrid(t, s)
	require.Len(t, grid, 3)
	assert.Equal(t, []string{"h"}, grid[0])
	assert.Equal(t, []string{"", "b", "", "d"}, grid[1])
	assert.Equal(t, []string{"x"}, grid[2])
}

func TestGridSparseRows(t *testing.T) {
	s := domain.Sheet{Cells: []domain.Cell{
		domain.NewTextCell(0, 0, "REG"),
		domain.NewTextCell(1<<50, 0, "C100"),
		domain.NewTextCell(7, 0, "C170"),
	}}
	grid := mustGrid(t, s)
	assert.Equal(t, [][]string{{"REG"}, {"C170"}, {"C100"}}, grid)

	noHeader := domain.Sheet{Cells: []domain.Cell{domain.NewTextCell(2, 0, "C100")}}
	grid = mustGrid(t, noHeader)
	require.Len(t, grid, 2)
	assert.Nil(t, grid[0])
	assert.Equal(t, []string{"C100"}, grid[1])
}

func TestGridRejectsHugeColumn(t *testing.T) {
	s := domain.Sheet{Name: "C100", Cells: []domain.Cell{
		domain.NewTextCell(0, 0, "REG"),
		domain.NewTextCell(1, 1<<50, "x"),
	}}
	_, err := Grid(s)
	assert.ErrorIs(t, err, domain.ErrInvalidCell)

	_, err = Invert(domain.SheetCollection{s}, InvertOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidCell)

	s.Cells[1].Column = MaxColumns - 1
	grid := mustGrid(t, s)
	assert.Len(t, grid[1], MaxColumns)
}

func TestGridUsesDisplayForEmptyValue(t *testing.T) {
	s := domain.Sheet{Cells: []domain.Cell{{Row: 0, Column: 0, Display: "shown"}}}
	assert.Equal(t, [][]string{{"shown"}}, mustGrid(t, s))
}

func parseAndGroup(t *testing.T, name, src string, index int) (*parser.File, *domain.GroupedTable) {
	t.Helper()
	p := parser.New(registry.Default(), nil, nil, parser.DefaultProvenanceSpec, nil)
	f, err := p.Parse(name, strings.NewReader(src))
	require.NoError(t, err)
	return f, grouping.NewEngine(nil).Scan(f.Lines, index)
}

func serialise(rows [][]string) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString("|" + strings.Join(r, "|") + "|\n")
	}
	return b.String()
}

func TestRoundTrip(t *testing.T) {
	src := "|0001|0|\n|C100|0|1|P|\n|C170|1|ITEM|\n|Z999|free|form|\n"
	f, table := parseAndGroup(t, "in.txt", src, 0)

	sheets := NewProjector(registry.Default(), nil).Project(table, nil, false)
	buckets, err := Invert(sheets, InvertOptions{})
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, "", buckets[0].ID)

	var rows [][]string
	for _, b := range buckets[0].Blocks {
		rows = append(rows, b.Rows...)
	}
	p := parser.New(registry.Default(), nil, nil, parser.DefaultProvenanceSpec, nil)
	reparsed, err := p.Parse("out.txt", strings.NewReader(serialise(rows)))
	require.NoError(t, err)
	require.Len(t, reparsed.Lines, len(f.Lines))

	got := map[string]domain.TokenizedLine{}
	for _, l := range reparsed.Lines {
		got[l.Code()] = l
	}
	for _, l := range f.Lines {
		assert.Equal(t, []string(l), []string(got[l.Code()]))
	}
}

func TestProvenanceRoundTrip(t *testing.T) {
	a := "|0000|006|0|||01012024|31012024|A|111|\n|C100|a1|\n|C170|a1i|\n"
	b := "|0000|006|0|||01022024|28022024|B|222|\n|C100|b1|\n"
	fa, ta := parseAndGroup(t, "a", a, 0)
	fb, tb := parseAndGroup(t, "b", b, 1)

	merged := domain.NewGroupedTable()
	for _, pair := range []struct {
		f *parser.File
		t *domain.GroupedTable
	}{{fa, ta}, {fb, tb}} {
		prov := pair.f.Provenance
		for _, code := range pair.t.Codes() {
			rows := pair.t.Rows(code)
			for i := range rows {
				rows[i].Provenance = &prov
			}
		}
		merged.Concat(pair.t)
	}

	sheets := NewProjector(registry.Default(), nil).Project(merged, nil, true)
	buckets, err := Invert(sheets, InvertOptions{})
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "01012024_31012024_111", buckets[0].ID)
	assert.Equal(t, "01022024_28022024_222", buckets[1].ID)

	count := func(bk Bucket) (n int, codes []string) {
		for _, bl := range bk.Blocks {
			for _, r := range bl.Rows {
				n++
				codes = append(codes, r[0])
			}
		}
		return
	}
	n, codes := count(buckets[0])
	assert.Equal(t, len(fa.Lines), n)
	assert.ElementsMatch(t, []string{"0000", "C100", "C170"}, codes)
	n, _ = count(buckets[1])
	assert.Equal(t, len(fb.Lines), n)
}

func TestInvertSelectedBlocks(t *testing.T) {
	sheets := NewProjector(registry.Default(), nil).Project(
		tableOf(row("0001", "0"), row("C100", "x"), row("9999", "3")), nil, false)

	buckets, err := Invert(sheets, InvertOptions{SelectedBlocks: []string{"c100", "0001"}})
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	names := []string{}
	for _, b := range buckets[0].Blocks {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"0001", "C100"}, names)

	_, err = Invert(sheets, InvertOptions{SelectedBlocks: []string{"C10O"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSheetNotFound))
	var nf *domain.SheetNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "C10O", nf.Name)
}

func TestInvertForcedSplit(t *testing.T) {
	s := domain.Sheet{Name: "X", Cells: []domain.Cell{
		domain.NewTextCell(0, 0, "a"),
		domain.NewTextCell(1, 0, "s"), domain.NewTextCell(1, 1, "e"), domain.NewTextCell(1, 2, "t"),
		domain.NewTextCell(1, 3, "X"), domain.NewTextCell(1, 4, "v"),
	}}
	buckets, err := Invert(domain.SheetCollection{s}, InvertOptions{SplitByProvenance: true})
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, "s_e_t", buckets[0].ID)
	assert.Equal(t, [][]string{{"X", "v"}}, buckets[0].Blocks[0].Rows)
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "APURACAO", CanonicalName(" apuração "))
}
