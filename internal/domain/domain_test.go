package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellValueUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		kind ValueKind
		want string
	}{
		{`"0001"`, KindText, "0001"},
		{`12.50`, KindNumber, "12.50"},
		{`null`, KindEmpty, ""},
		{`true`, KindText, "true"},
		{`{"v":"A1","m":"A1"}`, KindText, "A1"},
		{`{"v":3}`, KindNumber, "3"},
		{`{"m":"shown"}`, KindText, "shown"},
		{`{}`, KindEmpty, ""},
	}
	for _, c := range cases {
		var v CellValue
		require.NoError(t, json.Unmarshal([]byte(c.in), &v), c.in)
		assert.Equal(t, c.kind, v.Kind(), c.in)
		assert.Equal(t, c.want, v.String(), c.in)
	}

	var v CellValue
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &v))
}

func TestCellValueKeepsNumberLiteral(t *testing.T) {
	var v CellValue
	require.NoError(t, json.Unmarshal([]byte(`0.10`), &v))
	n, ok := v.Number()
	require.True(t, ok)
	assert.InDelta(t, 0.1, n, 1e-9)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "0.10", string(out))
	assert.Equal(t, "2.5", NumberValue(2.5).String())
}

func TestCellAcceptsShortKeys(t *testing.T) {
	var c Cell
	require.NoError(t, json.Unmarshal([]byte(`{"r":2,"c":1,"v":{"v":"X","m":"X"}}`), &c))
	assert.Equal(t, 2, c.Row)
	assert.Equal(t, 1, c.Column)
	assert.Equal(t, "X", c.Value.String())
	assert.Equal(t, "X", c.Display)
	assert.Equal(t, GeneralFormat, c.Format)
}

func TestSheetAcceptsCellData(t *testing.T) {
	var s Sheet
	require.NoError(t, json.Unmarshal([]byte(`{"name":"C100","order":3,"celldata":[{"r":0,"c":0,"v":"REG"}]}`), &s))
	assert.Equal(t, "C100", s.Name)
	assert.Equal(t, 3, s.Order)
	require.Len(t, s.Cells, 1)
	assert.Equal(t, "REG", s.Cells[0].Value.String())

	data, err := json.Marshal(SheetCollection{s})
	require.NoError(t, err)
	var back SheetCollection
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"C100"}, back.Names())
	assert.Equal(t, "REG", back[0].Cells[0].Display)
}

func TestRowValues(t *testing.T) {
	row := Row{Code: "C170", Fields: TokenizedLine{"C170", "1"}}
	assert.Equal(t, []string{"C170", "1"}, row.Values())

	row.Provenance = &FileProvenance{PeriodStart: "01012024", PeriodEnd: "31012024", TaxpayerID: "1"}
	assert.Equal(t, []string{"01012024", "31012024", "1", "C170", "1"}, row.Values())
	assert.Equal(t, "01012024_31012024_1", row.Provenance.ID())
	assert.True(t, FileProvenance{}.IsZero())
}

func TestGroupedTableKeepsFirstSeenOrder(t *testing.T) {
	a := NewGroupedTable()
	a.Append("C100", Row{Code: "C100"})
	a.Append("0000", Row{Code: "0000"})
	b := NewGroupedTable()
	b.Append("9999", Row{Code: "9999"})
	b.Append("C100", Row{Code: "C100"})

	a.Concat(b)
	assert.Equal(t, []string{"C100", "0000", "9999"}, a.Codes())
	assert.Len(t, a.Rows("C100"), 2)
	assert.Equal(t, 4, a.Len())
	assert.False(t, a.Has("A100"))
}
