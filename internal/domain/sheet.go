package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags the variant held by a CellValue.
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindText
	KindNumber
)

// CellValue is the raw value of a cell: empty, text or number.
type CellValue struct {
	kind ValueKind
	text string
	num  float64
}

// TextValue wraps a string cell value.
func TextValue(s string) CellValue { return CellValue{kind: KindText, text: s} }

// NumberValue wraps a numeric cell value.
func NumberValue(f float64) CellValue { return CellValue{kind: KindNumber, num: f} }

// Kind returns the variant tag.
func (v CellValue) Kind() ValueKind { return v.kind }

// Number returns the numeric value and whether the cell holds a number.
func (v CellValue) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// String returns the effective value used when a cell is serialised back to
// text. Numbers keep the literal they were decoded from when there is one.
func (v CellValue) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		if v.text != "" {
			return v.text
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumber:
		if v.text != "" {
			return []byte(v.text), nil
		}
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a string, a number, a boolean, null, or a nested cell
// object whose effective value sits under "v" (the shape spreadsheet editors
// send back after a user edit).
func (v *CellValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = CellValue{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	case '{':
		var nested struct {
			V json.RawMessage `json:"v"`
			M *string         `json:"m"`
		}
		if err := json.Unmarshal(data, &nested); err != nil {
			return err
		}
		if len(nested.V) > 0 {
			return v.UnmarshalJSON(nested.V)
		}
		if nested.M != nil {
			*v = TextValue(*nested.M)
			return nil
		}
		*v = CellValue{}
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = TextValue(strconv.FormatBool(b))
		return nil
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("valor de célula inválido %s: %w", data, err)
		}
		*v = CellValue{kind: KindNumber, num: f, text: string(data)}
		return nil
	}
}

// CellFormat is the minimal format descriptor of a cell.
type CellFormat struct {
	Format string `json:"fa"`
	Type   string `json:"t"`
}

// GeneralFormat is the format given to every projected cell.
var GeneralFormat = CellFormat{Format: "General", Type: "g"}

// Cell occupies one (row, column) position of a sheet.
type Cell struct {
	Row     int        `json:"row"`
	Column  int        `json:"column"`
	Value   CellValue  `json:"value"`
	Display string     `json:"display"`
	Format  CellFormat `json:"format"`
}

// UnmarshalJSON also accepts the short spreadsheet keys r, c, v, m and ct.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw struct {
		Row     *int        `json:"row"`
		Column  *int        `json:"column"`
		Value   *CellValue  `json:"value"`
		Display *string     `json:"display"`
		Format  *CellFormat `json:"format"`
		R       *int        `json:"r"`
		C       *int        `json:"c"`
		V       *CellValue  `json:"v"`
		M       *string     `json:"m"`
		CT      *CellFormat `json:"ct"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Cell{Format: GeneralFormat}
	if p := firstNonNil(raw.Row, raw.R); p != nil {
		c.Row = *p
	}
	if p := firstNonNil(raw.Column, raw.C); p != nil {
		c.Column = *p
	}
	if p := firstNonNil(raw.Value, raw.V); p != nil {
		c.Value = *p
	}
	if p := firstNonNil(raw.Display, raw.M); p != nil {
		c.Display = *p
	} else {
		c.Display = c.Value.String()
	}
	if p := firstNonNil(raw.Format, raw.CT); p != nil {
		c.Format = *p
	}
	return nil
}

func firstNonNil[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// NewTextCell builds a general-format text cell.
func NewTextCell(row, column int, value string) Cell {
	return Cell{
		Row:     row,
		Column:  column,
		Value:   TextValue(value),
		Display: value,
		Format:  GeneralFormat,
	}
}

// Sheet is one named grid. Row 0 holds the header.
type Sheet struct {
	Name    string `json:"name"`
	Order   int    `json:"order"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Cells   []Cell `json:"cells"`
}

// UnmarshalJSON also accepts "celldata" in place of "cells".
func (s *Sheet) UnmarshalJSON(data []byte) error {
	type plain Sheet
	var raw struct {
		plain
		CellData []Cell `json:"celldata"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Sheet(raw.plain)
	if len(s.Cells) == 0 && len(raw.CellData) > 0 {
		s.Cells = raw.CellData
	}
	return nil
}

// SheetCollection is the ordered list of sheets exchanged at the boundary.
type SheetCollection []Sheet

// Names returns the sheet names in collection order.
func (sc SheetCollection) Names() []string {
	out := make([]string, len(sc))
	for i, s := range sc {
		out[i] = s.Name
	}
	return out
}
