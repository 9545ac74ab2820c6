// package domain/models.go
package domain

import (
	"strings"
	"time"
)

// RecordTypeCode identifies the layout of a ledger line (field 0, e.g. "C100").
type RecordTypeCode = string

// TokenizedLine holds the fields of one ledger line. Index 0 is the record code.
type TokenizedLine []string

// Code returns the record-type code of the line.
func (l TokenizedLine) Code() RecordTypeCode {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Provenance column names prepended to tagged rows, in this order.
const (
	ProvenancePeriodStart = "ID_DT_INI"
	ProvenancePeriodEnd   = "ID_DT_FIN"
	ProvenanceTaxpayerID  = "ID_CNPJ"
)

// ProvenanceColumns is the number of synthetic columns carried by tagged rows.
const ProvenanceColumns = 3

// ProvenanceHeaders returns the header names of the synthetic provenance columns.
func ProvenanceHeaders() []string {
	return []string{ProvenancePeriodStart, ProvenancePeriodEnd, ProvenanceTaxpayerID}
}

// FileProvenance identifies the source file a row came from.
type FileProvenance struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	TaxpayerID  string `json:"taxpayer_id"`
}

// Columns returns the provenance as the leading synthetic columns of a row.
func (p FileProvenance) Columns() []string {
	return []string{p.PeriodStart, p.PeriodEnd, p.TaxpayerID}
}

// ID synthesises the identifier used to name the file of origin on export.
func (p FileProvenance) ID() string {
	return strings.Join(p.Columns(), "_")
}

// IsZero reports whether no master record was found for the file.
func (p FileProvenance) IsZero() bool {
	return p.PeriodStart == "" && p.PeriodEnd == "" && p.TaxpayerID == ""
}

// Row is one grouped ledger line.
type Row struct {
	// Code is the record type of the line itself, which differs from the table
	// key when a child row was grouped under its parent.
	Code   RecordTypeCode
	Fields TokenizedLine
	// Provenance is set when the row was tagged during cross-file merge.
	Provenance *FileProvenance
	// File is the submission index of the source file.
	File int
	// Group is the 1-based ordinal of the parent occurrence inside the file,
	// zero for rows that are not part of a parent group.
	Group int
}

// Values returns the cell values of the row: provenance columns first when the
// row is tagged, then the ledger fields.
func (r Row) Values() []string {
	if r.Provenance == nil {
		out := make([]string, len(r.Fields))
		copy(out, r.Fields)
		return out
	}
	out := make([]string, 0, ProvenanceColumns+len(r.Fields))
	out = append(out, r.Provenance.Columns()...)
	return append(out, r.Fields...)
}

// GroupedTable maps record codes to their rows, remembering the order in which
// codes were first seen.
type GroupedTable struct {
	order []RecordTypeCode
	rows  map[RecordTypeCode][]Row
}

// NewGroupedTable creates an empty table.
func NewGroupedTable() *GroupedTable {
	return &GroupedTable{rows: make(map[RecordTypeCode][]Row)}
}

// Append adds rows under the given code.
func (t *GroupedTable) Append(code RecordTypeCode, rows ...Row) {
	if _, ok := t.rows[code]; !ok {
		t.order = append(t.order, code)
	}
	t.rows[code] = append(t.rows[code], rows...)
}

// Rows returns the rows stored under code.
func (t *GroupedTable) Rows(code RecordTypeCode) []Row {
	return t.rows[code]
}

// Set replaces the rows stored under an existing or new code.
func (t *GroupedTable) Set(code RecordTypeCode, rows []Row) {
	if _, ok := t.rows[code]; !ok {
		t.order = append(t.order, code)
	}
	t.rows[code] = rows
}

// Has reports whether any row was stored under code.
func (t *GroupedTable) Has(code RecordTypeCode) bool {
	_, ok := t.rows[code]
	return ok
}

// Codes returns the table keys in first-encounter order.
func (t *GroupedTable) Codes() []RecordTypeCode {
	out := make([]RecordTypeCode, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the total number of rows in the table.
func (t *GroupedTable) Len() int {
	n := 0
	for _, rows := range t.rows {
		n += len(rows)
	}
	return n
}

// Concat appends every row of other, key by key, keeping other's order.
func (t *GroupedTable) Concat(other *GroupedTable) {
	if other == nil {
		return
	}
	for _, code := range other.order {
		t.Append(code, other.rows[code]...)
	}
}

// Document is the persisted sheet collection of one company.
type Document struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Sheets    SheetCollection `json:"sheets"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FileError reports a file that could not be processed in a batch.
type FileError struct {
	FileName string `json:"filename,omitempty"`
	Error    string `json:"error"`
}

// UploadResult is the aggregate result of an upload batch.
type UploadResult struct {
	Data   []*Document `json:"data"`
	Errors []FileError `json:"errors"`
}
