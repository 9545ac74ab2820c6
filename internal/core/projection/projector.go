// Package projection turns grouped ledger tables into sheets of cells and
// rebuilds ledger rows from (possibly edited) sheets.
package projection

import (
	"fmt"
	"strings"

	"ledger-service/internal/core/grouping"
	"ledger-service/internal/core/registry"
	"ledger-service/internal/domain"
)

// syntheticHeaderFormat names the columns of record types the registry does
// not describe.
const syntheticHeaderFormat = "CAMPO_%02d"

// Projector builds sheets from grouped tables.
type Projector struct {
	registry *registry.Registry
	policy   *grouping.Policy
}

// NewProjector creates a Projector. A nil policy means DefaultPolicy.
func NewProjector(reg *registry.Registry, policy *grouping.Policy) *Projector {
	if policy == nil {
		policy = grouping.DefaultPolicy()
	}
	return &Projector{registry: reg, policy: policy}
}

// Project builds one sheet per table key. Keys listed in priority come first,
// in priority order; the rest follow in first-encounter order. A nil priority
// means registry order. tagged adds the provenance header columns.
func (p *Projector) Project(table *domain.GroupedTable, priority []string, tagged bool) domain.SheetCollection {
	if priority == nil {
		priority = p.registry.Codes()
	}
	sheets := make(domain.SheetCollection, 0, len(table.Codes()))
	placed := make(map[string]bool)
	for _, code := range priority {
		if placed[code] || !table.Has(code) {
			continue
		}
		placed[code] = true
		sheets = append(sheets, p.sheet(code, table.Rows(code), tagged, len(sheets)))
	}
	for _, code := range table.Codes() {
		if placed[code] {
			continue
		}
		placed[code] = true
		sheets = append(sheets, p.sheet(code, table.Rows(code), tagged, len(sheets)))
	}
	return sheets
}

func (p *Projector) sheet(code string, rows []domain.Row, tagged bool, order int) domain.Sheet {
	header, limit := p.header(code, rows)
	if tagged {
		header = append(domain.ProvenanceHeaders(), header...)
		if limit > 0 {
			limit += domain.ProvenanceColumns
		}
	}

	s := domain.Sheet{Name: code, Order: order, Rows: len(rows) + 1}
	s.Cells = make([]domain.Cell, 0, len(header)*(len(rows)+1))
	for col, name := range header {
		s.Cells = append(s.Cells, domain.NewTextCell(0, col, name))
	}
	s.Columns = len(header)

	for i, row := range rows {
		values := row.Values()
		if limit > 0 && len(values) > limit {
			values = values[:limit]
		}
		for col, v := range values {
			s.Cells = append(s.Cells, domain.NewTextCell(i+1, col, strings.TrimSpace(v)))
		}
		if len(values) > s.Columns {
			s.Columns = len(values)
		}
	}
	return s
}

// header returns the header of code's sheet and the expected row width
// (0 when rows are not truncated). Known codes take the widest layout among
// the code and the child types grouped into it; the header is completed with
// the field names of that widest layout.
func (p *Projector) header(code string, rows []domain.Row) ([]string, int) {
	if !p.registry.Has(code) {
		width := 0
		for _, r := range rows {
			if len(r.Fields) > width {
				width = len(r.Fields)
			}
		}
		header := make([]string, width)
		for i := range header {
			header[i] = fmt.Sprintf(syntheticHeaderFormat, i+1)
		}
		return header, 0
	}

	header := p.registry.Headers(code)
	for _, member := range p.policy.Members(code)[1:] {
		wider := p.registry.Headers(member)
		if len(wider) > len(header) {
			header = append(header, wider[len(header):]...)
		}
	}
	return header, len(header)
}
