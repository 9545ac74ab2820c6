package parser

import (
	"strings"

	"ledger-service/internal/core/registry"
	"ledger-service/internal/domain"
)

// ProvenanceSpec names the master record and the fields identifying a file.
type ProvenanceSpec struct {
	Master      string `yaml:"master"`
	PeriodStart string `yaml:"period_start"`
	PeriodEnd   string `yaml:"period_end"`
	TaxpayerID  string `yaml:"taxpayer_id"`
}

// DefaultProvenanceSpec reads DT_INI, DT_FIN and CNPJ from the 0000 record.
var DefaultProvenanceSpec = ProvenanceSpec{
	Master:      "0000",
	PeriodStart: "DT_INI",
	PeriodEnd:   "DT_FIN",
	TaxpayerID:  "CNPJ",
}

// positions used when the registry does not describe the master record
var fallbackProvenancePositions = [3]int{5, 6, 8}

// ProvenanceExtractor pulls the FileProvenance triple out of a file's master
// record. Field positions are resolved once, at construction.
type ProvenanceExtractor struct {
	master    string
	positions [3]int
}

// NewProvenanceExtractor resolves spec's field names against reg.
func NewProvenanceExtractor(reg *registry.Registry, spec ProvenanceSpec) *ProvenanceExtractor {
	if spec.Master == "" {
		spec = DefaultProvenanceSpec
	}
	p := &ProvenanceExtractor{master: spec.Master, positions: fallbackProvenancePositions}
	for i, name := range []string{spec.PeriodStart, spec.PeriodEnd, spec.TaxpayerID} {
		if idx, ok := reg.FieldIndex(spec.Master, name); ok {
			p.positions[i] = idx
		}
	}
	return p
}

// Positions returns the resolved field positions (start, end, taxpayer).
func (p *ProvenanceExtractor) Positions() [3]int {
	return p.positions
}

// Extract reads the first master record in lines. A file without one gets the
// empty triple.
func (p *ProvenanceExtractor) Extract(lines []domain.TokenizedLine) domain.FileProvenance {
	for _, l := range lines {
		if l.Code() != p.master {
			continue
		}
		return domain.FileProvenance{
			PeriodStart: field(l, p.positions[0]),
			PeriodEnd:   field(l, p.positions[1]),
			TaxpayerID:  field(l, p.positions[2]),
		}
	}
	return domain.FileProvenance{}
}

func field(l domain.TokenizedLine, i int) string {
	if i < 0 || i >= len(l) {
		return ""
	}
	return strings.TrimSpace(l[i])
}
