// Package registry holds the record layouts of the SPED ledger: for every
// record-type code, the ordered list of its field names.
package registry

// Schema is the layout of one record type.
type Schema struct {
	Code   string
	Fields []string
}

// Registry is an immutable, ordered lookup of record layouts. It is safe for
// concurrent use.
type Registry struct {
	codes   []string
	schemas map[string][]string
}

// New builds a registry from schemas, keeping their order. A repeated code
// replaces the earlier layout but keeps the earlier position.
func New(schemas []Schema) *Registry {
	r := &Registry{schemas: make(map[string][]string, len(schemas))}
	for _, s := range schemas {
		if _, ok := r.schemas[s.Code]; !ok {
			r.codes = append(r.codes, s.Code)
		}
		fields := make([]string, len(s.Fields))
		copy(fields, s.Fields)
		r.schemas[s.Code] = fields
	}
	return r
}

// Default returns the EFD-Contribuições registry.
func Default() *Registry {
	return New(efdContribuicoes)
}

// Headers returns the field names of code, or an empty list when the code is
// unknown. The returned slice is a copy.
func (r *Registry) Headers(code string) []string {
	fields := r.schemas[code]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// Width returns the number of fields declared for code (0 when unknown).
func (r *Registry) Width(code string) int {
	return len(r.schemas[code])
}

// Has reports whether code is registered.
func (r *Registry) Has(code string) bool {
	_, ok := r.schemas[code]
	return ok
}

// Codes returns every registered code in registry order.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// FieldIndex returns the position of the named field within code's layout.
func (r *Registry) FieldIndex(code, name string) (int, bool) {
	for i, f := range r.schemas[code] {
		if f == name {
			return i, true
		}
	}
	return 0, false
}
