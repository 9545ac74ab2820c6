// Package grouping associates child ledger records with the most recent parent
// record of their declared parent type.
package grouping

import (
	"fmt"
	"sort"
)

// DefaultRelations groups document items under their document header.
var DefaultRelations = map[string][]string{
	"C100": {"C170"},
	"A100": {"A170"},
}

// Policy declares which record types are parents and which child types belong
// to each of them.
type Policy struct {
	parentOf map[string]string
	children map[string][]string
}

// NewPolicy builds a policy from parent → children relations. A child may
// belong to a single parent, and a child type cannot be a parent itself.
func NewPolicy(relations map[string][]string) (*Policy, error) {
	p := &Policy{
		parentOf: make(map[string]string),
		children: make(map[string][]string),
	}
	parents := make([]string, 0, len(relations))
	for parent := range relations {
		parents = append(parents, parent)
	}
	sort.Strings(parents)

	for _, parent := range parents {
		if parent == "" {
			return nil, fmt.Errorf("registro pai vazio na política de agrupamento")
		}
		p.children[parent] = nil
		for _, child := range relations[parent] {
			if child == "" || child == parent {
				return nil, fmt.Errorf("registro filho inválido %q para o pai %s", child, parent)
			}
			if other, ok := p.parentOf[child]; ok && other != parent {
				return nil, fmt.Errorf("registro %s declarado como filho de %s e de %s", child, other, parent)
			}
			p.parentOf[child] = parent
			p.children[parent] = append(p.children[parent], child)
		}
	}
	for child := range p.parentOf {
		if _, ok := p.children[child]; ok {
			return nil, fmt.Errorf("registro %s não pode ser pai e filho ao mesmo tempo", child)
		}
	}
	return p, nil
}

// DefaultPolicy returns the policy built from DefaultRelations.
func DefaultPolicy() *Policy {
	p, err := NewPolicy(DefaultRelations)
	if err != nil {
		panic(err)
	}
	return p
}

// IsParent reports whether code is a declared parent type.
func (p *Policy) IsParent(code string) bool {
	_, ok := p.children[code]
	return ok
}

// ParentOf returns the parent type of a child type.
func (p *Policy) ParentOf(code string) (string, bool) {
	parent, ok := p.parentOf[code]
	return parent, ok
}

// Members returns code followed by the child types that can be grouped into
// its table.
func (p *Policy) Members(code string) []string {
	out := []string{code}
	return append(out, p.children[code]...)
}

// Parents returns the declared parent types in lexical order.
func (p *Policy) Parents() []string {
	out := make([]string, 0, len(p.children))
	for parent := range p.children {
		out = append(out, parent)
	}
	sort.Strings(out)
	return out
}
