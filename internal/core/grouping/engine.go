package grouping

import (
	"sort"

	"ledger-service/internal/domain"
)

// ParentContext holds, per parent type, the most recent parent row seen in the
// current scan. It is only mutated by Engine.Scan.
type ParentContext struct {
	last map[string]domain.Row
}

func newParentContext() *ParentContext {
	return &ParentContext{last: make(map[string]domain.Row)}
}

// Current returns the active parent row of the given parent type.
func (c *ParentContext) Current(parent string) (domain.Row, bool) {
	row, ok := c.last[parent]
	return row, ok
}

func (c *ParentContext) set(parent string, row domain.Row) {
	c.last[parent] = row
}

// Engine applies a Policy over the lines of one file.
type Engine struct {
	policy *Policy
}

// NewEngine creates an engine for policy (DefaultPolicy when nil).
func NewEngine(policy *Policy) *Engine {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Engine{policy: policy}
}

// Policy returns the engine's policy.
func (e *Engine) Policy() *Policy {
	return e.policy
}

// Scan groups lines in file order. file is the submission index stamped on
// every produced row.
//
// Transitions:
//   - parent line: becomes the active parent of its type and is emitted under
//     its own code;
//   - child line with an active parent: emitted under the parent's code;
//   - child line without an active parent: emitted under its own code;
//   - any other line: emitted under its own code and leaves the context alone.
func (e *Engine) Scan(lines []domain.TokenizedLine, file int) *domain.GroupedTable {
	table := domain.NewGroupedTable()
	ctx := newParentContext()
	ordinal := 0

	for _, line := range lines {
		code := line.Code()
		row := domain.Row{Code: code, Fields: line, File: file}

		if e.policy.IsParent(code) {
			ordinal++
			row.Group = ordinal
			ctx.set(code, row)
			table.Append(code, row)
			continue
		}
		if parentCode, ok := e.policy.ParentOf(code); ok {
			if parent, active := ctx.Current(parentCode); active {
				row.Group = parent.Group
				table.Append(parentCode, row)
				continue
			}
		}
		table.Append(code, row)
	}
	return table
}

// Reassemble re-sequences every parent table so that each parent occurrence
// forms one contiguous block: the parent row followed by its children. Parent
// occurrences keep their order and children keep their scan order. Applying it
// to an already grouped table is a no-op.
func Reassemble(table *domain.GroupedTable, policy *Policy) *domain.GroupedTable {
	for _, code := range table.Codes() {
		if !policy.IsParent(code) {
			continue
		}
		rows := append([]domain.Row(nil), table.Rows(code)...)
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].File != rows[j].File {
				return rows[i].File < rows[j].File
			}
			return rows[i].Group < rows[j].Group
		})
		table.Set(code, rows)
	}
	return table
}
