// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// unboundedLimit is passed to AndReduced by Makeset, which always wants the
// exact cube, never an approximation -- the teacher's own Makeset (Apply with
// OPand) has no budget notion at all, so this stands in for "no limit".
const unboundedLimit = 1 << 30

// Makeset returns the cube (conjunction of positive literals) of vars. It is
// the dual of Scanset: Scanset(Makeset(vars)) recovers the same set (not
// necessarily in the same order, since it follows level order). Grounded on
// the teacher's Makeset, which folds the variables through Apply(..., OPand)
// rather than poking at node internals directly -- going through AndReduced
// here keeps every intermediate node canonical via its own terminal rules,
// instead of risking a direct mk() call with a bare constant operand.
func (m *Manager) Makeset(vars []int) Edge {
	sorted := append([]int(nil), vars...)
	sort.Slice(sorted, func(i, j int) bool { return m.perm[sorted[i]] > m.perm[sorted[j]] })
	res := m.One()
	for _, v := range sorted {
		if v < 0 || v >= int(m.varnum) {
			return m.seterror("Makeset: variable %d out of range", v)
		}
		next, _ := AndReduced(m, res, m.Ithvar(v), m.heuristic, unboundedLimit)
		if m.err != nil {
			return m.seterror("Makeset: %v", m.err)
		}
		res = next
	}
	return res
}

// Scanset returns the variables found while following the then-branch of a
// cube edge built by Makeset. The result follows level order.
func (m *Manager) Scanset(e Edge) []int {
	if e.IsConst() {
		return nil
	}
	var res []int
	for cur := e; !cur.IsConst(); cur = m.thenOf(cur) {
		res = append(res, int(m.variableOf(cur)))
	}
	return res
}

// VarsetBitmap renders a variable index slice as a bitset.BitSet, a compact
// description of which variables an operation should touch (e.g. which
// variables a valuation forgets). Nothing else in this module calls it.
func VarsetBitmap(vars []int) *bitset.BitSet {
	bs := bitset.New(uint(len(vars)))
	for _, v := range vars {
		bs.Set(uint(v))
	}
	return bs
}
