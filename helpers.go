// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

// Tiny compositions over the bounded apply engine (§4.5/§6). A nil Heuristic
// falls back to the manager's configured default, same as the primitives
// they are built from.

// ForgetZeros raises every variable assignment that drove f to 0 to ⊥,
// keeping the 1-valuations intact: Or(f, ⊥).
func ForgetZeros(m *Manager, f Edge, h Heuristic, limit int) (Edge, bool) {
	return OrReduced(m, f, m.Unknown(), h, limit)
}

// ForgetOnes raises every variable assignment that drove f to 1 to ⊥,
// keeping the 0-valuations intact: And(f, ⊥).
func ForgetOnes(m *Manager, f Edge, h Heuristic, limit int) (Edge, bool) {
	return AndReduced(m, f, m.Unknown(), h, limit)
}

// MergeInterval combines an under- and an over-approximation into a single
// three-valued BDD: And(Or(under, ⊥), over). Wherever under and over agree,
// the result carries that value; wherever they disagree the result is ⊥.
func MergeInterval(m *Manager, under, over Edge, h Heuristic, limit int) (Edge, bool) {
	tmp, r1 := OrReduced(m, under, m.Unknown(), h, limit)
	result, r2 := AndReduced(m, tmp, over, h, limit)
	return result, r1 || r2
}
