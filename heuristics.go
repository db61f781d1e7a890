// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

// Heuristic is the pluggable traversal policy of C2: given one to three
// edges meeting at a common top variable it decides whether the then- or
// the else-cofactor should be explored first. Unused operands (g, h) are
// passed as the zero Edge (absent); a caller passing a real operand never
// legitimately produces the zero edge, since node id 0 is reserved for NULL
// and never interned. Negative return means then-first, non-negative means
// else-first — the ABI named in §6.
type Heuristic func(m *Manager, f, g, h Edge) int

// HeuristicRandom is the "Random" policy of §4.2, backed by Manager.Random
// (the Substrate primitive named in §6/§9).
func HeuristicRandom(m *Manager, f, g, h Edge) int {
	if m.Random()%2 == 0 {
		return -1
	}
	return 1
}

// topLevel returns the minimum level among the present operands (g, h may be
// the zero Edge to signal "absent"), mirroring DD_GET_NODE_INDEX/ddMin in the
// original source.
func topLevel(m *Manager, f, g, h Edge) int32 {
	idx := m.levelOf(f)
	if !g.isNull() {
		if l := m.levelOf(g); l < idx {
			idx = l
		}
	}
	if !h.isNull() {
		if l := m.levelOf(h); l < idx {
			idx = l
		}
	}
	return idx
}

// rawChildren returns the regular-form then/else children stored at e's
// target node directly, ignoring e's own complement bit — the heuristics
// only ever reason about structure and constantness, which complementing
// the parent edge does not change. Mirrors the C source reading cuddT(F)/
// cuddE(F) off the already-Cudd_Regular(f) pointer F.
func (m *Manager) rawChildren(e Edge) (then, els Edge) {
	n := &m.nodes[e.node]
	return n.then, n.els
}

// HeuristicOneStepGreedy is the "OneStep-Greedy" policy of §4.2.
func HeuristicOneStepGreedy(m *Manager, f, g, h Edge) int {
	top := topLevel(m, f, g, h)
	var tconst, econst, tscore, escore int32

	consider := func(op Edge) {
		if m.levelOf(op) != top {
			return
		}
		then, els := m.rawChildren(op)
		if then.IsConst() {
			tconst++
		} else {
			tscore += m.levelOf(then)
		}
		if els.IsConst() {
			econst++
		} else {
			escore += m.levelOf(els)
		}
	}
	consider(f)
	if !g.isNull() {
		consider(g)
	}
	if !h.isNull() {
		consider(h)
	}
	return greedyVerdict(m, tconst, econst, tscore, escore)
}

// HeuristicTwoStepGreedy is the "TwoStep-Greedy" policy of §4.2: the same
// counting scheme, one Shannon step deeper, with a terminal cofactor
// contributing a bonus of 8 (approximating "a whole terminal subtree").
func HeuristicTwoStepGreedy(m *Manager, f, g, h Edge) int {
	top := topLevel(m, f, g, h)
	var tconst, econst, tscore, escore int32

	countGrandchildren := func(op Edge, con, score *int32) {
		if op.IsConst() {
			*con += 8
			return
		}
		then, els := m.rawChildren(op)
		countNodeScore(m, then, con, score)
		countNodeScore(m, els, con, score)
	}

	consider := func(op Edge) {
		if m.levelOf(op) != top {
			return
		}
		then, els := m.rawChildren(op)
		countGrandchildren(then, &tconst, &tscore)
		countGrandchildren(els, &econst, &escore)
	}
	consider(f)
	if !g.isNull() {
		consider(g)
	}
	if !h.isNull() {
		consider(h)
	}
	return greedyVerdict(m, tconst, econst, tscore, escore)
}

// countNodeScore tallies a single edge into (con, score): constants add one
// to con; everything else adds its level to score. Mirrors the C source's
// countNodeScore exactly (note it is NOT the "bonus of 8" rule — that only
// applies at the direct-cofactor level in HeuristicTwoStepGreedy above).
func countNodeScore(m *Manager, e Edge, con, score *int32) {
	if e.IsConst() {
		*con++
		return
	}
	*score += m.levelOf(e)
}

// greedyVerdict implements the tie-breaking rule shared by both greedy
// heuristics: prefer more terminal cofactors, then the larger score (deeper
// variables first), then a coin flip.
func greedyVerdict(m *Manager, tconst, econst, tscore, escore int32) int {
	switch {
	case tconst > econst || (tconst == econst && tscore > escore):
		return -1
	case tconst < econst || (tconst == econst && tscore < escore):
		return 1
	default:
		if m.Random()%2 == 0 {
			return -1
		}
		return 1
	}
}
