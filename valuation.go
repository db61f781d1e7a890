// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

// C5: the valuation restrictor. val is itself a three-valued BDD acting as a
// partial assignment: val==1 on a variable means "keep it", val==0 means
// "force the restriction to ⊥ here", val==⊥ means "forget this variable
// entirely". Ported near-line-for-line from the original source's
// Cudd_BddReduceByValuation (cuddBddUnknown.c), including the on-the-fly
// forgetting optimization of §4.5.

// ReduceByValuation restricts bdd according to val.
func ReduceByValuation(m *Manager, bdd, val Edge) Edge {
	m.initref()
	m.pushref(bdd)
	m.pushref(val)
	r := m.reduceByValuationRecur(bdd, val)
	m.popref(2)
	return r
}

// isSingleVar reports whether e's regular form is exactly a positive or
// negative literal of a single variable -- the regular forms of both stored
// children are the constant 1 (literals are stored as (var, 0, 1)) --
// mirroring Cudd_bddIsVar.
func (m *Manager) isSingleVar(e Edge) bool {
	if e.IsConst() {
		return false
	}
	reg := Regular(e)
	then, els := m.rawChildren(reg)
	return Regular(then).IsOne() && Regular(els).IsOne()
}

func (m *Manager) reduceByValuationRecur(bdd, val Edge) Edge {
	if bdd.IsConst() {
		return bdd
	}
	if val.IsOne() {
		return bdd
	}
	if val.IsZero() || val.IsUnknown() {
		return m.Unknown()
	}

	topb := m.levelOf(bdd)
	topv := m.levelOf(val)
	index := topb
	if topv < index {
		index = topv
	}

	if topb > topv && m.isSingleVar(val) {
		return bdd
	}

	var bt, be Edge
	if topb <= topv {
		bt, be = m.thenOf(bdd), m.elseOf(bdd)
	} else {
		bt, be = bdd, bdd
	}
	var vt, ve Edge
	if topb >= topv {
		vt, ve = m.thenOf(val), m.elseOf(val)
	} else {
		vt, ve = val, val
	}

	t := m.reduceByValuationRecur(bt, vt)
	m.pushref(t)
	e := m.reduceByValuationRecur(be, ve)
	m.pushref(e)

	var r Edge
	haveR := t == e
	if haveR {
		r = t
	}

	if topb < topv && m.isSingleVar(val) {
		vvar := m.variableOf(val)
		tReg := Regular(t)
		eReg := Regular(e)
		if !IsComplement(val) {
			if vvar == m.variableOf(tReg) {
				tThen, _ := m.rawChildren(tReg)
				if (!IsComplement(t) && tThen == e) || (IsComplement(t) && tThen == NotIfNotUnknown(e)) {
					t, e, index = e, m.Unknown(), vvar
				}
			} else if vvar == m.variableOf(eReg) {
				eThen, _ := m.rawChildren(eReg)
				if (!IsComplement(e) && eThen == t) || (IsComplement(e) && eThen == NotIfNotUnknown(t)) {
					e, index = m.Unknown(), vvar
				}
			}
		} else {
			if vvar == m.variableOf(tReg) {
				_, tElse := m.rawChildren(tReg)
				if (!IsComplement(t) && tElse == e) || (IsComplement(t) && tElse == NotIfNotUnknown(e)) {
					t, index = m.Unknown(), vvar
				}
			} else if vvar == m.variableOf(eReg) {
				_, eElse := m.rawChildren(eReg)
				if (!IsComplement(e) && eElse == t) || (IsComplement(e) && eElse == NotIfNotUnknown(t)) {
					e, t, index = t, m.Unknown(), vvar
				}
			}
		}
	}

	m.popref(2)

	if haveR {
		return r
	}
	result, err := m.mk(index, t, e)
	if err != nil {
		return m.seterror("reduceByValuation: %v", err)
	}
	return result
}
