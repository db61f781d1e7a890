// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

// C4: the bounded apply engine. Three recursive primitives -- AndReduced,
// XorReduced, IteReduced -- carry a node budget alongside the classical
// Shannon-expansion apply scheme, folding to ⊥ whenever the combining step
// would exceed it. Derived operators (OrReduced, NandReduced, NorReduced,
// XnorReduced) are one-line compositions, following §4.4.

// cofactor returns e's then/else cofactor at the given top level: if e's own
// level differs from top, e does not depend on the variable at top yet, and
// both cofactors are e unchanged.
func (m *Manager) cofactor(e Edge, top int32) (then, els Edge) {
	if m.levelOf(e) != top {
		return e, e
	}
	return m.thenOf(e), m.elseOf(e)
}

// orderPair returns (a, b) in a fixed canonical order regardless of call
// order, so a commutative operator's cache key is shared between
// AndReduced(f,g,...) and AndReduced(g,f,...) (§4.4: "ordered by edge
// identity before the cache lookup").
func orderPair(f, g Edge) (Edge, Edge) {
	if g.node < f.node || (g.node == f.node && g.comp && !f.comp) {
		return g, f
	}
	return f, g
}

// *************************************************************************
// AndReduced

// AndReduced computes f ∧ g, using at most limit newly interned nodes and
// folding to ⊥ on exhaustion. A nil Heuristic falls back to the manager's
// configured default.
func AndReduced(m *Manager, f, g Edge, h Heuristic, limit int) (Edge, bool) {
	if h == nil {
		h = m.heuristic
	}
	return m.topApply2(tagAnd, f, g, h, limit)
}

// OrReduced(f,g) = ¬And(¬f, ¬g).
func OrReduced(m *Manager, f, g Edge, h Heuristic, limit int) (Edge, bool) {
	r, reduced := AndReduced(m, NotIfNotUnknown(f), NotIfNotUnknown(g), h, limit)
	return NotIfNotUnknown(r), reduced
}

// NandReduced(f,g) = ¬And(f,g).
func NandReduced(m *Manager, f, g Edge, h Heuristic, limit int) (Edge, bool) {
	r, reduced := AndReduced(m, f, g, h, limit)
	return NotIfNotUnknown(r), reduced
}

// NorReduced(f,g) = And(¬f,¬g).
func NorReduced(m *Manager, f, g Edge, h Heuristic, limit int) (Edge, bool) {
	return AndReduced(m, NotIfNotUnknown(f), NotIfNotUnknown(g), h, limit)
}

func (m *Manager) andRecur(f, g Edge, h Heuristic, limit int, consumed *int, reduced *bool) Edge {
	switch {
	case f == g:
		return m.reduceByNodeLimitRecur(f, h, limit, consumed, reduced)
	case f == NotIfNotUnknown(g):
		return m.ZeroAsNotOne()
	case f.IsOne():
		return m.reduceByNodeLimitRecur(g, h, limit, consumed, reduced)
	case g.IsOne():
		return m.reduceByNodeLimitRecur(f, h, limit, consumed, reduced)
	case f.IsZero() || g.IsZero():
		return m.ZeroAsNotOne()
	case f.IsUnknown() && g.IsUnknown():
		return m.Unknown()
	}
	// f == ⊥, g non-const (or symmetric) falls through: the recursion below
	// naturally ANDs ⊥ against both of g's cofactors.

	if limit <= 0 {
		*reduced = true
		return m.Unknown()
	}

	ca, cb := orderPair(f, g)
	useCache := m.refcountOf(ca) != 1 && m.refcountOf(cb) != 1
	if useCache {
		if cached, ok := m.cacheLookup(tagAnd, ca, cb, Edge{}); ok {
			return m.reduceByNodeLimitRecur(cached, h, limit, consumed, reduced)
		}
	}

	top := topLevel(m, f, g, Edge{})
	ft, fe := m.cofactor(f, top)
	gt, ge := m.cofactor(g, top)
	decision := h(m, f, g, Edge{})

	var t, e Edge
	var combined int
	if decision < 0 {
		c1 := 0
		t = m.andRecur(ft, gt, h, limit-1, &c1, reduced)
		m.pushref(t)
		c2 := 0
		e = m.andRecur(fe, ge, h, satSub(limit-1, c1), &c2, reduced)
		m.pushref(e)
		combined = c1 + c2
	} else {
		c1 := 0
		e = m.andRecur(fe, ge, h, limit-1, &c1, reduced)
		m.pushref(e)
		c2 := 0
		t = m.andRecur(ft, gt, h, satSub(limit-1, c1), &c2, reduced)
		m.pushref(t)
		combined = c1 + c2
	}

	if t == e {
		m.popref(2)
		*consumed += combined
		return t
	}
	if combined >= limit {
		m.popref(2)
		*reduced = true
		return m.Unknown()
	}
	r, err := m.mk(top, t, e)
	m.popref(2)
	if err != nil {
		return m.seterror("andRecur: %v", err)
	}
	*consumed = combined + 1
	if useCache && !*reduced {
		m.cacheInsert(tagAnd, ca, cb, Edge{}, r)
	}
	return r
}

// *************************************************************************
// XorReduced

// XorReduced computes f ⊕ g, using at most limit newly interned nodes.
func XorReduced(m *Manager, f, g Edge, h Heuristic, limit int) (Edge, bool) {
	if h == nil {
		h = m.heuristic
	}
	return m.topApply2(tagXor, f, g, h, limit)
}

// XnorReduced(f,g) = ¬Xor(f,g).
func XnorReduced(m *Manager, f, g Edge, h Heuristic, limit int) (Edge, bool) {
	r, reduced := XorReduced(m, f, g, h, limit)
	return NotIfNotUnknown(r), reduced
}

func (m *Manager) xorRecur(f, g Edge, h Heuristic, limit int, consumed *int, reduced *bool) Edge {
	switch {
	case f.IsUnknown() || g.IsUnknown():
		return m.Unknown()
	case f.IsZero():
		return m.reduceByNodeLimitRecur(g, h, limit, consumed, reduced)
	case g.IsZero():
		return m.reduceByNodeLimitRecur(f, h, limit, consumed, reduced)
	case f.IsOne():
		return m.reduceByNodeLimitRecur(NotIfNotUnknown(g), h, limit, consumed, reduced)
	case g.IsOne():
		return m.reduceByNodeLimitRecur(NotIfNotUnknown(f), h, limit, consumed, reduced)
	case f == g:
		return m.ZeroAsNotOne()
	case f == NotIfNotUnknown(g):
		return m.One()
	}

	if limit <= 0 {
		*reduced = true
		return m.Unknown()
	}

	ca, cb := orderPair(f, g)
	useCache := m.refcountOf(ca) != 1 && m.refcountOf(cb) != 1
	if useCache {
		if cached, ok := m.cacheLookup(tagXor, ca, cb, Edge{}); ok {
			return m.reduceByNodeLimitRecur(cached, h, limit, consumed, reduced)
		}
	}

	top := topLevel(m, f, g, Edge{})
	ft, fe := m.cofactor(f, top)
	gt, ge := m.cofactor(g, top)
	decision := h(m, f, g, Edge{})

	var t, e Edge
	var combined int
	if decision < 0 {
		c1 := 0
		t = m.xorRecur(ft, gt, h, limit-1, &c1, reduced)
		m.pushref(t)
		c2 := 0
		e = m.xorRecur(fe, ge, h, satSub(limit-1, c1), &c2, reduced)
		m.pushref(e)
		combined = c1 + c2
	} else {
		c1 := 0
		e = m.xorRecur(fe, ge, h, limit-1, &c1, reduced)
		m.pushref(e)
		c2 := 0
		t = m.xorRecur(ft, gt, h, satSub(limit-1, c1), &c2, reduced)
		m.pushref(t)
		combined = c1 + c2
	}

	if t == e {
		m.popref(2)
		*consumed += combined
		return t
	}
	if combined >= limit {
		m.popref(2)
		*reduced = true
		return m.Unknown()
	}
	r, err := m.mk(top, t, e)
	m.popref(2)
	if err != nil {
		return m.seterror("xorRecur: %v", err)
	}
	*consumed = combined + 1
	if useCache && !*reduced {
		m.cacheInsert(tagXor, ca, cb, Edge{}, r)
	}
	return r
}

// *************************************************************************
// IteReduced

// IteReduced computes ITE(f,g,h) = (f∧g) ∨ (¬f∧h), using at most limit newly
// interned nodes.
func IteReduced(m *Manager, f, g, h Edge, heur Heuristic, limit int) (Edge, bool) {
	if heur == nil {
		heur = m.heuristic
	}
	return m.topApply3(f, g, h, heur, limit)
}

func (m *Manager) iteRecur(f, g, h Edge, heur Heuristic, limit int, consumed *int, reduced *bool) Edge {
	// Normalize f to regular form: ITE(¬f,g,h) = ITE(f,h,g). Safe because an
	// edge to ⊥ is never represented with its complement bit set.
	if IsComplement(f) {
		f = Not(f)
		g, h = h, g
	}

	switch {
	case f.IsOne():
		return g
	case g == h:
		return g
	case g.IsOne() && h.IsZero():
		return f
	case g.IsZero() && h.IsOne():
		return NotIfNotUnknown(f)
	case g == NotIfNotUnknown(h):
		return m.xorRecur(f, NotIfNotUnknown(g), heur, limit, consumed, reduced)
	case f == g:
		return m.orRecur(f, h, heur, limit, consumed, reduced)
	case f == NotIfNotUnknown(g):
		return m.andRecur(NotIfNotUnknown(f), h, heur, limit, consumed, reduced)
	}

	unknowns := 0
	if f.IsUnknown() {
		unknowns++
	}
	if g.IsUnknown() {
		unknowns++
	}
	if h.IsUnknown() {
		unknowns++
	}
	if unknowns >= 2 || (f.IsUnknown() && g == NotIfNotUnknown(h)) {
		return m.Unknown()
	}

	if limit <= 0 {
		*reduced = true
		return m.Unknown()
	}

	useCache := m.refcountOf(f) != 1 && m.refcountOf(g) != 1 && m.refcountOf(h) != 1
	if useCache {
		if cached, ok := m.cacheLookup(tagIte, f, g, h); ok {
			return m.reduceByNodeLimitRecur(cached, heur, limit, consumed, reduced)
		}
	}

	top := topLevel(m, f, g, h)
	ft, fe := m.cofactor(f, top)
	gt, ge := m.cofactor(g, top)
	ht, he := m.cofactor(h, top)
	decision := heur(m, f, g, h)

	var t, e Edge
	var combined int
	if decision < 0 {
		c1 := 0
		t = m.iteRecur(ft, gt, ht, heur, limit-1, &c1, reduced)
		m.pushref(t)
		c2 := 0
		e = m.iteRecur(fe, ge, he, heur, satSub(limit-1, c1), &c2, reduced)
		m.pushref(e)
		combined = c1 + c2
	} else {
		c1 := 0
		e = m.iteRecur(fe, ge, he, heur, limit-1, &c1, reduced)
		m.pushref(e)
		c2 := 0
		t = m.iteRecur(ft, gt, ht, heur, satSub(limit-1, c1), &c2, reduced)
		m.pushref(t)
		combined = c1 + c2
	}

	if t == e {
		m.popref(2)
		*consumed += combined
		return t
	}
	if combined >= limit {
		m.popref(2)
		*reduced = true
		return m.Unknown()
	}
	r, err := m.mk(top, t, e)
	m.popref(2)
	if err != nil {
		return m.seterror("iteRecur: %v", err)
	}
	*consumed = combined + 1
	if useCache && !*reduced {
		m.cacheInsert(tagIte, f, g, h, r)
	}
	return r
}

// orRecur is the internal helper backing both OrReduced and the ITE(f,f,h)
// terminal rule; it never reorders operands for caching purposes since Or is
// expressed in terms of andRecur, which does its own normalization.
func (m *Manager) orRecur(f, g Edge, h Heuristic, limit int, consumed *int, reduced *bool) Edge {
	r := m.andRecur(NotIfNotUnknown(f), NotIfNotUnknown(g), h, limit, consumed, reduced)
	return NotIfNotUnknown(r)
}

// *************************************************************************
// Top-level retry loop (§4.4 "Retry on reorder / timeout", §9 "Retry loop").
//
// The Substrate this port runs on never actually triggers a reordering
// event (there is no dynamic reordering engine, per §1's Non-goals), so in
// practice the loop body runs exactly once; the structure is kept so a
// future substrate that does reorder slots in without changing any caller.

const maxReorderRetries = 3

func (m *Manager) topApply2(tag opTag, f, g Edge, h Heuristic, limit int) (Edge, bool) {
	var r Edge
	var reduced bool
	for attempt := 0; attempt < maxReorderRetries; attempt++ {
		m.initref()
		m.pushref(f)
		m.pushref(g)
		consumed := 0
		reduced = false
		var body func(Edge, Edge, Heuristic, int, *int, *bool) Edge
		if tag == tagXor {
			body = m.xorRecur
		} else {
			body = m.andRecur
		}
		r = body(f, g, h, limit, &consumed, &reduced)
		m.popref(2)
		m.clearBilledRecur(r)
		if m.err == errReorder {
			m.err = nil
			continue
		}
		if m.err == errTimeout {
			m.invokeTimeoutHandler()
		}
		return r, reduced
	}
	return m.seterror("topApply2: exhausted reorder retries"), reduced
}

func (m *Manager) topApply3(f, g, h Edge, heur Heuristic, limit int) (Edge, bool) {
	var r Edge
	var reduced bool
	for attempt := 0; attempt < maxReorderRetries; attempt++ {
		m.initref()
		m.pushref(f)
		m.pushref(g)
		m.pushref(h)
		consumed := 0
		reduced = false
		r = m.iteRecur(f, g, h, heur, limit, &consumed, &reduced)
		m.popref(3)
		m.clearBilledRecur(r)
		if m.err == errReorder {
			m.err = nil
			continue
		}
		if m.err == errTimeout {
			m.invokeTimeoutHandler()
		}
		return r, reduced
	}
	return m.seterror("topApply3: exhausted reorder retries"), reduced
}

func (m *Manager) invokeTimeoutHandler() {
	if m.timeoutHandler != nil {
		m.timeoutHandler(m)
		return
	}
	m.logger().Warn("operation deadline expired")
}
