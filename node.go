// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

// node is an internal node: a tuple (var_index, then_edge, else_edge). A free
// slot in the manager's node table is marked by variable == -1; its then
// field then carries the index of the next free slot (the same free-list
// convention used by the teacher's huddnode).
type node struct {
	variable int32
	then     Edge
	els      Edge
	refcou   int32
	billed   bool // transient "visited & billed" MAXREF mark, see reduce.go
	gcmark   bool // transient reachability mark used only inside gbc (manager.go)
}

func (n *node) free() bool { return n.variable == -1 }

// nodeKey is the unique-table lookup key for invariant 1 (hash-consing): any
// two internal nodes equal in (var_index, then_edge, else_edge) are the same
// node. Unlike the teacher's byte-buffer hash (hudd.go: huddhash/nodehash),
// we let the Go runtime hash an ordinary comparable struct directly — the
// teacher's manual byte packing exists only to dodge a per-call allocation in
// a hashmap keyed on a fixed-size array; a plain struct key gets the same
// allocation-free behavior from the runtime map implementation for free.
type nodeKey struct {
	variable int32
	then     Edge
	els      Edge
}

// rawLevel returns the level of the node a raw ref points to; used internally
// by levelOf.
func (m *Manager) rawLevel(ref int32) int32 {
	if ref == unknownRef {
		return maxLevel
	}
	return m.perm[m.nodes[ref].variable]
}

// perm has length varnum+1, with the identity entry perm[varnum] == varnum
// serving as the constant terminal's pseudo-level (one step deeper than any
// real variable, shallower than ⊥'s maxLevel).

// levelOf returns the level of the node reachable from e, with ⊥ assigned the
// pseudo-level +∞ (maxLevel) so that ⊥ is always deeper than any internal
// node, per §3's "Variable order" paragraph.
func (m *Manager) levelOf(e Edge) int32 {
	return m.rawLevel(e.node)
}

// thenOf/elseOf follow the then/else branch of e, properly propagating e's
// complement bit (NotIfNotUnknown, since ⊥ self-complements).
func (m *Manager) thenOf(e Edge) Edge {
	if e.IsConst() {
		return e
	}
	n := &m.nodes[e.node]
	if e.comp {
		return NotIfNotUnknown(n.then)
	}
	return n.then
}

func (m *Manager) elseOf(e Edge) Edge {
	if e.IsConst() {
		return e
	}
	n := &m.nodes[e.node]
	if e.comp {
		return NotIfNotUnknown(n.els)
	}
	return n.els
}

func (m *Manager) variableOf(e Edge) int32 {
	if e.IsConst() {
		return m.varnum
	}
	return m.nodes[e.node].variable
}

// mk is the canonical node constructor of C1: given a proposed (variable,
// then, else) triple it enforces invariants 1-5 and returns the resulting
// edge, atomically with the unique-table lookup.
//
// The stored else edge is always regular: a complemented else is pushed to
// the incoming edge, complementing then as well (⊥ stays ⊥). When else is
// ⊥, which has no polarity, the stored then edge is made regular instead.
// The literals interned by New, (var, 0, 1), already have this shape.
func (m *Manager) mk(variable int32, then, els Edge) (Edge, error) {
	if then == els {
		return then, nil
	}
	if IsComplement(els) || (els.IsUnknown() && IsComplement(then)) {
		child, err := m.unique(variable, NotIfNotUnknown(then), NotIfNotUnknown(els))
		if err != nil {
			return Edge{}, err
		}
		return Not(child), nil
	}
	return m.unique(variable, then, els)
}

// unique performs the hash-consed lookup-or-create of a regular-form node,
// generalizing the teacher's makenode (hkernel.go) with GC-then-resize
// fallback when the table is full.
func (m *Manager) unique(variable int32, then, els Edge) (Edge, error) {
	m.cacheStats.uniqueAccess++
	key := nodeKey{variable: variable, then: then, els: els}
	if ref, ok := m.unique_[key]; ok {
		m.cacheStats.uniqueHit++
		return Edge{node: ref}, nil
	}
	m.cacheStats.uniqueMiss++
	if m.checkDeadline() {
		return Edge{}, errTimeout
	}
	if m.freepos == 0 {
		m.gbc()
		if (m.freenum*100)/len(m.nodes) <= m.minfreenodes {
			if err := m.noderesize(); err != nil {
				return Edge{}, err
			}
		}
		if m.freepos == 0 {
			return Edge{}, errMemory
		}
	}
	m.produced++
	ref := m.freepos
	m.freepos = m.nodes[ref].then.node
	m.nodes[ref] = node{variable: variable, then: then, els: els, refcou: 0}
	m.unique_[key] = ref
	m.freenum--
	return Edge{node: ref}, nil
}

func (m *Manager) delnode(ref int32) {
	n := &m.nodes[ref]
	delete(m.unique_, nodeKey{variable: n.variable, then: n.then, els: n.els})
}
