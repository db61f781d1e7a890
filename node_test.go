// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

import "testing"

// TestMkHashConsing exercises P1(c): two calls to mk with the same
// (var, then, else) triple must return the same node.
func TestMkHashConsing(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, err := m.mk(2, m.One(), m.ZeroAsNotOne())
	if err != nil {
		t.Fatalf("mk: %v", err)
	}
	b, err := m.mk(2, m.One(), m.ZeroAsNotOne())
	if err != nil {
		t.Fatalf("mk: %v", err)
	}
	if a != b {
		t.Fatalf("expected hash-consed node, got distinct edges %v != %v", a, b)
	}
}

// TestMkReducedness exercises P1(a): then==else collapses, no node built.
func TestMkReducedness(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := m.produced
	r, err := m.mk(1, m.Ithvar(0), m.Ithvar(0))
	if err != nil {
		t.Fatalf("mk: %v", err)
	}
	if r != m.Ithvar(0) {
		t.Fatalf("expected then==else to collapse to the shared operand, got %v", r)
	}
	if m.produced != before {
		t.Fatalf("mk should not have interned a new node, produced went from %d to %d", before, m.produced)
	}
}

// TestMkNoElseComplement exercises P1(b): a proposed else that is a
// complement edge gets pushed to the incoming edge (complementing then too),
// and the stored else of the resulting internal node is never a complement
// edge pointing at another internal node.
func TestMkNoElseComplement(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// then = Not(Ithvar(3)) is the regular edge to the literal node of
	// variable 3; else = Ithvar(3) is the complement edge to that same
	// internal node, so both operands are non-terminal.
	r, err := m.mk(2, Not(m.Ithvar(3)), m.Ithvar(3))
	if err != nil {
		t.Fatalf("mk: %v", err)
	}
	if !IsComplement(r) {
		t.Fatalf("expected the incoming edge to carry the complement bit, got %v", r)
	}
	reg := Regular(r)
	if got := m.thenOf(reg); got != m.Ithvar(3) {
		t.Fatalf("then edge of canonical node %v should be the complemented proposal %v, got %v", reg, m.Ithvar(3), got)
	}
	els := m.elseOf(reg)
	if IsComplement(els) && !Regular(els).IsConst() {
		t.Fatalf("else edge of %v is complemented and points at a non-constant node: %v", reg, els)
	}
}

// TestLiteralElseIsRegular checks that the base-case variable literals
// registered in New never store a complemented else: the positive literal is
// obtained by complementing the incoming edge to the shared negative-shape
// node, not by interning a second node with else=0.
func TestLiteralElseIsRegular(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pos := m.Ithvar(1)
	neg := m.NIthvar(1)
	if Regular(pos) != Regular(neg) {
		t.Fatalf("expected the positive and negative literal to share one node, got %v and %v", pos, neg)
	}
	if !IsComplement(pos) {
		t.Fatalf("expected the positive literal to be the complemented edge, got %v", pos)
	}
	if IsComplement(neg) {
		t.Fatalf("expected the negative literal to be the regular edge, got %v", neg)
	}
	if els := m.elseOf(neg); IsComplement(els) {
		t.Fatalf("stored else of the literal node must be regular, got %v", els)
	}
}

// TestMkUnknownCanonicalForm exercises invariant 4: (var, ⊥, ¬x) must be
// rewritten to (var, ⊥, x) with a complemented incoming edge.
func TestMkUnknownCanonicalForm(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r, err := m.mk(1, m.Unknown(), m.ZeroAsNotOne())
	if err != nil {
		t.Fatalf("mk: %v", err)
	}
	if !IsComplement(r) {
		t.Fatalf("expected complemented incoming edge, got %v", r)
	}
	reg := Regular(r)
	if then := m.thenOf(reg); !then.IsUnknown() {
		t.Fatalf("expected then==⊥ preserved in canonical form, got %v", then)
	}
	if els := m.elseOf(reg); IsComplement(els) {
		t.Fatalf("canonical form's else must not be complemented, got %v", els)
	}
}

// TestNoUselessUnknownSplit exercises invariant 5: both branches == ⊥ must
// collapse to the shared ⊥ terminal, never build a distinct internal node.
func TestNoUselessUnknownSplit(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r, err := m.mk(0, m.Unknown(), m.Unknown())
	if err != nil {
		t.Fatalf("mk: %v", err)
	}
	if !r.IsUnknown() {
		t.Fatalf("expected the shared ⊥ terminal, got %v", r)
	}
}

func TestNotIfNotUnknownIsSelfComplementOnUnknown(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := NotIfNotUnknown(m.Unknown()); got != m.Unknown() {
		t.Fatalf("⊥ must be its own complement, got %v", got)
	}
	if got := NotIfNotUnknown(m.One()); got != m.ZeroAsNotOne() {
		t.Fatalf("NotIfNotUnknown(1) should be 0, got %v", got)
	}
}
