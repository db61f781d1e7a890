// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

import "testing"

// TestReduceByValuationSemantics exercises P7 directly: val == x0 means
// "kept exactly where x0 is 1, forced to ⊥ where x0 is 0".
func TestReduceByValuationSemantics(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bdd, _ := XorReduced(m, m.Ithvar(0), m.Ithvar(1), nil, unboundedLimit)
	val := m.Ithvar(0)
	r := ReduceByValuation(m, bdd, val)
	allAssignments(2, func(assign []int) {
		got := evalEdge(m, r, assign)
		if assign[0] == 0 {
			if got != -1 {
				t.Fatalf("val(σ)==0 at %v must force ⊥, got %d", assign, got)
			}
			return
		}
		want := evalEdge(m, bdd, assign)
		if got != want {
			t.Fatalf("val(σ)==1 at %v must agree with bdd, got %d want %d", assign, got, want)
		}
	})
}

// TestReduceByValuationKeepsWhenValuationIsOne checks that val==1
// everywhere returns bdd unchanged (scenario where val is the constant 1).
func TestReduceByValuationKeepsWhenValuationIsOne(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bdd := m.Ithvar(0)
	if r := ReduceByValuation(m, bdd, m.One()); r != bdd {
		t.Fatalf("val==1 must return bdd unchanged, got %v", r)
	}
}

// TestReduceByValuationZeroEverywhere checks that val==0 forces ⊥
// regardless of bdd.
func TestReduceByValuationZeroEverywhere(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bdd := m.Ithvar(0)
	if r := ReduceByValuation(m, bdd, m.ZeroAsNotOne()); r != m.Unknown() {
		t.Fatalf("val==0 must force ⊥, got %v", r)
	}
}

// TestReduceByValuationForgottenVariable is scenario 6: bdd = x0⊕x1, val is
// ⊥ at x0 (a node (x0,⊥,⊥) collapsed to ⊥ itself) -- ReduceByValuation must
// return ⊥.
func TestReduceByValuationForgottenVariable(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bdd, _ := XorReduced(m, m.Ithvar(0), m.Ithvar(1), nil, unboundedLimit)
	r := ReduceByValuation(m, bdd, m.Unknown())
	if r != m.Unknown() {
		t.Fatalf("val==⊥ everywhere must forget everything, got %v", r)
	}
}

// TestIsSingleVar checks the Cudd_bddIsVar-mirroring predicate against both
// a literal and a non-literal node.
func TestIsSingleVar(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !m.isSingleVar(m.Ithvar(0)) {
		t.Fatalf("a bare literal must be reported as a single-variable node")
	}
	if !m.isSingleVar(m.NIthvar(0)) {
		t.Fatalf("the negative literal is also a single-variable node")
	}
	conj, _ := AndReduced(m, m.Ithvar(0), m.Ithvar(1), nil, unboundedLimit)
	if m.isSingleVar(conj) {
		t.Fatalf("a two-variable conjunction must not be reported as a single-variable node")
	}
}
