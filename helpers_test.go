// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

import "testing"

// TestForgetZerosOfLiteral is scenario 1: ForgetZeros(x0) has truth table
// [⊥, 1] over the single variable.
func TestForgetZerosOfLiteral(t *testing.T) {
	m, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r, _ := ForgetZeros(m, m.Ithvar(0), nil, unboundedLimit)
	if got := evalEdge(m, r, []int{0}); got != -1 {
		t.Fatalf("ForgetZeros(x0) at x0=0: got %d, want ⊥", got)
	}
	if got := evalEdge(m, r, []int{1}); got != 1 {
		t.Fatalf("ForgetZeros(x0) at x0=1: got %d, want 1", got)
	}
}

// TestForgetOnesOfConjunction is scenario 2: ForgetOnes(x0∧x1) has truth
// table [0,0,0,⊥] over (x0,x1) in standard order.
func TestForgetOnesOfConjunction(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	conj, _ := AndReduced(m, m.Ithvar(0), m.Ithvar(1), nil, unboundedLimit)
	r, _ := ForgetOnes(m, conj, nil, unboundedLimit)
	want := map[[2]int]int{
		{0, 0}: 0,
		{0, 1}: 0,
		{1, 0}: 0,
		{1, 1}: -1,
	}
	for assign, exp := range want {
		if got := evalEdge(m, r, assign[:]); got != exp {
			t.Fatalf("ForgetOnes(x0∧x1) at %v: got %d want %d", assign, got, exp)
		}
	}
}

// TestMergeIntervalRecoversBothEnds is scenario 3: with u=x0∧x1, o=x0∨x1,
// MergeInterval(u,o) has truth table [0,⊥,⊥,1].
func TestMergeIntervalRecoversBothEnds(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	under, _ := AndReduced(m, m.Ithvar(0), m.Ithvar(1), nil, unboundedLimit)
	m.Ref(under)
	over, _ := OrReduced(m, m.Ithvar(0), m.Ithvar(1), nil, unboundedLimit)
	m.Ref(over)
	r, _ := MergeInterval(m, under, over, nil, unboundedLimit)
	want := map[[2]int]int{
		{0, 0}: 0,
		{0, 1}: -1,
		{1, 0}: -1,
		{1, 1}: 1,
	}
	for assign, exp := range want {
		if got := evalEdge(m, r, assign[:]); got != exp {
			t.Fatalf("MergeInterval(u,o) at %v: got %d want %d", assign, got, exp)
		}
	}
}

// TestMakesetScansetRoundTrip checks the Makeset/Scanset duality named in
// varset.go's doc comment.
func TestMakesetScansetRoundTrip(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	vars := []int{0, 2, 3}
	cube := m.Makeset(vars)
	got := m.Scanset(cube)
	seen := make(map[int]bool)
	for _, v := range got {
		seen[v] = true
	}
	for _, v := range vars {
		if !seen[v] {
			t.Fatalf("Scanset(Makeset(%v)) missing variable %d, got %v", vars, v, got)
		}
	}
	if len(got) != len(vars) {
		t.Fatalf("Scanset(Makeset(%v)) returned %v, length mismatch", vars, got)
	}
	allAssignments(4, func(assign []int) {
		want := 1
		for _, v := range vars {
			if assign[v] == 0 {
				want = 0
			}
		}
		if got := evalEdge(m, cube, assign); got != want {
			t.Fatalf("Makeset(%v) at %v: got %d want %d", vars, assign, got, want)
		}
	})
}
