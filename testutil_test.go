// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

// evalEdge evaluates e under a total assignment (1 or 0 per variable index),
// returning 1, 0 or -1 (⊥), used throughout the property tests below to
// avoid depending on any particular textual dump format.
func evalEdge(m *Manager, e Edge, assign []int) int {
	for {
		switch {
		case e.IsOne():
			return 1
		case e.IsZero():
			return 0
		case e.IsUnknown():
			return -1
		}
		v := m.variableOf(e)
		if assign[v] == 1 {
			e = m.thenOf(e)
		} else {
			e = m.elseOf(e)
		}
	}
}

// allAssignments calls f with every total {0,1} assignment over n variables.
func allAssignments(n int, f func(assign []int)) {
	assign := make([]int, n)
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			f(assign)
			return
		}
		assign[i] = 0
		rec(i + 1)
		assign[i] = 1
		rec(i + 1)
	}
	rec(0)
}
