// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd_test

import (
	"log"

	"github.com/dalzilio/tvbdd"
)

// This example shows the basic usage of the package: build a few variables,
// combine them under a node budget, and reduce the result further once it's
// been computed. Not run with an `// Output:` comment since its numbers
// depend on the bounded-apply traversal order -- see the package tests for
// assertions that check exact semantics.
func Example_basic() {
	m, err := tvbdd.New(6, tvbdd.Nodesize(1000), tvbdd.Cachesize(256))
	if err != nil {
		log.Fatal(err)
	}
	// n1 == x1 ∧ x2 ∧ x5, computed exactly (a generous budget never folds).
	n1, _ := tvbdd.AndReduced(m, m.Ithvar(1), m.Ithvar(2), nil, 1<<20)
	n1, _ = tvbdd.AndReduced(m, n1, m.Ithvar(5), nil, 1<<20)
	// n2 == x0 ∨ ¬x3 ∨ x4
	n2, _ := tvbdd.OrReduced(m, m.Ithvar(0), m.NIthvar(3), nil, 1<<20)
	n2, _ = tvbdd.OrReduced(m, n2, m.Ithvar(4), nil, 1<<20)
	// n3 combines both under a tight node budget: any subterm beyond the
	// budget folds to ⊥ rather than growing the shared DAG without bound.
	n3, reduced := tvbdd.IteReduced(m, n1, n2, m.Unknown(), tvbdd.HeuristicOneStepGreedy, 4)
	log.Print(m.Stats())
	log.Printf("result-is-unknown=%v approximated=%v", n3 == m.Unknown(), reduced)
}
