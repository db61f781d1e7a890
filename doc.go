// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package tvbdd implements a three-valued extension of a shared,
// complement-edge Binary Decision Diagram (BDD) manager.
//
// Classical BDDs represent total Boolean functions over {0,1}. This package
// adds a third constant ⊥ ("unknown") to represent partiality, and centers
// its API on a family of *bounded* operators — AndReduced, XorReduced,
// IteReduced and the node-budget reducer ReduceByNodeLimit — that accept a
// per-call node budget and fold sub-results to ⊥ rather than exceed it. This
// makes it possible to manipulate approximations of Boolean functions that
// would otherwise be too large to represent exactly.
//
// A Manager owns the node table, the unique (hash-consing) table and the
// operator memoization caches; it plays the role the BuDDY/CUDD kernel plays
// in a classical package, generalized to three terminals. Like the classical
// two-valued engine this package is derived from, our default implementation
// of the Manager's unique table uses a standard Go runtime hashmap, so that
// it is straightforward to swap in a concurrency-safe map if needed.
//
// Node budgets are not a performance hint: AndReduced/XorReduced/IteReduced
// and ReduceByNodeLimit all guarantee that the number of newly interned
// nodes reachable from their result is bounded by the caller-supplied limit,
// at the cost of returning ⊥ (an approximation, never a wrong exact answer)
// wherever the budget ran out. See ReduceByNodeLimit and the package-level
// Example for a worked illustration.
package tvbdd
