// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

// Edge is a pair (target node, complement bit) and is the only value the
// engine passes around — a node is never handled without its polarity. The
// complement bit inverts the Boolean value reached by following the edge,
// with the exception that the value ⊥ is its own complement: inverting an
// edge that points to ⊥ still denotes ⊥ (see Not/NotIfNotUnknown below).
//
// The zero value of Edge (node id 0) is never assigned to a real node and is
// used throughout the package as the NULL/error-signal edge described in the
// error handling design: a failed UniqueInter call, a timeout, or a
// reordering retry request all propagate as Edge{}.
type Edge struct {
	node int32
	comp bool
}

// reserved node identifiers; 0 is NULL, 1 is the 1/0 terminal, 2 is ⊥.
const (
	nullRef    int32 = 0
	oneRef     int32 = 1
	unknownRef int32 = 2
)

// One is the constant true edge.
func (m *Manager) One() Edge { return Edge{node: oneRef, comp: false} }

// ZeroAsNotOne is the constant false edge, encoded as the complement of One,
// per invariant: "0 is encoded as the complement edge to 1".
func (m *Manager) ZeroAsNotOne() Edge { return Edge{node: oneRef, comp: true} }

// Unknown is the ⊥ terminal edge. It has no polarity: Not(Unknown()) ==
// Unknown().
func (m *Manager) Unknown() Edge { return Edge{node: unknownRef, comp: false} }

// isNull reports whether e is the NULL/error-signal edge.
func (e Edge) isNull() bool { return e.node == nullRef }

// IsConst reports whether e denotes one of the three terminals (1, 0 or ⊥).
func (e Edge) IsConst() bool { return e.node == oneRef || e.node == unknownRef }

// IsUnknown reports whether e denotes ⊥.
func (e Edge) IsUnknown() bool { return e.node == unknownRef }

// IsOne reports whether e denotes the constant 1.
func (e Edge) IsOne() bool { return e.node == oneRef && !e.comp }

// IsZero reports whether e denotes the constant 0.
func (e Edge) IsZero() bool { return e.node == oneRef && e.comp }

// Regular strips the complement bit, returning the edge to the same target
// node with positive polarity.
func Regular(e Edge) Edge { return Edge{node: e.node, comp: false} }

// IsComplement reports whether e carries the complement bit.
func IsComplement(e Edge) bool { return e.comp }

// Not unconditionally flips the complement bit of e. This is the low-level
// primitive; it must only be used where e is known not to target ⊥ (e.g. on
// a then/else child edge already established not to be ⊥), since naively
// flipping the polarity of an edge to ⊥ would violate the "⊥ is its own
// complement" rule. Callers that cannot make that guarantee must use
// NotIfNotUnknown instead.
func Not(e Edge) Edge { return Edge{node: e.node, comp: !e.comp} }

// NotIfNotUnknown is the safe complement: the identity on edges to ⊥, and
// Not otherwise. This is the single chokepoint implementing "⊥ is its own
// complement" and must be used everywhere the operand's identity is not
// already known to be non-⊥.
func NotIfNotUnknown(e Edge) Edge {
	if e.IsUnknown() {
		return e
	}
	return Not(e)
}
