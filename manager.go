// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxLevel is the pseudo-level assigned to the ⊥ terminal, per §3: "a
// pseudo-level +∞ is assigned to the ⊥ terminal so that ⊥ is always deeper
// than any internal node."
const maxLevel int32 = math.MaxInt32

// Manager owns a node table, a hash-consing unique table, the operator
// memoization cache and the reference-counting/GC machinery that the core's
// C1-C5 components treat as an external "Substrate" collaborator (§6). It
// generalizes the teacher's bdd+hudd composition (buddy.go/hudd.go) to three
// terminals and complement edges.
type Manager struct {
	configs
	ID uuid.UUID

	varnum int32
	perm   []int32   // var_index -> level; identity permutation (no reordering engine)
	varset [][2]Edge // per-variable (negative, positive) literal edges

	nodes   []node
	unique_ map[nodeKey]int32
	freepos int32
	freenum int
	produced int

	refstack []int32

	cache *opcache

	err error

	deadline     time.Time
	hasDeadline  bool
	timeoutFired bool

	rng *rand.Rand

	gcstats    gcstat
	cacheStats cacheStat

	log *logrus.Entry
}

type gcstat struct {
	collections int
	history     []gcpoint
}

type gcpoint struct {
	nodes     int
	freenodes int
}

// New creates a Manager with varnum variables (registered as Ithvar(0) ..
// Ithvar(varnum-1)) and the given construction Options.
func New(varnum int, opts ...Option) (*Manager, error) {
	if varnum < 1 || int32(varnum) > _MAXVAR {
		return nil, errMemory
	}
	c := makeconfigs(varnum)
	for _, opt := range opts {
		opt(c)
	}
	m := &Manager{configs: *c, ID: uuid.New()}
	m.varnum = int32(varnum)
	m.rng = rand.New(rand.NewSource(1))
	if c.logger != nil {
		m.log = c.logger.WithField("manager", m.ID.String())
		c.logger.SetLevel(c.loglevel)
	} else {
		l := logrus.New()
		l.SetLevel(c.loglevel)
		m.log = l.WithField("manager", m.ID.String())
	}
	if c.timeout > 0 {
		m.deadline = time.Now().Add(c.timeout)
		m.hasDeadline = true
	}
	m.perm = make([]int32, varnum+1)
	for i := range m.perm {
		m.perm[i] = int32(i)
	}
	m.varset = make([][2]Edge, varnum)
	m.refstack = make([]int32, 0, 2*varnum+4)
	m.makeNodeTable(c.nodesize)
	m.cache = newOpcache(c.cachesize, c.cacheratio)

	for v := int32(0); v < m.varnum; v++ {
		// Store only the negative shape (then=0, else=1): else=1 is regular,
		// honoring the no-else-complement invariant. The positive literal is
		// never interned separately -- it's the same node reached through a
		// complemented edge, which is the entire point of complement edges.
		neg, err := m.unique(v, m.ZeroAsNotOne(), m.One())
		if err != nil {
			return nil, err
		}
		m.nodes[neg.node].refcou = _MAXREFCOUNT
		pos := Not(neg)
		m.varset[v] = [2]Edge{neg, pos}
	}
	m.log.WithField("varnum", varnum).Debug("manager created")
	return m, nil
}

func (m *Manager) logger() *logrus.Entry { return m.log }

func (m *Manager) makeNodeTable(nodesize int) {
	m.nodes = make([]node, nodesize)
	for k := range m.nodes {
		m.nodes[k] = node{variable: -1, then: Edge{node: int32(k + 1)}, els: Edge{}, refcou: 0}
	}
	m.nodes[nodesize-1].then = Edge{node: 0}
	m.unique_ = make(map[nodeKey]int32, nodesize)
	// node 0 is NULL (never allocated); 1 is the 1/0 terminal; 2 is ⊥. Both
	// terminals carry variable == varnum, the pseudo-level one step deeper
	// than any real variable (rawLevel further special-cases ⊥ to maxLevel).
	m.nodes[oneRef] = node{variable: m.varnum, then: Edge{node: oneRef}, els: Edge{node: oneRef}, refcou: _MAXREFCOUNT}
	m.nodes[unknownRef] = node{variable: m.varnum, then: Edge{node: unknownRef}, els: Edge{node: unknownRef}, refcou: _MAXREFCOUNT}
	m.freepos = 3
	m.freenum = nodesize - 3
}

// Varnum returns the number of variables registered in the manager.
func (m *Manager) Varnum() int32 { return m.varnum }

// Ithvar returns the edge for the positive literal of variable i.
func (m *Manager) Ithvar(i int) Edge {
	if i < 0 || i >= int(m.varnum) {
		m.seterror("bad variable index (%d) in call to Ithvar", i)
		return Edge{}
	}
	return m.varset[i][1]
}

// NIthvar returns the edge for the negative literal of variable i.
func (m *Manager) NIthvar(i int) Edge {
	if i < 0 || i >= int(m.varnum) {
		m.seterror("bad variable index (%d) in call to NIthvar", i)
		return Edge{}
	}
	return m.varset[i][0]
}

// Random returns an unsigned pseudo-random integer, the Substrate primitive
// named in §6/§9 and used by HeuristicRandom (C2).
func (m *Manager) Random() uint32 { return m.rng.Uint32() }

// checkDeadline reports whether the manager's cooperative timeout, if any,
// has elapsed. It is consulted at the same checkpoint the teacher checks
// table exhaustion (inside node construction), the only place a real
// substrate can observe a timeout mid-recursion (§5 "Suspension points").
func (m *Manager) checkDeadline() bool {
	if !m.hasDeadline || m.timeoutFired {
		return false
	}
	if time.Now().After(m.deadline) {
		m.timeoutFired = true
		return true
	}
	return false
}

// *************************************************************************
// Reference counting and the refstack discipline (gc.go in the teacher).

// Ref increments the external reference count of e's target and returns e,
// so calls can be chained. A terminal is a silent no-op; a count already at
// _MAXREFCOUNT is left there.
func (m *Manager) Ref(e Edge) Edge {
	if e.IsConst() {
		return e
	}
	if m.nodes[e.node].refcou < _MAXREFCOUNT {
		m.nodes[e.node].refcou++
	}
	return e
}

// Deref decrements the external reference count of e's target by one
// (non-recursive) and returns e.
func (m *Manager) Deref(e Edge) Edge {
	if e.IsConst() {
		return e
	}
	if m.nodes[e.node].refcou > 0 && m.nodes[e.node].refcou < _MAXREFCOUNT {
		m.nodes[e.node].refcou--
	}
	return e
}

// RecursiveDeref decrements e's reference count and, if it reaches zero,
// recursively decrements the children's counts as well.
func (m *Manager) RecursiveDeref(e Edge) {
	if e.IsConst() {
		return
	}
	n := &m.nodes[e.node]
	if n.refcou == 0 || n.refcou >= _MAXREFCOUNT {
		return
	}
	n.refcou--
	if n.refcou == 0 {
		m.RecursiveDeref(n.then)
		m.RecursiveDeref(n.els)
	}
}

// IterDerefBdd is the iterative (worklist-based) equivalent of
// RecursiveDeref, avoiding recursion depth proportional to the DAG's depth
// on very large shared structures.
func (m *Manager) IterDerefBdd(e Edge) {
	stack := []int32{e.node}
	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if ref == nullRef || ref == oneRef || ref == unknownRef {
			continue
		}
		n := &m.nodes[ref]
		if n.refcou == 0 || n.refcou >= _MAXREFCOUNT {
			continue
		}
		n.refcou--
		if n.refcou == 0 {
			stack = append(stack, n.then.node, n.els.node)
		}
	}
}

func (m *Manager) initref() { m.refstack = m.refstack[:0] }

func (m *Manager) pushref(e Edge) Edge {
	m.refstack = append(m.refstack, e.node)
	return e
}

func (m *Manager) popref(n int) { m.refstack = m.refstack[:len(m.refstack)-n] }

// *************************************************************************
// Garbage collection and resize (gc.go/hkernel.go in the teacher).

func (m *Manager) gbc() {
	m.log.WithFields(logrus.Fields{"nodes": len(m.nodes), "free": m.freenum}).Debug("starting GC")
	m.gcstats.collections++
	m.gcstats.history = append(m.gcstats.history, gcpoint{nodes: len(m.nodes), freenodes: m.freenum})

	for _, r := range m.refstack {
		m.markrec(r)
	}
	for k := range m.nodes {
		if m.nodes[k].refcou > 0 {
			m.markrec(int32(k))
		}
	}
	m.freepos = 0
	m.freenum = 0
	for n := len(m.nodes) - 1; n > int(unknownRef); n-- {
		if m.marked(int32(n)) && !m.nodes[n].free() {
			m.unmark(int32(n))
		} else if !m.nodes[n].free() {
			m.delnode(int32(n))
			m.nodes[n] = node{variable: -1, then: Edge{node: m.freepos}}
			m.freepos = int32(n)
			m.freenum++
		}
	}
	m.cache.reset()
	m.log.WithField("free", m.freenum).Debug("finished GC")
}

// marked/markrec/unmark use a dedicated gcmark bit, kept distinct from the
// node's billed (MAXREF) flag: a GC sweep can be triggered by node-table
// exhaustion from *inside* a ReduceByNodeLimit recursion (unique() calls
// gbc() on a full table), so GC must never read or clear billed — doing so
// would corrupt the in-flight budget accounting it is unrelated to.
func (m *Manager) marked(ref int32) bool { return m.nodes[ref].gcmark }
func (m *Manager) mark(ref int32)        { m.nodes[ref].gcmark = true }
func (m *Manager) unmark(ref int32)      { m.nodes[ref].gcmark = false }

func (m *Manager) markrec(ref int32) {
	if ref <= unknownRef || m.marked(ref) || m.nodes[ref].free() {
		return
	}
	m.mark(ref)
	m.markrec(m.nodes[ref].then.node)
	m.markrec(m.nodes[ref].els.node)
}

func (m *Manager) noderesize() error {
	oldsize := len(m.nodes)
	if m.maxnodesize > 0 && oldsize >= m.maxnodesize {
		return errMemory
	}
	nodesize := oldsize
	if oldsize > (math.MaxInt32 >> 1) {
		nodesize = math.MaxInt32 - 1
	} else {
		nodesize = nodesize << 1
	}
	if m.maxnodeincrease > 0 && nodesize > oldsize+m.maxnodeincrease {
		nodesize = oldsize + m.maxnodeincrease
	}
	if m.maxnodesize > 0 && nodesize > m.maxnodesize {
		nodesize = m.maxnodesize
	}
	if nodesize <= oldsize {
		return errMemory
	}
	m.log.WithFields(logrus.Fields{"from": oldsize, "to": nodesize}).Debug("resizing node table")
	tmp := m.nodes
	m.nodes = make([]node, nodesize)
	copy(m.nodes, tmp)
	for n := oldsize; n < nodesize; n++ {
		m.nodes[n] = node{variable: -1, then: Edge{node: int32(n + 1)}}
	}
	m.nodes[nodesize-1].then = Edge{node: m.freepos}
	m.freepos = int32(oldsize)
	m.freenum += nodesize - oldsize
	m.cache.resize(len(m.nodes))
	return nil
}
