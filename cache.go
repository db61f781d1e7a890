// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

// opTag identifies which bounded-apply primitive a cache line belongs to.
// Unlike the teacher's ten-operator cache family (cache.go: applycache,
// itecache, quantcache, appexcache, replacecache) the bounded engine only
// ever memoizes three primitives, so a single tagged table replaces rudd's
// per-operation cache types.
type opTag uint8

const (
	tagAnd opTag = iota
	tagXor
	tagIte
)

// cacheLine is a unit of memoized information: the operands that produced it
// (by edge identity) and the result. a/b/c mirror the teacher's cacheData,
// generalized from raw node ints to Edge.
type cacheLine struct {
	valid  bool
	tag    opTag
	a, b, c Edge
	result Edge
}

// cacheStat stores cache and unique-table hit/miss counters, reported by
// Manager.Stats.
type cacheStat struct {
	uniqueAccess int
	uniqueHit    int
	uniqueMiss   int
	opHit        int
	opMiss       int
}

// opcache is the operator memoization cache consulted by the bounded apply
// engine (C4). The node budget L is deliberately excluded from the cache
// key (§4.4: "a cache hit is not a free ride") — a hit is always re-passed
// through ReduceByNodeLimit with the caller's current budget.
type opcache struct {
	table      []cacheLine
	cacheratio int
}

func newOpcache(size, ratio int) *opcache {
	c := &opcache{cacheratio: ratio}
	if size <= 0 {
		size = 1009
	}
	c.table = make([]cacheLine, primeGTE(size))
	return c
}

func (c *opcache) reset() {
	for i := range c.table {
		c.table[i].valid = false
	}
}

func (c *opcache) resize(nodesize int) {
	if c.cacheratio <= 0 {
		c.reset()
		return
	}
	size := primeGTE(nodesize * c.cacheratio / 100)
	c.table = make([]cacheLine, size)
}

func (c *opcache) hash(tag opTag, a, b, cc Edge) int {
	h := uint64(tag)
	h = h*1000003 + (uint64(uint32(a.node))<<1 | b2u(a.comp))
	h = h*1000003 + (uint64(uint32(b.node))<<1 | b2u(b.comp))
	h = h*1000003 + (uint64(uint32(cc.node))<<1 | b2u(cc.comp))
	return int(h % uint64(len(c.table)))
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func (m *Manager) cacheLookup(tag opTag, a, b, c Edge) (Edge, bool) {
	idx := m.cache.hash(tag, a, b, c)
	line := &m.cache.table[idx]
	if line.valid && line.tag == tag && line.a == a && line.b == b && line.c == c {
		m.cacheStats.opHit++
		return line.result, true
	}
	m.cacheStats.opMiss++
	return Edge{}, false
}

func (m *Manager) cacheInsert(tag opTag, a, b, c, result Edge) {
	idx := m.cache.hash(tag, a, b, c)
	m.cache.table[idx] = cacheLine{valid: true, tag: tag, a: a, b: b, c: c, result: result}
}

// refcountOf reports the external reference count of e's target, used by the
// bounded apply engine to decide whether a cache lookup is worthwhile (§4.4:
// "only when neither operand has refcount == 1").
func (m *Manager) refcountOf(e Edge) int32 {
	if e.IsConst() {
		return _MAXREFCOUNT
	}
	return m.nodes[e.node].refcou
}
