// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

import (
	"time"

	"github.com/sirupsen/logrus"
)

// _MINFREENODES is the minimal number of nodes (%) that has to be left after
// a garbage collect unless a resize should be done.
const _MINFREENODES int = 20

// _DEFAULTMAXNODEINC is the default value for the maximal increase in the
// number of nodes during a resize (approx. one million nodes).
const _DEFAULTMAXNODEINC int = 1 << 20

// _MAXVAR is the maximal number of variables (and levels) supported: New
// rejects a varnum above this 21-bit bound.
const _MAXVAR int32 = 0x1FFFFF

// _MAXREFCOUNT is the maximal value of the reference counter, also used to
// stick nodes (constants and variables) permanently in the node table.
const _MAXREFCOUNT int32 = 0x3FF

// configs stores the values of the different construction parameters of a
// Manager.
type configs struct {
	varnum          int
	nodesize        int
	cachesize       int
	cacheratio      int
	maxnodesize     int
	maxnodeincrease int
	minfreenodes    int
	heuristic       Heuristic
	timeout         time.Duration
	timeoutHandler  func(*Manager)
	logger          *logrus.Logger
	loglevel        logrus.Level
}

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.minfreenodes = _MINFREENODES
	c.maxnodeincrease = _DEFAULTMAXNODEINC
	// we build enough nodes to include the two extra constants (1 and the
	// unknown terminal ⊥) and the variables passed to Ithvar/NIthvar.
	c.nodesize = 2*varnum + 3
	c.heuristic = HeuristicOneStepGreedy
	c.loglevel = logrus.WarnLevel
	return c
}

// Option is a configuration function, applied by New when constructing a
// Manager.
type Option func(*configs)

// Nodesize sets a preferred initial size for the node table. The table can
// grow during computation; the default is large enough to hold the two
// constants, ⊥, and the variables registered at construction time.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.varnum+3 {
			c.nodesize = size
		}
	}
}

// Maxnodesize sets a limit to the number of nodes in the manager. An
// operation trying to raise the number of nodes above this limit will
// generate an error. The default value (0) means there is no limit.
func Maxnodesize(size int) Option {
	return func(c *configs) { c.maxnodesize = size }
}

// Maxnodeincrease limits the growth in size of the node table on any single
// resize. The default is about a million nodes; zero removes the limit.
func Maxnodeincrease(size int) Option {
	return func(c *configs) { c.maxnodeincrease = size }
}

// Minfreenodes sets the percentage of free nodes that must remain after a
// garbage collection before a resize is triggered. The default is 20%.
func Minfreenodes(ratio int) Option {
	return func(c *configs) { c.minfreenodes = ratio }
}

// Cachesize sets the initial number of entries in the operator memoization
// cache.
func Cachesize(size int) Option {
	return func(c *configs) { c.cachesize = size }
}

// Cacheratio sets a ratio (%) so that the cache grows with the node table:
// for a ratio r, the cache gets r entries for every 100 slots in the node
// table. Zero (the default) means the cache never grows.
func Cacheratio(ratio int) Option {
	return func(c *configs) { c.cacheratio = ratio }
}

// WithHeuristic sets the default traversal heuristic used by the bounded
// apply engine and the node-budget reducer when callers pass a nil
// Heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(c *configs) { c.heuristic = h }
}

// WithTimeout installs a cooperative deadline: once elapsed, any in-progress
// top-level operation aborts and returns errTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *configs) { c.timeout = d }
}

// WithLogger attaches a *logrus.Logger to the manager. By default a manager
// logs to a private logrus.New() instance at warning level.
func WithLogger(l *logrus.Logger) Option {
	return func(c *configs) { c.logger = l }
}

// WithLogLevel sets the verbosity of the manager's logger.
func WithLogLevel(level logrus.Level) Option {
	return func(c *configs) { c.loglevel = level }
}

// WithTimeoutHandler installs a callback invoked exactly once by the
// top-level retry loop of the bounded apply engine when WithTimeout's
// deadline expires mid-computation. The default handler only logs.
func WithTimeoutHandler(f func(*Manager)) Option {
	return func(c *configs) { c.timeoutHandler = f }
}
