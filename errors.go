// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvbdd

import (
	"errors"
	"fmt"
)

// Sentinel errors corresponding to the outcome kinds distinguished by the
// engine: a failed UniqueInter call can either ask the caller to retry (a
// reordering event invalidated references), report plain exhaustion, or the
// manager's cooperative deadline can have expired.
var errReorder = errors.New("bdd: manager signalled a reordering event, retry required")
var errMemory = errors.New("bdd: unable to free memory or resize node table")
var errTimeout = errors.New("bdd: operation deadline expired")

// Error returns the error status of the manager, or the empty string if no
// error occurred so far.
func (m *Manager) Error() string {
	if m.err == nil {
		return ""
	}
	return m.err.Error()
}

// Errored returns true if an error occurred during some previous computation.
func (m *Manager) Errored() bool {
	return m.err != nil
}

func (m *Manager) seterror(format string, a ...interface{}) Edge {
	if m.err != nil {
		format = format + "; " + m.Error()
	}
	m.err = fmt.Errorf(format, a...)
	m.logger().WithError(m.err).Debug("manager error")
	return Edge{}
}
