// Package logsink provides the logr.Logger the cmd entry points pass
// down to the core: a thin stdr wrapper by default, or logr.Discard()
// when no diagnostics are wanted. There is no configurable logging
// subsystem here — just the handful of call sites (perft mismatches,
// unresolved UCI moves, IsValid failures) that already want to log something.
package logsink

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logr.Logger backed by the standard library's log
// package, writing to stderr with microsecond timestamps.
func New(name string) logr.Logger {
	std := log.New(os.Stderr, "", log.Lmicroseconds)
	return stdr.New(std).WithName(name)
}

// Discard returns a logr.Logger that drops everything, the default
// when a caller hasn't asked for diagnostics.
func Discard() logr.Logger { return logr.Discard() }
