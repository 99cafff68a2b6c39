// Package logging provides the shared structured logger for the library.
//
// Components obtain a component-scoped logger via Get. By default log output
// goes to slog.Default; applications embedding the library can redirect it
// with Set.
package logging

import (
	"log/slog"
	"sync/atomic"
)

var base atomic.Pointer[slog.Logger]

// Get returns a logger tagged with the given component name.
func Get(component string) *slog.Logger {
	if l := base.Load(); l != nil {
		return l.With("component", component)
	}
	return slog.Default().With("component", component)
}

// Set replaces the base logger used by all components. Passing nil restores
// slog.Default.
func Set(l *slog.Logger) {
	if l == nil {
		base.Store(nil)
		return
	}
	base.Store(l)
}
