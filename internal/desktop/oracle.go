// Package desktop abstracts the one OS probe the Monarch needs: whether a
// given top-level window currently sits on the active virtual desktop.
package desktop

import "github.com/myT-x/wtcore/internal/remoting"

// Oracle answers "is this window currently on the active virtual
// desktop?". The core treats the handle as opaque — whatever the peasant
// reported at activation time — and never blocks on any peasant's UI
// thread. A failed or stale-handle probe must report false, never error.
type Oracle interface {
	IsWindowOnCurrentDesktop(handle remoting.NativeWindowHandle) bool
}

// AlwaysCurrent is an Oracle stub that reports every window as being on
// the current desktop. Useful for hosts and tests that don't model
// virtual desktops at all (e.g. isolated mode, most non-Windows hosts).
type AlwaysCurrent struct{}

func (AlwaysCurrent) IsWindowOnCurrentDesktop(remoting.NativeWindowHandle) bool { return true }

// Static is a test/stub Oracle that reports a fixed answer per handle,
// defaulting to false for any handle not explicitly registered.
type Static struct {
	OnCurrent map[remoting.NativeWindowHandle]bool
}

func (s Static) IsWindowOnCurrentDesktop(handle remoting.NativeWindowHandle) bool {
	return s.OnCurrent[handle]
}
