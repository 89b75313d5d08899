package nav

// Lease ties a scheduled timer to the screen that was active when it was
// scheduled. A timer must check Navigator.Valid before acting.
type Lease struct {
	screen Screen
	gen    uint64
}

// Screen returns the screen the lease was acquired on.
func (l Lease) Screen() Screen { return l.screen }

// Acquire returns a lease on the current screen. Any lease acquired earlier
// becomes stale.
func (n *Navigator) Acquire() Lease {
	n.gen++
	n.held = true
	return Lease{screen: n.state.Screen, gen: n.gen}
}

// Valid reports whether l is the live lease of the current screen.
func (n *Navigator) Valid(l Lease) bool {
	return n.held && l.gen != 0 && l.gen == n.gen && l.screen == n.state.Screen
}

// Release invalidates the outstanding lease, if any.
func (n *Navigator) Release() {
	if n.held {
		n.gen++
		n.held = false
	}
}
