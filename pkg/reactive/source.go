package reactive

// source is the subscriber bookkeeping shared by signals and memos.
type source struct {
	id    uint64
	rt    *Runtime
	scope *Scope

	// subs are the computations subscribed to this source, in
	// subscription order.
	subs []*computation

	// height is 0 for signals and the owning computation's height for memos.
	height int

	released bool
}

// subscribe adds a computation to this source's subscribers.
func (s *source) subscribe(c *computation) {
	for _, existing := range s.subs {
		if existing == c {
			return
		}
	}
	s.subs = append(s.subs, c)
}

// unsubscribe removes a computation, keeping the order of the others.
func (s *source) unsubscribe(c *computation) {
	for i, existing := range s.subs {
		if existing == c {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// notify marks every current subscriber dirty. viaWrite is true when the
// change comes from a signal write rather than a memo recomputation.
func (s *source) notify(viaWrite bool) {
	if len(s.subs) == 0 {
		return
	}
	subs := make([]*computation, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		s.rt.markDirty(sub, viaWrite)
	}
}

// release drops all subscribers; further reads fail fast.
func (s *source) release() {
	if s.released {
		return
	}
	s.released = true
	for _, sub := range s.subs {
		sub.dropSource(s)
	}
	s.subs = nil
}
