package notifier

// EdgeTracker detects new arrivals by comparing live counts against the
// previous snapshot. An alert edge fires only when a count strictly
// increases; the snapshot is updated unconditionally so decreases rebase
// the baseline instead of masking the next arrival. A steady backlog
// therefore never re-triggers.
type EdgeTracker struct {
	prevCalls  int
	prevOrders int
}

// Observe feeds the live counts and reports which collections gained new
// arrivals since the last observation.
func (t *EdgeTracker) Observe(pendingCalls, activeOrders int) (newCall, newOrder bool) {
	newCall = pendingCalls > t.prevCalls
	newOrder = activeOrders > t.prevOrders
	t.prevCalls = pendingCalls
	t.prevOrders = activeOrders
	return
}
