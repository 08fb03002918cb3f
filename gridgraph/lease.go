package gridgraph

// Acquire hands out the grid's search lease. Only one search may hold it;
// a second Acquire before Release or Reset fails with ErrAlreadyRunning.
func (gg *GridGraph) Acquire() (Lease, error) {
	if gg.lease != 0 {
		return 0, ErrAlreadyRunning
	}
	gg.leaseCounter++
	gg.lease = Lease(gg.leaseCounter)
	return gg.lease, nil
}

// Release gives the lease back. Releasing a stale lease is a no-op.
func (gg *GridGraph) Release(l Lease) {
	if l != 0 && gg.lease == l {
		gg.lease = 0
	}
}

// Holds reports whether l is the lease currently outstanding.
func (gg *GridGraph) Holds(l Lease) bool {
	return l != 0 && gg.lease == l
}

// Running reports whether some search currently holds the lease.
func (gg *GridGraph) Running() bool {
	return gg.lease != 0
}

// Reset revokes any outstanding lease and clears the search state.
// A search whose lease was revoked must stop touching the grid.
func (gg *GridGraph) Reset() {
	gg.lease = 0
	gg.ClearSearchState()
}
