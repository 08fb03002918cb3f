package gridgraph

// SetStart designates p as the start cell, replacing any previous start.
// Search state is not touched.
func (gg *GridGraph) SetStart(p Position) error {
	i, err := gg.Index(p)
	if err != nil {
		return err
	}
	gg.start = i
	return nil
}

// SetEnd designates p as the end cell, replacing any previous end.
// Search state is not touched.
func (gg *GridGraph) SetEnd(p Position) error {
	i, err := gg.Index(p)
	if err != nil {
		return err
	}
	gg.end = i
	return nil
}

// Start returns the designated start cell, if any.
func (gg *GridGraph) Start() (Position, bool) {
	if gg.start == NoPred {
		return Position{}, false
	}
	return gg.Position(gg.start), true
}

// End returns the designated end cell, if any.
func (gg *GridGraph) End() (Position, bool) {
	if gg.end == NoPred {
		return Position{}, false
	}
	return gg.Position(gg.end), true
}

// ClearEndpoints removes both designations.
func (gg *GridGraph) ClearEndpoints() {
	gg.start, gg.end = NoPred, NoPred
}
