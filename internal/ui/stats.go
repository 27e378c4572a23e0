package ui

// Stats is the snapshot of engine state the HUD displays.
type Stats struct {
	Stuck    int
	Target   int
	Updates  uint64
	Rate     float64
	Paused   bool
	Complete bool
	SeedKind string
	Theme    string
}
