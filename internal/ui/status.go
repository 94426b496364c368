package ui

import "fmt"

// Status is the snapshot of engine state shown by the status readouts.
type Status struct {
	Generation int
	Population int
	GenPerSec  float64
	Paused     bool
}

// Line formats the status as the shared one-line readout.
func (s Status) Line() string {
	line := fmt.Sprintf("gen %d  pop %d  %.1f gen/s", s.Generation, s.Population, s.GenPerSec)
	if s.Paused {
		line += "  [paused]"
	}
	return line
}
