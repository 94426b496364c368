package app

import "time"

// Stats tracks simulation throughput for the status displays.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

// NewStats starts a fresh counter.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one advanced generation and the time it took.
func (s *Stats) Update(generation, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Moving average keeps the readout steady.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	}
}
