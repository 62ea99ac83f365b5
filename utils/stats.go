package utils

import "time"

// maxHashHistory is how many previous generations cycle detection remembers
const maxHashHistory = 5

// Stats tracks per-tick performance of a single simulation run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Population           int

	history []string
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// ObserveHash records a generation hash and returns the period of the cycle it
// closes, or 0 when the generation has not been seen recently. A still life has period 1.
func (s *Stats) ObserveHash(hash string) (period int) {
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i] == hash {
			period = len(s.history) - i
			break
		}
	}

	s.history = append(s.history, hash)
	if len(s.history) > maxHashHistory {
		s.history = s.history[1:]
	}
	return
}

// Elapsed returns the wall-clock time since the run started
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
