// SPDX-License-Identifier: MIT

package orlikterao

// CacheStats describes one memo table.
type CacheStats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// Stats is a snapshot of an Algebra's static sizes and cache counters.
// Hits and misses count lookups through the public entry points (Chi, and
// SubsetImage at the top level); the internal reduction reads the image table
// without counting.
type Stats struct {
	GroundSet      int        `json:"ground_set"`
	Circuits       int        `json:"circuits"`
	BrokenCircuits int        `json:"broken_circuits"`
	Dimension      int        `json:"dimension"`
	Flats          CacheStats `json:"flats"`
	Chi            CacheStats `json:"chi"`
	Images         CacheStats `json:"images"`
}

// Stats returns a snapshot of the cache counters.
func (a *Algebra[E]) Stats() Stats {
	return Stats{
		GroundSet:      a.n,
		Circuits:       a.circuits,
		BrokenCircuits: len(a.index),
		Dimension:      len(a.basis),
		Flats:          a.flats.stats(),
		Chi:            a.chis.stats(),
		Images:         a.images.stats(),
	}
}
