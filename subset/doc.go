// Package subset provides Set, an immutable, comparable set of ground-set
// elements (non-negative ints).
//
// Set is a value type: two Sets holding the same elements are == regardless
// of how they were built, so a Set can key a map directly. This is what the
// broken-circuit index and every memo table in orlikterao rely on.
//
// Internally a Set freezes a bits-and-blooms bitset into a string of packed
// little-endian words with trailing zero words trimmed; operations thaw,
// combine and re-freeze.
package subset
