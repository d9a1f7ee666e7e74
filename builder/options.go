// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for catalog constructors.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Catalog constructors themselves never panic.
//   • Later options override earlier ones.

package builder

// BuilderOption customizes a catalog constructor by mutating a builderConfig
// before the matroid is built.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the point naming scheme: vertex IDs for graphic entries,
// element labels for the others. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithLabels overrides every element label. The matroid constructor rejects
// a length mismatch or duplicates.
func WithLabels(labels []string) BuilderOption {
	cp := append([]string(nil), labels...)
	return func(c *builderConfig) {
		c.labels = cp
	}
}

// WithName overrides the descriptive name (e.g. "Wheel(3)"). An empty name
// means "use the catalog default".
func WithName(name string) BuilderOption {
	return func(c *builderConfig) {
		c.name = name
	}
}
