// SPDX-License-Identifier: MIT
// options.go: functional options for matroid constructors.
//
// Option constructors validate eagerly and panic on meaningless input (nil
// slices are fine, empty names are fine); constructors themselves return errors.

package matroid

// Option customizes a matroid constructor.
type Option func(*config)

type config struct {
	name   string
	labels []string
}

// WithName sets the descriptive name used by String (e.g. "Wheel(3)").
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithLabels sets per-element display labels. The constructor checks the
// length and uniqueness.
func WithLabels(labels []string) Option {
	cp := append([]string(nil), labels...)
	return func(c *config) { c.labels = cp }
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		if o == nil {
			panic("matroid: nil Option")
		}
		o(&c)
	}
	return c
}
