// SPDX-License-Identifier: MIT
// options.go: functional options for New and Get.
//
// Option constructors validate eagerly and panic on meaningless input (nil
// logger, empty prefix). New itself returns errors.

package orlikterao

import (
	"io"
	"log/slog"
)

// DefaultPrefix prefixes printed basis terms: OT{0, 1}.
const DefaultPrefix = "OT"

// Option customizes an Algebra.
type Option func(*config)

type config struct {
	ordering []int
	logger   *slog.Logger
	prefix   string
}

// WithOrdering fixes the total order of the ground set; ordering[k] is the
// k-th smallest element. nil means natural order.
func WithOrdering(ordering []int) Option {
	var cp []int
	if ordering != nil {
		cp = append([]int{}, ordering...)
	}
	return func(c *config) { c.ordering = cp }
}

// WithLogger routes construction and cache diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("orlikterao: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithPrefix sets the term prefix used by String. Panics on "".
func WithPrefix(prefix string) Option {
	if prefix == "" {
		panic("orlikterao: WithPrefix(\"\")")
	}
	return func(c *config) { c.prefix = prefix }
}

func newConfig(opts []Option) config {
	c := config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		prefix: DefaultPrefix,
	}
	for _, o := range opts {
		if o == nil {
			panic("orlikterao: nil Option")
		}
		o(&c)
	}
	return c
}
