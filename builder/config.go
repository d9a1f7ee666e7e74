// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: resolved configuration and its translation into matroid options.

package builder

import "github.com/katalvlaran/orlikterao/matroid"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Point naming; nil means "constructor default".
	idFn IDFn
	// Explicit element labels; nil means "derive from idFn".
	labels []string
	// Descriptive name; empty means "constructor default".
	name string
}

// newBuilderConfig applies options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt == nil {
			panic("builder: nil BuilderOption")
		}
		opt(&cfg)
	}
	return cfg
}

// ids returns cfg.idFn or fallback when unset.
func (c builderConfig) ids(fallback IDFn) IDFn {
	if c.idFn != nil {
		return c.idFn
	}
	return fallback
}

// matroidOptions resolves name and labels into matroid constructor options.
// pointLabels, when non-nil, supplies the default element labels.
func (c builderConfig) matroidOptions(defaultName string, pointLabels []string) []matroid.Option {
	name := c.name
	if name == "" {
		name = defaultName
	}
	opts := []matroid.Option{matroid.WithName(name)}
	switch {
	case c.labels != nil:
		opts = append(opts, matroid.WithLabels(c.labels))
	case pointLabels != nil:
		opts = append(opts, matroid.WithLabels(pointLabels))
	}
	return opts
}
