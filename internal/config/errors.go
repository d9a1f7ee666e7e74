package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat signals a file extension other than .yaml, .yml, .json or .cue.
	ErrUnsupportedFormat = errors.New("config: unsupported definition format")

	// ErrSchema signals a definition that does not satisfy the schema.
	ErrSchema = errors.New("config: definition does not match schema")

	// ErrInvalidDefinition signals a schema-valid definition that cannot
	// describe a matroid (neither or both of vectors and edges, ragged rows).
	ErrInvalidDefinition = errors.New("config: invalid matroid definition")
)

const (
	opLoad     = "Load"
	opParse    = "Parse"
	opMatroid  = "Matroid"
	opOrdering = "ResolveOrdering"
)

func configErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
