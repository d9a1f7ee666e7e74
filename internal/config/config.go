// Package config loads matroid definition files.
//
// A definition names a base ring and either the representation vectors of a
// linear matroid or the edge list of a graph, with optional labels, element
// ordering and display name:
//
//	ring: "GF(3)"
//	vectors: [[1, 0], [1, 1], [1, 2]]
//	ordering: [2, 1, 0]
//
// YAML (and JSON) and CUE files are accepted. Both are checked against the
// embedded CUE schema before decoding; labels are NFC-normalized.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orlikterao/ring"
)

//go:embed schema.cue
var schemaSource string

// Format selects the syntax of a definition.
type Format int

const (
	FormatYAML Format = iota
	FormatCUE
)

// FormatOf picks the format from a file name's extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedFormat)
}

// Definition is a decoded matroid definition.
type Definition struct {
	Name     string      `json:"name,omitempty"`
	Ring     string      `json:"ring"`
	Vectors  [][]Scalar  `json:"vectors,omitempty"`
	Edges    [][2]Scalar `json:"edges,omitempty"`
	Labels   []string    `json:"labels,omitempty"`
	Ordering []Scalar    `json:"ordering,omitempty"`
}

// Scalar is a number or string token kept as text; the ring parses it later.
type Scalar string

// UnmarshalJSON accepts both JSON strings and numbers.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Scalar(v)
		return nil
	}
	*s = Scalar(b)
	return nil
}

// Load reads and parses the definition file at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configErrorf(opLoad, err)
	}
	f, err := FormatOf(path)
	if err != nil {
		return nil, configErrorf(opLoad, err)
	}
	return Parse(filepath.Base(path), data, f)
}

// Parse decodes data in format f. name is used in error positions only.
func Parse(name string, data []byte, f Format) (*Definition, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, configErrorf(opParse, err)
	}

	var v cue.Value
	switch f {
	case FormatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, configErrorf(opParse, fmt.Errorf("%s: %w: %v", name, ErrSchema, err))
		}
		if raw == nil {
			raw = map[string]any{}
		}
		v = ctx.Encode(raw)
	case FormatCUE:
		v = ctx.CompileBytes(data, cue.Filename(name))
	default:
		return nil, configErrorf(opParse, fmt.Errorf("format %d: %w", f, ErrUnsupportedFormat))
	}
	if err := v.Err(); err != nil {
		return nil, configErrorf(opParse, fmt.Errorf("%s: %w: %v", name, ErrSchema, err))
	}

	unified := schema.LookupPath(cue.ParsePath("#Definition")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, configErrorf(opParse, fmt.Errorf("%s: %w: %v", name, ErrSchema, err))
	}
	raw, err := unified.MarshalJSON()
	if err != nil {
		return nil, configErrorf(opParse, fmt.Errorf("%s: %w: %v", name, ErrSchema, err))
	}
	var def Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, configErrorf(opParse, fmt.Errorf("%s: %w: %v", name, ErrSchema, err))
	}
	def.normalize()
	if err := def.check(); err != nil {
		return nil, configErrorf(opParse, fmt.Errorf("%s: %w", name, err))
	}
	return &def, nil
}

// RingSpec parses the ring reference.
func (d *Definition) RingSpec() (ring.Spec, error) {
	return ring.ByName(d.Ring)
}

// OrderingEntries returns the ordering as plain strings.
func (d *Definition) OrderingEntries() []string {
	if d.Ordering == nil {
		return nil
	}
	out := make([]string, len(d.Ordering))
	for i, s := range d.Ordering {
		out[i] = string(s)
	}
	return out
}

// normalize puts labels and symbolic tokens in NFC so that visually equal
// labels compare equal.
func (d *Definition) normalize() {
	d.Name = norm.NFC.String(strings.TrimSpace(d.Name))
	for i, l := range d.Labels {
		d.Labels[i] = norm.NFC.String(strings.TrimSpace(l))
	}
	for i, s := range d.Ordering {
		d.Ordering[i] = Scalar(norm.NFC.String(strings.TrimSpace(string(s))))
	}
	for i, e := range d.Edges {
		for j := range e {
			d.Edges[i][j] = Scalar(norm.NFC.String(strings.TrimSpace(string(e[j]))))
		}
	}
}

func (d *Definition) check() error {
	switch {
	case d.Vectors == nil && d.Edges == nil:
		return fmt.Errorf("neither vectors nor edges: %w", ErrInvalidDefinition)
	case d.Vectors != nil && d.Edges != nil:
		return fmt.Errorf("both vectors and edges: %w", ErrInvalidDefinition)
	}
	for i, v := range d.Vectors {
		if len(v) != len(d.Vectors[0]) {
			return fmt.Errorf("vector %d has %d entries, vector 0 has %d: %w", i, len(v), len(d.Vectors[0]), ErrInvalidDefinition)
		}
	}
	if n := d.Size(); d.Labels != nil && len(d.Labels) != n {
		return fmt.Errorf("%d labels for %d elements: %w", len(d.Labels), n, ErrInvalidDefinition)
	}
	if _, err := d.RingSpec(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return nil
}

// Size returns the number of ground elements.
func (d *Definition) Size() int {
	if d.Edges != nil {
		return len(d.Edges)
	}
	return len(d.Vectors)
}
