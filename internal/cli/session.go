package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"github.com/katalvlaran/orlikterao/builder"
	"github.com/katalvlaran/orlikterao/internal/config"
	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/orlikterao"
	"github.com/katalvlaran/orlikterao/ring"
	"github.com/katalvlaran/orlikterao/subset"
)

var (
	errArgument   = errors.New("bad argument")
	errDefinition = errors.New("cannot build algebra")
)

// session is an algebra with its scalar type erased, so the commands need
// not be generic.
type session interface {
	info() Info
	brokenCircuits() brokenCircuitList
	basis(degree int) setList
	image(tokens []string, labeled bool) (ElementView, error)
	product(tokens []string, labeled bool) (ElementView, error)
	chi(tokens []string) (ChiView, error)
	stats() orlikterao.Stats
}

// openSession builds the algebra selected by the global flags.
func openSession(opts *RootOptions, log *slog.Logger) (session, error) {
	if (opts.Named == "") == (opts.File == "") {
		return nil, fmt.Errorf("exactly one of --named and --file is required: %w", errArgument)
	}
	var def *config.Definition
	ringName := opts.Ring
	if opts.File != "" {
		var err error
		if def, err = config.Load(opts.File); err != nil {
			return nil, fmt.Errorf("%w: %w", errDefinition, err)
		}
		if ringName == "" {
			ringName = def.Ring
		}
	}
	if ringName == "" {
		ringName = "QQ"
	}
	spec, err := ring.ByName(ringName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errDefinition, err)
	}

	switch spec.Kind {
	case ring.KindPrime:
		f, err := ring.NewPrimeField(spec.Prime)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errDefinition, err)
		}
		return newSession[uint256.Int](f, opts, def, log)
	case ring.KindIntegers:
		return newSession(ring.Integers(), opts, def, log)
	default:
		return newSession(ring.Rationals(), opts, def, log)
	}
}

type algebraSession[E any] struct {
	a *orlikterao.Algebra[E]
	m *matroid.Linear[E]
}

func newSession[E any](rg ring.Ring[E], opts *RootOptions, def *config.Definition, log *slog.Logger) (session, error) {
	var (
		m   *matroid.Linear[E]
		err error
	)
	if def != nil {
		m, err = config.Matroid(rg, def)
	} else {
		m, err = builder.Lookup(rg, opts.Named)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errDefinition, err)
	}

	entries := opts.Ordering
	if len(entries) == 0 && def != nil {
		entries = def.OrderingEntries()
	}
	ordering, err := config.ResolveOrdering(m, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errArgument, err)
	}
	a, err := orlikterao.GetFrom(opts.registry, rg, m,
		orlikterao.WithOrdering(ordering),
		orlikterao.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errDefinition, err)
	}
	return &algebraSession[E]{a: a, m: m}, nil
}

func (s *algebraSession[E]) info() Info {
	st := s.a.Stats()
	return Info{
		Algebra:        s.a.String(),
		Ring:           s.a.Ring().Name(),
		GroundSet:      st.GroundSet,
		Rank:           s.m.FullRank(),
		Circuits:       st.Circuits,
		BrokenCircuits: st.BrokenCircuits,
		Dimension:      st.Dimension,
		Ordering:       s.a.Ordering(),
		Fingerprint:    s.m.Fingerprint(),
	}
}

func (s *algebraSession[E]) brokenCircuits() brokenCircuitList {
	index := s.a.BrokenCircuits()
	out := make(brokenCircuitList, len(index))
	for i, bc := range index {
		out[i] = BrokenCircuitView{Set: bc.Set.Elements(), Removed: bc.Removed}
	}
	return out
}

func (s *algebraSession[E]) basis(degree int) setList {
	out := setList{}
	for _, b := range s.a.Basis() {
		if degree < 0 || b.Len() == degree {
			out = append(out, b.Elements())
		}
	}
	return out
}

func (s *algebraSession[E]) image(tokens []string, labeled bool) (ElementView, error) {
	elems, err := s.elements(tokens)
	if err != nil {
		return ElementView{}, err
	}
	x, err := s.a.SubsetImage(subset.Of(elems...))
	if err != nil {
		return ElementView{}, err
	}
	return newElementView(elems, x, labeled), nil
}

func (s *algebraSession[E]) product(tokens []string, labeled bool) (ElementView, error) {
	elems, err := s.elements(tokens)
	if err != nil {
		return ElementView{}, err
	}
	factors := make([]orlikterao.Element[E], len(elems))
	for i, e := range elems {
		if factors[i], err = s.a.Generator(e); err != nil {
			return ElementView{}, err
		}
	}
	x, err := s.a.Prod(factors...)
	if err != nil {
		return ElementView{}, err
	}
	return newElementView(elems, x, labeled), nil
}

func (s *algebraSession[E]) chi(tokens []string) (ChiView, error) {
	elems, err := s.elements(tokens)
	if err != nil {
		return ChiView{}, err
	}
	v, err := s.a.Chi(subset.Of(elems...))
	if err != nil {
		return ChiView{}, err
	}
	return ChiView{Set: subset.Of(elems...).Elements(), Value: s.a.Ring().Format(v)}, nil
}

func (s *algebraSession[E]) stats() orlikterao.Stats { return s.a.Stats() }

// elements resolves tokens as element labels first, then as indices.
func (s *algebraSession[E]) elements(tokens []string) ([]int, error) {
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if e, err := s.m.ElementByLabel(tok); err == nil {
			out = append(out, e)
			continue
		}
		e, err := strconv.Atoi(tok)
		if err != nil || e < 0 || e >= s.m.Size() {
			return nil, fmt.Errorf("element %q: %w", tok, errArgument)
		}
		out = append(out, e)
	}
	return out, nil
}

// splitElements reads comma separated element lists. Fields follow CSV
// quoting so labels containing commas can be written as "(1, 2)". An empty
// argument or "{}" is the empty list.
func splitElements(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if strings.HasPrefix(arg, "{") && strings.HasSuffix(arg, "}") {
			arg = strings.TrimSpace(arg[1 : len(arg)-1])
		}
		if arg == "" {
			continue
		}
		r := csv.NewReader(strings.NewReader(arg))
		r.TrimLeadingSpace = true
		fields, err := r.Read()
		if err != nil {
			return nil, fmt.Errorf("%q: %w", arg, errArgument)
		}
		for _, f := range fields {
			out = append(out, strings.TrimSpace(f))
		}
	}
	return out, nil
}
