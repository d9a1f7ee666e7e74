package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/orlikterao/orlikterao"
	"github.com/katalvlaran/orlikterao/subset"
)

// Info summarizes an algebra.
type Info struct {
	Algebra        string `json:"algebra"`
	Ring           string `json:"ring"`
	GroundSet      int    `json:"ground_set"`
	Rank           int    `json:"rank"`
	Circuits       int    `json:"circuits"`
	BrokenCircuits int    `json:"broken_circuits"`
	Dimension      int    `json:"dimension"`
	Ordering       []int  `json:"ordering"`
	Fingerprint    string `json:"fingerprint"`
}

func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString(i.Algebra)
	fmt.Fprintf(&sb, "\nground set:      %d", i.GroundSet)
	fmt.Fprintf(&sb, "\nrank:            %d", i.Rank)
	fmt.Fprintf(&sb, "\ncircuits:        %d", i.Circuits)
	fmt.Fprintf(&sb, "\nbroken circuits: %d", i.BrokenCircuits)
	fmt.Fprintf(&sb, "\ndimension:       %d", i.Dimension)
	fmt.Fprintf(&sb, "\nordering:        %s", subset.Join(i.Ordering, strconv.Itoa, ", "))
	return sb.String()
}

// BrokenCircuitView is one index entry: Set ∪ {Removed} is a circuit.
type BrokenCircuitView struct {
	Set     []int `json:"set"`
	Removed int   `json:"removed"`
}

type brokenCircuitList []BrokenCircuitView

func (l brokenCircuitList) String() string {
	lines := make([]string, len(l))
	for i, bc := range l {
		lines[i] = fmt.Sprintf("%v <- %d", subset.Of(bc.Set...), bc.Removed)
	}
	return strings.Join(lines, "\n")
}

type setList [][]int

func (l setList) String() string {
	lines := make([]string, len(l))
	for i, s := range l {
		lines[i] = subset.Of(s...).String()
	}
	return strings.Join(lines, "\n")
}

// ElementView is an algebra element in every rendering.
type ElementView struct {
	Input []int          `json:"input"`
	Text  string         `json:"text"`
	Latex string         `json:"latex"`
	Value json.Marshaler `json:"value"`
}

func newElementView[E any](input []int, x orlikterao.Element[E], labeled bool) ElementView {
	text := x.String()
	if labeled {
		text = x.LabeledString()
	}
	return ElementView{Input: input, Text: text, Latex: x.Latex(), Value: x}
}

func (v ElementView) String() string { return v.Text }

// ChiView is the value of chi on an independent set.
type ChiView struct {
	Set   []int  `json:"set"`
	Value string `json:"value"`
}

func (v ChiView) String() string { return v.Value }
