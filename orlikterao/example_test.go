package orlikterao_test

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/katalvlaran/orlikterao/builder"
	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/orlikterao"
	"github.com/katalvlaran/orlikterao/ring"
	"github.com/katalvlaran/orlikterao/subset"
)

func ExampleNew() {
	qq := ring.Rationals()
	m, err := builder.Wheel(qq, 3)
	if err != nil {
		panic(err)
	}
	a, err := orlikterao.New(qq, m)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Dimension())
	g, _ := a.Generators()
	p, _ := a.Prod(g[1], g[2], g[3])
	fmt.Println(p)
	// Output:
	// 24
	// OT{0, 1, 2} + OT{0, 2, 3}
}

func ExampleAlgebra_SubsetImage() {
	qq := ring.Rationals()
	m, err := matroid.NewGraphic(qq, []matrix.Edge{
		{From: "1", To: "2"}, {From: "1", To: "4"}, {From: "2", To: "3"}, {From: "3", To: "4"},
		{From: "3", To: "5"}, {From: "3", To: "6"}, {From: "5", To: "6"},
	})
	if err != nil {
		panic(err)
	}
	a, err := orlikterao.New(qq, m, orlikterao.WithOrdering([]int{6, 0, 4, 2, 1, 5, 3}))
	if err != nil {
		panic(err)
	}
	x, err := a.SubsetImage(subset.Of(1, 2, 3, 5, 6))
	if err != nil {
		panic(err)
	}
	fmt.Println(x.LabeledString())
	// Output:
	// -OT{(1, 2), (1, 4), (2, 3), (3, 6), (5, 6)} - OT{(1, 2), (1, 4), (3, 4), (3, 6), (5, 6)} + OT{(1, 2), (2, 3), (3, 4), (3, 6), (5, 6)}
}

func ExampleAlgebra_Chi() {
	f3, err := ring.NewPrimeField(3)
	if err != nil {
		panic(err)
	}
	m, err := builder.Uniform[uint256.Int](f3, 2, 3)
	if err != nil {
		panic(err)
	}
	a, err := orlikterao.New[uint256.Int](f3, m)
	if err != nil {
		panic(err)
	}
	c, _ := a.Chi(subset.Of(0, 2))
	fmt.Println(f3.Format(c))
	// Output:
	// 2
}
