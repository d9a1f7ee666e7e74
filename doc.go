// Package orlikterao is an exact-arithmetic toolkit for Orlik-Terao algebras
// of represented matroids.
//
// What is in the box?
//
//	A concurrent, deterministic library that brings together:
//		• Rings: ℚ, ℤ (over ℚ) and prime fields 𝔽_p for p < 2^256
//		• Subsets: comparable bitset values usable as map keys
//		• Matrices: exact determinants, RREF, row spaces with coordinates
//		• Matroids: linear and graphic, circuits, closures, NBC sets
//		• Catalog: Wheel, M(Kn), Braid, Cycle, U(r, n), Fano / non-Fano
//		• Algebra: NBC basis, subset images, products, chi, canonical instances
//
// Packages:
//
//	ring/        - Ring[E] interface with ℚ, ℤ and 𝔽_p implementations
//	subset/      - Set, Combinations, PowerSet
//	matrix/      - Dense[E], Det, RowReduce, RowSpace, Incidence
//	matroid/     - Linear[E], NewGraphic, Circuits, NoBrokenCircuitsSets
//	builder/     - named matroids and "wheel:3" style catalog references
//	orlikterao/  - Algebra[E], Element[E], Registry
//	cmd/otalg    - command line front end
//
// Quick example, the wheel with three spokes (elements 0, 1, 2) and three
// rim edges (3, 4, 5):
//
//	qq := ring.Rationals()
//	m, _ := builder.Wheel(qq, 3)
//	a, _ := orlikterao.New(qq, m)
//	a.Dimension()                 // 24
//	x, _ := a.SubsetImage(subset.Of(1, 3))
//	x.String()                    // OT{0, 1} + OT{0, 3}
//
//	go install github.com/katalvlaran/orlikterao/cmd/otalg@latest
//	otalg --named wheel:3 image 1,3
package orlikterao
