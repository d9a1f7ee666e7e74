package orlikterao_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orlikterao/orlikterao"
	"github.com/katalvlaran/orlikterao/subset"
)

func TestElement_Arithmetic(t *testing.T) {
	t.Parallel()
	a := mustNew(t, q, wheel3(t))
	x := image(t, a, 2, 5) // -OT{0, 2} + OT{0, 5}
	y := image(t, a, 4, 5) // -OT{3, 4} - OT{3, 5}

	assert.Equal(t, "-OT{0, 2} + OT{0, 5} - OT{3, 4} - OT{3, 5}", x.Add(y).String())
	assert.Equal(t, "OT{0, 2} - OT{0, 5}", x.Neg().String())
	assert.True(t, x.Sub(x).IsZero())
	assert.Equal(t, "-1/2*OT{0, 2} + 1/2*OT{0, 5}", x.Scale(big.NewRat(1, 2)).String())
	assert.True(t, x.Scale(q.Zero()).IsZero())
	assert.True(t, x.Add(x).Equal(x.Scale(q.FromInt64(2))))
	assert.True(t, x.Add(y).Equal(y.Add(x)))
	assert.False(t, x.Equal(y))

	assert.Equal(t, 0, x.Coefficient(set(0, 2)).Cmp(big.NewRat(-1, 1)))
	assert.Equal(t, 0, x.Coefficient(set(3, 4)).Sign())
	assert.Equal(t, []subset.Set{set(0, 2), set(0, 5)}, x.Support())
	terms := x.Terms()
	require.Len(t, terms, 2)
	assert.Equal(t, set(0, 5), terms[1].Set)
	assert.Equal(t, 0, terms[1].Coeff.Cmp(big.NewRat(1, 1)))
	assert.Same(t, a, x.Algebra())
}

func TestElement_Degree(t *testing.T) {
	t.Parallel()
	a := mustNew(t, q, wheel3(t))
	assert.Equal(t, 0, a.One().Degree())
	assert.Equal(t, 2, image(t, a, 2, 5).Degree())
	assert.Equal(t, 3, image(t, a, 1, 4, 5).Degree())
	assert.Equal(t, -1, a.Zero().Degree())
	assert.Equal(t, -1, a.One().Add(image(t, a, 0)).Degree())
	for _, s := range a.Basis() {
		assert.Equal(t, s.Len(), a.DegreeOnBasis(s))
	}
}

func TestElement_ZeroValue(t *testing.T) {
	t.Parallel()
	a := mustNew(t, q, wheel3(t))
	var z orlikterao.Element[*big.Rat]
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
	assert.Nil(t, z.Algebra())
	assert.Nil(t, z.Coefficient(set(0)))
	assert.True(t, z.Equal(a.Zero()))
	assert.True(t, z.Add(z).IsZero())
	assert.True(t, z.Neg().IsZero())

	x := image(t, a, 0)
	assert.True(t, z.Add(x).Equal(x))
	assert.True(t, x.Add(z).Equal(x))
}

func TestElement_ForeignAddPanics(t *testing.T) {
	t.Parallel()
	a := mustNew(t, q, wheel3(t))
	b := mustNew(t, q, wheel3(t))
	assert.Panics(t, func() { a.One().Add(b.One()) })
	assert.False(t, a.One().Equal(b.One()))
}

func TestElement_Rendering(t *testing.T) {
	t.Parallel()
	a := mustNew(t, q, wheel3(t))
	x := image(t, a, 2, 5)

	assert.Equal(t, "0", a.Zero().String())
	assert.Equal(t, "OT{}", a.One().String())
	assert.Equal(t, `-e_{\left\{0, 2\right\}} + e_{\left\{0, 5\right\}}`, x.Latex())
	assert.Equal(t, `-\frac{1}{2} e_{\left\{0, 2\right\}} + \frac{1}{2} e_{\left\{0, 5\right\}}`,
		x.Scale(big.NewRat(1, 2)).Latex())
	assert.Equal(t, `3 e_{\emptyset}`, a.One().Scale(q.FromInt64(3)).Latex())
	assert.Equal(t, "0", a.Zero().Latex())

	labeled := mustNew(t, q, graphic(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"}))
	assert.Equal(t, "OT{(a, b), (b, c)} - OT{(a, b), (a, c)}", image(t, labeled, 1, 2).LabeledString())
}

func TestElement_MarshalJSON(t *testing.T) {
	t.Parallel()
	a := mustNew(t, q, wheel3(t))
	raw, err := json.Marshal(image(t, a, 2, 5).Scale(big.NewRat(1, 3)))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"terms":[{"set":[0,2],"coefficient":"-1/3"},{"set":[0,5],"coefficient":"1/3"}]}`,
		string(raw))

	raw, err = json.Marshal(a.Zero())
	require.NoError(t, err)
	assert.JSONEq(t, `{"terms":[]}`, string(raw))

	raw, err = json.Marshal(a.One())
	require.NoError(t, err)
	assert.JSONEq(t, `{"terms":[{"set":[],"coefficient":"1"}]}`, string(raw))
}
