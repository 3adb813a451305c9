package galois

import (
	"testing"

	"github.com/consensys/go-galois/pkg/poly"
	"github.com/consensys/go-galois/pkg/util/assert"
)

// elem builds an element of f from a degree→coefficient mapping, failing the
// test on a construction error.
func elem(t *testing.T, f *Field, coeffs map[uint]int64) *Element {
	t.Helper()

	e, err := f.Element(poly.New(coeffs))
	assert.NoError(t, err)

	return e
}

func TestElement_ZeroDefault(t *testing.T) {
	f := gf8(t)

	e, err := f.Element(nil)
	assert.NoError(t, err)
	assert.True(t, e.IsZero())
	assert.True(t, e.Equal(f.Zero()))
}

func TestElement_PrimeFieldFit(t *testing.T) {
	// a degree-1 polynomial has no representation in GF(101)
	_, err := gf101(t).Element(poly.New(map[uint]int64{1: 1}))
	assert.IsError(t, ErrPrimeFieldFit, err)
}

func TestElement_FitByReduction(t *testing.T) {
	f := gf8(t)

	// x^3 = x + 1 modulo x^3 + x + 1
	e, err := f.Element(poly.New(map[uint]int64{3: 1}))
	assert.NoError(t, err)
	assert.True(t, e.Equal(elem(t, f, map[uint]int64{0: 1, 1: 1})))

	// x^4 = x^2 + x
	e, err = f.Element(poly.New(map[uint]int64{4: 1}))
	assert.NoError(t, err)
	assert.True(t, e.Equal(elem(t, f, map[uint]int64{1: 1, 2: 1})))

	// a very sparse high degree still reduces without blowing up: x^64
	e, err = f.Element(poly.New(map[uint]int64{64: 1}))
	assert.NoError(t, err)
	// x has order 7, so x^64 = x^(64 mod 7) = x
	assert.True(t, e.Equal(elem(t, f, map[uint]int64{1: 1})))
}

func TestElement_Add(t *testing.T) {
	f := gf8(t)

	// x + (x^2 + 1) = x^2 + x + 1
	a := elem(t, f, map[uint]int64{1: 1})
	b := elem(t, f, map[uint]int64{0: 1, 2: 1})

	sum, err := a.Add(b)
	assert.NoError(t, err)
	assert.True(t, sum.Equal(elem(t, f, map[uint]int64{0: 1, 1: 1, 2: 1})))
}

func TestElement_Mul(t *testing.T) {
	f := gf8(t)

	// (1 + x + x^2) * x = 1 + x^2, via reduction against the modulus
	a := elem(t, f, map[uint]int64{0: 1, 1: 1, 2: 1})
	b := elem(t, f, map[uint]int64{1: 1})

	prod, err := a.Mul(b)
	assert.NoError(t, err)
	assert.True(t, prod.Equal(elem(t, f, map[uint]int64{0: 1, 2: 1})))
}

func TestElement_PrimeFieldArithmetic(t *testing.T) {
	f := gf101(t)

	// 100 + 31 = 30 mod 101
	sum, err := f.FromInt(100).Add(f.FromInt(31))
	assert.NoError(t, err)
	assert.True(t, sum.Equal(f.FromInt(30)))

	// 10 * 31 = 7 mod 101
	prod, err := f.FromInt(10).Mul(f.FromInt(31))
	assert.NoError(t, err)
	assert.True(t, prod.Equal(f.FromInt(7)))

	// 10 - 31 = 80 mod 101
	diff, err := f.FromInt(10).Sub(f.FromInt(31))
	assert.NoError(t, err)
	assert.True(t, diff.Equal(f.FromInt(80)))
}

func TestElement_SubSelfIsZero(t *testing.T) {
	f := gf8(t)
	a := elem(t, f, map[uint]int64{0: 1, 2: 1})

	diff, err := a.Sub(a)
	assert.NoError(t, err)
	assert.True(t, diff.IsZero())
}

func TestElement_Neg(t *testing.T) {
	f := gf101(t)
	a := f.FromInt(10)

	sum, err := a.Add(a.Neg())
	assert.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestElement_FieldMismatch(t *testing.T) {
	a := gf101(t).FromInt(1)

	g, err := NewField(7)
	assert.NoError(t, err)

	_, err = a.Add(g.FromInt(1))
	assert.IsError(t, ErrFieldMismatch, err)

	_, err = a.Mul(g.FromInt(1))
	assert.IsError(t, ErrFieldMismatch, err)
}

func TestElement_DivRoundTrip(t *testing.T) {
	f := gf8(t)

	a := elem(t, f, map[uint]int64{0: 1, 2: 1})
	b := elem(t, f, map[uint]int64{1: 1, 2: 1})

	prod, err := a.Mul(b)
	assert.NoError(t, err)

	quot, err := prod.Div(b)
	assert.NoError(t, err)
	assert.True(t, quot.Equal(a))
}

func TestElement_DivByZero(t *testing.T) {
	f := gf8(t)
	a := elem(t, f, map[uint]int64{1: 1})

	_, err := a.Div(f.Zero())
	assert.IsError(t, ErrDivisionByZero, err)

	_, err = f.Zero().Inverse()
	assert.IsError(t, ErrDivisionByZero, err)

	_, err = a.Mod(f.Zero())
	assert.IsError(t, ErrDivisionByZero, err)
}

func TestElement_QuoModIdentity(t *testing.T) {
	f, err := NewField(5, WithExtension(3, poly.New(map[uint]int64{0: 2, 1: 3, 3: 1})))
	assert.NoError(t, err)

	// (dividend // divisor) * divisor + (dividend % divisor) == dividend
	dividend := elem(t, f, map[uint]int64{0: 4, 1: 3, 2: 2})
	divisor := elem(t, f, map[uint]int64{0: 1, 1: 2})

	quo, err := dividend.Quo(divisor)
	assert.NoError(t, err)

	rem, err := dividend.Mod(divisor)
	assert.NoError(t, err)

	back, err := quo.Mul(divisor)
	assert.NoError(t, err)

	back, err = back.Add(rem)
	assert.NoError(t, err)
	assert.True(t, back.Equal(dividend))
}

func TestElement_ModByInteger(t *testing.T) {
	f := gf101(t)

	rem, err := f.FromInt(47).Mod(f.FromInt(10))
	assert.NoError(t, err)
	assert.True(t, rem.Equal(f.FromInt(7)))
}

// Integer divisors take the coefficient-wise quotient/remainder pair, and
// the division identity must hold for them just as for polynomial divisors.
func TestElement_QuoModIdentity_IntegerDivisor(t *testing.T) {
	f := gf101(t)

	quo, err := f.FromInt(47).Quo(f.FromInt(10))
	assert.NoError(t, err)
	assert.True(t, quo.Equal(f.FromInt(4)))

	for a := int64(0); a < 101; a++ {
		for b := int64(1); b < 101; b++ {
			quo, err := f.FromInt(a).Quo(f.FromInt(b))
			assert.NoError(t, err)

			rem, err := f.FromInt(a).Mod(f.FromInt(b))
			assert.NoError(t, err)

			back, err := quo.Mul(f.FromInt(b))
			assert.NoError(t, err)

			back, err = back.Add(rem)
			assert.NoError(t, err)
			assert.True(t, back.Equal(f.FromInt(a)), "%d // %d identity", a, b)
		}
	}
}

func TestElement_QuoModIdentity_IntegerDivisorExtension(t *testing.T) {
	f := gf125(t)

	dividend := elem(t, f, map[uint]int64{0: 1, 1: 2, 2: 2})
	divisor := f.FromInt(3)

	quo, err := dividend.Quo(divisor)
	assert.NoError(t, err)

	rem, err := dividend.Mod(divisor)
	assert.NoError(t, err)

	back, err := quo.Mul(divisor)
	assert.NoError(t, err)

	back, err = back.Add(rem)
	assert.NoError(t, err)
	assert.True(t, back.Equal(dividend))
}

func TestElement_QuoByZero(t *testing.T) {
	f := gf101(t)

	_, err := f.FromInt(47).Quo(f.Zero())
	assert.IsError(t, ErrDivisionByZero, err)
}

func TestElement_Exp(t *testing.T) {
	f := gf8(t)
	x := elem(t, f, map[uint]int64{1: 1})

	// x^2
	sq, err := x.Exp(2)
	assert.NoError(t, err)
	assert.True(t, sq.Equal(elem(t, f, map[uint]int64{2: 1})))

	// x^3 = x + 1
	cube, err := x.Exp(3)
	assert.NoError(t, err)
	assert.True(t, cube.Equal(elem(t, f, map[uint]int64{0: 1, 1: 1})))

	// Fermat-Euler: x^(p^m - 1) = 1
	one, err := x.Exp(7)
	assert.NoError(t, err)
	assert.True(t, one.IsOne())

	_, err = x.Exp(0)
	assert.IsError(t, ErrNonPositiveExponent, err)
}

func TestElement_FermatEuler(t *testing.T) {
	f := gf8(t)
	order := f.Order() - 1

	for _, e := range nonZeroElements(t, f) {
		res, err := e.Exp(order)
		assert.NoError(t, err)
		assert.True(t, res.IsOne(), "%s^%d != 1", e, order)
	}
}

func TestElement_Predicates(t *testing.T) {
	f := gf8(t)

	assert.True(t, f.Zero().IsZero())
	assert.True(t, !f.Zero().IsInt())
	assert.True(t, f.One().IsOne())
	assert.True(t, f.One().IsInt())

	x := elem(t, f, map[uint]int64{1: 1})
	assert.True(t, !x.IsZero())
	assert.True(t, !x.IsOne())
	assert.True(t, !x.IsInt())

	v, ok := f.One().Int()
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	_, ok = x.Int()
	assert.True(t, !ok)
}

func TestElement_String(t *testing.T) {
	f := gf8(t)
	e := elem(t, f, map[uint]int64{0: 1, 1: 1})

	assert.Equal(t, "GF(2^3)[X] / x^3 + x^1 + 1: x^1 + 1", e.String())
	assert.Equal(t, "GF(101): 42", gf101(t).FromInt(42).String())
}

func TestElement_CanonicalAfterEveryOp(t *testing.T) {
	f := gf8(t)

	for _, a := range allElements(t, f) {
		for _, b := range allElements(t, f) {
			sum, err := a.Add(b)
			assert.NoError(t, err)
			assertCanonical(t, sum)

			prod, err := a.Mul(b)
			assert.NoError(t, err)
			assertCanonical(t, prod)

			diff, err := a.Sub(b)
			assert.NoError(t, err)
			assertCanonical(t, diff)
		}
	}
}

// assertCanonical checks the central invariant: degree below m, coefficients
// in [0, p).
func assertCanonical(t *testing.T, e *Element) {
	t.Helper()

	var (
		pol = e.Poly()
		f   = e.Field()
	)

	assert.True(t, pol.Degree() < int(f.M()), "%s exceeds degree bound", e)

	for _, d := range pol.Degrees(false) {
		c := pol.Get(int(d))
		assert.True(t, c >= 0 && c < f.P(), "%s has non-canonical coefficient %d", e, c)
	}
}

// allElements enumerates every element of a small field.
func allElements(t *testing.T, f *Field) []*Element {
	t.Helper()

	var (
		order    = f.Order()
		elements = make([]*Element, 0, order)
	)

	for i := uint64(0); i < order; i++ {
		var (
			coeffs = make(map[uint]int64)
			rest   = i
		)

		for d := uint(0); d < f.M(); d++ {
			coeffs[d] = int64(rest % uint64(f.P()))
			rest /= uint64(f.P())
		}

		elements = append(elements, elem(t, f, coeffs))
	}

	return elements
}

// nonZeroElements enumerates every non-zero element of a small field.
func nonZeroElements(t *testing.T, f *Field) []*Element {
	t.Helper()

	var out []*Element

	for _, e := range allElements(t, f) {
		if !e.IsZero() {
			out = append(out, e)
		}
	}

	return out
}
