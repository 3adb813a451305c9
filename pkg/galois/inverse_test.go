package galois

import (
	"testing"

	"github.com/consensys/go-galois/pkg/poly"
	"github.com/consensys/go-galois/pkg/util/assert"
)

func TestInverse_PrimeField(t *testing.T) {
	f := gf101(t)

	// 10 * 10⁻¹ = 1
	inv, err := f.FromInt(10).Inverse()
	assert.NoError(t, err)

	prod, err := f.FromInt(10).Mul(inv)
	assert.NoError(t, err)
	assert.True(t, prod.IsOne())

	// exhaustively, over the whole group
	for _, e := range nonZeroElements(t, f) {
		inv, err := e.Inverse()
		assert.NoError(t, err)

		prod, err := e.Mul(inv)
		assert.NoError(t, err)
		assert.True(t, prod.IsOne(), "%s * %s != 1", e, inv)
	}
}

func TestInverse_ExtensionField(t *testing.T) {
	for _, f := range []*Field{gf8(t), gf9(t), gf125(t)} {
		for _, e := range nonZeroElements(t, f) {
			inv, err := e.Inverse()
			assert.NoError(t, err)
			assertCanonical(t, inv)

			prod, err := e.Mul(inv)
			assert.NoError(t, err)
			assert.True(t, prod.IsOne(), "%s * %s != 1", e, inv)
		}
	}
}

func TestInverse_One(t *testing.T) {
	f := gf8(t)

	inv, err := f.One().Inverse()
	assert.NoError(t, err)
	assert.True(t, inv.IsOne())
}

func TestInverse_IntegerInExtensionField(t *testing.T) {
	// a degree-zero element inverts through the integer extended Euclid
	f := gf125(t)

	inv, err := f.FromInt(3).Inverse()
	assert.NoError(t, err)
	assert.True(t, inv.IsInt())

	prod, err := f.FromInt(3).Mul(inv)
	assert.NoError(t, err)
	assert.True(t, prod.IsOne())
}

// gf9 constructs GF(3^2) reduced by x^2 + x + 2.
func gf9(t *testing.T) *Field {
	t.Helper()

	f, err := NewField(3, WithExtension(2, poly.New(map[uint]int64{0: 2, 1: 1, 2: 1})))
	assert.NoError(t, err)

	return f
}

// gf125 constructs GF(5^3) reduced by x^3 + 3x + 2.
func gf125(t *testing.T) *Field {
	t.Helper()

	f, err := NewField(5, WithExtension(3, poly.New(map[uint]int64{0: 2, 1: 3, 3: 1})))
	assert.NoError(t, err)

	return f
}
