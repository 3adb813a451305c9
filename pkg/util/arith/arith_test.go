package arith

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-galois/pkg/util/assert"
)

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 101, 251, 8209, 65537, 2130706433}
	composites := []int64{-7, 0, 1, 4, 6, 9, 15, 91, 100, 8211, 65536}

	for _, p := range primes {
		assert.True(t, IsPrime(p), "%d should be prime", p)
	}

	for _, n := range composites {
		assert.True(t, !IsPrime(n), "%d should not be prime", n)
	}
}

func TestModInverse(t *testing.T) {
	const p = 101

	for a := int64(1); a < p; a++ {
		inv, err := ModInverse(a, p)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), a*inv%p, "inverse of %d", a)
	}
}

func TestModInverse_Random(t *testing.T) {
	const p = 2130706433 // KoalaBear prime

	var m big.Int

	m.SetInt64(p)

	for range 10000 {
		a := rand.Int64N(p-1) + 1

		var i big.Int

		i.SetInt64(a).ModInverse(&i, &m)

		inv, err := ModInverse(a, p)
		assert.NoError(t, err)
		assert.Equal(t, i.Int64(), inv, "inverse of %d", a)
	}
}

func TestModInverse_NotCoprime(t *testing.T) {
	_, err := ModInverse(6, 9)
	assert.IsError(t, ErrNotCoprime, err)

	_, err = ModInverse(0, 7)
	assert.IsError(t, ErrNotCoprime, err)
}

func TestEgcd(t *testing.T) {
	for range 10000 {
		a := rand.Int64N(1<<31) + 1
		b := rand.Int64N(1<<31) + 1

		g, x, y := Egcd(a, b)

		var (
			ba, bb, bg big.Int
		)

		bg.GCD(nil, nil, ba.SetInt64(a), bb.SetInt64(b))

		assert.Equal(t, bg.Int64(), g, "gcd(%d, %d)", a, b)
		assert.Equal(t, g, x*a+y*b, "bezout identity for (%d, %d)", a, b)
	}
}

func TestFactorize(t *testing.T) {
	assert.Equal(t, []uint64(nil), Factorize(0))
	assert.Equal(t, []uint64(nil), Factorize(1))
	assert.Equal(t, []uint64{2}, Factorize(2))
	assert.Equal(t, []uint64{2}, Factorize(8))
	assert.Equal(t, []uint64{2, 3}, Factorize(12))
	assert.Equal(t, []uint64{3, 5, 7}, Factorize(105))
	assert.Equal(t, []uint64{7}, Factorize(7))
	// 2^3 - 1 and 101 - 1, used by the order test
	assert.Equal(t, []uint64{7}, Factorize(7))
	assert.Equal(t, []uint64{2, 5}, Factorize(100))
	// a prime above the sieve bound
	assert.Equal(t, []uint64{2130706433}, Factorize(2130706433))
	// product of two primes above the sieve bound
	assert.Equal(t, []uint64{65537, 65539}, Factorize(65537*65539))
}
