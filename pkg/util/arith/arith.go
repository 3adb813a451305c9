// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package arith provides the integer number-theory primitives underpinning
// field construction and element inversion: deterministic primality testing,
// the extended Euclidean algorithm and factorisation into distinct primes.
package arith

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// ErrNotCoprime indicates the extended Euclidean algorithm was applied to a
// pair of operands whose greatest common divisor is not one, meaning no
// modular inverse exists.
var ErrNotCoprime = errors.New("operands are not coprime")

// IsPrime determines (deterministically) whether n is prime, using trial
// division over the 6k±1 pattern up to √n.  Anything below two is rejected.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}

	if n <= 3 {
		return true
	}

	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// Remaining candidates are all of the form 6k±1.
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Egcd computes the Bézout identity g = x*a + y*b for non-negative a and b,
// where g is the greatest common divisor of a and b.
func Egcd(a, b int64) (g, x, y int64) {
	var (
		x0, x1 int64 = 1, 0
		y0, y1 int64 = 0, 1
	)
	//
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	//
	return a, x0, y0
}

// ModInverse returns the multiplicative inverse of a modulo p, normalised
// into [0, p).  It fails with ErrNotCoprime when gcd(a, p) ≠ 1, in which
// case no inverse exists.
func ModInverse(a, p int64) (int64, error) {
	a %= p
	if a < 0 {
		a += p
	}
	//
	g, _, y := Egcd(p, a)
	if g != 1 {
		return 0, ErrNotCoprime
	}
	//
	return ((y % p) + p) % p, nil
}

// sieveBound caps the size of the Eratosthenes sieve used by Factorize.
// Beyond it, factorisation falls back to trial division.
const sieveBound = 1 << 16

// Factorize returns the distinct prime factors of n in ascending order.  For
// n < 2 the result is empty.
func Factorize(n uint64) []uint64 {
	var factors []uint64
	//
	if n < 2 {
		return factors
	}
	// Strip small primes using a sieve.
	for _, p := range sievePrimes(sieveBound) {
		if uint64(p)*uint64(p) > n {
			break
		}

		if n%uint64(p) == 0 {
			factors = append(factors, uint64(p))
			for n%uint64(p) == 0 {
				n /= uint64(p)
			}
		}
	}
	// Continue with odd candidates past the sieve, in case n still holds
	// factors above the sieve bound.
	for i := uint64(sieveBound + 1); i*i <= n; i += 2 {
		if n%i == 0 {
			factors = append(factors, i)
			for n%i == 0 {
				n /= i
			}
		}
	}
	// Whatever remains is itself prime.
	if n > 1 {
		factors = append(factors, n)
	}
	//
	return factors
}

// sievePrimes enumerates all primes below the given bound using a bitset as
// the sieve of Eratosthenes.
func sievePrimes(bound uint) []uint {
	var (
		composite = bitset.New(bound)
		primes    []uint
	)
	//
	for i := uint(2); i < bound; i++ {
		if composite.Test(i) {
			continue
		}

		primes = append(primes, i)

		for j := i * i; j < bound; j += i {
			composite.Set(j)
		}
	}
	//
	return primes
}
