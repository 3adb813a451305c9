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

// Package gf256 is a table-driven fast path for GF(2^8) reduced by
// x^8 + x^4 + x^3 + x^2 + 1.  All non-zero elements are powers of the
// primitive element 2, so multiplication, division and inversion become
// constant-time table lookups.  The tables are generated by
// internal/generator and committed.
package gf256

import (
	"errors"

	"github.com/consensys/go-galois/pkg/poly"
)

// Modulus is the reduction polynomial x^8 + x^4 + x^3 + x^2 + 1.
const Modulus = 0x11D

// order of the multiplicative group, 2^8 - 1.
const order = 255

// ErrDivisionByZero indicates division or inversion by zero.
var ErrDivisionByZero = errors.New("division by zero in GF(2^8)")

// Element of GF(2^8), stored as its bit-packed coefficient vector.
type Element uint8

// Add returns x + y.  Addition in characteristic two is xor, and doubles as
// subtraction.
func (x Element) Add(y Element) Element {
	return x ^ y
}

// Sub returns x - y, which coincides with addition.
func (x Element) Sub(y Element) Element {
	return x ^ y
}

// Mul returns x * y via the log/exp tables.
func (x Element) Mul(y Element) Element {
	if x == 0 || y == 0 {
		return 0
	}
	//
	s := int(logTable[x]) + int(logTable[y])
	//
	return Element(expTable[s%order])
}

// Div returns x / y, failing with ErrDivisionByZero when y is zero.
func (x Element) Div(y Element) (Element, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	//
	if x == 0 {
		return 0, nil
	}
	//
	s := int(logTable[x]) - int(logTable[y]) + order
	//
	return Element(expTable[s%order]), nil
}

// Inverse returns x⁻¹, failing with ErrDivisionByZero for zero.
func (x Element) Inverse() (Element, error) {
	if x == 0 {
		return 0, ErrDivisionByZero
	}
	//
	return Element(expTable[order-int(logTable[x])]), nil
}

// Exp returns x^k.  Unlike the generic engine, which rejects exponent zero,
// the fast path adopts the convention x^0 = 1 for every x, including 0^0.
func (x Element) Exp(k uint64) Element {
	if x == 0 {
		if k == 0 {
			return 1
		}

		return 0
	}
	//
	s := uint64(logTable[x]) % order * (k % order) % order
	//
	return Element(expTable[s])
}

// Eval evaluates the polynomial with the given coefficients (ascending
// degree) at x, using Horner's method.
func Eval(coeffs []Element, x Element) Element {
	var acc Element
	//
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(coeffs[i])
	}
	//
	return acc
}

// Poly returns the sparse polynomial representation of x over Z_2, bridging
// into the generic engine.
func (x Element) Poly() *poly.Poly {
	coeffs := make(map[uint]int64)
	//
	for i := uint(0); i < 8; i++ {
		if x&(1<<i) != 0 {
			coeffs[i] = 1
		}
	}
	//
	return poly.New(coeffs)
}

// FromPoly packs a degree-<8 polynomial over Z_2 into an element.  The
// second result is false if the polynomial does not fit.
func FromPoly(p *poly.Poly) (Element, bool) {
	if p.Degree() >= 8 {
		return 0, false
	}
	//
	var x Element
	//
	for _, d := range p.Degrees(false) {
		if p.Get(int(d))%2 != 0 {
			x |= 1 << d
		}
	}
	//
	return x, true
}
