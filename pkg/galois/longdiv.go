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
package galois

import (
	"fmt"

	"github.com/consensys/go-galois/pkg/poly"
	"github.com/consensys/go-galois/pkg/util/arith"
)

// addMod returns a + b with coefficients reduced into [0, p).  Operands must
// already be reduced.
func addMod(a, b *poly.Poly, p int64) *poly.Poly {
	res := a.Clone()
	//
	for _, d := range b.Degrees(false) {
		c := (res.Get(int(d)) + b.Get(int(d))) % p
		_ = res.Set(int(d), c)
	}
	//
	return res
}

// subMod returns a - b with coefficients reduced into [0, p).
func subMod(a, b *poly.Poly, p int64) *poly.Poly {
	res := a.Clone()
	//
	for _, d := range b.Degrees(false) {
		c := (res.Get(int(d)) - b.Get(int(d))) % p
		if c < 0 {
			c += p
		}

		_ = res.Set(int(d), c)
	}
	//
	return res
}

// mulMod returns the full convolution a * b with term products reduced mod
// p.  The result degree can reach deg(a) + deg(b); reduction by a field
// modulus is the caller's business.
func mulMod(a, b *poly.Poly, p int64) *poly.Poly {
	res := poly.New(nil)
	//
	for _, i := range a.Degrees(false) {
		for _, j := range b.Degrees(false) {
			d := int(i + j)
			c := (res.Get(d) + a.Get(int(i))*b.Get(int(j))) % p
			_ = res.Set(d, c)
		}
	}
	//
	return res
}

// scaleMod returns a * c with coefficients reduced into [0, p).
func scaleMod(a *poly.Poly, c, p int64) *poly.Poly {
	res := poly.New(nil)
	//
	for _, d := range a.Degrees(false) {
		_ = res.Set(int(d), (a.Get(int(d))*c)%p)
	}
	//
	return res
}

// longDiv performs schoolbook polynomial long division of num by den over
// Z_p, returning quotient and remainder.  The numerator is consumed; callers
// wishing to keep it must pass a clone.  Division by the zero polynomial
// fails with ErrDivisionByZero, and a numerator of smaller degree divides to
// a zero quotient with itself as remainder.
func longDiv(num, den *poly.Poly, p int64) (quo, rem *poly.Poly, err error) {
	if den.IsZero() {
		return nil, nil, fmt.Errorf("%w: polynomial division by zero", ErrDivisionByZero)
	}
	//
	var (
		d1 = num.Degree()
		d2 = den.Degree()
	)
	//
	if d1 < d2 {
		return poly.New(nil), num, nil
	}
	// The divisor's leading coefficient lies in [1, p), hence is invertible.
	invLead, err := arith.ModInverse(den.Lead(), p)
	if err != nil {
		return nil, nil, err
	}
	//
	quo = poly.New(nil)
	//
	for d1 >= d2 {
		fac := (num.Get(d1) * invLead) % p
		_ = quo.Set(d1-d2, fac)
		// Cancel the leading term by subtracting the scaled, shifted divisor.
		for _, j := range den.Degrees(true) {
			d := d1 - d2 + int(j)
			c := (num.Get(d) - den.Get(int(j))*fac) % p
			//
			if c < 0 {
				c += p
			}

			_ = num.Set(d, c)
		}
		//
		d1 = num.Degree()
	}
	//
	return quo, num, nil
}

// ladderMod reduces num modulo div over Z_p without ever materialising an
// exponentially large intermediate.  It precomputes x^(2^k) mod div by
// repeated squaring, then folds each occupied degree of num into the result
// using the precomputed powers of its set bits.
func ladderMod(num, div *poly.Poly, p int64) (*poly.Poly, error) {
	if div.IsZero() {
		return nil, fmt.Errorf("%w: modulo by zero", ErrDivisionByZero)
	}
	//
	var (
		degree = num.Degree()
		ladder = map[uint]*poly.Poly{}
	)
	// Seed the ladder with x mod div.
	_, x1, err := longDiv(poly.NewTerm(1, 1), div, p)
	if err != nil {
		return nil, err
	}
	//
	ladder[1] = x1
	//
	for a := uint(1); int(a*2) <= degree; a *= 2 {
		_, sq, err := longDiv(mulMod(ladder[a], ladder[a], p), div, p)
		if err != nil {
			return nil, err
		}

		ladder[a*2] = sq
	}
	//
	res := poly.New(nil)
	//
	for _, i := range num.Degrees(true) {
		var (
			term = poly.NewTerm(0, num.Get(int(i)))
			bits = i
		)
		//
		for j := uint(1); bits > 0; j *= 2 {
			if bits&1 == 1 {
				if _, term, err = longDiv(mulMod(term, ladder[j], p), div, p); err != nil {
					return nil, err
				}
			}
			//
			bits >>= 1
		}
		//
		res = addMod(res, term, p)
	}
	//
	return res, nil
}
