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

// Inverse returns the multiplicative inverse e⁻¹.  The zero element has no
// inverse and fails with ErrDivisionByZero.  Degree-zero elements (and all
// prime-field elements) invert through the integer extended Euclid; the
// general extension-field case runs the extended Euclidean algorithm over
// polynomials against the field modulus.
func (e *Element) Inverse() (*Element, error) {
	switch {
	case e.IsZero():
		return nil, fmt.Errorf("%w: zero has no inverse", ErrDivisionByZero)
	case e.IsOne():
		return e.field.One(), nil
	case e.field.m == 1 || e.IsInt():
		inv, err := arith.ModInverse(e.pol.Get(0), e.field.p)
		if err != nil {
			return nil, err
		}

		return e.field.element(poly.NewTerm(0, inv)), nil
	}
	//
	return e.polyInverse()
}

// polyInverse computes e⁻¹ by the extended Euclidean algorithm over Z_p[x],
// with the field modulus as the co-operand.  The Bézout coefficient of e is
// tracked through the remainder sequence; once the running remainder drops
// to a non-zero constant c, the inverse is that coefficient scaled by c⁻¹.
// A zero terminal remainder means e and the modulus share a factor, which is
// impossible for a validated irreducible modulus and a non-zero element, so
// it is surfaced as an internal invariant violation.
func (e *Element) polyInverse() (*Element, error) {
	var (
		p = e.field.p
		a = e.field.modulus.Clone()
		b = e.pol.Clone()
		// Bézout coefficients of a and b with respect to e.
		t0 = poly.New(nil)
		t1 = poly.NewTerm(0, 1)
	)
	//
	for b.Degree() > 0 {
		quo, rem, err := longDiv(a.Clone(), b, p)
		if err != nil {
			return nil, err
		}
		// t0, t1 = t1, t0 - t1*quo
		t0, t1 = t1, subMod(t0, mulMod(t1, quo, p), p)
		a, b = b, rem
	}
	//
	if b.IsZero() {
		return nil, fmt.Errorf("%w: element shares a factor with the field modulus", arith.ErrNotCoprime)
	}
	// b is now a non-zero constant; fold its integer inverse into the
	// accumulated coefficient.
	cInv, err := arith.ModInverse(b.Get(0), p)
	if err != nil {
		return nil, err
	}
	//
	return e.field.element(scaleMod(t1, cInv, p)), nil
}
