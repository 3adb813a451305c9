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
)

// Element is a member of a Galois field: a polynomial in canonical form,
// i.e. of degree below m with every coefficient in [0, p).  The invariant is
// re-established at the end of every operation, so an Element can always be
// compared and rendered directly.
type Element struct {
	field *Field
	pol   *poly.Poly
}

// element wraps an already-canonical polynomial without copying.  Internal
// callers must guarantee canonical form.
func (f *Field) element(pol *poly.Poly) *Element {
	return &Element{field: f, pol: pol}
}

// Element constructs a field element from the given polynomial.  A nil
// polynomial yields the zero element.  Coefficients are reduced mod p; a
// degree ≥ m polynomial is then fitted into an extension field by reduction
// modulo the field modulus, whereas a prime field fails with
// ErrPrimeFieldFit since it cannot represent a non-zero degree.
func (f *Field) Element(pol *poly.Poly) (*Element, error) {
	if pol == nil {
		return f.Zero(), nil
	}
	//
	pol = pol.Clone()
	pol.BroadcastModulo(f.p)
	//
	if pol.Degree() >= int(f.m) {
		if f.m == 1 {
			return nil, fmt.Errorf("%w (degree %d)", ErrPrimeFieldFit, pol.Degree())
		}
		//
		var err error
		if pol, err = ladderMod(pol, f.modulus, f.p); err != nil {
			return nil, err
		}
	}
	//
	return f.element(pol), nil
}

// Zero returns the additive identity.
func (f *Field) Zero() *Element {
	return f.element(poly.New(nil))
}

// One returns the multiplicative identity.
func (f *Field) One() *Element {
	return f.element(poly.NewTerm(0, 1))
}

// X returns the degree-one element x.  It only exists in extension fields.
func (f *Field) X() (*Element, error) {
	return f.Element(poly.NewTerm(1, 1))
}

// FromInt returns the element representing the residue of v modulo p.
func (f *Field) FromInt(v int64) *Element {
	v %= f.p
	if v < 0 {
		v += f.p
	}
	//
	return f.element(poly.NewTerm(0, v))
}

// Field returns the descriptor this element belongs to.
func (e *Element) Field() *Field { return e.field }

// Poly returns a copy of the canonical polynomial underlying this element.
func (e *Element) Poly() *poly.Poly { return e.pol.Clone() }

// sameField guards arithmetic against mixing elements of distinct fields.
func (e *Element) sameField(x *Element) error {
	if e.field == x.field || e.field.Equal(x.field) {
		return nil
	}
	//
	return fmt.Errorf("%w (%s vs %s)", ErrFieldMismatch, e.field, x.field)
}

// Add returns e + x: the coefficient-wise sum mod p over degrees [0, m).
func (e *Element) Add(x *Element) (*Element, error) {
	if err := e.sameField(x); err != nil {
		return nil, err
	}
	//
	return e.field.element(addMod(e.pol, x.pol, e.field.p)), nil
}

// Sub returns e - x: the coefficient-wise difference mod p.
func (e *Element) Sub(x *Element) (*Element, error) {
	if err := e.sameField(x); err != nil {
		return nil, err
	}
	//
	return e.field.element(subMod(e.pol, x.pol, e.field.p)), nil
}

// Neg returns the additive inverse -e.
func (e *Element) Neg() *Element {
	return e.field.element(subMod(poly.New(nil), e.pol, e.field.p))
}

// Mul returns e * x: the full convolution of the two polynomials, reduced
// modulo the field modulus when in an extension field.
func (e *Element) Mul(x *Element) (*Element, error) {
	if err := e.sameField(x); err != nil {
		return nil, err
	}
	//
	res := mulMod(e.pol, x.pol, e.field.p)
	//
	if e.field.m > 1 {
		// The convolution can reach degree 2m-2; keep only the remainder.
		_, rem, err := longDiv(res, e.field.modulus, e.field.p)
		if err != nil {
			return nil, err
		}

		res = rem
	}
	//
	return e.field.element(res), nil
}

// Div returns the field quotient e / x, computed as e * x⁻¹.  Division by
// the zero element fails with ErrDivisionByZero.
func (e *Element) Div(x *Element) (*Element, error) {
	if err := e.sameField(x); err != nil {
		return nil, err
	}
	//
	inv, err := x.Inverse()
	if err != nil {
		return nil, err
	}
	//
	return e.Mul(inv)
}

// Quo returns the polynomial quotient e // x (not field division).  When the
// divisor is an integer (or the field is prime) this is a coefficient-wise
// integer quotient, the counterpart of Mod's integer remainder; otherwise it
// is schoolbook long division.
func (e *Element) Quo(x *Element) (*Element, error) {
	if err := e.sameField(x); err != nil {
		return nil, err
	}
	//
	if x.IsZero() {
		return nil, fmt.Errorf("%w: quotient by zero", ErrDivisionByZero)
	}
	//
	if e.field.m == 1 || x.IsInt() {
		var (
			d   = x.pol.Get(0)
			res = poly.New(nil)
		)
		//
		for _, i := range e.pol.Degrees(false) {
			_ = res.Set(int(i), e.pol.Get(int(i))/d)
		}
		//
		return e.field.element(res), nil
	}
	//
	quo, _, err := longDiv(e.pol.Clone(), x.pol, e.field.p)
	if err != nil {
		return nil, err
	}
	//
	return e.field.element(quo), nil
}

// Mod returns the polynomial remainder e % x.  When the divisor is an
// integer (or the field is prime) this is a coefficient-wise integer modulo;
// otherwise the remainder is computed with the repeated-squaring reduction
// ladder, which never materialises large intermediates.
func (e *Element) Mod(x *Element) (*Element, error) {
	if err := e.sameField(x); err != nil {
		return nil, err
	}
	//
	if x.IsZero() {
		return nil, fmt.Errorf("%w: modulo by zero", ErrDivisionByZero)
	}
	//
	if e.field.m == 1 || x.IsInt() {
		var (
			d   = x.pol.Get(0)
			res = poly.New(nil)
		)
		//
		for _, i := range e.pol.Degrees(false) {
			_ = res.Set(int(i), e.pol.Get(int(i))%d)
		}
		//
		return e.field.element(res), nil
	}
	//
	rem, err := ladderMod(e.pol, x.pol, e.field.p)
	if err != nil {
		return nil, err
	}
	//
	return e.field.element(rem), nil
}

// Exp returns e^k for k > 0, by square-and-multiply over a precomputed
// ladder of e^(2^i).
func (e *Element) Exp(k uint64) (*Element, error) {
	if k == 0 {
		return nil, ErrNonPositiveExponent
	}
	//
	var (
		sq  = e.Clone()
		res = e.field.One()
		err error
	)
	//
	for k > 0 {
		if k&1 == 1 {
			if res, err = res.Mul(sq); err != nil {
				return nil, err
			}
		}
		//
		k >>= 1
		if k > 0 {
			if sq, err = sq.Mul(sq); err != nil {
				return nil, err
			}
		}
	}
	//
	return res, nil
}

// IsZero checks whether this is the additive identity.
func (e *Element) IsZero() bool {
	return e.pol.IsZero()
}

// IsOne checks whether this is the multiplicative identity.
func (e *Element) IsOne() bool {
	return e.pol.Degree() == 0 && e.pol.Get(0) == 1
}

// IsInt checks whether this element is a non-zero degree-zero residue.
func (e *Element) IsInt() bool {
	return e.pol.Degree() == 0
}

// Int returns the residue value of a degree-zero (or zero) element.  The
// second result is false for elements of higher degree.
func (e *Element) Int() (int64, bool) {
	if e.pol.Degree() > 0 {
		return 0, false
	}
	//
	return e.pol.Get(0), true
}

// Equal checks whether two elements denote the same value of the same field.
func (e *Element) Equal(x *Element) bool {
	return e.field.Equal(x.field) && e.pol.Equal(x.pol)
}

// Clone returns an independent copy of this element.
func (e *Element) Clone() *Element {
	return e.field.element(e.pol.Clone())
}

// String renders the element as "GF(p^m)[X] / F(x): P(x)".
func (e *Element) String() string {
	return fmt.Sprintf("%s: %s", e.field, e.pol)
}
