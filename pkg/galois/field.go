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

// Package galois implements arithmetic over Galois fields GF(p) and GF(p^m).
// A Field is validated once and then shared (read-only) by any number of
// Elements; every operation on an Element yields a fresh Element already in
// canonical form, i.e. degree below m with coefficients in [0, p).
package galois

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-galois/pkg/poly"
	"github.com/consensys/go-galois/pkg/util/arith"
)

// Field describes GF(p^m): a prime characteristic p, an extension degree m,
// and (for m > 1) the irreducible modulus polynomial defining the reduction
// rule.  A Field is immutable once constructed; its modulus polynomial is
// never exposed for mutation.
type Field struct {
	p       int64
	m       uint
	modulus *poly.Poly // nil for prime fields
}

type config struct {
	m              uint
	modulus        *poly.Poly
	skipPrimeCheck bool
}

// Option configures field construction.
type Option func(*config)

// WithExtension requests the extension field GF(p^m) reduced by the given
// modulus polynomial, which must be irreducible of degree exactly m.
func WithExtension(m uint, modulus *poly.Poly) Option {
	return func(c *config) {
		c.m = m
		c.modulus = modulus
	}
}

// WithoutPrimalityCheck skips the primality test on p.  Intended for hot
// construction paths where p is already known to be prime.
func WithoutPrimalityCheck() Option {
	return func(c *config) { c.skipPrimeCheck = true }
}

// NewField validates and constructs GF(p), or GF(p^m) when the WithExtension
// option is supplied.  Validation fails fast, in order: primality of p,
// positivity of m, modulus degree, and finally irreducibility of the modulus
// via the multiplicative order test.
func NewField(p int64, opts ...Option) (*Field, error) {
	cfg := config{m: 1}
	//
	for _, opt := range opts {
		opt(&cfg)
	}
	//
	if !cfg.skipPrimeCheck && !arith.IsPrime(p) {
		return nil, fmt.Errorf("%w (got %d)", ErrNotPrime, p)
	}
	//
	if cfg.m == 0 {
		return nil, ErrNonPositiveDegree
	}
	//
	f := &Field{p: p, m: cfg.m}
	//
	if cfg.m == 1 {
		return f, nil
	}
	//
	if cfg.modulus == nil {
		return nil, ErrNoModulus
	}
	// Bring the modulus coefficients into [0, p) before anything else, since
	// reduction can change its degree.
	modulus := cfg.modulus.Clone()
	modulus.BroadcastModulo(p)
	//
	if modulus.Degree() != int(cfg.m) {
		return nil, fmt.Errorf("%w (degree %d, m %d)", ErrWrongModulusDegree, modulus.Degree(), cfg.m)
	}
	//
	f.modulus = modulus
	//
	if err := f.checkIrreducible(); err != nil {
		return nil, err
	}
	//
	return f, nil
}

// checkIrreducible verifies the modulus polynomial by the full multiplicative
// order test: with n = p^m - 1, the element x must satisfy x^n = 1 and
// x^(n/q) ≠ 1 for every prime q dividing n.  This proves x generates the
// multiplicative group of the quotient ring, which forces the quotient to be
// a field and hence the modulus to be irreducible.  The test is deliberately
// stricter than bare irreducibility: a modulus for which x is not a
// generator is rejected, so every accepted field comes with x primitive.
func (f *Field) checkIrreducible() error {
	order, ok := f.orderUint64()
	if !ok {
		return ErrOrderOverflow
	}
	//
	var (
		n = order - 1
		x = f.element(poly.NewTerm(1, 1))
	)
	//
	if xn, err := x.Exp(n); err != nil || !xn.IsOne() {
		return fmt.Errorf("%w: x^%d != 1", ErrReducible, n)
	}
	//
	for _, q := range arith.Factorize(n) {
		xq, err := x.Exp(n / q)
		if err != nil {
			return err
		}

		if xq.IsOne() {
			return fmt.Errorf("%w: x^%d = 1", ErrReducible, n/q)
		}

		log.Debugf("order test: x^(%d/%d) != 1", n, q)
	}
	//
	return nil
}

// orderUint64 computes p^m, reporting failure on overflow.
func (f *Field) orderUint64() (uint64, bool) {
	order := uint64(1)
	//
	for i := uint(0); i < f.m; i++ {
		if order > math.MaxUint64/uint64(f.p) {
			return 0, false
		}

		order *= uint64(f.p)
	}
	//
	return order, true
}

// P returns the prime characteristic.
func (f *Field) P() int64 { return f.p }

// M returns the extension degree (one for prime fields).
func (f *Field) M() uint { return f.m }

// Order returns the number of elements in the field, p^m.
func (f *Field) Order() uint64 {
	order, _ := f.orderUint64()
	return order
}

// Modulus returns a copy of the modulus polynomial, or nil for prime fields.
// A copy is returned so the shared descriptor can never be mutated.
func (f *Field) Modulus() *poly.Poly {
	if f.modulus == nil {
		return nil
	}
	//
	return f.modulus.Clone()
}

// Equal checks whether two descriptors define the same field, component-wise
// over (p, m, modulus).
func (f *Field) Equal(g *Field) bool {
	if f == g {
		return true
	}
	//
	if f.p != g.p || f.m != g.m {
		return false
	}
	//
	switch {
	case f.modulus == nil && g.modulus == nil:
		return true
	case f.modulus == nil || g.modulus == nil:
		return false
	default:
		return f.modulus.Equal(g.modulus)
	}
}

// String renders the field as "GF(p)" or "GF(p^m)[X] / F(x)".
func (f *Field) String() string {
	if f.m == 1 {
		return fmt.Sprintf("GF(%d)", f.p)
	}
	//
	return fmt.Sprintf("GF(%d^%d)[X] / %s", f.p, f.m, f.modulus)
}
