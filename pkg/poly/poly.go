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

// Package poly provides a sparse, degree-indexed polynomial over the
// integers.  Only non-zero coefficients are stored, and the list of occupied
// degrees is cached lazily so that repeated leading-term lookups during long
// division run in amortised constant time.
package poly

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNegativeDegree indicates an attempt to store a coefficient at a
// negative degree.
var ErrNegativeDegree = errors.New("negative degree not allowed")

// Poly is a sparse polynomial mapping degrees to non-zero integer
// coefficients.  The zero polynomial stores nothing and has degree -1.
type Poly struct {
	coeffs map[uint]int64
	// Ascending list of occupied degrees, or nil when invalidated by a
	// write.  Recomputed on demand, never eagerly.
	cache []uint
}

// New constructs a polynomial from a degree→coefficient mapping.  Zero
// coefficients in the mapping are dropped.  A nil mapping yields the zero
// polynomial.
func New(coeffs map[uint]int64) *Poly {
	p := &Poly{coeffs: make(map[uint]int64, len(coeffs))}
	//
	for d, c := range coeffs {
		if c != 0 {
			p.coeffs[d] = c
		}
	}
	//
	return p
}

// NewTerm constructs the monomial c·x^d.
func NewTerm(d uint, c int64) *Poly {
	return New(map[uint]int64{d: c})
}

// Get returns the coefficient at degree d, or zero if the degree is not
// occupied.  As a special case, Get(-1) returns the leading coefficient
// (i.e. that of the maximum degree), which is zero for the zero polynomial.
func (p *Poly) Get(d int) int64 {
	if d == -1 {
		d = p.Degree()
	}
	//
	if d < 0 {
		return 0
	}
	//
	return p.coeffs[uint(d)]
}

// Lead returns the leading coefficient, or zero for the zero polynomial.
func (p *Poly) Lead() int64 {
	return p.Get(-1)
}

// Set stores coefficient c at degree d.  Storing zero removes the entry.
// Negative degrees fail with ErrNegativeDegree.
func (p *Poly) Set(d int, c int64) error {
	if d < 0 {
		return ErrNegativeDegree
	}
	//
	if c == 0 {
		if _, ok := p.coeffs[uint(d)]; ok {
			delete(p.coeffs, uint(d))
			p.cache = nil
		}

		return nil
	}
	// Overwriting an occupied degree leaves the cached key list intact.
	if _, ok := p.coeffs[uint(d)]; !ok {
		p.cache = nil
	}
	//
	p.coeffs[uint(d)] = c
	//
	return nil
}

// Degree returns the maximum occupied degree, or -1 for the zero polynomial.
func (p *Poly) Degree() int {
	keys := p.keys()
	if len(keys) == 0 {
		return -1
	}
	//
	return int(keys[len(keys)-1])
}

// Degrees returns the occupied degrees in ascending order, or descending
// order when desc is set.  The returned slice must not be modified.
func (p *Poly) Degrees(desc bool) []uint {
	keys := p.keys()
	//
	if desc {
		keys = slices.Clone(keys)
		slices.Reverse(keys)
	}
	//
	return keys
}

// keys returns the (cached) ascending list of occupied degrees.
func (p *Poly) keys() []uint {
	if p.cache == nil {
		p.cache = make([]uint, 0, len(p.coeffs))
		for d := range p.coeffs {
			p.cache = append(p.cache, d)
		}

		slices.Sort(p.cache)
	}
	//
	return p.cache
}

// IsZero checks whether this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// BroadcastModulo reduces every stored coefficient into [0, m), dropping any
// entry which reduces to zero.
func (p *Poly) BroadcastModulo(m int64) {
	for d, c := range p.coeffs {
		c %= m
		if c < 0 {
			c += m
		}

		if c == 0 {
			delete(p.coeffs, d)
			p.cache = nil
		} else {
			p.coeffs[d] = c
		}
	}
}

// Clone returns an independent copy sharing no mutable state with p.
func (p *Poly) Clone() *Poly {
	q := &Poly{coeffs: make(map[uint]int64, len(p.coeffs))}
	//
	for d, c := range p.coeffs {
		q.coeffs[d] = c
	}
	//
	return q
}

// Eval evaluates the polynomial at the integer point x using Horner's method
// over the occupied degrees in descending order.
func (p *Poly) Eval(x int64) int64 {
	var (
		total int64
		prev  = -1
	)
	//
	for _, d := range p.Degrees(true) {
		if prev >= 0 {
			for i := prev; i > int(d); i-- {
				total *= x
			}
		}

		total = total + p.coeffs[d]
		prev = int(d)
	}
	// Account for the trailing run of absent low degrees.
	for i := prev; i > 0; i-- {
		total *= x
	}
	//
	return total
}

// Equal checks whether two polynomials occupy exactly the same degrees with
// identical coefficients.
func (p *Poly) Equal(q *Poly) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	//
	for d, c := range p.coeffs {
		if q.coeffs[d] != c {
			return false
		}
	}
	//
	return true
}

// String renders the polynomial in descending-degree form, for example
// "x^3 + 2x^1 + 1".  The zero polynomial renders as "0".
func (p *Poly) String() string {
	keys := p.Degrees(true)
	if len(keys) == 0 {
		return "0"
	}
	//
	var sb strings.Builder
	//
	for i, d := range keys {
		c := p.coeffs[d]
		//
		switch {
		case i == 0 && c < 0:
			sb.WriteString("- ")
		case i != 0 && c < 0:
			sb.WriteString(" - ")
		case i != 0:
			sb.WriteString(" + ")
		}
		//
		abs := c
		if abs < 0 {
			abs = -abs
		}
		//
		if d == 0 {
			fmt.Fprintf(&sb, "%d", abs)
		} else if abs == 1 {
			fmt.Fprintf(&sb, "x^%d", d)
		} else {
			fmt.Fprintf(&sb, "%dx^%d", abs, d)
		}
	}
	//
	return sb.String()
}
