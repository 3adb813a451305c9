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

// Package smallprime is a table-free fast path for prime fields GF(p) with
// p < 2^31.  Elements are kept in Montgomery form so that multiplication
// costs one wide product and one reduction instead of a hardware division.
// It trades the generality of the sparse-polynomial engine for speed on the
// prime case, much as gf256 does for GF(2^8).
package smallprime

import (
	"cmp"
	"fmt"
	"math/big"

	"github.com/consensys/go-galois/pkg/util/arith"
)

// Element of a small prime field, held in Montgomery form.  The array
// wrapper prevents mistaken use of native arithmetic operators.
type Element [1]uint32

// Field of prime order less than 2^31.
type Field struct {
	modulus uint32
	// negInvModR is -modulus^-1 (mod 2^32), the Montgomery constant.
	negInvModR uint32
}

// New constructs the prime field of the given order.  The modulus must be an
// odd prime below 2^31, leaving one bit of slack for reduction.
func New(modulus uint32) (Field, error) {
	if modulus >= 1<<31 {
		return Field{}, fmt.Errorf("modulus %d out of range", modulus)
	}
	//
	if !arith.IsPrime(int64(modulus)) || modulus == 2 {
		return Field{}, fmt.Errorf("modulus %d is not an odd prime", modulus)
	}
	//
	m := big.NewInt(int64(modulus))
	m.ModInverse(m, big.NewInt(1<<32))
	//
	return Field{modulus: modulus, negInvModR: uint32(1<<32 - m.Uint64())}, nil
}

// Modulus returns the order of the field.
func (f Field) Modulus() uint32 {
	return f.modulus
}

// FromUint32 maps a natural number into the field, entering Montgomery form.
func (f Field) FromUint32(x uint32) Element {
	return Element{uint32(uint64(x) << 32 % uint64(f.modulus))}
}

// Uint32 returns the numerical (non-Montgomery) value of x.
func (f Field) Uint32(x Element) uint32 {
	return f.reduce(uint64(x[0]))[0]
}

// Zero returns the additive identity.
func (f Field) Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func (f Field) One() Element {
	return f.FromUint32(1)
}

// Add returns x + y.
func (f Field) Add(x, y Element) Element {
	res := Element{x[0] + y[0]}
	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}
	//
	return res
}

// Sub returns x - y.
func (f Field) Sub(x, y Element) Element {
	const negMask uint32 = 1 << 31
	//
	res := Element{x[0] - y[0]}
	if res[0]&negMask != 0 {
		res[0] += f.modulus
	}
	//
	return res
}

// Neg returns -x.
func (f Field) Neg(x Element) Element {
	return f.Sub(Element{}, x)
}

// reduce maps x to x * 2^-32 (mod modulus) by textbook Montgomery reduction.
func (f Field) reduce(x uint64) Element {
	const R = 1 << 32
	m := (x * uint64(f.negInvModR)) % R
	//
	res := Element{uint32((x + m*uint64(f.modulus)) / R)}
	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}
	//
	return res
}

// Mul returns x * y.
func (f Field) Mul(x, y Element) Element {
	return f.reduce(uint64(x[0]) * uint64(y[0]))
}

// Exp returns x^k by square and multiply.
func (f Field) Exp(x Element, k uint64) Element {
	res := f.One()
	//
	for ; k != 0; k >>= 1 {
		if k&1 != 0 {
			res = f.Mul(res, x)
		}
		//
		x = f.Mul(x, x)
	}
	//
	return res
}

// Inverse returns x^-1 via Fermat's little theorem.  The second result is
// false when x is zero.
func (f Field) Inverse(x Element) (Element, bool) {
	if x[0] == 0 {
		return Element{}, false
	}
	//
	return f.Exp(x, uint64(f.modulus)-2), true
}

// Div returns x / y.  The second result is false when y is zero.
func (f Field) Div(x, y Element) (Element, bool) {
	inv, ok := f.Inverse(y)
	if !ok {
		return Element{}, false
	}
	//
	return f.Mul(x, inv), true
}

// Cmp compares the numerical values of x and y.
func (f Field) Cmp(x, y Element) int {
	return cmp.Compare(f.Uint32(x), f.Uint32(y))
}
