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

import "errors"

var (
	// ErrNotPrime indicates the requested characteristic is composite.
	ErrNotPrime = errors.New("modulus p must be prime")
	// ErrNonPositiveDegree indicates a non-positive extension degree.
	ErrNonPositiveDegree = errors.New("extension degree m must be positive")
	// ErrNoModulus indicates an extension field was requested without a
	// modulus polynomial.
	ErrNoModulus = errors.New("extension field requires a modulus polynomial")
	// ErrWrongModulusDegree indicates the modulus polynomial degree does not
	// match the extension degree.
	ErrWrongModulusDegree = errors.New("modulus polynomial degree must equal m")
	// ErrReducible indicates the candidate modulus polynomial failed the
	// irreducibility test.
	ErrReducible = errors.New("modulus polynomial is reducible")
	// ErrOrderOverflow indicates p^m does not fit the native word size.
	ErrOrderOverflow = errors.New("field order p^m overflows native width")

	// ErrPrimeFieldFit indicates a polynomial of non-zero degree was supplied
	// for a prime field, which has no representation for it.
	ErrPrimeFieldFit = errors.New("polynomial does not fit in a prime field")
	// ErrFieldMismatch indicates arithmetic between elements of two distinct
	// fields.
	ErrFieldMismatch = errors.New("operands belong to different fields")
	// ErrDivisionByZero indicates field division or inversion of the zero
	// element, or polynomial division by the zero polynomial.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonPositiveExponent indicates Exp was called with exponent zero.
	ErrNonPositiveExponent = errors.New("exponent must be positive")
)
