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
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/consensys/go-galois/pkg/galois"
	"github.com/consensys/go-galois/pkg/poly"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected int64 flag, or panic if an error arises.
func getInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected uint flag, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// parsePoly parses a comma-separated list of coefficients in ascending
// degree order (e.g. "1,1,0,1" for x^3 + x + 1) into a sparse polynomial.
func parsePoly(s string) (*poly.Poly, error) {
	coeffs := make(map[uint]int64)
	//
	for i, cell := range strings.Split(s, ",") {
		c, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", cell, err)
		}

		coeffs[uint(i)] = c
	}
	//
	return poly.New(coeffs), nil
}

// fieldFromFlags constructs the field described by the persistent flags.
func fieldFromFlags(cmd *cobra.Command) (*galois.Field, error) {
	var (
		p    = getInt64(cmd, "prime")
		m    = getUint(cmd, "degree")
		opts []galois.Option
	)
	//
	if getFlag(cmd, "no-prime-check") {
		opts = append(opts, galois.WithoutPrimalityCheck())
	}
	//
	if m > 1 {
		modulus := getString(cmd, "modulus")
		if modulus == "" {
			return nil, fmt.Errorf("extension degree %d requires --modulus", m)
		}

		pol, err := parsePoly(modulus)
		if err != nil {
			return nil, err
		}

		opts = append(opts, galois.WithExtension(m, pol))
	}
	//
	return galois.NewField(p, opts...)
}

// elementFromArg parses a command argument into an element of the given
// field.  Arguments are either a plain residue or a coefficient list.
func elementFromArg(f *galois.Field, arg string) (*galois.Element, error) {
	pol, err := parsePoly(arg)
	if err != nil {
		return nil, err
	}
	//
	return f.Element(pol)
}
