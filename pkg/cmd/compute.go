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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-galois/pkg/galois"
)

// computeCmd evaluates a single field operation over one or two elements.
var computeCmd = &cobra.Command{
	Use:   "compute [flags] op operand(s)",
	Short: "Compute a field operation",
	Long: `Compute a single operation over elements of the configured field.
Binary operations: add, sub, mul, div, quo, mod.
Unary operations: inv, neg.  Exponentiation: exp element k.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		field, err := fieldFromFlags(cmd)
		if err != nil {
			log.Fatal(err)
		}
		//
		res, err := compute(field, args[0], args[1:])
		if err != nil {
			log.Fatal(err)
		}
		//
		fmt.Println(res)
	},
}

func compute(field *galois.Field, op string, args []string) (*galois.Element, error) {
	lhs, err := elementFromArg(field, args[0])
	if err != nil {
		return nil, err
	}
	// Unary operations first.
	switch op {
	case "inv":
		return lhs.Inverse()
	case "neg":
		return lhs.Neg(), nil
	}
	//
	if len(args) != 2 {
		return nil, fmt.Errorf("operation %q requires two operands", op)
	}
	// Exponentiation takes an integer right-hand side.
	if op == "exp" {
		k, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid exponent %q: %w", args[1], err)
		}

		return lhs.Exp(k)
	}
	//
	rhs, err := elementFromArg(field, args[1])
	if err != nil {
		return nil, err
	}
	//
	switch op {
	case "add":
		return lhs.Add(rhs)
	case "sub":
		return lhs.Sub(rhs)
	case "mul":
		return lhs.Mul(rhs)
	case "div":
		return lhs.Div(rhs)
	case "quo":
		return lhs.Quo(rhs)
	case "mod":
		return lhs.Mod(rhs)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

func init() {
	rootCmd.AddCommand(computeCmd)
}
