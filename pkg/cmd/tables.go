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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-galois/pkg/galois"
	"github.com/consensys/go-galois/pkg/poly"
)

// tablesCmd prints the addition and multiplication tables of a small field.
var tablesCmd = &cobra.Command{
	Use:   "tables [flags]",
	Short: "Print addition and multiplication tables",
	Long: `Print the full addition and multiplication tables of the configured
field.  Output is truncated to the terminal width when attached to one.`,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := fieldFromFlags(cmd)
		if err != nil {
			log.Fatal(err)
		}
		//
		order := field.Order()
		if order > 64 {
			log.Fatalf("refusing to print tables for a field of order %d", order)
		}
		//
		width := 0
		if term.IsTerminal(0) {
			if width, _, err = term.GetSize(0); err != nil {
				width = 0
			}
		}
		//
		elements := enumerate(field)
		//
		fmt.Printf("%s\n\n", field)
		printTable(field, "+", elements, width, func(a, b *galois.Element) (*galois.Element, error) {
			return a.Add(b)
		})
		fmt.Println()
		printTable(field, "*", elements, width, func(a, b *galois.Element) (*galois.Element, error) {
			return a.Mul(b)
		})
	},
}

// enumerate lists every element of a small field in lexicographic
// coefficient order.
func enumerate(field *galois.Field) []*galois.Element {
	var (
		p        = field.P()
		m        = field.M()
		order    = field.Order()
		elements = make([]*galois.Element, 0, order)
	)
	//
	for i := uint64(0); i < order; i++ {
		var (
			coeffs = make(map[uint]int64)
			rest   = i
		)
		//
		for d := uint(0); d < m; d++ {
			coeffs[d] = int64(rest % uint64(p))
			rest /= uint64(p)
		}
		// Coefficients are already canonical, so this cannot fail.
		e, err := field.Element(poly.New(coeffs))
		if err != nil {
			panic(err)
		}

		elements = append(elements, e)
	}
	//
	return elements
}

func printTable(field *galois.Field, op string, elements []*galois.Element,
	width int, apply func(a, b *galois.Element) (*galois.Element, error)) {
	//
	for i, a := range elements {
		var row strings.Builder
		//
		if i == 0 {
			row.WriteString(headerRow(op, elements))
			fmt.Println(truncate(row.String(), width))
			//
			row.Reset()
		}
		//
		row.WriteString(cell(a))
		//
		for _, b := range elements {
			res, err := apply(a, b)
			if err != nil {
				log.Fatal(err)
			}

			row.WriteString(" " + cell(res))
		}
		//
		fmt.Println(truncate(row.String(), width))
	}
}

// cell renders an element compactly as its coefficient vector.
func cell(e *galois.Element) string {
	var (
		m     = e.Field().M()
		pol   = e.Poly()
		cells = make([]string, m)
	)
	//
	for d := uint(0); d < m; d++ {
		cells[d] = fmt.Sprintf("%d", pol.Get(int(d)))
	}
	//
	return strings.Join(cells, ":")
}

func headerRow(op string, elements []*galois.Element) string {
	var row strings.Builder
	//
	row.WriteString(op)
	//
	for _, e := range elements {
		row.WriteString(" " + cell(e))
	}
	//
	return row.String()
}

func truncate(s string, width int) string {
	if width > 0 && len(s) > width {
		return s[:width]
	}
	//
	return s
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
