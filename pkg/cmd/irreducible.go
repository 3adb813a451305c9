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
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-galois/pkg/galois"
)

// irreducibleCmd checks whether a candidate modulus polynomial is
// irreducible over Z_p, by attempting to construct the extension field.
var irreducibleCmd = &cobra.Command{
	Use:   "irreducible [flags] polynomial",
	Short: "Check irreducibility of a candidate modulus polynomial",
	Long: `Check whether the given polynomial (ascending coefficients) is
irreducible over Z_p, i.e. whether it is a valid modulus for GF(p^m).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		pol, err := parsePoly(args[0])
		if err != nil {
			log.Fatal(err)
		}
		//
		var (
			p = getInt64(cmd, "prime")
			m = pol.Degree()
		)
		//
		if m < 1 {
			log.Fatalf("candidate %s has no degree", pol)
		}
		//
		_, err = galois.NewField(p, galois.WithExtension(uint(m), pol))
		//
		switch {
		case err == nil:
			fmt.Printf("%s is irreducible over GF(%d)\n", pol, p)
		case errors.Is(err, galois.ErrReducible):
			fmt.Printf("%s is reducible over GF(%d)\n", pol, p)
			os.Exit(1)
		default:
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(irreducibleCmd)
}
