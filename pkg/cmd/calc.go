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

	"github.com/consensys/go-galois/pkg/field"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc [flags] op lhs [rhs]",
	Short: "Evaluate a single operation over GF(p).",
	Long: `Evaluate a single arithmetic operation over the prime field GF(p).
	Supported operations are add, sub, mul, div, pow and inv.  Operands
	must be residues in [0, p); for pow, rhs is the (unreduced) exponent
	rather than a field element.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		prime := GetInt64(cmd, "prime")
		//
		if len(args) != nargs(args) {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Parse lhs operand
		lhs := newElement(parseOperand(args[1]), prime)
		// Unary operations first
		switch args[0] {
		case "inv":
			log.Debugf("inverting %s via exponent %d", lhs, prime-2)
			fmt.Println(lhs.Inverse())
			//
			return
		case "pow":
			fmt.Println(lhs.Pow(parseOperand(args[2])))
			//
			return
		}
		// Remaining operations take a field element on the rhs.
		var (
			err error
			res field.FieldElement
			rhs = newElement(parseOperand(args[2]), prime)
		)
		//
		switch args[0] {
		case "add":
			res, err = lhs.Add(rhs)
		case "sub":
			res, err = lhs.Sub(rhs)
		case "mul":
			res, err = lhs.Mul(rhs)
		case "div":
			log.Debugf("inverse of %s is %s", rhs, rhs.Inverse())
			res, err = lhs.Div(rhs)
		default:
			fmt.Printf("unknown operation \"%s\"\n", args[0])
			os.Exit(2)
		}
		// Handle error
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(res)
	},
}

// Determine how many arguments the requested operation expects.
func nargs(args []string) int {
	if len(args) > 0 && args[0] == "inv" {
		return 2
	}
	//
	return 3
}

// Construct a field element, exiting if the residue is out of range.
func newElement(num, prime int64) field.FieldElement {
	element, err := field.New(num, prime)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return element
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().Int64P("prime", "p", 19, "set the field modulus (assumed prime)")
}
