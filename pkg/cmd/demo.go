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

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a worked example over GF(19).",
	Long: `Print a worked example over GF(19): the sum, difference, product and
	quotient of 2 and 7, followed by 2 cubed.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		a := newElement(2, 19)
		b := newElement(7, 19)
		//
		log.Debugf("operating on %s and %s", a, b)
		// Addition
		printResult(a.Add(b)) // FieldElement_19(9)
		// Subtraction: 2 - 7 = -5 = 14 (mod 19)
		printResult(a.Sub(b)) // FieldElement_19(14)
		// Multiplication
		printResult(a.Mul(b)) // FieldElement_19(14)
		// Division: 2 * 7⁻¹ = 2 * 11 = 22 = 3 (mod 19)
		printResult(a.Div(b)) // FieldElement_19(3)
		// Exponentiation
		fmt.Println(a.Pow(3)) // FieldElement_19(8)
	},
}

// Print a single result line, exiting on a contract violation.  The
// demo operands share a modulus, so no violation can actually arise.
func printResult(element field.FieldElement, err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	fmt.Println(element)
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
