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

	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt64 gets an expected int64 flag, or exits if an error arises.
func GetInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a command-line operand as a signed decimal integer, exiting on
// malformed input.
func parseOperand(arg string) int64 {
	val, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Printf("malformed operand \"%s\"\n", arg)
		os.Exit(2)
	}

	return val
}
