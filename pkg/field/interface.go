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
package field

import (
	"fmt"
	"math/big"
)

// An Element of a prime-order field.  Binary operations are fallible
// since, for backends carrying a per-element modulus, operands of
// different fields cannot be combined.
type Element[E any] interface {
	fmt.Stringer
	// Add x + y
	Add(y E) (E, error)
	// Sub x - y
	Sub(y E) (E, error)
	// Mul x * y
	Mul(y E) (E, error)
	// Div x / y, multiplying by the inverse of y.
	Div(y E) (E, error)
	// Pow takes x to the given (non-negative) power.
	Pow(exponent int64) E
	// Inverse x⁻¹, or 0 if x = 0.
	Inverse() E
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Modulus returns the modulus for the field in question.
	Modulus() *big.Int
}
