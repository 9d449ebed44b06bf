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
	"math/bits"
)

// A FieldElement is a residue of the prime-order field GF(prime),
// maintaining 0 <= num < prime.  Elements are immutable: every
// operation returns a fresh element and leaves its operands untouched.
// The modulus is assumed prime (and greater than one) by contract; it
// is not verified.
type FieldElement struct {
	num   int64
	prime int64
}

// New constructs an element of GF(prime) from the given residue,
// returning ErrInvalidElement if the residue lies outside [0, prime).
func New(num, prime int64) (FieldElement, error) {
	if num < 0 || num >= prime {
		return FieldElement{}, ErrInvalidElement
	}
	//
	return FieldElement{num: num, prime: prime}, nil
}

// Zero constructs the additive identity of GF(prime).
func Zero(prime int64) FieldElement {
	return FieldElement{num: 0, prime: prime}
}

// One constructs the multiplicative identity of GF(prime).
func One(prime int64) FieldElement {
	return FieldElement{num: 1, prime: prime}
}

// Add computes x + y, returning ErrDifferentFields if the operands
// inhabit different fields.
func (x FieldElement) Add(y FieldElement) (FieldElement, error) {
	if x.prime != y.prime {
		return FieldElement{}, ErrDifferentFields
	}
	// Both operands are reduced, hence their sum is below 2p and a
	// single conditional subtraction restores the invariant.  The sum
	// is taken unsigned as it can exceed the signed range.
	sum := uint64(x.num) + uint64(y.num)
	if sum >= uint64(x.prime) {
		sum -= uint64(x.prime)
	}
	//
	return FieldElement{num: int64(sum), prime: x.prime}, nil
}

// Sub computes x - y, returning ErrDifferentFields if the operands
// inhabit different fields.
func (x FieldElement) Sub(y FieldElement) (FieldElement, error) {
	if x.prime != y.prime {
		return FieldElement{}, ErrDifferentFields
	}
	// The raw difference can be negative, in which case adding the
	// modulus back lands it in [0, p).
	num := x.num - y.num
	if num < 0 {
		num += x.prime
	}
	//
	return FieldElement{num: num, prime: x.prime}, nil
}

// Mul computes x * y, returning ErrDifferentFields if the operands
// inhabit different fields.
func (x FieldElement) Mul(y FieldElement) (FieldElement, error) {
	if x.prime != y.prime {
		return FieldElement{}, ErrDifferentFields
	}
	//
	return FieldElement{num: mulmod(x.num, y.num, x.prime), prime: x.prime}, nil
}

// Div computes x / y, returning ErrDifferentFields if the operands
// inhabit different fields.  The quotient is x multiplied by the
// Fermat inverse of y; dividing by the zero element therefore yields
// zero rather than an error.
func (x FieldElement) Div(y FieldElement) (FieldElement, error) {
	if x.prime != y.prime {
		return FieldElement{}, ErrDifferentFields
	}
	//
	return x.Mul(y.Inverse())
}

// Pow takes x to the given power via square-and-multiply, reducing at
// every step.  The result always inhabits the same field as x.
// Exponents are not reduced modulo p-1, and a negative exponent yields
// the one element.
func (x FieldElement) Pow(exponent int64) FieldElement {
	var (
		exp  = exponent
		base = x.num
		num  = int64(1)
	)
	//
	for exp > 0 {
		if exp&1 == 1 {
			num = mulmod(num, base, x.prime)
		}
		//
		base = mulmod(base, base, x.prime)
		exp >>= 1
	}
	//
	return FieldElement{num: num, prime: x.prime}
}

// Inverse computes x⁻¹, or 0 if x = 0.  For prime p, Fermat's little
// theorem gives x^(p-1) = 1, hence x^(p-2) is the inverse.
func (x FieldElement) Inverse() FieldElement {
	return x.Pow(x.prime - 2)
}

// Equals holds iff both the residue and the modulus match exactly.
// Elements of different fields are never equal.
func (x FieldElement) Equals(y FieldElement) bool {
	return x == y
}

// IsZero checks whether this element is zero (or not).
func (x FieldElement) IsZero() bool {
	return x.num == 0
}

// IsOne checks whether this element is one (or not).
func (x FieldElement) IsOne() bool {
	return x.num == 1
}

// Uint64 returns the numerical value of the residue.
func (x FieldElement) Uint64() uint64 {
	return uint64(x.num)
}

// Modulus returns the modulus for the field in question.
func (x FieldElement) Modulus() *big.Int {
	return big.NewInt(x.prime)
}

func (x FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%d(%d)", x.prime, x.num)
}

// mulmod computes (a * b) mod m for reduced operands without
// overflowing, by taking the full 64x64 -> 128 bit product before
// reducing.  Since a, b < m the high half of the product is below m,
// which bits.Div64 requires.
func mulmod(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, rem := bits.Div64(hi, lo, uint64(m))
	//
	return int64(rem)
}
