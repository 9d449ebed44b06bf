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
package bls12377

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform to the field.Element interface.
// The modulus is the (fixed) order of the BLS12-377 scalar field, so
// every element is compatible with every other and the binary
// operations never fail.
type Element struct {
	fr.Element
}

// New constructs an element of the scalar field from a given uint64.
func New(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// Zero constructs the additive identity of the scalar field.
func Zero() Element {
	return Element{}
}

// One constructs the multiplicative identity of the scalar field.
func One() Element {
	return New(1)
}

// Add x + y
func (x Element) Add(y Element) (Element, error) {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}, nil
}

// Sub x - y
func (x Element) Sub(y Element) (Element, error) {
	var res fr.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}, nil
}

// Mul x * y
func (x Element) Mul(y Element) (Element, error) {
	var res fr.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}, nil
}

// Div x / y, multiplying by the inverse of y.  As with Inverse,
// dividing by zero yields zero.
func (x Element) Div(y Element) (Element, error) {
	return x.Mul(y.Inverse())
}

// Pow takes x to the given power.  A negative exponent yields the one
// element, matching the small-field backend.
func (x Element) Pow(exponent int64) Element {
	if exponent < 0 {
		return One()
	}
	//
	var res fr.Element
	//
	res.Exp(x.Element, big.NewInt(exponent))
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res fr.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}
}

// Equals holds iff both elements represent the same residue.
func (x Element) Equals(y Element) bool {
	return x == y
}

// IsZero implementation for the field.Element interface.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne implementation for the field.Element interface.
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// Modulus returns the order of the BLS12-377 scalar field.
func (x Element) Modulus() *big.Int {
	return fr.Modulus()
}

func (x Element) String() string {
	return x.Element.String()
}
