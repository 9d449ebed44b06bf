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
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-galois/pkg/field/bls12377"
	"github.com/consensys/go-galois/pkg/util/assert"
)

func init() {
	// make sure the interface is adhered to.
	_ = Element[FieldElement](FieldElement{})
	_ = Element[bls12377.Element](bls12377.Element{})
}

// Moduli sampled by the randomised tests.  The Mersenne primes force
// sums beyond the signed range and products beyond 64 bits.
var testPrimes = []int64{2, 3, 19, 7919, 1<<31 - 1, 1<<61 - 1}

func TestElement_New(t *testing.T) {
	tests := []struct {
		num, prime int64
		ok         bool
	}{
		{0, 19, true},
		{1, 19, true},
		{18, 19, true},
		{19, 19, false},
		{20, 19, false},
		{-1, 19, false},
		{-19, 19, false},
		{0, 2, true},
		{1, 2, true},
		{2, 2, false},
		{1<<61 - 2, 1<<61 - 1, true},
	}

	for _, test := range tests {
		element, err := New(test.num, test.prime)
		if test.ok {
			assert.NoError(t, err, "New(%d, %d)", test.num, test.prime)
			assert.Equal(t, test.num, element.num)
			assert.Equal(t, test.prime, element.prime)
		} else {
			assert.ErrorIs(t, err, ErrInvalidElement, "New(%d, %d)", test.num, test.prime)
		}
	}
}

// The worked example over GF(19), whose printed forms are the
// authoritative oracles.
func TestElement_GF19(t *testing.T) {
	a, err := New(2, 19)
	assert.NoError(t, err)
	b, err := New(7, 19)
	assert.NoError(t, err)

	sum, err := a.Add(b)
	assert.NoError(t, err)
	assert.Equal(t, "FieldElement_19(9)", sum.String())

	diff, err := a.Sub(b)
	assert.NoError(t, err)
	assert.Equal(t, "FieldElement_19(14)", diff.String())

	prod, err := a.Mul(b)
	assert.NoError(t, err)
	assert.Equal(t, "FieldElement_19(14)", prod.String())

	quot, err := a.Div(b)
	assert.NoError(t, err)
	assert.Equal(t, "FieldElement_19(3)", quot.String())

	assert.Equal(t, "FieldElement_19(8)", a.Pow(3).String())
}

func TestElement_Add(t *testing.T) {
	var i, j, m big.Int

	for _, p := range testPrimes {
		m.SetInt64(p)

		for range 1000 {
			x := randElement(p)
			y := randElement(p)

			i.SetInt64(x.num).Add(&i, j.SetInt64(y.num)).Mod(&i, &m)

			z, err := x.Add(y)

			assert.NoError(t, err)
			assert.True(t, z.num >= 0 && z.num < p, "closure violated by %s + %s", x, y)
			assert.Equal(t, i.Int64(), z.num, "%s + %s", x, y)
		}
	}
}

func TestElement_Sub(t *testing.T) {
	var i, j, m big.Int

	for _, p := range testPrimes {
		m.SetInt64(p)

		for range 1000 {
			x := randElement(p)
			y := randElement(p)

			i.SetInt64(x.num).Sub(&i, j.SetInt64(y.num)).Mod(&i, &m)

			z, err := x.Sub(y)

			assert.NoError(t, err)
			assert.True(t, z.num >= 0 && z.num < p, "closure violated by %s - %s", x, y)
			assert.Equal(t, i.Int64(), z.num, "%s - %s", x, y)
		}
	}
}

func TestElement_Mul(t *testing.T) {
	var i, j, m big.Int

	for _, p := range testPrimes {
		m.SetInt64(p)

		for range 1000 {
			x := randElement(p)
			y := randElement(p)

			i.SetInt64(x.num).Mul(&i, j.SetInt64(y.num)).Mod(&i, &m)

			z, err := x.Mul(y)

			assert.NoError(t, err)
			assert.True(t, z.num >= 0 && z.num < p, "closure violated by %s * %s", x, y)
			assert.Equal(t, i.Int64(), z.num, "%s * %s", x, y)
		}
	}
}

func TestElement_Pow(t *testing.T) {
	var b, e, m big.Int

	for _, p := range testPrimes {
		m.SetInt64(p)

		for range 100 {
			x := randElement(p)
			k := rand.Int64N(1 << 20)

			b.SetInt64(x.num)
			e.SetInt64(k)
			b.Exp(&b, &e, &m)

			assert.Equal(t, b.Int64(), x.Pow(k).num, "%s ^ %d", x, k)
		}
	}
}

func TestElement_DifferentFields(t *testing.T) {
	x := One(19)
	y := One(23)

	_, err := x.Add(y)
	assert.ErrorIs(t, err, ErrDifferentFields)
	_, err = x.Sub(y)
	assert.ErrorIs(t, err, ErrDifferentFields)
	_, err = x.Mul(y)
	assert.ErrorIs(t, err, ErrDifferentFields)
	_, err = x.Div(y)
	assert.ErrorIs(t, err, ErrDifferentFields)
}

func TestElement_Identities(t *testing.T) {
	for _, p := range testPrimes {
		for range 100 {
			x := randElement(p)

			sum, err := x.Add(Zero(p))
			assert.NoError(t, err)
			assert.True(t, sum.Equals(x), "%s + 0", x)

			diff, err := x.Sub(x)
			assert.NoError(t, err)
			assert.True(t, diff.Equals(Zero(p)), "%s - %s", x, x)
		}
	}
}

func TestElement_InverseRoundTrip(t *testing.T) {
	for _, p := range testPrimes {
		for range 100 {
			x := randNonZeroElement(p)

			quot, err := x.Div(x)
			assert.NoError(t, err)
			assert.True(t, quot.Equals(One(p)), "%s / %s", x, x)
		}
	}
}

// Fermat's little theorem: x^(p-1) = 1 for non-zero x.
func TestElement_Fermat(t *testing.T) {
	for _, p := range testPrimes {
		for range 100 {
			x := randNonZeroElement(p)
			assert.True(t, x.Pow(p-1).IsOne(), "%s ^ %d", x, p-1)
		}
	}
}

// Division is multiplication by the Fermat inverse.
func TestElement_DivAsInverseMul(t *testing.T) {
	for _, p := range testPrimes {
		for range 100 {
			x := randElement(p)
			y := randNonZeroElement(p)

			quot, err := x.Div(y)
			assert.NoError(t, err)

			prod, err := x.Mul(y.Pow(p - 2))
			assert.NoError(t, err)
			assert.True(t, quot.Equals(prod), "%s / %s", x, y)
		}
	}
}

// A negative exponent is outside the contract and yields one, since
// the square-and-multiply loop never runs.
func TestElement_PowNegativeExponent(t *testing.T) {
	x, err := New(2, 19)
	assert.NoError(t, err)
	assert.True(t, x.Pow(-3).IsOne())
}

// Dividing by the zero element is outside the contract: its Fermat
// inverse computes to zero, hence so does the quotient.
func TestElement_DivByZero(t *testing.T) {
	x, err := New(2, 19)
	assert.NoError(t, err)

	quot, err := x.Div(Zero(19))
	assert.NoError(t, err)
	assert.True(t, quot.IsZero())
}

func TestElement_Equals(t *testing.T) {
	x := One(19)

	assert.True(t, x.Equals(One(19)))
	assert.False(t, x.Equals(Zero(19)))
	// same residue, different modulus
	assert.False(t, x.Equals(One(23)))
}

func TestElement_String(t *testing.T) {
	assert.Equal(t, "FieldElement_19(0)", Zero(19).String())
	assert.Equal(t, "FieldElement_23(1)", One(23).String())

	x, err := New(56, 57)
	assert.NoError(t, err)
	assert.Equal(t, "FieldElement_57(56)", x.String())
}

func TestElement_Modulus(t *testing.T) {
	assert.Equal(t, int64(19), Zero(19).Modulus().Int64())
	assert.Equal(t, uint64(7), mustNew(t, 7, 19).Uint64())
}

func mustNew(t *testing.T, num, prime int64) FieldElement {
	element, err := New(num, prime)
	assert.NoError(t, err)

	return element
}

func randElement(prime int64) FieldElement {
	return FieldElement{num: rand.Int64N(prime), prime: prime}
}

func randNonZeroElement(prime int64) FieldElement {
	return FieldElement{num: 1 + rand.Int64N(prime-1), prime: prime}
}
