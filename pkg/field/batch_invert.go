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

// BatchInvert efficiently inverts the list of elements s, in place,
// using a single inversion and three multiplications per element
// (Montgomery's trick).  Zero entries invert to zero, matching
// Inverse.  All elements must inhabit the same field, otherwise
// ErrDifferentFields is returned and s is left partially updated.
func BatchInvert[E Element[E]](s []E) error {
	if len(s) == 0 {
		return nil
	}
	//
	var (
		err  error
		last = len(s) - 1
		// identities derived from the list itself, since the modulus
		// is only known per element
		one = s[last].Pow(0)
		// identifies entries which are zero
		isZero = make([]bool, len(s))

		m = make([]E, len(s)) // m[i] = s[i] * s[i+1] * ...
	)
	// zero of the same field; operands match, so this cannot fail
	zero, _ := one.Sub(one)
	//
	isZero[last] = s[last].IsZero()

	if isZero[last] {
		s[last] = one
	}

	m[last] = s[last]

	for i := last - 1; i >= 0; i-- {
		isZero[i] = s[i].IsZero()

		if isZero[i] {
			s[i] = one
		}

		if m[i], err = m[i+1].Mul(s[i]); err != nil {
			return err
		}
	}

	inv := m[0].Inverse() // inv = s[0]⁻¹ * s[1]⁻¹ * ...

	for i := 0; i < last; i++ {
		// inv = s[i]⁻¹ * s[i+1]⁻¹ * ...
		newInv, err := inv.Mul(s[i])
		if err != nil {
			return err
		}
		//
		if s[i], err = inv.Mul(m[i+1]); err != nil {
			return err
		}
		//
		inv = newInv
		// inv = s[i+1]⁻¹ * s[i+2]⁻¹ * ...
		if isZero[i] {
			s[i] = zero
		}
	}

	s[last] = inv

	if isZero[last] {
		s[last] = zero
	}
	//
	return nil
}
