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

import "errors"

// ErrDifferentFields signals a binary operation whose operands inhabit
// fields of different moduli.  Such operands are never coerced.
var ErrDifferentFields = errors.New("cannot operate on elements from different fields")

// ErrInvalidElement signals a constructor residue lying outside the
// valid field range [0, prime).
var ErrInvalidElement = errors.New("element is not in valid field range")
