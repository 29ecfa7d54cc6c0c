/*
 * FixedInt - Fixed bit-width integers with machine overflow semantics
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fixedint

import (
	"fmt"
	"math/big"
)

// Type

// Type is the descriptor for a fixed bit-width integer type.
//
// Descriptors are interned: NewType returns the identical *Type
// for the same (width, signed) pair, so descriptors compare with ==.
//
// A descriptor is immutable for the lifetime of the process.
type Type struct {
	width  int
	signed bool

	// Derived bounds, computed once on first request for (width, signed)
	minIntBig *big.Int
	maxIntBig *big.Int
	// 2^width, the wrap modulus
	maxIntPlusOneBig *big.Int
}

func newType(width int, signed bool) *Type {
	maxIntPlusOneBig := new(big.Int).Lsh(big.NewInt(1), uint(width))

	var minIntBig, maxIntBig *big.Int
	if signed {
		msbMask := new(big.Int).Lsh(big.NewInt(1), uint(width-1))
		maxIntBig = new(big.Int).Sub(msbMask, big.NewInt(1))
		minIntBig = new(big.Int).Neg(msbMask)
	} else {
		maxIntBig = new(big.Int).Sub(maxIntPlusOneBig, big.NewInt(1))
		minIntBig = new(big.Int)
	}

	return &Type{
		width:            width,
		signed:           signed,
		minIntBig:        minIntBig,
		maxIntBig:        maxIntBig,
		maxIntPlusOneBig: maxIntPlusOneBig,
	}
}

func (t *Type) Width() int {
	return t.width
}

func (t *Type) Signed() bool {
	return t.signed
}

// MinIntBig returns the smallest decoded value representable by the type:
// -2^(width-1) if signed, otherwise 0.
func (t *Type) MinIntBig() *big.Int {
	return new(big.Int).Set(t.minIntBig)
}

// MaxIntBig returns the largest decoded value representable by the type:
// 2^(width-1)-1 if signed, otherwise 2^width-1.
func (t *Type) MaxIntBig() *big.Int {
	return new(big.Int).Set(t.maxIntBig)
}

func (t *Type) String() string {
	if t.signed {
		return fmt.Sprintf("Int%d", t.width)
	}
	return fmt.Sprintf("UInt%d", t.width)
}

// Predeclared descriptors for the common widths

var (
	Int8Type   = MustNewType(8, true)
	Int16Type  = MustNewType(16, true)
	Int32Type  = MustNewType(32, true)
	Int64Type  = MustNewType(64, true)
	Int128Type = MustNewType(128, true)
	Int256Type = MustNewType(256, true)

	UInt8Type   = MustNewType(8, false)
	UInt16Type  = MustNewType(16, false)
	UInt32Type  = MustNewType(32, false)
	UInt64Type  = MustNewType(64, false)
	UInt128Type = MustNewType(128, false)
	UInt256Type = MustNewType(256, false)
)
