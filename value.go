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

	"github.com/onflow/fixedint/format"
)

// Value

// Value is an immutable integer value bound to exactly one fixed-width Type.
//
// The stored bit pattern is canonical: it is always in [0, 2^width - 1].
// Any input integer is reduced to its low width bits before storage,
// whether it came from caller code or from an arithmetic result.
type Value struct {
	typ *Type
	// raw is the unsigned bit pattern, in [0, 2^width - 1]
	raw *big.Int
}

var _ NumberValue = Value{}

// NewValue returns the given integer truncated into the given type.
//
// Truncation is silent and total: out-of-range input wraps around,
// exactly like a native fixed-width register. It is never an error.
func NewValue(ty *Type, value *big.Int) Value {
	return Value{
		typ: ty,
		raw: truncate(ty, value),
	}
}

func NewValueFromInt64(ty *Type, value int64) Value {
	return NewValue(ty, big.NewInt(value))
}

func NewValueFromUint64(ty *Type, value uint64) Value {
	return NewValue(ty, new(big.Int).SetUint64(value))
}

// truncate reduces value to its low width bits,
// i.e. two's-complement bit truncation, not rounding toward zero:
// for width 8, -300 becomes 212 (0b11010100)
func truncate(ty *Type, value *big.Int) *big.Int {
	// big.Int.Mod is Euclidean, so the result is non-negative
	// for negative input
	return new(big.Int).Mod(value, ty.maxIntPlusOneBig)
}

func (v Value) isNumberValue() {}

func (v Value) Type() *Type {
	return v.typ
}

// Raw returns a copy of the unsigned bit pattern.
func (v Value) Raw() *big.Int {
	return new(big.Int).Set(v.raw)
}

// Decimal returns the two's-complement decoding of the bit pattern:
// the bit pattern unchanged if the type is unsigned or the sign bit is unset,
// and raw - 2^width otherwise.
func (v Value) Decimal() *big.Int {
	if v.typ.signed && v.raw.Cmp(v.typ.maxIntBig) > 0 {
		return new(big.Int).Sub(v.raw, v.typ.maxIntPlusOneBig)
	}
	return new(big.Int).Set(v.raw)
}

// Binary returns the bit pattern as exactly width binary digits,
// zero-padded on the left. The rendering never reflects sign.
func (v Value) Binary() string {
	return format.Binary(v.raw, v.typ.width)
}

func (v Value) String() string {
	return format.BigInt(v.Decimal())
}

func (v Value) GoString() string {
	return fmt.Sprintf("%s(%s)", v.typ, v)
}

func (v Value) isValid() bool {
	return v.typ != nil && v.raw != nil
}
