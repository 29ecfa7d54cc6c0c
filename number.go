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
	"math/big"

	"github.com/onflow/fixedint/format"
)

// NumberValue is an integer-like arithmetic operand:
// either a fixed-width Value or an unbounded Int.
//
// The left operand of a binary operation is the method receiver,
// and the receiver decides the domain of the result:
// a Value receiver truncates the result into its own type,
// an Int receiver computes in the unbounded integer domain.
type NumberValue interface {
	isNumberValue()
	// Decimal returns the operand's decoded integer meaning
	Decimal() *big.Int
	String() string
}

// Int

// Int is an unbounded integer operand, the plain-integer counterpart
// to the fixed-width Value.
type Int struct {
	Value *big.Int
}

var _ NumberValue = Int{}

func NewInt(i int) Int {
	return Int{big.NewInt(int64(i))}
}

func NewIntFromBig(value *big.Int) Int {
	return Int{new(big.Int).Set(value)}
}

func (v Int) isNumberValue() {}

func (v Int) Big() *big.Int {
	return new(big.Int).Set(v.Value)
}

func (v Int) Decimal() *big.Int {
	return new(big.Int).Set(v.Value)
}

func (v Int) String() string {
	return format.BigInt(v.Value)
}
