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

// Operations compute on the operands' decoded decimal values,
// never on raw bit patterns, so operands of different widths and
// signedness combine without mixing incompatible encodings.

func operandDecimal(v NumberValue) (*big.Int, bool) {
	switch v := v.(type) {
	case Value:
		if !v.isValid() {
			return nil, false
		}
		return v.Decimal(), true
	case Int:
		if v.Value == nil {
			return nil, false
		}
		return v.Value, true
	}
	return nil, false
}

func operandTypeName(v NumberValue) string {
	switch v := v.(type) {
	case Value:
		if v.typ != nil {
			return v.typ.String()
		}
		return "Value"
	case Int:
		return "Int"
	case nil:
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func binaryOperands(
	operation Operation,
	left, right NumberValue,
) (
	l, r *big.Int,
	err error,
) {
	l, ok := operandDecimal(left)
	if !ok {
		return nil, nil, InvalidOperandsError{
			Operation: operation,
			LeftType:  operandTypeName(left),
			RightType: operandTypeName(right),
		}
	}

	r, ok = operandDecimal(right)
	if !ok {
		return nil, nil, InvalidOperandsError{
			Operation: operation,
			LeftType:  operandTypeName(left),
			RightType: operandTypeName(right),
		}
	}

	return l, r, nil
}

// floorQuo rounds the quotient toward negative infinity.
// big.Int's Div/Mod are Euclidean and Quo/Rem truncate toward zero,
// neither of which is floor division for all sign combinations.
func floorQuo(l, r *big.Int) *big.Int {
	quo, rem := new(big.Int).QuoRem(l, r, new(big.Int))
	if rem.Sign() != 0 && (l.Sign() < 0) != (r.Sign() < 0) {
		quo.Sub(quo, big.NewInt(1))
	}
	return quo
}

// floorRem returns the remainder matching floorQuo:
// non-zero results take the sign of the divisor.
func floorRem(l, r *big.Int) *big.Int {
	rem := new(big.Int).Rem(l, r)
	if rem.Sign() != 0 && (rem.Sign() < 0) != (r.Sign() < 0) {
		rem.Add(rem, r)
	}
	return rem
}

// Value operations.
// The result is truncated into the receiver's width and signedness
// and is a Value of exactly the receiver's type.

func (v Value) Plus(other NumberValue) (Value, error) {
	l, r, err := binaryOperands(OperationPlus, v, other)
	if err != nil {
		return Value{}, err
	}
	return NewValue(v.typ, new(big.Int).Add(l, r)), nil
}

func (v Value) Minus(other NumberValue) (Value, error) {
	l, r, err := binaryOperands(OperationMinus, v, other)
	if err != nil {
		return Value{}, err
	}
	return NewValue(v.typ, new(big.Int).Sub(l, r)), nil
}

func (v Value) Mul(other NumberValue) (Value, error) {
	l, r, err := binaryOperands(OperationMul, v, other)
	if err != nil {
		return Value{}, err
	}
	return NewValue(v.typ, new(big.Int).Mul(l, r)), nil
}

// Div is true division: the exact quotient, rounded toward zero before
// re-encoding. For floor semantics use FloorDiv.
func (v Value) Div(other NumberValue) (Value, error) {
	l, r, err := binaryOperands(OperationDiv, v, other)
	if err != nil {
		return Value{}, err
	}
	if r.Sign() == 0 {
		return Value{}, DivisionByZeroError{}
	}
	return NewValue(v.typ, new(big.Int).Quo(l, r)), nil
}

func (v Value) FloorDiv(other NumberValue) (Value, error) {
	l, r, err := binaryOperands(OperationFloorDiv, v, other)
	if err != nil {
		return Value{}, err
	}
	if r.Sign() == 0 {
		return Value{}, DivisionByZeroError{}
	}
	return NewValue(v.typ, floorQuo(l, r)), nil
}

// Mod is floor modulo: a non-zero result has the sign of the divisor.
func (v Value) Mod(other NumberValue) (Value, error) {
	l, r, err := binaryOperands(OperationMod, v, other)
	if err != nil {
		return Value{}, err
	}
	if r.Sign() == 0 {
		return Value{}, DivisionByZeroError{}
	}
	return NewValue(v.typ, floorRem(l, r)), nil
}

// Negate is two's-complement negation, re-truncated into the same width.
// The minimum signed value negates to itself.
func (v Value) Negate() Value {
	return NewValue(v.typ, new(big.Int).Neg(v.raw))
}

// Abs re-encodes the absolute decoded value into the same type.
// Like Negate, the minimum signed value wraps back to itself.
func (v Value) Abs() Value {
	return NewValue(v.typ, new(big.Int).Abs(v.Decimal()))
}

// Int operations.
// The result stays in the unbounded integer domain and is never truncated.

func (v Int) Plus(other NumberValue) (Int, error) {
	l, r, err := binaryOperands(OperationPlus, v, other)
	if err != nil {
		return Int{}, err
	}
	return Int{new(big.Int).Add(l, r)}, nil
}

func (v Int) Minus(other NumberValue) (Int, error) {
	l, r, err := binaryOperands(OperationMinus, v, other)
	if err != nil {
		return Int{}, err
	}
	return Int{new(big.Int).Sub(l, r)}, nil
}

func (v Int) Mul(other NumberValue) (Int, error) {
	l, r, err := binaryOperands(OperationMul, v, other)
	if err != nil {
		return Int{}, err
	}
	return Int{new(big.Int).Mul(l, r)}, nil
}

func (v Int) Div(other NumberValue) (Int, error) {
	l, r, err := binaryOperands(OperationDiv, v, other)
	if err != nil {
		return Int{}, err
	}
	if r.Sign() == 0 {
		return Int{}, DivisionByZeroError{}
	}
	return Int{new(big.Int).Quo(l, r)}, nil
}

func (v Int) FloorDiv(other NumberValue) (Int, error) {
	l, r, err := binaryOperands(OperationFloorDiv, v, other)
	if err != nil {
		return Int{}, err
	}
	if r.Sign() == 0 {
		return Int{}, DivisionByZeroError{}
	}
	return Int{floorQuo(l, r)}, nil
}

func (v Int) Mod(other NumberValue) (Int, error) {
	l, r, err := binaryOperands(OperationMod, v, other)
	if err != nil {
		return Int{}, err
	}
	if r.Sign() == 0 {
		return Int{}, DivisionByZeroError{}
	}
	return Int{floorRem(l, r)}, nil
}

func (v Int) Negate() Int {
	return Int{new(big.Int).Neg(v.Value)}
}

func (v Int) Abs() Int {
	return Int{new(big.Int).Abs(v.Value)}
}

// Comparison.
// Equality and ordering always compare decoded decimal values:
// operands of different width or signedness compare by meaning,
// never by raw bit pattern.

func compareOperands(operation Operation, left, right NumberValue) (int, error) {
	l, r, err := binaryOperands(operation, left, right)
	if err != nil {
		return 0, err
	}
	return l.Cmp(r), nil
}

// Equal reports decoded decimal equality.
// An invalid operand is unequal to everything, it is not an error.
func (v Value) Equal(other NumberValue) bool {
	l, ok := operandDecimal(v)
	if !ok {
		return false
	}
	r, ok := operandDecimal(other)
	if !ok {
		return false
	}
	return l.Cmp(r) == 0
}

func (v Value) Cmp(other NumberValue) (int, error) {
	l, lok := operandDecimal(v)
	r, rok := operandDecimal(other)
	if !lok || !rok {
		return 0, InvalidOperandsError{
			FunctionName: "Cmp",
			LeftType:     operandTypeName(v),
			RightType:    operandTypeName(other),
		}
	}
	return l.Cmp(r), nil
}

func (v Value) Less(other NumberValue) (bool, error) {
	cmp, err := compareOperands(OperationLess, v, other)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}

func (v Value) LessEqual(other NumberValue) (bool, error) {
	cmp, err := compareOperands(OperationLessEqual, v, other)
	if err != nil {
		return false, err
	}
	return cmp <= 0, nil
}

func (v Value) Greater(other NumberValue) (bool, error) {
	cmp, err := compareOperands(OperationGreater, v, other)
	if err != nil {
		return false, err
	}
	return cmp > 0, nil
}

func (v Value) GreaterEqual(other NumberValue) (bool, error) {
	cmp, err := compareOperands(OperationGreaterEqual, v, other)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

func (v Int) Equal(other NumberValue) bool {
	l, ok := operandDecimal(v)
	if !ok {
		return false
	}
	r, ok := operandDecimal(other)
	if !ok {
		return false
	}
	return l.Cmp(r) == 0
}

func (v Int) Cmp(other NumberValue) (int, error) {
	l, lok := operandDecimal(v)
	r, rok := operandDecimal(other)
	if !lok || !rok {
		return 0, InvalidOperandsError{
			FunctionName: "Cmp",
			LeftType:     operandTypeName(v),
			RightType:    operandTypeName(other),
		}
	}
	return l.Cmp(r), nil
}

func (v Int) Less(other NumberValue) (bool, error) {
	cmp, err := compareOperands(OperationLess, v, other)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}

func (v Int) LessEqual(other NumberValue) (bool, error) {
	cmp, err := compareOperands(OperationLessEqual, v, other)
	if err != nil {
		return false, err
	}
	return cmp <= 0, nil
}

func (v Int) Greater(other NumberValue) (bool, error) {
	cmp, err := compareOperands(OperationGreater, v, other)
	if err != nil {
		return false, err
	}
	return cmp > 0, nil
}

func (v Int) GreaterEqual(other NumberValue) (bool, error) {
	cmp, err := compareOperands(OperationGreaterEqual, v, other)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}
