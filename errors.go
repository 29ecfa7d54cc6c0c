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

	"github.com/onflow/fixedint/errors"
)

// Truncation is deliberately absent from this taxonomy:
// wrapping out-of-range input is the defining behavior of the library,
// never an error condition.

// InvalidWidthError

// InvalidWidthError is reported when a type is requested
// with a non-positive bit width.
type InvalidWidthError struct {
	Width int
}

var _ errors.UserError = InvalidWidthError{}

func (InvalidWidthError) IsUserError() {}

func (e InvalidWidthError) Error() string {
	return fmt.Sprintf("invalid width: expected a positive bit count, got %d", e.Width)
}

// InvalidOperandsError

// InvalidOperandsError is reported when an operation receives an operand
// that exposes no integer value, e.g. a zero Value bound to no type.
type InvalidOperandsError struct {
	Operation    Operation
	FunctionName string
	LeftType     string
	RightType    string
}

var _ errors.UserError = InvalidOperandsError{}

func (InvalidOperandsError) IsUserError() {}

func (e InvalidOperandsError) Error() string {
	var op string
	if e.Operation == OperationUnknown {
		op = e.FunctionName
	} else {
		op = e.Operation.Symbol()
	}

	return fmt.Sprintf(
		"cannot apply operation %s to operands: `%s`, `%s`",
		op,
		e.LeftType,
		e.RightType,
	)
}

// DivisionByZeroError

type DivisionByZeroError struct{}

var _ errors.UserError = DivisionByZeroError{}

func (DivisionByZeroError) IsUserError() {}

func (e DivisionByZeroError) Error() string {
	return "division by zero"
}
