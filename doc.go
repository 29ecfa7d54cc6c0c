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

// Package fixedint provides integer values of arbitrary fixed bit width,
// signed or unsigned, which behave like native machine integers:
// arithmetic wraps modulo 2^width using two's-complement rules.
//
// A type is described by an interned *Type descriptor, so requesting the
// same (width, signed) pair twice yields the identical descriptor:
//
//	uint36, _ := fixedint.NewType(36, false)
//	num := fixedint.NewValueFromInt64(uint36, 450)
//
// Arithmetic combines fixed-width Values with each other and with
// unbounded Ints. The left operand governs the result: a Value on the
// left truncates the result into its own type, an Int on the left keeps
// the result unbounded.
package fixedint
