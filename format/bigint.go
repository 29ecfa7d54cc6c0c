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

package format

import (
	"math/big"
)

func BigInt(v *big.Int) string {
	return v.String()
}

// Binary renders a non-negative bit pattern as exactly width binary digits,
// zero-padded on the left. The rendering never reflects sign.
func Binary(raw *big.Int, width int) string {
	return PadLeft(raw.Text(2), '0', uint(width))
}
