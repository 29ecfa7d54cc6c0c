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
	"sync"
)

type typeCacheKey struct {
	width  int
	signed bool
}

type typeCache struct {
	m sync.Map
}

var cachedTypes = typeCache{}

func (c *typeCache) Get(width int, signed bool) *Type {
	key := typeCacheKey{
		width:  width,
		signed: signed,
	}

	existingType, ok := c.m.Load(key)
	if ok {
		return existingType.(*Type)
	}

	// LoadOrStore, not Store: concurrent first requests for the same key
	// must never observe two distinct descriptors
	actualType, _ := c.m.LoadOrStore(key, newType(width, signed))
	return actualType.(*Type)
}

// NewType returns the process-wide descriptor for the fixed-width integer
// type with the given bit width and signedness, creating it on first request.
//
// Repeated requests for the same (width, signed) pair return the identical
// descriptor, under arbitrary concurrency.
//
// Returns InvalidWidthError if width is not positive.
func NewType(width int, signed bool) (*Type, error) {
	if width < 1 {
		return nil, InvalidWidthError{Width: width}
	}
	return cachedTypes.Get(width, signed), nil
}

// MustNewType is NewType which panics on invalid widths.
// Useful for package-level declarations of known-good types.
func MustNewType(width int, signed bool) *Type {
	t, err := NewType(width, signed)
	if err != nil {
		panic(err)
	}
	return t
}

func NewSignedType(width int) (*Type, error) {
	return NewType(width, true)
}

func NewUnsignedType(width int) (*Type, error) {
	return NewType(width, false)
}
