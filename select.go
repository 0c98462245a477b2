// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hypertuple

import (
	"fmt"
	"reflect"
)

// tagged is a candidate for [Select], paired with its position.
type tagged[T any] struct {
	pos   int
	value T
}

// Select returns values[k].
//
// This is a reduction: each candidate is tagged with its position, and the
// tagged list is folded left to right, keeping whichever side of each pair is
// tagged k. Use T = any to select among values of different types.
//
// Panics if k is out of range.
func Select[T any](k int, values ...T) T {
	if k < 0 || k >= len(values) {
		panic(&errIndex{k, len(values)})
	}

	keep := func(a, b tagged[T]) tagged[T] {
		if b.pos == k {
			return b
		}
		return a
	}

	acc := tagged[T]{pos: 0, value: values[0]}
	for i, v := range values[1:] {
		acc = keep(acc, tagged[T]{pos: i + 1, value: v})
	}
	return acc.value
}

// Nth returns a pointer to slot k of t, which must have type T. Writing
// through the pointer mutates t.
//
// Panics if k is out of range, if slot k's type is not T, or if slot k does
// not hold a value.
func Nth[T any](t *Tuple, k int) *T {
	if t.shape == nil {
		panic(&errIndex{k, 0})
	}
	if want := reflect.TypeFor[T](); t.shape.Elem(k) != want {
		panic(fmt.Errorf("hypertuple: slot %d of %v has type %v, not %v", k, t.shape, t.shape.types[k], want))
	}
	return at[T](t, k)
}
