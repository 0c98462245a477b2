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

package layout

import (
	"errors"
	"fmt"
	"math"

	"fortio.org/safecast"
)

// MaxSize is the largest buffer [Plan] will produce.
const MaxSize = math.MaxInt32

var (
	// ErrOverflow is returned by [Plan] when the fields do not fit in
	// [MaxSize] bytes.
	ErrOverflow = errors.New("layout exceeds maximum size")
	// ErrAlign is returned by [Plan] when a field has an invalid size or
	// alignment.
	ErrAlign = errors.New("invalid field layout")
)

// Record is the result of packing an ordered list of fields into a single
// buffer.
//
// Fields are never reordered: Offsets[i] belongs to the i-th input, and the
// offsets are the same ones the Go compiler assigns to a struct declaring
// those fields in that order.
type Record struct {
	Offsets []int
	// Size is one past the end of the last field. It does not include
	// trailing padding.
	Size int
	// Align is the largest alignment among the fields, or 1 if there are
	// none.
	Align int
}

// Layout returns the size and alignment of the whole record.
func (r Record) Layout() Layout {
	return Layout{r.Size, r.Align}
}

// Stride returns the record's size rounded up to its alignment, i.e., the
// distance between consecutive records in an array.
func (r Record) Stride() int {
	return RoundUp(r.Size, r.Align)
}

// Fits returns whether a field of the given size placed at slot k lies
// entirely within the record.
func (r Record) Fits(k, size int) bool {
	return k >= 0 && k < len(r.Offsets) && r.Offsets[k]+size <= r.Size
}

// Plan computes a layout for the given fields.
//
// Each field is placed at the first offset after the end of the previous one
// that is a multiple of its alignment.
func Plan(fields ...Layout) (Record, error) {
	r := Record{
		Offsets: make([]int, 0, len(fields)),
		Align:   1,
	}

	cursor := 0
	for i, f := range fields {
		if !IsPow2(f.Align) || f.Size < 0 {
			return Record{}, &errPlan{ErrAlign, i, f}
		}

		padded := cursor + Padding(cursor, f.Align)
		if f.Size > math.MaxInt-padded {
			return Record{}, &errPlan{ErrOverflow, i, f}
		}
		end, err := safecast.Conv[int32](padded + f.Size)
		if err != nil {
			return Record{}, &errPlan{ErrOverflow, i, f}
		}

		r.Offsets = append(r.Offsets, padded)
		r.Align = max(r.Align, f.Align)
		cursor = int(end)
	}

	r.Size = cursor
	return r, nil
}

// MustPlan is like [Plan], but panics on error.
func MustPlan(fields ...Layout) Record {
	r, err := Plan(fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// errPlan is an error returned by [Plan].
type errPlan struct {
	err   error
	index int
	field Layout
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *errPlan) Unwrap() error {
	return e.err
}

// Error implements [error].
func (e *errPlan) Error() string {
	if errors.Is(e.err, ErrOverflow) {
		return fmt.Sprintf("hypertuple: %v: field %d (size %d) pushes the record past %d bytes",
			e.err, e.index, e.field.Size, MaxSize)
	}
	return fmt.Sprintf("hypertuple: %v: field %d has size %d and alignment %d",
		e.err, e.index, e.field.Size, e.field.Align)
}
