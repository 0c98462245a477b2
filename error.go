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
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotAggregate is returned when binding a type that is not a struct.
	ErrNotAggregate = errors.New("type is not an aggregate")

	// ErrTooManyFields is returned when binding a struct with more fields than
	// the binder's ceiling, which is [MaxFields] unless lowered with
	// [WithMaxFields].
	ErrTooManyFields = errors.New("too many fields")
)

// errBind is an error returned by [BinderFor].
type errBind struct {
	ty    reflect.Type
	err   error
	n, of int
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *errBind) Unwrap() error {
	return e.err
}

// Error implements [error].
func (e *errBind) Error() string {
	if errors.Is(e.err, ErrTooManyFields) {
		return fmt.Sprintf(
			"hypertuple: cannot bind %v: %v (%d > %d); either the struct has too many fields "+
				"(split it into smaller embedded structs) or it does not destructure into plain "+
				"fields (register a view with RegisterView)",
			e.ty, e.err, e.n, e.of,
		)
	}
	return fmt.Sprintf("hypertuple: cannot bind %v: %v", e.ty, e.err)
}

// errIndex is a panic value for an out-of-range slot index.
type errIndex struct {
	k, n int
}

// Error implements [error].
func (e *errIndex) Error() string {
	return fmt.Sprintf("hypertuple: slot index %d out of range for tuple of arity %d", e.k, e.n)
}

// errArity is a panic value for constructing a tuple from the wrong number of
// arguments.
type errArity struct {
	op    string
	shape *Shape
	n     int
}

// Error implements [error].
func (e *errArity) Error() string {
	return fmt.Sprintf("hypertuple: %s: got %d values for %v, want %d", e.op, e.n, e.shape, e.shape.Len())
}

// errShape is a panic value for combining tuples of different shapes.
type errShape struct {
	op   string
	a, b *Shape
}

// Error implements [error].
func (e *errShape) Error() string {
	return fmt.Sprintf("hypertuple: %s: mismatched shapes %v and %v", e.op, shapeString(e.a), shapeString(e.b))
}

// errDead is a panic value for using a slot that does not hold a value.
type errDead struct {
	op    string
	k     int
	state slotState
	site  string
}

// Error implements [error].
func (e *errDead) Error() string {
	msg := fmt.Sprintf("hypertuple: slot %d is %v", e.k, e.state)
	if e.op != "" {
		msg = fmt.Sprintf("hypertuple: %s: slot %d is %v", e.op, e.k, e.state)
	}
	if e.site != "" {
		msg += " (destroyed at " + e.site + ")"
	}
	return msg
}

func shapeString(s *Shape) string {
	if s == nil {
		return "()"
	}
	return s.String()
}
