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

//go:generate go run ./internal/tools/tuplegen -n 12 -o tuples.go

// MaxTypedArity is the largest arity that has a fixed-arity tuple type,
// [T12]. Larger tuples are only available as a [Tuple].
const MaxTypedArity = 12

// typed is implemented by pointers to the fixed-arity tuples, all of which
// embed a [Tuple].
type typed[W any] interface {
	*W
	raw() *Tuple
}

func zeroAs[W any, P typed[W]](s *Shape) P {
	t := P(new(W))
	t.raw().construct(s, nil)
	return t
}

func cloneAs[W any, P typed[W]](t P) P {
	c := P(new(W))
	t.raw().cloneInto(c.raw())
	return c
}

func deepCloneAs[W any, P typed[W]](t P) (P, error) {
	c := P(new(W))
	if err := t.raw().deepCloneInto(c.raw()); err != nil {
		return nil, err
	}
	return c, nil
}

func moveAs[W any, P typed[W]](t P) P {
	c := P(new(W))
	t.raw().moveInto(c.raw())
	return c
}

// take returns *p, and leaves *p zero.
func take[T any](p *T) T {
	v := *p
	var z T
	*p = z
	return v
}
