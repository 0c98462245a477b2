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

	"buf.build/go/hypertuple/internal/dbg"
)

// Stringer implementations for various internal types. These are only relevant
// for debugging and are thus placed off to the side here.

// dump is not a Format method, since that would be promoted to Tuple and
// override [Tuple.String].
func (b buffer) dump() dbg.Formatter {
	return dbg.Dict(
		dbg.Fprintf("%p", b.data),
		"shape", b.shape,
		"state", b.state,
	)
}

func (s *Shape) Format(st fmt.State, verb rune) {
	if !st.Flag('+') {
		fmt.Fprint(st, s.String())
		return
	}
	dbg.Dict(
		s.String(),
		"offsets", s.record.Offsets,
		"size", s.record.Size,
		"align", s.record.Align,
		"destroy", dbg.Fprintf("%v", s.destroy),
	).Format(st, 'v')
}

func (f Field) String() string {
	return fmt.Sprintf("%d:%s %s @%#x", f.Index, f.Name, f.TypeName, f.Offset)
}
