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

package debug

import (
	"fmt"
	"path"
	"runtime"
)

// Site describes the caller skip frames above Site, in the form
// "pkg.Func() file.go:line". It is used to record where a lifecycle event
// happened so that later misuse can point back at it.
func Site(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "<unknown>"
	}

	name := "<unknown>"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = path.Base(fn.Name())
	}
	return fmt.Sprintf("%s() %s:%d", name, path.Base(file), line)
}
