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

//go:build debug

// Package debug includes debugging helpers.
package debug

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/timandy/routine"
)

// Enabled is true if the library is being built with the debug tag, which
// enables various debugging features.
const Enabled = true

var (
	debugPattern *regexp.Regexp
	nocapture    = flag.Bool("hypertuple.nocapture", false, "disables capturing debug logs as test logs")

	tls = routine.NewThreadLocal[testing.TB]()
)

func init() {
	flag.Func("hypertuple.filter", "regexp to filter debug logs by", func(s string) (err error) {
		debugPattern, err = regexp.Compile(s)
		return err
	})
}

// WithTesting routes logs from the current goroutine to t until the returned
// function is called.
func WithTesting(t testing.TB) func() {
	prev := tls.Get()
	tls.Set(t)
	return func() { tls.Set(prev) }
}

// Log prints debugging information to stderr, or to the test registered
// with [WithTesting] for the calling goroutine.
//
// context, if present, is a format string and its arguments, printed next to
// the goroutine id. It groups lines that belong to one tuple or binder.
func Log(context []any, operation string, format string, args ...any) {
	buf := new(strings.Builder)
	_, _ = fmt.Fprintf(buf, "%s [g%04d", caller(), routine.Goid())
	if len(context) >= 1 {
		_, _ = fmt.Fprintf(buf, ", "+context[0].(string), context[1:]...)
	}
	_, _ = fmt.Fprintf(buf, "] %s: ", operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	line := buf.String()
	if !filtered(line) {
		return
	}

	if t := tls.Get(); t != nil && !*nocapture {
		t.Helper()
		t.Log(line)
		return
	}
	_, _ = os.Stderr.WriteString(line + "\n")
}

// caller returns "pkg/file.go:line" for the first frame outside of this
// package's logging functions.
func caller() string {
	for skip := 2; ; skip++ {
		pc, file, line, ok := runtime.Caller(skip)
		if !ok {
			return "<unknown>"
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		name := fn.Name()
		if base := name[strings.LastIndex(name, ".")+1:]; strings.HasPrefix(base, "log") ||
			strings.Contains(base, "Log") {
			continue
		}

		pkg := strings.TrimPrefix(name, "buf.build/go/")
		pkg = strings.TrimPrefix(pkg, "hypertuple/internal/")
		if i := strings.Index(pkg, "."); i >= 0 {
			pkg = pkg[:i]
		}
		return fmt.Sprintf("%s/%s:%d", pkg, filepath.Base(file), line)
	}
}

func filtered(line string) bool {
	return debugPattern == nil || debugPattern.MatchString(line)
}

// Assert panics if cond is false, but only in debug mode.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("hypertuple: internal assertion failed: "+format, args...))
	}
}

// Value is a value of any type that only exists when the debug tag is
// enabled. When disabled, this struct is replaced with an empty struct.
type Value[T any] struct {
	x T
}

// Get returns a pointer to this value. Panics if not in debug mode.
func (v *Value[T]) Get() *T { return &v.x }
