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

package hypertuple_test

import (
	"flag"
	"fmt"
	"runtime"
	"testing"

	"buf.build/go/hypertuple"
	"buf.build/go/hypertuple/internal/debug"
	"buf.build/go/hypertuple/internal/flag2"
)

func TestMain(m *testing.M) {
	flag.Parse()

	if flag2.Lookup[string]("test.bench") != "" {
		// Annoyingly, benchmarking won't print the compiler used...
		fmt.Printf("compiler: %v %v, debug: %v\n", runtime.Compiler, runtime.Version(), debug.Enabled)
	}

	m.Run()
}

func BenchmarkNew(b *testing.B) {
	b.Run("typed", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			_ = hypertuple.New3(1, "two", 3.0)
		}
	})
	b.Run("dynamic", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			_ = hypertuple.New(1, "two", 3.0)
		}
	})
}

func BenchmarkGet(b *testing.B) {
	tuple := hypertuple.New3(1, "two", 3.0)
	b.Run("typed", func(b *testing.B) {
		for range b.N {
			*tuple.E2() += 1
		}
	})
	b.Run("nth", func(b *testing.B) {
		for range b.N {
			*hypertuple.Nth[float64](&tuple.Tuple, 2) += 1
		}
	})
	b.Run("reflect", func(b *testing.B) {
		for range b.N {
			v := tuple.Get(2)
			v.SetFloat(v.Float() + 1)
		}
	})
}

func BenchmarkBind(b *testing.B) {
	p := person{Name: "Homer", Age: 45}
	b.ReportAllocs()
	for range b.N {
		_ = hypertuple.Bind(&p)
	}
}

func BenchmarkCompare(b *testing.B) {
	x := hypertuple.New3(1, "two", []int{3, 4})
	y := hypertuple.New3(1, "two", []int{3, 5})
	b.ReportAllocs()
	for range b.N {
		_ = x.Compare(y)
	}
}
