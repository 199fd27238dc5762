// Copyright 2024 CloudWeGo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fuzz

import (
	"os"
	"runtime"
	"strconv"
	"testing"

	"github.com/bytedance/gopkg/util/gctuner"
	"github.com/cloudwego/tern"
	"github.com/cloudwego/tern/ir"
)

const (
	MemoryLimitEnv        = "MemLimit"
	KB             uint64 = 1024
	MB             uint64 = 1024 * KB
	GB             uint64 = 1024 * MB
)

func FuzzParseSignature(f *testing.F) {
	// avoid OOM
	var limit uint64 = 4 * GB
	if os.Getenv(MemoryLimitEnv) != "" {
		if memGB, err := strconv.ParseUint(os.Getenv(MemoryLimitEnv), 10, 64); err == nil {
			limit = memGB * GB
		}
	}
	threshold := uint64(float64(limit) * 0.7)
	numWorker := uint64(runtime.GOMAXPROCS(0))
	gctuner.Tuning(threshold / numWorker)

	f.Add("() fast")
	f.Add("(i32) -> i32 system_v")
	f.Add("(i32 uext, i32x4 sret) -> f32, b8 baldrdash")
	f.Add("(i32 [%10], f64 [24]) -> i64 [%0] system_v")
	f.Add("(i64 vmctx, i32 sigid, i64 fp) baldrdash")
	f.Add("(i8 sext link, b1 csr [%31]) -> f64x2 fastcall")
	f.Add("(i32 uext sret junk)")
	f.Add("(i32")
	f.Add("i32x9")

	f.Fuzz(func(t *testing.T, text string) {
		sig, err := tern.ParseSignature(text)
		if err != nil {
			if _, ok := err.(ir.SyntaxError); !ok {
				t.Fatalf("rejection must be a syntax error, got %T: %v", err, err)
			}
			return
		}

		// accepted text must reach a display fixpoint
		canon := sig.String()
		ret, err := tern.ParseSignature(canon)
		if err != nil {
			t.Fatalf("canonical form %q does not parse back: %v", canon, err)
		}
		if ret.String() != canon {
			t.Fatalf("display is not a fixpoint: %q vs %q", ret.String(), canon)
		}
		if !ret.Equal(sig) {
			t.Fatalf("reparsed signature differs for %q", canon)
		}

		// whatever parses must legalize without panicking
		for _, name := range tern.Targets() {
			tgt, terr := tern.LookupTarget(name)
			if terr != nil {
				t.Fatal(terr)
			}
			dup, perr := tern.ParseSignature(text)
			if perr != nil {
				t.Fatal(perr)
			}
			if lerr := tern.LegalizeSignature(tgt, dup, tern.WithCacheDisabled()); lerr != nil {
				continue
			}
			if _, ok := dup.ArgumentBytes.Bytes(); !ok {
				t.Fatalf("legalization left the argument area unset for %q on %s", canon, name)
			}
			if _, lperr := tern.ParseSignature(dup.String()); lperr != nil {
				t.Fatalf("legalized form %q does not parse: %v", dup.String(), lperr)
			}
		}
	})
}
