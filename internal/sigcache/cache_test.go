/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sigcache

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cloudwego/tern/ir"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestKey_Unambiguous(t *testing.T) {
	require.NotEqual(t, Key("amd64", "sig"), Key("amd64s", "ig"))
	require.NotEqual(t, Key("amd64", ""), Key("", "amd64"))
	require.True(t, strings.HasPrefix(Key("arm64", "(i32) fast"), "arm64\x00"))
}

func TestCache_HitMiss(t *testing.T) {
	hit0 := atomic.LoadUint64(&HitCount)
	miss0 := atomic.LoadUint64(&MissCount)
	c := New()
	calls := 0
	fn := func() (*Layout, error) {
		calls++
		return &Layout{Params: []Loc{{Kind: locReg, Val: 7}}}, nil
	}

	require.Nil(t, c.Get("k"))
	v1, err := c.Compute("k", 0, fn)
	require.NoError(t, err)
	v2, err := c.Compute("k", 0, fn)
	require.NoError(t, err)
	require.Same(t, v1, v2)
	require.Same(t, v1, c.Get("k"))
	require.Equal(t, 1, calls)
	require.Equal(t, 1, c.Len())
	require.Equal(t, uint64(1), atomic.LoadUint64(&MissCount)-miss0)
	require.GreaterOrEqual(t, atomic.LoadUint64(&HitCount)-hit0, uint64(2))
}

func TestCache_Singleflight(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	var calls uint64
	start := make(chan struct{})
	fn := func() (*Layout, error) {
		atomic.AddUint64(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return &Layout{}, nil
	}

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, err := c.Compute("shared", 0, fn)
			require.NoError(t, err)
			require.NotNil(t, v)
		}()
	}
	close(start)
	wg.Wait()
	require.Equal(t, uint64(1), atomic.LoadUint64(&calls))
	require.Equal(t, 1, c.Len())
}

func TestCache_Limit(t *testing.T) {
	c := New()
	mk := func(calls *int) func() (*Layout, error) {
		return func() (*Layout, error) {
			*calls++
			return &Layout{}, nil
		}
	}

	var n1, n2 int
	_, err := c.Compute("a", 1, mk(&n1))
	require.NoError(t, err)
	v, err := c.Compute("b", 1, mk(&n2))
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, 1, c.Len())

	/* "b" was not admitted, so it is rebuilt every time */
	_, err = c.Compute("b", 1, mk(&n2))
	require.NoError(t, err)
	require.Equal(t, 1, n1)
	require.Equal(t, 2, n2)
}

func TestCache_ComputeError(t *testing.T) {
	c := New()
	_, err := c.Compute("bad", 0, func() (*Layout, error) {
		return nil, ErrStaleSnapshot
	})
	require.ErrorIs(t, err, ErrStaleSnapshot)
	require.Equal(t, 0, c.Len())

	/* errors are not cached, the next call retries */
	v, err := c.Compute("bad", 0, func() (*Layout, error) {
		return &Layout{}, nil
	})
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, 1, c.Len())
}

func TestLayout_RoundTrip(t *testing.T) {
	sig, err := ir.ParseSignature("(i32, f64, i64) -> i64 system_v")
	require.NoError(t, err)
	sig.Params[0].Loc = ir.AssignReg(5)
	sig.Params[1].Loc = ir.AssignReg(16)
	sig.Params[2].Loc = ir.AssignStack(8)
	sig.Returns[0].Loc = ir.AssignReg(0)
	sig.ComputeArgumentBytes()

	fresh, err := ir.ParseSignature("(i32, f64, i64) -> i64 system_v")
	require.NoError(t, err)
	FromSignature(sig).Apply(fresh)
	require.Equal(t, sig.String(), fresh.String())
	nb, ok := fresh.ArgumentBytes.Bytes()
	require.True(t, ok)
	require.Equal(t, uint32(16), nb)
}

func TestLayout_ShapeMismatch(t *testing.T) {
	sig, err := ir.ParseSignature("(i32, i32) fast")
	require.NoError(t, err)
	short, err := ir.ParseSignature("(i32) fast")
	require.NoError(t, err)
	require.Panics(t, func() { FromSignature(sig).Apply(short) })
}

func TestSnapshot_RoundTrip(t *testing.T) {
	c := New()
	_, err := c.Compute(Key("amd64", "(i32) system_v"), 0, func() (*Layout, error) {
		return &Layout{Params: []Loc{{Kind: locReg, Val: 7}}}, nil
	})
	require.NoError(t, err)
	_, err = c.Compute(Key("amd64", "(i64, i64) system_v"), 0, func() (*Layout, error) {
		return &Layout{Params: []Loc{{Kind: locReg, Val: 7}, {Kind: locStack, Val: 0}}}, nil
	})
	require.NoError(t, err)

	data, err := c.Snapshot()
	require.NoError(t, err)

	warm := New()
	nb, err := warm.Restore(data, 0)
	require.NoError(t, err)
	require.Equal(t, 2, nb)
	require.Equal(t, 2, warm.Len())
	require.Equal(t, c.Get(Key("amd64", "(i32) system_v")), warm.Get(Key("amd64", "(i32) system_v")))

	/* restoring on top of existing entries admits nothing new */
	nb, err = warm.Restore(data, 0)
	require.NoError(t, err)
	require.Equal(t, 0, nb)
}

func TestSnapshot_RestoreLimit(t *testing.T) {
	c := New()
	for _, key := range []string{"a", "b", "c"} {
		_, err := c.Compute(key, 0, func() (*Layout, error) { return &Layout{}, nil })
		require.NoError(t, err)
	}
	data, err := c.Snapshot()
	require.NoError(t, err)

	warm := New()
	nb, err := warm.Restore(data, 2)
	require.NoError(t, err)
	require.Equal(t, 2, nb)
	require.Equal(t, 2, warm.Len())
}

func TestSnapshot_StaleVersion(t *testing.T) {
	data, err := msgpack.Marshal(&snapshot{Version: snapshotVersion + 1})
	require.NoError(t, err)
	_, err = New().Restore(data, 0)
	require.ErrorIs(t, err, ErrStaleSnapshot)
}

func TestSnapshot_Corrupt(t *testing.T) {
	_, err := New().Restore([]byte("\xc1not msgpack"), 0)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrStaleSnapshot)
}
