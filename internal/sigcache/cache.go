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

// Package sigcache memoizes legalized signature layouts. Layouts are
// write-once: identical abstract signatures on the same target always
// legalize to identical locations, so a computed layout never changes.
package sigcache

import (
	"sync"
	"sync/atomic"

	"github.com/bytedance/gopkg/lang/dirtmake"
	"golang.org/x/sync/singleflight"
)

var (
	HitCount  uint64 = 0
	MissCount uint64 = 0
	SizeCount uint64 = 0
)

// Key builds the cache key of one signature on one target. The target
// name cannot contain a NUL byte, so the pair is unambiguous.
func Key(target string, sig string) string {
	buf := dirtmake.Bytes(0, len(target)+len(sig)+1)
	buf = append(buf, target...)
	buf = append(buf, 0)
	buf = append(buf, sig...)
	return string(buf)
}

// Cache is a concurrency-safe memo of legalized layouts. It grows up to
// the admission bound the caller passes and stops admitting new entries
// after that, layouts are small and never invalidated so eviction is
// not worth it.
type Cache struct {
	size  uint64
	memo  sync.Map
	group singleflight.Group
}

func New() *Cache {
	return new(Cache)
}

// Get returns the cached layout for key, if any.
func (c *Cache) Get(key string) *Layout {
	if val, ok := c.memo.Load(key); ok {
		atomic.AddUint64(&HitCount, 1)
		return val.(*Layout)
	}
	return nil
}

// Compute returns the cached layout for key, calling fn to build it on a
// miss. Concurrent misses of the same key share one fn call. New entries
// are admitted while the cache holds fewer than limit layouts, a
// non-positive limit admits everything.
func (c *Cache) Compute(key string, limit int, fn func() (*Layout, error)) (*Layout, error) {
	if val := c.Get(key); val != nil {
		return val, nil
	}

	/* record the miss and build the layout once */
	atomic.AddUint64(&MissCount, 1)
	val, err, _ := c.group.Do(key, func() (interface{}, error) {
		if cached, ok := c.memo.Load(key); ok {
			return cached, nil
		}

		ret, err := fn()
		if err != nil {
			return nil, err
		}

		/* admit until the entry limit is reached */
		if limit <= 0 || atomic.LoadUint64(&c.size) < uint64(limit) {
			if _, loaded := c.memo.LoadOrStore(key, ret); !loaded {
				atomic.AddUint64(&c.size, 1)
				atomic.AddUint64(&SizeCount, 1)
			}
		}
		return ret, nil
	})

	if err != nil {
		return nil, err
	}
	return val.(*Layout), nil
}

// Len reports the number of cached layouts.
func (c *Cache) Len() int {
	nb := 0
	c.memo.Range(func(interface{}, interface{}) bool { nb++; return true })
	return nb
}
