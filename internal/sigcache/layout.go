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
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cloudwego/tern/ir"
	"github.com/cloudwego/tern/isa"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion guards persisted snapshots against layout rule
// changes. Bump it whenever an assigner changes its output.
const snapshotVersion = 1

var ErrStaleSnapshot = errors.New("sigcache: stale snapshot version")

const (
	locNone uint8 = iota
	locReg
	locStack
)

// Loc is the wire form of one assigned location.
type Loc struct {
	Kind uint8 `msgpack:"k"`
	Val  int32 `msgpack:"v"`
}

func fromArgumentLoc(loc ir.ArgumentLoc) Loc {
	if ru, ok := loc.RegUnit(); ok {
		return Loc{Kind: locReg, Val: int32(ru)}
	} else if off, ok := loc.StackOffset(); ok {
		return Loc{Kind: locStack, Val: off}
	} else {
		return Loc{Kind: locNone}
	}
}

func (l Loc) argumentLoc() ir.ArgumentLoc {
	switch l.Kind {
	case locReg:
		return ir.AssignReg(isa.RegUnit(l.Val))
	case locStack:
		return ir.AssignStack(l.Val)
	default:
		return ir.ArgumentLoc{}
	}
}

// Layout is the location assignment of one legalized signature,
// detached from the parameter types so it can be replayed onto any
// structurally identical signature.
type Layout struct {
	Params  []Loc `msgpack:"p"`
	Returns []Loc `msgpack:"r"`
}

// FromSignature captures the location assignment of a legalized sig.
func FromSignature(sig *ir.Signature) *Layout {
	ret := &Layout{
		Params:  make([]Loc, len(sig.Params)),
		Returns: make([]Loc, len(sig.Returns)),
	}
	for i, p := range sig.Params {
		ret.Params[i] = fromArgumentLoc(p.Loc)
	}
	for i, p := range sig.Returns {
		ret.Returns[i] = fromArgumentLoc(p.Loc)
	}
	return ret
}

// Apply replays the captured locations onto sig and rederives its
// argument area size. The signature must have the same shape as the one
// the layout was captured from.
func (l *Layout) Apply(sig *ir.Signature) {
	if len(sig.Params) != len(l.Params) || len(sig.Returns) != len(l.Returns) {
		panic("sigcache: layout shape mismatch")
	}
	for i := range sig.Params {
		sig.Params[i].Loc = l.Params[i].argumentLoc()
	}
	for i := range sig.Returns {
		sig.Returns[i].Loc = l.Returns[i].argumentLoc()
	}
	sig.ComputeArgumentBytes()
}

type snapshot struct {
	Version int                `msgpack:"v"`
	Entries map[string]*Layout `msgpack:"e"`
}

// Snapshot serializes every cached layout, so warm caches can be carried
// across processes by build daemons.
func (c *Cache) Snapshot() ([]byte, error) {
	ss := snapshot{
		Version: snapshotVersion,
		Entries: make(map[string]*Layout),
	}
	c.memo.Range(func(key interface{}, val interface{}) bool {
		ss.Entries[key.(string)] = val.(*Layout)
		return true
	})
	return msgpack.Marshal(&ss)
}

// Restore merges a snapshot produced by Snapshot into the cache and
// reports how many entries were admitted, limit bounds the cache size
// the same way Compute does. Snapshots from another version are
// rejected with ErrStaleSnapshot.
func (c *Cache) Restore(data []byte, limit int) (int, error) {
	var ss snapshot
	if err := msgpack.Unmarshal(data, &ss); err != nil {
		return 0, fmt.Errorf("sigcache: corrupt snapshot: %w", err)
	}
	if ss.Version != snapshotVersion {
		return 0, ErrStaleSnapshot
	}

	nb := 0
	for key, val := range ss.Entries {
		if limit > 0 && atomic.LoadUint64(&c.size) >= uint64(limit) {
			break
		}
		if _, loaded := c.memo.LoadOrStore(key, val); !loaded {
			atomic.AddUint64(&c.size, 1)
			atomic.AddUint64(&SizeCount, 1)
			nb++
		}
	}
	return nb, nil
}
