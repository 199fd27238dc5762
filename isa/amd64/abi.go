/*
 * Copyright 2023 CloudWeGo Authors
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

// Package amd64 assigns x86-64 argument locations. System V is the
// default convention, Windows fastcall and the SpiderMonkey wasm
// embedding are carried as variants of it.
package amd64

import (
    `github.com/chenzhuoyu/iasm/x86_64`
    `github.com/cloudwego/tern/internal/utils`
    `github.com/cloudwego/tern/ir`
    `github.com/cloudwego/tern/isa`
    `github.com/oleiade/lane`
)

/* System V argument and return registers, in allocation order */
var sysvIntArgs = [...]x86_64.Register64 { x86_64.RDI, x86_64.RSI, x86_64.RDX, x86_64.RCX, x86_64.R8, x86_64.R9 }
var sysvVecArgs = [...]x86_64.XMMRegister { x86_64.XMM0, x86_64.XMM1, x86_64.XMM2, x86_64.XMM3, x86_64.XMM4, x86_64.XMM5, x86_64.XMM6, x86_64.XMM7 }
var sysvIntRets = [...]x86_64.Register64 { x86_64.RAX, x86_64.RDX }
var sysvVecRets = [...]x86_64.XMMRegister { x86_64.XMM0, x86_64.XMM1 }

/* fastcall argument and return registers, in allocation order */
var win64IntArgs = [...]x86_64.Register64 { x86_64.RCX, x86_64.RDX, x86_64.R8, x86_64.R9 }
var win64VecArgs = [...]x86_64.XMMRegister { x86_64.XMM0, x86_64.XMM1, x86_64.XMM2, x86_64.XMM3 }
var win64IntRets = [...]x86_64.Register64 { x86_64.RAX }
var win64VecRets = [...]x86_64.XMMRegister { x86_64.XMM0 }

const (
    _WordSize    = 8
    _VecAlign    = 16
    _ShadowSpace = 32
)

type _LocAlloc struct {
    off  int32
    wasm bool
    gpr  *lane.Queue
    vec  *lane.Queue
}

func mkIntQueue(regs []x86_64.Register64) *lane.Queue {
    q := lane.NewQueue()
    for _, rr := range regs {
        q.Enqueue(GprUnit(rr))
    }
    return q
}

func mkVecQueue(regs []x86_64.XMMRegister) *lane.Queue {
    q := lane.NewQueue()
    for _, rr := range regs {
        q.Enqueue(VecUnit(rr))
    }
    return q
}

/* fixed homes for special purposes; the wasm embedding pins its
 * context and signature check so trampolines can find them */
func (self *_LocAlloc) pin(pp ir.ArgumentPurpose) (isa.RegUnit, bool) {
    switch {
        case pp == ir.FramePointer                : return GprUnit(x86_64.RBP), true
        case self.wasm && pp == ir.VMContext      : return GprUnit(x86_64.R14), true
        case self.wasm && pp == ir.SignatureID    : return GprUnit(x86_64.R10), true
        default                                   : return 0, false
    }
}

func (self *_LocAlloc) reg(q *lane.Queue) (ir.ArgumentLoc, bool) {
    if q.Empty() {
        return ir.ArgumentLoc{}, false
    } else {
        return ir.AssignReg(q.Dequeue().(isa.RegUnit)), true
    }
}

func (self *_LocAlloc) stack(vt ir.Type) ir.ArgumentLoc {
    nb := int32(vt.Bytes())
    ab := int32(_WordSize)

    /* wide values align to their own size, capped at vector alignment */
    if nb > _WordSize {
        ab = _VecAlign
    }

    /* slots take at least one word */
    self.off = utils.Align32(self.off, ab)
    loc := ir.AssignStack(self.off)

    if nb < _WordSize {
        nb = _WordSize
    }
    self.off += nb
    return loc
}

func (self *_LocAlloc) assign(p *ir.AbiParam) {
    /* pre-assigned locations are left untouched */
    if p.Loc.IsAssigned() {
        return
    }

    /* special purposes with fixed homes */
    if rr, ok := self.pin(p.Purpose); ok {
        p.Loc = ir.AssignReg(rr)
        return
    }

    /* floats and vectors drain the vector bank, everything else is
     * integer-like, stack slots catch the overflow */
    if p.Type.IsFloat() || p.Type.IsVector() {
        if loc, ok := self.reg(self.vec); ok {
            p.Loc = loc
            return
        }
    } else {
        if loc, ok := self.reg(self.gpr); ok {
            p.Loc = loc
            return
        }
    }
    p.Loc = self.stack(p.Type)
}

func (self *_LocAlloc) assignSeq(v []ir.AbiParam) {
    for i := range v {
        self.assign(&v[i])
    }
}

// LegalizeSignature assigns a concrete location to every parameter and
// return value of sig, then derives the argument area size. Locations
// assigned beforehand are honored. The assignment itself is total, the
// error is reserved for conventions this architecture does not carry.
func LegalizeSignature(sig *ir.Signature) error {
    switch sig.CallConv {
        case isa.Fast, isa.Cold, isa.SystemV : legalize(sig, false, false)
        case isa.Baldrdash                   : legalize(sig, true, false)
        case isa.Fastcall                    : legalize(sig, false, true)
        default                              : panic("amd64: invalid calling convention")
    }
    sig.ComputeArgumentBytes()
    return nil
}

func legalize(sig *ir.Signature, wasm bool, win bool) {
    la := _LocAlloc { wasm: wasm }
    ra := _LocAlloc { wasm: wasm }

    /* fastcall reserves shadow space and has shorter register sequences */
    if !win {
        la.gpr, la.vec = mkIntQueue(sysvIntArgs[:]), mkVecQueue(sysvVecArgs[:])
        ra.gpr, ra.vec = mkIntQueue(sysvIntRets[:]), mkVecQueue(sysvVecRets[:])
    } else {
        la.off = _ShadowSpace
        la.gpr, la.vec = mkIntQueue(win64IntArgs[:]), mkVecQueue(win64VecArgs[:])
        ra.gpr, ra.vec = mkIntQueue(win64IntRets[:]), mkVecQueue(win64VecRets[:])
    }

    /* arguments first, then returns against a fresh register set */
    la.assignSeq(sig.Params)
    ra.assignSeq(sig.Returns)
}
