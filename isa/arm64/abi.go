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

// Package arm64 assigns AArch64 argument locations following the AAPCS64
// register usage, with the SpiderMonkey wasm embedding carried as a
// variant. There is no fastcall on this architecture.
package arm64

import (
    `github.com/cloudwego/tern/internal/utils`
    `github.com/cloudwego/tern/ir`
    `github.com/cloudwego/tern/isa`
    `github.com/oleiade/lane`
    `golang.org/x/arch/arm64/arm64asm`
)

/* AAPCS64 argument and return registers, in allocation order */
var aapcsIntArgs = [...]arm64asm.Reg { arm64asm.X0, arm64asm.X1, arm64asm.X2, arm64asm.X3, arm64asm.X4, arm64asm.X5, arm64asm.X6, arm64asm.X7 }
var aapcsVecArgs = [...]arm64asm.Reg { arm64asm.V0, arm64asm.V1, arm64asm.V2, arm64asm.V3, arm64asm.V4, arm64asm.V5, arm64asm.V6, arm64asm.V7 }
var aapcsIntRets = [...]arm64asm.Reg { arm64asm.X0, arm64asm.X1 }
var aapcsVecRets = [...]arm64asm.Reg { arm64asm.V0, arm64asm.V1 }

const (
    _WordSize = 8
    _VecAlign = 16
)

type _LocAlloc struct {
    off  int32
    wasm bool
    gpr  *lane.Queue
    vec  *lane.Queue
}

func mkRegQueue(regs []arm64asm.Reg, unit func(arm64asm.Reg) isa.RegUnit) *lane.Queue {
    q := lane.NewQueue()
    for _, rr := range regs {
        q.Enqueue(unit(rr))
    }
    return q
}

/* fixed homes for special purposes; the link register and frame pointer
 * are architectural, the wasm embedding pins its context and signature
 * check so trampolines can find them */
func (self *_LocAlloc) pin(pp ir.ArgumentPurpose) (isa.RegUnit, bool) {
    switch {
        case pp == ir.Link                     : return GprUnit(arm64asm.X30), true
        case pp == ir.FramePointer             : return GprUnit(arm64asm.X29), true
        case self.wasm && pp == ir.VMContext   : return GprUnit(arm64asm.X23), true
        case self.wasm && pp == ir.SignatureID : return GprUnit(arm64asm.X10), true
        default                                : return 0, false
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
// assigned beforehand are honored. Signatures under the fastcall
// convention are rejected with an UnsupportedConvError.
func LegalizeSignature(sig *ir.Signature) error {
    switch sig.CallConv {
        case isa.Fast, isa.Cold, isa.SystemV : legalize(sig, false)
        case isa.Baldrdash                   : legalize(sig, true)
        case isa.Fastcall                    : return isa.UnsupportedConvError { Arch: ISA.Name, Conv: sig.CallConv }
        default                              : panic("arm64: invalid calling convention")
    }
    sig.ComputeArgumentBytes()
    return nil
}

func legalize(sig *ir.Signature, wasm bool) {
    la := _LocAlloc { wasm: wasm, gpr: mkRegQueue(aapcsIntArgs[:], GprUnit), vec: mkRegQueue(aapcsVecArgs[:], VecUnit) }
    ra := _LocAlloc { wasm: wasm, gpr: mkRegQueue(aapcsIntRets[:], GprUnit), vec: mkRegQueue(aapcsVecRets[:], VecUnit) }

    /* arguments first, then returns against a fresh register set */
    la.assignSeq(sig.Params)
    ra.assignSeq(sig.Returns)
}
