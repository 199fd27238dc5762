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

package amd64

import (
    `github.com/chenzhuoyu/iasm/x86_64`
    `github.com/cloudwego/tern/isa`
)

/* register bank layout, one flat unit space */
const (
    _U_gpr isa.RegUnit = 0
    _U_xmm isa.RegUnit = 16
)

/* general purpose registers in hardware encoding order, units 0 through 15 */
var ArchRegs = [...]x86_64.Register64 {
    x86_64.RAX,
    x86_64.RCX,
    x86_64.RDX,
    x86_64.RBX,
    x86_64.RSP,
    x86_64.RBP,
    x86_64.RSI,
    x86_64.RDI,
    x86_64.R8,
    x86_64.R9,
    x86_64.R10,
    x86_64.R11,
    x86_64.R12,
    x86_64.R13,
    x86_64.R14,
    x86_64.R15,
}

var ArchRegNames = map[x86_64.Register64]string {
    x86_64.RAX : "rax",
    x86_64.RCX : "rcx",
    x86_64.RDX : "rdx",
    x86_64.RBX : "rbx",
    x86_64.RSP : "rsp",
    x86_64.RBP : "rbp",
    x86_64.RSI : "rsi",
    x86_64.RDI : "rdi",
    x86_64.R8  : "r8",
    x86_64.R9  : "r9",
    x86_64.R10 : "r10",
    x86_64.R11 : "r11",
    x86_64.R12 : "r12",
    x86_64.R13 : "r13",
    x86_64.R14 : "r14",
    x86_64.R15 : "r15",
}

/* vector registers, units 16 through 31 */
var ArchVecRegs = [...]x86_64.XMMRegister {
    x86_64.XMM0,
    x86_64.XMM1,
    x86_64.XMM2,
    x86_64.XMM3,
    x86_64.XMM4,
    x86_64.XMM5,
    x86_64.XMM6,
    x86_64.XMM7,
    x86_64.XMM8,
    x86_64.XMM9,
    x86_64.XMM10,
    x86_64.XMM11,
    x86_64.XMM12,
    x86_64.XMM13,
    x86_64.XMM14,
    x86_64.XMM15,
}

var ArchVecRegNames = map[x86_64.XMMRegister]string {
    x86_64.XMM0  : "xmm0",
    x86_64.XMM1  : "xmm1",
    x86_64.XMM2  : "xmm2",
    x86_64.XMM3  : "xmm3",
    x86_64.XMM4  : "xmm4",
    x86_64.XMM5  : "xmm5",
    x86_64.XMM6  : "xmm6",
    x86_64.XMM7  : "xmm7",
    x86_64.XMM8  : "xmm8",
    x86_64.XMM9  : "xmm9",
    x86_64.XMM10 : "xmm10",
    x86_64.XMM11 : "xmm11",
    x86_64.XMM12 : "xmm12",
    x86_64.XMM13 : "xmm13",
    x86_64.XMM14 : "xmm14",
    x86_64.XMM15 : "xmm15",
}

// GprUnit maps a general purpose register to its allocation unit.
func GprUnit(reg x86_64.Register64) isa.RegUnit {
    for i, rr := range ArchRegs {
        if rr == reg {
            return _U_gpr + isa.RegUnit(i)
        }
    }
    panic("amd64: no allocation unit for register " + reg.String())
}

// VecUnit maps a vector register to its allocation unit.
func VecUnit(reg x86_64.XMMRegister) isa.RegUnit {
    for i, rr := range ArchVecRegs {
        if rr == reg {
            return _U_xmm + isa.RegUnit(i)
        }
    }
    panic("amd64: no allocation unit for register " + reg.String())
}

// ISA describes the x86-64 target.
var ISA = isa.Arch {
    Name     : "amd64",
    WordSize : 8,
    Default  : isa.SystemV,
}

// Regs names every allocatable register unit of the target.
var Regs = isa.NewRegInfo(
    isa.RegBank { Name: "gpr", First: _U_gpr, Names: gprNames() },
    isa.RegBank { Name: "xmm", First: _U_xmm, Names: vecNames() },
)

func gprNames() []string {
    nb := len(ArchRegs)
    mm := make([]string, nb)

    /* bank names follow the encoding order */
    for i := 0; i < nb; i++ {
        mm[i] = ArchRegNames[ArchRegs[i]]
    }
    return mm
}

func vecNames() []string {
    nb := len(ArchVecRegs)
    mm := make([]string, nb)

    /* bank names follow the encoding order */
    for i := 0; i < nb; i++ {
        mm[i] = ArchVecRegNames[ArchVecRegs[i]]
    }
    return mm
}
