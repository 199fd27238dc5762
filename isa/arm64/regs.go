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

package arm64

import (
    `strings`

    `github.com/cloudwego/tern/isa`
    `golang.org/x/arch/arm64/arm64asm`
)

/* register bank layout, one flat unit space; unit 31 is the stack
 * pointer slot and stays outside of both banks */
const (
    _U_gpr isa.RegUnit = 0
    _U_vec isa.RegUnit = 32
)

const (
    _N_gpr = 31
    _N_vec = 32
)

// GprUnit maps one of the general purpose registers x0 through x30 to
// its allocation unit.
func GprUnit(reg arm64asm.Reg) isa.RegUnit {
    if reg < arm64asm.X0 || reg > arm64asm.X30 {
        panic("arm64: no allocation unit for register " + reg.String())
    } else {
        return _U_gpr + isa.RegUnit(reg - arm64asm.X0)
    }
}

// VecUnit maps one of the vector registers v0 through v31 to its
// allocation unit.
func VecUnit(reg arm64asm.Reg) isa.RegUnit {
    if reg < arm64asm.V0 || reg > arm64asm.V31 {
        panic("arm64: no allocation unit for register " + reg.String())
    } else {
        return _U_vec + isa.RegUnit(reg - arm64asm.V0)
    }
}

// ISA describes the AArch64 target.
var ISA = isa.Arch {
    Name     : "arm64",
    WordSize : 8,
    Default  : isa.SystemV,
}

// Regs names every allocatable register unit of the target.
var Regs = isa.NewRegInfo(
    isa.RegBank { Name: "x", First: _U_gpr, Names: bankNames(arm64asm.X0, _N_gpr) },
    isa.RegBank { Name: "v", First: _U_vec, Names: bankNames(arm64asm.V0, _N_vec) },
)

/* the disassembler names the registers, reuse its table */
func bankNames(base arm64asm.Reg, count int) []string {
    mm := make([]string, count)
    for i := 0; i < count; i++ {
        mm[i] = strings.ToLower((base + arm64asm.Reg(i)).String())
    }
    return mm
}
