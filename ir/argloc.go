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

package ir

import (
    `strconv`

    `github.com/cloudwego/tern/isa`
)

type _LocKind uint8

const (
    _L_none _LocKind = iota
    _L_reg
    _L_stack
)

// ArgumentLoc is the concrete location of one argument after legalization:
// nothing yet, a register unit, or a byte offset into the argument area.
// The zero value is the unassigned location.
type ArgumentLoc struct {
    kind _LocKind
    val  int32
}

// AssignReg places an argument in the register unit r.
func AssignReg(r isa.RegUnit) ArgumentLoc {
    return ArgumentLoc { kind: _L_reg, val: int32(r) }
}

// AssignStack places an argument at byte offset off in the argument area.
// Negative offsets address the caller frame and never count towards the
// argument area size.
func AssignStack(off int32) ArgumentLoc {
    return ArgumentLoc { kind: _L_stack, val: off }
}

func (self ArgumentLoc) IsAssigned() bool {
    return self.kind != _L_none
}

func (self ArgumentLoc) IsReg() bool {
    return self.kind == _L_reg
}

func (self ArgumentLoc) IsStack() bool {
    return self.kind == _L_stack
}

// RegUnit returns the assigned register unit, if any.
func (self ArgumentLoc) RegUnit() (isa.RegUnit, bool) {
    if self.kind == _L_reg {
        return isa.RegUnit(self.val), true
    } else {
        return 0, false
    }
}

// StackOffset returns the assigned stack offset, if any.
func (self ArgumentLoc) StackOffset() (int32, bool) {
    if self.kind == _L_stack {
        return self.val, true
    } else {
        return 0, false
    }
}

// Display renders the location, naming registers through regs when it is
// not nil. Unnamed register units render as their decimal number.
func (self ArgumentLoc) Display(regs *isa.RegInfo) string {
    switch self.kind {
        case _L_none  : return "-"
        case _L_reg   : return "%" + regs.RegName(isa.RegUnit(self.val))
        case _L_stack : return strconv.Itoa(int(self.val))
        default       : panic("ir: invalid argument location")
    }
}

func (self ArgumentLoc) String() string {
    return self.Display(nil)
}
