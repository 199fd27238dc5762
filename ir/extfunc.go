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
    `fmt`
    `strings`

    `github.com/cloudwego/tern/isa`
)

// ArgumentExtension states how an integer narrower than a machine word is
// widened when the platform ABI calls for it.
type ArgumentExtension uint8

const (
    // ExtNone leaves the upper bits unspecified.
    ExtNone ArgumentExtension = iota

    // ExtUext zero-extends to the full register width.
    ExtUext

    // ExtSext sign-extends to the full register width.
    ExtSext
)

/* display tokens, positionally aligned with the constants above;
 * ExtNone never renders */
var _ExtNames = [...]string {
    ExtNone : "",
    ExtUext : "uext",
    ExtSext : "sext",
}

// ArgumentPurpose distinguishes ordinary user-program values from the
// special values a calling convention threads through a function boundary.
type ArgumentPurpose uint8

const (
    // Normal is a plain user-program argument or return value.
    Normal ArgumentPurpose = iota

    // StructReturn is a pointer to an over-sized return value.
    StructReturn

    // Link is the link register or saved return address.
    Link

    // FramePointer is the saved frame pointer of the caller.
    FramePointer

    // CalleeSaved is a callee-saved register preserved as an argument.
    CalleeSaved

    // VMContext is the embedder VM context pointer.
    VMContext

    // SignatureID is the signature identity check for indirect calls.
    SignatureID
)

/* display tokens, positionally aligned with the constants above;
 * adding a purpose means appending its token here as well */
var _PurposeNames = [...]string {
    Normal       : "normal",
    StructReturn : "sret",
    Link         : "link",
    FramePointer : "fp",
    CalleeSaved  : "csr",
    VMContext    : "vmctx",
    SignatureID  : "sigid",
}

func (self ArgumentPurpose) String() string {
    if int(self) < len(_PurposeNames) {
        return _PurposeNames[self]
    } else {
        panic(fmt.Sprintf("ir: invalid argument purpose: %d", uint8(self)))
    }
}

// ParseArgumentPurpose decodes a purpose token as produced by
// ArgumentPurpose.String. Unknown tokens yield a SyntaxError.
func ParseArgumentPurpose(s string) (ArgumentPurpose, error) {
    for i, name := range _PurposeNames {
        if name == s {
            return ArgumentPurpose(i), nil
        }
    }
    return 0, esyntax(0, s, "not an argument purpose")
}

// AbiParam describes one argument or return value of a function: its
// value type, its role in the calling convention, an optional integer
// extension, and, once legalized, its concrete location.
type AbiParam struct {
    Type      Type
    Purpose   ArgumentPurpose
    Extension ArgumentExtension
    Loc       ArgumentLoc
}

// NewParam creates a parameter for an ordinary value of type vt with no
// extension and no assigned location.
func NewParam(vt Type) AbiParam {
    return AbiParam { Type: vt }
}

// SpecialParam creates a parameter carrying a special purpose value.
func SpecialParam(vt Type, purpose ArgumentPurpose) AbiParam {
    return AbiParam { Type: vt, Purpose: purpose }
}

// SpecialRegParam creates a special purpose parameter pinned to the
// register unit reg. Legalization leaves pinned parameters untouched.
func SpecialRegParam(vt Type, purpose ArgumentPurpose, reg isa.RegUnit) AbiParam {
    return AbiParam { Type: vt, Purpose: purpose, Loc: AssignReg(reg) }
}

// Uext returns a copy marked as zero-extended. The value type must be a
// scalar integer, everything else is a caller bug and panics.
func (self AbiParam) Uext() AbiParam {
    if !self.Type.IsInt() {
        panic("ir: uext on a non-integer type " + self.Type.String())
    }
    self.Extension = ExtUext
    return self
}

// Sext returns a copy marked as sign-extended. The value type must be a
// scalar integer, everything else is a caller bug and panics.
func (self AbiParam) Sext() AbiParam {
    if !self.Type.IsInt() {
        panic("ir: sext on a non-integer type " + self.Type.String())
    }
    self.Extension = ExtSext
    return self
}

// Display renders the parameter, naming registers through regs when it
// is not nil.
func (self AbiParam) Display(regs *isa.RegInfo) string {
    mm := make([]string, 0, 4)
    mm = append(mm, self.Type.String())

    /* extension attribute, only when requested */
    if self.Extension != ExtNone {
        mm = append(mm, _ExtNames[self.Extension])
    }

    /* special purpose, "normal" is implied */
    if self.Purpose != Normal {
        mm = append(mm, self.Purpose.String())
    }

    /* assigned location, if any */
    if self.Loc.IsAssigned() {
        mm = append(mm, "[" + self.Loc.Display(regs) + "]")
    }
    return strings.Join(mm, " ")
}

func (self AbiParam) String() string {
    return self.Display(nil)
}

// ExtFuncData ties a function name visible to a compilation unit to the
// signature of calls going through it. Colocated functions are defined
// in the same native object and may be reached with cheaper relocations.
type ExtFuncData struct {
    Name      ExternalName
    Signature SigRef
    Colocated bool
}

func (self ExtFuncData) String() string {
    if self.Colocated {
        return fmt.Sprintf("colocated %s %s", self.Name, self.Signature)
    } else {
        return fmt.Sprintf("%s %s", self.Name, self.Signature)
    }
}
