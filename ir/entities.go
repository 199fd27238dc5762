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
)

// SigRef is a dense handle to a Signature held by a SigTable.
type SigRef uint32

// FuncRef is a dense handle to an ExtFuncData held by a function body.
type FuncRef uint32

const (
    NoSigRef  SigRef  = ^SigRef(0)
    NoFuncRef FuncRef = ^FuncRef(0)
)

func (self SigRef) String() string {
    if self == NoSigRef {
        return "-"
    } else {
        return fmt.Sprintf("sig%d", uint32(self))
    }
}

func (self FuncRef) String() string {
    if self == NoFuncRef {
        return "-"
    } else {
        return fmt.Sprintf("fn%d", uint32(self))
    }
}

// SigTable interns signatures and hands out dense SigRef handles for
// them. Interning keys on the canonical text form, so signatures must
// not be mutated once interned. Not safe for concurrent use.
type SigTable struct {
    sigs []*Signature
    refs map[string]SigRef
}

func NewSigTable() *SigTable {
    return &SigTable {
        refs: make(map[string]SigRef),
    }
}

// Intern returns the handle of sig, reusing the handle of a previously
// interned signature that renders identically.
func (self *SigTable) Intern(sig *Signature) SigRef {
    key := sig.String()

    /* reuse an existing entry if the signature is known */
    if ref, ok := self.refs[key]; ok {
        return ref
    }

    /* allocate the next dense handle */
    ref := SigRef(len(self.sigs))
    self.sigs = append(self.sigs, sig)
    self.refs[key] = ref
    return ref
}

// Get resolves a handle issued by Intern. Foreign handles are a caller
// bug and panic.
func (self *SigTable) Get(ref SigRef) *Signature {
    if int(ref) < len(self.sigs) {
        return self.sigs[ref]
    } else {
        panic(fmt.Sprintf("ir: no such signature: %s", ref))
    }
}

func (self *SigTable) Len() int {
    return len(self.sigs)
}

// ForEach visits every interned signature in handle order.
func (self *SigTable) ForEach(fn func(SigRef, *Signature)) {
    for i, sig := range self.sigs {
        fn(SigRef(i), sig)
    }
}
