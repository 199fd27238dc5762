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
    `strings`

    `github.com/cloudwego/tern/isa`
)

// OptionalBytes is the argument area size of a signature, which does not
// exist at all before legalization. Zero is a legal computed size, so
// absence needs its own flag rather than a sentinel value.
type OptionalBytes struct {
    valid bool
    bytes uint32
}

// Bytes returns the computed size, if one has been computed.
func (self OptionalBytes) Bytes() (uint32, bool) {
    return self.bytes, self.valid
}

// Signature is the complete ABI contract of a function: what it takes,
// what it returns, and under which calling convention. A signature starts
// out abstract, location assignment makes it concrete, and afterwards it
// is treated as immutable.
type Signature struct {
    Params        []AbiParam
    Returns       []AbiParam
    CallConv      isa.CallConv
    ArgumentBytes OptionalBytes
}

// NewSignature creates an empty signature under the convention cc.
func NewSignature(cc isa.CallConv) *Signature {
    return &Signature { CallConv: cc }
}

// Clear empties the signature for reuse under the convention cc,
// keeping the parameter storage around.
func (self *Signature) Clear(cc isa.CallConv) {
    self.Params = self.Params[:0]
    self.Returns = self.Returns[:0]
    self.CallConv = cc
    self.ArgumentBytes = OptionalBytes{}
}

// ComputeArgumentBytes derives the argument area size from the assigned
// parameter locations: the maximum end offset over every parameter placed
// at a non-negative stack offset, or zero when there is none. Negative
// offsets address the caller frame and are excluded, return values never
// occupy the argument area. Recomputing is always safe.
func (self *Signature) ComputeArgumentBytes() {
    nb := uint32(0)

    /* scan stack-assigned parameters */
    for _, p := range self.Params {
        if off, ok := p.Loc.StackOffset(); ok && off >= 0 {
            if end := uint32(off) + p.Type.Bytes(); end > nb {
                nb = end
            }
        }
    }
    self.ArgumentBytes = OptionalBytes { valid: true, bytes: nb }
}

// SpecialParamIndex finds the parameter carrying the given special
// purpose. Multiple parameters may carry the same purpose, the last one
// wins.
func (self *Signature) SpecialParamIndex(purpose ArgumentPurpose) (int, bool) {
    for i := len(self.Params) - 1; i >= 0; i-- {
        if self.Params[i].Purpose == purpose {
            return i, true
        }
    }
    return -1, false
}

// UsesSpecialParam reports whether any parameter carries the purpose.
func (self *Signature) UsesSpecialParam(purpose ArgumentPurpose) bool {
    _, ok := self.SpecialParamIndex(purpose)
    return ok
}

// Equal reports structural equality, location assignments included.
func (self *Signature) Equal(other *Signature) bool {
    if self.CallConv != other.CallConv {
        return false
    }
    if len(self.Params) != len(other.Params) || len(self.Returns) != len(other.Returns) {
        return false
    }
    for i, p := range self.Params {
        if p != other.Params[i] {
            return false
        }
    }
    for i, p := range self.Returns {
        if p != other.Returns[i] {
            return false
        }
    }
    return true
}

// Display renders the signature, naming registers through regs when it
// is not nil. The argument area size is derived state and never rendered.
func (self *Signature) Display(regs *isa.RegInfo) string {
    rb := new(strings.Builder)
    rb.WriteString("(")
    rb.WriteString(self.formatSeq(self.Params, regs))
    rb.WriteString(")")

    /* the returns block only exists for non-void functions */
    if len(self.Returns) != 0 {
        rb.WriteString(" -> ")
        rb.WriteString(self.formatSeq(self.Returns, regs))
    }

    rb.WriteString(" ")
    rb.WriteString(self.CallConv.String())
    return rb.String()
}

func (self *Signature) String() string {
    return self.Display(nil)
}

func (self *Signature) formatSeq(v []AbiParam, regs *isa.RegInfo) string {
    nb := len(v)
    mm := make([]string, nb)

    /* convert each part */
    for i := 0; i < nb; i++ {
        mm[i] = v[i].Display(regs)
    }

    /* join them together */
    return strings.Join(mm, ", ")
}
