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
    `math/bits`
)

// Type is the SSA value type of anything crossing a function boundary.
// The low byte selects the lane type, the high byte holds the log2 of
// the lane count, so every scalar constant below is also its own lane type.
type Type uint16

const (
    _B_lanes = 8
)

const (
    _M_base = (1 << _B_lanes) - 1
)

const (
    _MaxBits  = 512
    _MaxLanes = 256
)

const (
    VOID Type = iota
    B1
    B8
    B16
    B32
    B64
    I8
    I16
    I32
    I64
    F32
    F64
)

/* lane widths in bits, positionally aligned with the constants above */
var _LaneBits = [...]int {
    VOID : 0,
    B1   : 1,
    B8   : 8,
    B16  : 16,
    B32  : 32,
    B64  : 64,
    I8   : 8,
    I16  : 16,
    I32  : 32,
    I64  : 64,
    F32  : 32,
    F64  : 64,
}

/* display names, positionally aligned with the constants above */
var _TypeNames = [...]string {
    VOID : "void",
    B1   : "b1",
    B8   : "b8",
    B16  : "b16",
    B32  : "b32",
    B64  : "b64",
    I8   : "i8",
    I16  : "i16",
    I32  : "i32",
    I64  : "i64",
    F32  : "f32",
    F64  : "f64",
}

/* common vector shorthands */
var (
    I8X16, _ = I8.By(16)
    I32X4, _ = I32.By(4)
    F32X4, _ = F32.By(4)
    F64X2, _ = F64.By(2)
)

// LaneType strips the lane count, yielding the scalar type of one lane.
func (self Type) LaneType() Type {
    return self & _M_base
}

// LaneCount returns the number of lanes, which is 1 for scalars.
func (self Type) LaneCount() int {
    return 1 << (self >> _B_lanes)
}

// LaneBits returns the width of a single lane in bits.
func (self Type) LaneBits() int {
    if vt := self.LaneType(); int(vt) < len(_LaneBits) {
        return _LaneBits[vt]
    } else {
        panic(fmt.Sprintf("ir: invalid value type: %#x", uint16(self)))
    }
}

// Bits returns the total width of the type in bits.
func (self Type) Bits() int {
    return self.LaneBits() * self.LaneCount()
}

// Bytes returns the number of bytes used to store this type in memory,
// rounding sub-byte types up to a full byte.
func (self Type) Bytes() uint32 {
    return uint32((self.Bits() + 7) / 8)
}

func (self Type) IsVector() bool {
    return self >> _B_lanes != 0
}

// IsInt reports whether this is a scalar integer type. Only integer
// values may carry an ABI extension attribute.
func (self Type) IsInt() bool {
    return !self.IsVector() && self >= I8 && self <= I64
}

func (self Type) IsFloat() bool {
    return !self.IsVector() && (self == F32 || self == F64)
}

func (self Type) IsBool() bool {
    return !self.IsVector() && self >= B1 && self <= B64
}

// By multiplies the lane count by n, turning scalars into vectors and
// widening vectors. The n must be a power of two, the result is capped
// at 256 lanes and 512 bits total.
func (self Type) By(n int) (Type, bool) {
    if n <= 0 || n & (n - 1) != 0 {
        return VOID, false
    }

    /* vectors of nothing or of b1 do not exist */
    if self.LaneBits() < 8 {
        return VOID, false
    }

    /* check the resulting shape */
    nb := self.LaneCount() * n
    if nb > _MaxLanes || self.LaneBits() * nb > _MaxBits {
        return VOID, false
    }
    return self.LaneType() | Type(bits.TrailingZeros(uint(nb))) << _B_lanes, true
}

func (self Type) String() string {
    if vt := self.LaneType(); int(vt) >= len(_TypeNames) {
        panic(fmt.Sprintf("ir: invalid value type: %#x", uint16(self)))
    } else if self.IsVector() {
        return fmt.Sprintf("%sx%d", _TypeNames[vt], self.LaneCount())
    } else {
        return _TypeNames[vt]
    }
}
