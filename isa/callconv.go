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

package isa

import (
    `fmt`
)

// CallConv identifies the calling convention a function signature adheres to.
type CallConv uint8

const (
    // Fast is the not-ABI-stable convention for best performance.
    Fast CallConv = iota

    // Cold is the not-ABI-stable convention for infrequently executed code.
    Cold

    // SystemV is the System V-style convention used on many platforms.
    SystemV

    // Fastcall is the Windows "fastcall" convention, also used for x64 and ARM.
    Fastcall

    // Baldrdash is the SpiderMonkey WebAssembly convention.
    Baldrdash
)

/* display tokens, positionally aligned with the constants above;
 * adding a convention means appending its token here as well */
var _ConvNames = [...]string {
    Fast      : "fast",
    Cold      : "cold",
    SystemV   : "system_v",
    Fastcall  : "fastcall",
    Baldrdash : "baldrdash",
}

func (self CallConv) String() string {
    if int(self) < len(_ConvNames) {
        return _ConvNames[self]
    } else {
        panic(fmt.Sprintf("isa: invalid calling convention: %d", uint8(self)))
    }
}

// IsWasm reports whether the convention carries an embedder context
// argument, which pins the VM context to a fixed register.
func (self CallConv) IsWasm() bool {
    return self == Baldrdash
}

// ParseCallConv decodes a calling convention token as produced by
// CallConv.String. Unknown tokens yield a ConvError.
func ParseCallConv(s string) (CallConv, error) {
    for i, name := range _ConvNames {
        if name == s {
            return CallConv(i), nil
        }
    }
    return 0, ConvError { Token: s }
}
