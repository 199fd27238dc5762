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

package tests

import (
    `github.com/brianvoe/gofakeit/v6`
    `github.com/cloudwego/tern/ir`
    `github.com/cloudwego/tern/isa`
)

var genTypes = []ir.Type {
    ir.B1,
    ir.B8,
    ir.B16,
    ir.B32,
    ir.B64,
    ir.I8,
    ir.I16,
    ir.I32,
    ir.I64,
    ir.F32,
    ir.F64,
    ir.I8X16,
    ir.I32X4,
    ir.F32X4,
    ir.F64X2,
}

var genConvs = []isa.CallConv {
    isa.Fast,
    isa.Cold,
    isa.SystemV,
    isa.Fastcall,
    isa.Baldrdash,
}

func genType() ir.Type {
    return genTypes[gofakeit.Number(0, len(genTypes) - 1)]
}

func genConv() isa.CallConv {
    return genConvs[gofakeit.Number(0, len(genConvs) - 1)]
}

/* one user parameter, integers sometimes carry an extension */
func genParam() ir.AbiParam {
    p := ir.NewParam(genType())
    if p.Type.IsInt() && gofakeit.Bool() {
        if gofakeit.Bool() {
            p = p.Uext()
        } else {
            p = p.Sext()
        }
    }
    return p
}

func genSignature(cc isa.CallConv, nargs int, nrets int) *ir.Signature {
    sig := ir.NewSignature(cc)
    for i := 0; i < nargs; i++ {
        sig.Params = append(sig.Params, genParam())
    }
    for i := 0; i < nrets; i++ {
        sig.Returns = append(sig.Returns, ir.NewParam(genType()))
    }
    return sig
}
