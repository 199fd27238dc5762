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
    `testing`

    `github.com/cloudwego/tern/isa`
    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`
)

func TestSignature_Build(t *testing.T) {
    sig := NewSignature(isa.Baldrdash)
    assert.Equal(t, "() baldrdash", sig.String())

    sig.Params = append(sig.Params, NewParam(I32))
    assert.Equal(t, "(i32) baldrdash", sig.String())

    sig.Returns = append(sig.Returns, NewParam(F32))
    assert.Equal(t, "(i32) -> f32 baldrdash", sig.String())

    vt, ok := I32.By(4)
    require.True(t, ok)
    sig.Params = append(sig.Params, NewParam(vt))
    assert.Equal(t, "(i32, i32x4) -> f32 baldrdash", sig.String())

    sig.Returns = append(sig.Returns, NewParam(B8))
    assert.Equal(t, "(i32, i32x4) -> f32, b8 baldrdash", sig.String())

    /* the argument area does not exist before location assignment */
    _, ok = sig.ArgumentBytes.Bytes()
    assert.False(t, ok)

    /* assign locations by hand and derive the area size */
    sig.Params[0].Loc = AssignStack(24)
    sig.Params[1].Loc = AssignStack(8)
    sig.ComputeArgumentBytes()

    nb, ok := sig.ArgumentBytes.Bytes()
    require.True(t, ok)
    assert.Equal(t, uint32(28), nb)
    assert.Equal(t, "(i32 [24], i32x4 [8]) -> f32, b8 baldrdash", sig.String())

    /* recomputing does not change the answer */
    sig.ComputeArgumentBytes()
    nb, ok = sig.ArgumentBytes.Bytes()
    require.True(t, ok)
    assert.Equal(t, uint32(28), nb)
}

func TestSignature_ArgumentBytes(t *testing.T) {
    sig := NewSignature(isa.SystemV)

    /* no stack parameters means a zero-size argument area */
    sig.Params = append(sig.Params, NewParam(I32))
    sig.Params[0].Loc = AssignReg(7)
    sig.ComputeArgumentBytes()
    nb, ok := sig.ArgumentBytes.Bytes()
    require.True(t, ok)
    assert.Equal(t, uint32(0), nb)

    /* negative offsets address the caller frame and do not count */
    sig.Params = append(sig.Params, NewParam(I64))
    sig.Params[1].Loc = AssignStack(-16)
    sig.ComputeArgumentBytes()
    nb, _ = sig.ArgumentBytes.Bytes()
    assert.Equal(t, uint32(0), nb)

    /* stack returns do not count either */
    sig.Returns = append(sig.Returns, NewParam(I64))
    sig.Returns[0].Loc = AssignStack(64)
    sig.ComputeArgumentBytes()
    nb, _ = sig.ArgumentBytes.Bytes()
    assert.Equal(t, uint32(0), nb)

    /* parameter order does not matter, only the maximum end offset */
    sig.Params = append(sig.Params, NewParam(I32X4))
    sig.Params[2].Loc = AssignStack(8)
    sig.Params[0].Loc = AssignStack(24)
    sig.ComputeArgumentBytes()
    nb, _ = sig.ArgumentBytes.Bytes()
    assert.Equal(t, uint32(28), nb)

    sig.Params[0], sig.Params[2] = sig.Params[2], sig.Params[0]
    sig.ComputeArgumentBytes()
    nb, _ = sig.ArgumentBytes.Bytes()
    assert.Equal(t, uint32(28), nb)
}

func TestSignature_SpecialParamIndex(t *testing.T) {
    sig := NewSignature(isa.SystemV)
    sig.Params = append(sig.Params, NewParam(I32))
    sig.Params = append(sig.Params, SpecialParam(I64, VMContext))
    sig.Params = append(sig.Params, NewParam(F32))

    i, ok := sig.SpecialParamIndex(VMContext)
    require.True(t, ok)
    assert.Equal(t, 1, i)
    assert.True(t, sig.UsesSpecialParam(VMContext))

    /* duplicates are allowed, the last one wins */
    sig.Params = append(sig.Params, SpecialParam(I64, VMContext))
    i, ok = sig.SpecialParamIndex(VMContext)
    require.True(t, ok)
    assert.Equal(t, 3, i)

    _, ok = sig.SpecialParamIndex(SignatureID)
    assert.False(t, ok)
    assert.False(t, sig.UsesSpecialParam(SignatureID))

    /* "normal" is a purpose like any other as far as lookup goes */
    i, ok = sig.SpecialParamIndex(Normal)
    require.True(t, ok)
    assert.Equal(t, 2, i)
}

func TestSignature_Clear(t *testing.T) {
    sig := NewSignature(isa.SystemV)
    sig.Params = append(sig.Params, NewParam(I32))
    sig.Returns = append(sig.Returns, NewParam(I32))
    sig.ComputeArgumentBytes()

    sig.Clear(isa.Fastcall)
    assert.Equal(t, "() fastcall", sig.String())
    _, ok := sig.ArgumentBytes.Bytes()
    assert.False(t, ok)
}

func TestSignature_Equal(t *testing.T) {
    a, err := ParseSignature("(i32, f64 [8]) -> b1 cold")
    require.NoError(t, err)
    b, err := ParseSignature("(i32, f64 [8]) -> b1 cold")
    require.NoError(t, err)
    assert.True(t, a.Equal(b))

    b.CallConv = isa.Fast
    assert.False(t, a.Equal(b))

    b.CallConv = isa.Cold
    b.Params[1].Loc = AssignStack(16)
    assert.False(t, a.Equal(b))
}
