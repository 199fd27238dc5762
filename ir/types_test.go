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

    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`
)

func TestType_Display(t *testing.T) {
    assert.Equal(t, "void", VOID.String())
    assert.Equal(t, "b1", B1.String())
    assert.Equal(t, "b8", B8.String())
    assert.Equal(t, "i32", I32.String())
    assert.Equal(t, "i64", I64.String())
    assert.Equal(t, "f32", F32.String())
    assert.Equal(t, "f64", F64.String())
    assert.Equal(t, "i32x4", I32X4.String())
    assert.Equal(t, "i8x16", I8X16.String())
    assert.Equal(t, "f64x2", F64X2.String())
}

func TestType_Bytes(t *testing.T) {
    assert.Equal(t, uint32(0), VOID.Bytes())
    assert.Equal(t, uint32(1), B1.Bytes())
    assert.Equal(t, uint32(1), B8.Bytes())
    assert.Equal(t, uint32(1), I8.Bytes())
    assert.Equal(t, uint32(2), I16.Bytes())
    assert.Equal(t, uint32(4), I32.Bytes())
    assert.Equal(t, uint32(8), I64.Bytes())
    assert.Equal(t, uint32(4), F32.Bytes())
    assert.Equal(t, uint32(8), F64.Bytes())
    assert.Equal(t, uint32(16), I32X4.Bytes())
    assert.Equal(t, uint32(16), I8X16.Bytes())
}

func TestType_By(t *testing.T) {
    vt, ok := I32.By(4)
    require.True(t, ok)
    assert.Equal(t, I32X4, vt)
    assert.Equal(t, 4, vt.LaneCount())
    assert.Equal(t, I32, vt.LaneType())
    assert.True(t, vt.IsVector())

    /* widening an existing vector multiplies the lanes */
    wide, ok := vt.By(2)
    require.True(t, ok)
    assert.Equal(t, 8, wide.LaneCount())
    assert.Equal(t, "i32x8", wide.String())

    /* lane counts must be powers of two within the size caps */
    _, ok = I32.By(3)
    assert.False(t, ok)
    _, ok = I32.By(0)
    assert.False(t, ok)
    _, ok = I64.By(16)
    assert.False(t, ok)
    _, ok = B1.By(4)
    assert.False(t, ok)
    _, ok = VOID.By(2)
    assert.False(t, ok)
}

func TestType_Classes(t *testing.T) {
    assert.True(t, I8.IsInt())
    assert.True(t, I64.IsInt())
    assert.False(t, F32.IsInt())
    assert.False(t, B8.IsInt())
    assert.False(t, I32X4.IsInt())
    assert.True(t, F64.IsFloat())
    assert.False(t, I32.IsFloat())
    assert.True(t, B1.IsBool())
    assert.False(t, I32.IsBool())
    assert.False(t, I32.IsVector())
    assert.True(t, I32X4.IsVector())
}

func TestType_Parse(t *testing.T) {
    for _, vt := range []Type { B1, B8, B16, B32, B64, I8, I16, I32, I64, F32, F64, I32X4, I8X16, F32X4, F64X2 } {
        ret, err := ParseType(vt.String())
        require.NoError(t, err)
        assert.Equal(t, vt, ret)
    }
}

func TestType_ParseReject(t *testing.T) {
    for _, s := range []string { "", "i31", "I32", "i32 ", "x4", "i32x", "i32x3", "i32x-4", "b1x4", "voidx2", "f32x999999999999999999999" } {
        _, err := ParseType(s)
        require.Error(t, err, "type %q", s)
        assert.IsType(t, SyntaxError{}, err)
    }
}
