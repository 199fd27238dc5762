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

const (
    _MaxNameLen = 16
)

// ExternalName identifies a function or object outside the current
// compilation unit. It is either a short symbolic name used by tests and
// tools, rendering as "%name", or a namespaced index assigned by the
// embedding environment, rendering as "u<namespace>:<index>". The model
// attaches no meaning to either form.
type ExternalName struct {
    user  bool
    ns    uint32
    index uint32
    nlen  uint8
    name  [_MaxNameLen]byte
}

// TestcaseName creates a symbolic external name, truncated to 16 bytes.
func TestcaseName(s string) ExternalName {
    en := ExternalName{}
    nb := len(s)

    /* truncate over-long names */
    if nb > _MaxNameLen {
        nb = _MaxNameLen
    }

    en.nlen = uint8(nb)
    copy(en.name[:], s[:nb])
    return en
}

// UserName creates an external name from an embedder-assigned namespace
// and index.
func UserName(ns uint32, index uint32) ExternalName {
    return ExternalName { user: true, ns: ns, index: index }
}

// IsUser reports whether this is an embedder-assigned name.
func (self ExternalName) IsUser() bool {
    return self.user
}

func (self ExternalName) String() string {
    if self.user {
        return fmt.Sprintf("u%d:%d", self.ns, self.index)
    } else {
        return "%" + string(self.name[:self.nlen])
    }
}
