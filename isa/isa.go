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

// Package isa carries the architecture-facing vocabulary of the signature
// model: calling conventions, register units and the services that name
// them. It deliberately knows nothing about signatures themselves, the
// per-architecture packages build on top of it.
package isa

// Arch describes one target architecture.
type Arch struct {
    Name     string
    WordSize int
    Default  CallConv
}

func (self Arch) String() string {
    return self.Name
}
