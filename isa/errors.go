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

// ConvError occures when decoding a token that does not name a calling convention.
type ConvError struct {
    Token string
}

func (self ConvError) Error() string {
    return fmt.Sprintf("ConvError(%q): not a calling convention", self.Token)
}

// UnsupportedConvError occures when an architecture is asked to lay out a
// signature under a convention it does not implement.
type UnsupportedConvError struct {
    Arch string
    Conv CallConv
}

func (self UnsupportedConvError) Error() string {
    return fmt.Sprintf("UnsupportedConvError(%s): %q is not implemented on this architecture", self.Arch, self.Conv)
}
