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
    `strconv`
)

// RegUnit is the smallest indivisible unit of allocation for an ISA
// register file. Every architecture numbers its units in one flat space
// shared by all of its register banks.
type RegUnit uint16

// RegBank is a contiguous run of register units sharing one naming scheme.
type RegBank struct {
    Name  string
    First RegUnit
    Names []string
}

func (self RegBank) Units() int {
    return len(self.Names)
}

func (self RegBank) Contains(r RegUnit) bool {
    return r >= self.First && int(r - self.First) < len(self.Names)
}

// NameOf returns the bank-local name of r, which must be inside the bank.
func (self RegBank) NameOf(r RegUnit) string {
    if !self.Contains(r) {
        panic("isa: register unit outside of bank " + self.Name)
    } else {
        return self.Names[r - self.First]
    }
}

// RegInfo names the register units of one ISA for display purposes.
// A nil RegInfo is valid and names every unit numerically.
type RegInfo struct {
    Banks []RegBank
}

// NewRegInfo builds a RegInfo from non-overlapping banks.
func NewRegInfo(banks ...RegBank) *RegInfo {
    nb := len(banks)

    /* banks must not be empty or overlap one another */
    for i := 0; i < nb; i++ {
        if banks[i].Units() == 0 {
            panic("isa: empty register bank " + banks[i].Name)
        }
        for j := 0; j < i; j++ {
            if banks[i].Contains(banks[j].First) || banks[j].Contains(banks[i].First) {
                panic("isa: overlapping register banks " + banks[j].Name + " and " + banks[i].Name)
            }
        }
    }
    return &RegInfo { Banks: banks }
}

// RegName returns the display name of r without any prefix, falling back
// to the decimal unit number for units outside of every bank.
func (self *RegInfo) RegName(r RegUnit) string {
    if self != nil {
        for _, bk := range self.Banks {
            if bk.Contains(r) {
                return bk.NameOf(r)
            }
        }
    }
    return strconv.Itoa(int(r))
}
