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
    `strconv`
    `strings`

    `fortio.org/safecast`
    `github.com/cloudwego/tern/isa`
)

// SyntaxError occures when decoding a textual type, parameter or signature fails.
type SyntaxError struct {
    Pos    int
    Src    string
    Reason string
}

func (self SyntaxError) Error() string {
    return fmt.Sprintf("Syntax error at position %d: %s", self.Pos, self.Reason)
}

func esyntax(pos int, src string, reason string) SyntaxError {
    return SyntaxError {
        Pos    : pos,
        Src    : src,
        Reason : reason,
    }
}

var _TypesByName map[string]Type

func init() {
    _TypesByName = make(map[string]Type, len(_TypeNames))
    for i, s := range _TypeNames {
        _TypesByName[s] = Type(i)
    }
}

// ParseType decodes a value type token as produced by Type.String.
func ParseType(s string) (Type, error) {
    if vt, ok := _TypesByName[s]; ok {
        return vt, nil
    }

    /* vector form "<scalar>x<lanes>" */
    if i := strings.LastIndexByte(s, 'x'); i > 0 {
        if base, ok := _TypesByName[s[:i]]; ok && isDigits(s[i + 1:]) {
            if nb, err := strconv.Atoi(s[i + 1:]); err == nil {
                if vt, ok := base.By(nb); ok {
                    return vt, nil
                } else {
                    return VOID, esyntax(0, s, "invalid vector shape")
                }
            }
        }
    }
    return VOID, esyntax(0, s, "not a value type")
}

func isDigits(s string) bool {
    if s == "" {
        return false
    }
    for i := 0; i < len(s); i++ {
        if s[i] < '0' || s[i] > '9' {
            return false
        }
    }
    return true
}

type _Scanner struct {
    pos int
    src string
}

func (self *_Scanner) eof() bool {
    return self.pos >= len(self.src)
}

func (self *_Scanner) ch() byte {
    if self.eof() {
        return 0
    } else {
        return self.src[self.pos]
    }
}

func (self *_Scanner) space() {
    for !self.eof() && self.src[self.pos] == ' ' {
        self.pos++
    }
}

func (self *_Scanner) ident() string {
    p := self.pos
    for !self.eof() && isWordChar(self.src[self.pos]) {
        self.pos++
    }
    return self.src[p:self.pos]
}

func (self *_Scanner) number() string {
    p := self.pos
    if self.ch() == '-' {
        self.pos++
    }
    for !self.eof() && self.src[self.pos] >= '0' && self.src[self.pos] <= '9' {
        self.pos++
    }
    return self.src[p:self.pos]
}

func (self *_Scanner) match(s string) bool {
    if strings.HasPrefix(self.src[self.pos:], s) {
        self.pos += len(s)
        return true
    } else {
        return false
    }
}

func (self *_Scanner) expect(ch byte) error {
    if self.ch() != ch {
        return esyntax(self.pos, self.src, strconv.QuoteRune(rune(ch)) + " expected")
    } else {
        self.pos++
        return nil
    }
}

func isWordChar(ch byte) bool {
    return (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '_'
}

/* one parameter as rendered by AbiParam.Display, separators excluded */
func (self *_Scanner) param() (AbiParam, error) {
    pos := self.pos
    tok := self.ident()

    /* the value type leads */
    if tok == "" {
        return AbiParam{}, esyntax(pos, self.src, "value type expected")
    }

    /* decode it, voids cannot cross a function boundary */
    vt, err := ParseType(tok)
    if err != nil {
        return AbiParam{}, esyntax(pos, self.src, "not a value type: " + strconv.Quote(tok))
    } else if vt == VOID {
        return AbiParam{}, esyntax(pos, self.src, "void is not a parameter type")
    }

    /* optional extension attribute, integers only */
    ret := NewParam(vt)
    save := self.pos
    self.space()

    switch epos := self.pos; self.ident() {
        default     : self.pos = save
        case "uext" : if vt.IsInt() { ret.Extension = ExtUext } else { return AbiParam{}, esyntax(epos, self.src, "extension on a non-integer type") }
        case "sext" : if vt.IsInt() { ret.Extension = ExtSext } else { return AbiParam{}, esyntax(epos, self.src, "extension on a non-integer type") }
    }

    /* optional special purpose */
    save = self.pos
    self.space()

    if tok = self.ident(); tok != "" {
        if pp, perr := ParseArgumentPurpose(tok); perr == nil {
            ret.Purpose = pp
        } else {
            self.pos = save
        }
    } else {
        self.pos = save
    }

    /* optional location in brackets */
    save = self.pos
    self.space()

    if self.ch() != '[' {
        self.pos = save
        return ret, nil
    }

    /* "%<unit>" is a register, a bare offset is a stack slot */
    self.pos++
    if loc, lerr := self.location(); lerr != nil {
        return AbiParam{}, lerr
    } else {
        ret.Loc = loc
    }

    if err = self.expect(']'); err != nil {
        return AbiParam{}, err
    }
    return ret, nil
}

func (self *_Scanner) location() (ArgumentLoc, error) {
    if self.ch() == '%' {
        self.pos++
        return self.regunit()
    } else {
        return self.stackoff()
    }
}

func (self *_Scanner) regunit() (ArgumentLoc, error) {
    pos := self.pos
    tok := self.number()

    if !isDigits(tok) {
        return ArgumentLoc{}, esyntax(pos, self.src, "register unit expected")
    }

    /* units are 16-bit, reject anything larger */
    nb, err := strconv.Atoi(tok)
    if err != nil {
        return ArgumentLoc{}, esyntax(pos, self.src, "register unit out of range")
    }

    rv, err := safecast.Conv[uint16](nb)
    if err != nil {
        return ArgumentLoc{}, esyntax(pos, self.src, "register unit out of range")
    }
    return AssignReg(isa.RegUnit(rv)), nil
}

func (self *_Scanner) stackoff() (ArgumentLoc, error) {
    pos := self.pos
    tok := self.number()

    if tok == "" || tok == "-" {
        return ArgumentLoc{}, esyntax(pos, self.src, "stack offset expected")
    }

    /* offsets are 32-bit, reject anything larger */
    nb, err := strconv.Atoi(tok)
    if err != nil {
        return ArgumentLoc{}, esyntax(pos, self.src, "stack offset out of range")
    }

    rv, err := safecast.Conv[int32](nb)
    if err != nil {
        return ArgumentLoc{}, esyntax(pos, self.src, "stack offset out of range")
    }
    return AssignStack(rv), nil
}

/* comma-separated parameters, at least one */
func (self *_Scanner) paramSeq(v []AbiParam) ([]AbiParam, error) {
    for {
        p, err := self.param()
        if err != nil {
            return nil, err
        }

        /* more parameters follow a comma */
        v = append(v, p)
        save := self.pos
        self.space()

        if self.ch() != ',' {
            self.pos = save
            return v, nil
        }

        self.pos++
        self.space()
    }
}

// ParseAbiParam decodes a single parameter as produced by
// AbiParam.Display. Register locations decode from the numeric form
// only, names assigned by a register naming service do not round-trip.
func ParseAbiParam(s string) (AbiParam, error) {
    lx := _Scanner { src: s }
    lx.space()

    p, err := lx.param()
    if err != nil {
        return AbiParam{}, err
    }

    /* nothing may follow */
    lx.space()
    if !lx.eof() {
        return AbiParam{}, esyntax(lx.pos, s, "trailing characters")
    }
    return p, nil
}

// ParseSignature decodes a signature as produced by Signature.Display,
// "(params...) -> returns... callconv" with the returns block optional.
func ParseSignature(s string) (*Signature, error) {
    lx := _Scanner { src: s }
    lx.space()

    if err := lx.expect('('); err != nil {
        return nil, err
    }

    /* parameter list, possibly empty */
    sig := NewSignature(isa.Fast)
    lx.space()

    if lx.ch() != ')' {
        v, err := lx.paramSeq(nil)
        if err != nil {
            return nil, err
        }
        sig.Params = v
        lx.space()
    }

    if err := lx.expect(')'); err != nil {
        return nil, err
    }

    /* optional returns block */
    save := lx.pos
    lx.space()

    if lx.match("->") {
        lx.space()
        v, err := lx.paramSeq(nil)
        if err != nil {
            return nil, err
        }
        sig.Returns = v
    } else {
        lx.pos = save
    }

    /* the calling convention closes the signature */
    lx.space()
    pos := lx.pos
    tok := lx.ident()

    if tok == "" {
        return nil, esyntax(pos, s, "calling convention expected")
    }

    cc, err := isa.ParseCallConv(tok)
    if err != nil {
        return nil, esyntax(pos, s, "not a calling convention: " + strconv.Quote(tok))
    }

    /* nothing may follow */
    sig.CallConv = cc
    lx.space()

    if !lx.eof() {
        return nil, esyntax(lx.pos, s, "trailing characters")
    }
    return sig, nil
}
