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

// Package tern models the ABI contract between function signatures and
// register architectures. Signatures are built or parsed in their
// abstract form, then legalized for a target, which assigns every
// parameter and return value a concrete register or stack location.
package tern

import (
	"sort"

	"github.com/cloudwego/tern/internal/opts"
	"github.com/cloudwego/tern/internal/sigcache"
	"github.com/cloudwego/tern/ir"
	"github.com/cloudwego/tern/isa"
	"github.com/cloudwego/tern/isa/amd64"
	"github.com/cloudwego/tern/isa/arm64"
)

// Target is one register architecture signatures can be legalized for.
type Target interface {
	// Name returns the registry name of the target, e.g. "amd64".
	Name() string

	// WordSize returns the native pointer width in bytes.
	WordSize() int

	// DefaultCallConv returns the convention assumed by the target when
	// the caller expresses no preference.
	DefaultCallConv() isa.CallConv

	// Regs returns the register naming service of the target, for
	// rendering assigned locations.
	Regs() *isa.RegInfo

	// LegalizeSignature assigns a concrete location to every parameter
	// and return value of sig, bypassing the layout cache. Locations
	// assigned beforehand are honored.
	LegalizeSignature(sig *ir.Signature) error
}

type target struct {
	arch     isa.Arch
	regs     *isa.RegInfo
	cache    *sigcache.Cache
	legalize func(*ir.Signature) error
}

func (self *target) Name() string                  { return self.arch.Name }
func (self *target) WordSize() int                 { return self.arch.WordSize }
func (self *target) DefaultCallConv() isa.CallConv { return self.arch.Default }
func (self *target) Regs() *isa.RegInfo            { return self.regs }

func (self *target) LegalizeSignature(sig *ir.Signature) error {
	return self.legalize(sig)
}

var targets = map[string]*target{
	"amd64": {arch: amd64.ISA, regs: amd64.Regs, cache: sigcache.New(), legalize: amd64.LegalizeSignature},
	"arm64": {arch: arm64.ISA, regs: arm64.Regs, cache: sigcache.New(), legalize: arm64.LegalizeSignature},
}

// LookupTarget finds a registered target by name.
func LookupTarget(name string) (Target, error) {
	if tgt, ok := targets[name]; ok {
		return tgt, nil
	}
	return nil, TargetError{Name: name}
}

// Targets lists the registered target names in sorted order.
func Targets() []string {
	ret := make([]string, 0, len(targets))
	for name := range targets {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// LegalizeSignature assigns a concrete location to every parameter and
// return value of sig for tgt. Layouts are memoized per target, so
// identical abstract signatures reuse the computed locations.
func LegalizeSignature(tgt Target, sig *ir.Signature, options ...Option) error {
	o := opts.GetDefaultOptions()
	for _, fn := range options {
		fn(&o)
	}

	/* foreign Target implementations carry no cache */
	self, ok := tgt.(*target)
	if !ok || !o.CanCache() {
		return tgt.LegalizeSignature(sig)
	}

	/* the abstract display form keys the layout, it covers the types,
	 * purposes, extensions and any pre-assigned locations */
	key := sigcache.Key(self.arch.Name, sig.String())
	layout, err := self.cache.Compute(key, o.MaxCachedSignatures, func() (*sigcache.Layout, error) {
		if err := self.legalize(sig); err != nil {
			return nil, err
		}
		return sigcache.FromSignature(sig), nil
	})

	if err != nil {
		return err
	}
	layout.Apply(sig)
	return nil
}

// ParseSignature parses the textual form produced by ir.Signature.String().
func ParseSignature(s string) (*ir.Signature, error) {
	return ir.ParseSignature(s)
}
