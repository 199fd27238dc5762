/*
 * Copyright 2024 CloudWeGo Authors
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

package main

import (
	"fmt"
	"runtime"

	"github.com/cloudwego/tern"
	"github.com/cloudwego/tern/isa"
	"github.com/spf13/cobra"
)

var regsCmd = &cobra.Command{
	Use:   "regs",
	Short: "List the register banks of a target",
	Args:  cobra.NoArgs,
	RunE:  runRegs,
}

func init() {
	regsCmd.Flags().StringP("target", "t", runtime.GOARCH, "target architecture")
}

func runRegs(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}
	tgt, err := tern.LookupTarget(name)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %d-byte words, %s by default\n", tgt.Name(), tgt.WordSize(), tgt.DefaultCallConv())
	for _, bank := range tgt.Regs().Banks {
		fmt.Fprintf(w, "bank %q: units %d..%d\n", bank.Name, bank.First, int(bank.First)+bank.Units()-1)
		for i := 0; i < bank.Units(); i++ {
			unit := bank.First + isa.RegUnit(i)
			fmt.Fprintf(w, "  %3d  %%%s\n", unit, bank.NameOf(unit))
		}
	}
	return nil
}
