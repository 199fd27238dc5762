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
	"github.com/spf13/cobra"
)

var legalizeCmd = &cobra.Command{
	Use:   "legalize <signature>",
	Short: "Assign argument locations for a target",
	Long:  `Parse a textual signature, assign every parameter and return value a concrete location for the chosen target, and print the result`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLegalize,
}

func init() {
	legalizeCmd.Flags().StringP("target", "t", runtime.GOARCH, "target architecture")
	legalizeCmd.Flags().Bool("raw", false, "print register units instead of register names")
}

func runLegalize(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}
	tgt, err := tern.LookupTarget(name)
	if err != nil {
		return err
	}

	sig, err := tern.ParseSignature(args[0])
	if err != nil {
		return err
	}
	if err := tern.LegalizeSignature(tgt, sig); err != nil {
		return err
	}

	regs := tgt.Regs()
	if raw, err := cmd.Flags().GetBool("raw"); err != nil {
		return err
	} else if raw {
		regs = nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), sig.Display(regs))
	if nb, ok := sig.ArgumentBytes.Bytes(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "argument bytes: %d\n", nb)
	}
	return nil
}
