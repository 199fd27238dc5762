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

	"github.com/cloudwego/tern"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var sigCmd = &cobra.Command{
	Use:   "sig <signature>",
	Short: "Parse a signature and print its canonical form",
	Long:  `Parse a textual signature like "(i32 uext, f64) -> i64 system_v" and print it back in canonical form`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSig,
}

func init() {
	sigCmd.Flags().Bool("dump", false, "dump the parsed in-memory representation")
}

func runSig(cmd *cobra.Command, args []string) error {
	sig, err := tern.ParseSignature(args[0])
	if err != nil {
		return err
	}

	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return err
	}
	if dump {
		spew.Fdump(cmd.OutOrStdout(), sig)
	}

	fmt.Fprintln(cmd.OutOrStdout(), sig.String())
	return nil
}
