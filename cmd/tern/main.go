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
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errColor = color.New(color.FgRed, color.Bold)

var rootCmd = &cobra.Command{
	Use:   "tern",
	Short: "Inspect ABI signature legalization",
	Long: `tern parses textual function signatures and assigns every parameter
and return value a concrete register or stack location for a chosen
register architecture`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(sigCmd)
	rootCmd.AddCommand(legalizeCmd)
	rootCmd.AddCommand(regsCmd)

	if err := rootCmd.Execute(); err != nil {
		errColor.Fprint(os.Stderr, "tern: ")
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
