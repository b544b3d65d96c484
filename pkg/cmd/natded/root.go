// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package natded implements the natded command-line tool: parse a
// propositional formula from the command line, search for a natural
// deduction proof, and print (or save) the result.
package natded

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is empty unless set at link time; when it is empty, printVersion
// falls back to the module version recorded in the build info.
var Version string

// rootCmd represents the base command when called without any subcommands;
// it is also, for convenience, the prove command itself, since this tool has
// exactly one job.
var rootCmd = &cobra.Command{
	Use:   "natded <input>",
	Short: "A natural-deduction proof search engine for propositional logic.",
	Long: `Given a single propositional formula, natded searches for a natural
deduction proof deriving it from no assumptions and prints the proof tree.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			printVersion()
			return
		}
		runProve(cmd, args)
	},
}

func printVersion() {
	fmt.Print("natded ")
	switch {
	case Version != "":
		fmt.Printf("%s", Version)
	default:
		if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Printf("%s", info.Main.Version)
		} else {
			fmt.Printf("(unknown version)")
		}
	}
	fmt.Println()
}

// Execute runs the root command, exiting with status 1 if it returns an
// error. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "print version and exit")
	rootCmd.Flags().BoolP("tex", "t", false, "emit bussproofs TeX instead of an ASCII tree")
	rootCmd.Flags().StringP("out", "o", "", "write output to this file instead of stdout")
	rootCmd.Flags().BoolP("interactive", "i", false, "read formulas from stdin, one per line, until EOF")
	rootCmd.Flags().Bool("verbose", false, "enable debug logging")

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}
