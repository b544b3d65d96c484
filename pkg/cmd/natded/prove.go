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
package natded

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/natded/natded/pkg/prover"
	"github.com/natded/natded/pkg/render"
	"github.com/natded/natded/pkg/syntax"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runProve(cmd *cobra.Command, args []string) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}

	tex := GetFlag(cmd, "tex")
	out := GetString(cmd, "out")
	interactive := GetFlag(cmd, "interactive")

	writer := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		writer = f
	}

	if interactive {
		runInteractive(writer, tex)
		return
	}

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "natded: expected a single formula argument (or --interactive)")
		os.Exit(1)
	}

	if err := proveOne(writer, args[0], tex); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInteractive(writer *os.File, tex bool) {
	scanner := bufio.NewScanner(os.Stdin)
	failed := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := proveOne(writer, line, tex); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}

func proveOne(writer *os.File, input string, tex bool) error {
	log.Debugf("parsing %q", input)

	f, err := syntax.Parse(input)
	if err != nil {
		return fmt.Errorf("natded: %w", err)
	}

	n, err := prover.Prove(f)
	if err != nil {
		return fmt.Errorf("natded: %w", err)
	}

	var rendered string
	if tex {
		rendered = render.TeX(n)
	} else {
		rendered = render.ASCII(n)
	}

	_, err = fmt.Fprintln(writer, rendered)
	return err
}
