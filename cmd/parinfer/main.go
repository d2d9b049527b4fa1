// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Program parinfer keeps a Lisp-family source file's parenthesization and
// indentation consistent with each other.
//
// Usage: parinfer --mode={indent,paren,check} [--cursor-line N --cursor-col N
//   --cursor-dx N] [--rc FILE] [--verbose] [FILE ...]
//
// With no FILE arguments, parinfer reads from standard input and writes the
// result to standard output. With FILE arguments, indent and paren modes
// rewrite each file in place; check mode never rewrites and instead reports
// success or failure per file, exiting 1 if any file failed.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pborman/getopt"

	"github.com/parinfer-community/parinfer-go/pkg/indent"
)

var stop = os.Exit

func main() {
	modeNames := make([]string, 0, len(modes))
	for k := range modes {
		modeNames = append(modeNames, k)
	}
	sort.Strings(modeNames)

	var mode, rcPath string
	var cursorLine, cursorCol, cursorDx int
	var verbose, help bool

	getopt.StringVarLong(&mode, "mode", 0, "mode to run: "+strings.Join(modeNames, ", "), "MODE")
	getopt.StringVarLong(&rcPath, "rc", 0, "YAML file of default cursor options", "FILE")
	getopt.IntVarLong(&cursorLine, "cursor-line", 0, "0-based cursor line", "N")
	getopt.IntVarLong(&cursorCol, "cursor-col", 0, "0-based cursor column", "N")
	getopt.IntVarLong(&cursorDx, "cursor-dx", 0, "horizontal change just applied at the cursor (paren mode)", "N")
	getopt.BoolVarLong(&verbose, "verbose", 'v', "log a trace of every file processed")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE ...]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nModes:\n")
		for _, n := range modeNames {
			fmt.Fprintf(os.Stderr, "    %s - %s\n", n, modes[n].help)
		}
		stop(0)
	}

	log := newLogger(os.Stderr, verbose)

	if mode == "" {
		mode = "check"
	}
	m, ok := modes[mode]
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid mode. Choices are %s\n", mode, strings.Join(modeNames, ", "))
		stop(1)
	}

	baseOpts, err := loadRC(rcPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}

	var cursorLineP, cursorColP, cursorDxP *int
	if getopt.CommandLine.Lookup("cursor-line").Seen() {
		cursorLineP = &cursorLine
	}
	if getopt.CommandLine.Lookup("cursor-col").Seen() {
		cursorColP = &cursorCol
	}
	if getopt.CommandLine.Lookup("cursor-dx").Seen() {
		cursorDxP = &cursorDx
	}
	opts := overrideFromFlags(baseOpts, cursorLineP, cursorColP, cursorDxP)

	files := getopt.Args()

	var errs *multierror.Error
	if len(files) == 0 {
		data, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
		}
		if err := m.run(os.Stdout, "<STDIN>", string(data), opts, log); err != nil {
			errs = multierror.Append(errs, err)
		}
	} else {
		for _, name := range files {
			if err := processFile(m, name, opts, log); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}

	if errs.ErrorOrNil() != nil {
		fmt.Fprint(os.Stderr, indent.String("  ", errs.Error()))
		stop(1)
	}
}
