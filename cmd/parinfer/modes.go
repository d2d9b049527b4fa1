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

package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/parinfer-community/parinfer-go/pkg/parinfer"
)

// runMode is registered with register and invoked once per input file (or
// once for stdin). It receives the file's full text and writes whatever the
// mode produces to w; a non-nil error aborts that file and is folded into
// the run's aggregate error.
type runMode struct {
	name string
	run  func(w io.Writer, name, text string, opts parinfer.Options, log *logrus.Logger) error
	help string
}

var modes = map[string]*runMode{}

func register(m *runMode) {
	modes[m.name] = m
}

func init() {
	register(&runMode{
		name: "indent",
		help: "rewrite FILE so the paren structure follows indentation",
		run:  runRewrite(parinfer.IndentMode),
	})
	register(&runMode{
		name: "paren",
		help: "rewrite FILE so indentation follows the paren structure",
		run:  runRewrite(parinfer.ParenMode),
	})
	register(&runMode{
		name: "check",
		help: "report success/failure and changed-line count without rewriting",
		run:  runCheck,
	})
}

func runRewrite(fn func(string, parinfer.Options) parinfer.Result) func(io.Writer, string, string, parinfer.Options, *logrus.Logger) error {
	return func(w io.Writer, name, text string, opts parinfer.Options, log *logrus.Logger) error {
		res := fn(text, opts)
		log.WithFields(logrus.Fields{
			"file":    name,
			"success": res.Success,
		}).Debug("ran parinfer")
		if !res.Success {
			return fmt.Errorf("%s: %s", name, res.Error)
		}
		_, err := io.WriteString(w, res.Text)
		return err
	}
}

func runCheck(w io.Writer, name, text string, opts parinfer.Options, log *logrus.Logger) error {
	res := parinfer.IndentMode(text, opts)
	log.WithFields(logrus.Fields{
		"file":    name,
		"success": res.Success,
	}).Debug("ran parinfer")
	if !res.Success {
		fmt.Fprintf(w, "%s: FAIL %s\n", name, res.Error)
		return fmt.Errorf("%s: %s", name, res.Error)
	}
	fmt.Fprintf(w, "%s: OK (%d lines changed)\n", name, len(res.ChangedLines))
	return nil
}
