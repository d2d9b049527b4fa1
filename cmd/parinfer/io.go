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
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/parinfer-community/parinfer-go/pkg/parinfer"
)

// processFile runs m against the named file. check never touches the file;
// indent and paren overwrite it in place, preserving its mode bits.
func processFile(m *runMode, name string, opts parinfer.Options, log *logrus.Logger) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	if m.name == "check" {
		return m.run(os.Stdout, name, string(data), opts, log)
	}

	var out strings.Builder
	if err := m.run(&out, name, string(data), opts, log); err != nil {
		return err
	}
	return os.WriteFile(name, []byte(out.String()), info.Mode())
}
