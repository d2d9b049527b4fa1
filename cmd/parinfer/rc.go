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

	"gopkg.in/yaml.v3"

	"github.com/parinfer-community/parinfer-go/pkg/parinfer"
)

// rcOptions is the on-disk shape of a --rc file: every field optional, so an
// absent key leaves the corresponding parinfer.Options field nil.
type rcOptions struct {
	CursorX    *int `yaml:"cursorX"`
	CursorLine *int `yaml:"cursorLine"`
	CursorDx   *int `yaml:"cursorDx"`
}

// loadRC reads path as YAML into an Options baseline. Explicit command-line
// flags are applied on top by the caller and take precedence.
func loadRC(path string) (parinfer.Options, error) {
	var opts parinfer.Options
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}

	var rc rcOptions
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return opts, err
	}

	opts.CursorX = rc.CursorX
	opts.CursorLine = rc.CursorLine
	opts.CursorDx = rc.CursorDx
	return opts, nil
}

// overrideFromFlags applies flags that were actually set on the command
// line over an rc-file baseline.
func overrideFromFlags(base parinfer.Options, cursorLine, cursorCol, cursorDx *int) parinfer.Options {
	if cursorLine != nil {
		base.CursorLine = cursorLine
	}
	if cursorCol != nil {
		base.CursorX = cursorCol
	}
	if cursorDx != nil {
		base.CursorDx = cursorDx
	}
	return base
}
