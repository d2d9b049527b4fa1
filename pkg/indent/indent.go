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

// Package indent prefixes each line of text written to it with a fixed
// string. It is used by cmd/parinfer to indent the aggregated multi-file
// error report it prints to stderr.
package indent

import "io"

// String returns in with prefix inserted at the start of every line.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

// Bytes returns in with prefix inserted at the start of every line.
func Bytes(prefix, in []byte) []byte {
	if len(in) == 0 {
		return in
	}
	out := append([]byte{}, prefix...)
	for i, b := range in {
		out = append(out, b)
		if b == '\n' && i != len(in)-1 {
			out = append(out, prefix...)
		}
	}
	return out
}

// NewWriter returns a writer that inserts prefix at the start of every line
// written to w.
func NewWriter(w io.Writer, prefix string) io.Writer {
	return &writer{w: w, prefix: []byte(prefix), atLineStart: true}
}

type writer struct {
	w           io.Writer
	prefix      []byte
	atLineStart bool
}

// Write builds the fully-prefixed form of buf, issues it to the underlying
// writer in a single call, and reports how many bytes of buf (as opposed to
// injected prefix bytes) the underlying write accounted for.
func (iw *writer) Write(buf []byte) (int, error) {
	atStart := iw.atLineStart
	out := make([]byte, 0, len(buf))
	isContent := make([]bool, 0, len(buf))

	for _, b := range buf {
		if atStart {
			out = append(out, iw.prefix...)
			for range iw.prefix {
				isContent = append(isContent, false)
			}
			atStart = false
		}
		out = append(out, b)
		isContent = append(isContent, true)
		if b == '\n' {
			atStart = true
		}
	}
	iw.atLineStart = atStart

	if len(out) == 0 {
		return 0, nil
	}

	n, err := iw.w.Write(out)
	if n > len(out) {
		n = len(out)
	}
	if n < 0 {
		n = 0
	}

	written := 0
	for _, c := range isContent[:n] {
		if c {
			written++
		}
	}
	return written, err
}
