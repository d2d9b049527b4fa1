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

package parinfer

// Mode selects which side of the parenthesization/indentation pair is
// authoritative during a run.
type Mode int

const (
	// ModeIndent treats indentation as authoritative.
	ModeIndent Mode = iota
	// ModeParen treats parens as authoritative.
	ModeParen
)

func (m Mode) String() string {
	switch m {
	case ModeIndent:
		return "indent"
	case ModeParen:
		return "paren"
	}
	return "unknown"
}

// Options carries the optional, per-run configuration recognized by
// IndentMode and ParenMode. A nil field means the corresponding behavior is
// disabled, matching the "absent keys disable their respective behavior"
// rule; pointers model that absence rather than a sentinel integer.
type Options struct {
	// CursorX is the 0-based column of the cursor on CursorLine.
	CursorX *int
	// CursorLine is the 0-based line index where the cursor resides.
	CursorLine *int
	// CursorDx is the signed horizontal change the editor just applied at
	// the cursor. Only consulted in Paren Mode.
	CursorDx *int
}

// ChangedLine identifies one output line that differs from its input line.
type ChangedLine struct {
	LineNo int
	Line   string
}

// Result is the outcome of one IndentMode or ParenMode call.
type Result struct {
	// Text is the corrected text on success, or the input verbatim on failure.
	Text string
	// Success is true when no error was detected.
	Success bool
	// ChangedLines lists, in increasing line order, every line whose text
	// differs from the input. Empty (nil) on failure.
	ChangedLines []ChangedLine
	// Error describes the failure. nil on success.
	Error *Error
}
