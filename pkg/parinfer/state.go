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

import "strings"

// parenTrail is the tail region [startX, endX) of lineNo that currently
// forms the trailing close-paren run, plus the openers matched within it.
// lineNo of -1 means no trail has been established yet, matching the
// pre-first-line sentinel used for lineNo itself.
type parenTrail struct {
	lineNo  int
	startX  int
	endX    int
	openers []opener
}

// state is the single owning value mutated for the duration of one
// IndentMode or ParenMode call. No state persists across calls: a fresh
// state is constructed by newState, mutated by the driver in driver.go, and
// consumed into a Result by publicResult.
type state struct {
	mode Mode

	origText  string
	origLines []string
	lines     []string

	lineNo int
	x      int
	ch     string

	parenStack []opener
	trail      parenTrail

	isInCode    bool
	isInStr     bool
	isInComment bool
	isEscaping  bool

	commentX       *int
	quoteDanger    bool
	trackingIndent bool
	skipChar       bool
	maxIndent      *int
	indentDelta    int

	cursorX    *int
	cursorLine *int
	cursorDx   *int

	errorPosCache map[string]errPos

	success bool
}

func newState(text string, opts Options, mode Mode) *state {
	return &state{
		mode:      mode,
		origText:  text,
		origLines: strings.Split(text, "\n"),
		lineNo:    -1,
		isInCode:  true,
		trail: parenTrail{
			lineNo: -1,
		},
		errorPosCache: make(map[string]errPos),
		cursorX:       opts.CursorX,
		cursorLine:    opts.CursorLine,
		cursorDx:      opts.CursorDx,
	}
}

// initLine starts a fresh output line paired with origLines[lineNo+1] and
// resets the per-line state that does not survive across lines.
func (s *state) initLine(line string) {
	s.x = 0
	s.lineNo++
	s.lines = append(s.lines, line)
	s.commentX = nil
	s.indentDelta = 0
}

func (s *state) changedLines() []ChangedLine {
	var out []ChangedLine
	for i := range s.lines {
		if s.lines[i] != s.origLines[i] {
			out = append(out, ChangedLine{LineNo: i, Line: s.lines[i]})
		}
	}
	return out
}

func lineEnding(text string) string {
	if strings.ContainsRune(text, '\r') {
		return "\r\n"
	}
	return "\n"
}

func (s *state) publicResult() Result {
	return Result{
		Text:         strings.Join(s.lines, lineEnding(s.origText)),
		Success:      true,
		ChangedLines: s.changedLines(),
	}
}
