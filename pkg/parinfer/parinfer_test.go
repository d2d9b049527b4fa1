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

import (
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"
	"github.com/openconfig/gnmi/errdiff"
)

// line returns the line number from which it was called, so table entries
// can be traced back to their source.
func line() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func intPtr(i int) *int { return &i }

func TestIndentMode(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		opts Options
		want Result
	}{
		{line(), "(foo", Options{}, Result{
			Text:         "(foo)",
			Success:      true,
			ChangedLines: []ChangedLine{{LineNo: 0, Line: "(foo)"}},
		}},
		{line(), "(foo (bar\nbaz)", Options{}, Result{
			Text:    "(foo (bar))\nbaz",
			Success: true,
			ChangedLines: []ChangedLine{
				{LineNo: 0, Line: "(foo (bar))"},
				{LineNo: 1, Line: "baz"},
			},
		}},
		{line(), "(foo)\n(bar)", Options{}, Result{
			Text:    "(foo)\n(bar)",
			Success: true,
		}},
		{line(), "()", Options{}, Result{
			Text:    "()",
			Success: true,
		}},
	} {
		got := IndentMode(tt.in, tt.opts)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("line %d: IndentMode(%q) mismatch (-want +got):\n%s", tt.line, tt.in, diff)
		}
	}
}

func TestParenMode(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		opts Options
		want Result
	}{
		{line(), "(foo\n bar)", Options{}, Result{
			Text:    "(foo\n bar)",
			Success: true,
		}},
		{line(), "(foo)", Options{}, Result{
			Text:    "(foo)",
			Success: true,
		}},
	} {
		got := ParenMode(tt.in, tt.opts)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("line %d: ParenMode(%q) mismatch (-want +got):\n%s", tt.line, tt.in, diff)
		}
	}
}

func TestErrors(t *testing.T) {
	for _, tt := range []struct {
		line           int
		in             string
		wantName       string
		wantLineNo     int
		wantX          int
		wantErrSubstr  string
	}{
		{line(), `(foo "hi`, ErrUnclosedQuote, 0, 5, "closing quote"},
		{line(), `(foo ; bar "baz`, ErrQuoteDanger, 0, 11, "balanced"},
		{line(), "(foo\\\n bar)", ErrEOLBackslash, 0, 4, "hanging backslash"},
	} {
		got := IndentMode(tt.in, Options{})

		var err error
		if got.Error != nil {
			err = got.Error
		}
		if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
			t.Errorf("line %d: IndentMode(%q) error mismatch: %s", tt.line, tt.in, diff)
			continue
		}

		if got.Success {
			t.Errorf("line %d: IndentMode(%q).Success = true, want false", tt.line, tt.in)
			continue
		}
		if got.Text != tt.in {
			t.Errorf("line %d: IndentMode(%q).Text = %q, want input echoed back verbatim", tt.line, tt.in, got.Text)
		}
		if got.Error.Name != tt.wantName {
			t.Errorf("line %d: IndentMode(%q).Error.Name = %q, want %q", tt.line, tt.in, got.Error.Name, tt.wantName)
		}
		if got.Error.LineNo != tt.wantLineNo || got.Error.X != tt.wantX {
			t.Errorf("line %d: IndentMode(%q).Error position = (%d,%d), want (%d,%d)",
				tt.line, tt.in, got.Error.LineNo, got.Error.X, tt.wantLineNo, tt.wantX)
		}
	}
}

func TestUnclosedParenInParenMode(t *testing.T) {
	got := ParenMode("(foo", Options{})
	if got.Success {
		t.Fatalf("ParenMode(%q).Success = true, want false", "(foo")
	}
	if got.Error == nil || got.Error.Name != ErrUnclosedParen {
		t.Fatalf("ParenMode(%q).Error = %+v, want name %q", "(foo", got.Error, ErrUnclosedParen)
	}
	if got.Text != "(foo" {
		t.Fatalf("ParenMode(%q).Text = %q, want verbatim input", "(foo", got.Text)
	}
}

// TestIdempotence checks that running IndentMode's own output back through
// IndentMode is a fixed point.
func TestIdempotence(t *testing.T) {
	for _, in := range []string{
		"(foo",
		"(foo (bar\nbaz)",
		"(defn f [x]\n(+ x 1))",
		"(a (b (c",
	} {
		first := IndentMode(in, Options{})
		if !first.Success {
			continue
		}
		second := IndentMode(first.Text, Options{})
		if !second.Success {
			t.Errorf("IndentMode(%q) succeeded but re-running its output failed: %+v", in, second.Error)
			continue
		}
		if second.Text != first.Text {
			t.Errorf("IndentMode is not idempotent on %q: first pass %q, second pass %q", in, first.Text, second.Text)
		}
	}
}

// TestBalancedParens checks that open and close counts agree outside of
// strings and comments in every successful result.
func TestBalancedParens(t *testing.T) {
	for _, in := range []string{
		"(foo",
		"(foo (bar\nbaz)",
		"(a (b (c",
		"(defn f [x]\n  (+ x 1))",
	} {
		res := IndentMode(in, Options{})
		if !res.Success {
			continue
		}
		opens, closes := 0, 0
		inStr, inComment := false, false
		for _, r := range res.Text {
			switch {
			case inComment:
				if r == '\n' {
					inComment = false
				}
			case inStr:
				if r == '"' {
					inStr = false
				}
			case r == '"':
				inStr = true
			case r == ';':
				inComment = true
			case isOpenParen(byte(r)):
				opens++
			case isCloseParen(byte(r)):
				closes++
			}
		}
		if opens != closes {
			t.Errorf("IndentMode(%q).Text = %q has %d opens but %d closes", in, res.Text, opens, closes)
		}
	}
}

// TestFailurePreservesInput checks that a failing run always returns the
// input text unchanged.
func TestFailurePreservesInput(t *testing.T) {
	for _, in := range []string{
		`(foo "hi`,
		`(foo ; bar "baz`,
		"(foo\\\n bar)",
	} {
		res := IndentMode(in, Options{})
		if res.Success {
			t.Fatalf("IndentMode(%q) unexpectedly succeeded", in)
		}
		if res.Text != in {
			t.Errorf("IndentMode(%q).Text = %q, want exact input on failure", in, res.Text)
		}
		if res.ChangedLines != nil {
			t.Errorf("IndentMode(%q).ChangedLines = %v, want nil on failure", in, res.ChangedLines)
		}
	}
}

// TestNoTabsInOutput checks that tab characters in code positions never
// survive into a successful result.
func TestNoTabsInOutput(t *testing.T) {
	res := IndentMode("(foo\n\t(bar))", Options{})
	if !res.Success {
		t.Fatalf("IndentMode failed unexpectedly: %+v", res.Error)
	}
	if strings.Contains(res.Text, "\t") {
		t.Errorf("IndentMode output %q still contains a tab", res.Text)
	}
}

// TestChangedLinesIncreasing checks that changedLines is reported in
// strictly increasing line order.
func TestChangedLinesIncreasing(t *testing.T) {
	res := IndentMode("(foo (bar\nbaz)", Options{})
	if !res.Success {
		t.Fatalf("IndentMode failed unexpectedly: %+v", res.Error)
	}
	prev := -1
	for _, cl := range res.ChangedLines {
		if cl.LineNo <= prev {
			t.Fatalf("ChangedLines not strictly increasing: %+v", res.ChangedLines)
		}
		prev = cl.LineNo
	}
}

func TestModeString(t *testing.T) {
	if got, want := ModeIndent.String(), "indent"; got != want {
		t.Errorf("ModeIndent.String() = %q, want %q", got, want)
	}
	if got, want := ModeParen.String(), "paren"; got != want {
		t.Errorf("ModeParen.String() = %q, want %q", got, want)
	}
}

// TestChangedLinesPretty is a diagnostic check of the same two-line
// correction TestIndentMode already verifies; pretty.Compare gives a more
// readable diff than a %+v dump when a ChangedLines regression is this
// shape (a slice of structs) rather than a single value.
func TestChangedLinesPretty(t *testing.T) {
	in := "(foo (bar\nbaz)"
	want := []ChangedLine{
		{LineNo: 0, Line: "(foo (bar))"},
		{LineNo: 1, Line: "baz"},
	}
	res := IndentMode(in, Options{})
	if !res.Success {
		t.Fatalf("IndentMode(%q) failed: %+v", in, res.Error)
	}
	if diff := pretty.Compare(want, res.ChangedLines); diff != "" {
		t.Errorf("IndentMode(%q).ChangedLines mismatch (-want +got):\n%s", in, diff)
	}
}

func TestCursorOptions(t *testing.T) {
	// A cursor sitting to the right of a paren trail preserves the close
	// parens before it rather than removing them with the trail.
	got := IndentMode("(foo)", Options{CursorLine: intPtr(0), CursorX: intPtr(5)})
	if !got.Success {
		t.Fatalf("IndentMode failed unexpectedly: %+v", got.Error)
	}
	if got.Text != "(foo)" {
		t.Errorf("IndentMode with trailing cursor = %q, want %q", got.Text, "(foo)")
	}
}
