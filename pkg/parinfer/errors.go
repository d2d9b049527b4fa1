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

import "fmt"

// Error kind names, returned verbatim as Error.Name.
const (
	ErrQuoteDanger   = "quote-danger"
	ErrEOLBackslash  = "eol-backslash"
	ErrUnclosedQuote = "unclosed-quote"
	ErrUnclosedParen = "unclosed-paren"
	ErrUnhandled     = "unhandled"
)

var errorMessages = map[string]string{
	ErrQuoteDanger:   "Quotes must balanced inside comment blocks.",
	ErrEOLBackslash:  "Line cannot end in a hanging backslash.",
	ErrUnclosedQuote: "String is missing a closing quote.",
	ErrUnclosedParen: "Unmatched open-paren.",
}

// Error is returned when a run fails. It satisfies the error interface so it
// can be propagated through the driver like any other Go error.
type Error struct {
	Name    string
	Message string
	LineNo  int
	X       int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.LineNo, e.X, e.Name, e.Message)
}

// errPos is a cached, first-observed position for a not-yet-confirmed error.
type errPos struct {
	lineNo int
	x      int
}

// cacheErrorPos records where name was first observed, so that it can be
// reported there even if the error is only confirmed later (see
// newErrorCached).
func (s *state) cacheErrorPos(name string, lineNo, x int) {
	s.errorPosCache[name] = errPos{lineNo: lineNo, x: x}
}

// newErrorAt builds an *Error for an immediately-known position.
func (s *state) newErrorAt(name string, lineNo, x int) *Error {
	return &Error{Name: name, Message: errorMessages[name], LineNo: lineNo, X: x}
}

// newErrorCached builds an *Error using the position cached for name by an
// earlier cacheErrorPos call. Every error kind reaching this path
// (quote-danger, unclosed-quote) is guaranteed to have cached a position
// before the terminal condition that calls this can fire.
func (s *state) newErrorCached(name string) *Error {
	pos := s.errorPosCache[name]
	return s.newErrorAt(name, pos.lineNo, pos.x)
}
