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

// onChar is the lexical classifier entry point: it reacts to the current
// s.ch, possibly rewriting it, and keeps isInCode/isInStr/isInComment
// mutually consistent. Prefer a plain switch over a dispatch map or
// interface-based visitor here; the character set is small and fixed.
func (s *state) onChar() error {
	var err error
	if s.isEscaping {
		err = s.afterBackslash()
	} else {
		err = s.dispatchChar()
	}
	s.isInCode = !s.isInComment && !s.isInStr
	return err
}

func (s *state) dispatchChar() error {
	switch s.ch {
	case "(", "[", "{":
		s.onOpenParen()
	case ")", "]", "}":
		return s.onCloseParen()
	case "\"":
		s.onQuote()
	case ";":
		s.onSemicolon()
	case "\\":
		s.onBackslash()
	case "\t":
		s.onTab()
	case "\n":
		s.onNewLine()
	}
	return nil
}

func (s *state) onOpenParen() {
	if s.isInCode {
		s.pushOpener(s.ch[0])
	}
}

func (s *state) onCloseParen() error {
	if !s.isInCode {
		return nil
	}
	if isValidCloseParen(s.parenStack, s.ch[0]) {
		s.onMatchedCloseParen()
	} else {
		s.onUnmatchedCloseParen()
	}
	return nil
}

// onMatchedCloseParen extends the paren trail rightward to include this
// close-paren and pops its opener off the stack.
func (s *state) onMatchedCloseParen() {
	o, _ := s.peekOpener()
	s.trail.endX = s.x + 1
	s.trail.openers = append(s.trail.openers, o)
	mi := o.x
	s.maxIndent = &mi
	s.popOpener()
}

// onUnmatchedCloseParen erases the character from the output; an unmatched
// close-paren is a recoverable structural mismatch, not an error.
func (s *state) onUnmatchedCloseParen() {
	s.ch = ""
}

func (s *state) onQuote() {
	switch {
	case s.isInStr:
		s.isInStr = false
	case s.isInComment:
		s.quoteDanger = !s.quoteDanger
		if s.quoteDanger {
			s.cacheErrorPos(ErrQuoteDanger, s.lineNo, s.x)
		}
	default:
		s.isInStr = true
		s.cacheErrorPos(ErrUnclosedQuote, s.lineNo, s.x)
	}
}

func (s *state) onSemicolon() {
	if s.isInCode {
		s.isInComment = true
		x := s.x
		s.commentX = &x
	}
}

func (s *state) onBackslash() {
	s.isEscaping = true
}

func (s *state) onTab() {
	if s.isInCode {
		s.ch = "  "
	}
}

func (s *state) onNewLine() {
	s.isInComment = false
	s.ch = ""
}

// afterBackslash consumes the character following a backslash as the
// escaped byte, exactly once.
func (s *state) afterBackslash() error {
	s.isEscaping = false

	if s.ch == "\n" {
		if s.isInCode {
			return s.newErrorAt(ErrEOLBackslash, s.lineNo, s.x-1)
		}
		s.onNewLine()
	}
	return nil
}
