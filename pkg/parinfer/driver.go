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

// processChar walks one character through lexical classification, the
// indent handler and the paren trail tracker, then commits it (possibly
// rewritten) to the output line.
func (s *state) processChar(ch string) error {
	origCh := ch
	s.ch = ch
	s.skipChar = false

	if s.mode == ModeParen {
		s.handleCursorDelta()
	}

	if s.trackingIndent && ch != " " && ch != "\t" {
		if err := s.onIndent(); err != nil {
			return err
		}
	}

	if s.skipChar {
		s.ch = ""
	} else {
		if err := s.onChar(); err != nil {
			return err
		}
		s.updateParenTrailBounds()
	}

	s.commitChar(origCh)
	return nil
}

func (s *state) commitChar(origCh string) {
	if origCh != s.ch {
		s.replaceWithinLine(s.lineNo, s.x, s.x+len(origCh), s.ch)
	}
	s.x += len(s.ch)
}

// processLine appends line to the output buffer, resets per-line tracking,
// streams line+"\n" through processChar one byte at a time, and finishes
// the paren trail if it belongs to this line.
func (s *state) processLine(line string) error {
	s.initLine(line)

	switch s.mode {
	case ModeIndent:
		s.trackingIndent = len(s.parenStack) != 0 && !s.isInStr
	case ModeParen:
		s.trackingIndent = !s.isInStr
	}

	chars := line + "\n"
	for i := 0; i < len(chars); i++ {
		if err := s.processChar(chars[i : i+1]); err != nil {
			return err
		}
	}

	if s.lineNo == s.trail.lineNo {
		s.finishNewParenTrail()
	}
	return nil
}

// finalizeResult runs once after every line has been processed.
func (s *state) finalizeResult() error {
	if s.quoteDanger {
		return s.newErrorCached(ErrQuoteDanger)
	}
	if s.isInStr {
		return s.newErrorCached(ErrUnclosedQuote)
	}
	if len(s.parenStack) != 0 {
		switch s.mode {
		case ModeParen:
			top, _ := s.peekOpener()
			return s.newErrorAt(ErrUnclosedParen, top.lineNo, top.x)
		case ModeIndent:
			s.correctParenTrail(0)
		}
	}

	s.success = true
	return nil
}

// processText owns one run end to end: it walks origLines through
// processLine, finalizes, and projects the terminal state into a Result. A
// failure anywhere aborts the run and the result carries origText verbatim.
func processText(text string, opts Options, mode Mode) Result {
	s := newState(text, opts, mode)

	var runErr error
	for _, line := range s.origLines {
		if err := s.processLine(line); err != nil {
			runErr = err
			break
		}
	}
	if runErr == nil {
		runErr = s.finalizeResult()
	}

	if runErr != nil {
		perr, ok := runErr.(*Error)
		if !ok {
			perr = &Error{Name: ErrUnhandled, Message: runErr.Error()}
		}
		return Result{Text: s.origText, Success: false, Error: perr}
	}

	return s.publicResult()
}
