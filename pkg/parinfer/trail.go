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

// updateParenTrailBounds resets the trail to start just past the current
// character whenever that character is not whitespace-in-the-trail and not
// a close-paren: any such character terminates whatever trail preceded it.
func (s *state) updateParenTrailBounds() {
	line := s.lines[s.lineNo]
	var prevCh byte
	if s.x > 0 {
		prevCh = line[s.x-1]
	}
	ch := s.ch

	shouldReset := s.isInCode &&
		ch != "" &&
		!(len(ch) == 1 && isCloseParen(ch[0])) &&
		(ch != " " || prevCh == '\\') &&
		ch != "  "

	if !shouldReset {
		return
	}

	s.trail.lineNo = s.lineNo
	s.trail.startX = s.x + 1
	s.trail.endX = s.x + 1
	s.trail.openers = nil
	s.maxIndent = nil
}

// removeParenTrail strips the trail's close-parens from the line and
// restores their openers to the paren stack, in LIFO-correct order: pop
// openers off the end of trail.openers and push them back, so that
// structural state afterward is as if the trail had never been seen.
func (s *state) removeParenTrail() {
	startX, endX := s.trail.startX, s.trail.endX
	if startX == endX {
		return
	}

	for len(s.trail.openers) != 0 {
		o := s.trail.openers[len(s.trail.openers)-1]
		s.trail.openers = s.trail.openers[:len(s.trail.openers)-1]
		s.parenStack = append(s.parenStack, o)
	}

	s.removeWithinLine(s.lineNo, startX, endX)
}

// cleanParenTrail tidies the trail on lines other than the cursor's: close-
// parens are kept, interior spaces are dropped.
func (s *state) cleanParenTrail() {
	startX, endX := s.trail.startX, s.trail.endX
	if startX == endX || s.lineNo != s.trail.lineNo {
		return
	}

	line := s.lines[s.lineNo]
	var kept []byte
	spaceCount := 0
	for i := startX; i < endX; i++ {
		if isCloseParen(line[i]) {
			kept = append(kept, line[i])
		} else {
			spaceCount++
		}
	}

	if spaceCount > 0 {
		s.replaceWithinLine(s.lineNo, startX, endX, string(kept))
		s.trail.endX -= spaceCount
	}
}

// appendParenTrail migrates a close-paren that was written at the head of a
// subsequent line back onto the trailing region where it belongs.
func (s *state) appendParenTrail() {
	o := s.popOpener()
	closeCh := parenPairs[o.ch]

	mi := o.x
	s.maxIndent = &mi
	s.insertWithinLine(s.trail.lineNo, s.trail.endX, string(closeCh))
	s.trail.endX++
}

// finishNewParenTrail runs at end-of-line when the trail belongs to this line.
func (s *state) finishNewParenTrail() {
	switch s.mode {
	case ModeIndent:
		s.clampParenTrailToCursor()
		s.removeParenTrail()
	case ModeParen:
		if s.cursorLine == nil || *s.cursorLine != s.lineNo {
			s.cleanParenTrail()
		}
	}
}
