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

// insertWithinString, replaceWithinString and removeWithinString are pure
// edits over a string and byte offsets. The offsets are clamped into
// [0, len(s)] rather than validated: the driver deliberately walks one
// synthetic position past the last real character of a line (see the
// zero-width newline in driver.go), and an edit landing there must be a
// harmless no-op rather than a panic.

func clampOffset(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func insertWithinString(s string, idx int, t string) string {
	idx = clampOffset(idx, len(s))
	return s[:idx] + t + s[idx:]
}

func replaceWithinString(s string, start, end int, t string) string {
	n := len(s)
	start = clampOffset(start, n)
	end = clampOffset(end, n)
	if end < start {
		end = start
	}
	return s[:start] + t + s[end:]
}

func removeWithinString(s string, start, end int) string {
	return replaceWithinString(s, start, end, "")
}

// insertWithinLine, replaceWithinLine and removeWithinLine apply the above
// primitives to s.lines[lineNo], the only buffer mutated during a run.

func (s *state) insertWithinLine(lineNo, idx int, t string) {
	s.lines[lineNo] = insertWithinString(s.lines[lineNo], idx, t)
}

func (s *state) replaceWithinLine(lineNo, start, end int, t string) {
	s.lines[lineNo] = replaceWithinString(s.lines[lineNo], start, end, t)
}

func (s *state) removeWithinLine(lineNo, start, end int) {
	s.lines[lineNo] = removeWithinString(s.lines[lineNo], start, end)
}
