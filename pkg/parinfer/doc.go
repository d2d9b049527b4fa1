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

// Package parinfer keeps the parenthesization of Lisp-family source text
// consistent with its indentation, and vice versa.
//
// IndentMode treats indentation as authoritative and rewrites trailing
// close-parens to match it. ParenMode treats parens as authoritative and
// rewrites indentation to match them. Both run a single left-to-right,
// top-to-bottom pass over the input and never look at Lisp semantics beyond
// parens, strings, comments and escapes.
//
// Column indexing matches Go's native string slicing: a column is a byte
// offset, not a rune or grapheme count. For ASCII source (the overwhelming
// common case for Lisp-family code) this agrees exactly with an
// implementation that counts Unicode code points. Multi-byte UTF-8 runes are
// walked one byte at a time, so on lines with non-ASCII text every column
// (error positions, cursor columns, and the opener columns that Indent Mode
// and Paren Mode compare against indentation) counts bytes, and indentation
// decisions can differ from a code-point count. Paren, quote, comment and
// escape detection is unaffected: every byte that takes part in it is ASCII.
package parinfer
