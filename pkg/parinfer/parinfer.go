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

// IndentMode treats indentation as authoritative and adjusts trailing
// close-parens on each line to match the indent structure.
func IndentMode(text string, opts Options) Result {
	return processText(text, opts, ModeIndent)
}

// ParenMode treats parens as authoritative and adjusts indentation to match
// the paren structure.
func ParenMode(text string, opts Options) Result {
	return processText(text, opts, ModeParen)
}
