// Copyright 2025-2026 Parser Kit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import "github.com/rivo/uniseg"

// stringWidth computes the rendered width of s in terminal columns.
//
// Byte or rune counts misalign carets under CJK text and emoji, so widths
// are measured in extended grapheme clusters.
func stringWidth(s string) int {
	return uniseg.StringWidth(s)
}
