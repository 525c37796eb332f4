// Copyright 2025 Poiesic Systems
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


// Package tokenizer provides language-aware tokenization for mixed
// Japanese/English note content.
//
// Text dominated by CJK characters is segmented with a morphological
// analyzer, since word-boundary-free scripts cannot be split on whitespace.
// Latin runs are split on non-letter boundaries and lower-cased. CJK bigrams
// are emitted alongside segmented words to improve recall on compound words
// and terms the analyzer's dictionary does not know.
//
// Tokenization is total: it never fails, and degenerate input yields an
// empty token list.
package tokenizer
