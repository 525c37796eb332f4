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


// Package search scores, ranks, and filters notes against free-text
// queries.
//
// The Searcher type combines:
//   - Field-weighted token matching (title, tags, content)
//   - TF-IDF relevance over the vector-space index
//   - A linear recency boost for recently edited notes
//   - Cosine-similarity "more like this" retrieval
//   - Prefix autocompletion over titles and tags
//   - A fuzzy substring/edit-distance fallback for queries the tokenizer
//     cannot serve
//
// Every entry point is total: degenerate queries, missing notes, and
// misconfigured options produce empty or clamped results, never errors.
package search
