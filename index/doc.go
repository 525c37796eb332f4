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


// Package index builds the vector-space model over a note corpus.
//
// A Builder turns a snapshot of notes into an immutable Index: one term
// vector per note plus corpus-wide document-frequency and IDF tables. Builds
// are always full rebuilds constructed off to the side; the caller swaps the
// finished Index in atomically, so no reader ever observes a half-built
// index. Per-note vectorization can optionally run on a worker pool for
// large corpora.
package index
