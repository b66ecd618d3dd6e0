// Copyright 2024 CloudWeGo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bufiox is a minimal buffered byte source for readers that grow
// a speculative lookahead as they go, the way a Binary-XML element
// reader does while it re-peeks a stream with an ever-larger guess at
// the element's total size until the whole element has arrived.
package bufiox

// Reader is a buffered byte source built around peek-then-consume
// framing: a caller re-Peeks an increasing byte count until a full
// frame is visible, then Next()s past it.
type Reader interface {
	// Next reads the next n bytes sequentially and returns a slice `p` of length `n`,
	// otherwise returns an error if it is unable to read a buffer of n bytes.
	// The returned `p` can be a shallow copy of the original buffer.
	// Must ensure that the data in `p` is not modified before calling Release.
	//
	// Callers cannot use the returned data after calling Release.
	Next(n int) (p []byte, err error)

	// Peek behaves the same as Next, except that it doesn't advance the reader.
	// Repeated Peek calls with a growing n are how a caller extends its
	// lookahead without losing what it already saw.
	//
	// Callers cannot use the returned data after calling Release.
	Peek(n int) (buf []byte, err error)

	// Release frees the buffer. After release, data returned by Next/Peek is invalid.
	// Param e is used when the buffer release depends on error.
	Release(e error) (err error)
}
