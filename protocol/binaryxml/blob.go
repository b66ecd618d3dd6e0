/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package binaryxml

// Blob is a byte range. When returned by a decoder it borrows from the
// caller-supplied input buffer and is only valid for as long as that
// buffer lives; when built for the encoder it is an owned copy. The
// API surface (decoder vs. constructor) is what distinguishes the two,
// not the type itself.
type Blob []byte

// Empty reports whether the blob has zero length (nil or not).
func (b Blob) Empty() bool { return len(b) == 0 }

// Clone returns an owned copy of b, safe to keep after the source
// buffer is mutated or released.
func (b Blob) Clone() Blob {
	if b == nil {
		return nil
	}
	out := make(Blob, len(b))
	copy(out, b)
	return out
}

// Equal reports whether two blobs have the same bytes.
func (b Blob) Equal(o Blob) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

// Compare orders two blobs by (length, then lexicographic bytes), the
// ordering spec.md section 3 defines for Exclude matching.
func (b Blob) Compare(o Blob) int {
	if len(b) != len(o) {
		if len(b) < len(o) {
			return -1
		}
		return 1
	}
	for i := range b {
		if b[i] != o[i] {
			if b[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
