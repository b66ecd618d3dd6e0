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

// Package ndnhash computes a stable hash over a Name's components,
// suitable for keying a content store or PIT table. Unlike an
// in-process map key, this value may be logged or compared across
// processes, so it is plain byte-at-a-time FNV-1a rather than the
// pointer-width-dependent trick a pure in-memory hash can use.
package ndnhash

const (
	offset64 = uint64(14695981039346656037)
	prime64  = uint64(1099511628211)
)

// Components hashes an ordered list of raw component byte slices,
// folding in each component's length so that e.g. ["ab","c"] and
// ["a","bc"] never collide.
func Components(components [][]byte) uint64 {
	h := offset64
	for _, c := range components {
		h = mix(h, uint64(len(c)))
		for _, b := range c {
			h ^= uint64(b)
			h *= prime64
		}
	}
	return h
}

func mix(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= v & 0xFF
		h *= prime64
		v >>= 8
	}
	return h
}
