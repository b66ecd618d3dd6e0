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

import (
	"github.com/bytedance/gopkg/lang/mcache"
)

// minBufferSize is the smallest backing array Buffer ever mallocs,
// matching the padLength floor xbuf.XWriteBuffer and gridbuf.WriteBuffer
// apply before handing memory to mcache.
const minBufferSize = 256

// Buffer is the L0 growable output buffer: an append-only byte array
// with amortised-growth (double-or-requested) policy. It is the sole
// target of every encoder write, so encoders never index past the end
// of their backing array.
type Buffer struct {
	buf    []byte // backing array, length tracks appended bytes
	pooled bool   // whether buf came from mcache and must be Released
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Len returns the number of bytes appended so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Bytes returns the appended bytes. The slice is only valid until the
// next EnsureLength call that grows the buffer, or until Release.
func (b *Buffer) Bytes() []byte { return b.buf }

// EnsureLength grows the backing array, if necessary, so that it can
// hold at least n bytes, reallocating to max(n, 2*current capacity,
// minBufferSize).
// Existing bytes (up to the current length) are preserved.
func (b *Buffer) EnsureLength(n int) error {
	if n <= cap(b.buf) {
		return nil
	}
	newCap := 2 * cap(b.buf)
	if n > newCap {
		newCap = n
	}
	if newCap < minBufferSize {
		newCap = minBufferSize
	}
	fresh := mcache.Malloc(newCap)
	fresh = fresh[:len(b.buf)]
	copy(fresh, b.buf)
	if b.pooled {
		mcache.Free(b.buf[:cap(b.buf)])
	}
	b.buf = fresh
	b.pooled = true
	return nil
}

// Write copies data into the buffer starting at offset, growing the
// backing array first if needed, and extends the logical length to
// cover offset+len(data) if that is past the current length.
func (b *Buffer) Write(offset int, data []byte) error {
	end := offset + len(data)
	if err := b.EnsureLength(end); err != nil {
		return err
	}
	if end > len(b.buf) {
		b.buf = b.buf[:end]
	}
	copy(b.buf[offset:end], data)
	return nil
}

// Truncate sets the logical length to n, discarding any bytes past it
// without shrinking the backing array. n must not exceed the current
// length.
func (b *Buffer) Truncate(n int) {
	b.buf = b.buf[:n]
}

// Release returns the backing array to the memory pool. The Buffer
// must not be used afterward.
func (b *Buffer) Release() {
	if b.pooled {
		mcache.Free(b.buf[:cap(b.buf)])
	}
	b.buf = nil
	b.pooled = false
}
