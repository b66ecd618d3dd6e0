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

// Package bxtransport adapts the Binary-XML framer to a bufiox.Reader
// backed by an io.Reader, for callers reading elements off a
// connection one at a time rather than feeding raw chunks to an
// ElementReader themselves.
package bxtransport

import (
	"errors"
	"io"

	"github.com/bytedance/gopkg/lang/mcache"

	"github.com/named-data/ndn-binaryxml/bufiox"
	"github.com/named-data/ndn-binaryxml/protocol/binaryxml"
)

const initialPeekSize = 512

// ElementReader reads one complete Binary-XML element at a time off
// an underlying bufiox.Reader, using growing Peek calls so it never
// consumes bytes belonging to the next element.
type ElementReader struct {
	r bufiox.Reader
}

// NewElementReader wraps rd in a buffered bufiox.Reader and returns an
// ElementReader over it.
func NewElementReader(rd io.Reader) *ElementReader {
	return &ElementReader{r: bufiox.NewDefaultReader(rd)}
}

// NewElementReaderFromBufiox returns an ElementReader over an
// already-constructed bufiox.Reader (for example one shared with other
// protocol traffic on the same connection).
func NewElementReaderFromBufiox(r bufiox.Reader) *ElementReader {
	return &ElementReader{r: r}
}

// ReadElement blocks until one complete element has arrived and
// returns an owned copy of its bytes. io.EOF (or io.ErrUnexpectedEOF
// for a truncated element) propagates from the underlying reader.
func (er *ElementReader) ReadElement() ([]byte, error) {
	sd := binaryxml.NewStructureDecoder()
	peeked := 0
	size := initialPeekSize

	for {
		buf, peekErr := er.r.Peek(size)
		if peekErr != nil && !errors.Is(peekErr, io.EOF) && !errors.Is(peekErr, io.ErrUnexpectedEOF) {
			return nil, peekErr
		}
		if len(buf) <= peeked {
			if peekErr != nil {
				return nil, peekErr
			}
			return nil, io.ErrUnexpectedEOF
		}

		chunkStart := peeked
		sd.Seek(0)
		gotEnd, err := sd.FindElementEnd(buf[chunkStart:])
		if err != nil {
			return nil, err
		}
		if gotEnd {
			total := chunkStart + sd.Offset()
			raw, err := er.r.Next(total)
			if err != nil {
				return nil, err
			}
			element := mcache.Malloc(total)
			copy(element, raw)
			if err := er.r.Release(nil); err != nil {
				return nil, err
			}
			return element, nil
		}

		peeked = len(buf)
		if peekErr != nil {
			return nil, peekErr
		}
		size = peeked * 2
	}
}
