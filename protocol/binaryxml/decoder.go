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

// structureDecoderState is the READ_HEADER_OR_CLOSE / READ_BYTES pair
// the byte-granular scanner alternates between.
type structureDecoderState int8

const (
	stateReadHeaderOrClose structureDecoderState = iota
	stateReadBytes
)

// headerBufferSize is large enough to hold an encoded header carrying
// a type and a 64-bit value.
const headerBufferSize = 10

// StructureDecoder finds the end of one top-level Binary-XML element
// by scanning it a byte at a time, without needing the whole element
// to be present in the input up front. Call Seek(0) and then
// FindElementEnd with each newly-received chunk in turn (chunks need
// not overlap); it resumes exactly where the previous call left off —
// nesting level, in-progress header bytes, and remaining content
// length all live in the decoder, not in the chunk — and reports
// whether the element is complete.
//
// This is a direct state-machine port, not a generator or goroutine:
// every field that would otherwise live on a paused call stack is a
// struct field instead, so a StructureDecoder can be suspended and
// resumed across any number of partial reads.
type StructureDecoder struct {
	gotElementEnd bool
	offset        int
	level         int
	state         structureDecoderState

	headerLength    int
	useHeaderBuffer bool
	headerBuffer    [headerBufferSize]byte

	nBytesToRead int
}

// NewStructureDecoder returns a StructureDecoder ready to scan from
// the start of an element.
func NewStructureDecoder() *StructureDecoder {
	return &StructureDecoder{}
}

// Reset returns the decoder to its initial state, ready to scan the
// next element. Call it after FindElementEnd reports completion.
func (s *StructureDecoder) Reset() {
	*s = StructureDecoder{}
}

func (s *StructureDecoder) startHeader() {
	s.headerLength = 0
	s.useHeaderBuffer = false
	s.state = stateReadHeaderOrClose
}

// Seek sets the scan position within the next input chunk passed to
// FindElementEnd. The element reader calls Seek(0) before handing over
// each newly-received chunk.
func (s *StructureDecoder) Seek(offset int) { s.offset = offset }

// FindElementEnd scans input — the bytes newly received since the last
// call, not the whole element accumulated so far — looking for the
// CLOSE that matches the element's opening tag. It returns true once
// that CLOSE has been found; s.Offset() is then the length, within
// this chunk, of the bytes belonging to the now-complete element. It
// returns false when the chunk is exhausted before the element ends,
// meaning the caller should pass the next chunk (after calling Seek(0))
// once more is available.
func (s *StructureDecoder) FindElementEnd(input []byte) (bool, error) {
	if s.gotElementEnd {
		return true, nil
	}

	inputLength := len(input)
	dec := NewDecoder(input)

	for {
		if s.offset >= inputLength {
			return false, nil
		}

		switch s.state {
		case stateReadHeaderOrClose:
			if s.headerLength == 0 && input[s.offset] == CLOSE {
				s.offset++
				s.level--
				if s.level == 0 {
					s.gotElementEnd = true
					return true, nil
				}
				if s.level < 0 {
					return false, ErrUnexpectedClose
				}
				s.startHeader()
				continue
			}

			startingHeaderLength := s.headerLength
			for {
				if s.offset >= inputLength {
					if s.headerLength > headerBufferSize {
						return false, ErrHeaderTooLong
					}
					nNewBytes := s.headerLength - startingHeaderLength
					copy(s.headerBuffer[startingHeaderLength:], input[s.offset-nNewBytes:s.offset])
					s.useHeaderBuffer = true
					return false, nil
				}
				headerByte := input[s.offset]
				s.offset++
				s.headerLength++
				if headerByte&ttFinal != 0 {
					break
				}
			}

			var typ Type
			var value uint64
			var err error
			if s.useHeaderBuffer {
				if s.headerLength > headerBufferSize {
					return false, ErrHeaderTooLong
				}
				nNewBytes := s.headerLength - startingHeaderLength
				copy(s.headerBuffer[startingHeaderLength:], input[s.offset-nNewBytes:s.offset])
				bufDec := NewDecoder(s.headerBuffer[:s.headerLength])
				typ, value, err = bufDec.DecodeTypeAndValue()
			} else {
				dec.Offset = s.offset - s.headerLength
				typ, value, err = dec.DecodeTypeAndValue()
			}
			if err != nil {
				return false, err
			}

			switch typ {
			case DATTR:
				s.startHeader()
			case DTAG, EXT:
				s.level++
				s.startHeader()
			case TAG, ATTR:
				if typ == TAG {
					s.level++
				}
				s.nBytesToRead = int(value) + 1
				s.state = stateReadBytes
			case BLOB, UDATA:
				s.nBytesToRead = int(value)
				s.state = stateReadBytes
			default:
				return false, ErrUnrecognizedHeaderType
			}

		case stateReadBytes:
			nRemainingBytes := inputLength - s.offset
			if nRemainingBytes < s.nBytesToRead {
				s.offset += nRemainingBytes
				s.nBytesToRead -= nRemainingBytes
				return false, nil
			}
			s.offset += s.nBytesToRead
			s.startHeader()

		default:
			return false, ErrUnrecognizedState
		}
	}
}

// Offset is the scan position within the chunk most recently passed to
// FindElementEnd, counted from the last Seek.
func (s *StructureDecoder) Offset() int { return s.offset }
