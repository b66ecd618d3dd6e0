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

// ElementListener receives one complete Binary-XML element at a time.
// The slice passed to OnReceivedElement is only valid for the duration
// of the call; implementations that need to retain it must copy.
type ElementListener interface {
	OnReceivedElement(element []byte) error
}

// ElementListenerFunc adapts a function to an ElementListener.
type ElementListenerFunc func(element []byte) error

// OnReceivedElement calls f.
func (f ElementListenerFunc) OnReceivedElement(element []byte) error { return f(element) }

// ElementReader is the streaming framer: feed it arbitrarily-chunked
// bytes off a connection via OnReceivedData and it reassembles and
// reports each complete top-level element to listener, carrying a
// partial element over from one call to the next in partialData.
type ElementReader struct {
	listener ElementListener
	decoder  *StructureDecoder

	usePartialData  bool
	partialData     []byte
	partialDataLen  int
}

// NewElementReader returns an ElementReader that reports complete
// elements to listener.
func NewElementReader(listener ElementListener) *ElementReader {
	return &ElementReader{
		listener: listener,
		decoder:  NewStructureDecoder(),
	}
}

// OnReceivedData processes a newly-received chunk, which may contain
// zero, one, or several complete elements, plus a trailing partial
// one. Each complete element is reported to the listener before the
// next is scanned; an error either from framing or from the listener
// aborts processing of this chunk.
func (r *ElementReader) OnReceivedData(data []byte) error {
	for {
		r.decoder.Seek(0)
		gotEnd, err := r.decoder.FindElementEnd(data)
		if err != nil {
			return err
		}

		if !gotEnd {
			r.appendPartial(data, len(data))
			return nil
		}

		n := r.decoder.Offset()
		if r.usePartialData {
			r.appendPartial(data, n)
			if err := r.listener.OnReceivedElement(r.partialData[:r.partialDataLen]); err != nil {
				return err
			}
			r.usePartialData = false
		} else {
			if err := r.listener.OnReceivedElement(data[:n]); err != nil {
				return err
			}
		}

		data = data[n:]
		r.decoder.Reset()
		if len(data) == 0 {
			return nil
		}
		// Loop back and decode the next element in this chunk.
	}
}

// appendPartial appends the first n bytes of data to the carried-over
// buffer, growing it as needed.
func (r *ElementReader) appendPartial(data []byte, n int) {
	if !r.usePartialData {
		r.usePartialData = true
		r.partialDataLen = 0
	}
	need := r.partialDataLen + n
	if need > cap(r.partialData) {
		fresh := make([]byte, need, 2*need)
		copy(fresh, r.partialData[:r.partialDataLen])
		r.partialData = fresh
	} else if need > len(r.partialData) {
		r.partialData = r.partialData[:need]
	}
	copy(r.partialData[r.partialDataLen:need], data[:n])
	r.partialDataLen = need
}
