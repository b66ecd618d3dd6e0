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

// This file is the L6 façade: one-shot encode/decode entry points over
// a complete in-memory wire buffer, built from the L1-L5 codecs above.
package binaryxml

// EncodeInterestWire serializes in to its Binary-XML wire form.
func EncodeInterestWire(in *Interest) ([]byte, error) {
	e := NewEncoder()
	if err := in.Encode(e); err != nil {
		return nil, err
	}
	return e.Buf.Bytes(), nil
}

// DecodeInterestWire parses a single Interest element from wire.
func DecodeInterestWire(wire []byte) (*Interest, error) {
	return DecodeInterest(NewDecoder(wire))
}

// EncodeDataWire serializes d to its Binary-XML wire form and returns
// the byte range within it that must be hashed to produce or verify
// the signature.
func EncodeDataWire(d *Data) (wire []byte, signedBegin, signedEnd int, err error) {
	e := NewEncoder()
	signedBegin, signedEnd, err = EncodeData(e, d)
	if err != nil {
		return nil, 0, 0, err
	}
	return e.Buf.Bytes(), signedBegin, signedEnd, nil
}

// DecodeDataWire parses a single Data (ContentObject) element from
// wire and returns the same signed-portion byte range EncodeDataWire
// produced.
func DecodeDataWire(wire []byte) (data *Data, signedBegin, signedEnd int, err error) {
	return DecodeData(NewDecoder(wire))
}

// EncodeForwardingEntryWire serializes fe to its Binary-XML wire form.
func EncodeForwardingEntryWire(fe *ForwardingEntry) ([]byte, error) {
	e := NewEncoder()
	if err := fe.Encode(e); err != nil {
		return nil, err
	}
	return e.Buf.Bytes(), nil
}

// DecodeForwardingEntryWire parses a single ForwardingEntry element
// from wire.
func DecodeForwardingEntryWire(wire []byte) (*ForwardingEntry, error) {
	return DecodeForwardingEntry(NewDecoder(wire))
}
