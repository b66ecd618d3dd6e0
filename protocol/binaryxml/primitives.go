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
	"time"

	"github.com/named-data/ndn-binaryxml/unsafex"
)

// writeElement writes a (typ, len) header followed by the raw bytes of
// value, with no enclosing DTag.
func (e *Encoder) writeElement(typ Type, value []byte) error {
	if err := e.WriteTypeAndValue(typ, uint64(len(value))); err != nil {
		return err
	}
	return e.writeArray(value)
}

// WriteBlobDTagElement writes <tag>BLOB(value)</tag>.
func (e *Encoder) WriteBlobDTagElement(tag DTag, value []byte) error {
	if err := e.WriteElementStartDTag(tag); err != nil {
		return err
	}
	if err := e.writeElement(BLOB, value); err != nil {
		return err
	}
	return e.WriteElementClose()
}

// WriteOptionalBlobDTagElement writes <tag>BLOB(value)</tag> only if
// value is non-nil.
func (e *Encoder) WriteOptionalBlobDTagElement(tag DTag, value []byte) error {
	if value == nil {
		return nil
	}
	return e.WriteBlobDTagElement(tag, value)
}

// WriteUDataDTagElement writes <tag>UDATA(value)</tag>.
func (e *Encoder) WriteUDataDTagElement(tag DTag, value string) error {
	if err := e.WriteElementStartDTag(tag); err != nil {
		return err
	}
	if err := e.writeElement(UDATA, []byte(value)); err != nil {
		return err
	}
	return e.WriteElementClose()
}

// WriteOptionalUDataDTagElement writes <tag>UDATA(value)</tag> only if
// value is non-empty.
func (e *Encoder) WriteOptionalUDataDTagElement(tag DTag, value string) error {
	if value == "" {
		return nil
	}
	return e.WriteUDataDTagElement(tag, value)
}

// WriteUnsignedDecimalIntDTagElement writes <tag>UDATA(decimal ASCII
// of value)</tag>. The digits are produced least-significant-first
// directly into the output buffer and then reversed in place by
// reverseBufferAndInsertHeader, avoiding a second scratch buffer.
func (e *Encoder) WriteUnsignedDecimalIntDTagElement(tag DTag, value uint64) error {
	if err := e.WriteElementStartDTag(tag); err != nil {
		return err
	}
	start := e.Offset
	if value == 0 {
		if err := e.writeArray([]byte{'0'}); err != nil {
			return err
		}
	} else {
		v := value
		for v > 0 {
			digit := byte('0' + v%10)
			if err := e.writeArray([]byte{digit}); err != nil {
				return err
			}
			v /= 10
		}
	}
	if err := e.reverseBufferAndInsertHeader(start, UDATA); err != nil {
		return err
	}
	return e.WriteElementClose()
}

// timeUnitsPerSecond is the fixed-point scale NDN timestamps use: a
// big-endian integer counting 1/4096ths of a second, per ndn-cpp's
// binary-xml-encoder.c encodeTimeMillisecondsDTagElement.
const timeUnitsPerSecond = 4096

// WriteTimestampDTagElement writes <tag>BLOB(fixed-point time)</tag>
// encoding t as a big-endian count of 1/4096-second ticks since the
// Unix epoch, trimmed to its minimal byte length.
func (e *Encoder) WriteTimestampDTagElement(tag DTag, t time.Time) error {
	millis := t.UnixMilli()
	ticks := uint64((millis*timeUnitsPerSecond + 500) / 1000)

	var tmp [8]byte
	n := 0
	for i := 7; i >= 0; i-- {
		b := byte(ticks >> (8 * uint(i)))
		if n == 0 && b == 0 && i != 0 {
			continue
		}
		tmp[n] = b
		n++
	}
	if n == 0 {
		tmp[0] = 0
		n = 1
	}
	return e.WriteBlobDTagElement(tag, tmp[:n])
}

// ReadBlob decodes a BLOB element at the current offset and returns it
// borrowing the decoder's input.
func (d *Decoder) ReadBlob() (Blob, error) {
	typ, length, err := d.DecodeTypeAndValue()
	if err != nil {
		return nil, err
	}
	if typ != BLOB {
		return nil, ErrUnrecognizedHeaderType
	}
	end := d.Offset + int(length)
	if end > len(d.Input) {
		return nil, ErrPastEndOfInput
	}
	b := Blob(d.Input[d.Offset:end])
	d.Offset = end
	return b, nil
}

// ReadUData decodes a UDATA element at the current offset.
func (d *Decoder) ReadUData() (string, error) {
	typ, length, err := d.DecodeTypeAndValue()
	if err != nil {
		return "", err
	}
	if typ != UDATA {
		return "", ErrNotUData
	}
	end := d.Offset + int(length)
	if end > len(d.Input) {
		return "", ErrPastEndOfInput
	}
	s := unsafex.BinaryToString(d.Input[d.Offset:end])
	d.Offset = end
	return s, nil
}

// ReadBlobDTagElement reads <tag>BLOB(...)</tag>.
func (d *Decoder) ReadBlobDTagElement(tag DTag) (Blob, error) {
	if err := d.ReadElementStartDTag(tag); err != nil {
		return nil, err
	}
	b, err := d.ReadBlob()
	if err != nil {
		return nil, err
	}
	if err := d.ReadElementClose(); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadBlobDTagElementAllowNull reads <tag>BLOB(...)</tag>, but also
// accepts <tag></tag> with no BLOB header at all, returning a nil
// Blob in that case instead of failing.
func (d *Decoder) ReadBlobDTagElementAllowNull(tag DTag) (Blob, error) {
	if err := d.ReadElementStartDTag(tag); err != nil {
		return nil, err
	}
	if d.Offset >= len(d.Input) {
		return nil, ErrPastEndOfInput
	}
	if d.unsafeGetOctet() == CLOSE {
		d.Offset++
		return nil, nil
	}
	b, err := d.ReadBlob()
	if err != nil {
		return nil, err
	}
	if err := d.ReadElementClose(); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadOptionalBlobDTagElement reads <tag>BLOB(...)</tag> only if the
// next element's tag matches, reporting false and leaving the offset
// untouched otherwise.
func (d *Decoder) ReadOptionalBlobDTagElement(tag DTag) (Blob, bool, error) {
	ok, err := d.PeekDTag(tag)
	if err != nil || !ok {
		return nil, false, err
	}
	b, err := d.ReadBlobDTagElement(tag)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// ReadUDataDTagElement reads <tag>UDATA(...)</tag>.
func (d *Decoder) ReadUDataDTagElement(tag DTag) (string, error) {
	if err := d.ReadElementStartDTag(tag); err != nil {
		return "", err
	}
	s, err := d.ReadUData()
	if err != nil {
		return "", err
	}
	if err := d.ReadElementClose(); err != nil {
		return "", err
	}
	return s, nil
}

// ReadOptionalUDataDTagElement reads <tag>UDATA(...)</tag> only if the
// next element's tag matches.
func (d *Decoder) ReadOptionalUDataDTagElement(tag DTag) (string, bool, error) {
	ok, err := d.PeekDTag(tag)
	if err != nil || !ok {
		return "", false, err
	}
	s, err := d.ReadUDataDTagElement(tag)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// ReadUnsignedDecimalIntDTagElement reads <tag>UDATA(decimal ASCII)</tag>
// and parses it as an unsigned integer.
func (d *Decoder) ReadUnsignedDecimalIntDTagElement(tag DTag) (uint64, error) {
	s, err := d.ReadUDataDTagElement(tag)
	if err != nil {
		return 0, err
	}
	if len(s) == 0 {
		return 0, ErrNotDigit
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ErrNotDigit
		}
		v = v*10 + uint64(c-'0')
	}
	return v, nil
}

// ReadOptionalUnsignedDecimalIntDTagElement reads the decimal integer
// element at tag only if present.
func (d *Decoder) ReadOptionalUnsignedDecimalIntDTagElement(tag DTag) (uint64, bool, error) {
	ok, err := d.PeekDTag(tag)
	if err != nil || !ok {
		return 0, false, err
	}
	v, err := d.ReadUnsignedDecimalIntDTagElement(tag)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// ReadTimestampDTagElement reads <tag>BLOB(fixed-point time)</tag> and
// decodes it to a time.Time at millisecond resolution.
func (d *Decoder) ReadTimestampDTagElement(tag DTag) (time.Time, error) {
	b, err := d.ReadBlobDTagElement(tag)
	if err != nil {
		return time.Time{}, err
	}
	var ticks uint64
	for _, c := range b {
		ticks = (ticks << 8) | uint64(c)
	}
	millis := int64((ticks*1000 + timeUnitsPerSecond/2) / timeUnitsPerSecond)
	return time.UnixMilli(millis).UTC(), nil
}

// ReadOptionalTimestampDTagElement reads the timestamp element at tag
// only if present.
func (d *Decoder) ReadOptionalTimestampDTagElement(tag DTag) (time.Time, bool, error) {
	ok, err := d.PeekDTag(tag)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	t, err := d.ReadTimestampDTagElement(tag)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
