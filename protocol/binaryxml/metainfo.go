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

import "time"

// MetaInfo carries the non-signature, non-content metadata of a Data
// packet: its timestamp, content type, freshness, and final-block
// marker.
type MetaInfo struct {
	Timestamp    time.Time
	HasTimestamp bool

	Type ContentType

	FreshnessSeconds    uint64
	HasFreshnessSeconds bool

	FinalBlockID Blob // nil when absent
}

func reverseContentTypeSentinel(want [3]byte) (ContentType, bool) {
	for t, bytes := range contentTypeSentinels {
		if bytes == want {
			return t, true
		}
	}
	return 0, false
}

// encodeType writes the Type element, omitting it entirely for
// ContentTypeDATA (the wire default).
func (m *MetaInfo) encodeType(e *Encoder) error {
	if m.Type == ContentTypeDATA {
		return nil
	}
	bytes, ok := contentTypeSentinels[m.Type]
	if !ok {
		return ErrUnrecognizedContentType
	}
	return e.WriteBlobDTagElement(DTagType, bytes[:])
}

// decodeType reads the Type element if present and resolves it to a
// ContentType, defaulting to ContentTypeDATA when absent.
func decodeType(d *Decoder) (ContentType, error) {
	b, ok, err := d.ReadOptionalBlobDTagElement(DTagType)
	if err != nil {
		return 0, err
	}
	if !ok || len(b) == 0 {
		return ContentTypeDATA, nil
	}
	if len(b) != 3 {
		return 0, ErrUnrecognizedContentType
	}
	t, ok := reverseContentTypeSentinel([3]byte{b[0], b[1], b[2]})
	if !ok {
		return 0, ErrUnrecognizedContentType
	}
	return t, nil
}
