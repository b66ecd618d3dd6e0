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

// ForwardingEntry is a registration/unregistration request or
// announcement exchanged with a forwarder's management interface.
type ForwardingEntry struct {
	Action string // "" when absent

	Prefix *Name

	PublisherPublicKeyDigest Blob // nil when absent

	FaceID    uint64
	HasFaceID bool

	Flags    ForwardingFlags
	HasFlags bool

	FreshnessSeconds    uint64
	HasFreshnessSeconds bool
}

// EffectiveFlags returns fe.Flags if explicitly present, otherwise
// DefaultForwardingFlags.
func (fe *ForwardingEntry) EffectiveFlags() ForwardingFlags {
	if fe.HasFlags {
		return fe.Flags
	}
	return DefaultForwardingFlags
}

// Encode writes the ForwardingEntry element.
func (fe *ForwardingEntry) Encode(e *Encoder) error {
	if err := e.WriteElementStartDTag(DTagForwardingEntry); err != nil {
		return err
	}

	if err := e.WriteOptionalUDataDTagElement(DTagAction, fe.Action); err != nil {
		return err
	}

	prefix := fe.Prefix
	if prefix == nil {
		prefix = NewName()
	}
	if err := prefix.Encode(e); err != nil {
		return err
	}

	if err := e.WriteOptionalBlobDTagElement(DTagPublisherPublicKeyDigest, fe.PublisherPublicKeyDigest); err != nil {
		return err
	}

	if fe.HasFaceID {
		if err := e.WriteUnsignedDecimalIntDTagElement(DTagFaceID, fe.FaceID); err != nil {
			return err
		}
	}
	if fe.HasFlags {
		if err := e.WriteUnsignedDecimalIntDTagElement(DTagForwardingFlags, uint64(fe.Flags)); err != nil {
			return err
		}
	}
	if fe.HasFreshnessSeconds {
		if err := e.WriteUnsignedDecimalIntDTagElement(DTagFreshnessSeconds, fe.FreshnessSeconds); err != nil {
			return err
		}
	}

	return e.WriteElementClose()
}

// DecodeForwardingEntry decodes a ForwardingEntry element.
func DecodeForwardingEntry(d *Decoder) (*ForwardingEntry, error) {
	if err := d.ReadElementStartDTag(DTagForwardingEntry); err != nil {
		return nil, err
	}

	fe := &ForwardingEntry{}
	var err error
	fe.Action, _, err = d.ReadOptionalUDataDTagElement(DTagAction)
	if err != nil {
		return nil, err
	}

	fe.Prefix, err = DecodeName(d)
	if err != nil {
		return nil, err
	}

	fe.PublisherPublicKeyDigest, _, err = d.ReadOptionalBlobDTagElement(DTagPublisherPublicKeyDigest)
	if err != nil {
		return nil, err
	}

	fe.FaceID, fe.HasFaceID, err = d.ReadOptionalUnsignedDecimalIntDTagElement(DTagFaceID)
	if err != nil {
		return nil, err
	}

	var flags uint64
	flags, fe.HasFlags, err = d.ReadOptionalUnsignedDecimalIntDTagElement(DTagForwardingFlags)
	if err != nil {
		return nil, err
	}
	fe.Flags = ForwardingFlags(flags)

	fe.FreshnessSeconds, fe.HasFreshnessSeconds, err = d.ReadOptionalUnsignedDecimalIntDTagElement(DTagFreshnessSeconds)
	if err != nil {
		return nil, err
	}

	if err := d.ReadElementClose(); err != nil {
		return nil, err
	}
	return fe, nil
}
