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

// Signature carries the cryptographic signature over a Data packet's
// signed portion, plus the locator identifying the signing key.
type Signature struct {
	DigestAlgorithm string // empty when absent (defaults to the implicit SHA-256)
	Witness         Blob   // nil when absent
	Signature       Blob   // required

	PublisherPublicKeyDigest Blob // nil when absent
	KeyLocator               *KeyLocator
}

// Encode writes the Signature element.
func (sig *Signature) Encode(e *Encoder) error {
	if err := e.WriteElementStartDTag(DTagSignature); err != nil {
		return err
	}
	if err := e.WriteOptionalUDataDTagElement(DTagDigestAlgorithm, sig.DigestAlgorithm); err != nil {
		return err
	}
	if err := e.WriteOptionalBlobDTagElement(DTagWitness, sig.Witness); err != nil {
		return err
	}
	if err := e.WriteBlobDTagElement(DTagSignatureBits, sig.Signature); err != nil {
		return err
	}
	return e.WriteElementClose()
}

// decodeSignature decodes a required Signature element.
func decodeSignature(d *Decoder) (*Signature, error) {
	if err := d.ReadElementStartDTag(DTagSignature); err != nil {
		return nil, err
	}
	sig := &Signature{}
	var err error
	sig.DigestAlgorithm, _, err = d.ReadOptionalUDataDTagElement(DTagDigestAlgorithm)
	if err != nil {
		return nil, err
	}
	sig.Witness, _, err = d.ReadOptionalBlobDTagElement(DTagWitness)
	if err != nil {
		return nil, err
	}
	sig.Signature, err = d.ReadBlobDTagElement(DTagSignatureBits)
	if err != nil {
		return nil, err
	}
	if err := d.ReadElementClose(); err != nil {
		return nil, err
	}
	return sig, nil
}

// encodeSignedInfo writes the SignedInfo element combining sig's key
// fields with meta, or nothing at all if meta is nil.
func encodeSignedInfo(sig *Signature, meta *MetaInfo, e *Encoder) error {
	if meta == nil {
		return nil
	}
	if err := e.WriteElementStartDTag(DTagSignedInfo); err != nil {
		return err
	}
	if err := e.WriteOptionalBlobDTagElement(DTagPublisherPublicKeyDigest, sig.PublisherPublicKeyDigest); err != nil {
		return err
	}
	if meta.HasTimestamp {
		if err := e.WriteTimestampDTagElement(DTagTimestamp, meta.Timestamp); err != nil {
			return err
		}
	}
	if err := meta.encodeType(e); err != nil {
		return err
	}
	if meta.HasFreshnessSeconds {
		if err := e.WriteUnsignedDecimalIntDTagElement(DTagFreshnessSeconds, meta.FreshnessSeconds); err != nil {
			return err
		}
	}
	if err := e.WriteOptionalBlobDTagElement(DTagFinalBlockID, meta.FinalBlockID); err != nil {
		return err
	}
	if err := sig.KeyLocator.Encode(e); err != nil {
		return err
	}
	return e.WriteElementClose()
}

// decodeSignedInfo decodes a SignedInfo element into sig and a new
// MetaInfo.
func decodeSignedInfo(d *Decoder, sig *Signature) (*MetaInfo, error) {
	if err := d.ReadElementStartDTag(DTagSignedInfo); err != nil {
		return nil, err
	}
	var err error
	sig.PublisherPublicKeyDigest, _, err = d.ReadOptionalBlobDTagElement(DTagPublisherPublicKeyDigest)
	if err != nil {
		return nil, err
	}

	meta := &MetaInfo{}
	meta.Timestamp, meta.HasTimestamp, err = d.ReadOptionalTimestampDTagElement(DTagTimestamp)
	if err != nil {
		return nil, err
	}
	meta.Type, err = decodeType(d)
	if err != nil {
		return nil, err
	}
	meta.FreshnessSeconds, meta.HasFreshnessSeconds, err = d.ReadOptionalUnsignedDecimalIntDTagElement(DTagFreshnessSeconds)
	if err != nil {
		return nil, err
	}
	meta.FinalBlockID, _, err = d.ReadOptionalBlobDTagElement(DTagFinalBlockID)
	if err != nil {
		return nil, err
	}

	sig.KeyLocator, err = DecodeOptionalKeyLocator(d)
	if err != nil {
		return nil, err
	}

	if err := d.ReadElementClose(); err != nil {
		return nil, err
	}
	return meta, nil
}
