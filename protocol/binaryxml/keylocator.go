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

// KeyLocatorType tags which variant of KeyLocator is populated.
type KeyLocatorType int8

const (
	// KeyLocatorTypeNone means no KeyLocator is present at all.
	KeyLocatorTypeNone KeyLocatorType = iota - 1
	KeyLocatorTypeKey
	KeyLocatorTypeCertificate
	KeyLocatorTypeKeyName
)

// KeyLocator is a tagged union over its three wire variants. Exactly
// one of KeyData (for Key/Certificate) or KeyName+KeyNameKind+KeyData
// (for KeyName) is meaningful, selected by Type.
type KeyLocator struct {
	Type KeyLocatorType

	// KeyData holds the raw key or certificate bytes for
	// KeyLocatorTypeKey/KeyLocatorTypeCertificate, and the selected
	// digest for KeyLocatorTypeKeyName.
	KeyData Blob

	// KeyName and KeyNameKind are only meaningful when
	// Type == KeyLocatorTypeKeyName.
	KeyName     *Name
	KeyNameKind KeyNameKind
}

var keyNameDigestTags = [...]DTag{
	KeyNamePublisherPublicKeyDigest:         DTagPublisherPublicKeyDigest,
	KeyNamePublisherCertificateDigest:       DTagPublisherCertificateDigest,
	KeyNamePublisherIssuerKeyDigest:         DTagPublisherIssuerKeyDigest,
	KeyNamePublisherIssuerCertificateDigest: DTagPublisherIssuerCertificateDigest,
}

// Encode writes kl, or nothing at all if kl.Type is
// KeyLocatorTypeNone.
func (kl *KeyLocator) Encode(e *Encoder) error {
	if kl == nil || kl.Type == KeyLocatorTypeNone {
		return nil
	}
	if err := e.WriteElementStartDTag(DTagKeyLocator); err != nil {
		return err
	}

	switch kl.Type {
	case KeyLocatorTypeKey:
		if err := e.WriteBlobDTagElement(DTagKey, kl.KeyData); err != nil {
			return err
		}
	case KeyLocatorTypeCertificate:
		if err := e.WriteBlobDTagElement(DTagCertificate, kl.KeyData); err != nil {
			return err
		}
	case KeyLocatorTypeKeyName:
		if err := e.WriteElementStartDTag(DTagKeyName); err != nil {
			return err
		}
		if kl.KeyName == nil {
			kl.KeyName = NewName()
		}
		if err := kl.KeyName.Encode(e); err != nil {
			return err
		}
		if int(kl.KeyNameKind) < 0 || int(kl.KeyNameKind) >= len(keyNameDigestTags) {
			return ErrUnrecognizedKeyNameType
		}
		if err := e.WriteBlobDTagElement(keyNameDigestTags[kl.KeyNameKind], kl.KeyData); err != nil {
			return err
		}
		if err := e.WriteElementClose(); err != nil {
			return err
		}
	default:
		return ErrUnrecognizedKeyLocatorType
	}

	return e.WriteElementClose()
}

// DecodeKeyLocator decodes a required KeyLocator element.
func DecodeKeyLocator(d *Decoder) (*KeyLocator, error) {
	if err := d.ReadElementStartDTag(DTagKeyLocator); err != nil {
		return nil, err
	}
	kl, err := decodeKeyLocatorBody(d)
	if err != nil {
		return nil, err
	}
	if err := d.ReadElementClose(); err != nil {
		return nil, err
	}
	return kl, nil
}

// DecodeOptionalKeyLocator decodes a KeyLocator element if present,
// otherwise returns a KeyLocatorTypeNone KeyLocator.
func DecodeOptionalKeyLocator(d *Decoder) (*KeyLocator, error) {
	ok, err := d.PeekDTag(DTagKeyLocator)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &KeyLocator{Type: KeyLocatorTypeNone}, nil
	}
	return DecodeKeyLocator(d)
}

func decodeKeyLocatorBody(d *Decoder) (*KeyLocator, error) {
	if ok, err := d.PeekDTag(DTagKey); err != nil {
		return nil, err
	} else if ok {
		b, err := d.ReadBlobDTagElement(DTagKey)
		if err != nil {
			return nil, err
		}
		return &KeyLocator{Type: KeyLocatorTypeKey, KeyData: b}, nil
	}

	if ok, err := d.PeekDTag(DTagCertificate); err != nil {
		return nil, err
	} else if ok {
		b, err := d.ReadBlobDTagElement(DTagCertificate)
		if err != nil {
			return nil, err
		}
		return &KeyLocator{Type: KeyLocatorTypeCertificate, KeyData: b}, nil
	}

	ok, err := d.PeekDTag(DTagKeyName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnrecognizedKeyLocatorType
	}
	if err := d.ReadElementStartDTag(DTagKeyName); err != nil {
		return nil, err
	}
	name, err := DecodeName(d)
	if err != nil {
		return nil, err
	}
	kind, data, err := decodeKeyNameDigest(d)
	if err != nil {
		return nil, err
	}
	if err := d.ReadElementClose(); err != nil {
		return nil, err
	}
	return &KeyLocator{Type: KeyLocatorTypeKeyName, KeyName: name, KeyNameKind: kind, KeyData: data}, nil
}

func decodeKeyNameDigest(d *Decoder) (KeyNameKind, Blob, error) {
	for kind, tag := range keyNameDigestTags {
		ok, err := d.PeekDTag(tag)
		if err != nil {
			return 0, nil, err
		}
		if ok {
			b, err := d.ReadBlobDTagElement(tag)
			if err != nil {
				return 0, nil, err
			}
			return KeyNameKind(kind), b, nil
		}
	}
	return 0, nil, ErrUnrecognizedKeyNameType
}
