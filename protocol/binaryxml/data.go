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

// Data is a named, signed content object.
type Data struct {
	Signature *Signature
	Name      *Name
	MetaInfo  *MetaInfo
	Content   Blob
}

// EncodeData writes d's ContentObject element and returns the byte
// range, within e.Buf, that an external signer must hash: it starts
// right before the Name element's first header byte and ends right
// after the Content element's CLOSE byte, matching
// ndn_encodeBinaryXmlData's signedFieldsBeginOffset/signedFieldsEndOffset.
func EncodeData(e *Encoder, d *Data) (signedBegin, signedEnd int, err error) {
	if err := e.WriteElementStartDTag(DTagContentObject); err != nil {
		return 0, 0, err
	}

	sig := d.Signature
	if sig == nil {
		sig = &Signature{}
	}
	if err := sig.Encode(e); err != nil {
		return 0, 0, err
	}

	signedBegin = e.Offset

	name := d.Name
	if name == nil {
		name = NewName()
	}
	if err := name.Encode(e); err != nil {
		return 0, 0, err
	}

	if err := encodeSignedInfo(sig, d.MetaInfo, e); err != nil {
		return 0, 0, err
	}

	if err := e.WriteBlobDTagElement(DTagContent, d.Content); err != nil {
		return 0, 0, err
	}

	signedEnd = e.Offset

	if err := e.WriteElementClose(); err != nil {
		return 0, 0, err
	}

	return signedBegin, signedEnd, nil
}

// DecodeData decodes a ContentObject element and returns the same
// signed-portion offsets as EncodeData, measured within d.Input.
func DecodeData(d *Decoder) (data *Data, signedBegin, signedEnd int, err error) {
	if err := d.ReadElementStartDTag(DTagContentObject); err != nil {
		return nil, 0, 0, err
	}

	data = &Data{Signature: &Signature{}}
	if ok, perr := d.PeekDTag(DTagSignature); perr != nil {
		return nil, 0, 0, perr
	} else if ok {
		data.Signature, err = decodeSignature(d)
		if err != nil {
			return nil, 0, 0, err
		}
	}

	signedBegin = d.Offset

	data.Name, err = DecodeName(d)
	if err != nil {
		return nil, 0, 0, err
	}

	if ok, perr := d.PeekDTag(DTagSignedInfo); perr != nil {
		return nil, 0, 0, perr
	} else if ok {
		data.MetaInfo, err = decodeSignedInfo(d, data.Signature)
		if err != nil {
			return nil, 0, 0, err
		}
	} else {
		data.MetaInfo = &MetaInfo{}
	}

	data.Content, err = d.ReadBlobDTagElementAllowNull(DTagContent)
	if err != nil {
		return nil, 0, 0, err
	}

	signedEnd = d.Offset

	if err := d.ReadElementClose(); err != nil {
		return nil, 0, 0, err
	}

	return data, signedBegin, signedEnd, nil
}
