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

// Interest is a request for Data matching Name and the selectors
// below it.
type Interest struct {
	Name *Name

	MinSuffixComponents uint64
	HasMinSuffixComponents bool
	MaxSuffixComponents uint64
	HasMaxSuffixComponents bool

	PublisherPublicKeyDigest Blob // nil when absent

	Exclude *Exclude

	ChildSelector    ChildSelector
	HasChildSelector bool

	// AnswerOriginKind is the caller-visible value only when
	// HasAnswerOriginKind is true; per spec.md section 9 the
	// CONTENT_STORE|GENERATED sentinel is modeled as "absent" rather
	// than as a settable value, matching ndn_Interest_DEFAULT_ANSWER_ORIGIN_KIND.
	AnswerOriginKind    AnswerOriginKind
	HasAnswerOriginKind bool

	Scope    uint64
	HasScope bool

	InterestLifetime    time.Duration
	HasInterestLifetime bool

	Nonce Blob // nil when absent
}

// Encode writes the Interest element.
func (in *Interest) Encode(e *Encoder) error {
	if err := e.WriteElementStartDTag(DTagInterest); err != nil {
		return err
	}

	name := in.Name
	if name == nil {
		name = NewName()
	}
	if err := name.Encode(e); err != nil {
		return err
	}

	if in.HasMinSuffixComponents {
		if err := e.WriteUnsignedDecimalIntDTagElement(DTagMinSuffixComponents, in.MinSuffixComponents); err != nil {
			return err
		}
	}
	if in.HasMaxSuffixComponents {
		if err := e.WriteUnsignedDecimalIntDTagElement(DTagMaxSuffixComponents, in.MaxSuffixComponents); err != nil {
			return err
		}
	}

	if err := e.WriteOptionalBlobDTagElement(DTagPublisherPublicKeyDigest, in.PublisherPublicKeyDigest); err != nil {
		return err
	}

	if err := in.Exclude.Encode(e); err != nil {
		return err
	}

	if in.HasChildSelector {
		if err := e.WriteUnsignedDecimalIntDTagElement(DTagChildSelector, uint64(in.ChildSelector)); err != nil {
			return err
		}
	}

	if in.HasAnswerOriginKind && in.AnswerOriginKind != defaultAnswerOriginKind {
		if err := e.WriteUnsignedDecimalIntDTagElement(DTagAnswerOriginKind, uint64(in.AnswerOriginKind)); err != nil {
			return err
		}
	}

	if in.HasScope {
		if err := e.WriteUnsignedDecimalIntDTagElement(DTagScope, in.Scope); err != nil {
			return err
		}
	}

	if in.HasInterestLifetime {
		t := time.UnixMilli(0).Add(in.InterestLifetime)
		if err := e.WriteTimestampDTagElement(DTagInterestLifetime, t); err != nil {
			return err
		}
	}

	if err := e.WriteOptionalBlobDTagElement(DTagNonce, in.Nonce); err != nil {
		return err
	}

	return e.WriteElementClose()
}

// DecodeInterest decodes an Interest element.
func DecodeInterest(d *Decoder) (*Interest, error) {
	if err := d.ReadElementStartDTag(DTagInterest); err != nil {
		return nil, err
	}

	name, err := DecodeName(d)
	if err != nil {
		return nil, err
	}
	in := &Interest{Name: name}

	in.MinSuffixComponents, in.HasMinSuffixComponents, err = d.ReadOptionalUnsignedDecimalIntDTagElement(DTagMinSuffixComponents)
	if err != nil {
		return nil, err
	}
	in.MaxSuffixComponents, in.HasMaxSuffixComponents, err = d.ReadOptionalUnsignedDecimalIntDTagElement(DTagMaxSuffixComponents)
	if err != nil {
		return nil, err
	}

	in.PublisherPublicKeyDigest, _, err = d.ReadOptionalBlobDTagElement(DTagPublisherPublicKeyDigest)
	if err != nil {
		return nil, err
	}

	in.Exclude, err = DecodeOptionalExclude(d)
	if err != nil {
		return nil, err
	}

	var childSelector uint64
	childSelector, in.HasChildSelector, err = d.ReadOptionalUnsignedDecimalIntDTagElement(DTagChildSelector)
	if err != nil {
		return nil, err
	}
	in.ChildSelector = ChildSelector(childSelector)

	var answerOriginKind uint64
	answerOriginKind, in.HasAnswerOriginKind, err = d.ReadOptionalUnsignedDecimalIntDTagElement(DTagAnswerOriginKind)
	if err != nil {
		return nil, err
	}
	in.AnswerOriginKind = AnswerOriginKind(answerOriginKind)

	in.Scope, in.HasScope, err = d.ReadOptionalUnsignedDecimalIntDTagElement(DTagScope)
	if err != nil {
		return nil, err
	}

	var lifetime time.Time
	lifetime, in.HasInterestLifetime, err = d.ReadOptionalTimestampDTagElement(DTagInterestLifetime)
	if err != nil {
		return nil, err
	}
	if in.HasInterestLifetime {
		in.InterestLifetime = time.Duration(lifetime.UnixMilli()) * time.Millisecond
	}

	in.Nonce, _, err = d.ReadOptionalBlobDTagElement(DTagNonce)
	if err != nil {
		return nil, err
	}

	if err := d.ReadElementClose(); err != nil {
		return nil, err
	}
	return in, nil
}
