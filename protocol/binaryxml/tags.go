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

// Package binaryxml implements the Binary-XML tag-length-value wire
// format used by CCN/NDN: the TLV header codec, the streaming
// structure decoder and element reader, and the Name/Interest/Data/
// ForwardingEntry message codecs built on top of them.
package binaryxml

// Type is a Binary-XML header type code.
type Type = int8

// Header type codes, originally from ndn-cpp's BinaryXML.h.
const (
	EXT   Type = 0
	TAG   Type = 1
	DTAG  Type = 2
	ATTR  Type = 3
	DATTR Type = 4
	BLOB  Type = 5
	UDATA Type = 6
)

const (
	// CLOSE is the single octet that terminates a compound element.
	CLOSE = 0x00

	// ttBits is the number of low bits of the final header octet that
	// carry the type code.
	ttBits = 3
	// ttMask isolates the type bits within the final header octet.
	ttMask = 0x07
	// ttFinal marks the final octet of a header (the high bit).
	ttFinal = 0x80
	// ttValueBits is the number of value bits carried by the final octet.
	ttValueBits = 4
	// ttValueMask isolates those value bits after right-shifting past ttBits.
	ttValueMask = 0x0F
	// regularValueBits is the number of value bits carried by a non-final octet.
	regularValueBits = 7
	// regularValueMask isolates those bits within a non-final octet.
	regularValueMask = 0x7F
)

// DTag is a numeric element-name identifier.
type DTag = uint64

// DTag assignments for the core message schemas.
const (
	DTagName                              DTag = 14
	DTagComponent                          DTag = 15
	DTagCertificate                        DTag = 16
	DTagContent                            DTag = 19
	DTagSignedInfo                         DTag = 20
	DTagInterest                           DTag = 26
	DTagKey                                DTag = 27
	DTagKeyLocator                         DTag = 28
	DTagKeyName                           DTag = 29
	DTagSignature                          DTag = 37
	DTagTimestamp                          DTag = 39
	DTagType                               DTag = 40
	DTagNonce                              DTag = 41
	DTagScope                              DTag = 42
	DTagExclude                            DTag = 43
	DTagBloom                              DTag = 44
	DTagAnswerOriginKind                   DTag = 47
	DTagInterestLifetime                   DTag = 48
	DTagWitness                            DTag = 53
	DTagSignatureBits                      DTag = 54
	DTagDigestAlgorithm                    DTag = 55
	DTagFreshnessSeconds                   DTag = 58
	DTagFinalBlockID                       DTag = 59
	DTagPublisherPublicKeyDigest           DTag = 60
	DTagPublisherCertificateDigest         DTag = 61
	DTagPublisherIssuerKeyDigest           DTag = 62
	DTagPublisherIssuerCertificateDigest   DTag = 63
	DTagContentObject                      DTag = 64
	DTagAction                             DTag = 73
	DTagFaceID                             DTag = 74
	DTagForwardingFlags                    DTag = 79
	DTagForwardingEntry                    DTag = 81
	DTagMinSuffixComponents                DTag = 83
	DTagMaxSuffixComponents                DTag = 84
	DTagChildSelector                      DTag = 85
	DTagAny                                DTag = 13
)

// ContentType identifies the kind of a Data packet's content.
type ContentType int8

const (
	ContentTypeDATA ContentType = iota
	ContentTypeENCR
	ContentTypeGONE
	ContentTypeKEY
	ContentTypeLINK
	ContentTypeNACK
)

// contentTypeSentinels are the fixed 3-byte wire encodings for every
// content type. Encoding DATA is indicated by omitting the Type
// element entirely; decoding still recognizes its explicit sentinel
// should one appear on the wire.
var contentTypeSentinels = map[ContentType][3]byte{
	ContentTypeDATA: {0x0C, 0x04, 0xC0},
	ContentTypeENCR: {0x10, 0xD0, 0x91},
	ContentTypeGONE: {0x18, 0xE3, 0x44},
	ContentTypeKEY:  {0x28, 0x46, 0x3F},
	ContentTypeLINK: {0x2C, 0x83, 0x4A},
	ContentTypeNACK: {0x34, 0x00, 0x8A},
}

// KeyNameKind distinguishes which digest a KEYNAME KeyLocator carries.
type KeyNameKind int8

const (
	KeyNamePublisherPublicKeyDigest KeyNameKind = iota
	KeyNamePublisherCertificateDigest
	KeyNamePublisherIssuerKeyDigest
	KeyNamePublisherIssuerCertificateDigest
)

// ForwardingFlags is the forwarding-entry flags bitmask.
type ForwardingFlags uint32

const (
	ForwardingFlagActive      ForwardingFlags = 1
	ForwardingFlagChildInherit ForwardingFlags = 2
	ForwardingFlagAdvertise   ForwardingFlags = 4
	ForwardingFlagLast        ForwardingFlags = 8
	ForwardingFlagCapture     ForwardingFlags = 16
	ForwardingFlagLocal       ForwardingFlags = 32
	ForwardingFlagTap         ForwardingFlags = 64
	ForwardingFlagCaptureOK   ForwardingFlags = 128

	// DefaultForwardingFlags is used when a ForwardingEntry does not
	// specify flags explicitly.
	DefaultForwardingFlags = ForwardingFlagActive | ForwardingFlagChildInherit
)

// AnswerOriginKind restricts who may answer an Interest.
type AnswerOriginKind int32

const (
	AnswerOriginKindContentStore AnswerOriginKind = 1
	AnswerOriginKindGenerated    AnswerOriginKind = 2

	// defaultAnswerOriginKind is the bitwise OR of the two flags above.
	// Per spec.md section 9, this is modeled as "field absent", not as
	// a distinct enum value a caller could set.
	defaultAnswerOriginKind = AnswerOriginKindContentStore | AnswerOriginKindGenerated
)

// ChildSelector selects which child of a matching name a responder prefers.
type ChildSelector int32

const (
	ChildSelectorLeftmost  ChildSelector = 0
	ChildSelectorRightmost ChildSelector = 1
)
