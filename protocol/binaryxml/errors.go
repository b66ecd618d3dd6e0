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

// Kind classifies a codec Error into the taxonomy of spec section 7.
type Kind int32

const (
	KindUnknown Kind = iota
	KindTruncation
	KindMalformedHeader
	KindStructuralMismatch
	KindPayloadMalformed
	KindCapacity
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindTruncation:
		return "truncation"
	case KindMalformedHeader:
		return "malformed header"
	case KindStructuralMismatch:
		return "structural mismatch"
	case KindPayloadMalformed:
		return "payload malformed"
	case KindCapacity:
		return "capacity"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the single error type every codec function returns.
// It carries a Kind (for errors.Is-style classification by callers)
// and the textual detail a caller may choose to surface.
type Error struct {
	Kind Kind
	Msg  string
}

func NewError(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

func (e *Error) Error() string {
	return e.Msg
}

// Is reports whether target is an *Error with the same Kind, so
// errors.Is(err, ErrPastEndOfInput) matches any KindTruncation error;
// callers can also type-assert and compare Kind directly.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors for the hot decode paths, matching the teacher's
// package-level exception instances (errBufferTooShort, errDataLength
// in protocol/thrift/exception.go).
var (
	ErrFirstOctetZero  = NewError(KindMalformedHeader, "the first header octet may not be zero")
	ErrPastEndOfInput  = NewError(KindTruncation, "read past the end of the input")
	ErrHeaderTooLong   = NewError(KindMalformedHeader, "cannot store more header bytes than the size of headerBuffer")
	ErrUnexpectedClose = NewError(KindStructuralMismatch, "unexpected close tag")
	ErrUnrecognizedHeaderType = NewError(KindMalformedHeader, "unrecognized header type")
	ErrUnrecognizedState      = NewError(KindInternal, "unrecognized structure decoder state")
	ErrNotDTag         = NewError(KindStructuralMismatch, "header type is not a DTAG")
	ErrWrongDTag       = NewError(KindStructuralMismatch, "did not get the expected DTAG")
	ErrNotClose        = NewError(KindStructuralMismatch, "did not get the expected element close")
	ErrNotUData        = NewError(KindStructuralMismatch, "item is not UDATA")
	ErrNotDigit        = NewError(KindPayloadMalformed, "element of value is not a decimal digit")
	ErrUnrecognizedContentType = NewError(KindPayloadMalformed, "unrecognized content type")
	ErrUnrecognizedKeyLocatorType = NewError(KindPayloadMalformed, "unrecognized key locator type")
	ErrUnrecognizedKeyNameType    = NewError(KindPayloadMalformed, "unrecognized key name type")
	ErrUnrecognizedExcludeType    = NewError(KindPayloadMalformed, "unrecognized exclude entry type")
	ErrUnrecognizedForwardingFlags = NewError(KindPayloadMalformed, "unrecognized forwarding flag bits")
	ErrTooManyComponents = NewError(KindCapacity, "read a component past the maximum")
	ErrTooManyExcludeEntries = NewError(KindCapacity, "read an exclude entry past the maximum")
	ErrBufferGrowthFailed    = NewError(KindCapacity, "output buffer growth failed")
	ErrMiscalculatedHeaderLength = NewError(KindInternal, "miscalculated encoding length")
)
