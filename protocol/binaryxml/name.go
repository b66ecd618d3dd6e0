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
	"strings"

	"github.com/named-data/ndn-binaryxml/internal/ndnhash"
)

const maxNameComponents = 4096

// Component is one hierarchical segment of a Name. It holds the raw,
// unescaped bytes; URI escaping only happens at the text boundary.
type Component Blob

// Clone returns an owned copy of c.
func (c Component) Clone() Component { return Component(Blob(c).Clone()) }

// Equal reports whether two components have the same bytes.
func (c Component) Equal(o Component) bool { return Blob(c).Equal(Blob(o)) }

// Compare orders components by (length, then lexicographic bytes).
func (c Component) Compare(o Component) int { return Blob(c).Compare(Blob(o)) }

// isAllDots reports whether value contains only '.' characters
// (including the empty value).
func isAllDots(value []byte) bool {
	for _, b := range value {
		if b != '.' {
			return false
		}
	}
	return true
}

// componentFromEscapedString parses one already-trimmed, "/"-free URI
// segment into a Component, unescaping %XX sequences and collapsing
// the "..."-prefixed dots-only special case. It reports false for a
// segment that is illegal and must be dropped (bare ".", "..", or "").
func componentFromEscapedString(segment string) (Component, bool) {
	segment = strings.TrimSpace(segment)
	unescaped := unescapeURI(segment)

	if isAllDots([]byte(unescaped)) {
		if len(unescaped) <= 2 {
			return nil, false
		}
		return Component(unescaped[3:]), true
	}
	return Component(unescaped), true
}

func fromHexChar(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// unescapeURI replaces %XX sequences with their byte value, leaving
// anything that is not valid hex untouched.
func unescapeURI(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi := fromHexChar(s[i+1])
			lo := fromHexChar(s[i+2])
			if hi < 0 || lo < 0 {
				b.WriteByte(s[i])
				continue
			}
			b.WriteByte(byte(16*hi + lo))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// isUnreservedURIByte reports whether x never needs percent-encoding
// in an NDN URI component: 0-9, A-Z, a-z, '+', '-', '.', '_'.
func isUnreservedURIByte(x byte) bool {
	return (x >= '0' && x <= '9') || (x >= 'A' && x <= 'Z') ||
		(x >= 'a' && x <= 'z') || x == '+' || x == '-' || x == '.' || x == '_'
}

const hexDigits = "0123456789ABCDEF"

// appendEscapedComponent writes the URI text for one component's raw
// bytes to b, adding the "..." dots-only escape where needed.
func appendEscapedComponent(b *strings.Builder, value []byte) {
	if isAllDots(value) {
		b.WriteString("...")
		b.Write(value)
		return
	}
	for _, x := range value {
		if isUnreservedURIByte(x) {
			b.WriteByte(x)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[x>>4])
		b.WriteByte(hexDigits[x&0x0F])
	}
}

// Name is an ordered sequence of Components.
type Name struct {
	Components []Component
}

// NewName returns an empty Name.
func NewName() *Name { return &Name{} }

// Append adds one component built from raw bytes and returns the Name
// for chaining.
func (n *Name) Append(value []byte) *Name {
	n.Components = append(n.Components, Component(value))
	return n
}

// ParseURI parses an NDN URI (an optional "scheme:" prefix, an
// optional "//authority", then "/"-separated escaped components) into
// a Name. Illegal components — bare "", ".", or ".." — are silently
// dropped, matching the lenient parser this format has always shipped
// with.
func ParseURI(uri string) *Name {
	uri = strings.TrimSpace(uri)
	n := &Name{}
	if uri == "" {
		return n
	}

	if iColon := strings.IndexByte(uri, ':'); iColon >= 0 {
		iFirstSlash := strings.IndexByte(uri, '/')
		if iFirstSlash < 0 || iColon < iFirstSlash {
			uri = strings.TrimSpace(uri[iColon+1:])
		}
	}

	if len(uri) > 0 && uri[0] == '/' {
		if len(uri) >= 2 && uri[1] == '/' {
			iAfterAuthority := strings.IndexByte(uri[2:], '/')
			if iAfterAuthority < 0 {
				return n
			}
			uri = strings.TrimSpace(uri[2+iAfterAuthority+1:])
		} else {
			uri = strings.TrimSpace(uri[1:])
		}
	}

	start := 0
	for start < len(uri) {
		end := strings.IndexByte(uri[start:], '/')
		if end < 0 {
			end = len(uri)
		} else {
			end += start
		}
		if c, ok := componentFromEscapedString(uri[start:end]); ok {
			n.Components = append(n.Components, c)
		}
		start = end + 1
	}
	return n
}

// String formats n as an NDN URI: "/" if there are no components,
// otherwise "/"-joined escaped components.
func (n *Name) String() string {
	if len(n.Components) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, c := range n.Components {
		b.WriteByte('/')
		appendEscapedComponent(&b, c)
	}
	return b.String()
}

// Hash returns a stable hash over n's components, suitable as a
// content-store or PIT table key.
func (n *Name) Hash() uint64 {
	raw := make([][]byte, len(n.Components))
	for i, c := range n.Components {
		raw[i] = c
	}
	return ndnhash.Components(raw)
}

// Encode writes <Name>(<Component>BLOB</Component>)*</Name>.
func (n *Name) Encode(e *Encoder) error {
	if err := e.WriteElementStartDTag(DTagName); err != nil {
		return err
	}
	for _, c := range n.Components {
		if err := e.WriteBlobDTagElement(DTagComponent, c); err != nil {
			return err
		}
	}
	return e.WriteElementClose()
}

// DecodeName decodes a Name element.
func DecodeName(d *Decoder) (*Name, error) {
	if err := d.ReadElementStartDTag(DTagName); err != nil {
		return nil, err
	}
	n := &Name{}
	for {
		ok, err := d.PeekDTag(DTagComponent)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		b, err := d.ReadBlobDTagElement(DTagComponent)
		if err != nil {
			return nil, err
		}
		if len(n.Components) >= maxNameComponents {
			return nil, ErrTooManyComponents
		}
		n.Components = append(n.Components, Component(b))
	}
	if err := d.ReadElementClose(); err != nil {
		return nil, err
	}
	return n, nil
}
