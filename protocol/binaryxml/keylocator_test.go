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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyLocatorKeyRoundTrip(t *testing.T) {
	kl := &KeyLocator{Type: KeyLocatorTypeKey, KeyData: Blob{0x01, 0x02}}
	e := NewEncoder()
	require.NoError(t, kl.Encode(e))

	d := NewDecoder(e.Buf.Bytes())
	got, err := DecodeKeyLocator(d)
	require.NoError(t, err)
	require.Equal(t, KeyLocatorTypeKey, got.Type)
	require.True(t, Blob{0x01, 0x02}.Equal(got.KeyData))
}

func TestKeyLocatorCertificateRoundTrip(t *testing.T) {
	kl := &KeyLocator{Type: KeyLocatorTypeCertificate, KeyData: Blob{0xAA}}
	e := NewEncoder()
	require.NoError(t, kl.Encode(e))

	d := NewDecoder(e.Buf.Bytes())
	got, err := DecodeKeyLocator(d)
	require.NoError(t, err)
	require.Equal(t, KeyLocatorTypeCertificate, got.Type)
	require.True(t, Blob{0xAA}.Equal(got.KeyData))
}

func TestKeyLocatorKeyNameRoundTrip(t *testing.T) {
	kl := &KeyLocator{
		Type:        KeyLocatorTypeKeyName,
		KeyName:     ParseURI("/ndn/keys/alice"),
		KeyNameKind: KeyNamePublisherIssuerKeyDigest,
		KeyData:     Blob{0x01, 0x02, 0x03, 0x04},
	}
	e := NewEncoder()
	require.NoError(t, kl.Encode(e))

	d := NewDecoder(e.Buf.Bytes())
	got, err := DecodeKeyLocator(d)
	require.NoError(t, err)
	require.Equal(t, KeyLocatorTypeKeyName, got.Type)
	require.Equal(t, "/ndn/keys/alice", got.KeyName.String())
	require.Equal(t, KeyNamePublisherIssuerKeyDigest, got.KeyNameKind)
	require.True(t, Blob{0x01, 0x02, 0x03, 0x04}.Equal(got.KeyData))
}

func TestKeyLocatorNoneEncodesNothing(t *testing.T) {
	kl := &KeyLocator{Type: KeyLocatorTypeNone}
	e := NewEncoder()
	require.NoError(t, kl.Encode(e))
	require.Equal(t, 0, e.Buf.Len())
}

func TestDecodeOptionalKeyLocatorAbsent(t *testing.T) {
	// A lone CLOSE byte: the enclosing element has no more children.
	d := NewDecoder([]byte{CLOSE})
	got, err := DecodeOptionalKeyLocator(d)
	require.NoError(t, err)
	require.Equal(t, KeyLocatorTypeNone, got.Type)
	require.Equal(t, 0, d.Offset, "peeking CLOSE must not consume it")
}
