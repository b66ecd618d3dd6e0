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
	"time"

	"github.com/stretchr/testify/require"
)

func TestBlobDTagElementRoundTrip(t *testing.T) {
	e := NewEncoder()
	require.NoError(t, e.WriteBlobDTagElement(DTagComponent, []byte{0x01, 0x02, 0x03}))

	d := NewDecoder(e.Buf.Bytes())
	got, err := d.ReadBlobDTagElement(DTagComponent)
	require.NoError(t, err)
	require.True(t, Blob{0x01, 0x02, 0x03}.Equal(got))
	require.Equal(t, e.Buf.Len(), d.Offset)
}

func TestOptionalBlobDTagElementAbsentWhenNil(t *testing.T) {
	e := NewEncoder()
	require.NoError(t, e.WriteOptionalBlobDTagElement(DTagComponent, nil))
	require.Equal(t, 0, e.Buf.Len())
}

func TestUDataDTagElementRoundTrip(t *testing.T) {
	e := NewEncoder()
	require.NoError(t, e.WriteUDataDTagElement(DTagAction, "prefixreg"))

	d := NewDecoder(e.Buf.Bytes())
	got, err := d.ReadUDataDTagElement(DTagAction)
	require.NoError(t, err)
	require.Equal(t, "prefixreg", got)
}

func TestUnsignedDecimalIntDTagElementRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 9, 10, 123, 999999999, 1 << 40} {
		e := NewEncoder()
		require.NoError(t, e.WriteUnsignedDecimalIntDTagElement(DTagMinSuffixComponents, v))

		d := NewDecoder(e.Buf.Bytes())
		got, err := d.ReadUnsignedDecimalIntDTagElement(DTagMinSuffixComponents)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, e.Buf.Len(), d.Offset)
	}
}

// TestTimestampRoundTripPrecision covers scenario S5: a timestamp near
// 1.3e12 ms survives encode/decode to within one fixed-point tick
// (1000/4096 ms).
func TestTimestampRoundTripPrecision(t *testing.T) {
	const originalMillis = int64(1300000000000)
	original := time.UnixMilli(originalMillis).UTC()

	e := NewEncoder()
	require.NoError(t, e.WriteTimestampDTagElement(DTagTimestamp, original))

	d := NewDecoder(e.Buf.Bytes())
	got, err := d.ReadTimestampDTagElement(DTagTimestamp)
	require.NoError(t, err)

	const tickMillis = 1000.0 / 4096.0
	diff := got.UnixMilli() - originalMillis
	require.InDelta(t, 0, diff, tickMillis)
}

func TestOptionalUnsignedDecimalIntDTagElementAbsent(t *testing.T) {
	e := NewEncoder()
	d := NewDecoder(e.Buf.Bytes())
	_, ok, err := d.ReadOptionalUnsignedDecimalIntDTagElement(DTagMinSuffixComponents)
	require.NoError(t, err)
	require.False(t, ok)
}
