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

func encodedTestName(t *testing.T) []byte {
	t.Helper()
	n := ParseURI("/ndn/abc/def")
	e := NewEncoder()
	require.NoError(t, n.Encode(e))
	return append([]byte(nil), e.Buf.Bytes()...)
}

// TestElementReaderChunkedFramingEquivalence covers spec property 3 for
// a single cut at every byte boundary plus a few multi-cut splits: each
// split delivers exactly one element to the listener whose bytes equal
// the original packet.
func TestElementReaderChunkedFramingEquivalence(t *testing.T) {
	packet := encodedTestName(t)

	splits := [][]int{
		{},
		{1},
		{len(packet) - 1},
		{1, 2, 3},
		make([]int, 0),
	}
	// Every individual byte boundary, one at a time.
	for i := 1; i < len(packet); i++ {
		splits = append(splits, []int{i})
	}

	for _, cuts := range splits {
		var received [][]byte
		reader := NewElementReader(ElementListenerFunc(func(element []byte) error {
			cp := append([]byte(nil), element...)
			received = append(received, cp)
			return nil
		}))

		chunks := sliceAt(packet, cuts)
		for _, chunk := range chunks {
			require.NoError(t, reader.OnReceivedData(chunk))
		}

		require.Len(t, received, 1, "cuts=%v", cuts)
		require.Equal(t, packet, received[0], "cuts=%v", cuts)
	}
}

// sliceAt splits data at the given (sorted, deduplicated) cut points.
func sliceAt(data []byte, cuts []int) [][]byte {
	var out [][]byte
	prev := 0
	for _, c := range cuts {
		if c <= prev || c >= len(data) {
			continue
		}
		out = append(out, data[prev:c])
		prev = c
	}
	out = append(out, data[prev:])
	return out
}

func TestElementReaderMultipleElementsInOneChunk(t *testing.T) {
	one := encodedTestName(t)
	two := append(append([]byte(nil), one...), one...)

	var received [][]byte
	reader := NewElementReader(ElementListenerFunc(func(element []byte) error {
		received = append(received, append([]byte(nil), element...))
		return nil
	}))

	require.NoError(t, reader.OnReceivedData(two))
	require.Len(t, received, 2)
	require.Equal(t, one, received[0])
	require.Equal(t, one, received[1])
}
