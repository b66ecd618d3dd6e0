// Copyright 2024 CloudWeGo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bufiox

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultReader_BasicFunctionality(t *testing.T) {
	data := []byte("Hello, World!")
	reader := NewDefaultReader(bytes.NewReader(data))

	buf, err := reader.Next(5)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), buf)

	peekBuf, err := reader.Peek(1)
	require.NoError(t, err)
	assert.Equal(t, []byte(","), peekBuf)

	buf, err = reader.Next(8)
	require.NoError(t, err)
	assert.Equal(t, []byte(", World!"), buf)

	err = reader.Release(nil)
	require.NoError(t, err)
}

func TestDefaultReader_BoundaryConditions(t *testing.T) {
	t.Run("NegativeCount", func(t *testing.T) {
		reader := NewDefaultReader(bytes.NewReader([]byte("test")))

		_, err := reader.Next(-1)
		assert.Equal(t, errNegativeCount, err)

		_, err = reader.Peek(-1)
		assert.Equal(t, errNegativeCount, err)
	})

	t.Run("ZeroCount", func(t *testing.T) {
		reader := NewDefaultReader(bytes.NewReader([]byte("test")))

		buf, err := reader.Next(0)
		require.NoError(t, err)
		assert.Nil(t, buf) // Next(0) returns nil slice

		buf, err = reader.Peek(0)
		require.NoError(t, err)
		assert.Nil(t, buf) // Peek(0) returns nil slice
	})

	t.Run("LargeBuffer", func(t *testing.T) {
		// Test with large buffer to trigger buffer growth
		largeData := make([]byte, 64*1024) // 64KB
		for i := range largeData {
			largeData[i] = byte(i % 256)
		}

		reader := NewDefaultReader(bytes.NewReader(largeData))

		buf, err := reader.Next(32 * 1024) // 32KB
		require.NoError(t, err)
		assert.Equal(t, 32*1024, len(buf))
		assert.Equal(t, largeData[:32*1024], buf)
	})
}

func TestDefaultReader_ErrorConditions(t *testing.T) {
	t.Run("IOError", func(t *testing.T) {
		errReader := &errorReader{err: errors.New("test error")}
		reader := NewDefaultReader(errReader)

		_, err := reader.Next(10)
		assert.Error(t, err)

		// Subsequent calls should return the same error
		_, err = reader.Peek(10)
		assert.Error(t, err)
	})

	t.Run("NoProgressError", func(t *testing.T) {
		noProgressReader := &noProgressReader{}
		reader := NewDefaultReader(noProgressReader)

		_, err := reader.Next(10)
		assert.Equal(t, io.ErrNoProgress, err)
	})
}

func TestDefaultReader_PeekReturnsBufferedOnError(t *testing.T) {
	data := []byte("Hello")
	r := NewDefaultReader(bytes.NewReader(data))

	// Peek more than available; should return buffered data + error,
	// the shape bxtransport's element reader relies on when a stream
	// ends mid-element.
	buf, err := r.Peek(10)
	assert.Error(t, err)
	assert.Equal(t, data, buf)
}

func TestDefaultReader_ReleaseAfterMultipleOperations(t *testing.T) {
	data := make([]byte, 2048*20)
	reader := NewDefaultReader(bytes.NewReader(data))

	for i := 0; i < 2048; i++ {
		_, err := reader.Next(10)
		require.NoError(t, err)
		_, err = reader.Peek(5)
		require.NoError(t, err)
	}

	err := reader.Release(nil)
	require.NoError(t, err)
}

func seqBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestDefaultReader_GrowingPeek(t *testing.T) {
	// Mirrors the element reader's own usage: repeated Peek calls
	// with an ever-larger n as more of the header becomes known,
	// crossing a buffer reallocation along the way.
	data := seqBytes(defaultBufSize * 2)
	r := NewDefaultReader(bytes.NewReader(data))

	for n := 1; n <= defaultBufSize+50; n += 37 {
		buf, err := r.Peek(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, data[:n], buf, "n=%d", n)
	}
}

// Helper types for testing

type errorReader struct {
	err error
}

func (r *errorReader) Read(p []byte) (n int, err error) {
	return 0, r.err
}

type noProgressReader struct{}

func (r *noProgressReader) Read(p []byte) (n int, err error) {
	return 0, nil // Always returns 0 bytes without error
}
