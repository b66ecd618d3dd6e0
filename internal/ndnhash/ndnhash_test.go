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

package ndnhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponentsIsDeterministic(t *testing.T) {
	comps := [][]byte{[]byte("ndn"), []byte("abc")}
	h1 := Components(comps)
	h2 := Components([][]byte{[]byte("ndn"), []byte("abc")})
	require.Equal(t, h1, h2)
}

func TestComponentsDistinguishesSplitPoints(t *testing.T) {
	// Concatenating the same bytes at different component boundaries
	// must not collide, since length is folded into the hash.
	a := Components([][]byte{[]byte("ab"), []byte("c")})
	b := Components([][]byte{[]byte("a"), []byte("bc")})
	require.NotEqual(t, a, b)
}

func TestComponentsEmptyNameIsStable(t *testing.T) {
	require.Equal(t, Components(nil), Components([][]byte{}))
}

func TestComponentsOrderSensitive(t *testing.T) {
	a := Components([][]byte{[]byte("x"), []byte("y")})
	b := Components([][]byte{[]byte("y"), []byte("x")})
	require.NotEqual(t, a, b)
}
