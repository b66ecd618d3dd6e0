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

func TestParseURIBasic(t *testing.T) {
	n := ParseURI("/ndn/abc")
	require.Len(t, n.Components, 2)
	require.Equal(t, "ndn", string(n.Components[0]))
	require.Equal(t, "abc", string(n.Components[1]))
	require.Equal(t, "/ndn/abc", n.String())
}

func TestParseURIEmpty(t *testing.T) {
	n := ParseURI("/")
	require.Empty(t, n.Components)
	require.Equal(t, "/", n.String())

	n = ParseURI("")
	require.Empty(t, n.Components)
}

func TestParseURIStripsSchemeAndAuthority(t *testing.T) {
	n := ParseURI("ndn:/a/b")
	require.Equal(t, "/a/b", n.String())

	n = ParseURI("ccnx://host.example/a/b")
	require.Equal(t, "/a/b", n.String())
}

func TestParseURIPercentEscaping(t *testing.T) {
	n := ParseURI("/hello%20world/a%2Fb")
	require.Len(t, n.Components, 2)
	require.Equal(t, "hello world", string(n.Components[0]))
	require.Equal(t, "a/b", string(n.Components[1]))

	require.Equal(t, "/hello%20world/a%2Fb", n.String())
}

// TestParseURIDotsOnlyComponent covers the "..." edge case: a
// component that is entirely periods is illegal for 0, 1, or 2 dots
// (dropped), and for 3+ dots the first three are an escape prefix for
// a value of the remaining dots.
func TestParseURIDotsOnlyComponent(t *testing.T) {
	require.Empty(t, ParseURI("/.").Components)
	require.Empty(t, ParseURI("/..").Components)

	n := ParseURI("/...")
	require.Len(t, n.Components, 1)
	require.Equal(t, "", string(n.Components[0]))

	n = ParseURI("/....")
	require.Len(t, n.Components, 1)
	require.Equal(t, ".", string(n.Components[0]))

	// Round trip: a component of literal dots formats back with the
	// "..." escape prefix.
	n2 := &Name{Components: []Component{Component(".")}}
	require.Equal(t, "/....", n2.String())
}

func TestNameBinaryXMLRoundTrip(t *testing.T) {
	n := ParseURI("/ndn/abc/%00%01%02")
	e := NewEncoder()
	require.NoError(t, n.Encode(e))

	d := NewDecoder(e.Buf.Bytes())
	got, err := DecodeName(d)
	require.NoError(t, err)
	require.Equal(t, len(n.Components), len(got.Components))
	for i := range n.Components {
		require.True(t, n.Components[i].Equal(got.Components[i]))
	}
	require.Equal(t, e.Buf.Len(), d.Offset)
}

func TestComponentCompareOrdersByLengthThenBytes(t *testing.T) {
	require.Equal(t, -1, Component("a").Compare(Component("ab")))
	require.Equal(t, 1, Component("ab").Compare(Component("a")))
	require.Equal(t, -1, Component("a").Compare(Component("b")))
	require.Equal(t, 0, Component("ab").Compare(Component("ab")))
}
