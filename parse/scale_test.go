package parse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pson-format/go-pson/ir"
)

const scaleN = 100_000

func TestScaleArray(t *testing.T) {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range scaleN {
		fmt.Fprintf(&sb, "%d ", i)
	}
	sb.WriteByte(']')
	doc, err := ParseString(sb.String())
	require.NoError(t, err)
	require.Equal(t, 1, doc.Len())
	vs, ok := doc.Values[0].AsArray()
	require.True(t, ok)
	require.Len(t, vs, scaleN)
	last, ok := vs[scaleN-1].AsInt64()
	require.True(t, ok)
	require.EqualValues(t, scaleN-1, last)
}

func TestScaleMap(t *testing.T) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := range scaleN {
		fmt.Fprintf(&sb, "k%d %d ", i, i)
	}
	sb.WriteByte('}')
	doc, err := ParseString(sb.String())
	require.NoError(t, err)
	m, ok := doc.Values[0].AsMap()
	require.True(t, ok)
	require.Len(t, m, scaleN)
	v, ok := m["k4242"].AsInt64()
	require.True(t, ok)
	require.EqualValues(t, 4242, v)
}

func TestScaleAtom(t *testing.T) {
	long := strings.Repeat("z", scaleN)
	doc, err := ParseString(long + ` "` + long + `"`)
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())
	for _, v := range doc.Values {
		s, ok := v.AsString()
		require.True(t, ok)
		require.Len(t, s, scaleN)
	}
}

func TestScaleNesting(t *testing.T) {
	in := strings.Repeat("[", scaleN) + "x" + strings.Repeat("]", scaleN)
	doc, err := ParseString(in)
	require.NoError(t, err)

	// walk down without recursion
	depth := 0
	n := doc.Values[0]
	for n.Type == ir.ArrayType {
		require.Len(t, n.Values, 1)
		n = n.Values[0]
		depth++
	}
	require.Equal(t, scaleN, depth)
	s, _ := n.AsString()
	require.Equal(t, "x", s)
}

func TestScaleUnbalancedNesting(t *testing.T) {
	s := NewScanner(strings.NewReader(strings.Repeat("(", scaleN)))
	require.NoError(t, s.Parse())
	require.Equal(t, scaleN, s.Depth())
	_, err := s.Get()
	require.ErrorIs(t, err, ErrUnbalanced)
}
