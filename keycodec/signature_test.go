package keycodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-stark/util/hex32"
)

func TestSerializeSignature(t *testing.T) {
	t.Run("padded", func(t *testing.T) {
		res, err := SerializeSignature(Signature{R: "0x1", S: "AB"})
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("0", 63)+"1"+strings.Repeat("0", 62)+"ab", res)
		assert.Len(t, res, SignatureLen)
	})
	t.Run("empty components", func(t *testing.T) {
		res, err := SerializeSignature(Signature{})
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("0", 128), res)
	})
	t.Run("too long r", func(t *testing.T) {
		_, err := SerializeSignature(Signature{R: strings.Repeat("1", 65), S: "1"})
		require.ErrorIs(t, err, hex32.ErrInvalidHexLength)
	})
	t.Run("too long s", func(t *testing.T) {
		_, err := SerializeSignature(Signature{R: "1", S: "0x" + strings.Repeat("1", 65)})
		require.ErrorIs(t, err, hex32.ErrInvalidHexLength)
	})
}

func TestDeserializeSignature(t *testing.T) {
	t.Run("split", func(t *testing.T) {
		sig, err := DeserializeSignature(strings.Repeat("a", 64) + strings.Repeat("b", 64))
		require.NoError(t, err)
		assert.Equal(t, Signature{R: strings.Repeat("a", 64), S: strings.Repeat("b", 64)}, sig)
	})
	t.Run("length boundary", func(t *testing.T) {
		for _, l := range []int{0, 64, 127, 129, 130} {
			in := strings.Repeat("c", l)
			_, err := DeserializeSignature(in)
			require.ErrorIs(t, err, ErrInvalidSignatureLength, l)
			if l > 0 {
				assert.Contains(t, err.Error(), in)
			}
		}
		_, err := DeserializeSignature(strings.Repeat("c", 128))
		require.NoError(t, err)
	})
	t.Run("content is not validated", func(t *testing.T) {
		in := strings.Repeat("z", 128)
		sig, err := DeserializeSignature(in)
		require.NoError(t, err)
		assert.Equal(t, in, sig.R+sig.S)
	})
	t.Run("prefix is not stripped", func(t *testing.T) {
		_, err := DeserializeSignature("0x" + strings.Repeat("c", 128))
		require.ErrorIs(t, err, ErrInvalidSignatureLength)
	})
}

func TestSignatureRoundTrip(t *testing.T) {
	cases := []Signature{
		{R: "1", S: "2"},
		{R: "0xDEADBEEF", S: "0Xcafe"},
		{R: strings.Repeat("f", 64), S: strings.Repeat("E", 64)},
		{R: "", S: "0x"},
		{R: "\u0130", S: "0x\u212a1"},
	}
	for _, sig := range cases {
		serialized, err := SerializeSignature(sig)
		require.NoError(t, err)
		require.Len(t, serialized, SignatureLen)

		res, err := DeserializeSignature(serialized)
		require.NoError(t, err)

		r, err := hex32.Normalize(sig.R)
		require.NoError(t, err)
		s, err := hex32.Normalize(sig.S)
		require.NoError(t, err)
		assert.Equal(t, Signature{R: r, S: s}, res)
	}
}
