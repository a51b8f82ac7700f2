package keycodec

import (
	"fmt"

	"github.com/anyproto/any-stark/util/hex32"
)

// SignatureLen is the length of a serialized signature: r and s, 64 hex characters each
const SignatureLen = 2 * hex32.Len

// Signature is an (r, s) pair as hex strings without 0x prefix
type Signature struct {
	R string `json:"r"`
	S string `json:"s"`
}

// SerializeSignature returns r || s, both normalized to 64 characters.
// Components longer than 64 hex characters are rejected rather than trimmed.
func SerializeSignature(sig Signature) (string, error) {
	r, err := hex32.Normalize(sig.R)
	if err != nil {
		return "", err
	}
	s, err := hex32.Normalize(sig.S)
	if err != nil {
		return "", err
	}
	return r + s, nil
}

// DeserializeSignature splits a 128-character serialized signature into r and s.
// The input must already be exactly 128 characters, hex content is not checked.
func DeserializeSignature(s string) (Signature, error) {
	if len(s) != SignatureLen {
		return Signature{}, fmt.Errorf("%w: %s", ErrInvalidSignatureLength, s)
	}
	return Signature{
		R: s[:hex32.Len],
		S: s[hex32.Len:],
	}, nil
}
