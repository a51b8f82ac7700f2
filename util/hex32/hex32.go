// Package hex32 renders scalars and coordinates as fixed-width 32-byte hex strings.
package hex32

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Len is the length of a normalized hex string: 32 bytes, two characters per byte
const Len = 64

var (
	ErrInvalidHexLength = errors.New("hex value is longer than 32 bytes")
	ErrInvalidRange     = errors.New("integer is out of the 256-bit unsigned range")
	ErrInvalidHex       = errors.New("invalid hex value")
)

var zeros = strings.Repeat("0", Len)

// Strip removes an optional 0x or 0X prefix
func Strip(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// Normalize strips the prefix, lowercases the value and left-pads it with zeros to 64 characters.
// The content itself is not checked, consumers that parse the value report malformed digits.
func Normalize(s string) (string, error) {
	h := Strip(s)
	if len(h) > Len {
		return "", fmt.Errorf("%w: %q", ErrInvalidHexLength, s)
	}
	return zeros[len(h):] + strings.Map(lowerASCII, h), nil
}

// lowerASCII keeps the byte length of the value unchanged
func lowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// FromBigInt returns the normalized hex form of a non-negative integer below 2^256.
func FromBigInt(v *big.Int) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%w: nil", ErrInvalidRange)
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("%w: %s", ErrInvalidRange, v.String())
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return "", fmt.Errorf("%w: %s", ErrInvalidRange, v.Text(16))
	}
	b := u.Bytes32()
	return hex.EncodeToString(b[:]), nil
}

// ToBigInt parses a hex scalar of at most 64 digits, with or without prefix.
func ToBigInt(s string) (*big.Int, error) {
	h := Strip(s)
	if len(h) > Len {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHexLength, s)
	}
	if h == "" || h[0] == '-' || h[0] == '+' {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, ok := new(big.Int).SetString(h, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return v, nil
}
