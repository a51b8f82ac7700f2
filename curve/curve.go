//go:generate mockgen -destination mock_curve/mock_curve.go github.com/anyproto/any-stark/curve Provider,KeyHandle
package curve

import (
	"errors"
	"math/big"

	"github.com/anyproto/any-stark/app"
)

const CName = "curve.provider"

var (
	ErrInvalidScalar    = errors.New("scalar is not valid for the curve")
	ErrInvalidPublicKey = errors.New("invalid compressed public key")
	ErrPointNotOnCurve  = errors.New("point is not on the curve")
)

const (
	// TagEven and TagOdd prefix a compressed x-coordinate (SEC1)
	TagEven = "02"
	TagOdd  = "03"
)

// Provider constructs key handles on a specific curve.
// Implementations are safe for concurrent use, every call returns an independent handle.
type Provider interface {
	app.Component

	// CurveName returns a short name of the curve, e.g. "stark"
	CurveName() string
	// KeyFromPrivate returns a handle for the private scalar given as 64 hex characters
	KeyFromPrivate(privateKeyHex string) (KeyHandle, error)
	// KeyFromPublic returns a public-only handle for a compressed key: tag (02 or 03) followed by 64 hex characters of x
	KeyFromPublic(compressedHex string) (KeyHandle, error)
}

// KeyHandle is a key produced by a Provider
type KeyHandle interface {
	// PrivateKey returns the private scalar or nil for public-only handles
	PrivateKey() *big.Int
	// PublicKey returns the public point
	PublicKey() Point
}

// Point is an affine curve point
type Point struct {
	X, Y *big.Int
}

// IsOdd reports whether the y-coordinate is odd
func (p Point) IsOdd() bool {
	return p.Y != nil && p.Y.Bit(0) == 1
}

func (p Point) Equal(o Point) bool {
	if p.X == nil || p.Y == nil || o.X == nil || o.Y == nil {
		return false
	}
	return p.X.Cmp(o.X) == 0 && p.Y.Cmp(o.Y) == 0
}

// Tag returns the compression tag matching the parity of y
func Tag(isOdd bool) string {
	if isOdd {
		return TagOdd
	}
	return TagEven
}

// NewKey returns an immutable KeyHandle, priv may be nil for public-only keys
func NewKey(priv *big.Int, pub Point) KeyHandle {
	k := &key{pub: Point{X: new(big.Int).Set(pub.X), Y: new(big.Int).Set(pub.Y)}}
	if priv != nil {
		k.priv = new(big.Int).Set(priv)
	}
	return k
}

type key struct {
	priv *big.Int
	pub  Point
}

func (k *key) PrivateKey() *big.Int {
	if k.priv == nil {
		return nil
	}
	return new(big.Int).Set(k.priv)
}

func (k *key) PublicKey() Point {
	return Point{X: new(big.Int).Set(k.pub.X), Y: new(big.Int).Set(k.pub.Y)}
}
