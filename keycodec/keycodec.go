// Package keycodec converts between hex key pairs, curve key handles and serialized signatures.
package keycodec

import (
	"errors"
	"fmt"

	"github.com/anyproto/any-stark/app"
	"github.com/anyproto/any-stark/curve"
	"github.com/anyproto/any-stark/util/hex32"
)

const CName = "keycodec"

var (
	ErrMissingPrivateKey      = errors.New("key handle has no private key")
	ErrInvalidKeySource       = errors.New("invalid private key source")
	ErrInvalidSignatureLength = errors.New("invalid serialized signature, expected a hex string with length 128")
)

// KeyPair is a key pair as hex strings without 0x prefix
type KeyPair struct {
	// PublicKey is the x-coordinate of the public point
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

func (KeyPair) isPrivateKeySource() {}

// PrivateKey is a raw private key as hex, with or without 0x prefix
type PrivateKey string

func (PrivateKey) isPrivateKeySource() {}

// PrivateKeySource is either a PrivateKey or a KeyPair
type PrivateKeySource interface {
	isPrivateKeySource()
}

func New(p curve.Provider) *Codec {
	return &Codec{provider: p}
}

// Codec holds no state besides the provider and is safe for concurrent use
type Codec struct {
	provider curve.Provider
}

func (c *Codec) Init(a *app.App) (err error) {
	c.provider = a.MustComponent(curve.CName).(curve.Provider)
	return nil
}

func (c *Codec) Name() (name string) {
	return CName
}

// Provider returns the curve provider used by the codec
func (c *Codec) Provider() curve.Provider {
	return c.provider
}

// DeriveKeyHandle returns a key handle for the private key of src.
// Only the private part of a KeyPair is used.
func (c *Codec) DeriveKeyHandle(src PrivateKeySource) (curve.KeyHandle, error) {
	var privateKey string
	switch v := src.(type) {
	case PrivateKey:
		privateKey = string(v)
	case KeyPair:
		privateKey = v.PrivateKey
	case *KeyPair:
		if v == nil {
			return nil, fmt.Errorf("%w: nil key pair", ErrInvalidKeySource)
		}
		privateKey = v.PrivateKey
	default:
		return nil, fmt.Errorf("%w: unexpected source %T", ErrInvalidKeySource, src)
	}
	normalized, err := hex32.Normalize(privateKey)
	if err != nil {
		return nil, err
	}
	return c.provider.KeyFromPrivate(normalized)
}

// DerivePublicKeyHandle restores a public key from its x-coordinate and the parity of y
func (c *Codec) DerivePublicKeyHandle(publicKeyX string, isOdd bool) (curve.KeyHandle, error) {
	x, err := hex32.Normalize(publicKeyX)
	if err != nil {
		return nil, err
	}
	return c.provider.KeyFromPublic(curve.Tag(isOdd) + x)
}

// ToSimpleKeyPair returns the hex key pair of a handle that holds a private key
func ToSimpleKeyPair(h curve.KeyHandle) (KeyPair, error) {
	priv := h.PrivateKey()
	if priv == nil {
		return KeyPair{}, ErrMissingPrivateKey
	}
	pub, err := ToSimplePublicKey(h.PublicKey())
	if err != nil {
		return KeyPair{}, err
	}
	privHex, err := hex32.FromBigInt(priv)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{PublicKey: pub, PrivateKey: privHex}, nil
}

// ToSimplePublicKey returns the compressed representation of a point: its x-coordinate as hex
func ToSimplePublicKey(p curve.Point) (string, error) {
	return hex32.FromBigInt(p.X)
}

// PublicKeyParity reports whether y of the handle's public point is odd,
// the value to pass to DerivePublicKeyHandle along with the x-coordinate
func PublicKeyParity(h curve.KeyHandle) bool {
	return h.PublicKey().IsOdd()
}
