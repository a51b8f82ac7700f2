// Package secp256k1 implements curve.Provider for secp256k1 on top of the decred implementation.
package secp256k1

import (
	"encoding/hex"
	"errors"
	"fmt"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"go.uber.org/zap"

	"github.com/anyproto/any-stark/app"
	"github.com/anyproto/any-stark/app/logger"
	"github.com/anyproto/any-stark/curve"
	"github.com/anyproto/any-stark/util/hex32"
)

const curveName = "secp256k1"

var log = logger.NewNamed("curve.secp256k1")

func New() curve.Provider {
	return &provider{}
}

type provider struct{}

func (p *provider) Init(a *app.App) (err error) {
	log.Debug("curve provider initialized", zap.String("curve", curveName))
	return nil
}

func (p *provider) Name() (name string) {
	return curve.CName
}

func (p *provider) CurveName() string {
	return curveName
}

func (p *provider) KeyFromPrivate(privateKeyHex string) (curve.KeyHandle, error) {
	k, err := hex32.ToBigInt(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", curve.ErrInvalidScalar, err)
	}
	if k.Sign() == 0 || k.Cmp(secp.S256().Params().N) >= 0 {
		return nil, fmt.Errorf("%w: %q is not in [1, n)", curve.ErrInvalidScalar, privateKeyHex)
	}
	priv := secp.PrivKeyFromBytes(k.FillBytes(make([]byte, 32)))
	pub := priv.PubKey()
	return curve.NewKey(k, curve.Point{X: pub.X(), Y: pub.Y()}), nil
}

func (p *provider) KeyFromPublic(compressedHex string) (curve.KeyHandle, error) {
	data, err := hex.DecodeString(compressedHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", curve.ErrInvalidPublicKey, err)
	}
	// ParsePubKey also accepts uncompressed keys, only the compressed form is valid here
	if len(data) != secp.PubKeyBytesLenCompressed {
		return nil, fmt.Errorf("%w: unexpected length %d of %q", curve.ErrInvalidPublicKey, len(data), compressedHex)
	}
	pub, err := secp.ParsePubKey(data)
	if err != nil {
		if errors.Is(err, secp.ErrPubKeyNotOnCurve) || errors.Is(err, secp.ErrPubKeyXTooBig) {
			return nil, fmt.Errorf("%w: %w", curve.ErrPointNotOnCurve, err)
		}
		return nil, fmt.Errorf("%w: %w", curve.ErrInvalidPublicKey, err)
	}
	return curve.NewKey(nil, curve.Point{X: pub.X(), Y: pub.Y()}), nil
}
