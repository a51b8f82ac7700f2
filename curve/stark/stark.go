// Package stark implements curve.Provider for the STARK curve used by StarkEx.
//
// The curve is y² = x³ + αx + β over the prime field of order 2^251 + 17·2^192 + 1.
// Group and field arithmetic is delegated to gnark-crypto.
package stark

import (
	"fmt"
	"math/big"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
	"go.uber.org/zap"

	"github.com/anyproto/any-stark/app"
	"github.com/anyproto/any-stark/app/logger"
	"github.com/anyproto/any-stark/curve"
	"github.com/anyproto/any-stark/util/hex32"
)

const curveName = "stark"

var log = logger.NewNamed("curve.stark")

// CurveParams describes y² = x³ + Alpha·x + Beta over F_P with a generator of order N
type CurveParams struct {
	P, N, Alpha, Beta *big.Int
}

var (
	params = CurveParams{
		P:     fp.Modulus(),
		N:     fr.Modulus(),
		Alpha: big.NewInt(1),
		Beta:  mustInt("3141592653589793238462643383279502884197169399375105820974944592307816406665"),
	}
	alpha, beta  fp.Element
	generator, _ = starkcurve.Generators()
)

func init() {
	alpha.SetBigInt(params.Alpha)
	beta.SetBigInt(params.Beta)
}

func mustInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("stark: bad curve constant " + s)
	}
	return v
}

// Params returns a copy of the curve parameters
func Params() CurveParams {
	return CurveParams{
		P:     new(big.Int).Set(params.P),
		N:     new(big.Int).Set(params.N),
		Alpha: new(big.Int).Set(params.Alpha),
		Beta:  new(big.Int).Set(params.Beta),
	}
}

func New() curve.Provider {
	return &provider{}
}

type provider struct{}

func (p *provider) Init(a *app.App) (err error) {
	log.Debug("curve provider initialized", zap.String("curve", curveName), zap.Int("fieldBits", params.P.BitLen()))
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
	if k.Sign() == 0 || k.Cmp(params.N) >= 0 {
		return nil, fmt.Errorf("%w: %q is not in [1, n)", curve.ErrInvalidScalar, privateKeyHex)
	}
	var jac starkcurve.G1Jac
	jac.ScalarMultiplication(&generator, k)
	var pub starkcurve.G1Affine
	pub.FromJacobian(&jac)
	return curve.NewKey(k, toPoint(&pub)), nil
}

func (p *provider) KeyFromPublic(compressedHex string) (curve.KeyHandle, error) {
	if len(compressedHex) != len(curve.TagEven)+hex32.Len {
		return nil, fmt.Errorf("%w: unexpected length %d of %q", curve.ErrInvalidPublicKey, len(compressedHex), compressedHex)
	}
	tag := compressedHex[:len(curve.TagEven)]
	if tag != curve.TagEven && tag != curve.TagOdd {
		return nil, fmt.Errorf("%w: unexpected tag %q", curve.ErrInvalidPublicKey, tag)
	}
	x, err := hex32.ToBigInt(compressedHex[len(tag):])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", curve.ErrInvalidPublicKey, err)
	}
	if x.Cmp(params.P) >= 0 {
		return nil, fmt.Errorf("%w: x %q exceeds the field", curve.ErrPointNotOnCurve, compressedHex)
	}

	var pub starkcurve.G1Affine
	pub.X.SetBigInt(x)
	if !decompressY(&pub.Y, &pub.X, tag == curve.TagOdd) || !pub.IsOnCurve() {
		return nil, fmt.Errorf("%w: %q", curve.ErrPointNotOnCurve, compressedHex)
	}
	return curve.NewKey(nil, toPoint(&pub)), nil
}

// decompressY sets y to the root of x³ + αx + β with the requested parity
func decompressY(y, x *fp.Element, odd bool) bool {
	var rhs, ax fp.Element
	rhs.Square(x).Mul(&rhs, x)
	ax.Mul(x, &alpha)
	rhs.Add(&rhs, &ax).Add(&rhs, &beta)
	if y.Sqrt(&rhs) == nil {
		return false
	}
	if isOdd(y) != odd {
		y.Neg(y)
	}
	return isOdd(y) == odd
}

func isOdd(e *fp.Element) bool {
	return e.BigInt(new(big.Int)).Bit(0) == 1
}

func toPoint(a *starkcurve.G1Affine) curve.Point {
	return curve.Point{
		X: a.X.BigInt(new(big.Int)),
		Y: a.Y.BigInt(new(big.Int)),
	}
}
