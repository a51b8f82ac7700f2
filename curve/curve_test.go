package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := Point{X: big.NewInt(5), Y: big.NewInt(7)}
	q := Point{X: big.NewInt(5), Y: big.NewInt(8)}

	assert.True(t, p.IsOdd())
	assert.False(t, q.IsOdd())
	assert.True(t, p.Equal(Point{X: big.NewInt(5), Y: big.NewInt(7)}))
	assert.False(t, p.Equal(q))
	assert.False(t, p.Equal(Point{}))
	assert.False(t, Point{}.IsOdd())
}

func TestTag(t *testing.T) {
	assert.Equal(t, "03", Tag(true))
	assert.Equal(t, "02", Tag(false))
}

func TestNewKey(t *testing.T) {
	priv := big.NewInt(3)
	pub := Point{X: big.NewInt(5), Y: big.NewInt(7)}
	k := NewKey(priv, pub)

	priv.SetInt64(100)
	pub.X.SetInt64(100)
	assert.Equal(t, int64(3), k.PrivateKey().Int64())
	assert.Equal(t, int64(5), k.PublicKey().X.Int64())

	k.PrivateKey().SetInt64(42)
	assert.Equal(t, int64(3), k.PrivateKey().Int64())

	assert.Nil(t, NewKey(nil, Point{X: big.NewInt(1), Y: big.NewInt(2)}).PrivateKey())
}
