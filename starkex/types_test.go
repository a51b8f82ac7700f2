package starkex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarket_Assets(t *testing.T) {
	for market, want := range map[Market]Asset{
		MarketBTCUSD:  AssetBTC,
		MarketETHUSD:  AssetETH,
		MarketLINKUSD: AssetLINK,
	} {
		synthetic, collateral, err := market.Assets()
		require.NoError(t, err)
		assert.Equal(t, want, synthetic)
		assert.Equal(t, AssetUSDC, collateral)
		require.NoError(t, synthetic.Valid())
	}
	_, _, err := Market("BTC-EUR").Assets()
	require.ErrorIs(t, err, ErrUnknownMarket)
}

func TestEnums_Valid(t *testing.T) {
	require.NoError(t, OrderTypeLimitWithFees.Valid())
	require.NoError(t, OrderSideSell.Valid())
	require.NoError(t, ApiMethodDelete.Valid())
	require.NoError(t, AssetUSDC.Valid())

	require.ErrorIs(t, Asset("DOGE").Valid(), ErrUnknownAsset)
	require.ErrorIs(t, OrderSide("").Valid(), ErrUnknownOrderSide)
}
