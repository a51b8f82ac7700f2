// Package starkex declares the exchange payloads signed with STARK keys.
// Amounts, ids and nonces are decimal strings, StarkEx values use integer quantums.
package starkex

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOrderType   = errors.New("unknown order type")
	ErrUnknownOrderSide   = errors.New("unknown order side")
	ErrUnknownMarket      = errors.New("unknown market")
	ErrUnknownAsset       = errors.New("unknown asset")
	ErrUnknownApiMethod   = errors.New("unknown api method")
	ErrClientIDOrNonce    = errors.New("exactly one of clientId and nonce must be set")
	ErrPriceOrQuoteAmount = errors.New("exactly one of humanPrice and humanQuoteAmount must be set")
	ErrMissingField       = errors.New("missing required field")
)

type OrderType string

const OrderTypeLimitWithFees OrderType = "LIMIT_ORDER_WITH_FEES"

func (t OrderType) Valid() error {
	if t == OrderTypeLimitWithFees {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownOrderType, string(t))
}

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

func (s OrderSide) Valid() error {
	switch s {
	case OrderSideBuy, OrderSideSell:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownOrderSide, string(s))
}

type Asset string

const (
	AssetUSDC Asset = "USDC"
	AssetBTC  Asset = "BTC"
	AssetETH  Asset = "ETH"
	AssetLINK Asset = "LINK"
)

// CollateralAsset backs every market
const CollateralAsset = AssetUSDC

func (a Asset) Valid() error {
	switch a {
	case AssetUSDC, AssetBTC, AssetETH, AssetLINK:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownAsset, string(a))
}

type Market string

const (
	MarketBTCUSD  Market = "BTC-USD"
	MarketETHUSD  Market = "ETH-USD"
	MarketLINKUSD Market = "LINK-USD"
)

var marketSynthetic = map[Market]Asset{
	MarketBTCUSD:  AssetBTC,
	MarketETHUSD:  AssetETH,
	MarketLINKUSD: AssetLINK,
}

func (m Market) Valid() error {
	if _, ok := marketSynthetic[m]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownMarket, string(m))
}

// Assets returns the synthetic and the collateral asset of the market
func (m Market) Assets() (synthetic, collateral Asset, err error) {
	synthetic, ok := marketSynthetic[m]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownMarket, string(m))
	}
	return synthetic, CollateralAsset, nil
}

type ApiMethod string

const (
	ApiMethodPost   ApiMethod = "POST"
	ApiMethodPut    ApiMethod = "PUT"
	ApiMethodGet    ApiMethod = "GET"
	ApiMethodDelete ApiMethod = "DELETE"
)

func (m ApiMethod) Valid() error {
	switch m {
	case ApiMethodPost, ApiMethodPut, ApiMethodGet, ApiMethodDelete:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownApiMethod, string(m))
}
