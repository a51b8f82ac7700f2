package starkex

import "fmt"

// WithdrawalParams is a withdrawal in human units. Exactly one of ClientID and Nonce is set.
type WithdrawalParams struct {
	PositionID             string `json:"positionId"`
	HumanAmount            string `json:"humanAmount"`
	ExpirationIsoTimestamp string `json:"expirationIsoTimestamp"`
	ClientID               string `json:"clientId,omitempty"`
	Nonce                  string `json:"nonce,omitempty"`
}

func (w WithdrawalParams) Validate() error {
	if err := required(
		"positionId", w.PositionID,
		"humanAmount", w.HumanAmount,
		"expirationIsoTimestamp", w.ExpirationIsoTimestamp,
	); err != nil {
		return err
	}
	return exactlyOne(w.ClientID, w.Nonce, ErrClientIDOrNonce)
}

// StarkwareWithdrawal is a withdrawal in quantums, ready to be hashed and signed
type StarkwareWithdrawal struct {
	PositionID     string `json:"positionId"`
	QuantumsAmount string `json:"quantumsAmount"`
	// Nonce is a base-10 integer
	Nonce                  string `json:"nonce"`
	ExpirationEpochSeconds string `json:"expirationEpochSeconds"`
}

// OrderParams is an order in human units.
// Exactly one of ClientID and Nonce, and exactly one of HumanPrice and HumanQuoteAmount is set.
// HumanQuoteAmount is meant for internal use.
type OrderParams struct {
	PositionID             string    `json:"positionId"`
	HumanSize              string    `json:"humanSize"`
	HumanLimitFee          string    `json:"humanLimitFee"`
	Market                 Market    `json:"market"`
	Side                   OrderSide `json:"side"`
	ExpirationIsoTimestamp string    `json:"expirationIsoTimestamp"`
	HumanPrice             string    `json:"humanPrice,omitempty"`
	HumanQuoteAmount       string    `json:"humanQuoteAmount,omitempty"`
	ClientID               string    `json:"clientId,omitempty"`
	Nonce                  string    `json:"nonce,omitempty"`
}

func (o OrderParams) Validate() error {
	if err := required(
		"positionId", o.PositionID,
		"humanSize", o.HumanSize,
		"humanLimitFee", o.HumanLimitFee,
		"expirationIsoTimestamp", o.ExpirationIsoTimestamp,
	); err != nil {
		return err
	}
	if err := o.Market.Valid(); err != nil {
		return err
	}
	if err := o.Side.Valid(); err != nil {
		return err
	}
	if err := exactlyOne(o.HumanPrice, o.HumanQuoteAmount, ErrPriceOrQuoteAmount); err != nil {
		return err
	}
	return exactlyOne(o.ClientID, o.Nonce, ErrClientIDOrNonce)
}

type StarkwareAmounts struct {
	QuantumsAmountSynthetic  string `json:"quantumsAmountSynthetic"`
	QuantumsAmountCollateral string `json:"quantumsAmountCollateral"`
	AssetIDSynthetic         string `json:"assetIdSynthetic"`
	AssetIDCollateral        string `json:"assetIdCollateral"`
	IsBuyingSynthetic        bool   `json:"isBuyingSynthetic"`
}

type StarkwareOrder struct {
	StarkwareAmounts
	OrderType         OrderType `json:"orderType"`
	QuantumsAmountFee string    `json:"quantumsAmountFee"`
	AssetIDFee        string    `json:"assetIdFee"`
	PositionID        string    `json:"positionId"`
	// Nonce is a base-10 integer
	Nonce                  string `json:"nonce"`
	ExpirationEpochSeconds string `json:"expirationEpochSeconds"`
}

func (o StarkwareOrder) Validate() error {
	return o.OrderType.Valid()
}

type ApiRequestParams struct {
	IsoTimestamp string    `json:"isoTimestamp"`
	Method       ApiMethod `json:"method"`
	RequestPath  string    `json:"requestPath"`
	Body         string    `json:"body"`
}

func (r ApiRequestParams) Validate() error {
	if err := required("isoTimestamp", r.IsoTimestamp, "requestPath", r.RequestPath); err != nil {
		return err
	}
	return r.Method.Valid()
}

type OraclePriceWithAssetName struct {
	AssetName    string `json:"assetName"`
	OracleName   string `json:"oracleName"`
	Price        string `json:"price"`
	IsoTimestamp string `json:"isoTimestamp"`
}

// OraclePriceWithAssetID uses the oracle signing asset id, it differs from the StarkEx asset id
type OraclePriceWithAssetID struct {
	SignedAssetID string `json:"signedAssetId"`
	Price         string `json:"price"`
	IsoTimestamp  string `json:"isoTimestamp"`
}

// required takes name and value pairs
func required(kv ...string) error {
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, kv[i])
		}
	}
	return nil
}

func exactlyOne(a, b string, err error) error {
	if (a == "") == (b == "") {
		return err
	}
	return nil
}
