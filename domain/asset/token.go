package asset

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/gosea/domain"
)

// OpenSeaFungibleToken is a payment token the marketplace accepts, with its
// exchange-rate snapshot. Prices are decimal strings on the wire.
type OpenSeaFungibleToken struct {
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
	Decimals int32          `json:"decimals"`
	Address  domain.Address `json:"address"`
	ImageUrl string         `json:"image_url,omitempty"`
	EthPrice string         `json:"eth_price,omitempty"`
	UsdPrice string         `json:"usd_price,omitempty"`
}

// PriceInUsd converts a wei amount of this token into its usd value, never
// passing wei through a float
func (t *OpenSeaFungibleToken) PriceInUsd(wei *big.Int) (decimal.Decimal, error) {
	if wei == nil || t.UsdPrice == "" {
		return decimal.Zero, domain.ErrInvalidNumberFormat
	}
	rate, err := decimal.NewFromString(t.UsdPrice)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidNumberFormat
	}
	units := decimal.NewFromBigInt(wei, -t.Decimals)
	return units.Mul(rate), nil
}
