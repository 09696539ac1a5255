package order

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/gosea/domain"
)

// CalculateCurrentPrice resolves the price of the order at the given moment.
// Fixed-price sales always quote the base price. Dutch auctions decay
// linearly from basePrice by extra between listingTime and expirationTime;
// outside that window the price clamps to the nearest endpoint.
func (o *UnhashedOrder) CalculateCurrentPrice(now time.Time) (*big.Int, error) {
	if o.BasePrice == nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	if o.SaleKind == SaleKindFixedPrice {
		return new(big.Int).Set(o.BasePrice), nil
	}

	if o.Extra == nil || o.Extra.Sign() <= 0 {
		return nil, domain.ErrMissingAuctionExtra
	}
	if o.ListingTime == nil || o.ExpirationTime == nil {
		return nil, domain.ErrInvalidAuctionWindow
	}
	listing := o.ListingTime.Int64()
	expiration := o.ExpirationTime.Int64()
	if expiration <= listing {
		return nil, domain.ErrInvalidAuctionWindow
	}

	ts := now.Unix()
	if ts <= listing {
		return new(big.Int).Set(o.BasePrice), nil
	}
	if ts >= expiration {
		ts = expiration
	}

	elapsed := decimal.NewFromInt(ts - listing)
	duration := decimal.NewFromInt(expiration - listing)
	extra := decimal.NewFromBigInt(o.Extra, 0)

	decay := extra.Mul(elapsed).Div(duration).Floor()
	price := decimal.NewFromBigInt(o.BasePrice, 0).Sub(decay)
	if price.Sign() < 0 {
		price = decimal.Zero
	}
	return price.BigInt(), nil
}

// DisplayPrice shifts a wei amount into token units for rendering, keeping
// decimal semantics all the way.
func DisplayPrice(wei *big.Int, decimals int32) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -decimals)
}
