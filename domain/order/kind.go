package order

import "github.com/x-xyz/gosea/domain"

// The four enumerations below jointly select which on-chain code path the
// exchange contract takes when matching an order pair. Callers must pick
// consistent combinations; these are closed value sets fixed by the deployed
// contract, not extensible at runtime.

// OrderSide is the side of an order, buy or sell
type OrderSide int8

const (
	SideBuy  OrderSide = 0
	SideSell OrderSide = 1
)

func (s OrderSide) IsValid() bool {
	return s == SideBuy || s == SideSell
}

// Opposite returns the counterparty side
func (s OrderSide) Opposite() OrderSide {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// SaleKind selects the pricing curve of a sell order
type SaleKind int8

const (
	SaleKindFixedPrice SaleKind = 0
	// SaleKindDutchAuction decays the price linearly between listing and
	// expiration time, see CurrentPrice
	SaleKindDutchAuction SaleKind = 1
)

func (k SaleKind) IsValid() bool {
	return k == SaleKindFixedPrice || k == SaleKindDutchAuction
}

// FeeMethod selects how fees are charged during settlement
type FeeMethod int8

const (
	FeeMethodProtocolFee FeeMethod = 0
	FeeMethodSplitFee    FeeMethod = 1
)

func (m FeeMethod) IsValid() bool {
	return m == FeeMethodProtocolFee || m == FeeMethodSplitFee
}

// HowToCall is the call mode the exchange proxy uses against the target
type HowToCall int8

const (
	HowToCallCall         HowToCall = 0
	HowToCallDelegateCall HowToCall = 1
	HowToCallStaticCall   HowToCall = 2
	HowToCallCreate       HowToCall = 3
)

func (h HowToCall) IsValid() bool {
	return h >= HowToCallCall && h <= HowToCallCreate
}

func ToOrderSide(v int) (OrderSide, error) {
	s := OrderSide(v)
	if !s.IsValid() {
		return s, domain.ErrInvalidOrderSide
	}
	return s, nil
}

func ToSaleKind(v int) (SaleKind, error) {
	k := SaleKind(v)
	if !k.IsValid() {
		return k, domain.ErrInvalidSaleKind
	}
	return k, nil
}

func ToFeeMethod(v int) (FeeMethod, error) {
	m := FeeMethod(v)
	if !m.IsValid() {
		return m, domain.ErrInvalidFeeMethod
	}
	return m, nil
}

func ToHowToCall(v int) (HowToCall, error) {
	h := HowToCall(v)
	if !h.IsValid() {
		return h, domain.ErrInvalidHowToCall
	}
	return h, nil
}
