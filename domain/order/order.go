package order

import (
	"math/big"

	"github.com/x-xyz/gosea/domain"
	"github.com/x-xyz/gosea/domain/asset"
)

// UnhashedOrder is an order as constructed from user intent, before its
// canonical hash is computed. All wei-denominated and uint256 fields are
// big integers; they only ever serialize as decimal strings.
type UnhashedOrder struct {
	Exchange domain.Address `json:"exchange"`
	Maker    domain.Address `json:"maker"`
	Taker    domain.Address `json:"taker"`

	// fees are basis-point amounts per side: relayer, protocol, referrer
	MakerRelayerFee  *big.Int `json:"makerRelayerFee"`
	TakerRelayerFee  *big.Int `json:"takerRelayerFee"`
	MakerProtocolFee *big.Int `json:"makerProtocolFee"`
	TakerProtocolFee *big.Int `json:"takerProtocolFee"`
	MakerReferrerFee *big.Int `json:"makerReferrerFee"`

	FeeRecipient domain.Address `json:"feeRecipient"`
	FeeMethod    FeeMethod      `json:"feeMethod"`

	Side     OrderSide `json:"side"`
	SaleKind SaleKind  `json:"saleKind"`

	Target             domain.Address `json:"target"`
	HowToCall          HowToCall      `json:"howToCall"`
	Calldata           string         `json:"calldata"`
	ReplacementPattern string         `json:"replacementPattern"`

	StaticTarget    domain.Address `json:"staticTarget"`
	StaticExtradata string         `json:"staticExtradata"`

	PaymentToken domain.Address `json:"paymentToken"`
	Quantity     *big.Int       `json:"quantity"`

	BasePrice *big.Int `json:"basePrice"`
	// Extra is the auction price decay amount, must be > 0 for dutch sales
	Extra *big.Int `json:"extra"`

	ListingTime    *big.Int `json:"listingTime"`
	ExpirationTime *big.Int `json:"expirationTime"`

	// Salt exists solely to guarantee hash uniqueness across otherwise
	// identical orders
	Salt *big.Int `json:"salt"`

	Metadata ExchangeMetadata `json:"metadata"`
}

func (o *UnhashedOrder) Validate() error {
	if !o.Side.IsValid() {
		return domain.ErrInvalidOrderSide
	}
	if !o.SaleKind.IsValid() {
		return domain.ErrInvalidSaleKind
	}
	if !o.FeeMethod.IsValid() {
		return domain.ErrInvalidFeeMethod
	}
	if !o.HowToCall.IsValid() {
		return domain.ErrInvalidHowToCall
	}
	if o.SaleKind == SaleKindDutchAuction {
		if o.Extra == nil || o.Extra.Sign() <= 0 {
			return domain.ErrMissingAuctionExtra
		}
		if o.ListingTime == nil || o.ExpirationTime == nil ||
			o.ExpirationTime.Cmp(o.ListingTime) <= 0 {
			return domain.ErrInvalidAuctionWindow
		}
	}
	return o.Metadata.Validate()
}

func (o *UnhashedOrder) LowerCase() {
	o.Exchange = o.Exchange.ToLower()
	o.Maker = o.Maker.ToLower()
	o.Taker = o.Taker.ToLower()
	o.FeeRecipient = o.FeeRecipient.ToLower()
	o.Target = o.Target.ToLower()
	o.StaticTarget = o.StaticTarget.ToLower()
	o.PaymentToken = o.PaymentToken.ToLower()
}

// UnsignedOrder is an UnhashedOrder plus its content-addressed hash. The
// hash is the order's identity.
type UnsignedOrder struct {
	UnhashedOrder
	Hash domain.OrderHash `json:"hash,omitempty"`
}

func (o *UnsignedOrder) Validate() error {
	if o.Hash.IsEmpty() {
		return domain.ErrUnhashedOrder
	}
	return o.UnhashedOrder.Validate()
}

// Signature is the ECDSA triple a wallet produces over the order hash
type Signature struct {
	V int    `json:"v"`
	R string `json:"r"`
	S string `json:"s"`
}

func (s Signature) IsEmpty() bool {
	return s.V == 0 && s.R == "" && s.S == ""
}

// Order is a signed order, optionally enriched with runtime-computed fields
// resolved from the orderbook.
type Order struct {
	UnsignedOrder

	Signature *Signature `json:"-"`

	// runtime fields, resolved by the orderbook and never part of the hash
	CurrentPrice         *big.Int `json:"currentPrice,omitempty"`
	CurrentBounty        *big.Int `json:"currentBounty,omitempty"`
	CreatedTime          *big.Int `json:"createdTime,omitempty"`
	CancelledOrFinalized bool     `json:"cancelledOrFinalized,omitempty"`
	MarkedInvalid        bool     `json:"markedInvalid,omitempty"`

	MakerAccount        *asset.OpenSeaAccount `json:"makerAccount,omitempty"`
	TakerAccount        *asset.OpenSeaAccount `json:"takerAccount,omitempty"`
	FeeRecipientAccount *asset.OpenSeaAccount `json:"feeRecipientAccount,omitempty"`
}

// IsTerminal reports whether the order reached a terminal state. Terminal
// orders must not be matched.
func (o *Order) IsTerminal() bool {
	return o.CancelledOrFinalized || o.MarkedInvalid
}

func (o *Order) CanMatch() error {
	if o.IsTerminal() {
		return domain.ErrOrderTerminal
	}
	if o.Signature == nil || o.Signature.IsEmpty() {
		return domain.ErrUnsignedOrder
	}
	return o.UnsignedOrder.Validate()
}
