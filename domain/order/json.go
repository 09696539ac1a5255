package order

import (
	"math/big"

	"golang.org/x/xerrors"

	"github.com/x-xyz/gosea/domain"
)

// OrderJSON is the wire shape submitted to and returned by the orderbook.
// Every numeric field travels as a decimal string so wei amounts survive
// serialization without precision loss.
type OrderJSON struct {
	Exchange domain.Address `json:"exchange"`
	Maker    domain.Address `json:"maker"`
	Taker    domain.Address `json:"taker"`

	MakerRelayerFee  string `json:"makerRelayerFee"`
	TakerRelayerFee  string `json:"takerRelayerFee"`
	MakerProtocolFee string `json:"makerProtocolFee"`
	TakerProtocolFee string `json:"takerProtocolFee"`
	MakerReferrerFee string `json:"makerReferrerFee"`

	FeeRecipient domain.Address `json:"feeRecipient"`
	FeeMethod    int            `json:"feeMethod"`

	Side     int `json:"side"`
	SaleKind int `json:"saleKind"`

	Target             domain.Address `json:"target"`
	HowToCall          int            `json:"howToCall"`
	Calldata           string         `json:"calldata"`
	ReplacementPattern string         `json:"replacementPattern"`

	StaticTarget    domain.Address `json:"staticTarget"`
	StaticExtradata string         `json:"staticExtradata"`

	PaymentToken domain.Address `json:"paymentToken"`
	Quantity     string         `json:"quantity"`

	BasePrice string `json:"basePrice"`
	Extra     string `json:"extra"`

	ListingTime    string `json:"listingTime"`
	ExpirationTime string `json:"expirationTime"`

	Salt string `json:"salt"`

	Metadata ExchangeMetadata `json:"metadata"`

	Hash domain.OrderHash `json:"hash,omitempty"`

	V int    `json:"v,omitempty"`
	R string `json:"r,omitempty"`
	S string `json:"s,omitempty"`

	CreatedDate  string `json:"createdDate,omitempty"`
	CurrentPrice string `json:"currentPrice,omitempty"`
}

func bigToDecimalString(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}

func (o *UnhashedOrder) ToJSON() *OrderJSON {
	return &OrderJSON{
		Exchange:           o.Exchange.ToLower(),
		Maker:              o.Maker.ToLower(),
		Taker:              o.Taker.ToLower(),
		MakerRelayerFee:    bigToDecimalString(o.MakerRelayerFee),
		TakerRelayerFee:    bigToDecimalString(o.TakerRelayerFee),
		MakerProtocolFee:   bigToDecimalString(o.MakerProtocolFee),
		TakerProtocolFee:   bigToDecimalString(o.TakerProtocolFee),
		MakerReferrerFee:   bigToDecimalString(o.MakerReferrerFee),
		FeeRecipient:       o.FeeRecipient.ToLower(),
		FeeMethod:          int(o.FeeMethod),
		Side:               int(o.Side),
		SaleKind:           int(o.SaleKind),
		Target:             o.Target.ToLower(),
		HowToCall:          int(o.HowToCall),
		Calldata:           o.Calldata,
		ReplacementPattern: o.ReplacementPattern,
		StaticTarget:       o.StaticTarget.ToLower(),
		StaticExtradata:    o.StaticExtradata,
		PaymentToken:       o.PaymentToken.ToLower(),
		Quantity:           bigToDecimalString(o.Quantity),
		BasePrice:          bigToDecimalString(o.BasePrice),
		Extra:              bigToDecimalString(o.Extra),
		ListingTime:        bigToDecimalString(o.ListingTime),
		ExpirationTime:     bigToDecimalString(o.ExpirationTime),
		Salt:               bigToDecimalString(o.Salt),
		Metadata:           o.Metadata,
	}
}

func (o *UnsignedOrder) ToJSON() *OrderJSON {
	j := o.UnhashedOrder.ToJSON()
	j.Hash = o.Hash.ToLower()
	return j
}

func (o *Order) ToJSON() *OrderJSON {
	j := o.UnsignedOrder.ToJSON()
	if o.Signature != nil {
		j.V = o.Signature.V
		j.R = o.Signature.R
		j.S = o.Signature.S
	}
	if o.CurrentPrice != nil {
		j.CurrentPrice = o.CurrentPrice.String()
	}
	if o.CreatedTime != nil {
		j.CreatedDate = o.CreatedTime.String()
	}
	return j
}

// ToUnhashedOrder deserializes the wire shape back into the typed record,
// parsing every decimal string exactly.
func (j *OrderJSON) ToUnhashedOrder() (*UnhashedOrder, error) {
	nums, err := domain.ToBigInt([]string{
		j.MakerRelayerFee,
		j.TakerRelayerFee,
		j.MakerProtocolFee,
		j.TakerProtocolFee,
		j.MakerReferrerFee,
		j.Quantity,
		j.BasePrice,
		j.Extra,
		j.ListingTime,
		j.ExpirationTime,
		j.Salt,
	})
	if err != nil {
		return nil, xerrors.Errorf("parse order numerics: %w", err)
	}

	side, err := ToOrderSide(j.Side)
	if err != nil {
		return nil, err
	}
	saleKind, err := ToSaleKind(j.SaleKind)
	if err != nil {
		return nil, err
	}
	feeMethod, err := ToFeeMethod(j.FeeMethod)
	if err != nil {
		return nil, err
	}
	howToCall, err := ToHowToCall(j.HowToCall)
	if err != nil {
		return nil, err
	}

	o := &UnhashedOrder{
		Exchange:           j.Exchange.ToLower(),
		Maker:              j.Maker.ToLower(),
		Taker:              j.Taker.ToLower(),
		MakerRelayerFee:    nums[0],
		TakerRelayerFee:    nums[1],
		MakerProtocolFee:   nums[2],
		TakerProtocolFee:   nums[3],
		MakerReferrerFee:   nums[4],
		FeeRecipient:       j.FeeRecipient.ToLower(),
		FeeMethod:          feeMethod,
		Side:               side,
		SaleKind:           saleKind,
		Target:             j.Target.ToLower(),
		HowToCall:          howToCall,
		Calldata:           j.Calldata,
		ReplacementPattern: j.ReplacementPattern,
		StaticTarget:       j.StaticTarget.ToLower(),
		StaticExtradata:    j.StaticExtradata,
		PaymentToken:       j.PaymentToken.ToLower(),
		Quantity:           nums[5],
		BasePrice:          nums[6],
		Extra:              nums[7],
		ListingTime:        nums[8],
		ExpirationTime:     nums[9],
		Salt:               nums[10],
		Metadata:           j.Metadata,
	}
	if err := o.Metadata.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (j *OrderJSON) ToUnsignedOrder() (*UnsignedOrder, error) {
	unhashed, err := j.ToUnhashedOrder()
	if err != nil {
		return nil, err
	}
	return &UnsignedOrder{
		UnhashedOrder: *unhashed,
		Hash:          j.Hash.ToLower(),
	}, nil
}

func (j *OrderJSON) ToOrder() (*Order, error) {
	unsigned, err := j.ToUnsignedOrder()
	if err != nil {
		return nil, err
	}
	o := &Order{UnsignedOrder: *unsigned}
	if j.V != 0 || j.R != "" || j.S != "" {
		o.Signature = &Signature{V: j.V, R: j.R, S: j.S}
	}
	if j.CurrentPrice != "" {
		nums, err := domain.ToBigInt([]string{j.CurrentPrice})
		if err != nil {
			return nil, xerrors.Errorf("parse current price: %w", err)
		}
		o.CurrentPrice = nums[0]
	}
	if j.CreatedDate != "" {
		if nums, err := domain.ToBigInt([]string{j.CreatedDate}); err == nil {
			o.CreatedTime = nums[0]
		}
	}
	return o, nil
}
