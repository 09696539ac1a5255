package order

import (
	"net/url"
	"strconv"

	"github.com/x-xyz/gosea/domain"
)

// OrderQuery is the orderbook filter. Field names follow the API's raw
// snake_case wire format, which deliberately differs from the camelCase the
// sdk uses internally.
type OrderQuery struct {
	AssetContractAddress *domain.Address   `json:"asset_contract_address,omitempty"`
	PaymentTokenAddress  *domain.Address   `json:"payment_token_address,omitempty"`
	Maker                *domain.Address   `json:"maker,omitempty"`
	Taker                *domain.Address   `json:"taker,omitempty"`
	Owner                *domain.Address   `json:"owner,omitempty"`
	Side                 *OrderSide        `json:"side,omitempty"`
	SaleKind             *SaleKind         `json:"sale_kind,omitempty"`
	IsEnglish            *bool             `json:"is_english,omitempty"`
	IsExpired            *bool             `json:"is_expired,omitempty"`
	Bundled              *bool             `json:"bundled,omitempty"`
	IncludeInvalid       *bool             `json:"include_invalid,omitempty"`
	TokenId              *domain.TokenId   `json:"token_id,omitempty"`
	TokenIds             []domain.TokenId  `json:"token_ids,omitempty"`
	ListedAfter          *int64            `json:"listed_after,omitempty"`
	ListedBefore         *int64            `json:"listed_before,omitempty"`
	Limit                *int              `json:"limit,omitempty"`
	Offset               *int              `json:"offset,omitempty"`
}

// Params flattens the filter into url query values the orderbook accepts
func (q *OrderQuery) Params() url.Values {
	v := url.Values{}
	setAddr(v, "asset_contract_address", q.AssetContractAddress)
	setAddr(v, "payment_token_address", q.PaymentTokenAddress)
	setAddr(v, "maker", q.Maker)
	setAddr(v, "taker", q.Taker)
	setAddr(v, "owner", q.Owner)
	if q.Side != nil {
		v.Set("side", strconv.Itoa(int(*q.Side)))
	}
	if q.SaleKind != nil {
		v.Set("sale_kind", strconv.Itoa(int(*q.SaleKind)))
	}
	setBool(v, "is_english", q.IsEnglish)
	setBool(v, "is_expired", q.IsExpired)
	setBool(v, "bundled", q.Bundled)
	setBool(v, "include_invalid", q.IncludeInvalid)
	if q.TokenId != nil {
		v.Set("token_id", q.TokenId.String())
	}
	for _, id := range q.TokenIds {
		v.Add("token_ids", id.String())
	}
	if q.ListedAfter != nil {
		v.Set("listed_after", strconv.FormatInt(*q.ListedAfter, 10))
	}
	if q.ListedBefore != nil {
		v.Set("listed_before", strconv.FormatInt(*q.ListedBefore, 10))
	}
	setInt(v, "limit", q.Limit)
	setInt(v, "offset", q.Offset)
	return v
}

func setAddr(v url.Values, key string, a *domain.Address) {
	if a != nil {
		v.Set(key, a.ToLowerStr())
	}
}

func setBool(v url.Values, key string, b *bool) {
	if b != nil {
		v.Set(key, strconv.FormatBool(*b))
	}
}

func setInt(v url.Values, key string, n *int) {
	if n != nil {
		v.Set(key, strconv.Itoa(*n))
	}
}

// OrderbookResponse is the orderbook's query response
type OrderbookResponse struct {
	Orders []OrderJSON `json:"orders"`
	Count  int         `json:"count"`
}
