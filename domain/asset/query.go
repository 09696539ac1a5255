package asset

import (
	"net/url"
	"strconv"

	"github.com/x-xyz/gosea/domain"
)

// Query shapes below mirror the orderbook API's raw snake_case parameters.
// Pagination is limit/offset, or cursor where the endpoint supports it.

type OpenSeaAssetQuery struct {
	Owner                *domain.Address  `json:"owner,omitempty"`
	AssetContractAddress *domain.Address  `json:"asset_contract_address,omitempty"`
	TokenIds             []domain.TokenId `json:"token_ids,omitempty"`
	Search               *string          `json:"search,omitempty"`
	OrderDirection       *string          `json:"order_direction,omitempty"`
	Limit                *int             `json:"limit,omitempty"`
	Offset               *int             `json:"offset,omitempty"`
	Cursor               *string          `json:"cursor,omitempty"`
}

func (q *OpenSeaAssetQuery) Params() url.Values {
	v := url.Values{}
	setAddr(v, "owner", q.Owner)
	setAddr(v, "asset_contract_address", q.AssetContractAddress)
	for _, id := range q.TokenIds {
		v.Add("token_ids", id.String())
	}
	setStr(v, "search", q.Search)
	setStr(v, "order_direction", q.OrderDirection)
	setInt(v, "limit", q.Limit)
	setInt(v, "offset", q.Offset)
	setStr(v, "cursor", q.Cursor)
	return v
}

type OpenSeaAssetBundleQuery struct {
	AssetContractAddress *domain.Address  `json:"asset_contract_address,omitempty"`
	TokenIds             []domain.TokenId `json:"token_ids,omitempty"`
	OnSale               *bool            `json:"on_sale,omitempty"`
	Owner                *domain.Address  `json:"owner,omitempty"`
	Search               *string          `json:"search,omitempty"`
	Limit                *int             `json:"limit,omitempty"`
	Offset               *int             `json:"offset,omitempty"`
}

func (q *OpenSeaAssetBundleQuery) Params() url.Values {
	v := url.Values{}
	setAddr(v, "asset_contract_address", q.AssetContractAddress)
	for _, id := range q.TokenIds {
		v.Add("token_ids", id.String())
	}
	if q.OnSale != nil {
		v.Set("on_sale", strconv.FormatBool(*q.OnSale))
	}
	setAddr(v, "owner", q.Owner)
	setStr(v, "search", q.Search)
	setInt(v, "limit", q.Limit)
	setInt(v, "offset", q.Offset)
	return v
}

type OpenSeaFungibleTokenQuery struct {
	Symbol  *string         `json:"symbol,omitempty"`
	Address *domain.Address `json:"address,omitempty"`
	Limit   *int            `json:"limit,omitempty"`
	Offset  *int            `json:"offset,omitempty"`
}

func (q *OpenSeaFungibleTokenQuery) Params() url.Values {
	v := url.Values{}
	setStr(v, "symbol", q.Symbol)
	setAddr(v, "address", q.Address)
	setInt(v, "limit", q.Limit)
	setInt(v, "offset", q.Offset)
	return v
}

func setAddr(v url.Values, key string, a *domain.Address) {
	if a != nil {
		v.Set(key, a.ToLowerStr())
	}
}

func setStr(v url.Values, key string, s *string) {
	if s != nil {
		v.Set(key, *s)
	}
}

func setInt(v url.Values, key string, n *int) {
	if n != nil {
		v.Set(key, strconv.Itoa(*n))
	}
}
