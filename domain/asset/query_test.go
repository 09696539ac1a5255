package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/gosea/base/ptr"
	"github.com/x-xyz/gosea/domain"
)

func TestOpenSeaAssetQueryParams(t *testing.T) {
	owner := domain.Address("0x939AE6a4c8DFdbb1f7085189574f0a938013952a")
	q := &OpenSeaAssetQuery{
		Owner:    &owner,
		TokenIds: []domain.TokenId{"1", "2", "3"},
		Search:   ptr.String("ape"),
		Limit:    ptr.Int(20),
		Cursor:   ptr.String("abc=="),
	}

	v := q.Params()
	assert.Equal(t, "0x939ae6a4c8dfdbb1f7085189574f0a938013952a", v.Get("owner"))
	assert.Equal(t, []string{"1", "2", "3"}, v["token_ids"])
	assert.Equal(t, "ape", v.Get("search"))
	assert.Equal(t, "20", v.Get("limit"))
	assert.Equal(t, "abc==", v.Get("cursor"))
	assert.False(t, v.Has("offset"))
}

func TestOpenSeaAssetBundleQueryParams(t *testing.T) {
	contract := domain.Address("0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb")
	q := &OpenSeaAssetBundleQuery{
		AssetContractAddress: &contract,
		OnSale:               ptr.Bool(true),
		Offset:               ptr.Int(40),
	}

	v := q.Params()
	assert.Equal(t, contract.ToLowerStr(), v.Get("asset_contract_address"))
	assert.Equal(t, "true", v.Get("on_sale"))
	assert.Equal(t, "40", v.Get("offset"))
	assert.False(t, v.Has("owner"))
}

func TestOpenSeaFungibleTokenQueryParams(t *testing.T) {
	q := &OpenSeaFungibleTokenQuery{
		Symbol: ptr.String("WETH"),
	}
	v := q.Params()
	assert.Equal(t, "WETH", v.Get("symbol"))
	assert.False(t, v.Has("address"))
	assert.False(t, v.Has("limit"))
}
