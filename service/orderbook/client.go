package orderbook

import (
	"errors"
	"time"

	bCtx "github.com/x-xyz/gosea/base/ctx"
	"github.com/x-xyz/gosea/domain/asset"
	"github.com/x-xyz/gosea/domain/order"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrOrderNotFound   = errors.New("order not found in orderbook")
)

// ClientCfg configures an orderbook client implementation
type ClientCfg struct {
	BaseURL string
	Apikey  string
	Timeout time.Duration
}

// Client is the orderbook REST boundary. Implementations own transport
// concerns (auth headers, throttling, retries); this package only fixes the
// request and response contracts.
type Client interface {
	// GetOrder returns the single best match for the query
	GetOrder(ctx bCtx.Ctx, query *order.OrderQuery) (*order.OrderJSON, error)
	// GetOrders pages through every order matching the query
	GetOrders(ctx bCtx.Ctx, query *order.OrderQuery) (*order.OrderbookResponse, error)
	// PostOrder submits a signed order and returns it as recorded
	PostOrder(ctx bCtx.Ctx, o *order.OrderJSON) (*order.OrderJSON, error)

	GetAsset(ctx bCtx.Ctx, id asset.Id) (*asset.OpenSeaAsset, error)
	GetAssets(ctx bCtx.Ctx, query *asset.OpenSeaAssetQuery) (*AssetsResponse, error)
	GetBundles(ctx bCtx.Ctx, query *asset.OpenSeaAssetBundleQuery) (*BundlesResponse, error)
	GetFungibleTokens(ctx bCtx.Ctx, query *asset.OpenSeaFungibleTokenQuery) ([]asset.OpenSeaFungibleToken, error)
}

// AssetsResponse pages assets with a cursor pair
type AssetsResponse struct {
	Assets   []asset.OpenSeaAsset `json:"assets"`
	Next     string               `json:"next,omitempty"`
	Previous string               `json:"previous,omitempty"`
}

type BundlesResponse struct {
	Bundles        []asset.OpenSeaAssetBundle `json:"bundles"`
	EstimatedCount int                        `json:"estimated_count"`
}
