package asset

import (
	"github.com/x-xyz/gosea/domain"
	"github.com/x-xyz/gosea/domain/schema"
)

// Asset is the bare on-chain reference every richer view is layered over
type Asset struct {
	TokenId      domain.TokenId              `json:"token_id"`
	TokenAddress domain.Address              `json:"asset_contract_address"`
	SchemaName   schema.WyvernSchemaName     `json:"schema_name,omitempty"`
	Version      schema.TokenStandardVersion `json:"version,omitempty"`
	Name         string                      `json:"name,omitempty"`
	Decimals     int32                       `json:"decimals,omitempty"`
}

func (a Asset) ToId() Id {
	return Id{
		TokenId: a.TokenId,
		Address: a.TokenAddress.ToLower(),
	}
}

type Id struct {
	TokenId domain.TokenId `json:"token_id"`
	Address domain.Address `json:"asset_contract_address"`
}

// OpenSeaAssetContract is the enriched, read-only view of the deployed token
// contract as the orderbook reports it
type OpenSeaAssetContract struct {
	Name        string                  `json:"name"`
	Address     domain.Address          `json:"address"`
	Type        string                  `json:"asset_contract_type"`
	SchemaName  schema.WyvernSchemaName `json:"schema_name"`
	TokenSymbol string                  `json:"symbol"`

	OpenSeaFees

	BuyerFeeBasisPoints  int `json:"buyer_fee_basis_points"`
	SellerFeeBasisPoints int `json:"seller_fee_basis_points"`

	Description   string         `json:"description"`
	ImageUrl      string         `json:"image_url"`
	ExternalLink  string         `json:"external_link"`
	WikiLink      string         `json:"wiki_link,omitempty"`
	PayoutAddress domain.Address `json:"payout_address,omitempty"`

	OnlyProxiedTransfers bool `json:"only_proxied_transfers"`
}

// OpenSeaCollectionStats is the rolling trade statistics block of a collection
type OpenSeaCollectionStats struct {
	OneDayVolume    float64 `json:"one_day_volume"`
	OneDayChange    float64 `json:"one_day_change"`
	OneDaySales     float64 `json:"one_day_sales"`
	SevenDayVolume  float64 `json:"seven_day_volume"`
	SevenDayChange  float64 `json:"seven_day_change"`
	SevenDaySales   float64 `json:"seven_day_sales"`
	ThirtyDayVolume float64 `json:"thirty_day_volume"`
	ThirtyDayChange float64 `json:"thirty_day_change"`
	ThirtyDaySales  float64 `json:"thirty_day_sales"`
	TotalVolume     float64 `json:"total_volume"`
	TotalSales      float64 `json:"total_sales"`
	TotalSupply     float64 `json:"total_supply"`
	NumOwners       int64   `json:"num_owners"`
	AveragePrice    float64 `json:"average_price"`
	MarketCap       float64 `json:"market_cap"`
	FloorPrice      float64 `json:"floor_price"`
}

// OpenSeaCollection groups assets under a slug with its own fee schedule,
// which ComputeFees merges with the contract's
type OpenSeaCollection struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	CreatedDate string `json:"created_date"`

	OpenSeaFees

	Hidden   bool `json:"hidden"`
	Featured bool `json:"featured"`

	ImageUrl         string `json:"image_url"`
	LargeImageUrl    string `json:"large_image_url,omitempty"`
	FeaturedImageUrl string `json:"featured_image_url,omitempty"`
	BannerImageUrl   string `json:"banner_image_url,omitempty"`

	ExternalLink      string         `json:"external_url,omitempty"`
	WikiLink          string         `json:"wiki_url,omitempty"`
	DiscordUrl        string         `json:"discord_url,omitempty"`
	TelegramUrl       string         `json:"telegram_url,omitempty"`
	TwitterUsername   string         `json:"twitter_username,omitempty"`
	InstagramUsername string         `json:"instagram_username,omitempty"`
	MediumUsername    string         `json:"medium_username,omitempty"`
	PayoutAddress     domain.Address `json:"payout_address,omitempty"`

	Stats *OpenSeaCollectionStats `json:"stats,omitempty"`

	TraitStats map[string]float64 `json:"traits,omitempty"`
}

// OpenSeaAsset is the fully enriched metadata view of a single token
type OpenSeaAsset struct {
	Asset

	AssetContract OpenSeaAssetContract `json:"asset_contract"`
	Collection    OpenSeaCollection    `json:"collection"`
	Owner         OpenSeaAccount       `json:"owner"`

	Description     string `json:"description"`
	ExternalLink    string `json:"external_link,omitempty"`
	Permalink       string `json:"permalink,omitempty"`
	NumSales        int64  `json:"num_sales"`
	BackgroundColor string `json:"background_color,omitempty"`

	ImageUrl          string `json:"image_url"`
	ImagePreviewUrl   string `json:"image_preview_url,omitempty"`
	ImageThumbnailUrl string `json:"image_thumbnail_url,omitempty"`
	ImageOriginalUrl  string `json:"image_original_url,omitempty"`
	AnimationUrl      string `json:"animation_url,omitempty"`

	LastSale *AssetEvent `json:"last_sale,omitempty"`

	IsPresale bool `json:"is_presale"`

	// TransferFee applies to assets whose contract charges one on movement
	TransferFee             string                `json:"transfer_fee,omitempty"`
	TransferFeePaymentToken *OpenSeaFungibleToken `json:"transfer_fee_payment_token,omitempty"`
}

// OpenSeaAssetBundle is a set of assets sold together as one listing
type OpenSeaAssetBundle struct {
	Maker         *OpenSeaAccount       `json:"maker,omitempty"`
	Assets        []OpenSeaAsset        `json:"assets"`
	Name          string                `json:"name"`
	Slug          string                `json:"slug"`
	Permalink     string                `json:"permalink,omitempty"`
	Description   string                `json:"description,omitempty"`
	ExternalLink  string                `json:"external_link,omitempty"`
	AssetContract *OpenSeaAssetContract `json:"asset_contract,omitempty"`
}
