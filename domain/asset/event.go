package asset

import (
	"github.com/x-xyz/gosea/domain"
)

// AssetEventType enumerates the historical happenings the orderbook records
// for an asset
type AssetEventType string

const (
	AssetEventCreated      AssetEventType = "created"
	AssetEventSuccessful   AssetEventType = "successful"
	AssetEventCancelled    AssetEventType = "cancelled"
	AssetEventOfferEntered AssetEventType = "offer_entered"
	AssetEventBidEntered   AssetEventType = "bid_entered"
	AssetEventBidWithdrawn AssetEventType = "bid_withdrawn"
	AssetEventTransfer     AssetEventType = "transfer"
	AssetEventApprove      AssetEventType = "approve"
)

// AuctionType distinguishes how the sale behind an event was priced
type AuctionType string

const (
	AuctionTypeDutch    AuctionType = "dutch"
	AuctionTypeEnglish  AuctionType = "english"
	AuctionTypeMinPrice AuctionType = "min_price"
)

// Transaction links an asset event to its on-chain transaction
type Transaction struct {
	TransactionHash domain.TxHash     `json:"transaction_hash"`
	FromAccount     OpenSeaAccount    `json:"from_account"`
	ToAccount       OpenSeaAccount    `json:"to_account"`
	BlockNumber     *string           `json:"block_number,omitempty"`
	BlockHash       *domain.BlockHash `json:"block_hash,omitempty"`
	Timestamp       string            `json:"timestamp,omitempty"`
}

// AssetEvent is an immutable historical record. TotalPrice stays a decimal
// string for the same precision reasons order amounts do.
type AssetEvent struct {
	EventType      AssetEventType        `json:"event_type"`
	EventTimestamp string                `json:"event_timestamp"`
	AuctionType    AuctionType           `json:"auction_type,omitempty"`
	TotalPrice     string                `json:"total_price,omitempty"`
	Quantity       string                `json:"quantity,omitempty"`
	Transaction    *Transaction          `json:"transaction,omitempty"`
	PaymentToken   *OpenSeaFungibleToken `json:"payment_token,omitempty"`
	Seller         *OpenSeaAccount       `json:"seller,omitempty"`
	WinnerAccount  *OpenSeaAccount       `json:"winner_account,omitempty"`
	FromAccount    *OpenSeaAccount       `json:"from_account,omitempty"`
	ToAccount      *OpenSeaAccount       `json:"to_account,omitempty"`
	CreatedDate    string                `json:"created_date,omitempty"`
}
