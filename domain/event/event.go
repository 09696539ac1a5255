package event

import (
	"math/big"

	"github.com/x-xyz/gosea/domain"
	"github.com/x-xyz/gosea/domain/asset"
	"github.com/x-xyz/gosea/domain/order"
)

// EventType enumerates every notification the sdk emits to its consumer.
// Closed set; new values only appear together with new sdk operations.
type EventType string

const (
	// transaction lifecycle
	EventTransactionCreated   EventType = "TransactionCreated"
	EventTransactionConfirmed EventType = "TransactionConfirmed"
	EventTransactionDenied    EventType = "TransactionDenied"
	EventTransactionFailed    EventType = "TransactionFailed"

	// pre-transaction prompts
	EventInitializeAccount        EventType = "InitializeAccount"
	EventWrapEth                  EventType = "WrapEth"
	EventWrapEthComplete          EventType = "WrapEthComplete"
	EventUnwrapWeth               EventType = "UnwrapWeth"
	EventUnwrapWethComplete       EventType = "UnwrapWethComplete"
	EventApproveCurrency          EventType = "ApproveCurrency"
	EventApproveCurrencyComplete  EventType = "ApproveCurrencyComplete"
	EventApproveAsset             EventType = "ApproveAsset"
	EventApproveAssetComplete     EventType = "ApproveAssetComplete"
	EventApproveAllAssets         EventType = "ApproveAllAssets"
	EventApproveAllAssetsComplete EventType = "ApproveAllAssetsComplete"

	// order lifecycle
	EventMatchOrders              EventType = "MatchOrders"
	EventCancelOrder              EventType = "CancelOrder"
	EventBulkCancelExistingOrders EventType = "BulkCancelExistingOrders"
	EventCreateOrder              EventType = "CreateOrder"
	EventOrderDenied              EventType = "OrderDenied"

	// transfer operations
	EventTransferAll EventType = "TransferAll"
	EventTransferOne EventType = "TransferOne"
)

// EventData is the single payload shape shared by all event types. Which
// fields are populated follows from the paired EventType tag; consumers must
// discriminate by the tag, never by probing fields.
type EventData struct {
	AccountAddress  domain.Address `json:"accountAddress,omitempty"`
	ToAddress       domain.Address `json:"toAddress,omitempty"`
	ProxyAddress    domain.Address `json:"proxyAddress,omitempty"`
	ContractAddress domain.Address `json:"contractAddress,omitempty"`

	Amount  *big.Int        `json:"amount,omitempty"`
	TokenId *domain.TokenId `json:"tokenId,omitempty"`

	Asset  *asset.OpenSeaAsset  `json:"asset,omitempty"`
	Assets []asset.OpenSeaAsset `json:"assets,omitempty"`

	TransactionHash domain.TxHash `json:"transactionHash,omitempty"`
	Event           EventType     `json:"event,omitempty"`
	Error           error         `json:"-"`

	Order *order.Order `json:"order,omitempty"`
	Buy   *order.Order `json:"buy,omitempty"`
	Sell  *order.Order `json:"sell,omitempty"`

	MatchMetadata string `json:"matchMetadata,omitempty"`
}

// Web3Callback is the result-handler convention of transaction-sending
// collaborators: exactly one of result or err is set, never both.
type Web3Callback func(result interface{}, err error)

// TxnCallback reports whether an approval-style prompt went through.
type TxnCallback func(success bool)
