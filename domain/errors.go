package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrUnsupportedSchema   = errors.New("Unsupported schema")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")

	// order errors
	ErrInvalidOrderSide     = errors.New("invalid order side")
	ErrInvalidSaleKind      = errors.New("invalid sale kind")
	ErrInvalidFeeMethod     = errors.New("invalid fee method")
	ErrInvalidHowToCall     = errors.New("invalid how-to-call mode")
	ErrAmbiguousMetadata    = errors.New("order metadata must carry exactly one of asset or bundle")
	ErrBundleLengthMismatch = errors.New("bundle assets and schemas must pair index-wise")
	ErrOrderTerminal        = errors.New("order is cancelled, finalized or marked invalid")
	ErrMissingAuctionExtra  = errors.New("dutch auction requires extra > 0")
	ErrInvalidAuctionWindow = errors.New("expiration time must be after listing time")
	ErrUnsignedOrder        = errors.New("order is missing its signature")
	ErrUnhashedOrder        = errors.New("order is missing its hash")
	ErrSideMismatch         = errors.New("matched orders must pair a buy with a sell")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidBps       = errors.New("basis points must lie in [0, 10000]")
)
