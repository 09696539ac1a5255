package asset

import (
	"math/big"

	"github.com/x-xyz/gosea/base/validator"
	"github.com/x-xyz/gosea/domain"
)

// OpenSeaFees carries the four basis-point fee fields both asset contracts
// and collections report. Basis points are integers in [0, 10000], parts
// per 10000.
type OpenSeaFees struct {
	OpenseaBuyerFeeBasisPoints  int `json:"opensea_buyer_fee_basis_points" validate:"gte=0,lte=10000"`
	OpenseaSellerFeeBasisPoints int `json:"opensea_seller_fee_basis_points" validate:"gte=0,lte=10000"`
	DevBuyerFeeBasisPoints      int `json:"dev_buyer_fee_basis_points" validate:"gte=0,lte=10000"`
	DevSellerFeeBasisPoints     int `json:"dev_seller_fee_basis_points" validate:"gte=0,lte=10000"`
}

func (f OpenSeaFees) Validate() error {
	if err := validator.Struct(f); err != nil {
		return domain.ErrInvalidBps
	}
	return nil
}

// ComputedFees merges the contract/collection fee sources at computation
// time, adding the per-side totals the exchange actually charges.
type ComputedFees struct {
	OpenSeaFees

	TotalBuyerFeeBasisPoints  int `json:"totalBuyerFeeBasisPoints"`
	TotalSellerFeeBasisPoints int `json:"totalSellerFeeBasisPoints"`

	// SellerBountyBasisPoints rewards whoever refers the winning buyer
	SellerBountyBasisPoints int `json:"sellerBountyBasisPoints"`

	TransferFee             *big.Int       `json:"transferFee,omitempty"`
	TransferFeeTokenAddress domain.Address `json:"transferFeeTokenAddress,omitempty"`
}

// ComputeFees derives the totals from their constituents. The sum invariant
// totalBuyer = openseaBuyer + devBuyer (and analogously for the seller side)
// is the one computation this schema implies.
func ComputeFees(fees OpenSeaFees, sellerBountyBasisPoints int) (*ComputedFees, error) {
	if err := fees.Validate(); err != nil {
		return nil, err
	}
	if sellerBountyBasisPoints < 0 || sellerBountyBasisPoints > domain.MaxBasisPoints {
		return nil, domain.ErrInvalidBps
	}

	c := &ComputedFees{
		OpenSeaFees:               fees,
		TotalBuyerFeeBasisPoints:  fees.OpenseaBuyerFeeBasisPoints + fees.DevBuyerFeeBasisPoints,
		TotalSellerFeeBasisPoints: fees.OpenseaSellerFeeBasisPoints + fees.DevSellerFeeBasisPoints,
		SellerBountyBasisPoints:   sellerBountyBasisPoints,
	}
	if c.TotalBuyerFeeBasisPoints > domain.MaxBasisPoints ||
		c.TotalSellerFeeBasisPoints > domain.MaxBasisPoints {
		return nil, domain.ErrInvalidBps
	}
	return c, nil
}
