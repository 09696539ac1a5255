package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/gosea/domain"
)

func TestComputeFees(t *testing.T) {
	cases := []struct {
		name       string
		fees       OpenSeaFees
		bounty     int
		wantBuyer  int
		wantSeller int
		wantErr    error
	}{
		{
			name: "totals are the sum of constituents",
			fees: OpenSeaFees{
				OpenseaBuyerFeeBasisPoints:  0,
				OpenseaSellerFeeBasisPoints: 250,
				DevBuyerFeeBasisPoints:      100,
				DevSellerFeeBasisPoints:     500,
			},
			wantBuyer:  100,
			wantSeller: 750,
		},
		{
			name:       "zero fees",
			fees:       OpenSeaFees{},
			wantBuyer:  0,
			wantSeller: 0,
		},
		{
			name: "boundary values hold",
			fees: OpenSeaFees{
				OpenseaSellerFeeBasisPoints: 10000,
			},
			wantBuyer:  0,
			wantSeller: 10000,
		},
		{
			name: "negative basis points rejected",
			fees: OpenSeaFees{
				DevBuyerFeeBasisPoints: -1,
			},
			wantErr: domain.ErrInvalidBps,
		},
		{
			name: "over ten thousand rejected",
			fees: OpenSeaFees{
				OpenseaBuyerFeeBasisPoints: 10001,
			},
			wantErr: domain.ErrInvalidBps,
		},
		{
			name: "summed side exceeding ten thousand rejected",
			fees: OpenSeaFees{
				OpenseaSellerFeeBasisPoints: 6000,
				DevSellerFeeBasisPoints:     6000,
			},
			wantErr: domain.ErrInvalidBps,
		},
		{
			name:    "bounty out of range rejected",
			fees:    OpenSeaFees{},
			bounty:  10001,
			wantErr: domain.ErrInvalidBps,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ComputeFees(c.fees, c.bounty)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantBuyer, got.TotalBuyerFeeBasisPoints)
			assert.Equal(t, c.wantSeller, got.TotalSellerFeeBasisPoints)
			assert.Equal(t,
				got.OpenseaBuyerFeeBasisPoints+got.DevBuyerFeeBasisPoints,
				got.TotalBuyerFeeBasisPoints)
			assert.Equal(t,
				got.OpenseaSellerFeeBasisPoints+got.DevSellerFeeBasisPoints,
				got.TotalSellerFeeBasisPoints)
		})
	}
}
