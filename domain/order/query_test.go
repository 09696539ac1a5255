package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/gosea/base/ptr"
	"github.com/x-xyz/gosea/domain"
)

func TestOrderQueryParams(t *testing.T) {
	maker := domain.Address("0x939AE6a4c8DFdbb1f7085189574f0a938013952a")
	side := SideSell
	kind := SaleKindDutchAuction

	q := &OrderQuery{
		Maker:          &maker,
		Side:           &side,
		SaleKind:       &kind,
		Bundled:        ptr.Bool(false),
		IncludeInvalid: ptr.Bool(true),
		TokenId:        (*domain.TokenId)(ptr.String("42")),
		TokenIds:       []domain.TokenId{"7", "8"},
		Limit:          ptr.Int(50),
		Offset:         ptr.Int(100),
	}

	v := q.Params()
	assert.Equal(t, "0x939ae6a4c8dfdbb1f7085189574f0a938013952a", v.Get("maker"))
	assert.Equal(t, "1", v.Get("side"))
	assert.Equal(t, "1", v.Get("sale_kind"))
	assert.Equal(t, "false", v.Get("bundled"))
	assert.Equal(t, "true", v.Get("include_invalid"))
	assert.Equal(t, "42", v.Get("token_id"))
	assert.Equal(t, []string{"7", "8"}, v["token_ids"])
	assert.Equal(t, "50", v.Get("limit"))
	assert.Equal(t, "100", v.Get("offset"))

	// unset filters stay absent rather than defaulting
	assert.False(t, v.Has("taker"))
	assert.False(t, v.Has("is_english"))
}

func TestOrderQueryParamsEmpty(t *testing.T) {
	q := &OrderQuery{}
	assert.Empty(t, q.Params())
}
