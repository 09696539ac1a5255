package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSchemaName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want WyvernSchemaName
	}{
		{
			name: "erc721",
			in:   "ERC721",
			want: SchemaERC721,
		},
		{
			name: "erc1155",
			in:   "ERC1155",
			want: SchemaERC1155,
		},
		{
			name: "legacy enjin",
			in:   "Enjin",
			want: SchemaLegacyEnjin,
		},
		{
			name: "unrecognized falls back",
			in:   "CryptoKitties",
			want: SchemaUnknown,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ToSchemaName(c.in))
		})
	}
}

func TestSchemaNameIsFungible(t *testing.T) {
	assert.True(t, SchemaERC20.IsFungible())
	assert.True(t, SchemaERC1155.IsFungible())
	assert.False(t, SchemaERC721.IsFungible())
	assert.False(t, SchemaENSShortNameAuction.IsFungible())
}

func TestTokenStandardVersion(t *testing.T) {
	assert.True(t, TokenStandardERC721v1.UsesTakeOwnership())
	assert.False(t, TokenStandardERC721v2.UsesTakeOwnership())

	assert.True(t, TokenStandardERC721v3.SupportsApproveAll())
	assert.False(t, TokenStandardERC721v1.SupportsApproveAll())

	assert.False(t, TokenStandardLocked.IsTransferable())
	assert.False(t, TokenStandardUnsupported.IsTransferable())
	assert.True(t, TokenStandardERC721v2.IsTransferable())
}

func TestReplaceableInputs(t *testing.T) {
	abi := &AnnotatedFunctionABI{
		Type: AbiTypeFunction,
		Name: "transferFrom",
		Inputs: []AnnotatedFunctionInput{
			{Name: "from", Type: "address", Kind: InputKindOwner},
			{Name: "to", Type: "address", Kind: InputKindReplaceable},
			{Name: "tokenId", Type: "uint256", Kind: InputKindAsset},
		},
		StateMutability: StateMutabilityNonpayable,
	}
	assert.Equal(t, []int{1}, abi.ReplaceableInputs())
	assert.False(t, abi.StateMutability.IsReadOnly())
}
