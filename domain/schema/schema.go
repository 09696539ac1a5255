package schema

// WyvernSchemaName selects the asset-transfer ABI encoding a target contract
// understands. Picking a schema that does not match the on-chain token type
// makes the transfer revert.
type WyvernSchemaName string

const (
	SchemaERC20               WyvernSchemaName = "ERC20"
	SchemaERC721              WyvernSchemaName = "ERC721"
	SchemaERC721v3            WyvernSchemaName = "ERC721v3"
	SchemaERC1155             WyvernSchemaName = "ERC1155"
	SchemaLegacyEnjin         WyvernSchemaName = "Enjin"
	SchemaENSShortNameAuction WyvernSchemaName = "ENSShortNameAuction"
	SchemaUnknown             WyvernSchemaName = "unknown"
)

func ToSchemaName(name string) WyvernSchemaName {
	switch name {
	case string(SchemaERC20):
		return SchemaERC20
	case string(SchemaERC721):
		return SchemaERC721
	case string(SchemaERC721v3):
		return SchemaERC721v3
	case string(SchemaERC1155):
		return SchemaERC1155
	case string(SchemaLegacyEnjin):
		return SchemaLegacyEnjin
	case string(SchemaENSShortNameAuction):
		return SchemaENSShortNameAuction
	}
	return SchemaUnknown
}

func (n WyvernSchemaName) IsValid() bool {
	return n != SchemaUnknown && ToSchemaName(string(n)) == n
}

func (n WyvernSchemaName) IsFungible() bool {
	return n == SchemaERC20 || n == SchemaERC1155
}

// TokenStandardVersion records known quirks of deployed ERC721 contracts so
// calling code can branch on compatibility
type TokenStandardVersion string

const (
	// TokenStandardUnsupported marks contracts no known transfer path works for
	TokenStandardUnsupported TokenStandardVersion = "unsupported"
	// TokenStandardLocked marks contracts whose transfer functions are locked
	TokenStandardLocked    TokenStandardVersion = "locked"
	TokenStandardEnjin     TokenStandardVersion = "1155-1.0"
	TokenStandardERC721v1  TokenStandardVersion = "1.0"
	TokenStandardERC721v2  TokenStandardVersion = "2.0"
	TokenStandardERC721v3  TokenStandardVersion = "3.0"
)

// UsesTakeOwnership reports whether the deployed contract predates
// transferFrom and must be moved with takeOwnership instead
func (v TokenStandardVersion) UsesTakeOwnership() bool {
	return v == TokenStandardERC721v1
}

// SupportsApproveAll reports whether setApprovalForAll exists on the
// deployed contract
func (v TokenStandardVersion) SupportsApproveAll() bool {
	return v == TokenStandardERC721v3 || v == TokenStandardEnjin
}

func (v TokenStandardVersion) IsTransferable() bool {
	return v != TokenStandardUnsupported && v != TokenStandardLocked
}
