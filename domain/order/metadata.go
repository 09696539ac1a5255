package order

import (
	"encoding/json"
	"math/big"

	"github.com/x-xyz/gosea/domain"
	"github.com/x-xyz/gosea/domain/schema"
)

// WyvernAsset references one asset moved by an order. A non-fungible
// reference carries id+address, a fungible one carries address+quantity and
// optionally an id (erc1155). Quantity decides which variant this is.
type WyvernAsset struct {
	ID       domain.TokenId `json:"id,omitempty"`
	Address  domain.Address `json:"address"`
	Quantity string         `json:"quantity,omitempty"`
}

// NFTAsset builds a non-fungible asset reference
func NFTAsset(id domain.TokenId, address domain.Address) WyvernAsset {
	return WyvernAsset{ID: id, Address: address.ToLower()}
}

// FungibleAsset builds a fungible asset reference. id may be empty for pure
// erc20 style tokens.
func FungibleAsset(id domain.TokenId, address domain.Address, quantity string) WyvernAsset {
	return WyvernAsset{ID: id, Address: address.ToLower(), Quantity: quantity}
}

func (a WyvernAsset) IsFungible() bool {
	return a.Quantity != ""
}

func (a WyvernAsset) Validate() error {
	if a.Address.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if a.IsFungible() {
		if _, ok := new(big.Int).SetString(a.Quantity, 10); !ok {
			return domain.ErrInvalidNumberFormat
		}
		return nil
	}
	if a.ID == "" {
		return domain.ErrBadParamInput
	}
	return nil
}

// WyvernBundle aggregates assets paired 1:1 in order with schema names, so
// index i's asset must be interpreted under schema i.
type WyvernBundle struct {
	Assets       []WyvernAsset            `json:"assets"`
	Schemas      []schema.WyvernSchemaName `json:"schemas"`
	Name         string                   `json:"name,omitempty"`
	Description  string                   `json:"description,omitempty"`
	ExternalLink string                   `json:"external_link,omitempty"`
}

func (b *WyvernBundle) Validate() error {
	if len(b.Assets) != len(b.Schemas) {
		return domain.ErrBundleLengthMismatch
	}
	for i, a := range b.Assets {
		if err := a.Validate(); err != nil {
			return err
		}
		if !b.Schemas[i].IsValid() {
			return domain.ErrUnsupportedSchema
		}
	}
	return nil
}

// AssetMetadata is the single-asset variant of ExchangeMetadata
type AssetMetadata struct {
	Asset           WyvernAsset             `json:"asset"`
	Schema          schema.WyvernSchemaName `json:"schema"`
	ReferrerAddress domain.Address          `json:"referrerAddress,omitempty"`
}

// BundleMetadata is the bundle variant of ExchangeMetadata
type BundleMetadata struct {
	Bundle          WyvernBundle   `json:"bundle"`
	ReferrerAddress domain.Address `json:"referrerAddress,omitempty"`
}

// ExchangeMetadata is a tagged union, exactly one of Asset or Bundle is
// populated per order. The json shape discriminates on which key is present.
type ExchangeMetadata struct {
	Asset  *AssetMetadata
	Bundle *BundleMetadata
}

func MetadataForAsset(m AssetMetadata) ExchangeMetadata {
	return ExchangeMetadata{Asset: &m}
}

func MetadataForBundle(m BundleMetadata) ExchangeMetadata {
	return ExchangeMetadata{Bundle: &m}
}

func (m ExchangeMetadata) IsBundle() bool {
	return m.Bundle != nil
}

func (m ExchangeMetadata) Validate() error {
	if (m.Asset == nil) == (m.Bundle == nil) {
		return domain.ErrAmbiguousMetadata
	}
	if m.Asset != nil {
		if !m.Asset.Schema.IsValid() {
			return domain.ErrUnsupportedSchema
		}
		return m.Asset.Asset.Validate()
	}
	return m.Bundle.Bundle.Validate()
}

func (m ExchangeMetadata) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Asset != nil {
		return json.Marshal(m.Asset)
	}
	return json.Marshal(m.Bundle)
}

func (m *ExchangeMetadata) UnmarshalJSON(data []byte) error {
	var probe struct {
		Asset  *json.RawMessage `json:"asset"`
		Bundle *json.RawMessage `json:"bundle"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return domain.ErrInvalidJsonFormat
	}
	switch {
	case probe.Asset != nil && probe.Bundle == nil:
		var am AssetMetadata
		if err := json.Unmarshal(data, &am); err != nil {
			return err
		}
		m.Asset, m.Bundle = &am, nil
	case probe.Bundle != nil && probe.Asset == nil:
		var bm BundleMetadata
		if err := json.Unmarshal(data, &bm); err != nil {
			return err
		}
		m.Asset, m.Bundle = nil, &bm
	default:
		return domain.ErrAmbiguousMetadata
	}
	return nil
}
