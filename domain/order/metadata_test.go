package order

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/gosea/domain"
	"github.com/x-xyz/gosea/domain/schema"
)

func TestExchangeMetadataExactlyOneVariant(t *testing.T) {
	asset := MetadataForAsset(AssetMetadata{
		Asset:  NFTAsset("1", "0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb"),
		Schema: schema.SchemaERC721,
	})
	bundle := MetadataForBundle(BundleMetadata{
		Bundle: WyvernBundle{
			Assets:  []WyvernAsset{NFTAsset("1", "0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb")},
			Schemas: []schema.WyvernSchemaName{schema.SchemaERC721},
		},
	})

	assert.NoError(t, asset.Validate())
	assert.NoError(t, bundle.Validate())

	neither := ExchangeMetadata{}
	assert.ErrorIs(t, neither.Validate(), domain.ErrAmbiguousMetadata)

	both := ExchangeMetadata{Asset: asset.Asset, Bundle: bundle.Bundle}
	assert.ErrorIs(t, both.Validate(), domain.ErrAmbiguousMetadata)
}

func TestExchangeMetadataJSONDiscriminates(t *testing.T) {
	m := MetadataForAsset(AssetMetadata{
		Asset:           NFTAsset("9", "0xB47E3cd837dDF8e4c57F05d70Ab865de6e193BBB"),
		Schema:          schema.SchemaERC721,
		ReferrerAddress: "0x939ae6a4c8dfdbb1f7085189574f0a938013952a",
	})

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"asset"`)
	assert.NotContains(t, string(raw), `"bundle"`)

	var back ExchangeMetadata
	require.NoError(t, json.Unmarshal(raw, &back))
	require.NotNil(t, back.Asset)
	assert.Nil(t, back.Bundle)
	assert.Equal(t, domain.TokenId("9"), back.Asset.Asset.ID)
	assert.Equal(t, schema.SchemaERC721, back.Asset.Schema)
}

func TestExchangeMetadataRejectsAmbiguousJSON(t *testing.T) {
	var m ExchangeMetadata
	err := json.Unmarshal([]byte(`{"schema": "ERC721"}`), &m)
	assert.ErrorIs(t, err, domain.ErrAmbiguousMetadata)

	err = json.Unmarshal([]byte(`{"asset": {"id":"1","address":"0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb"}, "bundle": {"assets":[],"schemas":[]}}`), &m)
	assert.ErrorIs(t, err, domain.ErrAmbiguousMetadata)
}

func TestWyvernBundlePairing(t *testing.T) {
	cases := []struct {
		name    string
		bundle  WyvernBundle
		wantErr error
	}{
		{
			name: "assets and schemas pair index-wise",
			bundle: WyvernBundle{
				Assets: []WyvernAsset{
					NFTAsset("1", "0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb"),
					FungibleAsset("2", "0x495f947276749ce646f68ac8c248420045cb7b5e", "10"),
				},
				Schemas: []schema.WyvernSchemaName{schema.SchemaERC721, schema.SchemaERC1155},
			},
		},
		{
			name: "length mismatch",
			bundle: WyvernBundle{
				Assets: []WyvernAsset{
					NFTAsset("1", "0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb"),
				},
				Schemas: []schema.WyvernSchemaName{schema.SchemaERC721, schema.SchemaERC1155},
			},
			wantErr: domain.ErrBundleLengthMismatch,
		},
		{
			name: "unknown schema",
			bundle: WyvernBundle{
				Assets: []WyvernAsset{
					NFTAsset("1", "0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb"),
				},
				Schemas: []schema.WyvernSchemaName{"CryptoKitties"},
			},
			wantErr: domain.ErrUnsupportedSchema,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.bundle.Validate()
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWyvernBundleOrderPreservedThroughJSON(t *testing.T) {
	bundle := WyvernBundle{
		Assets: []WyvernAsset{
			NFTAsset("3", "0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb"),
			NFTAsset("1", "0x60e4d786628fea6478f785a6d7e704777c86a7c6"),
			FungibleAsset("", "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", "5"),
		},
		Schemas: []schema.WyvernSchemaName{
			schema.SchemaERC721,
			schema.SchemaERC721,
			schema.SchemaERC20,
		},
	}

	raw, err := json.Marshal(bundle)
	require.NoError(t, err)

	var back WyvernBundle
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, bundle.Assets, back.Assets)
	assert.Equal(t, bundle.Schemas, back.Schemas)
}

func TestWyvernAssetValidate(t *testing.T) {
	cases := []struct {
		name    string
		asset   WyvernAsset
		wantErr bool
	}{
		{
			name:  "nft",
			asset: NFTAsset("1", "0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb"),
		},
		{
			name:  "fungible without id",
			asset: FungibleAsset("", "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", "100"),
		},
		{
			name:    "nft missing id",
			asset:   WyvernAsset{Address: "0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb"},
			wantErr: true,
		},
		{
			name:    "fungible with bad quantity",
			asset:   FungibleAsset("", "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", "ten"),
			wantErr: true,
		},
		{
			name:    "missing address",
			asset:   WyvernAsset{ID: "1"},
			wantErr: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.asset.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
