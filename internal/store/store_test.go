package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
)

func TestGetSetDelete(t *testing.T) {
	s := NewMemoryStore()

	asset := models.Asset{ID: "a1", Code: "SIS-001", Name: "Laptop", Value: 1200}
	require.NoError(t, s.Set(AssetKey(asset.ID), asset))

	var got models.Asset
	require.NoError(t, s.Get(AssetKey("a1"), &got))
	assert.Equal(t, asset, got)

	// upsert: full-value overwrite, last writer wins
	asset.Name = "Laptop (renamed)"
	require.NoError(t, s.Set(AssetKey(asset.ID), asset))
	require.NoError(t, s.Get(AssetKey("a1"), &got))
	assert.Equal(t, "Laptop (renamed)", got.Name)

	require.NoError(t, s.Delete(AssetKey("a1")))
	err := s.Get(AssetKey("a1"), &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAbsentIsNotFound(t *testing.T) {
	s := NewMemoryStore()
	var got models.Asset
	assert.ErrorIs(t, s.Get(AssetKey("missing"), &got), ErrNotFound)
}

func TestDeleteAbsentSucceeds(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Delete(AssetKey("never-existed")))
}

func TestScanByPrefix(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(AssetKey("a1"), models.Asset{ID: "a1", Code: "SIS-001"}))
	require.NoError(t, s.Set(AssetKey("a2"), models.Asset{ID: "a2", Code: "SIS-002"}))
	require.NoError(t, s.Set(CustodianKey("c1"), models.Custodian{ID: "c1", Name: "Jane"}))

	assets := ScanAll[models.Asset](s, PrefixAsset)
	assert.Len(t, assets, 2)

	custodians := ScanAll[models.Custodian](s, PrefixCustodian)
	assert.Len(t, custodians, 1)

	assert.Empty(t, s.ScanByPrefix("unknown:"))
}

func TestScanDegradesToEmptyOnTransportFailure(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(AssetKey("a1"), models.Asset{ID: "a1"}))

	s.FailWith(errors.New("connection refused"))

	// scan swallows the failure so list screens render "no records"
	assert.Empty(t, s.ScanByPrefix(PrefixAsset))
	assert.Empty(t, ScanAll[models.Asset](s, PrefixAsset))
}

func TestPointOperationsPropagateTransportFailure(t *testing.T) {
	s := NewMemoryStore()
	boom := errors.New("connection refused")
	s.FailWith(boom)

	var got models.Asset
	assert.ErrorIs(t, s.Get(AssetKey("a1"), &got), boom)
	assert.ErrorIs(t, s.Set(AssetKey("a1"), models.Asset{ID: "a1"}), boom)
	assert.ErrorIs(t, s.Delete(AssetKey("a1")), boom)
}

func TestScanAllSkipsMalformedRecords(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(AssetKey("a1"), models.Asset{ID: "a1", Code: "SIS-001"}))
	// a raw string under an asset key cannot decode into an Asset
	require.NoError(t, s.Set(AssetKey("junk"), "not an asset"))

	assets := ScanAll[models.Asset](s, PrefixAsset)
	require.Len(t, assets, 1)
	assert.Equal(t, "SIS-001", assets[0].Code)
}

func TestGetCollectionTreatsAbsentAsEmpty(t *testing.T) {
	s := NewMemoryStore()
	var brands []models.Brand
	require.NoError(t, GetCollection(s, KeyBrands, &brands))
	assert.Empty(t, brands)

	require.NoError(t, s.Set(KeyBrands, []models.Brand{{Name: "Dell"}}))
	require.NoError(t, GetCollection(s, KeyBrands, &brands))
	assert.Len(t, brands, 1)
}

func TestRecordIDs(t *testing.T) {
	assert.NotEqual(t, NewRecordID(), NewRecordID())

	// stable ids derive deterministically for legacy records
	assert.Equal(t, StableRecordID("asset", "SIS-001"), StableRecordID("asset", "SIS-001"))
	assert.NotEqual(t, StableRecordID("asset", "SIS-001"), StableRecordID("asset", "SIS-002"))
	assert.NotEqual(t, StableRecordID("asset", "SIS-001"), StableRecordID("custodian", "SIS-001"))
}
