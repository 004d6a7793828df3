package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/store"
)

func newService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	return NewService(s), s
}

func TestCreateAssetAssignsIDAndPersists(t *testing.T) {
	svc, s := newService(t)

	asset := models.Asset{Code: "SIS-001", Name: "Laptop", Value: 1200}
	require.NoError(t, svc.CreateAsset(&asset))
	assert.NotEmpty(t, asset.ID)
	assert.Equal(t, models.AssetStatusActive, asset.Status)

	var got models.Asset
	require.NoError(t, s.Get(store.AssetKey(asset.ID), &got))
	assert.Equal(t, "SIS-001", got.Code)
}

func TestAssetCodeUniquenessIsCaseInsensitive(t *testing.T) {
	svc, s := newService(t)

	require.NoError(t, svc.CreateAsset(&models.Asset{Code: "SIS-001", Name: "Laptop"}))
	countBefore := s.Len()

	// case variation of an existing code is rejected before any write
	err := svc.CreateAsset(&models.Asset{Code: "sis-001", Name: "Imposter"})
	assert.ErrorIs(t, err, ErrDuplicateCode)
	assert.Equal(t, countBefore, s.Len())
}

func TestUpdateAssetKeepsOwnCode(t *testing.T) {
	svc, _ := newService(t)

	a := models.Asset{Code: "SIS-001", Name: "Laptop"}
	require.NoError(t, svc.CreateAsset(&a))
	b := models.Asset{Code: "SIS-002", Name: "Printer"}
	require.NoError(t, svc.CreateAsset(&b))

	// keeping its own code is fine
	a.Name = "Laptop (upgraded)"
	require.NoError(t, svc.UpdateAsset(&a))

	// stealing another asset's code is not
	a.Code = "sis-002"
	assert.ErrorIs(t, svc.UpdateAsset(&a), ErrDuplicateCode)
}

func TestCreateAssetRejectsUnknownStatus(t *testing.T) {
	svc, _ := newService(t)
	err := svc.CreateAsset(&models.Asset{Code: "SIS-001", Status: "vaporized"})
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestDeleteAssetIsIdempotent(t *testing.T) {
	svc, _ := newService(t)
	assert.NoError(t, svc.DeleteAsset("never-existed"))
}

func TestNextAssetCodeUsesGroupPrefix(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.SaveGroup(models.AssetGroup{Code: "SIS", CodePrefix: "SIS", UsefulLifeYears: 5, AnnualRatePercent: 20}))

	code, err := svc.NextAssetCode("SIS")
	require.NoError(t, err)
	assert.Equal(t, "SIS-001", code)

	require.NoError(t, svc.CreateAsset(&models.Asset{Code: code, GroupCode: "SIS"}))
	require.NoError(t, svc.CreateAsset(&models.Asset{Code: "SIS-007", GroupCode: "SIS"}))

	code, err = svc.NextAssetCode("SIS")
	require.NoError(t, err)
	assert.Equal(t, "SIS-008", code)

	_, err = svc.NextAssetCode("NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBrandDedupIsCaseInsensitive(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.AddBrand(models.Brand{Name: "Dell"}))
	assert.ErrorIs(t, svc.AddBrand(models.Brand{Name: "DELL"}), ErrDuplicateName)
	assert.ErrorIs(t, svc.AddBrand(models.Brand{Name: "  dell "}), ErrDuplicateName)

	require.NoError(t, svc.RemoveBrand("dell"))
	brands, err := svc.ListBrands()
	require.NoError(t, err)
	assert.Empty(t, brands)
}

func TestAssetNameCatalogDedup(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.AddAssetName(models.AssetNameEntry{Name: "Laptop"}))
	assert.ErrorIs(t, svc.AddAssetName(models.AssetNameEntry{Name: "laptop"}), ErrDuplicateName)
}

func TestSaveGroupReplacesByCode(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.SaveGroup(models.AssetGroup{Code: "SIS", Name: "Systems", UsefulLifeYears: 5, AnnualRatePercent: 20}))
	require.NoError(t, svc.SaveGroup(models.AssetGroup{Code: "sis", Name: "Systems v2", UsefulLifeYears: 4, AnnualRatePercent: 25}))

	groups, err := svc.ListGroups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Systems v2", groups[0].Name)
}

func TestCircularSequenceAndLifecycle(t *testing.T) {
	svc, _ := newService(t)
	now := time.Now()

	first, err := svc.CreateCircular("all custodians", "Annual stocktake", now)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, models.CircularStatusPending, first.Status)

	second, err := svc.CreateCircular("IT", "Return spare laptops", now)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Number)

	// numbers keep growing even after a deletion
	require.NoError(t, svc.DeleteCircular(1))
	third, err := svc.CreateCircular("all", "Follow-up", now)
	require.NoError(t, err)
	assert.Equal(t, 3, third.Number)

	// Pending → Sent → Archived, then terminal
	c, err := svc.AdvanceCircular(2)
	require.NoError(t, err)
	assert.Equal(t, models.CircularStatusSent, c.Status)

	c, err = svc.AdvanceCircular(2)
	require.NoError(t, err)
	assert.Equal(t, models.CircularStatusArchived, c.Status)

	_, err = svc.AdvanceCircular(2)
	assert.ErrorIs(t, err, ErrBadTransition)

	_, err = svc.AdvanceCircular(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDepreciationUsesGroupPolicy(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.SaveGroup(models.AssetGroup{Code: "SIS", UsefulLifeYears: 5, AnnualRatePercent: 20}))

	acquired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	asset := &models.Asset{Code: "SIS-001", Value: 1000, AcquisitionDate: acquired, GroupCode: "SIS"}

	asOf := acquired.Add(time.Duration(2 * 365.25 * 24 * float64(time.Hour)))
	r := svc.Depreciation(asset, asOf)
	assert.InDelta(t, 400.0, r.AccumulatedDepreciation, 1e-6)

	// unknown group falls back to the default 10y/10% policy
	orphan := &models.Asset{Code: "X-001", Value: 1000, AcquisitionDate: acquired, GroupCode: "NOPE"}
	r = svc.Depreciation(orphan, asOf)
	assert.InDelta(t, 200.0, r.AccumulatedDepreciation, 1e-6)
}

func TestCompanyConfigDefaultsToEmpty(t *testing.T) {
	svc, _ := newService(t)

	cfg, err := svc.GetCompanyConfig()
	require.NoError(t, err)
	assert.Equal(t, &models.CompanyConfig{}, cfg)

	require.NoError(t, svc.SaveCompanyConfig(&models.CompanyConfig{Name: "ACME Corp"}))
	cfg, err = svc.GetCompanyConfig()
	require.NoError(t, err)
	assert.Equal(t, "ACME Corp", cfg.Name)
}

func TestGetUserByEmailIsCaseInsensitive(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.SaveUser(&models.User{Email: "Admin@Example.com", Name: "Admin"}))

	u, err := svc.GetUserByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Admin", u.Name)

	_, err = svc.GetUserByEmail("ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
