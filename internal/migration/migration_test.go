package migration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/store"
)

func sampleCache() *LegacyCache {
	return &LegacyCache{
		Assets: []models.Asset{
			{ID: "a1", Code: "SIS-001", Name: "Laptop"},
			{ID: "a2", Code: "SIS-002", Name: "Printer"},
		},
		Custodians: []models.Custodian{{ID: "c1", Name: "Jane", NationalID: "01020304"}},
		Brands:     []models.Brand{{Name: "Dell"}},
	}
}

func TestFirstRunMigratesAndWritesMarker(t *testing.T) {
	s := store.NewMemoryStore()

	state, err := NewReconciler(s).RunOnce(sampleCache())
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, state)

	assert.Len(t, store.ScanAll[models.Asset](s, store.PrefixAsset), 2)
	assert.Len(t, store.ScanAll[models.Custodian](s, store.PrefixCustodian), 1)

	var brands []models.Brand
	require.NoError(t, s.Get(store.KeyBrands, &brands))
	assert.Equal(t, "Dell", brands[0].Name)

	var m marker
	assert.NoError(t, s.Get(store.KeyMigrationDone, &m))
}

func TestMarkerGatesSecondRun(t *testing.T) {
	s := store.NewMemoryStore()
	r := NewReconciler(s)

	_, err := r.RunOnce(sampleCache())
	require.NoError(t, err)
	countAfterFirst := s.Len()

	state, err := r.RunOnce(sampleCache())
	require.NoError(t, err)
	assert.Equal(t, StateSkipped, state)
	assert.Equal(t, countAfterFirst, s.Len())
}

func TestEmptyCacheSkipsButStillWritesMarker(t *testing.T) {
	s := store.NewMemoryStore()

	state, err := NewReconciler(s).RunOnce(&LegacyCache{})
	require.NoError(t, err)
	assert.Equal(t, StateSkipped, state)

	// marker present so a still-empty cache is not rescanned every start
	var m marker
	assert.NoError(t, s.Get(store.KeyMigrationDone, &m))
	assert.Equal(t, 1, s.Len())
}

// markerLessStore drops the marker write, simulating a crash between
// completing the transfer and persisting the marker
type markerLessStore struct {
	*store.MemoryStore
}

func (m *markerLessStore) Set(key string, value interface{}) error {
	if key == store.KeyMigrationDone {
		return errors.New("connection reset")
	}
	return m.MemoryStore.Set(key, value)
}

func TestRerunAfterLostMarkerCreatesNoDuplicates(t *testing.T) {
	inner := store.NewMemoryStore()

	// first run transfers everything but fails to persist the marker
	state, err := NewReconciler(&markerLessStore{MemoryStore: inner}).RunOnce(sampleCache())
	require.Error(t, err)
	assert.Equal(t, StateFailed, state)
	countAfterFirst := inner.Len()

	// retry with a healthy store: same keys are overwritten, not appended
	state, err = NewReconciler(inner).RunOnce(sampleCache())
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, state)
	assert.Equal(t, countAfterFirst+1, inner.Len()) // only the marker is new
	assert.Len(t, store.ScanAll[models.Asset](inner, store.PrefixAsset), 2)
}

func TestLegacyRecordsWithoutIDsMigrateIdempotently(t *testing.T) {
	cache := &LegacyCache{
		Assets: []models.Asset{{Code: "SIS-001", Name: "Laptop"}},
	}

	inner := store.NewMemoryStore()
	state, err := NewReconciler(&markerLessStore{MemoryStore: inner}).RunOnce(cache)
	require.Error(t, err)
	assert.Equal(t, StateFailed, state)

	_, err = NewReconciler(inner).RunOnce(cache)
	require.NoError(t, err)

	// the derived id is stable across runs, so still exactly one asset
	assert.Len(t, store.ScanAll[models.Asset](inner, store.PrefixAsset), 1)
}

func TestFailureMidTransferLeavesMarkerAbsent(t *testing.T) {
	s := store.NewMemoryStore()
	failing := &failAfterStore{MemoryStore: s, allowed: 1}

	state, err := NewReconciler(failing).RunOnce(sampleCache())
	require.Error(t, err)
	assert.Equal(t, StateFailed, state)

	var m marker
	assert.ErrorIs(t, s.Get(store.KeyMigrationDone, &m), store.ErrNotFound)
}

type failAfterStore struct {
	*store.MemoryStore
	allowed int
	writes  int
}

func (f *failAfterStore) Set(key string, value interface{}) error {
	f.writes++
	if f.writes > f.allowed {
		return errors.New("connection reset")
	}
	return f.MemoryStore.Set(key, value)
}

func TestLoadCacheFile(t *testing.T) {
	dir := t.TempDir()

	// missing file is an empty cache, not an error
	cache, err := LoadCacheFile(filepath.Join(dir, "nope.json"))
	require.NoError(t, err)
	assert.True(t, cache.Empty())

	path := filepath.Join(dir, "legacy_cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"assets":[{"id":"a1","code":"SIS-001"}],"brands":[{"name":"Dell"}]}`), 0o644))

	cache, err = LoadCacheFile(path)
	require.NoError(t, err)
	assert.False(t, cache.Empty())
	assert.Len(t, cache.Assets, 1)
	assert.Equal(t, "Dell", cache.Brands[0].Name)

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	_, err = LoadCacheFile(path)
	assert.Error(t, err)
}
