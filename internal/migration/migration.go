// Package migration moves a legacy client-local cache into the document
// store exactly once. The run is gated by a persisted completion marker and
// is idempotent: per-record writes are keyed by each record's own stable id,
// so a retried run overwrites the same keys instead of appending duplicates.
package migration

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/store"
)

// State is the terminal outcome of a reconciler run
type State string

const (
	// StateSkipped: marker already present, or the cache was empty
	StateSkipped State = "skipped"
	// StateCompleted: cache transferred and marker persisted
	StateCompleted State = "completed"
	// StateFailed: a write failed; the marker is NOT persisted so the next
	// start retries from scratch
	StateFailed State = "failed"
)

// LegacyCache mirrors the old client-local storage: one entry per tracked
// collection, each holding the same shape a singleton-collection value
// holds. An absent entry is an empty collection.
type LegacyCache struct {
	Assets       []models.Asset          `json:"assets"`
	Dependencies []models.Dependency     `json:"dependencies"`
	Custodians   []models.Custodian      `json:"custodians"`
	Brands       []models.Brand          `json:"brands"`
	AssetNames   []models.AssetNameEntry `json:"assetNames"`
	AssetGroups  []models.AssetGroup     `json:"assetGroups"`
	Circulars    []models.Circular       `json:"circulars"`
	Company      *models.CompanyConfig   `json:"company,omitempty"`
}

// Empty reports whether every tracked collection is empty
func (c *LegacyCache) Empty() bool {
	return len(c.Assets) == 0 &&
		len(c.Dependencies) == 0 &&
		len(c.Custodians) == 0 &&
		len(c.Brands) == 0 &&
		len(c.AssetNames) == 0 &&
		len(c.AssetGroups) == 0 &&
		len(c.Circulars) == 0 &&
		c.Company == nil
}

// LoadCacheFile reads a legacy cache export from disk. A missing file is an
// empty cache, not an error.
func LoadCacheFile(path string) (*LegacyCache, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &LegacyCache{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("migration: read legacy cache: %w", err)
	}
	var cache LegacyCache
	if err := json.Unmarshal(raw, &cache); err != nil {
		return nil, fmt.Errorf("migration: decode legacy cache: %w", err)
	}
	return &cache, nil
}

type marker struct {
	CompletedAt time.Time `json:"completedAt"`
}

// Reconciler performs the one-time transfer
type Reconciler struct {
	store store.Store
}

// NewReconciler creates a reconciler over the store
func NewReconciler(s store.Store) *Reconciler {
	return &Reconciler{store: s}
}

// RunOnce transfers the legacy cache into the store unless the completion
// marker is already present. An empty cache is skipped but still writes the
// marker, so an untouched install does not rescan on every start.
func (r *Reconciler) RunOnce(cache *LegacyCache) (State, error) {
	var m marker
	err := r.store.Get(store.KeyMigrationDone, &m)
	switch {
	case err == nil:
		return StateSkipped, nil
	case errors.Is(err, store.ErrNotFound):
		// first run, proceed
	default:
		return StateFailed, err
	}

	if cache == nil || cache.Empty() {
		if err := r.writeMarker(); err != nil {
			return StateFailed, err
		}
		return StateSkipped, nil
	}

	if err := r.transfer(cache); err != nil {
		// no marker: the next start retries from scratch, which is safe
		// because every per-record write lands on the same key again
		return StateFailed, err
	}

	if err := r.writeMarker(); err != nil {
		return StateFailed, err
	}
	log.Printf("✅ Legacy cache migrated (%d assets)", len(cache.Assets))
	return StateCompleted, nil
}

func (r *Reconciler) transfer(cache *LegacyCache) error {
	// ids stay stable across retries: records keep their own id, and
	// records that never had one get the same derived id every run
	for _, a := range cache.Assets {
		if a.ID == "" {
			a.ID = store.StableRecordID("asset", a.Code)
		}
		if err := r.store.Set(store.AssetKey(a.ID), a); err != nil {
			return err
		}
	}
	for _, d := range cache.Dependencies {
		if d.ID == "" {
			d.ID = store.StableRecordID("dependency", d.Name)
		}
		if err := r.store.Set(store.DependencyKey(d.ID), d); err != nil {
			return err
		}
	}
	for _, c := range cache.Custodians {
		if c.ID == "" {
			c.ID = store.StableRecordID("custodian", c.NationalID)
		}
		if err := r.store.Set(store.CustodianKey(c.ID), c); err != nil {
			return err
		}
	}

	if len(cache.Brands) > 0 {
		if err := r.store.Set(store.KeyBrands, cache.Brands); err != nil {
			return err
		}
	}
	if len(cache.AssetNames) > 0 {
		if err := r.store.Set(store.KeyAssetNames, cache.AssetNames); err != nil {
			return err
		}
	}
	if len(cache.AssetGroups) > 0 {
		if err := r.store.Set(store.KeyAssetGroups, cache.AssetGroups); err != nil {
			return err
		}
	}
	if len(cache.Circulars) > 0 {
		if err := r.store.Set(store.KeyCirculars, cache.Circulars); err != nil {
			return err
		}
	}
	if cache.Company != nil {
		if err := r.store.Set(store.KeyCompanyConfig, cache.Company); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) writeMarker() error {
	return r.store.Set(store.KeyMigrationDone, marker{CompletedAt: time.Now().UTC()})
}
