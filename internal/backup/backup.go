// Package backup exports the full dataset to a portable snapshot document
// and reinstates it. It is built entirely from store operations and adds no
// storage mechanism of its own, only sequencing.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/store"
)

// FormatVersion tags the snapshot layout
const FormatVersion = "1.0"

// ErrMissingData rejects an import document without the data container
var ErrMissingData = errors.New("backup: snapshot has no data container")

// SnapshotData is the full data payload, keyed by entity-type name.
// Per-record entities appear as arrays; singleton collections keep their
// stored shape.
type SnapshotData struct {
	Assets       []models.Asset          `json:"assets"`
	Dependencies []models.Dependency     `json:"dependencies"`
	Custodians   []models.Custodian      `json:"custodians"`
	Users        []models.User           `json:"users"`
	Brands       []models.Brand          `json:"brands"`
	AssetNames   []models.AssetNameEntry `json:"assetNames"`
	AssetGroups  []models.AssetGroup     `json:"assetGroups"`
	Circulars    []models.Circular       `json:"circulars"`
	Company      *models.CompanyConfig   `json:"company,omitempty"`
}

// Snapshot is one full-dataset backup. Counts are advisory, used for
// display/confirmation only — import never validates against them.
type Snapshot struct {
	FormatVersion string         `json:"formatVersion"`
	ExportedAt    time.Time      `json:"exportedAt"`
	Data          *SnapshotData  `json:"data"`
	Counts        map[string]int `json:"counts"`
}

// RestoreReport tells the caller how far an import got. When Import returns
// an error the report still counts every record written before the failure,
// so the caller can decide whether to re-run.
type RestoreReport struct {
	Written map[string]int `json:"written"`
	Total   int            `json:"total"`
}

// Manager orchestrates export and import over a Store
type Manager struct {
	store store.Store
}

// NewManager creates a backup manager
func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// Export reads every per-record keyspace in full and every singleton
// collection, and assembles one versioned snapshot.
func (m *Manager) Export(now time.Time) (*Snapshot, error) {
	data := &SnapshotData{
		Assets:       store.ScanAll[models.Asset](m.store, store.PrefixAsset),
		Dependencies: store.ScanAll[models.Dependency](m.store, store.PrefixDependency),
		Custodians:   store.ScanAll[models.Custodian](m.store, store.PrefixCustodian),
		Users:        store.ScanAll[models.User](m.store, store.PrefixUser),
	}

	if err := store.GetCollection(m.store, store.KeyBrands, &data.Brands); err != nil {
		return nil, err
	}
	if err := store.GetCollection(m.store, store.KeyAssetNames, &data.AssetNames); err != nil {
		return nil, err
	}
	if err := store.GetCollection(m.store, store.KeyAssetGroups, &data.AssetGroups); err != nil {
		return nil, err
	}
	if err := store.GetCollection(m.store, store.KeyCirculars, &data.Circulars); err != nil {
		return nil, err
	}
	var company models.CompanyConfig
	err := m.store.Get(store.KeyCompanyConfig, &company)
	switch {
	case err == nil:
		data.Company = &company
	case errors.Is(err, store.ErrNotFound):
		// no company record yet
	default:
		return nil, err
	}

	return &Snapshot{
		FormatVersion: FormatVersion,
		ExportedAt:    now.UTC(),
		Data:          data,
		Counts: map[string]int{
			"assets":       len(data.Assets),
			"dependencies": len(data.Dependencies),
			"custodians":   len(data.Custodians),
			"users":        len(data.Users),
			"brands":       len(data.Brands),
			"assetNames":   len(data.AssetNames),
			"assetGroups":  len(data.AssetGroups),
			"circulars":    len(data.Circulars),
		},
	}, nil
}

// Parse decodes a snapshot document and verifies it carries the expected
// data container. Anything beyond that is taken as-is: the store is
// schemaless and counts are advisory.
func Parse(raw []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("backup: malformed snapshot: %w", err)
	}
	if snap.Data == nil {
		return nil, ErrMissingData
	}
	return &snap, nil
}

// Import replays every record in the snapshot through Set. It is a
// destructive overwrite — records already present under the same keys are
// silently replaced — and it is not atomic: a failure partway through leaves
// a mixed state with no rollback. Identifiers come from the records
// themselves and are never regenerated.
func (m *Manager) Import(snap *Snapshot) (*RestoreReport, error) {
	if snap == nil || snap.Data == nil {
		return nil, ErrMissingData
	}

	report := &RestoreReport{Written: make(map[string]int)}
	write := func(entity, key string, value interface{}) error {
		if err := m.store.Set(key, value); err != nil {
			return fmt.Errorf("backup: import %s after %d records: %w", entity, report.Total, err)
		}
		report.Written[entity]++
		report.Total++
		return nil
	}

	for _, a := range snap.Data.Assets {
		if err := write("assets", store.AssetKey(a.ID), a); err != nil {
			return report, err
		}
	}
	for _, d := range snap.Data.Dependencies {
		if err := write("dependencies", store.DependencyKey(d.ID), d); err != nil {
			return report, err
		}
	}
	for _, c := range snap.Data.Custodians {
		if err := write("custodians", store.CustodianKey(c.ID), c); err != nil {
			return report, err
		}
	}
	for _, u := range snap.Data.Users {
		if err := write("users", store.UserKey(u.ID), u); err != nil {
			return report, err
		}
	}

	singletons := []struct {
		entity string
		key    string
		value  interface{}
		skip   bool
	}{
		{"brands", store.KeyBrands, snap.Data.Brands, snap.Data.Brands == nil},
		{"assetNames", store.KeyAssetNames, snap.Data.AssetNames, snap.Data.AssetNames == nil},
		{"assetGroups", store.KeyAssetGroups, snap.Data.AssetGroups, snap.Data.AssetGroups == nil},
		{"circulars", store.KeyCirculars, snap.Data.Circulars, snap.Data.Circulars == nil},
		{"company", store.KeyCompanyConfig, snap.Data.Company, snap.Data.Company == nil},
	}
	for _, s := range singletons {
		if s.skip {
			continue
		}
		if err := write(s.entity, s.key, s.value); err != nil {
			return report, err
		}
	}

	return report, nil
}
