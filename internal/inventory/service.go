// Package inventory is the write path for every catalog. Uniqueness rules
// (asset codes, brand and asset-name catalog entries) are checked here by
// re-reading the store immediately before the write — the store itself is
// schemaless and enforces nothing.
package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/depreciation"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/store"
)

var (
	// ErrNotFound is surfaced when a requested record does not exist
	ErrNotFound = store.ErrNotFound
	// ErrDuplicateCode rejects an asset code already in use (case-insensitive)
	ErrDuplicateCode = errors.New("inventory: asset code already in use")
	// ErrDuplicateName rejects a catalog name already present (case-insensitive)
	ErrDuplicateName = errors.New("inventory: name already in catalog")
	// ErrBadStatus rejects a value outside the fixed enumeration
	ErrBadStatus = errors.New("inventory: invalid asset status")
	// ErrBadTransition rejects a circular lifecycle move that skips a step
	ErrBadTransition = errors.New("inventory: invalid circular status transition")
)

// Service exposes every catalog operation the HTTP layer needs
type Service struct {
	store store.Store
}

// NewService creates the service over a store
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ---- Assets ----

// ListAssets returns every asset (unordered; empty on backend outage)
func (s *Service) ListAssets() []models.Asset {
	return store.ScanAll[models.Asset](s.store, store.PrefixAsset)
}

// GetAsset reads one asset by id
func (s *Service) GetAsset(id string) (*models.Asset, error) {
	var a models.Asset
	if err := s.store.Get(store.AssetKey(id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAsset assigns an id and writes the asset after checking that its
// identity code is unique across the full set, case-insensitively. The check
// re-reads the store at write time; the window between check and Set is
// narrowed, not closed.
func (s *Service) CreateAsset(a *models.Asset) error {
	if a.Status == "" {
		a.Status = models.AssetStatusActive
	}
	if !models.ValidAssetStatus(a.Status) {
		return ErrBadStatus
	}
	if err := s.checkAssetCode(a.Code, ""); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = store.NewRecordID()
	}
	return s.store.Set(store.AssetKey(a.ID), a)
}

// UpdateAsset overwrites an existing asset under its key. The code must stay
// unique among all other assets.
func (s *Service) UpdateAsset(a *models.Asset) error {
	if !models.ValidAssetStatus(a.Status) {
		return ErrBadStatus
	}
	if _, err := s.GetAsset(a.ID); err != nil {
		return err
	}
	if err := s.checkAssetCode(a.Code, a.ID); err != nil {
		return err
	}
	return s.store.Set(store.AssetKey(a.ID), a)
}

// DeleteAsset removes an asset; deleting an unknown id succeeds
func (s *Service) DeleteAsset(id string) error {
	return s.store.Delete(store.AssetKey(id))
}

func (s *Service) checkAssetCode(code, selfID string) error {
	for _, existing := range s.ListAssets() {
		if existing.ID != selfID && equalFold(existing.Code, code) {
			return ErrDuplicateCode
		}
	}
	return nil
}

// NextAssetCode composes a suggested identity code from the group's code
// prefix and the count of codes already carrying that prefix.
func (s *Service) NextAssetCode(groupCode string) (string, error) {
	group, err := s.findGroup(groupCode)
	if err != nil {
		return "", err
	}
	prefix := group.CodePrefix
	if prefix == "" {
		prefix = group.Code
	}
	max := 0
	for _, a := range s.ListAssets() {
		var n int
		if _, err := fmt.Sscanf(strings.ToUpper(a.Code), strings.ToUpper(prefix)+"-%d", &n); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, max+1), nil
}

// Depreciation computes the straight-line depreciation of an asset under its
// group's policy (default policy when the group is unknown), as of asOf.
func (s *Service) Depreciation(a *models.Asset, asOf time.Time) depreciation.Result {
	var policy *depreciation.Policy
	if group, err := s.findGroup(a.GroupCode); err == nil {
		policy = &depreciation.Policy{
			UsefulLifeYears:   group.UsefulLifeYears,
			AnnualRatePercent: group.AnnualRatePercent,
		}
	}
	return depreciation.Compute(a.Value, a.AcquisitionDate, asOf, policy)
}

// ---- Dependencies ----

func (s *Service) ListDependencies() []models.Dependency {
	return store.ScanAll[models.Dependency](s.store, store.PrefixDependency)
}

func (s *Service) GetDependency(id string) (*models.Dependency, error) {
	var d models.Dependency
	if err := s.store.Get(store.DependencyKey(id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Service) SaveDependency(d *models.Dependency) error {
	if d.ID == "" {
		d.ID = store.NewRecordID()
	}
	return s.store.Set(store.DependencyKey(d.ID), d)
}

func (s *Service) DeleteDependency(id string) error {
	return s.store.Delete(store.DependencyKey(id))
}

// ---- Custodians ----

func (s *Service) ListCustodians() []models.Custodian {
	return store.ScanAll[models.Custodian](s.store, store.PrefixCustodian)
}

func (s *Service) GetCustodian(id string) (*models.Custodian, error) {
	var c models.Custodian
	if err := s.store.Get(store.CustodianKey(id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) SaveCustodian(c *models.Custodian) error {
	if c.ID == "" {
		c.ID = store.NewRecordID()
	}
	return s.store.Set(store.CustodianKey(c.ID), c)
}

func (s *Service) DeleteCustodian(id string) error {
	return s.store.Delete(store.CustodianKey(id))
}

// ---- Users ----

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range store.ScanAll[models.User](s.store, store.PrefixUser) {
		if equalFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Service) SaveUser(u *models.User) error {
	if u.ID == "" {
		u.ID = store.NewRecordID()
	}
	return s.store.Set(store.UserKey(u.ID), u)
}

// ---- Brands (singleton collection) ----

func (s *Service) ListBrands() ([]models.Brand, error) {
	var brands []models.Brand
	err := store.GetCollection(s.store, store.KeyBrands, &brands)
	return brands, err
}

// AddBrand appends a brand unless the name is already present,
// case-insensitively. The whole collection is rewritten as one value.
func (s *Service) AddBrand(b models.Brand) error {
	brands, err := s.ListBrands()
	if err != nil {
		return err
	}
	for _, existing := range brands {
		if equalFold(existing.Name, b.Name) {
			return ErrDuplicateName
		}
	}
	return s.store.Set(store.KeyBrands, append(brands, b))
}

func (s *Service) RemoveBrand(name string) error {
	brands, err := s.ListBrands()
	if err != nil {
		return err
	}
	kept := brands[:0]
	for _, b := range brands {
		if !equalFold(b.Name, name) {
			kept = append(kept, b)
		}
	}
	return s.store.Set(store.KeyBrands, kept)
}

// ---- Asset-name catalog (singleton collection) ----

func (s *Service) ListAssetNames() ([]models.AssetNameEntry, error) {
	var names []models.AssetNameEntry
	err := store.GetCollection(s.store, store.KeyAssetNames, &names)
	return names, err
}

func (s *Service) AddAssetName(entry models.AssetNameEntry) error {
	names, err := s.ListAssetNames()
	if err != nil {
		return err
	}
	for _, existing := range names {
		if equalFold(existing.Name, entry.Name) {
			return ErrDuplicateName
		}
	}
	return s.store.Set(store.KeyAssetNames, append(names, entry))
}

func (s *Service) RemoveAssetName(name string) error {
	names, err := s.ListAssetNames()
	if err != nil {
		return err
	}
	kept := names[:0]
	for _, n := range names {
		if !equalFold(n.Name, name) {
			kept = append(kept, n)
		}
	}
	return s.store.Set(store.KeyAssetNames, kept)
}

// ---- Asset groups (singleton collection) ----

func (s *Service) ListGroups() ([]models.AssetGroup, error) {
	var groups []models.AssetGroup
	err := store.GetCollection(s.store, store.KeyAssetGroups, &groups)
	return groups, err
}

// SaveGroup inserts or replaces the group with the same code
func (s *Service) SaveGroup(g models.AssetGroup) error {
	groups, err := s.ListGroups()
	if err != nil {
		return err
	}
	replaced := false
	for i, existing := range groups {
		if equalFold(existing.Code, g.Code) {
			groups[i] = g
			replaced = true
			break
		}
	}
	if !replaced {
		groups = append(groups, g)
	}
	return s.store.Set(store.KeyAssetGroups, groups)
}

func (s *Service) RemoveGroup(code string) error {
	groups, err := s.ListGroups()
	if err != nil {
		return err
	}
	kept := groups[:0]
	for _, g := range groups {
		if !equalFold(g.Code, code) {
			kept = append(kept, g)
		}
	}
	return s.store.Set(store.KeyAssetGroups, kept)
}

func (s *Service) findGroup(code string) (*models.AssetGroup, error) {
	groups, err := s.ListGroups()
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if equalFold(g.Code, code) {
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

// ---- Circulars (singleton collection) ----

func (s *Service) ListCirculars() ([]models.Circular, error) {
	var circulars []models.Circular
	err := store.GetCollection(s.store, store.KeyCirculars, &circulars)
	return circulars, err
}

// CreateCircular assigns the next sequential reference number and stores the
// circular as pending.
func (s *Service) CreateCircular(audience, body string, now time.Time) (*models.Circular, error) {
	circulars, err := s.ListCirculars()
	if err != nil {
		return nil, err
	}
	next := 1
	for _, c := range circulars {
		if c.Number >= next {
			next = c.Number + 1
		}
	}
	circular := models.Circular{
		Number:    next,
		Audience:  audience,
		Body:      body,
		Status:    models.CircularStatusPending,
		CreatedAt: now.UTC(),
	}
	if err := s.store.Set(store.KeyCirculars, append(circulars, circular)); err != nil {
		return nil, err
	}
	return &circular, nil
}

// AdvanceCircular moves a circular one step along Pending → Sent → Archived
func (s *Service) AdvanceCircular(number int) (*models.Circular, error) {
	circulars, err := s.ListCirculars()
	if err != nil {
		return nil, err
	}
	for i, c := range circulars {
		if c.Number != number {
			continue
		}
		next := models.NextCircularStatus(c.Status)
		if next == "" {
			return nil, ErrBadTransition
		}
		circulars[i].Status = next
		if err := s.store.Set(store.KeyCirculars, circulars); err != nil {
			return nil, err
		}
		return &circulars[i], nil
	}
	return nil, ErrNotFound
}

func (s *Service) DeleteCircular(number int) error {
	circulars, err := s.ListCirculars()
	if err != nil {
		return err
	}
	kept := circulars[:0]
	for _, c := range circulars {
		if c.Number != number {
			kept = append(kept, c)
		}
	}
	return s.store.Set(store.KeyCirculars, kept)
}

// ---- Company config (singleton record) ----

func (s *Service) GetCompanyConfig() (*models.CompanyConfig, error) {
	var cfg models.CompanyConfig
	err := s.store.Get(store.KeyCompanyConfig, &cfg)
	if errors.Is(err, store.ErrNotFound) {
		return &models.CompanyConfig{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Service) SaveCompanyConfig(cfg *models.CompanyConfig) error {
	return s.store.Set(store.KeyCompanyConfig, cfg)
}
