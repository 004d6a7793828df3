package store

import "github.com/google/uuid"

// Key conventions. Two shapes coexist: per-record keys ("<type>:<id>", one
// document per entity instance, retrieved via prefix scan) and singleton
// collection keys (one document holding a whole ordered collection).
const (
	PrefixAsset      = "asset:"
	PrefixDependency = "dependency:"
	PrefixCustodian  = "custodian:"
	PrefixUser       = "user:"

	KeyBrands        = "catalog:brands"
	KeyAssetNames    = "catalog:asset_names"
	KeyAssetGroups   = "catalog:asset_groups"
	KeyCirculars     = "catalog:circulars"
	KeyCompanyConfig = "config:company"

	// KeyMigrationDone gates the one-time legacy import
	KeyMigrationDone = "migration:completed"
)

// AssetKey composes the per-record key for an asset id
func AssetKey(id string) string { return PrefixAsset + id }

// DependencyKey composes the per-record key for a dependency id
func DependencyKey(id string) string { return PrefixDependency + id }

// CustodianKey composes the per-record key for a custodian id
func CustodianKey(id string) string { return PrefixCustodian + id }

// UserKey composes the per-record key for a user id
func UserKey(id string) string { return PrefixUser + id }

// NewRecordID returns a collision-resistant identifier for a new record.
// Random UUIDs replace the old timestamp-derived ids, which could collide
// for records created within the same clock tick.
func NewRecordID() string {
	return uuid.NewString()
}

// StableRecordID derives the same identifier for the same kind/seed pair on
// every call. The migration reconciler uses it for legacy records that never
// carried an id, so a retried run lands on the same keys.
func StableRecordID(kind, seed string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+seed)).String()
}
