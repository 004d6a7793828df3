package models

import "time"

// Asset statuses (fixed enumeration)
const (
	AssetStatusActive   = "active"
	AssetStatusInRepair = "in_repair"
	AssetStatusRetired  = "retired"
	AssetStatusDonated  = "donated"
	AssetStatusLost     = "lost"
)

// Asset represents a fixed asset. Brand, Dependency and Custodian are stored
// as denormalized name strings (no cascade on rename/delete) — this mirrors
// how the data has always been kept, so renames leave old references behind.
type Asset struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"` // human-assigned identity code, unique case-insensitively
	Name            string    `json:"name"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	Serial          string    `json:"serial"`
	Dependency      string    `json:"dependency"`
	Custodian       string    `json:"custodian"`
	Value           float64   `json:"value"`
	AcquisitionDate time.Time `json:"acquisitionDate"`
	Status          string    `json:"status"`
	GroupCode       string    `json:"groupCode"`
}

// ValidAssetStatus reports whether s is one of the fixed statuses.
func ValidAssetStatus(s string) bool {
	switch s {
	case AssetStatusActive, AssetStatusInRepair, AssetStatusRetired,
		AssetStatusDonated, AssetStatusLost:
		return true
	}
	return false
}
