package models

// Dependency is an organizational unit that owns assets
type Dependency struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
	Custodian string `json:"custodian"` // responsible custodian, by name
	Location  string `json:"location"`
}

// Custodian is a person responsible for assets. Dependency is referenced by
// name; at most one custodian per dependency is a UI-layer rule, the store
// does not enforce it.
type Custodian struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	Role       string `json:"role"`
	Dependency string `json:"dependency"`
}

// AssetGroup carries the depreciation policy and the code prefix used to
// compose new asset identity codes.
type AssetGroup struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	CodePrefix        string  `json:"codePrefix"`
	UsefulLifeYears   float64 `json:"usefulLifeYears"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
}

// Brand is a catalog entry, deduplicated case-insensitively by name
type Brand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AssetNameEntry is a catalog entry for asset display names,
// deduplicated case-insensitively by name
type AssetNameEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
