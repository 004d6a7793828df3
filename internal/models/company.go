package models

// CompanyConfig is a singleton record with the company display fields used
// on report headers. Logo is a base64-encoded image payload.
type CompanyConfig struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Logo    string `json:"logo"`
}
