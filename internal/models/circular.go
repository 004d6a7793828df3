package models

import "time"

// Circular lifecycle statuses
const (
	CircularStatusPending  = "pending"
	CircularStatusSent     = "sent"
	CircularStatusArchived = "archived"
)

// Circular is an internal notice addressed to custodians or dependencies.
// Number is sequential within the collection.
type Circular struct {
	Number    int       `json:"number"`
	Audience  string    `json:"audience"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NextCircularStatus returns the status that follows s in the
// Pending → Sent → Archived lifecycle, or "" when s is terminal or unknown.
func NextCircularStatus(s string) string {
	switch s {
	case CircularStatusPending:
		return CircularStatusSent
	case CircularStatusSent:
		return CircularStatusArchived
	}
	return ""
}
