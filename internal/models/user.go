package models

import "time"

// User is a login account, stored as a document like everything else
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Password  string     `json:"password,omitempty"` // bcrypt hash; handlers must blank it before responding
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
