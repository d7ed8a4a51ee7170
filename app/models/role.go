package models

// Role represents a user role (e.g., admin, super_admin)
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
