package entity

import "time"

// Roles de usuario del back office.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User representa un usuario del staff (admin o cajero).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt
	FullName     string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}
