package models

import "time"

// ManualAccountSentinel marks users created by an admin for walk-in clients.
// Such accounts have no usable login credential.
const ManualAccountSentinel = "manual_account"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	Role         string    `json:"role"`
	AccountType  string    `json:"account_type,omitempty"` // manual or registered
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IsManual() bool {
	return u.PasswordHash == ManualAccountSentinel
}
