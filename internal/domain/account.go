package domain

import "time"

// Account roles. Stored only; no endpoint enforces them.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Account is a stored credential record seeded at bootstrap.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
