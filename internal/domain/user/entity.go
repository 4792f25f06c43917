package user

import "time"

// User is the shop owner's account. The shop has a single owner; there
// is no role hierarchy.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	ShopName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
