package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles form a closed set. An unknown role is rejected at signup instead of
// silently failing the authorization check later.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role belongs to the known role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Claims defines the structure of the JWT claims. The user id travels in the
// registered Subject claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
