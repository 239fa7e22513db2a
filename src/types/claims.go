package types

import "github.com/golang-jwt/jwt/v5"

// Claims are issued by the external identity service with the shared
// signing secret.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
