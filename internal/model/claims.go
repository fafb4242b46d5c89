package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims Клеймы токена сессии, ID сессии лежит в RegisteredClaims.ID
type SessionClaims struct {
	jwt.RegisteredClaims
}
