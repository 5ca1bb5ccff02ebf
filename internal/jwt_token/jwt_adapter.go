package jwttoken

import (
	"coreid/internal/platform/middleware"
)

// ToMiddlewareClaims narrows validated claims to what the admin middleware needs.
func ToMiddlewareClaims(claims *Claims) (*middleware.SessionClaims, error) {
	id, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	return &middleware.SessionClaims{UserID: id, Email: claims.Email}, nil
}

type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*middleware.SessionClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return ToMiddlewareClaims(claims)
}
