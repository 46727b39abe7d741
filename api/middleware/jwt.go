package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/DefiantLabs/RouteSwap/api"
	"github.com/golang-jwt/jwt/v4"
)

func ValidateToken(signedToken string) (claims *api.JWTClaim, err error) {
	token, err := jwt.ParseWithClaims(signedToken, &api.JWTClaim{}, func(token *jwt.Token) (interface{}, error) {
		//validate the alg is correct
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return api.GetSecretKey(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*api.JWTClaim)
	if !ok {
		return nil, errors.New("couldn't parse claims")
	}
	if !token.Valid {
		return nil, errors.New("token not valid")
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, errors.New("token expired")
	}

	return claims, nil
}
