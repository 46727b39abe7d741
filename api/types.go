package api

import (
	"github.com/DefiantLabs/RouteSwap/catalog"
	"github.com/golang-jwt/jwt/v4"
)

// Pools is the pool catalog the endpoints serve from. Set once at startup.
var Pools *catalog.Registry

type JWTClaim struct {
	jwt.RegisteredClaims
}

var jwtKey []byte

func SetSecretKey(jwtSecret string) {
	jwtKey = []byte(jwtSecret)
}

func GetSecretKey() []byte {
	return jwtKey
}
