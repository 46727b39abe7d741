package endpoints

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/DefiantLabs/RouteSwap/api"
	"github.com/DefiantLabs/RouteSwap/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

type TokenRequest struct {
	Address string `json:"address"`
	ApiKey  string `json:"api_key"`
}

// Issues a JWT for callers that present the configured API key. Tokens gate
// the simulate endpoint when Api.RequireAuth is set.
func GenerateToken(context *gin.Context) {
	conf := config.Conf

	var request TokenRequest
	if err := context.ShouldBindJSON(&request); err != nil {
		context.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if conf.JWT.ApiKey == "" || conf.JWT.SecretKey == "" {
		context.JSON(http.StatusServiceUnavailable, gin.H{"error": "token issuance is not configured"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(request.ApiKey), []byte(conf.JWT.ApiKey)) != 1 {
		context.JSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
		return
	}

	if request.Address == "" {
		context.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	tokenString, err := GenerateJWT(time.Now().Add(24*time.Hour), request.Address)
	if err != nil {
		context.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	context.JSON(http.StatusOK, gin.H{"token": tokenString})
}

func GenerateJWT(expirationTime time.Time, address string) (tokenString string, err error) {
	claims := &api.JWTClaim{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   address,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Conf.JWT.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString(api.GetSecretKey())
	return
}
