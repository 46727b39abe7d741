package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/DefiantLabs/RouteSwap/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var connectionTracker = sync.Map{}
var maxAllowedRequests = 20
var throttleWindow = time.Hour

type requestcounter struct {
	requests    int
	windowStart time.Time
}

// clientThrottled tracks requests per IP and blocks an IP that exceeds the
// allowance inside the current window. Development mode is never throttled.
func clientThrottled(clientIP string) bool {
	if !config.Conf.Api.Production {
		return false
	}

	entry, _ := connectionTracker.LoadOrStore(clientIP, &requestcounter{windowStart: time.Now()})
	counter := entry.(*requestcounter)

	if time.Since(counter.windowStart) >= throttleWindow {
		counter.requests = 0
		counter.windowStart = time.Now()
	}

	counter.requests++
	if counter.requests > maxAllowedRequests {
		config.Logger.Info("Blocked IP (backoff)", zap.String("ip", clientIP), zap.Int("requests", counter.requests))
		return true
	}
	return false
}

func PreAuth() gin.HandlerFunc {
	return func(context *gin.Context) {
		if !Initialized {
			config.Logger.Error("App is not initialized")
			context.JSON(http.StatusInternalServerError, "app is not initialized, contact the system administrator if this error persists")
			context.Abort()
			return
		}

		clientIP := context.ClientIP()
		if clientThrottled(clientIP) {
			retryMinutes := int(throttleWindow.Minutes())
			context.JSON(http.StatusTooManyRequests, gin.H{"error": fmt.Sprintf("Too many requests. Try again in %d minutes", retryMinutes)})
			context.Abort()
			return
		}

		config.Logger.Debug("PreAuth", zap.String("url", context.FullPath()))
		tokenString := context.GetHeader("Authorization")
		if tokenString != "" {
			claims, err := ValidateToken(tokenString)
			if err == nil {
				context.Set("x-claims-validated", claims)
			}
		}

		context.Next()
	}
}

func Auth() gin.HandlerFunc {
	return func(context *gin.Context) {
		config.Logger.Debug("Auth", zap.String("url", context.FullPath()))

		_, ok := context.Get("x-claims-validated")
		if !ok {
			tokenString := context.GetHeader("Authorization")
			if tokenString == "" {
				context.JSON(401, gin.H{"error": "request does not contain an access token"})
				context.Abort()
				return
			}
			_, err := ValidateToken(tokenString)
			if err != nil {
				context.JSON(401, gin.H{"error": err.Error()})
				context.Abort()
				return
			}
		}

		context.Next()
	}
}
