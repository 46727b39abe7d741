package middleware

import (
	"strings"

	"github.com/DefiantLabs/RouteSwap/api/endpoints"
	"github.com/DefiantLabs/RouteSwap/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var Initialized bool

// InitializeRestApi builds the router from the global config and serves until
// the process exits. Config and logger must already be initialized.
func InitializeRestApi() {
	router := InitRouter(config.Conf.Api.AllowedCORSDomains)
	Initialized = true

	addr := config.Conf.Api.ListenAddr
	if addr == "" {
		addr = ":8080"
	}

	config.Logger.Info("REST API listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		config.Logger.Error("REST API stopped", zap.Error(err))
	}
}

// InitRouter wires up middleware and routes. Split out from InitializeRestApi
// so endpoint tests can serve requests without binding a port.
func InitRouter(allowedCORSDomains string) *gin.Engine {
	allowedDomains := map[string]struct{}{}
	domains := strings.Split(allowedCORSDomains, ",")
	for _, domain := range domains {
		trimmedDomain := strings.TrimSpace(domain)
		allowedDomains[trimmedDomain] = struct{}{}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(CORSMiddleware(allowedDomains))
	router.SetTrustedProxies(nil)

	router.GET("/status", endpoints.GetStatus)
	router.GET("/pools", endpoints.GetPools)
	router.POST("/token", endpoints.GenerateToken)

	v1 := router.Group("/v1")
	v1.Use(PreAuth())
	if config.Conf.Api.RequireAuth {
		v1.Use(Auth())
	}
	v1.POST("/route-swap/simulate", endpoints.SimulateRouteSwap)

	return router
}

// Returns the origin hostname if found, or empty string otherwise.
// Only matches origins starting with http:// and https://.
func getOriginHostname(origin string) string {
	if _, hostAndPort, found := strings.Cut(origin, "http://"); found {
		host, _, _ := strings.Cut(hostAndPort, ":")
		return host
	} else if _, hostAndPort, found := strings.Cut(origin, "https://"); found {
		host, _, _ := strings.Cut(hostAndPort, ":")
		return host
	}

	return ""
}

// CORSMiddleware configures CORS for the gin router
func CORSMiddleware(allowedCORSDomains map[string]struct{}) gin.HandlerFunc {
	_, allowAllDomains := allowedCORSDomains["*"]

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAllDomains {
			if origin != "" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			}
		} else {
			host := getOriginHostname(origin)
			if _, ok := allowedCORSDomains[host]; ok && host != "" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
