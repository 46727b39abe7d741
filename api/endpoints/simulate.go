package endpoints

import (
	"errors"
	"net/http"

	"github.com/DefiantLabs/RouteSwap/api"
	"github.com/DefiantLabs/RouteSwap/config"
	"github.com/DefiantLabs/RouteSwap/simulator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Simulate the outcome of a route swap without executing anything on-chain
func SimulateRouteSwap(context *gin.Context) {
	var req simulator.SwapRequest
	if err := context.ShouldBindJSON(&req); err != nil {
		context.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := simulator.Simulate(api.Pools, req)
	if err != nil {
		config.Logger.Info("Rejected route swap simulation", zap.Error(err))

		status := http.StatusBadRequest
		if errors.Is(err, simulator.ErrPoolNotFound) {
			status = http.StatusNotFound
		}
		context.JSON(status, gin.H{"error": err.Error()})
		return
	}

	context.JSON(http.StatusOK, result)
}
