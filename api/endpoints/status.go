package endpoints

import (
	"net/http"
	"time"

	"github.com/DefiantLabs/RouteSwap/api"
	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

type StatusResponse struct {
	Status        string `json:"status"`
	Pools         int    `json:"pools"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

func GetStatus(context *gin.Context) {
	resp := StatusResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(startTime).Seconds()),
	}
	if api.Pools != nil {
		resp.Pools = api.Pools.Len()
	}

	context.JSON(http.StatusOK, resp)
}
