package endpoints

import (
	"net/http"
	"strconv"

	"github.com/DefiantLabs/RouteSwap/api"
	"github.com/DefiantLabs/RouteSwap/catalog"
	"github.com/gin-gonic/gin"
)

// List the pool catalog. Supports filtering by either asset address,
// sort=TVL_DESC, and a result limit.
func GetPools(context *gin.Context) {
	opts := catalog.ListOptions{
		AssetAAddress: context.Query("assetAAddress"),
		AssetBAddress: context.Query("assetBAddress"),
		Sort:          context.Query("sort"),
	}

	if limit := context.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			opts.Limit = n
		}
	}

	if api.Pools == nil {
		context.JSON(http.StatusOK, catalog.PoolsDocument{Pools: []catalog.PoolRecord{}})
		return
	}

	pools := api.Pools.List(opts)
	records := make([]catalog.PoolRecord, 0, len(pools))
	for _, p := range pools {
		records = append(records, p.Record())
	}

	context.JSON(http.StatusOK, catalog.PoolsDocument{Pools: records})
}
