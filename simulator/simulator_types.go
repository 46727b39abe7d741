package simulator

import (
	"github.com/DefiantLabs/RouteSwap/catalog"
)

// PoolAccessor resolves a pool id to an immutable pool snapshot. The
// simulator only ever reads through this interface.
type PoolAccessor interface {
	Lookup(poolID string) (catalog.Pool, bool)
}

// One leg of a route: swap assetIn for assetOut through the given pool
// swagger:model Hop
type Hop struct {
	AssetInAddress  string `json:"assetInAddress"`
	AssetOutAddress string `json:"assetOutAddress"`
	PoolId          string `json:"poolId"`
}

// The user's proposed route swap. The caller chooses the hop sequence; the
// simulator only predicts its outcome.
// swagger:model SwapRequest
type SwapRequest struct {
	// Ordered hop list; hop i+1 consumes hop i's output
	Hops []Hop `json:"hops"`
	// Smallest-unit integer amount of the first hop's input asset
	//
	// example: 10000
	AmountIn string `json:"amountIn"`
	// Caller's slippage tolerance in bps. Carried through for the execution
	// layer; the simulator reports impact but does not enforce this.
	MaxRouteSlippageBps string `json:"maxRouteSlippageBps"`
}

// Result of one simulated hop
// swagger:model HopResult
type HopResult struct {
	AmountIn  string `json:"amountIn"`
	AmountOut string `json:"amountOut"`
	PoolId    string `json:"poolId"`
	// Signed percentage, two decimals, e.g. "3.42%" ("100%" for a drained hop)
	PriceImpactPct string `json:"priceImpactPct"`
}

// Results of the route simulation
// swagger:model SimulatedRouteResult
type SimulatedRouteResult struct {
	// Realized output per input unit over the whole route
	//
	// example: 1.964331300000000000
	ExecutionPrice string `json:"executionPrice"`
	// Per-hop breakdown, one entry per requested hop, in order
	HopBreakdown []HopResult `json:"hopBreakdown"`
	// Final amount out after the last hop, smallest-unit integer
	OutputAmount string `json:"outputAmount"`
	// Host fee summed across hops, denominated in each hop's input asset
	TotalHostFee string `json:"totalHostFee"`
	// LP fee summed across hops, denominated in each hop's input asset
	TotalLpFee string `json:"totalLpFee"`
	// Additive total of the per-hop price impacts
	//
	// example: 3.42%
	TotalPriceImpactPct string `json:"totalPriceImpactPct"`
	// Advisory only; at most one warning is ever set
	WarningMessage string `json:"warningMessage,omitempty"`
}
