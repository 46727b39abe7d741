package simulator

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/DefiantLabs/RouteSwap/config"
	"go.uber.org/zap"
)

const bpsDenominator = 10000

// Price impact reported for a hop through a drained pool (or one starving
// downstream of it). Deliberately "100%" with no decimals.
const drainedImpactPct = "100%"

var (
	oneHundred = math.LegacyNewDec(100)
	//A route whose additive price impact exceeds this many percentage points
	//gets the high-impact warning
	warnImpactThreshold = math.LegacyNewDec(5)
)

// Simulate predicts the outcome of routing amountIn through the requested
// hops without touching pool state. Hops run strictly in order, each hop's
// output feeding the next. The returned breakdown is one-to-one with the
// requested hops; on any fatal error no breakdown is returned at all.
func Simulate(accessor PoolAccessor, req SwapRequest) (*SimulatedRouteResult, error) {
	if len(req.Hops) == 0 {
		return nil, ErrEmptyRoute
	}

	amountIn, err := parseAmountIn(req.AmountIn)
	if err != nil {
		return nil, err
	}

	if req.MaxRouteSlippageBps != "" {
		if v, ok := math.NewIntFromString(req.MaxRouteSlippageBps); !ok || v.IsNegative() {
			return nil, ErrInvalidAmount.Wrapf("maxRouteSlippageBps %q is not a non-negative integer", req.MaxRouteSlippageBps)
		}
	}

	currentAmount := amountIn
	totalHostFee := math.ZeroInt()
	totalLpFee := math.ZeroInt()
	totalImpact := math.LegacyZeroDec()
	breakdown := make([]HopResult, 0, len(req.Hops))

	for _, hop := range req.Hops {
		pool, ok := accessor.Lookup(hop.PoolId)
		if !ok {
			return nil, ErrPoolNotFound.Wrap(hop.PoolId)
		}

		// A drained pool zeroes the route from here on; every starved hop
		// after it reports the same zero output and full impact.
		if pool.Drained() || currentAmount.IsZero() {
			breakdown = append(breakdown, HopResult{
				AmountIn:       currentAmount.String(),
				AmountOut:      "0",
				PoolId:         hop.PoolId,
				PriceImpactPct: drainedImpactPct,
			})
			currentAmount = math.ZeroInt()
			totalImpact = totalImpact.Add(oneHundred)
			continue
		}

		var reserveIn, reserveOut math.Int
		switch hop.AssetInAddress {
		case pool.AssetA:
			reserveIn, reserveOut = pool.ReserveA, pool.ReserveB
		case pool.AssetB:
			reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
		default:
			return nil, ErrInvalidHop.Wrapf("pool %s holds neither side of asset %s", hop.PoolId, hop.AssetInAddress)
		}

		// Both fee components floor independently; the AMM input is reduced
		// by exactly their sum so hop amounts and totals reconcile.
		hostFee := currentAmount.MulRaw(pool.HostFeeBps).QuoRaw(bpsDenominator)
		lpFee := currentAmount.MulRaw(pool.LpFeeBps).QuoRaw(bpsDenominator)
		totalHostFee = totalHostFee.Add(hostFee)
		totalLpFee = totalLpFee.Add(lpFee)
		amountInAfterFees := currentAmount.Sub(hostFee).Sub(lpFee)

		// Constant product: k = reserveIn * reserveOut stays invariant on the
		// fee-reduced input; output floors to a whole smallest unit.
		k := reserveIn.Mul(reserveOut)
		newReserveIn := reserveIn.Add(amountInAfterFees)
		newReserveOut := math.LegacyNewDecFromInt(k).Quo(math.LegacyNewDecFromInt(newReserveIn))
		amountOut := math.LegacyNewDecFromInt(reserveOut).Sub(newReserveOut).TruncateInt()
		if amountOut.IsNegative() {
			amountOut = math.ZeroInt()
		}

		// Spot is the pre-trade marginal price, execution the realized
		// fee-inclusive average. Impact is signed and never clamped.
		spotPrice := math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn))
		executionPrice := math.LegacyNewDecFromInt(amountOut).Quo(math.LegacyNewDecFromInt(currentAmount))
		impact := spotPrice.Sub(executionPrice).Quo(spotPrice).Mul(oneHundred)
		totalImpact = totalImpact.Add(impact)

		breakdown = append(breakdown, HopResult{
			AmountIn:       currentAmount.String(),
			AmountOut:      amountOut.String(),
			PoolId:         hop.PoolId,
			PriceImpactPct: FormatPct(impact),
		})

		currentAmount = amountOut
	}

	routePrice := math.LegacyNewDecFromInt(currentAmount).Quo(math.LegacyNewDecFromInt(amountIn))

	result := &SimulatedRouteResult{
		ExecutionPrice:      routePrice.String(),
		HopBreakdown:        breakdown,
		OutputAmount:        currentAmount.String(),
		TotalHostFee:        totalHostFee.String(),
		TotalLpFee:          totalLpFee.String(),
		TotalPriceImpactPct: FormatPct(totalImpact),
	}

	// First match wins, at most one warning.
	if totalImpact.GT(warnImpactThreshold) {
		result.WarningMessage = fmt.Sprintf("High price impact: %s", FormatPct(totalImpact))
	} else if len(req.Hops) > 2 {
		result.WarningMessage = "Multi-hop route may have higher slippage"
	}

	if config.Logger != nil {
		config.Logger.Debug("Simulated route swap",
			zap.String("amount in", amountIn.String()),
			zap.String("amount out", currentAmount.String()),
			zap.Int("hops", len(req.Hops)),
			zap.String("total impact", result.TotalPriceImpactPct),
		)
	}

	return result, nil
}

func parseAmountIn(s string) (math.Int, error) {
	if s == "" {
		return math.Int{}, ErrInvalidAmount.Wrap("amountIn is required")
	}
	v, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, ErrInvalidAmount.Wrapf("amountIn %q is not a base-10 integer", s)
	}
	if !v.IsPositive() {
		return math.Int{}, ErrInvalidAmount.Wrap("amountIn must be greater than zero")
	}
	return v, nil
}
