package simulator

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	"github.com/DefiantLabs/RouteSwap/catalog"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T, records ...catalog.PoolRecord) *catalog.Registry {
	t.Helper()
	registry, err := catalog.NewRegistryFromRecords(records)
	require.NoError(t, err)
	return registry
}

func poolRecord(id, assetA, assetB, reserveA, reserveB string, hostBps, lpBps int64) catalog.PoolRecord {
	return catalog.PoolRecord{
		LpPublicKey:   id,
		AssetAAddress: assetA,
		AssetBAddress: assetB,
		AssetAReserve: reserveA,
		AssetBReserve: reserveB,
		HostFeeBps:    hostBps,
		LpFeeBps:      lpBps,
		CreatedAt:     "2024-01-01T00:00:00Z",
	}
}

// The worked scenario: reserves 1,000,000 / 2,000,000, 20+250 bps fee, amount
// in 10,000 swapping A for B. Fees of 20 and 250 leave 9,730 entering the
// pool; the constant product gives 19,272 out, a 3.64% impact off the 2.0
// spot price.
func TestSimulate_SingleHop(t *testing.T) {
	registry := testRegistry(t, poolRecord("pool-1", "asset-a", "asset-b", "1000000", "2000000", 20, 250))

	result, err := Simulate(registry, SwapRequest{
		Hops:     []Hop{{AssetInAddress: "asset-a", AssetOutAddress: "asset-b", PoolId: "pool-1"}},
		AmountIn: "10000",
	})
	require.NoError(t, err)

	require.Len(t, result.HopBreakdown, 1)
	hop := result.HopBreakdown[0]
	require.Equal(t, "10000", hop.AmountIn)
	require.Equal(t, "19272", hop.AmountOut)
	require.Equal(t, "pool-1", hop.PoolId)
	require.Equal(t, "3.64%", hop.PriceImpactPct)

	require.Equal(t, "19272", result.OutputAmount)
	require.Equal(t, "20", result.TotalHostFee)
	require.Equal(t, "250", result.TotalLpFee)
	require.Equal(t, "3.64%", result.TotalPriceImpactPct)
	require.Equal(t, "1.927200000000000000", result.ExecutionPrice)
	require.Empty(t, result.WarningMessage)
}

// Output must match the closed form floor(Rout - Rin*Rout/(Rin + inAfterFees))
// for a spread of reserve/fee/amount combinations.
func TestSimulate_SingleHopClosedForm(t *testing.T) {
	cases := []struct {
		name           string
		reserveIn      int64
		reserveOut     int64
		hostBps, lpBps int64
		amountIn       int64
	}{
		{"balanced no fee", 1_000_000, 1_000_000, 0, 0, 50_000},
		{"balanced uniswap fee", 1_000_000, 1_000_000, 0, 30, 50_000},
		{"skewed heavy fee", 500_000, 2_000_000_000, 50, 500, 123_457},
		{"tiny trade", 1_000_000_000, 3_000_000_000, 20, 250, 7},
		{"trade near pool size", 1_000_000, 2_000_000, 200, 1000, 900_000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registry := testRegistry(t, catalog.PoolRecord{
				LpPublicKey:   "p",
				AssetAAddress: "in",
				AssetBAddress: "out",
				AssetAReserve: math.NewInt(tc.reserveIn).String(),
				AssetBReserve: math.NewInt(tc.reserveOut).String(),
				HostFeeBps:    tc.hostBps,
				LpFeeBps:      tc.lpBps,
				CreatedAt:     "2024-01-01T00:00:00Z",
			})

			result, err := Simulate(registry, SwapRequest{
				Hops:     []Hop{{AssetInAddress: "in", AssetOutAddress: "out", PoolId: "p"}},
				AmountIn: math.NewInt(tc.amountIn).String(),
			})
			require.NoError(t, err)

			amount := math.NewInt(tc.amountIn)
			hostFee := amount.MulRaw(tc.hostBps).QuoRaw(10000)
			lpFee := amount.MulRaw(tc.lpBps).QuoRaw(10000)
			inAfterFees := amount.Sub(hostFee).Sub(lpFee)

			rIn := math.NewInt(tc.reserveIn)
			rOut := math.NewInt(tc.reserveOut)
			newRIn := rIn.Add(inAfterFees)
			// floor(rOut - k/newRIn) == (rOut*newRIn - k) / newRIn for
			// non-negative numerators
			expected := rOut.Mul(newRIn).Sub(rIn.Mul(rOut)).Quo(newRIn)

			require.Equal(t, expected.String(), result.OutputAmount)
			require.Equal(t, hostFee.String(), result.TotalHostFee)
			require.Equal(t, lpFee.String(), result.TotalLpFee)

			// fee conservation
			require.True(t, hostFee.Add(lpFee).LTE(amount))
			require.True(t, inAfterFees.Add(hostFee).Add(lpFee).Equal(amount))
		})
	}
}

func TestSimulate_DeadPoolDrainsRoute(t *testing.T) {
	registry := testRegistry(t,
		poolRecord("dead", "asset-a", "asset-b", "0", "2000000", 20, 250),
		poolRecord("live", "asset-b", "asset-c", "1000000", "1000000", 20, 250),
	)

	result, err := Simulate(registry, SwapRequest{
		Hops: []Hop{
			{AssetInAddress: "asset-a", AssetOutAddress: "asset-b", PoolId: "dead"},
			{AssetInAddress: "asset-b", AssetOutAddress: "asset-c", PoolId: "live"},
		},
		AmountIn: "10000",
	})
	require.NoError(t, err)

	require.Len(t, result.HopBreakdown, 2)
	require.Equal(t, "0", result.HopBreakdown[0].AmountOut)
	require.Equal(t, "100%", result.HopBreakdown[0].PriceImpactPct)

	// the live pool downstream is starved and reports the same degenerate hop
	require.Equal(t, "0", result.HopBreakdown[1].AmountIn)
	require.Equal(t, "0", result.HopBreakdown[1].AmountOut)
	require.Equal(t, "100%", result.HopBreakdown[1].PriceImpactPct)

	require.Equal(t, "0", result.OutputAmount)
	require.Equal(t, "0.000000000000000000", result.ExecutionPrice)
	require.Equal(t, "200.00%", result.TotalPriceImpactPct)
}

func TestSimulate_RouteChaining(t *testing.T) {
	registry := testRegistry(t,
		poolRecord("p1", "asset-a", "asset-b", "1000000000000", "1000000000000", 5, 5),
		poolRecord("p2", "asset-b", "asset-c", "1000000000000", "1000000000000", 5, 5),
		poolRecord("p3", "asset-c", "asset-d", "1000000000000", "1000000000000", 5, 5),
	)

	result, err := Simulate(registry, SwapRequest{
		Hops: []Hop{
			{AssetInAddress: "asset-a", AssetOutAddress: "asset-b", PoolId: "p1"},
			{AssetInAddress: "asset-b", AssetOutAddress: "asset-c", PoolId: "p2"},
			{AssetInAddress: "asset-c", AssetOutAddress: "asset-d", PoolId: "p3"},
		},
		AmountIn: "1000000",
	})
	require.NoError(t, err)

	require.Len(t, result.HopBreakdown, 3)
	require.Equal(t, "1000000", result.HopBreakdown[0].AmountIn)
	for i := 1; i < len(result.HopBreakdown); i++ {
		require.Equal(t, result.HopBreakdown[i-1].AmountOut, result.HopBreakdown[i].AmountIn,
			"hop %d input must equal hop %d output", i, i-1)
	}
	require.Equal(t, result.HopBreakdown[2].AmountOut, result.OutputAmount)

	// low-fee deep pools keep total impact under the threshold, so the
	// multi-hop advisory applies
	require.Equal(t, "Multi-hop route may have higher slippage", result.WarningMessage)
}

// A route that is both high impact and more than two hops must report the
// high-impact warning: first match wins.
func TestSimulate_WarningPrecedence(t *testing.T) {
	registry := testRegistry(t,
		poolRecord("p1", "asset-a", "asset-b", "1000000000", "1000000000", 50, 250),
		poolRecord("p2", "asset-b", "asset-c", "1000000000", "1000000000", 50, 250),
		poolRecord("p3", "asset-c", "asset-d", "1000000000", "1000000000", 50, 250),
	)

	result, err := Simulate(registry, SwapRequest{
		Hops: []Hop{
			{AssetInAddress: "asset-a", AssetOutAddress: "asset-b", PoolId: "p1"},
			{AssetInAddress: "asset-b", AssetOutAddress: "asset-c", PoolId: "p2"},
			{AssetInAddress: "asset-c", AssetOutAddress: "asset-d", PoolId: "p3"},
		},
		AmountIn: "1000000",
	})
	require.NoError(t, err)

	require.Contains(t, result.WarningMessage, "High price impact:")
	require.NotContains(t, result.WarningMessage, "Multi-hop")
}

func TestSimulate_ReverseDirection(t *testing.T) {
	registry := testRegistry(t, poolRecord("pool-1", "asset-a", "asset-b", "1000000", "2000000", 0, 0))

	// swapping B for A uses reserveB as the input side
	result, err := Simulate(registry, SwapRequest{
		Hops:     []Hop{{AssetInAddress: "asset-b", AssetOutAddress: "asset-a", PoolId: "pool-1"}},
		AmountIn: "20000",
	})
	require.NoError(t, err)

	// floor(1000000 - 2e12/2020000) = floor(9900.99...) = 9900
	require.Equal(t, "9900", result.OutputAmount)
}

func TestSimulate_PoolNotFound(t *testing.T) {
	registry := testRegistry(t, poolRecord("pool-1", "asset-a", "asset-b", "1000000", "2000000", 20, 250))

	result, err := Simulate(registry, SwapRequest{
		Hops: []Hop{
			{AssetInAddress: "asset-a", AssetOutAddress: "asset-b", PoolId: "pool-1"},
			{AssetInAddress: "asset-b", AssetOutAddress: "asset-c", PoolId: "no-such-pool"},
		},
		AmountIn: "10000",
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrPoolNotFound))
	require.Contains(t, err.Error(), "no-such-pool")
	require.Nil(t, result, "no partial breakdown on a fatal error")
}

func TestSimulate_InvalidHop(t *testing.T) {
	registry := testRegistry(t, poolRecord("pool-1", "asset-a", "asset-b", "1000000", "2000000", 20, 250))

	result, err := Simulate(registry, SwapRequest{
		Hops:     []Hop{{AssetInAddress: "asset-x", AssetOutAddress: "asset-b", PoolId: "pool-1"}},
		AmountIn: "10000",
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidHop))
	require.Nil(t, result)
}

func TestSimulate_InvalidAmount(t *testing.T) {
	registry := testRegistry(t, poolRecord("pool-1", "asset-a", "asset-b", "1000000", "2000000", 20, 250))
	hops := []Hop{{AssetInAddress: "asset-a", AssetOutAddress: "asset-b", PoolId: "pool-1"}}

	for _, amount := range []string{"", "0", "-5", "12.5", "abc"} {
		_, err := Simulate(registry, SwapRequest{Hops: hops, AmountIn: amount})
		require.Error(t, err, "amountIn %q", amount)
		require.True(t, errors.Is(err, ErrInvalidAmount), "amountIn %q", amount)
	}
}

func TestSimulate_EmptyRoute(t *testing.T) {
	registry := testRegistry(t)

	_, err := Simulate(registry, SwapRequest{AmountIn: "10000"})
	require.True(t, errors.Is(err, ErrEmptyRoute))
}

func TestSimulate_MaxRouteSlippage(t *testing.T) {
	registry := testRegistry(t, poolRecord("pool-1", "asset-a", "asset-b", "1000000", "2000000", 20, 250))
	hops := []Hop{{AssetInAddress: "asset-a", AssetOutAddress: "asset-b", PoolId: "pool-1"}}

	// valid tolerance is carried but never enforced, even when impact exceeds it
	result, err := Simulate(registry, SwapRequest{Hops: hops, AmountIn: "10000", MaxRouteSlippageBps: "1"})
	require.NoError(t, err)
	require.Equal(t, "19272", result.OutputAmount)

	_, err = Simulate(registry, SwapRequest{Hops: hops, AmountIn: "10000", MaxRouteSlippageBps: "-10"})
	require.True(t, errors.Is(err, ErrInvalidAmount))
}

func TestSimulate_FeesSwallowTinyTrade(t *testing.T) {
	registry := testRegistry(t, poolRecord("pool-1", "asset-a", "asset-b", "1000000", "1000000", 5000, 5000))

	// the whole input goes to fees, nothing enters the AMM
	result, err := Simulate(registry, SwapRequest{
		Hops:     []Hop{{AssetInAddress: "asset-a", AssetOutAddress: "asset-b", PoolId: "pool-1"}},
		AmountIn: "2",
	})
	require.NoError(t, err)
	require.Equal(t, "0", result.OutputAmount)
	require.Equal(t, "100.00%", result.HopBreakdown[0].PriceImpactPct)
}
