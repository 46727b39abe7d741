package catalog

import (
	"cosmossdk.io/math"

	sdkerrors "cosmossdk.io/errors"
)

// Sentinel errors for pool record parsing
var (
	ErrMissingPoolId    = sdkerrors.Register("catalog", 1, "pool record has no pool id")
	ErrMissingAsset     = sdkerrors.Register("catalog", 2, "pool record has a missing asset address")
	ErrSameAsset        = sdkerrors.Register("catalog", 3, "pool assets must differ")
	ErrBadReserve       = sdkerrors.Register("catalog", 4, "pool reserve is not a non-negative integer")
	ErrNegativeFee      = sdkerrors.Register("catalog", 5, "pool fee bps cannot be negative")
	ErrFeeTooHigh       = sdkerrors.Register("catalog", 9, "combined pool fee exceeds 100%")
	ErrDuplicatePoolId  = sdkerrors.Register("catalog", 6, "duplicate pool id")
	ErrEmptyCatalog     = sdkerrors.Register("catalog", 7, "catalog document contains no pools")
	ErrCatalogUnreached = sdkerrors.Register("catalog", 8, "catalog source unreachable")
)

// Pool is an immutable snapshot of one AMM pool. Reserves are exact
// smallest-unit integers; the simulator never mutates a Pool.
type Pool struct {
	PoolID     string
	HostName   string
	AssetA     string
	AssetB     string
	ReserveA   math.Int
	ReserveB   math.Int
	HostFeeBps int64
	LpFeeBps   int64
	//Display-only metadata carried through to the /pools listing
	CurrentPriceAInB      string
	TvlAssetB             math.Int
	Volume24hAssetB       string
	PriceChangePercent24h string
	CreatedAt             string
}

// Drained reports whether either side of the pool is empty. A swap through a
// drained pool yields zero output and 100% price impact.
func (p Pool) Drained() bool {
	return p.ReserveA.IsZero() || p.ReserveB.IsZero()
}

// PoolRecord is the wire/file representation of a pool. Field names match the
// upstream catalog JSON.
type PoolRecord struct {
	LpPublicKey           string `json:"lpPublicKey"`
	HostName              string `json:"hostName,omitempty"`
	HostFeeBps            int64  `json:"hostFeeBps"`
	LpFeeBps              int64  `json:"lpFeeBps"`
	AssetAAddress         string `json:"assetAAddress"`
	AssetBAddress         string `json:"assetBAddress"`
	AssetAReserve         string `json:"assetAReserve,omitempty"`
	AssetBReserve         string `json:"assetBReserve,omitempty"`
	CurrentPriceAInB      string `json:"currentPriceAInB,omitempty"`
	TvlAssetB             string `json:"tvlAssetB,omitempty"`
	Volume24hAssetB       string `json:"volume24hAssetB,omitempty"`
	PriceChangePercent24h string `json:"priceChangePercent24h,omitempty"`
	CreatedAt             string `json:"createdAt"`
}

// PoolsDocument wraps a pool list the way the upstream catalog endpoint and
// the pools file lay it out.
type PoolsDocument struct {
	Pools []PoolRecord `json:"pools"`
}

// ToPool validates the record and converts string amounts to exact integers.
// Absent reserves parse as zero, which marks the pool drained.
func (rec PoolRecord) ToPool() (Pool, error) {
	if rec.LpPublicKey == "" {
		return Pool{}, ErrMissingPoolId
	}
	if rec.AssetAAddress == "" || rec.AssetBAddress == "" {
		return Pool{}, ErrMissingAsset.Wrapf("pool %s", rec.LpPublicKey)
	}
	if rec.AssetAAddress == rec.AssetBAddress {
		return Pool{}, ErrSameAsset.Wrapf("pool %s", rec.LpPublicKey)
	}
	if rec.HostFeeBps < 0 || rec.LpFeeBps < 0 {
		return Pool{}, ErrNegativeFee.Wrapf("pool %s", rec.LpPublicKey)
	}
	if rec.HostFeeBps+rec.LpFeeBps > 10000 {
		return Pool{}, ErrFeeTooHigh.Wrapf("pool %s charges %d bps", rec.LpPublicKey, rec.HostFeeBps+rec.LpFeeBps)
	}

	reserveA, err := parseReserve(rec.AssetAReserve)
	if err != nil {
		return Pool{}, ErrBadReserve.Wrapf("pool %s reserve A %q", rec.LpPublicKey, rec.AssetAReserve)
	}
	reserveB, err := parseReserve(rec.AssetBReserve)
	if err != nil {
		return Pool{}, ErrBadReserve.Wrapf("pool %s reserve B %q", rec.LpPublicKey, rec.AssetBReserve)
	}

	tvl, err := parseReserve(rec.TvlAssetB)
	if err != nil {
		//TVL is display-only metadata, a malformed value just sorts last
		tvl = math.ZeroInt()
	}

	return Pool{
		PoolID:                rec.LpPublicKey,
		HostName:              rec.HostName,
		AssetA:                rec.AssetAAddress,
		AssetB:                rec.AssetBAddress,
		ReserveA:              reserveA,
		ReserveB:              reserveB,
		HostFeeBps:            rec.HostFeeBps,
		LpFeeBps:              rec.LpFeeBps,
		CurrentPriceAInB:      rec.CurrentPriceAInB,
		TvlAssetB:             tvl,
		Volume24hAssetB:       rec.Volume24hAssetB,
		PriceChangePercent24h: rec.PriceChangePercent24h,
		CreatedAt:             rec.CreatedAt,
	}, nil
}

// Record converts the pool back to its wire representation.
func (p Pool) Record() PoolRecord {
	return PoolRecord{
		LpPublicKey:           p.PoolID,
		HostName:              p.HostName,
		HostFeeBps:            p.HostFeeBps,
		LpFeeBps:              p.LpFeeBps,
		AssetAAddress:         p.AssetA,
		AssetBAddress:         p.AssetB,
		AssetAReserve:         p.ReserveA.String(),
		AssetBReserve:         p.ReserveB.String(),
		CurrentPriceAInB:      p.CurrentPriceAInB,
		TvlAssetB:             p.TvlAssetB.String(),
		Volume24hAssetB:       p.Volume24hAssetB,
		PriceChangePercent24h: p.PriceChangePercent24h,
		CreatedAt:             p.CreatedAt,
	}
}

func parseReserve(s string) (math.Int, error) {
	if s == "" {
		return math.ZeroInt(), nil
	}
	v, ok := math.NewIntFromString(s)
	if !ok || v.IsNegative() {
		return math.Int{}, ErrBadReserve
	}
	return v, nil
}
