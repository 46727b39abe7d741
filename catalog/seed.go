package catalog

// Built-in pool set used when no pools file or remote catalog is configured.
// Prices assume 1 BTC = $100,000 and 1 USDB = $1.
const (
	btcAssetPubkey = "020202020202020202020202020202020202020202020202020202020202020202"
	usdbAddress    = "btkn1xgrvjwey5ngcagvap2dzzvsy4uk8ua9x69k82dwvt5e7ef9drm9qztux87"
	snowflake      = "btkn1f0wpf28xhs6sswxkthx9fzrv2x9476yk95wlucp4sfuqmxnu8zesv2gsws"
	flashspark     = "btkn1daywtenlww42njymqzyegvcwuy3p9f26zknme0srxa7tagewvuys86h553"
	xspark         = "btkn1dywglzsxyaxx69u4dchyz9vnt4gpmp0w26f3n5st2rslusv4kv7szrrwzm"
	bruh           = "btkn18tq8zfgtvnmg0wct0hvwzpkfs0scse8edef4ten39schhfhrksus7hlm8a"
)

// SeedRecords returns the default pool catalog: a high-liquidity BTC/USDB
// bridge pool, two mid-liquidity meme pools that share an asset (so multi-hop
// routes exist), two thin single-pair pools, and one near-dead pool with
// punitive fees.
func SeedRecords() []PoolRecord {
	return []PoolRecord{
		{
			LpPublicKey:           "bridge_btc_usdb",
			HostFeeBps:            5,
			LpFeeBps:              10,
			AssetAAddress:         btcAssetPubkey,
			AssetBAddress:         usdbAddress,
			AssetAReserve:         "10000000000",      // 100 BTC
			AssetBReserve:         "1000000000000000", // 10,000,000 USDB
			CurrentPriceAInB:      "100000",
			TvlAssetB:             "1000000000000000",
			Volume24hAssetB:       "50000000000000",
			PriceChangePercent24h: "0.1",
			CreatedAt:             "2024-01-01T00:00:00Z",
		},
		{
			LpPublicKey:           "pool_snow_btc",
			HostFeeBps:            20,
			LpFeeBps:              250,
			AssetAAddress:         snowflake,
			AssetBAddress:         btcAssetPubkey,
			AssetAReserve:         "500000000000000", // 5,000,000 SNOW
			AssetBReserve:         "500000000",       // 5 BTC
			CurrentPriceAInB:      "0.000001",
			TvlAssetB:             "500000000",
			Volume24hAssetB:       "50000000",
			PriceChangePercent24h: "1.5",
			CreatedAt:             "2024-01-01T00:00:00Z",
		},
		{
			LpPublicKey:           "pool_snow_usdb",
			HostFeeBps:            20,
			LpFeeBps:              250,
			AssetAAddress:         snowflake,
			AssetBAddress:         usdbAddress,
			AssetAReserve:         "500000000000000", // 5,000,000 SNOW
			AssetBReserve:         "50000000000000",  // 500,000 USDB
			CurrentPriceAInB:      "0.1",
			TvlAssetB:             "50000000000000",
			Volume24hAssetB:       "5000000000000",
			PriceChangePercent24h: "1.2",
			CreatedAt:             "2024-01-01T00:00:00Z",
		},
		{
			LpPublicKey:           "pool_bruh_btc",
			HostFeeBps:            50,
			LpFeeBps:              500,
			AssetAAddress:         bruh,
			AssetBAddress:         btcAssetPubkey,
			AssetAReserve:         "100000000000000", // 1,000,000 BRUH
			AssetBReserve:         "50000000",        // 0.5 BTC
			CurrentPriceAInB:      "0.0000005",
			TvlAssetB:             "50000000",
			Volume24hAssetB:       "5000000",
			PriceChangePercent24h: "-2.3",
			CreatedAt:             "2024-01-01T00:00:00Z",
		},
		{
			LpPublicKey:           "pool_flashspark_usdb",
			HostFeeBps:            50,
			LpFeeBps:              500,
			AssetAAddress:         flashspark,
			AssetBAddress:         usdbAddress,
			AssetAReserve:         "100000000000000", // 1,000,000 FLASHSPARK
			AssetBReserve:         "3000000000000",   // 30,000 USDB
			CurrentPriceAInB:      "0.03",
			TvlAssetB:             "3000000000000",
			Volume24hAssetB:       "300000000000",
			PriceChangePercent24h: "0.8",
			CreatedAt:             "2024-01-01T00:00:00Z",
		},
		{
			LpPublicKey:           "pool_xspark_usdb",
			HostFeeBps:            200,
			LpFeeBps:              1000,
			AssetAAddress:         xspark,
			AssetBAddress:         usdbAddress,
			AssetAReserve:         "50000000000000", // 500,000 XSPARK
			AssetBReserve:         "500000000000",   // 5,000 USDB
			CurrentPriceAInB:      "0.01",
			TvlAssetB:             "500000000000",
			Volume24hAssetB:       "50000000000",
			PriceChangePercent24h: "-5.7",
			CreatedAt:             "2024-01-01T00:00:00Z",
		},
	}
}
