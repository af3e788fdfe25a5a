package model

// StablecoinValuation is the USD value held in one stablecoin on one network.
type StablecoinValuation struct {
	Symbol  string  `json:"symbol"`
	Network string  `json:"network"`
	Value   float64 `json:"value"`
}

// StablecoinSet groups the global reference valuations with the per-meter ones.
type StablecoinSet struct {
	Global   []StablecoinValuation            `json:"globalStablecoins"`
	PerMeter map[string][]StablecoinValuation `json:"meterStablecoins"`
}

// ReferenceStablecoins returns the fixed reference table every meter is valued against.
func ReferenceStablecoins() []StablecoinValuation {
	return []StablecoinValuation{
		{Symbol: "cUSD", Network: "Celo", Value: 1.0},
		{Symbol: "USDe", Network: "Ethereum", Value: 1.0},
		{Symbol: "USDC", Network: "Base", Value: 1.0},
		{Symbol: "xDAI", Network: "Gnosis", Value: 1.0},
		{Symbol: "DAI", Network: "Optimism", Value: 1.0},
		{Symbol: "USDT", Network: "Polygon", Value: 1.0},
		{Symbol: "PYUSD", Network: "Arbitrum", Value: 1.0},
	}
}
