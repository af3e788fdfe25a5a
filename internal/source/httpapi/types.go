package httpapi

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records the outcome of every API call.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type blockDTO struct {
	BlockNumber  int       `json:"blockNumber"`
	BlockAddress string    `json:"blockAddress"`
	BlockStatus  string    `json:"blockStatus"`
	CreatedAt    time.Time `json:"createdAt"`
	ProposerName string    `json:"proposerName"`
	MeterID      string    `json:"meterId"`
}

type energyUsageDTO struct {
	MeterID          string  `json:"meterId"`
	Hour             string  `json:"hour"`
	EnergyUsedKwh    float64 `json:"energyUsedKwh"`
	ReadingTimestamp string  `json:"readingTimestamp"`
}

type stablecoinDTO struct {
	CurrencySymbol string  `json:"currencySymbol"`
	NetworkName    string  `json:"networkName"`
	USDValue       float64 `json:"usdValue"`
}

type stablecoinsDTO struct {
	GlobalStablecoins []stablecoinDTO            `json:"globalStablecoins"`
	MeterStablecoins  map[string][]stablecoinDTO `json:"meterStablecoins"`
}

type heatmapDayDTO struct {
	MeterID     string  `json:"meterId"`
	Date        string  `json:"date"`
	EnergyValue float64 `json:"energyValue"`
	Month       int     `json:"month"`
	Day         int     `json:"day"`
	Weekday     int     `json:"weekday"`
	Week        int     `json:"week"`
}
