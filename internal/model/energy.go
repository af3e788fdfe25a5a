package model

// HourlyEnergyUsage is the energy used by one meter during one hour slot of the day.
type HourlyEnergyUsage struct {
	MeterID    string  `json:"meterId"`
	Hour       string  `json:"hour"`
	EnergyUsed float64 `json:"energyUsed"`
	Timestamp  string  `json:"timestamp"`
}

// EnergyUsageOfMeter filters rows down to meterID.
func EnergyUsageOfMeter(rows []HourlyEnergyUsage, meterID string) []HourlyEnergyUsage {
	out := make([]HourlyEnergyUsage, 0)
	for _, r := range rows {
		if r.MeterID == meterID {
			out = append(out, r)
		}
	}
	return out
}
