package meter

import "github.com/m3terscan/m3terscan-backend/internal/model"

const (
	minStablecoinValue   = 200
	stablecoinValueRange = 450
)

// MeterStablecoins values every reference stablecoin for every meter present in blocks.
// The symbol and network of each row follow reference positionally.
func MeterStablecoins(blocks []model.Block, reference []model.StablecoinValuation, rnd Rand) map[string][]model.StablecoinValuation {
	meterIDs := model.MeterIDs(blocks)
	out := make(map[string][]model.StablecoinValuation, len(meterIDs))

	for _, meterID := range meterIDs {
		activity := ActivityLevel(len(model.BlocksOfMeter(blocks, meterID)), len(blocks))
		coins := make([]model.StablecoinValuation, 0, len(reference))
		for _, ref := range reference {
			value := minStablecoinValue + rnd.Float64()*stablecoinValueRange*activity
			coins = append(coins, model.StablecoinValuation{
				Symbol:  ref.Symbol,
				Network: ref.Network,
				Value:   round(value, 4),
			})
		}
		out[meterID] = coins
	}
	return out
}
