package marketdata

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/option-surfaces/src/models"
)

const TradingDaysPerYear = 252

// HistoricalVolatility returns the annualized standard deviation of daily
// log returns, a reasonable seed for the volatility input of a pricing grid.
func HistoricalVolatility(closes models.DailyCloses) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("HistoricalVolatility: need at least 2 closes, got %d", len(closes))
	}

	logReturns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1].Close
		curr := closes[i].Close

		if prev <= 0 || curr <= 0 {
			return 0, fmt.Errorf("HistoricalVolatility: non-positive close on %s: %w", closes[i].Date, models.InvalidParameterErr)
		}

		logReturns = append(logReturns, math.Log(curr/prev))
	}

	sd, err := stats.StandardDeviation(logReturns)
	if err != nil {
		return 0, fmt.Errorf("HistoricalVolatility: failed to caculate the standard deviation: %v", err)
	}

	return sd * math.Sqrt(TradingDaysPerYear), nil
}
