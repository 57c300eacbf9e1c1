package surfaces

import (
	"fmt"
	"math"

	"github.com/jiaming2012/option-surfaces/src/models"
	"github.com/jiaming2012/option-surfaces/src/pricing"
)

// Evaluate prices calls and puts across a 10x10 (volatility, stock price)
// grid that shares the request's strike, expiry and rate. When the request
// carries base prices, the matching P&L matrices are attached. The first cell
// that fails to price aborts the whole evaluation.
func Evaluate(req models.SurfaceRequest) (*models.Surface, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}

	surface := &models.Surface{
		StockPrices:  axis(req.StockPriceRange),
		Volatilities: axis(req.VolatilityRange),
	}

	for i, volatility := range surface.Volatilities {
		for j, stockPrice := range surface.StockPrices {
			call := models.NewOptionContract(stockPrice, req.StrikePrice, req.TimeToExpiry, req.RiskFreeRate, volatility, models.Call)

			callResult, err := pricing.Price(call)
			if err != nil {
				return nil, fmt.Errorf("Evaluate: cell (%d, %d): %w", i, j, err)
			}

			put := call
			put.Type = models.Put

			putResult, err := pricing.Price(put)
			if err != nil {
				return nil, fmt.Errorf("Evaluate: cell (%d, %d): %w", i, j, err)
			}

			surface.CallPrices[i][j] = roundTwo(callResult.Price)
			surface.PutPrices[i][j] = roundTwo(putResult.Price)
		}
	}

	if req.BaseCallPrice != 0 {
		surface.CallPnL = pnl(req.BaseCallPrice, surface.CallPrices)
	}

	if req.BasePutPrice != 0 {
		surface.PutPnL = pnl(req.BasePutPrice, surface.PutPrices)
	}

	return surface, nil
}

// axis returns SurfaceSize evenly spaced samples over r, each rounded up to
// the nearest 0.01 for display. Ceiling means the realized bounds can sit
// slightly above the requested ones.
func axis(r models.Range) [models.SurfaceSize]float64 {
	var values [models.SurfaceSize]float64

	step := (r.Max - r.Min) / float64(models.SurfaceSize-1)
	for i := range values {
		values[i] = ceilTwo(r.Min + float64(i)*step)
	}

	return values
}

// pnl frames profit and loss as base minus current, i.e. a cell is positive
// when the priced premium sits below the base.
func pnl(base float64, prices [models.SurfaceSize][models.SurfaceSize]float64) *[models.SurfaceSize][models.SurfaceSize]float64 {
	var matrix [models.SurfaceSize][models.SurfaceSize]float64

	for i := range prices {
		for j := range prices[i] {
			matrix[i][j] = roundTwo(base - prices[i][j])
		}
	}

	return &matrix
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}

func ceilTwo(v float64) float64 {
	return math.Ceil(v*100) / 100
}
