package models

import "fmt"

// SurfaceSize is the number of samples taken along each grid axis.
const SurfaceSize = 10

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Validate() error {
	if r.Min <= 0 {
		return fmt.Errorf("Range: Validate: min %v: %w", r.Min, InvalidParameterErr)
	}

	if r.Max < r.Min {
		return fmt.Errorf("Range: Validate: max %v is below min %v: %w", r.Max, r.Min, InvalidParameterErr)
	}

	return nil
}

// SurfaceRequest carries the contract terms shared by every grid cell plus
// the price and volatility ranges to sweep. Base prices are optional; when
// non-zero the matching P&L matrix is computed.
type SurfaceRequest struct {
	StrikePrice     float64 `json:"strike_price"`
	TimeToExpiry    float64 `json:"time_to_expiry"`
	RiskFreeRate    float64 `json:"risk_free_rate"`
	StockPriceRange Range   `json:"stock_price_range"`
	VolatilityRange Range   `json:"volatility_range"`
	BaseCallPrice   float64 `json:"base_call_price"`
	BasePutPrice    float64 `json:"base_put_price"`
}

func (req SurfaceRequest) Validate() error {
	if req.StrikePrice <= 0 {
		return fmt.Errorf("SurfaceRequest: Validate: strike price %v: %w", req.StrikePrice, InvalidParameterErr)
	}

	if req.TimeToExpiry <= 0 {
		return fmt.Errorf("SurfaceRequest: Validate: time to expiry %v: %w", req.TimeToExpiry, InvalidParameterErr)
	}

	if err := req.StockPriceRange.Validate(); err != nil {
		return fmt.Errorf("SurfaceRequest: Validate: stock price range: %w", err)
	}

	if err := req.VolatilityRange.Validate(); err != nil {
		return fmt.Errorf("SurfaceRequest: Validate: volatility range: %w", err)
	}

	return nil
}

// Surface is one grid evaluation result. Matrices are indexed
// [volatility][stockPrice], matching the axis slices. The P&L matrices are
// nil unless the request supplied a base price for that side.
type Surface struct {
	StockPrices  [SurfaceSize]float64               `json:"stock_prices"`
	Volatilities [SurfaceSize]float64               `json:"volatilities"`
	CallPrices   [SurfaceSize][SurfaceSize]float64  `json:"call_prices"`
	PutPrices    [SurfaceSize][SurfaceSize]float64  `json:"put_prices"`
	CallPnL      *[SurfaceSize][SurfaceSize]float64 `json:"call_pnl,omitempty"`
	PutPnL       *[SurfaceSize][SurfaceSize]float64 `json:"put_pnl,omitempty"`
}
