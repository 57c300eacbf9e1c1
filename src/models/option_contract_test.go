package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionContract(t *testing.T) {
	valid := NewOptionContract(100, 105, 0.5, 0.05, 0.2, Call)

	t.Run("valid contract", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(c *OptionContract)
		}{
			{"zero stock price", func(c *OptionContract) { c.StockPrice = 0 }},
			{"negative stock price", func(c *OptionContract) { c.StockPrice = -1 }},
			{"zero strike price", func(c *OptionContract) { c.StrikePrice = 0 }},
			{"zero time to expiry", func(c *OptionContract) { c.TimeToExpiry = 0 }},
			{"negative time to expiry", func(c *OptionContract) { c.TimeToExpiry = -0.5 }},
			{"zero volatility", func(c *OptionContract) { c.Volatility = 0 }},
			{"negative volatility", func(c *OptionContract) { c.Volatility = -0.2 }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				contract := valid
				tc.mutate(&contract)
				assert.ErrorIs(t, contract.Validate(), InvalidParameterErr)
			})
		}
	})

	t.Run("negative rate is allowed", func(t *testing.T) {
		contract := valid
		contract.RiskFreeRate = -0.01
		assert.NoError(t, contract.Validate())
	})

	t.Run("option type", func(t *testing.T) {
		contract := valid
		contract.Type = OptionType("straddle")
		assert.Error(t, contract.Validate())

		assert.NoError(t, Call.Validate())
		assert.NoError(t, Put.Validate())
	})
}

func TestSurfaceRequest(t *testing.T) {
	valid := SurfaceRequest{
		StrikePrice:     70,
		TimeToExpiry:    1.10,
		RiskFreeRate:    0.10,
		StockPriceRange: Range{Min: 79.94, Max: 119.92},
		VolatilityRange: Range{Min: 0.17, Max: 0.38},
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("non-positive range min", func(t *testing.T) {
		req := valid
		req.VolatilityRange.Min = 0
		assert.ErrorIs(t, req.Validate(), InvalidParameterErr)
	})

	t.Run("inverted range", func(t *testing.T) {
		req := valid
		req.StockPriceRange = Range{Min: 120, Max: 80}
		assert.ErrorIs(t, req.Validate(), InvalidParameterErr)
	})

	t.Run("degenerate range is allowed", func(t *testing.T) {
		req := valid
		req.StockPriceRange = Range{Min: 100, Max: 100}
		assert.NoError(t, req.Validate())
	})
}

func TestDailyCloses(t *testing.T) {
	t.Run("sort chronologically", func(t *testing.T) {
		closes := DailyCloses{
			{Date: "2024-03-01", Close: 101.5},
			{Date: "2024-01-02", Close: 99.2},
			{Date: "2024-02-15", Close: 100.1},
		}

		closes.SortChronologically()

		assert.Equal(t, "2024-01-02", closes[0].Date)
		assert.Equal(t, "2024-02-15", closes[1].Date)
		assert.Equal(t, "2024-03-01", closes[2].Date)
	})

	t.Run("closes slice", func(t *testing.T) {
		closes := DailyCloses{
			{Date: "2024-01-02", Close: 99.2},
			{Date: "2024-01-03", Close: 100.1},
		}

		assert.Equal(t, []float64{99.2, 100.1}, closes.Closes())
	})
}
