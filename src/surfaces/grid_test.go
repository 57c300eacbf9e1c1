package surfaces

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-surfaces/src/models"
	"github.com/jiaming2012/option-surfaces/src/pricing"
)

func TestAxis(t *testing.T) {
	t.Run("rounds every sample up to the nearest cent", func(t *testing.T) {
		values := axis(models.Range{Min: 1.0, Max: 2.0})

		assert.Equal(t, ceilTwo(1.0), values[0])
		for _, v := range values {
			cents := v * 100
			assert.InDelta(t, math.Round(cents), cents, 1e-9)
		}
	})

	t.Run("non-decreasing with realized bounds at or above the request", func(t *testing.T) {
		r := models.Range{Min: 79.94, Max: 119.92}
		values := axis(r)

		for i := 1; i < len(values); i++ {
			assert.GreaterOrEqual(t, values[i], values[i-1])
		}

		assert.GreaterOrEqual(t, values[0], r.Min-1e-9)
		assert.GreaterOrEqual(t, values[len(values)-1], r.Max-1e-9)
	})

	t.Run("degenerate range repeats a single value", func(t *testing.T) {
		values := axis(models.Range{Min: 0.2, Max: 0.2})

		for _, v := range values {
			assert.Equal(t, values[0], v)
		}
	})
}

func TestEvaluate(t *testing.T) {
	req := models.SurfaceRequest{
		StrikePrice:     70,
		TimeToExpiry:    1.10,
		RiskFreeRate:    0.10,
		StockPriceRange: models.Range{Min: 79.94, Max: 119.92},
		VolatilityRange: models.Range{Min: 0.17, Max: 0.38},
	}

	t.Run("call price grows along both axes", func(t *testing.T) {
		surface, err := Evaluate(req)
		require.NoError(t, err)

		last := models.SurfaceSize - 1
		assert.LessOrEqual(t, surface.CallPrices[0][0], surface.CallPrices[last][last])
	})

	t.Run("cells match the pricer", func(t *testing.T) {
		surface, err := Evaluate(req)
		require.NoError(t, err)

		contract := models.NewOptionContract(surface.StockPrices[7], req.StrikePrice, req.TimeToExpiry, req.RiskFreeRate, surface.Volatilities[3], models.Call)

		result, err := pricing.Price(contract)
		require.NoError(t, err)

		assert.Equal(t, roundTwo(result.Price), surface.CallPrices[3][7])

		contract.Type = models.Put
		result, err = pricing.Price(contract)
		require.NoError(t, err)

		assert.Equal(t, roundTwo(result.Price), surface.PutPrices[3][7])
	})

	t.Run("no pnl matrices without base prices", func(t *testing.T) {
		surface, err := Evaluate(req)
		require.NoError(t, err)

		assert.Nil(t, surface.CallPnL)
		assert.Nil(t, surface.PutPnL)
	})

	t.Run("pnl is base minus price", func(t *testing.T) {
		withBases := req
		withBases.BaseCallPrice = 24.5
		withBases.BasePutPrice = 3.75

		surface, err := Evaluate(withBases)
		require.NoError(t, err)

		require.NotNil(t, surface.CallPnL)
		require.NotNil(t, surface.PutPnL)

		for i := 0; i < models.SurfaceSize; i++ {
			for j := 0; j < models.SurfaceSize; j++ {
				assert.Equal(t, roundTwo(withBases.BaseCallPrice-surface.CallPrices[i][j]), surface.CallPnL[i][j])
				assert.Equal(t, roundTwo(withBases.BasePutPrice-surface.PutPrices[i][j]), surface.PutPnL[i][j])
			}
		}
	})

	t.Run("invalid request fails fast", func(t *testing.T) {
		invalid := req
		invalid.VolatilityRange.Min = 0

		surface, err := Evaluate(invalid)
		assert.Nil(t, surface)
		assert.ErrorIs(t, err, models.InvalidParameterErr)
	})
}
