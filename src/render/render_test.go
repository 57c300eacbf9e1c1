package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olekukonko/tablewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-surfaces/src/models"
	"github.com/jiaming2012/option-surfaces/src/surfaces"
)

func TestTables(t *testing.T) {
	contract := models.NewOptionContract(100, 105, 0.5, 0.05, 0.2, models.Call)

	t.Run("parameter table", func(t *testing.T) {
		display := &strings.Builder{}
		ParameterTable(display, contract)

		out := display.String()
		assert.Contains(t, out, "Strike Price")
		assert.Contains(t, out, "$105.00")
		assert.Contains(t, out, "Volatility")
		assert.Contains(t, out, "20.00%")
		assert.Contains(t, out, "call")
	})

	t.Run("greeks table", func(t *testing.T) {
		display := &strings.Builder{}
		GreeksTable(display, models.PricingResult{Price: 4.5817, Delta: 0.4612, Gamma: 0.0281, Vega: 28.0754, Theta: -6.2589, Rho: 19.9181})

		out := display.String()
		assert.Contains(t, out, "Delta")
		assert.Contains(t, out, "0.4612")
		assert.Contains(t, out, "Rho")
		assert.Contains(t, out, "19.9181")
	})
}

func TestColorScale(t *testing.T) {
	scale := DivergingScale()

	assert.Equal(t, tablewriter.Colors{tablewriter.FgRedColor}, scale.colorsFor(-1.25))
	assert.Equal(t, tablewriter.Colors{tablewriter.FgYellowColor}, scale.colorsFor(0))
	assert.Equal(t, tablewriter.Colors{tablewriter.FgGreenColor}, scale.colorsFor(0.87))
}

func TestHeatmap(t *testing.T) {
	surface, err := surfaces.Evaluate(models.SurfaceRequest{
		StrikePrice:     100,
		TimeToExpiry:    1.0,
		RiskFreeRate:    0.05,
		StockPriceRange: models.Range{Min: 80, Max: 120},
		VolatilityRange: models.Range{Min: 0.1, Max: 0.3},
	})
	require.NoError(t, err)

	t.Run("axes label the grid", func(t *testing.T) {
		display := &strings.Builder{}
		Heatmap(display, "CALL", surface.CallPrices, surface, ColorScale{})

		last := models.SurfaceSize - 1

		out := display.String()
		assert.Contains(t, out, "CALL")
		assert.Contains(t, out, fmt.Sprintf("%.2f", surface.StockPrices[0]))
		assert.Contains(t, out, fmt.Sprintf("%.2f", surface.StockPrices[last]))
		assert.Contains(t, out, fmt.Sprintf("%.2f", surface.Volatilities[0]))
		assert.Contains(t, out, fmt.Sprintf("%.2f", surface.Volatilities[last]))
	})
}

func TestExportMatrixCSV(t *testing.T) {
	surface, err := surfaces.Evaluate(models.SurfaceRequest{
		StrikePrice:     100,
		TimeToExpiry:    1.0,
		RiskFreeRate:    0.05,
		StockPriceRange: models.Range{Min: 80, Max: 120},
		VolatilityRange: models.Range{Min: 0.1, Max: 0.3},
	})
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "call_prices.csv")
	require.NoError(t, ExportMatrixCSV(outPath, surface.CallPrices, surface))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, models.SurfaceSize*models.SurfaceSize+1)
	assert.Equal(t, "volatility,stock_price,value", lines[0])
}
