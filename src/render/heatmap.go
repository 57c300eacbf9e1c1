package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/jiaming2012/option-surfaces/src/models"
)

// ColorScale maps a cell value to table cell colors. The zero value renders
// every cell uncolored, which suits plain price surfaces; P&L surfaces use a
// diverging scale. Callers pass the scale in, there is no package level
// styling default.
type ColorScale struct {
	Negative tablewriter.Colors
	Neutral  tablewriter.Colors
	Positive tablewriter.Colors

	// NeutralBand is the half width around zero rendered with the neutral
	// colors.
	NeutralBand float64
}

// DivergingScale is the red to yellow to green scale used for P&L surfaces.
func DivergingScale() ColorScale {
	return ColorScale{
		Negative:    tablewriter.Colors{tablewriter.FgRedColor},
		Neutral:     tablewriter.Colors{tablewriter.FgYellowColor},
		Positive:    tablewriter.Colors{tablewriter.FgGreenColor},
		NeutralBand: 0.005,
	}
}

func (s ColorScale) colorsFor(v float64) tablewriter.Colors {
	if v < -s.NeutralBand {
		return s.Negative
	}

	if v > s.NeutralBand {
		return s.Positive
	}

	return s.Neutral
}

// Heatmap writes a 10x10 matrix annotated to two decimals, columns labeled
// with the surface's stock prices and rows with its volatilities.
func Heatmap(w io.Writer, title string, matrix [models.SurfaceSize][models.SurfaceSize]float64, surface *models.Surface, scale ColorScale) {
	fmt.Fprintf(w, "%s\n", title)

	table := tablewriter.NewWriter(w)

	header := []string{"Vol \\ Price"}
	for _, stockPrice := range surface.StockPrices {
		header = append(header, fmt.Sprintf("%.2f", stockPrice))
	}

	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for i, volatility := range surface.Volatilities {
		row := []string{fmt.Sprintf("%.2f", volatility)}
		colors := []tablewriter.Colors{{}}

		for j := range surface.StockPrices {
			row = append(row, fmt.Sprintf("%.2f", matrix[i][j]))
			colors = append(colors, scale.colorsFor(matrix[i][j]))
		}

		table.Rich(row, colors)
	}

	table.Render()
}
