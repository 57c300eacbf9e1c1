package render

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-surfaces/src/models"
)

// SurfaceCellDTO is one matrix cell in long form, convenient for plotting
// tools that expect tidy data.
type SurfaceCellDTO struct {
	Volatility float64 `csv:"volatility"`
	StockPrice float64 `csv:"stock_price"`
	Value      float64 `csv:"value"`
}

// ExportMatrixCSV flattens one surface matrix into rows of
// (volatility, stock price, value) and writes them to outPath.
func ExportMatrixCSV(outPath string, matrix [models.SurfaceSize][models.SurfaceSize]float64, surface *models.Surface) error {
	var cells []*SurfaceCellDTO
	for i, volatility := range surface.Volatilities {
		for j, stockPrice := range surface.StockPrices {
			cells = append(cells, &SurfaceCellDTO{
				Volatility: volatility,
				StockPrice: stockPrice,
				Value:      matrix[i][j],
			})
		}
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("ExportMatrixCSV: failed to create %s: %w", outPath, err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&cells, file); err != nil {
		return fmt.Errorf("ExportMatrixCSV: failed to write csv: %w", err)
	}

	log.Infof("exported %d cells to %s", len(cells), outPath)

	return nil
}
