package main

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-surfaces/src/models"
	"github.com/jiaming2012/option-surfaces/src/render"
	"github.com/jiaming2012/option-surfaces/src/surfaces"
)

type RunArgs struct {
	StrikePrice   float64
	TimeToExpiry  float64
	RiskFreeRate  float64
	StockMin      float64
	StockMax      float64
	VolMin        float64
	VolMax        float64
	BaseCallPrice float64
	BasePutPrice  float64
	ExportDir     string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/surface/main.go --strike 70 --expiry 1.10 --rate 0.10 --stock-min 79.94 --stock-max 119.92 --vol-min 0.17 --vol-max 0.38",
	Short: "Evaluate call/put price surfaces over a stock price and volatility grid",
	Run: func(cmd *cobra.Command, args []string) {
		var runArgs RunArgs
		var err error

		floatFlags := []struct {
			name string
			dest *float64
		}{
			{"strike", &runArgs.StrikePrice},
			{"expiry", &runArgs.TimeToExpiry},
			{"rate", &runArgs.RiskFreeRate},
			{"stock-min", &runArgs.StockMin},
			{"stock-max", &runArgs.StockMax},
			{"vol-min", &runArgs.VolMin},
			{"vol-max", &runArgs.VolMax},
			{"base-call", &runArgs.BaseCallPrice},
			{"base-put", &runArgs.BasePutPrice},
		}

		for _, flag := range floatFlags {
			if *flag.dest, err = cmd.Flags().GetFloat64(flag.name); err != nil {
				log.Fatalf("error getting %s: %v", flag.name, err)
			}
		}

		if runArgs.ExportDir, err = cmd.Flags().GetString("export-dir"); err != nil {
			log.Fatalf("error getting export-dir: %v", err)
		}

		if err := Run(runArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	req := models.SurfaceRequest{
		StrikePrice:     args.StrikePrice,
		TimeToExpiry:    args.TimeToExpiry,
		RiskFreeRate:    args.RiskFreeRate,
		StockPriceRange: models.Range{Min: args.StockMin, Max: args.StockMax},
		VolatilityRange: models.Range{Min: args.VolMin, Max: args.VolMax},
		BaseCallPrice:   args.BaseCallPrice,
		BasePutPrice:    args.BasePutPrice,
	}

	surface, err := surfaces.Evaluate(req)
	if err != nil {
		return err
	}

	render.Heatmap(os.Stdout, "CALL", surface.CallPrices, surface, render.ColorScale{})
	render.Heatmap(os.Stdout, "PUT", surface.PutPrices, surface, render.ColorScale{})

	pnlScale := render.DivergingScale()

	if surface.CallPnL != nil {
		render.Heatmap(os.Stdout, "CALL P&L", *surface.CallPnL, surface, pnlScale)
	}

	if surface.PutPnL != nil {
		render.Heatmap(os.Stdout, "PUT P&L", *surface.PutPnL, surface, pnlScale)
	}

	if args.ExportDir != "" {
		if err := exportMatrices(args.ExportDir, surface); err != nil {
			return err
		}
	}

	return nil
}

func exportMatrices(exportDir string, surface *models.Surface) error {
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return err
	}

	if err := render.ExportMatrixCSV(filepath.Join(exportDir, "call_prices.csv"), surface.CallPrices, surface); err != nil {
		return err
	}

	if err := render.ExportMatrixCSV(filepath.Join(exportDir, "put_prices.csv"), surface.PutPrices, surface); err != nil {
		return err
	}

	if surface.CallPnL != nil {
		if err := render.ExportMatrixCSV(filepath.Join(exportDir, "call_pnl.csv"), *surface.CallPnL, surface); err != nil {
			return err
		}
	}

	if surface.PutPnL != nil {
		if err := render.ExportMatrixCSV(filepath.Join(exportDir, "put_pnl.csv"), *surface.PutPnL, surface); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	runCmd.Flags().Float64("strike", 100.0, "Strike price shared by every grid cell")
	runCmd.Flags().Float64("expiry", 1.0, "Time to expiry in years")
	runCmd.Flags().Float64("rate", 0.05, "Annual risk-free rate as a decimal")
	runCmd.Flags().Float64("stock-min", 80.0, "Lower bound of the stock price axis")
	runCmd.Flags().Float64("stock-max", 120.0, "Upper bound of the stock price axis")
	runCmd.Flags().Float64("vol-min", 0.1, "Lower bound of the volatility axis")
	runCmd.Flags().Float64("vol-max", 0.3, "Upper bound of the volatility axis")
	runCmd.Flags().Float64("base-call", 0, "Base call price for P&L surfaces (0 disables)")
	runCmd.Flags().Float64("base-put", 0, "Base put price for P&L surfaces (0 disables)")
	runCmd.Flags().String("export-dir", "", "Directory to export surface CSVs to")

	runCmd.Execute()
}
