package main

import (
	"context"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-surfaces/src/marketdata"
	"github.com/jiaming2012/option-surfaces/src/utils"
)

type RunArgs struct {
	Symbol   string
	Days     int
	CacheDir string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/fetch_history/main.go --symbol AAPL --days 365",
	Short: "Fetch and cache a ticker's daily closing prices",
	Run: func(cmd *cobra.Command, args []string) {
		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		days, err := cmd.Flags().GetInt("days")
		if err != nil {
			log.Fatalf("error getting days: %v", err)
		}

		cacheDir, err := cmd.Flags().GetString("cache-dir")
		if err != nil {
			log.Fatalf("error getting cache-dir: %v", err)
		}

		if err := Run(RunArgs{
			Symbol:   symbol,
			Days:     days,
			CacheDir: cacheDir,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Warnf("error loading environment variables: %v", err)
	}

	apiKey := os.Getenv("POLYGON_API_KEY")
	if apiKey == "" {
		log.Fatalf("missing POLYGON_API_KEY environment variable")
	}

	service := marketdata.NewHistoryService(apiKey, args.CacheDir)

	to := time.Now()
	from := to.AddDate(0, 0, -args.Days)

	closes, err := service.FetchDailyCloses(context.Background(), args.Symbol, from, to)
	if err != nil {
		return err
	}

	if err := service.SaveCloses(args.Symbol, closes); err != nil {
		return err
	}

	vol, err := marketdata.HistoricalVolatility(closes)
	if err != nil {
		return err
	}

	last := closes[len(closes)-1]
	log.Infof("%s: %d closes, last close %.2f on %s, annualized volatility %.4f", args.Symbol, len(closes), last.Close, last.Date, vol)

	return nil
}

func main() {
	runCmd.Flags().String("symbol", "", "Ticker symbol to fetch")
	runCmd.Flags().Int("days", 365, "Number of calendar days of history")
	runCmd.Flags().String("cache-dir", "data", "Directory for cached close CSVs")

	runCmd.MarkFlagRequired("symbol")

	runCmd.Execute()
}
