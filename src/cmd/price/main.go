package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-surfaces/src/models"
	"github.com/jiaming2012/option-surfaces/src/pricing"
	"github.com/jiaming2012/option-surfaces/src/render"
)

type RunArgs struct {
	StockPrice   float64
	StrikePrice  float64
	TimeToExpiry float64
	RiskFreeRate float64
	Volatility   float64
	OptionType   string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/price/main.go --stock 100 --strike 105 --expiry 0.5 --rate 0.05 --vol 0.2 --type call",
	Short: "Price a European option and print its Greeks",
	Run: func(cmd *cobra.Command, args []string) {
		stockPrice, err := cmd.Flags().GetFloat64("stock")
		if err != nil {
			log.Fatalf("error getting stock: %v", err)
		}

		strikePrice, err := cmd.Flags().GetFloat64("strike")
		if err != nil {
			log.Fatalf("error getting strike: %v", err)
		}

		timeToExpiry, err := cmd.Flags().GetFloat64("expiry")
		if err != nil {
			log.Fatalf("error getting expiry: %v", err)
		}

		riskFreeRate, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			log.Fatalf("error getting rate: %v", err)
		}

		volatility, err := cmd.Flags().GetFloat64("vol")
		if err != nil {
			log.Fatalf("error getting vol: %v", err)
		}

		optionType, err := cmd.Flags().GetString("type")
		if err != nil {
			log.Fatalf("error getting type: %v", err)
		}

		if err := Run(RunArgs{
			StockPrice:   stockPrice,
			StrikePrice:  strikePrice,
			TimeToExpiry: timeToExpiry,
			RiskFreeRate: riskFreeRate,
			Volatility:   volatility,
			OptionType:   optionType,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	contract := models.NewOptionContract(args.StockPrice, args.StrikePrice, args.TimeToExpiry, args.RiskFreeRate, args.Volatility, models.OptionType(args.OptionType))

	result, err := pricing.Price(contract)
	if err != nil {
		return err
	}

	render.ParameterTable(os.Stdout, contract)
	render.GreeksTable(os.Stdout, result)

	return nil
}

func main() {
	runCmd.Flags().Float64("stock", 100.0, "Current price of the underlying stock")
	runCmd.Flags().Float64("strike", 100.0, "Strike price")
	runCmd.Flags().Float64("expiry", 1.0, "Time to expiry in years")
	runCmd.Flags().Float64("rate", 0.05, "Annual risk-free rate as a decimal")
	runCmd.Flags().Float64("vol", 0.2, "Annual volatility as a decimal")
	runCmd.Flags().String("type", "call", "Option type: call or put")

	runCmd.Execute()
}
