package render

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/option-surfaces/src/models"
)

// ParameterTable writes the six pricing inputs as a two column table.
func ParameterTable(w io.Writer, contract models.OptionContract) {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Parameter", "Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	table.Append([]string{"Stock Price", p.Sprintf("$%.2f", contract.StockPrice)})
	table.Append([]string{"Strike Price", p.Sprintf("$%.2f", contract.StrikePrice)})
	table.Append([]string{"Time to Expiry (years)", p.Sprintf("%.2f", contract.TimeToExpiry)})
	table.Append([]string{"Risk-Free Rate", p.Sprintf("%.2f%%", contract.RiskFreeRate*100)})
	table.Append([]string{"Volatility", p.Sprintf("%.2f%%", contract.Volatility*100)})
	table.Append([]string{"Option Type", string(contract.Type)})

	table.Render()
}

// GreeksTable writes the premium and the five Greeks, one row each.
func GreeksTable(w io.Writer, result models.PricingResult) {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Greek", "Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	table.Append([]string{"Price", p.Sprintf("$%.4f", result.Price)})
	table.Append([]string{"Delta", p.Sprintf("%.4f", result.Delta)})
	table.Append([]string{"Gamma", p.Sprintf("%.4f", result.Gamma)})
	table.Append([]string{"Vega", p.Sprintf("%.4f", result.Vega)})
	table.Append([]string{"Theta", p.Sprintf("%.4f", result.Theta)})
	table.Append([]string{"Rho", p.Sprintf("%.4f", result.Rho)})

	table.Render()
}
