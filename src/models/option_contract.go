package models

import "fmt"

// OptionContract fully determines a pricing computation. TimeToExpiry is
// expressed in years, RiskFreeRate and Volatility as annualized decimals.
type OptionContract struct {
	StockPrice   float64    `json:"stock_price"`
	StrikePrice  float64    `json:"strike_price"`
	TimeToExpiry float64    `json:"time_to_expiry"`
	RiskFreeRate float64    `json:"risk_free_rate"`
	Volatility   float64    `json:"volatility"`
	Type         OptionType `json:"type"`
}

func NewOptionContract(stockPrice, strikePrice, timeToExpiry, riskFreeRate, volatility float64, optionType OptionType) OptionContract {
	return OptionContract{
		StockPrice:   stockPrice,
		StrikePrice:  strikePrice,
		TimeToExpiry: timeToExpiry,
		RiskFreeRate: riskFreeRate,
		Volatility:   volatility,
		Type:         optionType,
	}
}

func (c OptionContract) Validate() error {
	if err := c.Type.Validate(); err != nil {
		return fmt.Errorf("OptionContract: Validate: %w", err)
	}

	if c.StockPrice <= 0 {
		return fmt.Errorf("OptionContract: Validate: stock price %v: %w", c.StockPrice, InvalidParameterErr)
	}

	if c.StrikePrice <= 0 {
		return fmt.Errorf("OptionContract: Validate: strike price %v: %w", c.StrikePrice, InvalidParameterErr)
	}

	if c.TimeToExpiry <= 0 {
		return fmt.Errorf("OptionContract: Validate: time to expiry %v: %w", c.TimeToExpiry, InvalidParameterErr)
	}

	if c.Volatility <= 0 {
		return fmt.Errorf("OptionContract: Validate: volatility %v: %w", c.Volatility, InvalidParameterErr)
	}

	return nil
}
