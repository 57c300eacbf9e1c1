package models

// PricingResult holds the Black-Scholes premium and the five standard Greeks.
// It is derived from an OptionContract and recomputed on every request.
type PricingResult struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}
