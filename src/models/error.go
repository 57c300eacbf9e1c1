package models

import "fmt"

var InvalidParameterErr = fmt.Errorf("parameter is outside the pricing domain")
var ComputationDomainErr = fmt.Errorf("pricing computation produced a non-finite value")
var NoPriceDataErr = fmt.Errorf("no price data found")

type ErrorDTO struct {
	Msg string `json:"msg"`
}
