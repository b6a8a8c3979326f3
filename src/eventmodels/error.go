package eventmodels

import "fmt"

var QueryUnavailableErr = fmt.Errorf("market data query unavailable")
var NoChartDataErr = fmt.Errorf("no chart data for the requested window")
var MalformedChartDataErr = fmt.Errorf("mismatched array lengths in chart data response")

type ErrorDTO struct {
	Msg string `json:"msg"`
}
