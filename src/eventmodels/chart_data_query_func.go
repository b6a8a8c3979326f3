package eventmodels

// ChartDataQueryFunc performs the external market-data query. The window is
// expressed in epoch milliseconds, matching the upstream API contract. It is
// injected into the normalizer so transports can be swapped without touching
// the reshape logic.
type ChartDataQueryFunc func(instrumentName string, startMs int64, endMs int64, resolution Resolution) (*DeribitChartDataResponse, error)
