package eventmodels

// DeribitChartDataResponse mirrors the public/get_tradingview_chart_data
// envelope. Result stays nil when the upstream reply carries no result
// structure; the normalizer only consumes ticks, close and volume.
type DeribitChartDataResponse struct {
	JsonRPC string                  `json:"jsonrpc,omitempty"`
	Result  *DeribitChartDataResult `json:"result,omitempty"`
	Error   *DeribitError           `json:"error,omitempty"`
	UsIn    int64                   `json:"usIn,omitempty"`
	UsOut   int64                   `json:"usOut,omitempty"`
	UsDiff  int64                   `json:"usDiff,omitempty"`
	Testnet bool                    `json:"testnet,omitempty"`
}

type DeribitChartDataResult struct {
	Status string    `json:"status"`
	Ticks  []int64   `json:"ticks"`
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []float64 `json:"volume"`
	Cost   []float64 `json:"cost"`
}

type DeribitError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
