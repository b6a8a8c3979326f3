package eventmodels

// DeribitGetTimeResponse is the public/get_time envelope. Result is the
// exchange clock in epoch milliseconds.
type DeribitGetTimeResponse struct {
	JsonRPC string `json:"jsonrpc,omitempty"`
	Result  int64  `json:"result"`
}
