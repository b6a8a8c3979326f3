package eventmodels

// QueryWindow is the requested time range in epoch seconds plus the bar
// resolution. The start/end values arrive as floating seconds from the input
// surface; startSec <= endSec is the caller's responsibility.
type QueryWindow struct {
	StartSec   float64
	EndSec     float64
	Resolution Resolution
}

// StartMs scales the window start to epoch milliseconds, truncating any
// sub-millisecond remainder.
func (w QueryWindow) StartMs() int64 {
	return int64(w.StartSec * 1000)
}

func (w QueryWindow) EndMs() int64 {
	return int64(w.EndSec * 1000)
}
