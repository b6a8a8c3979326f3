package eventmodels

// PricePoint and VolumePoint are the flat per-tick records handed to the
// chart renderer. Time is epoch seconds.
type PricePoint struct {
	Time  int64   `json:"time"`
	Value float64 `json:"value"`
}

type VolumePoint struct {
	Time   int64   `json:"time"`
	Volume float64 `json:"volume"`
}
