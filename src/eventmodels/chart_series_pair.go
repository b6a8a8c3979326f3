package eventmodels

// ChartSeriesPair is the sole output artifact of the normalizer: two parallel
// point sequences, one per series drawn by the renderer.
type ChartSeriesPair struct {
	Prices  []PricePoint  `json:"prices"`
	Volumes []VolumePoint `json:"volumes"`
}

func (p ChartSeriesPair) IsEmpty() bool {
	return len(p.Prices) == 0 && len(p.Volumes) == 0
}
