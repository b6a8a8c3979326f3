package eventservices

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
)

type ChartSeriesSummary struct {
	Points      int     `json:"points"`
	MinClose    float64 `json:"min_close"`
	MaxClose    float64 `json:"max_close"`
	MeanClose   float64 `json:"mean_close"`
	MedianClose float64 `json:"median_close"`
	TotalVolume float64 `json:"total_volume"`
}

func (s *ChartSeriesSummary) String() string {
	p := message.NewPrinter(language.English)

	return p.Sprintf("%d points, close min %.4f / max %.4f / mean %.4f / median %.4f, total volume %.2f",
		s.Points, s.MinClose, s.MaxClose, s.MeanClose, s.MedianClose, s.TotalVolume)
}

func NewChartSeriesSummary(pair eventmodels.ChartSeriesPair) (*ChartSeriesSummary, error) {
	if len(pair.Prices) == 0 {
		return nil, eventmodels.NoChartDataErr
	}

	closes := make([]float64, 0, len(pair.Prices))
	for _, point := range pair.Prices {
		closes = append(closes, point.Value)
	}

	minClose, err := stats.Min(closes)
	if err != nil {
		return nil, fmt.Errorf("NewChartSeriesSummary: failed to calculate min: %v", err)
	}

	maxClose, err := stats.Max(closes)
	if err != nil {
		return nil, fmt.Errorf("NewChartSeriesSummary: failed to calculate max: %v", err)
	}

	meanClose, err := stats.Mean(closes)
	if err != nil {
		return nil, fmt.Errorf("NewChartSeriesSummary: failed to calculate mean: %v", err)
	}

	medianClose, err := stats.Median(closes)
	if err != nil {
		return nil, fmt.Errorf("NewChartSeriesSummary: failed to calculate median: %v", err)
	}

	totalVolume := 0.0
	for _, point := range pair.Volumes {
		totalVolume += point.Volume
	}

	return &ChartSeriesSummary{
		Points:      len(pair.Prices),
		MinClose:    minClose,
		MaxClose:    maxClose,
		MeanClose:   meanClose,
		MedianClose: medianClose,
		TotalVolume: totalVolume,
	}, nil
}
