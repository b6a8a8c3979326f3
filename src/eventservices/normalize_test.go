package eventservices

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
)

func newChartDataResponse(ticks []int64, closes []float64, volumes []float64) *eventmodels.DeribitChartDataResponse {
	return &eventmodels.DeribitChartDataResponse{
		JsonRPC: "2.0",
		Result: &eventmodels.DeribitChartDataResult{
			Status: "ok",
			Ticks:  ticks,
			Close:  closes,
			Volume: volumes,
		},
	}
}

func TestNormalizeChartData(t *testing.T) {
	t.Run("ticks scale from millis to seconds", func(t *testing.T) {
		resp := newChartDataResponse(
			[]int64{1700000000000, 1700086400000, 1700172800999},
			[]float64{0.055, 0.061, 0.0585},
			[]float64{12.5, 0, 3.25},
		)

		pair, err := NormalizeChartData(resp)
		assert.Nil(t, err)

		assert.Equal(t, []eventmodels.PricePoint{
			{Time: 1700000000, Value: 0.055},
			{Time: 1700086400, Value: 0.061},
			{Time: 1700172800, Value: 0.0585},
		}, pair.Prices)

		assert.Equal(t, []eventmodels.VolumePoint{
			{Time: 1700000000, Volume: 12.5},
			{Time: 1700086400, Volume: 0},
			{Time: 1700172800, Volume: 3.25},
		}, pair.Volumes)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		resp := newChartDataResponse(
			[]int64{3000, 1000, 2000},
			[]float64{3, 1, 2},
			[]float64{30, 10, 20},
		)

		pair, err := NormalizeChartData(resp)
		assert.Nil(t, err)

		assert.Equal(t, []int64{3, 1, 2}, []int64{pair.Prices[0].Time, pair.Prices[1].Time, pair.Prices[2].Time})
		assert.Equal(t, []float64{3, 1, 2}, []float64{pair.Prices[0].Value, pair.Prices[1].Value, pair.Prices[2].Value})
	})

	t.Run("nil response is no data", func(t *testing.T) {
		_, err := NormalizeChartData(nil)
		assert.True(t, errors.Is(err, eventmodels.NoChartDataErr))
	})

	t.Run("missing result is no data", func(t *testing.T) {
		_, err := NormalizeChartData(&eventmodels.DeribitChartDataResponse{JsonRPC: "2.0"})
		assert.True(t, errors.Is(err, eventmodels.NoChartDataErr))
	})

	t.Run("empty ticks is no data", func(t *testing.T) {
		_, err := NormalizeChartData(newChartDataResponse([]int64{}, []float64{}, []float64{}))
		assert.True(t, errors.Is(err, eventmodels.NoChartDataErr))
	})

	t.Run("error envelope means the query failed", func(t *testing.T) {
		resp := &eventmodels.DeribitChartDataResponse{
			JsonRPC: "2.0",
			Error:   &eventmodels.DeribitError{Code: 10009, Message: "instrument not found"},
		}

		_, err := NormalizeChartData(resp)
		assert.True(t, errors.Is(err, eventmodels.QueryUnavailableErr))
		assert.Contains(t, err.Error(), "instrument not found")
	})

	t.Run("mismatched array lengths are malformed", func(t *testing.T) {
		shortClose := newChartDataResponse([]int64{1000, 2000}, []float64{1}, []float64{10, 20})
		_, err := NormalizeChartData(shortClose)
		assert.True(t, errors.Is(err, eventmodels.MalformedChartDataErr))

		shortVolume := newChartDataResponse([]int64{1000, 2000}, []float64{1, 2}, []float64{10})
		_, err = NormalizeChartData(shortVolume)
		assert.True(t, errors.Is(err, eventmodels.MalformedChartDataErr))
	})
}

func TestFetchChartSeriesPair(t *testing.T) {
	t.Run("window seconds scale to query millis", func(t *testing.T) {
		var gotInstrument string
		var gotStartMs, gotEndMs int64
		var gotResolution eventmodels.Resolution

		queryFn := func(instrumentName string, startMs int64, endMs int64, resolution eventmodels.Resolution) (*eventmodels.DeribitChartDataResponse, error) {
			gotInstrument = instrumentName
			gotStartMs = startMs
			gotEndMs = endMs
			gotResolution = resolution

			return newChartDataResponse([]int64{1700000000000}, []float64{0.05}, []float64{1}), nil
		}

		pair, err := FetchChartSeriesPair("BTC-27DEC24-50000-C", 1700000000.0015, 1700086399.999999, eventmodels.ResolutionDaily, queryFn)
		assert.Nil(t, err)

		assert.Equal(t, "BTC-27DEC24-50000-C", gotInstrument)
		assert.Equal(t, int64(1700000000001), gotStartMs)
		assert.Equal(t, int64(1700086399999), gotEndMs)
		assert.Equal(t, eventmodels.ResolutionDaily, gotResolution)

		assert.Equal(t, 1, len(pair.Prices))
		assert.Equal(t, int64(1700000000), pair.Prices[0].Time)
	})

	t.Run("query error comes back as unavailable", func(t *testing.T) {
		queryFn := func(instrumentName string, startMs int64, endMs int64, resolution eventmodels.Resolution) (*eventmodels.DeribitChartDataResponse, error) {
			return nil, fmt.Errorf("connection refused")
		}

		_, err := FetchChartSeriesPair("BTC-27DEC24-50000-C", 0, 1, eventmodels.ResolutionDaily, queryFn)
		assert.True(t, errors.Is(err, eventmodels.QueryUnavailableErr))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("normalizer errors pass through wrapped", func(t *testing.T) {
		queryFn := func(instrumentName string, startMs int64, endMs int64, resolution eventmodels.Resolution) (*eventmodels.DeribitChartDataResponse, error) {
			return newChartDataResponse([]int64{1000}, []float64{}, []float64{}), nil
		}

		_, err := FetchChartSeriesPair("BTC-27DEC24-50000-C", 0, 1, eventmodels.ResolutionDaily, queryFn)
		assert.True(t, errors.Is(err, eventmodels.MalformedChartDataErr))
	})
}

func TestFetchChartSeriesPairOrEmpty(t *testing.T) {
	t.Run("failures collapse to an empty pair", func(t *testing.T) {
		queryFn := func(instrumentName string, startMs int64, endMs int64, resolution eventmodels.Resolution) (*eventmodels.DeribitChartDataResponse, error) {
			return nil, fmt.Errorf("boom")
		}

		pair := FetchChartSeriesPairOrEmpty("BTC-27DEC24-50000-C", 0, 1, eventmodels.ResolutionDaily, queryFn)
		assert.True(t, pair.IsEmpty())
	})

	t.Run("a quiet window also collapses to an empty pair", func(t *testing.T) {
		queryFn := func(instrumentName string, startMs int64, endMs int64, resolution eventmodels.Resolution) (*eventmodels.DeribitChartDataResponse, error) {
			return &eventmodels.DeribitChartDataResponse{JsonRPC: "2.0", Result: &eventmodels.DeribitChartDataResult{Status: "no_data"}}, nil
		}

		pair := FetchChartSeriesPairOrEmpty("BTC-27DEC24-50000-C", 0, 1, eventmodels.ResolutionDaily, queryFn)
		assert.True(t, pair.IsEmpty())
	})

	t.Run("data passes through untouched", func(t *testing.T) {
		queryFn := func(instrumentName string, startMs int64, endMs int64, resolution eventmodels.Resolution) (*eventmodels.DeribitChartDataResponse, error) {
			return newChartDataResponse([]int64{1000, 2000}, []float64{0.1, 0.2}, []float64{5, 6}), nil
		}

		pair := FetchChartSeriesPairOrEmpty("BTC-27DEC24-50000-C", 0, 3, eventmodels.ResolutionHourly, queryFn)
		assert.Equal(t, 2, len(pair.Prices))
		assert.Equal(t, 2, len(pair.Volumes))
	})
}
