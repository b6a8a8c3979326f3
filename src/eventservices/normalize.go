package eventservices

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
)

// NormalizeChartData reshapes the raw parallel arrays into the two point
// sequences consumed by the renderer. Ticks arrive in epoch milliseconds and
// come out as epoch seconds via integer division. Input order is preserved:
// the data source returns ticks chronologically ascending and nothing here
// re-sorts or deduplicates.
func NormalizeChartData(resp *eventmodels.DeribitChartDataResponse) (eventmodels.ChartSeriesPair, error) {
	var pair eventmodels.ChartSeriesPair

	if resp == nil || resp.Result == nil {
		if resp != nil && resp.Error != nil {
			return pair, fmt.Errorf("NormalizeChartData: query returned error %d: %s: %w", resp.Error.Code, resp.Error.Message, eventmodels.QueryUnavailableErr)
		}

		return pair, eventmodels.NoChartDataErr
	}

	result := resp.Result

	if len(result.Ticks) == 0 {
		return pair, eventmodels.NoChartDataErr
	}

	// ticks, close and volume are zipped positionally, so a length mismatch
	// is a contract violation rather than something to silently truncate
	if len(result.Close) != len(result.Ticks) || len(result.Volume) != len(result.Ticks) {
		return pair, fmt.Errorf("NormalizeChartData: ticks=%d close=%d volume=%d: %w",
			len(result.Ticks), len(result.Close), len(result.Volume), eventmodels.MalformedChartDataErr)
	}

	pair.Prices = make([]eventmodels.PricePoint, 0, len(result.Ticks))
	pair.Volumes = make([]eventmodels.VolumePoint, 0, len(result.Ticks))

	for i, tick := range result.Ticks {
		timeSec := tick / 1000

		pair.Prices = append(pair.Prices, eventmodels.PricePoint{
			Time:  timeSec,
			Value: result.Close[i],
		})

		pair.Volumes = append(pair.Volumes, eventmodels.VolumePoint{
			Time:   timeSec,
			Volume: result.Volume[i],
		})
	}

	return pair, nil
}

// FetchChartSeriesPair runs the injected query over the given window and
// normalizes its response. The window arrives in floating epoch seconds and
// is scaled to milliseconds for the query, truncating any sub-millisecond
// remainder. Failures come back as distinct errors: QueryUnavailableErr for
// transport or upstream faults, NoChartDataErr for a quiet window, and
// MalformedChartDataErr for a garbled payload.
func FetchChartSeriesPair(instrumentName string, startSec float64, endSec float64, resolution eventmodels.Resolution, queryFn eventmodels.ChartDataQueryFunc) (eventmodels.ChartSeriesPair, error) {
	window := eventmodels.QueryWindow{StartSec: startSec, EndSec: endSec, Resolution: resolution}

	resp, err := queryFn(instrumentName, window.StartMs(), window.EndMs(), window.Resolution)
	if err != nil {
		return eventmodels.ChartSeriesPair{}, fmt.Errorf("FetchChartSeriesPair: query failed for %s: %v: %w", instrumentName, err, eventmodels.QueryUnavailableErr)
	}

	pair, err := NormalizeChartData(resp)
	if err != nil {
		return eventmodels.ChartSeriesPair{}, fmt.Errorf("FetchChartSeriesPair: %w", err)
	}

	return pair, nil
}

// FetchChartSeriesPairOrEmpty absorbs every failure into an empty pair,
// logging the detail instead of surfacing it. Callers distinguish a failed
// query from a quiet instrument only by emptiness, which suits an interactive
// surface that shows a generic no-data message for both.
func FetchChartSeriesPairOrEmpty(instrumentName string, startSec float64, endSec float64, resolution eventmodels.Resolution, queryFn eventmodels.ChartDataQueryFunc) eventmodels.ChartSeriesPair {
	pair, err := FetchChartSeriesPair(instrumentName, startSec, endSec, resolution, queryFn)
	if err != nil {
		log.Errorf("FetchChartSeriesPairOrEmpty: %v", err)
		return eventmodels.ChartSeriesPair{}
	}

	return pair
}
