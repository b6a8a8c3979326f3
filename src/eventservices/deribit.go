package eventservices

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
	"github.com/jiaming2012/deribit-viewer/src/utils"
)

const deribitChartDataPath = "/api/v2/public/get_tradingview_chart_data"
const deribitGetTimePath = "/api/v2/public/get_time"

func FetchDeribitChartData(baseURL string, timeout time.Duration, instrumentName string, startMs int64, endMs int64, resolution eventmodels.Resolution) (*eventmodels.DeribitChartDataResponse, error) {
	client := http.Client{
		Timeout: timeout,
	}

	url := fmt.Sprintf("%s%s", baseURL, deribitChartDataPath)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("FetchDeribitChartData: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("instrument_name", instrumentName)
	q.Add("start_timestamp", fmt.Sprintf("%d", startMs))
	q.Add("end_timestamp", fmt.Sprintf("%d", endMs))
	q.Add("resolution", string(resolution))

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	log.Infof("FetchDeribitChartData: fetching chart data from %v", req.URL.String())

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchDeribitChartData: failed to fetch chart data: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchDeribitChartData: failed to fetch chart data, http code %v", res.Status)
	}

	var dto eventmodels.DeribitChartDataResponse
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchDeribitChartData: failed to decode json: %w", err)
	}

	return &dto, nil
}

// NewChartDataQueryFunc binds the HTTP transport into the injected query shape
// consumed by the normalizer.
func NewChartDataQueryFunc(baseURL string, timeout time.Duration) eventmodels.ChartDataQueryFunc {
	return func(instrumentName string, startMs int64, endMs int64, resolution eventmodels.Resolution) (*eventmodels.DeribitChartDataResponse, error) {
		return FetchDeribitChartData(baseURL, timeout, instrumentName, startMs, endMs, resolution)
	}
}

// FetchDeribitServerTime reads the exchange clock. Used as a startup
// connectivity probe before any chart data is requested.
func FetchDeribitServerTime(baseURL string) (time.Time, error) {
	body, err := utils.Get(fmt.Sprintf("%s%s", baseURL, deribitGetTimePath))
	if err != nil {
		return time.Time{}, fmt.Errorf("FetchDeribitServerTime: %w", err)
	}

	var dto eventmodels.DeribitGetTimeResponse
	if err := json.Unmarshal(body, &dto); err != nil {
		return time.Time{}, fmt.Errorf("FetchDeribitServerTime: failed to unmarshal response: %w", err)
	}

	if dto.Result == 0 {
		return time.Time{}, fmt.Errorf("FetchDeribitServerTime: empty result")
	}

	return time.UnixMilli(dto.Result), nil
}
