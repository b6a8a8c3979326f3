package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
	"github.com/jiaming2012/deribit-viewer/src/eventservices"
	"github.com/jiaming2012/deribit-viewer/src/utils"
)

var queryFn eventmodels.ChartDataQueryFunc

type GetChartDataResponse struct {
	InstrumentName string                            `json:"instrument_name"`
	Prices         []eventmodels.PricePoint          `json:"prices"`
	Volumes        []eventmodels.VolumePoint         `json:"volumes"`
	Summary        *eventservices.ChartSeriesSummary `json:"summary,omitempty"`
}

// chartDataWindow resolves the query window from either a pair of floating
// epoch second timestamps or a pair of calendar dates expanded to full days.
func chartDataWindow(query map[string][]string, resolution eventmodels.Resolution) (eventmodels.QueryWindow, error) {
	get := func(key string) string {
		if values, found := query[key]; found && len(values) > 0 {
			return values[0]
		}

		return ""
	}

	if startTimestamp := get("start_timestamp"); startTimestamp != "" {
		startSec, err := strconv.ParseFloat(startTimestamp, 64)
		if err != nil {
			return eventmodels.QueryWindow{}, fmt.Errorf("chartDataWindow: failed to parse start_timestamp: %w", err)
		}

		endSec, err := strconv.ParseFloat(get("end_timestamp"), 64)
		if err != nil {
			return eventmodels.QueryWindow{}, fmt.Errorf("chartDataWindow: failed to parse end_timestamp: %w", err)
		}

		return eventmodels.QueryWindow{StartSec: startSec, EndSec: endSec, Resolution: resolution}, nil
	}

	startDate, err := utils.ParseDateOnly(get("start_date"))
	if err != nil {
		return eventmodels.QueryWindow{}, fmt.Errorf("chartDataWindow: failed to parse start_date: %w", err)
	}

	endDate, err := utils.ParseDateOnly(get("end_date"))
	if err != nil {
		return eventmodels.QueryWindow{}, fmt.Errorf("chartDataWindow: failed to parse end_date: %w", err)
	}

	startSec, endSec := utils.DayBounds(startDate, endDate)

	return eventmodels.QueryWindow{StartSec: startSec, EndSec: endSec, Resolution: resolution}, nil
}

func handleChartData(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(404)
		return
	}

	requestID := uuid.New()
	logger := log.WithField("requestID", requestID)

	query := r.URL.Query()

	instrumentName := query.Get("instrument_name")
	if instrumentName == "" {
		setErrorResponse("handleChartData: invalid query", 400, fmt.Errorf("instrument_name was not found"), w)
		return
	}

	resolution := eventmodels.Resolution(query.Get("resolution"))
	if err := resolution.Validate(); err != nil {
		setErrorResponse("handleChartData: invalid query", 400, err, w)
		return
	}

	window, err := chartDataWindow(query, resolution)
	if err != nil {
		setErrorResponse("handleChartData: invalid query", 400, err, w)
		return
	}

	logger.Infof("fetching chart data for %s between %.3f and %.3f at resolution %s", instrumentName, window.StartSec, window.EndSec, resolution)

	pair := eventservices.FetchChartSeriesPairOrEmpty(instrumentName, window.StartSec, window.EndSec, resolution, queryFn)

	response := GetChartDataResponse{
		InstrumentName: instrumentName,
		Prices:         pair.Prices,
		Volumes:        pair.Volumes,
	}

	if !pair.IsEmpty() {
		summary, summaryErr := eventservices.NewChartSeriesSummary(pair)
		if summaryErr != nil {
			logger.Warnf("handleChartData: failed to summarize chart data: %v", summaryErr)
		} else {
			response.Summary = summary
		}
	}

	if err := setResponse(response, w); err != nil {
		logger.Errorf("handleChartData: failed to set response: %v", err)
	}
}

func SetupApiHandler(router *mux.Router, fn eventmodels.ChartDataQueryFunc) {
	queryFn = fn

	router.HandleFunc("/contract-name", handleContractName)
	router.HandleFunc("/chart-data", handleChartData)
}
