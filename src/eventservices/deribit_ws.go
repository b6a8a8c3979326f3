package eventservices

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
)

type deribitWSRequest struct {
	JsonRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type deribitChartDataParams struct {
	InstrumentName string `json:"instrument_name"`
	StartTimestamp int64  `json:"start_timestamp"`
	EndTimestamp   int64  `json:"end_timestamp"`
	Resolution     string `json:"resolution"`
}

// FetchDeribitChartDataWS performs the same query as FetchDeribitChartData
// over the exchange's JSON-RPC websocket: one dial, one request, one reply.
func FetchDeribitChartDataWS(wsURL string, timeout time.Duration, instrumentName string, startMs int64, endMs int64, resolution eventmodels.Resolution) (*eventmodels.DeribitChartDataResponse, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: timeout,
	}

	conn, _, err := dialer.Dial(wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("FetchDeribitChartDataWS: failed to dial %s: %w", wsURL, err)
	}

	defer conn.Close()

	requestID := uuid.New().String()

	log.Infof("FetchDeribitChartDataWS: requesting chart data for %s, requestID: %s", instrumentName, requestID)

	request := deribitWSRequest{
		JsonRPC: "2.0",
		ID:      requestID,
		Method:  "public/get_tradingview_chart_data",
		Params: deribitChartDataParams{
			InstrumentName: instrumentName,
			StartTimestamp: startMs,
			EndTimestamp:   endMs,
			Resolution:     string(resolution),
		},
	}

	if err := conn.WriteJSON(request); err != nil {
		return nil, fmt.Errorf("FetchDeribitChartDataWS: failed to write request: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, fmt.Errorf("FetchDeribitChartDataWS: failed to set read deadline: %w", err)
	}

	var dto eventmodels.DeribitChartDataResponse
	if err := conn.ReadJSON(&dto); err != nil {
		return nil, fmt.Errorf("FetchDeribitChartDataWS: failed to read response: %w", err)
	}

	return &dto, nil
}

// NewWSChartDataQueryFunc binds the websocket transport into the injected
// query shape consumed by the normalizer.
func NewWSChartDataQueryFunc(wsURL string, timeout time.Duration) eventmodels.ChartDataQueryFunc {
	return func(instrumentName string, startMs int64, endMs int64, resolution eventmodels.Resolution) (*eventmodels.DeribitChartDataResponse, error) {
		return FetchDeribitChartDataWS(wsURL, timeout, instrumentName, startMs, endMs, resolution)
	}
}
