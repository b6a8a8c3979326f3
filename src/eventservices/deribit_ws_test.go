package eventservices

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func TestFetchDeribitChartDataWS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Fatalf("upgrade: %v", err)
		}
		defer conn.Close()

		var request deribitWSRequest
		if err := conn.ReadJSON(&request); err != nil {
			t.Errorf("read request: %v", err)
			return
		}

		if request.JsonRPC != "2.0" {
			t.Errorf("expected jsonrpc 2.0, got %s", request.JsonRPC)
		}

		if request.ID == "" {
			t.Error("expected a request id")
		}

		if request.Method != "public/get_tradingview_chart_data" {
			t.Errorf("expected chart data method, got %s", request.Method)
		}

		params, ok := request.Params.(map[string]interface{})
		if !ok {
			t.Fatalf("expected params object, got %T", request.Params)
		}

		if params["instrument_name"] != "BTC-27DEC24-50000-C" {
			t.Errorf("expected instrument_name BTC-27DEC24-50000-C, got %v", params["instrument_name"])
		}

		if startMs, isFloat := params["start_timestamp"].(float64); !isFloat || int64(startMs) != 1700000000000 {
			t.Errorf("expected start_timestamp 1700000000000, got %v", params["start_timestamp"])
		}

		if params["resolution"] != "D" {
			t.Errorf("expected resolution D, got %v", params["resolution"])
		}

		response := map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      request.ID,
			"result": map[string]interface{}{
				"status": "ok",
				"ticks":  []int64{1700000000000},
				"close":  []float64{0.055},
				"volume": []float64{12.5},
			},
		}

		if err := conn.WriteJSON(response); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	resp, err := FetchDeribitChartDataWS(wsURL, 5*time.Second, "BTC-27DEC24-50000-C", 1700000000000, 1700086399999, eventmodels.ResolutionDaily)
	if err != nil {
		t.Fatalf("FetchDeribitChartDataWS: %v", err)
	}

	if resp.Result == nil {
		t.Fatal("expected result, got nil")
	}

	if len(resp.Result.Ticks) != 1 || resp.Result.Ticks[0] != 1700000000000 {
		t.Errorf("unexpected ticks: %v", resp.Result.Ticks)
	}

	if resp.Result.Close[0] != 0.055 {
		t.Errorf("expected close 0.055, got %v", resp.Result.Close[0])
	}
}

func TestFetchDeribitChartDataWSDialError(t *testing.T) {
	if _, err := FetchDeribitChartDataWS("ws://127.0.0.1:1/ws", time.Second, "BTC-27DEC24-50000-C", 0, 1, eventmodels.ResolutionDaily); err == nil {
		t.Fatal("expected dial error")
	}
}
