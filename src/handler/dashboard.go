package handler

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
)

//go:embed dashboard.html
var dashboardHTML string

var dashboardTemplate = template.Must(template.New("dashboard").Parse(dashboardHTML))

const dashboardTitle = "Deribit Option Price Viewer"

type optionTypeChoice struct {
	Value eventmodels.OptionType
	Label string
}

type resolutionChoice struct {
	Code  eventmodels.Resolution
	Label string
}

type dashboardViewData struct {
	Title           string
	State           eventmodels.ViewState
	Coins           []eventmodels.Coin
	OptionTypes     []optionTypeChoice
	Resolutions     []resolutionChoice
	Today           string
	ChartConfigJSON template.JS
}

func resolutionChoices() []resolutionChoice {
	resolutions := eventmodels.AllResolutions()

	choices := make([]resolutionChoice, 0, len(resolutions))
	for _, resolution := range resolutions {
		choices = append(choices, resolutionChoice{Code: resolution, Label: resolution.Label()})
	}

	return choices
}

// handleDashboard renders the viewer page. The form round-trips through the
// query string, so a generate request is an ordinary page load that derives
// the contract name before rendering.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(404)
		return
	}

	requestID := uuid.New()
	logger := log.WithField("requestID", requestID)

	if err := r.ParseForm(); err != nil {
		setErrorResponse("handleDashboard: failed to parse form", 400, err, w)
		return
	}

	var state eventmodels.ViewState

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	if err := decoder.Decode(&state, r.Form); err != nil {
		logger.Warnf("handleDashboard: failed to decode view state: %v", err)
	}

	state.ApplyDefaults(time.Now().UTC())

	if r.Form.Get("action") == "generate" {
		selection, err := state.ToContractSelection()
		if err != nil {
			logger.Warnf("handleDashboard: failed to build contract selection: %v", err)
		} else if validateErr := selection.Validate(); validateErr != nil {
			logger.Warnf("handleDashboard: invalid contract selection: %v", validateErr)
		} else {
			state.ContractName = eventmodels.NewInstrumentID(selection)
			logger.Infof("generated contract name %s", state.ContractName)
		}
	}

	configJSON, err := json.Marshal(eventmodels.NewChartConfig())
	if err != nil {
		setErrorResponse("handleDashboard: failed to marshal chart config", 500, err, w)
		return
	}

	data := dashboardViewData{
		Title: dashboardTitle,
		State: state,
		Coins: eventmodels.AllCoins(),
		OptionTypes: []optionTypeChoice{
			{Value: eventmodels.OptionTypeCall, Label: "Call"},
			{Value: eventmodels.OptionTypePut, Label: "Put"},
		},
		Resolutions:     resolutionChoices(),
		Today:           time.Now().UTC().Format("2006-01-02"),
		ChartConfigJSON: template.JS(configJSON),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := dashboardTemplate.Execute(w, data); err != nil {
		logger.Errorf("handleDashboard: failed to render template: %v", err)
	}
}

func SetupDashboardHandler(router *mux.Router) {
	router.HandleFunc("/", handleDashboard)
}
