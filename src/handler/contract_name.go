package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
	"github.com/jiaming2012/deribit-viewer/src/utils"
)

type CreateContractNameRequest struct {
	Coin        string  `json:"coin" schema:"coin"`
	ExpiryDate  string  `json:"expiry_date" schema:"expiry_date"`
	StrikePrice float64 `json:"strike_price" schema:"strike_price"`
	OptionType  string  `json:"option_type" schema:"option_type"`
}

func (r *CreateContractNameRequest) Validate() error {
	if err := eventmodels.Coin(r.Coin).Validate(); err != nil {
		return fmt.Errorf("CreateContractNameRequest: Validate: %w", err)
	}

	if r.ExpiryDate == "" {
		return fmt.Errorf("CreateContractNameRequest: Validate: expiry_date was not found")
	}

	if r.StrikePrice < 0 {
		return fmt.Errorf("CreateContractNameRequest: Validate: strike_price must not be negative")
	}

	if err := eventmodels.OptionType(strings.ToLower(r.OptionType)).Validate(); err != nil {
		return fmt.Errorf("CreateContractNameRequest: Validate: %w", err)
	}

	return nil
}

func (r *CreateContractNameRequest) ToContractSelection() (eventmodels.ContractSelection, error) {
	expiry, err := utils.ParseDateOnly(r.ExpiryDate)
	if err != nil {
		return eventmodels.ContractSelection{}, fmt.Errorf("ToContractSelection: failed to parse expiry date: %w", err)
	}

	return eventmodels.ContractSelection{
		Coin:        eventmodels.Coin(r.Coin),
		ExpiryDate:  expiry,
		StrikePrice: r.StrikePrice,
		OptionType:  eventmodels.OptionType(strings.ToLower(r.OptionType)),
	}, nil
}

type CreateContractNameResponse struct {
	ContractName eventmodels.InstrumentID `json:"contract_name"`
	Description  string                   `json:"description,omitempty"`
}

func handleContractName(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(404)
		return
	}

	requestID := uuid.New()
	logger := log.WithField("requestID", requestID)

	var payload CreateContractNameRequest

	switch r.Header.Get("Content-Type") {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			setErrorResponse("handleContractName: failed to parse form", 400, err, w)
			return
		}

		decoder := schema.NewDecoder()
		decoder.IgnoreUnknownKeys(true)

		if err := decoder.Decode(&payload, r.Form); err != nil {
			setErrorResponse("handleContractName: failed to decode form", 400, err, w)
			return
		}
	default:
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			setErrorResponse("handleContractName: failed to decode json", 400, err, w)
			return
		}
	}

	if err := payload.Validate(); err != nil {
		setErrorResponse("handleContractName: invalid payload", 400, err, w)
		return
	}

	selection, err := payload.ToContractSelection()
	if err != nil {
		setErrorResponse("handleContractName: invalid expiry date", 400, err, w)
		return
	}

	contractName := eventmodels.NewInstrumentID(selection)

	logger.Infof("generated contract name %s", contractName)

	response := CreateContractNameResponse{
		ContractName: contractName,
	}

	if description, descErr := contractName.Description(); descErr == nil {
		response.Description = description
	}

	if err := setResponse(response, w); err != nil {
		logger.Errorf("handleContractName: failed to set response: %v", err)
	}
}
