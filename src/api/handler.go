package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-surfaces/src/marketdata"
	"github.com/jiaming2012/option-surfaces/src/models"
	"github.com/jiaming2012/option-surfaces/src/pricing"
	"github.com/jiaming2012/option-surfaces/src/surfaces"
)

var historyService *marketdata.HistoryService

type HistoryResponse struct {
	Symbol               string             `json:"symbol"`
	Closes               models.DailyCloses `json:"closes"`
	AnnualizedVolatility float64            `json:"annualized_volatility"`
}

func priceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(404)
		return
	}

	id := uuid.New()

	var contract models.OptionContract
	if err := json.NewDecoder(r.Body).Decode(&contract); err != nil {
		if respErr := SetErrorResponse("parser", 400, id, err, w); respErr != nil {
			log.Errorf("priceHandler: failed to set error response: %v", respErr)
		}
		return
	}

	if err := contract.Validate(); err != nil {
		if respErr := SetErrorResponse("validation", 400, id, err, w); respErr != nil {
			log.Errorf("priceHandler: failed to set error response: %v", respErr)
		}
		return
	}

	result, err := pricing.Price(contract)
	if err != nil {
		if respErr := SetErrorResponse("pricing", 422, id, err, w); respErr != nil {
			log.Errorf("priceHandler: failed to set error response: %v", respErr)
		}
		return
	}

	if err := SetResponse(&result, w); err != nil {
		log.Errorf("priceHandler: failed to set response: %v", err)
		w.WriteHeader(500)
	}
}

func surfacesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(404)
		return
	}

	id := uuid.New()

	var req models.SurfaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if respErr := SetErrorResponse("parser", 400, id, err, w); respErr != nil {
			log.Errorf("surfacesHandler: failed to set error response: %v", respErr)
		}
		return
	}

	if err := req.Validate(); err != nil {
		if respErr := SetErrorResponse("validation", 400, id, err, w); respErr != nil {
			log.Errorf("surfacesHandler: failed to set error response: %v", respErr)
		}
		return
	}

	surface, err := surfaces.Evaluate(req)
	if err != nil {
		if respErr := SetErrorResponse("evaluation", 422, id, err, w); respErr != nil {
			log.Errorf("surfacesHandler: failed to set error response: %v", respErr)
		}
		return
	}

	if err := SetResponse(surface, w); err != nil {
		log.Errorf("surfacesHandler: failed to set response: %v", err)
		w.WriteHeader(500)
	}
}

// historyHandler serves a ticker's cached closing prices, fetching the last
// year from the market-data provider on a cache miss.
func historyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(404)
		return
	}

	id := uuid.New()

	symbol, found := mux.Vars(r)["symbol"]
	if !found {
		if respErr := SetErrorResponse("parser", 400, id, models.NoPriceDataErr, w); respErr != nil {
			log.Errorf("historyHandler: failed to set error response: %v", respErr)
		}
		return
	}

	closes, err := historyService.LoadCloses(symbol)
	if err != nil {
		log.Infof("historyHandler: no cached closes for %s, fetching", symbol)

		to := time.Now()
		from := to.AddDate(-1, 0, 0)

		closes, err = historyService.FetchDailyCloses(r.Context(), symbol, from, to)
		if err != nil {
			if respErr := SetErrorResponse("marketdata", 502, id, err, w); respErr != nil {
				log.Errorf("historyHandler: failed to set error response: %v", respErr)
			}
			return
		}

		if err := historyService.SaveCloses(symbol, closes); err != nil {
			log.Warnf("historyHandler: failed to cache closes for %s: %v", symbol, err)
		}
	}

	vol, err := marketdata.HistoricalVolatility(closes)
	if err != nil {
		if respErr := SetErrorResponse("marketdata", 422, id, err, w); respErr != nil {
			log.Errorf("historyHandler: failed to set error response: %v", respErr)
		}
		return
	}

	resp := HistoryResponse{
		Symbol:               symbol,
		Closes:               closes,
		AnnualizedVolatility: vol,
	}

	if err := SetResponse(&resp, w); err != nil {
		log.Errorf("historyHandler: failed to set response: %v", err)
		w.WriteHeader(500)
	}
}

func SetupHandlers(router *mux.Router, service *marketdata.HistoryService) {
	historyService = service

	router.HandleFunc("/price", priceHandler)
	router.HandleFunc("/surfaces", surfacesHandler)
	router.HandleFunc("/history/{symbol}", historyHandler)
}
