package server

import (
	"github.com/gorilla/mux"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
	"github.com/jiaming2012/deribit-viewer/src/handler"
)

func Setup(queryFn eventmodels.ChartDataQueryFunc) *mux.Router {
	router := mux.NewRouter()

	handler.SetupDashboardHandler(router)
	handler.SetupHealthHandler(router)

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	handler.SetupApiHandler(apiRouter, queryFn)

	return router
}
