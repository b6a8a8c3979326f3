package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(404)
		return
	}

	if err := setResponse(map[string]string{"status": "ok"}, w); err != nil {
		log.Errorf("handleHealth: failed to set response: %v", err)
	}
}

func SetupHealthHandler(router *mux.Router) {
	router.HandleFunc("/healthz", handleHealth)
}
