package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// CircularRequest carries the fields a caller supplies; number and status
// are assigned by the service.
type CircularRequest struct {
	Audience string `json:"audience"`
	Body     string `json:"body"`
}

func (r *Router) listCirculars(w http.ResponseWriter, req *http.Request) {
	circulars, err := r.svc.ListCirculars()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, circulars)
}

func (r *Router) createCircular(w http.ResponseWriter, req *http.Request) {
	var body CircularRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	circular, err := r.svc.CreateCircular(body.Audience, body.Body, time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, circular)
}

func (r *Router) advanceCircular(w http.ResponseWriter, req *http.Request) {
	number, err := strconv.Atoi(mux.Vars(req)["number"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid circular number")
		return
	}
	circular, err := r.svc.AdvanceCircular(number)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, circular)
}

func (r *Router) deleteCircular(w http.ResponseWriter, req *http.Request) {
	number, err := strconv.Atoi(mux.Vars(req)["number"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid circular number")
		return
	}
	if err := r.svc.DeleteCircular(number); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
