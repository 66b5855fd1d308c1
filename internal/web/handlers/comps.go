package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parcel-comps/internal/comps"
)

// CompsHandler handles comparable-parcel endpoints.
type CompsHandler struct {
	Service *comps.Service
	Debug   bool
}

// PostComparables runs a comparison from a JSON request body:
// { propertyId, limit, customAlgorithm }.
func (h *CompsHandler) PostComparables(w http.ResponseWriter, r *http.Request) {
	var req comps.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	h.compare(w, req)
}

// GetComparables runs a comparison for the parcel in the path. Optional
// query parameters: limit, algorithm (JSON override).
func (h *CompsHandler) GetComparables(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := comps.Request{
		PropertyID: mux.Vars(r)["id"],
		Limit:      parseIntParam(query.Get("limit"), 0),
	}
	if algo := query.Get("algorithm"); algo != "" {
		req.CustomAlgorithm = json.RawMessage(algo)
	}

	h.compare(w, req)
}

func (h *CompsHandler) compare(w http.ResponseWriter, req comps.Request) {
	result, err := h.Service.Compare(h.Debug, req)
	if err != nil {
		switch {
		case errors.Is(err, comps.ErrMissingPropertyID):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, comps.ErrTargetNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "Comparison failed", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
