package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parcel-comps/internal/normalize"
	"github.com/parcel-comps/internal/property"
)

// PropertiesHandler handles parcel lookup endpoints.
type PropertiesHandler struct {
	Store *property.Store
}

// SubdivisionResponse lists the parcels of one subdivision.
type SubdivisionResponse struct {
	SubdivisionCode string            `json:"subdivisionCode"`
	Count           int               `json:"count"`
	Properties      []property.Record `json:"properties"`
}

// GetProperty returns a single parcel by account number.
func (h *PropertiesHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.ByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "Property not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// GetByAddress resolves a parcel from a free-form address. The address
// is run through libpostal and normalized to the stored situs form.
func (h *PropertiesHandler) GetByAddress(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		http.Error(w, "address parameter is required", http.StatusBadRequest)
		return
	}

	rec, err := h.Store.ByAddress(normalize.SitusQuery(address))
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "Property not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// ListSubdivision returns every parcel in a subdivision.
func (h *PropertiesHandler) ListSubdivision(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	records, err := h.Store.SubdivisionCandidates(code, "")
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, SubdivisionResponse{
		SubdivisionCode: code,
		Count:           len(records),
		Properties:      records,
	})
}
