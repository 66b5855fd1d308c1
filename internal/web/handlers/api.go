package handlers

import (
	"database/sql"
	"net/http"
)

// APIHandler handles health and statistics endpoints.
type APIHandler struct {
	DB *sql.DB
}

// HealthResponse reports process and database liveness.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// StatsResponse summarizes the parcel table.
type StatsResponse struct {
	TotalParcels    int     `json:"total_parcels"`
	Subdivisions    int     `json:"subdivisions"`
	ScorableParcels int     `json:"scorable_parcels"`
	AvgMarketValue  float64 `json:"avg_market_value"`
}

// Health reports liveness, pinging the database.
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Database: "ok"}
	if err := h.DB.Ping(); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetStats returns parcel counts and value aggregates.
func (h *APIHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	var stats StatsResponse

	err := h.DB.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(DISTINCT subdivision_code),
			COUNT(*) FILTER (WHERE living_area > 0 AND market_value > 0
				AND land_value > 0 AND year_built > 0),
			COALESCE(AVG(market_value), 0)
		FROM parcel
	`).Scan(&stats.TotalParcels, &stats.Subdivisions, &stats.ScorableParcels, &stats.AvgMarketValue)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
