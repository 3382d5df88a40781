package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/sportsagg/internal/api/respond"
	"github.com/albapepper/sportsagg/internal/config"
)

// FailureResponse is returned with a 500 when no tier could produce data.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Sport   string `json:"sport"`
}

// SportsResponse is the /api/sports body.
type SportsResponse struct {
	Success bool     `json:"success"`
	Sports  []string `json:"sports"`
}

// GetTournaments returns upcoming tournaments for a sport.
// @Summary Get tournaments for a sport
// @Description Asks Gemini for upcoming tournaments and extracts the JSON list from its answer. Falls back to curated mock data when Gemini is not configured (mode=mock), fails (mode=fallback, api_error set) or an unexpected error occurs (mode=error_fallback, error set).
// @Tags tournaments
// @Produce json
// @Param sport path string true "Sport name, e.g. badminton"
// @Success 200 {object} aggregator.Result
// @Failure 500 {object} FailureResponse
// @Router /api/tournaments/{sport} [get]
func (h *Handler) GetTournaments(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")

	res, err := h.svc.Fetch(r.Context(), sport)
	if err != nil {
		respond.WriteJSONObject(w, http.StatusInternalServerError, FailureResponse{
			Success: false,
			Error:   "System error: " + err.Error(),
			Sport:   sport,
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, res)
}

// GetSports returns the supported sports.
// @Summary List sports
// @Description Returns the fixed list of sports offered by the landing page.
// @Tags tournaments
// @Produce json
// @Success 200 {object} SportsResponse
// @Router /api/sports [get]
func (h *Handler) GetSports(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, SportsResponse{
		Success: true,
		Sports:  config.Sports(),
	})
}
