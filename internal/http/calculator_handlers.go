package httpapi

import (
	"net/http"

	"github.com/denisok6893-rgb/red-flag-checker/internal/apperrors"
	"github.com/denisok6893-rgb/red-flag-checker/internal/calculator"
)

// parseSeeking maps "male"/"female" to lookingForMale. Empty means male.
func parseSeeking(v string) (bool, error) {
	switch v {
	case "", "male":
		return true, nil
	case "female":
		return false, nil
	default:
		return false, apperrors.NewValidationError("seeking must be male or female, got " + v)
	}
}

type CriteriaResponse struct {
	Seeking  string              `json:"seeking"`
	Criteria calculator.Criteria `json:"criteria"`
}

func (s *Server) handleCriteria(w http.ResponseWriter, r *http.Request) {
	seeking := r.URL.Query().Get("seeking")
	male, err := parseSeeking(seeking)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if seeking == "" {
		seeking = "male"
	}
	writeJSON(w, http.StatusOK, CriteriaResponse{Seeking: seeking, Criteria: calculator.DefaultCriteria(male)})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default": calculator.DefaultRegion,
		"regions": calculator.Regions(),
	})
}

type ComputeResponse struct {
	Result calculator.Result `json:"result"`
	Cached bool              `json:"cached"`
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	male, err := parseSeeking(req.Seeking)
	if err != nil {
		s.writeError(w, err)
		return
	}
	criteria, err := calculator.DefaultCriteria(male).SelectAll(req.Selections)
	if err != nil {
		s.writeError(w, apperrors.NewUnknownCriterionError(err))
		return
	}

	res, cached := s.calc.Compute(r.Context(), criteria, male, req.Region)
	writeJSON(w, http.StatusOK, ComputeResponse{Result: res, Cached: cached})
}
