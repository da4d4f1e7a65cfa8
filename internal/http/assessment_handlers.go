package httpapi

import (
	"net/http"
	"strconv"

	"github.com/denisok6893-rgb/red-flag-checker/internal/apperrors"
	"github.com/denisok6893-rgb/red-flag-checker/internal/assessment"
	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
	"github.com/denisok6893-rgb/red-flag-checker/internal/metrics"
)

type TraitView struct {
	ID string `json:"id"`
	domain.TraitDefinition
	Critical bool                     `json:"critical"`
	Custom   bool                     `json:"custom"`
	Options  []assessment.TraitOption `json:"options"`
}

type CategoryView struct {
	Name   string      `json:"name"`
	Traits []TraitView `json:"traits"`
}

type TraitsResponse struct {
	Total      int            `json:"total"`
	Categories []CategoryView `json:"categories"`
}

func (s *Server) handleTraits(w http.ResponseWriter, r *http.Request) {
	state := s.profiles.Snapshot()
	custom := make(map[string]bool)
	for cat, traits := range state.CustomTraits {
		for _, t := range traits {
			custom[assessment.TraitID(cat, t.Trait)] = true
		}
	}

	catalog := s.engineFor(state).Catalog()
	out := TraitsResponse{Total: catalog.Count(), Categories: make([]CategoryView, 0, len(catalog))}
	for _, cat := range catalog {
		cv := CategoryView{Name: cat.Name, Traits: make([]TraitView, 0, len(cat.Traits))}
		for _, t := range cat.Traits {
			id := assessment.TraitID(cat.Name, t.Trait)
			cv.Traits = append(cv.Traits, TraitView{
				ID:              id,
				TraitDefinition: t,
				Critical:        assessment.IsCritical(t),
				Custom:          custom[id],
				Options:         assessment.TraitOptions(t),
			})
		}
		out.Categories = append(out.Categories, cv)
	}
	writeJSON(w, http.StatusOK, out)
}

type AssessmentResponse struct {
	Score         domain.ScoreResult             `json:"score"`
	Risk          assessment.RiskAssessment      `json:"risk"`
	Verdict       assessment.RelationshipVerdict `json:"verdict"`
	Compatibility string                         `json:"compatibility"`
	Advice        []string                       `json:"advice"`
	Satirical     assessment.SatiricalVerdict    `json:"satirical"`
	Progress      assessment.ProgressReport      `json:"progress"`
}

func assess(e *assessment.Engine, sel domain.Selections) AssessmentResponse {
	score := e.ComputeScore(sel)
	risk := assessment.ClassifyRisk(score.RedScore)
	metrics.Computations.WithLabelValues(metrics.KindScore).Inc()
	metrics.RiskLevels.WithLabelValues(string(risk.Level)).Inc()

	return AssessmentResponse{
		Score:         score,
		Risk:          risk,
		Verdict:       assessment.Verdict(score.NetScore),
		Compatibility: assessment.CompatibilityDescription(score.NetScore),
		Advice:        e.Advice(score.NetScore, sel),
		Satirical:     assessment.SatiricalAdvice(score.NetScore),
		Progress:      e.Progress(sel),
	}
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	engine := s.engineFor(s.profiles.Snapshot())
	writeJSON(w, http.StatusOK, assess(engine, req.Selections))
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("red")
	red, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, apperrors.NewValidationError("red must be an integer, got "+strconv.Quote(raw)))
		return
	}
	writeJSON(w, http.StatusOK, assessment.ClassifyRisk(red))
}
