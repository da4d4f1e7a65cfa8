package httpapi

import (
	"net/http"

	"github.com/denisok6893-rgb/red-flag-checker/internal/apperrors"
	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
	"github.com/denisok6893-rgb/red-flag-checker/internal/share"
)

type ShareResponse struct {
	Link    string `json:"link"`
	Payload string `json:"payload"`
}

// handleShareCreate shares the given selections, or the current profile
// when none are sent.
func (s *Server) handleShareCreate(w http.ResponseWriter, r *http.Request) {
	var req ShareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	name, sel := req.Name, req.Selections
	if len(sel) == 0 {
		state := s.profiles.Snapshot()
		sel = state.Selections()
		if name == "" {
			name = state.DisplayName
		}
	}
	if sel == nil {
		sel = domain.Selections{}
	}

	payload, err := share.Encode(name, sel)
	if err != nil {
		s.writeError(w, err)
		return
	}
	link, err := share.Link(s.shareBaseURL, name, sel)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ShareResponse{Link: link, Payload: payload})
}

type SharedProfileResponse struct {
	share.Payload
	Assessment AssessmentResponse `json:"assessment"`
}

func (s *Server) handleShareOpen(w http.ResponseWriter, r *http.Request) {
	p, err := share.Decode(r.PathValue("payload"))
	if err != nil {
		s.writeError(w, apperrors.NewInvalidShareLinkError(err))
		return
	}
	engine := s.engineFor(s.profiles.Snapshot())
	writeJSON(w, http.StatusOK, SharedProfileResponse{Payload: p, Assessment: assess(engine, p.Selections)})
}
