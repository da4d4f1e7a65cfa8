package httpapi

import (
	"errors"
	"net/http"

	"github.com/denisok6893-rgb/red-flag-checker/internal/apperrors"
	"github.com/denisok6893-rgb/red-flag-checker/internal/assessment"
	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
	"github.com/denisok6893-rgb/red-flag-checker/internal/storage"
)

type ProfilesResponse struct {
	Current     string            `json:"current"`
	DisplayName string            `json:"display_name"`
	Profiles    []string          `json:"profiles"`
	Selections  domain.Selections `json:"selections"`
}

func profilesView(state storage.State) ProfilesResponse {
	return ProfilesResponse{
		Current:     state.Current,
		DisplayName: state.DisplayName,
		Profiles:    state.Names(),
		Selections:  state.Selections(),
	}
}

func (s *Server) handleProfilesList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, profilesView(s.profiles.Snapshot()))
}

func (s *Server) handleProfilesCreate(w http.ResponseWriter, r *http.Request) {
	var req ProfileNameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if !s.profiles.AddProfile(req.Name) {
		s.writeError(w, apperrors.NewValidationError("profile name must not be blank"))
		return
	}
	writeJSON(w, http.StatusCreated, profilesView(s.profiles.Snapshot()))
}

func (s *Server) handleProfilesChange(w http.ResponseWriter, r *http.Request) {
	var req ProfileNameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.profiles.Change(req.Name); err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			s.writeError(w, apperrors.NewProfileNotFoundError(req.Name))
			return
		}
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profilesView(s.profiles.Snapshot()))
}

func (s *Server) handleProfilesDelete(w http.ResponseWriter, r *http.Request) {
	if !s.profiles.DeleteCurrent() {
		s.writeError(w, apperrors.NewProfileConflictError("the Default profile cannot be deleted"))
		return
	}
	writeJSON(w, http.StatusOK, profilesView(s.profiles.Snapshot()))
}

func (s *Server) handleProfilesRename(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.profiles.Rename(req.DisplayName)
	writeJSON(w, http.StatusOK, profilesView(s.profiles.Snapshot()))
}

func (s *Server) handleSelectionUpdate(w http.ResponseWriter, r *http.Request) {
	var req SelectionUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if _, _, ok := s.engineFor(s.profiles.Snapshot()).Catalog().Lookup(req.TraitID); !ok {
		s.writeError(w, apperrors.NewUnknownTraitError(req.TraitID))
		return
	}
	s.profiles.Update(req.TraitID, req.Value)
	writeJSON(w, http.StatusOK, profilesView(s.profiles.Snapshot()))
}

func (s *Server) handleSelectionsReset(w http.ResponseWriter, r *http.Request) {
	s.profiles.Reset()
	writeJSON(w, http.StatusOK, profilesView(s.profiles.Snapshot()))
}

func (s *Server) handleProfileScore(w http.ResponseWriter, r *http.Request) {
	state := s.profiles.Snapshot()
	writeJSON(w, http.StatusOK, assess(s.engineFor(state), state.Selections()))
}

func (s *Server) handleProfilesExport(w http.ResponseWriter, r *http.Request) {
	state := s.profiles.Snapshot()
	writeJSON(w, http.StatusOK, storage.Export{
		TraitProfiles: state.Profiles,
		CustomTraits:  state.CustomTraits,
	})
}

// handleProfilesFlush writes pending profile changes without waiting for
// the flush delay.
func (s *Server) handleProfilesFlush(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.Flush(r.Context()); err != nil {
		s.writeError(w, apperrors.NewStorageError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "flushed"})
}

type CustomTraitResponse struct {
	ID       string             `json:"id"`
	Category string             `json:"category"`
	Trait    domain.CustomTrait `json:"trait"`
}

func (s *Server) handleCustomTraitCreate(w http.ResponseWriter, r *http.Request) {
	var req CustomTraitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	ct, ok := s.profiles.AddCustomTrait(req.Category, req.Trait)
	if !ok {
		s.writeError(w, apperrors.NewValidationError("category and trait must not be blank"))
		return
	}
	writeJSON(w, http.StatusCreated, CustomTraitResponse{
		ID:       assessment.TraitID(req.Category, ct.Trait),
		Category: req.Category,
		Trait:    ct,
	})
}

func (s *Server) handleCustomTraitDelete(w http.ResponseWriter, r *http.Request) {
	category, trait := r.PathValue("category"), r.PathValue("trait")
	if !s.profiles.DeleteCustomTrait(category, trait) {
		s.writeError(w, apperrors.NewNotFoundError("custom trait "+trait+" in "+category))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
