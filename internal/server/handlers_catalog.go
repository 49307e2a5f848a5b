package server

import (
	"net/http"
	"strconv"

	"github.com/spigell/cv-assistant/internal/filtering"
	"github.com/spigell/cv-assistant/internal/recruitment"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// listing applies the page and the field filters named by query parameters.
func listing[T filtering.Record](s *Server, w http.ResponseWriter, r *http.Request, items []T, fields map[string]string) {
	query := r.URL.Query()

	skip, err := intParam(query.Get("skip"), 0)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	limit, err := intParam(query.Get("limit"), filtering.DefaultLimit)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	steps := make([]filtering.Filter[T], 0, len(fields)+1)
	for param, field := range fields {
		steps = append(steps, filtering.NewField[T](field, query.Get(param)))
	}
	steps = append(steps, filtering.NewPage[T](skip, limit))

	result, err := filtering.Run(r.Context(), filtering.Deps{Logger: s.logger}, steps, items)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest("expected an integer, got %q", raw)
	}
	return n, nil
}

// single writes the record returned by lookup for the {id} path value.
func single[T any](s *Server, w http.ResponseWriter, r *http.Request, lookup func(string) (T, error)) {
	item, err := lookup(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	listing(s, w, r, s.store.JobViews(), map[string]string{
		"office_id":  recruitment.FieldOffice,
		"company_id": recruitment.FieldCompany,
	})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	single(s, w, r, s.store.JobView)
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	listing(s, w, r, s.store.CandidateViews(), map[string]string{
		"office_id": recruitment.FieldOffice,
	})
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	single(s, w, r, s.store.CandidateView)
}

func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	listing(s, w, r, s.store.CompanyViews(), map[string]string{
		"office_id": recruitment.FieldOffice,
	})
}

func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	single(s, w, r, s.store.CompanyView)
}

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	listing(s, w, r, s.store.SkillViews(), nil)
}

func (s *Server) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	single(s, w, r, s.store.SkillView)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	listing(s, w, r, s.store.UserViews(), map[string]string{
		"office_id": recruitment.FieldOffice,
		"role":      recruitment.FieldRole,
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	single(s, w, r, s.store.UserView)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	result, err := s.store.Login(req.Email, req.Password)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
