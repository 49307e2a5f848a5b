package server

import (
	"net/http"
	"strconv"

	"github.com/spigell/cv-assistant/internal/cv"
	"github.com/spigell/cv-assistant/internal/email"
)

type analyzeCVRequest struct {
	CVText *string `json:"cv_text" validate:"required"`
}

type generateEmailRequest struct {
	TemplateID string        `json:"template_id" validate:"required"`
	Context    email.Context `json:"context"`
}

func (s *Server) handleAnalyzeCV(w http.ResponseWriter, r *http.Request) {
	var req analyzeCVRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	analysis, err := s.assistant.AnalyzeCV(r.Context(), *req.CVText)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

func (s *Server) handleMatchJobs(w http.ResponseWriter, r *http.Request) {
	var jobID *int
	if raw := r.URL.Query().Get("job_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, r, badRequest("job_id must be an integer, got %q", raw))
			return
		}
		jobID = &id
	}

	var analysis cv.Analysis
	if err := s.decode(w, r, &analysis); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	analysis.Normalize()

	matches, err := s.assistant.MatchJobs(r.Context(), &analysis, jobID)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, matches)
}

func (s *Server) handleGenerateEmail(w http.ResponseWriter, r *http.Request) {
	var req generateEmailRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if req.Context == nil {
		req.Context = email.Context{}
	}

	msg, err := s.assistant.GenerateEmail(r.Context(), req.TemplateID, req.Context)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, msg)
}

func (s *Server) handleEmailTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.TemplateSummaries())
}

func (s *Server) handleEmailContext(w http.ResponseWriter, r *http.Request) {
	values, err := s.store.EmailContext(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, values)
}
