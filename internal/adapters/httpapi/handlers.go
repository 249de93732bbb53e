package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"hmiq/internal/application"
	"hmiq/internal/application/commands"
	"hmiq/internal/domain"
)

// Response helpers

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode error response", "error", err)
	}
}

// handleCommandError maps application errors onto HTTP statuses
func (s *Server) handleCommandError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		s.respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, application.ErrInvalidCriteria):
		s.respondError(w, http.StatusBadRequest, "invalid_criteria", err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// Health handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"time":           time.Now().UTC().Format(time.RFC3339),
		"catalog":        s.repo.Source(),
		"questionnaires": len(s.repo.All()),
	})
}

// Questionnaire handlers

type questionnaireDetail struct {
	Questionnaire *domain.Questionnaire `json:"questionnaire"`
	Detail        domain.Detail         `json:"detail"`
}

func (s *Server) handleListQuestionnaires(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria, err := application.ParseCriteria(q.Get("search"), scaleParams(q), q.Get("time"), q.Get("language"))
	if err != nil {
		s.handleCommandError(w, err)
		return
	}

	results, err := commands.NewListCommand(s.repo, criteria).Execute(r.Context())
	if err != nil {
		s.handleCommandError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"questionnaires": results,
		"total":          len(results),
		"criteria":       criteria,
	})
}

func (s *Server) handleGetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	short, err := url.PathUnescape(chi.URLParam(r, "short"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "bad_request", "invalid abbreviation")
		return
	}

	res, err := commands.NewShowCommand(s.repo, short, r.URL.Query().Get("language")).Execute(r.Context())
	if err != nil {
		s.handleCommandError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, questionnaireDetail{Questionnaire: res.Questionnaire, Detail: res.Detail})
}

// Facet handlers

func (s *Server) handleScaleFacet(w http.ResponseWriter, r *http.Request) {
	scales, err := commands.NewScaleFacetCommand(s.repo, r.URL.Query().Get("q")).Execute(r.Context())
	if err != nil {
		s.handleCommandError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"scales": scales,
		"total":  len(scales),
	})
}

func (s *Server) handleLanguageFacet(w http.ResponseWriter, r *http.Request) {
	opts, err := commands.NewLanguageFacetCommand(s.repo, r.URL.Query().Get("q")).Execute(r.Context())
	if err != nil {
		s.handleCommandError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"languages": opts,
		"total":     len(opts),
	})
}

type timeOption struct {
	Value domain.Time `json:"value"`
	Label string      `json:"label"`
}

func (s *Server) handleTimeFacet(w http.ResponseWriter, r *http.Request) {
	opts := make([]timeOption, len(domain.Times))
	for i, t := range domain.Times {
		opts[i] = timeOption{Value: t, Label: t.Label()}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"times": opts})
}

// scaleParams accepts both ?scale=A&scale=B and ?scale=A,B
func scaleParams(q url.Values) []string {
	var out []string
	for _, v := range q["scale"] {
		out = append(out, application.SplitList(v)...)
	}
	return out
}
