package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmiq/internal/adapters/catalogfile"
	"hmiq/internal/config"
	"hmiq/internal/logging"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	repo, err := catalogfile.LoadDefault(logging.Discard())
	require.NoError(t, err)
	return NewServer(config.ServerConfig{AllowedOrigins: []string{"*"}}, repo, logging.Discard())
}

func get(t *testing.T, s *Server, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec, env := get(t, s, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"status":"healthy"`)
	assert.Contains(t, string(env.Data), `"questionnaires":12`)
}

func TestListQuestionnaires(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantShort []string
	}{
		{name: "unfiltered", target: "/api/v1/questionnaires", wantShort: nil},
		{name: "search", target: "/api/v1/questionnaires?search=usability", wantShort: []string{"SUS"}},
		{
			name:      "scale any-of",
			target:    "/api/v1/questionnaires?scale=Hedonic&scale=Pragmatic",
			wantShort: []string{"UEQ", "UEQ-S", "AttrakDiff"},
		},
		{name: "comma separated scales", target: "/api/v1/questionnaires?scale=Social,Task", wantShort: []string{"ACIR-Q"}},
		{name: "time and language", target: "/api/v1/questionnaires?time=PreStudy&language=de", wantShort: []string{"ACIR-Q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec, env := get(t, s, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			require.True(t, env.Success)

			var data struct {
				Questionnaires []struct {
					Short string `json:"short"`
				} `json:"questionnaires"`
				Total int `json:"total"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, len(data.Questionnaires), data.Total)

			if tt.wantShort == nil {
				assert.Equal(t, 12, data.Total)
				return
			}
			var shorts []string
			for _, q := range data.Questionnaires {
				shorts = append(shorts, q.Short)
			}
			for _, want := range tt.wantShort {
				assert.Contains(t, shorts, want)
			}
		})
	}
}

func TestListQuestionnairesInvalidTime(t *testing.T) {
	s := newTestServer(t)
	rec, env := get(t, s, "/api/v1/questionnaires?time=sometimes")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalid_criteria", env.Error.Code)
}

func TestGetQuestionnaire(t *testing.T) {
	s := newTestServer(t)
	rec, env := get(t, s, "/api/v1/questionnaires/sus?language=DE")
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Questionnaire struct {
			Short string `json:"short"`
		} `json:"questionnaire"`
		Detail struct {
			Language  string   `json:"language"`
			Languages []string `json:"languages"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "SUS", data.Questionnaire.Short)
	assert.NotEmpty(t, data.Detail.Languages)
}

func TestGetQuestionnaireNotFound(t *testing.T) {
	s := newTestServer(t)
	rec, env := get(t, s, "/api/v1/questionnaires/SUX")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_found", env.Error.Code)
	assert.Contains(t, env.Error.Message, "did you mean SUS")
}

func TestFacets(t *testing.T) {
	s := newTestServer(t)

	rec, env := get(t, s, "/api/v1/facets/languages?q=germ")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"code":"DE"`)

	rec, env = get(t, s, "/api/v1/facets/scales")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"total"`)

	rec, env = get(t, s, "/api/v1/facets/times")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"value":"PreStudy"`)
	assert.Contains(t, string(env.Data), `"label":"Pre-study"`)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/questionnaires", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
