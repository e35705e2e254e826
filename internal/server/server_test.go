package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/app"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/chat"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/config"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/analyst"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/summary"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/corpus"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/dashboard"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/llm"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/tokenizer"
)

func day(d int) time.Time {
	return time.Date(2023, 1, d, 12, 0, 0, 0, time.UTC)
}

func setup(t *testing.T, backend llm.Completer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Context.Encoding = tokenizer.ApproxEncoding
	cfg.LLM.RequestsPerMinute = 0

	c := corpus.New([]model.Article{
		{Title: "a1", Date: day(1), Keywords: []string{"Santé", "Hôpital"}, Locations: []string{"Paris"}, Organizations: []string{"OMS"}, People: []string{"Dupont"}},
		{Title: "a2", Date: day(2), Keywords: []string{"Sport"}, Locations: []string{"Lyon"}, Organizations: []string{}, People: []string{}},
		{Title: "a3", Date: day(3), Keywords: []string{"Santé"}, Locations: []string{"Paris"}, Organizations: []string{"ONU"}, People: []string{"Dupont"}},
	})

	a := app.NewWithBackend(cfg, c, backend, logger.Discard())
	return NewServer(a).SetupRouter()
}

func do(r *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	r := setup(t, &analyst.MockCompleter{})
	w := do(r, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]any](t, w)
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, float64(3), got["articles"])
}

func TestFilters(t *testing.T) {
	r := setup(t, &analyst.MockCompleter{})
	w := do(r, http.MethodGet, "/api/filters", nil)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dashboard.FilterOptions](t, w)
	assert.Equal(t, []string{"Santé", "Hôpital", "Sport"}, got.Keywords)
	assert.Equal(t, []string{"Paris", "Lyon"}, got.Locations)
	require.NotNil(t, got.MinDate)
	assert.True(t, got.MinDate.Equal(day(1)))
}

func TestDashboardEndToEnd(t *testing.T) {
	r := setup(t, &analyst.MockCompleter{})
	w := do(r, http.MethodGet, "/api/dashboard?start=2023-01-01&end=2023-01-02&keywords=Sant%C3%A9", nil)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dashboard.Snapshot](t, w)
	assert.Equal(t, 1, got.KPIs.TotalArticles)
	assert.Equal(t, "Hôpital", got.KPIs.TopKeyword)
	assert.Equal(t, []dashboard.DayCount{{Date: "2023-01-01", Count: 1}}, got.Timeline)
}

func TestDashboardBadDate(t *testing.T) {
	r := setup(t, &analyst.MockCompleter{})
	w := do(r, http.MethodGet, "/api/dashboard?start=01/01/2023", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaderboard(t *testing.T) {
	r := setup(t, &analyst.MockCompleter{})

	w := do(r, http.MethodGet, "/api/leaderboard?column=loc&top=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[struct {
		Column   string `json:"column"`
		Articles int    `json:"articles"`
		Items    []struct {
			Value string `json:"value"`
			Count int    `json:"count"`
		} `json:"items"`
	}](t, w)
	assert.Equal(t, "loc", got.Column)
	assert.Equal(t, 3, got.Articles)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Paris", got.Items[0].Value)
	assert.Equal(t, 2, got.Items[0].Count)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/leaderboard?column=nope", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/leaderboard?top=-1", nil).Code)
}

func TestCooccurrence(t *testing.T) {
	r := setup(t, &analyst.MockCompleter{})
	w := do(r, http.MethodGet, "/api/cooccurrence?column=kws&top=3", nil)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[struct {
		Labels []string `json:"labels"`
		Counts [][]int  `json:"counts"`
	}](t, w)
	assert.Equal(t, []string{"Santé", "Hôpital", "Sport"}, got.Labels)
	assert.Equal(t, [][]int{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}}, got.Counts)
}

func TestContext(t *testing.T) {
	r := setup(t, &analyst.MockCompleter{})

	w := do(r, http.MethodGet, "/api/context?locations=Lyon", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "- **Total d'articles** : 1")
	assert.Contains(t, w.Body.String(), "Lieux sélectionnés : Lyon")

	w = do(r, http.MethodGet, "/api/context?keywords=Inconnu", nil)
	assert.Equal(t, summary.NoArticlesSentinel, w.Body.String())
}

func TestChatFlow(t *testing.T) {
	mock := &analyst.MockCompleter{Response: "Deux articles parlent de santé."}
	r := setup(t, mock)

	w := do(r, http.MethodPost, "/api/chat", AskRequest{Question: "Fais un résumé", Keywords: []string{"Santé"}})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode[chat.Reply](t, w)
	assert.Equal(t, model.RoleAssistant, reply.Answer.Role)
	assert.Equal(t, "Deux articles parlent de santé.", reply.Answer.Content)
	require.NotNil(t, reply.Result)
	assert.Equal(t, "summary", string(reply.Result.Intent))

	req, ok := mock.Last()
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(req.Messages[0].Content, "**Question de l'utilisateur** : Fais un résumé"))

	w = do(r, http.MethodGet, "/api/chat", nil)
	history := decode[struct {
		Messages []model.ChatMessage `json:"messages"`
	}](t, w)
	assert.Len(t, history.Messages, 2)

	w = do(r, http.MethodDelete, "/api/chat", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/api/chat", nil)
	history = decode[struct {
		Messages []model.ChatMessage `json:"messages"`
	}](t, w)
	assert.Empty(t, history.Messages)
}

func TestChatBackendFailure(t *testing.T) {
	r := setup(t, &analyst.MockCompleter{Err: errors.New("Rate limit reached")})

	w := do(r, http.MethodPost, "/api/chat", AskRequest{Question: "Bonjour"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode[chat.Reply](t, w)
	assert.Equal(t, model.RoleError, reply.Answer.Role)
	assert.Equal(t, "Trop de requêtes. Veuillez réessayer dans quelques secondes", reply.Answer.Content)
}

func TestChatRejectsBadInput(t *testing.T) {
	r := setup(t, &analyst.MockCompleter{})

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/chat", AskRequest{Question: "  "}).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/chat", AskRequest{Question: "q", StartDate: "hier"}).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/chat", "not an object").Code)
}
