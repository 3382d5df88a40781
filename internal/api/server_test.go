package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/sportsagg/internal/aggregator"
	"github.com/albapepper/sportsagg/internal/config"
	"github.com/albapepper/sportsagg/internal/gemini"
	"github.com/albapepper/sportsagg/internal/metrics"
	"github.com/albapepper/sportsagg/internal/mock"
	"github.com/albapepper/sportsagg/internal/tournament"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestServer(t *testing.T, key string, gen aggregator.Generator, opts ...func(*aggregator.Service)) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		GeminiAPIKey:     key,
		CORSAllowOrigins: []string{"*"},
		Location:         time.FixedZone("IST", 5*3600+1800),
	}
	m := metrics.New(prometheus.NewRegistry())
	clock := clockwork.NewFakeClockAt(time.Date(2025, 9, 14, 20, 0, 0, 0, time.UTC))
	svc := aggregator.NewService(gen, cfg, clock, m, quietLogger)
	for _, opt := range opts {
		opt(svc)
	}

	srv := httptest.NewServer(NewRouter(svc, cfg, m, quietLogger))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp
}

func TestTournaments_MockMode(t *testing.T) {
	srv := newTestServer(t, "", nil)

	var body map[string]any
	resp := getJSON(t, srv.URL+"/api/tournaments/badminton", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Process-Time"))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "badminton", body["sport"])
	assert.Equal(t, "mock", body["mode"])
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, "2025-09-15T01:30:00+05:30", body["fetched_at"])
	assert.NotContains(t, body, "api_error")
	assert.Len(t, body["tournaments"], 2)
}

func TestTournaments_APIMode(t *testing.T) {
	gen := generatorFunc(func(context.Context, string) (string, error) {
		return `[{"tournament_name":"Ranji Trophy","level":"National"}]`, nil
	})
	srv := newTestServer(t, "live-key", gen)

	var body struct {
		Mode        string `json:"mode"`
		Count       int    `json:"count"`
		Tournaments []map[string]any
	}
	getJSON(t, srv.URL+"/api/tournaments/cricket", &body)

	assert.Equal(t, "api", body.Mode)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "Ranji Trophy", body.Tournaments[0]["tournament_name"])
	assert.Contains(t, body.Tournaments[0], "official_url")
	assert.Nil(t, body.Tournaments[0]["official_url"])
}

func TestTournaments_FallbackMode(t *testing.T) {
	gen := generatorFunc(func(context.Context, string) (string, error) {
		return "", &gemini.NetworkError{Err: errors.New("dial tcp: connection refused")}
	})
	srv := newTestServer(t, "live-key", gen)

	var body struct {
		Mode        string            `json:"mode"`
		APIError    string            `json:"api_error"`
		Tournaments []json.RawMessage `json:"tournaments"`
	}
	getJSON(t, srv.URL+"/api/tournaments/tennis", &body)

	assert.Equal(t, "fallback", body.Mode)
	assert.Equal(t, "Connection error - please check your internet connection", body.APIError)

	want, err := json.Marshal(mock.Tournaments("tennis"))
	require.NoError(t, err)
	got, err := json.Marshal(body.Tournaments)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestTournaments_ErrorFallbackMode(t *testing.T) {
	gen := generatorFunc(func(context.Context, string) (string, error) {
		panic("unexpected nil map")
	})
	srv := newTestServer(t, "live-key", gen)

	var body map[string]any
	resp := getJSON(t, srv.URL+"/api/tournaments/chess", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "error_fallback", body["mode"])
	assert.Equal(t, "unexpected nil map", body["error"])
}

func TestTournaments_TotalFailure(t *testing.T) {
	srv := newTestServer(t, "", nil, func(svc *aggregator.Service) {
		svc.Fallback = func(string) []tournament.Tournament { panic("catalogue unavailable") }
	})

	var body map[string]any
	resp := getJSON(t, srv.URL+"/api/tournaments/kabaddi", &body)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"success": false,
		"error":   "System error: catalogue unavailable",
		"sport":   "kabaddi",
	}, body)
}

func TestSports_FixedList(t *testing.T) {
	srv := newTestServer(t, "", nil)

	var first, second struct {
		Success bool     `json:"success"`
		Sports  []string `json:"sports"`
	}
	getJSON(t, srv.URL+"/api/sports", &first)
	getJSON(t, srv.URL+"/api/sports?sport=ignored", &second)

	assert.True(t, first.Success)
	assert.Len(t, first.Sports, 12)
	assert.Equal(t, first, second)
	assert.Equal(t, config.Sports(), first.Sports)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, "", nil)

	var body map[string]string
	resp := getJSON(t, srv.URL+"/api/health", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Asia/Kolkata", body["timezone"])
	assert.Equal(t, "2025-09-15T01:30:00.000000+05:30", body["timestamp"])
}

func TestRoot(t *testing.T) {
	srv := newTestServer(t, "", nil)

	var body map[string]any
	getJSON(t, srv.URL+"/api", &body)
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "mock", body["mode"])
}

func TestLandingPage(t *testing.T) {
	srv := newTestServer(t, "", nil)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(b), `data-sport="Table Tennis"`)
}

func TestNotFound_JSON(t *testing.T) {
	srv := newTestServer(t, "", nil)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	resp := getJSON(t, srv.URL+"/api/unknown", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	srv := newTestServer(t, "", nil)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/sports", nil)
	req.Header.Set("Origin", "http://example.test")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, "", nil)

	_, err := http.Get(srv.URL + "/api/tournaments/yoga")
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)

	assert.Contains(t, string(b), `sportsagg_tournament_responses_total{mode="mock"} 1`)
}
