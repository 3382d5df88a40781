// Package aggregator orchestrates one tournament lookup: prompt, Gemini call,
// extraction, and the degradation ladder down to mock data.
//
// Tiers, evaluated in order:
//
//	mock            Gemini not configured; the call is never made
//	api             Gemini answered and a tournament list was extracted
//	fallback        the call or the extraction failed; api_error explains why
//	error_fallback  a panic anywhere above was recovered; error explains why
//
// Only when the mock provider itself fails does Fetch return an error.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/albapepper/sportsagg/internal/config"
	"github.com/albapepper/sportsagg/internal/extract"
	"github.com/albapepper/sportsagg/internal/gemini"
	"github.com/albapepper/sportsagg/internal/metrics"
	"github.com/albapepper/sportsagg/internal/mock"
	"github.com/albapepper/sportsagg/internal/prompt"
	"github.com/albapepper/sportsagg/internal/tournament"
)

// Mode tags which tier produced an envelope.
type Mode string

const (
	ModeAPI           Mode = "api"
	ModeMock          Mode = "mock"
	ModeFallback      Mode = "fallback"
	ModeErrorFallback Mode = "error_fallback"
)

// Generator produces model text for a prompt. *gemini.Client implements it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Result is the envelope served by /api/tournaments/{sport}.
type Result struct {
	Success     bool                    `json:"success"`
	Sport       string                  `json:"sport"`
	Tournaments []tournament.Tournament `json:"tournaments"`
	FetchedAt   time.Time               `json:"fetched_at"`
	Count       int                     `json:"count"`
	Mode        Mode                    `json:"mode"`
	APIError    string                  `json:"api_error,omitempty"`
	Error       string                  `json:"error,omitempty"`
}

// UnexpectedError carries a panic recovered while building a response.
type UnexpectedError struct {
	Value any
}

func (e *UnexpectedError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

// FailureError is returned by Fetch when even the mock provider failed.
type FailureError struct {
	Err      error // the failure that sent the request to error_fallback
	Fallback error // the failure of error_fallback itself
}

func (e *FailureError) Error() string { return e.Err.Error() }

func (e *FailureError) Unwrap() error { return e.Err }

// Service runs the tier ladder. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	gen        Generator
	configured bool
	loc        *time.Location
	clock      clockwork.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger

	// Fallback supplies records for every tier but api. NewService sets it
	// to mock.Tournaments.
	Fallback func(sport string) []tournament.Tournament
}

// NewService builds the orchestrator. gen is only called when cfg reports
// Gemini as configured; it may be nil otherwise. m may be nil.
func NewService(gen Generator, cfg *config.Config, clock clockwork.Clock, m *metrics.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	loc := cfg.Location
	if loc == nil {
		loc = config.LoadLocation()
	}
	return &Service{
		gen:        gen,
		configured: gen != nil && cfg.GeminiConfigured(),
		loc:        loc,
		clock:      clock,
		metrics:    m,
		logger:     logger,
		Fallback:   mock.Tournaments,
	}
}

// Live reports whether Fetch will attempt Gemini calls.
func (s *Service) Live() bool { return s.configured }

// Now returns the current time in the service zone.
func (s *Service) Now() time.Time { return s.clock.Now().In(s.loc) }

// Prompt returns the Gemini prompt Fetch would send for sport right now.
func (s *Service) Prompt(sport string) string {
	return prompt.Build(tournament.SportTitle(sport), s.Now())
}

// Fetch returns tournaments for sport from the best available tier.
func (s *Service) Fetch(ctx context.Context, sport string) (*Result, error) {
	s.logger.Info("Received request for tournaments", "sport", sport)

	res, err := guard(func() *Result { return s.tiered(ctx, sport) })
	if err == nil {
		s.metrics.ObserveResponse(string(res.Mode))
		return res, nil
	}

	s.logger.Error("Unexpected error fetching tournaments", "sport", sport, "error", err)
	res, fbErr := guard(func() *Result {
		r := s.envelope(sport, ModeErrorFallback, s.Fallback(sport))
		r.Error = err.Error()
		return r
	})
	if fbErr != nil {
		s.logger.Error("Even fallback failed", "sport", sport, "error", fbErr)
		return nil, &FailureError{Err: err, Fallback: fbErr}
	}
	s.metrics.ObserveResponse(string(res.Mode))
	return res, nil
}

func (s *Service) tiered(ctx context.Context, sport string) *Result {
	if !s.configured {
		data := s.Fallback(sport)
		s.logger.Info("Using mock data", "sport", sport, "count", len(data))
		return s.envelope(sport, ModeMock, data)
	}

	data, err := s.live(ctx, sport)
	if err != nil {
		s.logger.Warn("API failed, using mock data", "sport", sport, "error", err)
		r := s.envelope(sport, ModeFallback, s.Fallback(sport))
		r.APIError = Describe(err)
		return r
	}

	s.logger.Info("Successfully fetched tournaments", "sport", sport, "count", len(data))
	return s.envelope(sport, ModeAPI, data)
}

func (s *Service) live(ctx context.Context, sport string) ([]tournament.Tournament, error) {
	p := s.Prompt(sport)
	s.logger.Debug("Created prompt", "sport", sport)

	start := s.clock.Now()
	text, err := s.gen.Generate(ctx, p)
	s.metrics.ObserveGemini(outcome(err), s.clock.Since(start))
	if err != nil {
		return nil, err
	}

	m, err := extract.Extract(text)
	if err != nil {
		s.metrics.ObserveExtractionFailure()
		var nf *extract.NoJSONFoundError
		if errors.As(err, &nf) {
			s.logger.Warn("No valid JSON array found in response", "raw_content", nf.Snippet)
		}
		return nil, err
	}

	s.logger.Debug("Parsed tournaments", "match", m.String())
	return tournament.Decode(m.Items), nil
}

func (s *Service) envelope(sport string, mode Mode, data []tournament.Tournament) *Result {
	if data == nil {
		data = []tournament.Tournament{}
	}
	return &Result{
		Success:     true,
		Sport:       sport,
		Tournaments: data,
		FetchedAt:   s.Now(),
		Count:       len(data),
		Mode:        mode,
	}
}

// guard runs fn, converting a panic into an *UnexpectedError.
func guard(fn func() *Result) (res *Result, err error) {
	defer func() {
		if v := recover(); v != nil {
			res, err = nil, &UnexpectedError{Value: v}
		}
	}()
	return fn(), nil
}

// Describe renders err as the api_error diagnostic shown to clients.
func Describe(err error) string {
	var apiErr *gemini.APIError
	switch {
	case errors.Is(err, gemini.ErrTimeout):
		return "Request timeout - please try again"
	case errors.Is(err, gemini.ErrNetwork):
		return "Connection error - please check your internet connection"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("API request failed: %d", apiErr.StatusCode)
	case errors.Is(err, gemini.ErrNoCandidates):
		return "No candidates in response"
	case errors.Is(err, extract.ErrNoJSONFound):
		return "No valid JSON found in response"
	default:
		return err.Error()
	}
}

func outcome(err error) string {
	var apiErr *gemini.APIError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, gemini.ErrTimeout):
		return "timeout"
	case errors.Is(err, gemini.ErrNetwork):
		return "network_error"
	case errors.As(err, &apiErr):
		return "api_error"
	case errors.Is(err, gemini.ErrNoCandidates):
		return "no_candidates"
	default:
		return "error"
	}
}
