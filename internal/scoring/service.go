// internal/scoring/service.go
package scoring

import (
	"context"
	"fmt"

	httpclient "recruit-backoffice/internal/common/http"
	"recruit-backoffice/internal/common/logger"
	"recruit-backoffice/internal/common/metrics"
)

// Service wires the pure engine to the upstream scoring-data endpoint. The
// backend owns persistence; this layer only pushes the fields the scoring
// form manages and recomputes the derived score for the response.
type Service struct {
	rest   *httpclient.RESTClient
	engine *Engine
	logger logger.Logger
}

func NewService(rest *httpclient.RESTClient, engine *Engine, log logger.Logger) *Service {
	return &Service{
		rest:   rest,
		engine: engine,
		logger: log.WithFields(map[string]interface{}{"component": "scoring"}),
	}
}

// Engine exposes the underlying calculator for callers that only need the
// pure computation.
func (s *Service) Engine() *Engine {
	return s.engine
}

// Calculate runs the pure engine and records the classification metric.
func (s *Service) Calculate(input *Input) *Result {
	result := s.engine.Calculate(input)
	metrics.ScoringCalculationsTotal.WithLabelValues(result.CandidateType).Inc()
	return result
}

// GetCandidateScoring fetches the stored assessment record for a candidate.
func (s *Service) GetCandidateScoring(ctx context.Context, candidateID string) (*Input, error) {
	var input Input
	path := fmt.Sprintf("/candidates/%s/scoring-data/", candidateID)
	if err := s.rest.Get(ctx, path, nil, &input); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("scoring-data", "error").Inc()
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("scoring-data", "success").Inc()
	return &input, nil
}

// UpdateCandidateScoring partially updates the candidate's scoring data
// upstream and returns the freshly derived score. Only the fields the
// scoring form manages are sent.
func (s *Service) UpdateCandidateScoring(ctx context.Context, candidateID string, input *Input) (*Result, error) {
	path := fmt.Sprintf("/candidates/%s/scoring-data/", candidateID)
	if err := s.rest.Patch(ctx, path, input, nil); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("scoring-data", "error").Inc()
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("scoring-data", "success").Inc()

	result := s.Calculate(input)
	s.logger.Info("scoring data updated", map[string]interface{}{
		"candidateId":   candidateID,
		"totalScore":    result.TotalScore,
		"candidateType": result.CandidateType,
	})
	return result, nil
}
