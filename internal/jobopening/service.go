// internal/jobopening/service.go

// Package jobopening wraps the upstream job-opening resource. The backend
// owns the schema; everything passes through as raw JSON.
package jobopening

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"recruit-backoffice/internal/common/errors"
	httpclient "recruit-backoffice/internal/common/http"
	"recruit-backoffice/internal/common/logger"
)

const resourcePath = "/job-openings/"

type Service struct {
	rest   *httpclient.RESTClient
	logger logger.Logger
}

func NewService(rest *httpclient.RESTClient, log logger.Logger) *Service {
	return &Service{
		rest:   rest,
		logger: log.WithFields(map[string]interface{}{"component": "jobopening"}),
	}
}

func (s *Service) List(ctx context.Context, filters url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.rest.Get(ctx, resourcePath, filters, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.rest.Get(ctx, itemPath(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	if len(payload) == 0 {
		return nil, errors.NewInvalidParameterError("body", "must not be empty")
	}
	var out json.RawMessage
	if err := s.rest.Post(ctx, resourcePath, payload, &out); err != nil {
		return nil, err
	}
	s.logger.Info("job opening created", nil)
	return out, nil
}

func (s *Service) Update(ctx context.Context, id string, payload map[string]interface{}) (json.RawMessage, error) {
	if len(payload) == 0 {
		return nil, errors.NewInvalidParameterError("body", "must not be empty")
	}
	var out json.RawMessage
	if err := s.rest.Put(ctx, itemPath(id), payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.rest.Delete(ctx, itemPath(id))
}

// Search proxies the term search. An empty term is rejected locally; the
// upstream answers it with the full listing, which is never what a search
// box wants.
func (s *Service) Search(ctx context.Context, term string) (json.RawMessage, error) {
	if term == "" {
		return nil, errors.NewInvalidParameterError("term", "must not be empty")
	}
	query := url.Values{}
	query.Set("term", term)
	var out json.RawMessage
	if err := s.rest.Get(ctx, resourcePath+"search/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleStatus flips an opening between active and inactive.
func (s *Service) ToggleStatus(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.rest.Post(ctx, itemPath(id)+"toggle-status/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignCandidate attaches a candidate to an opening.
func (s *Service) AssignCandidate(ctx context.Context, id, candidateID string) (json.RawMessage, error) {
	if candidateID == "" {
		return nil, errors.NewInvalidParameterError("candidate_id", "must not be empty")
	}
	var out json.RawMessage
	body := map[string]string{"candidate_id": candidateID}
	if err := s.rest.Post(ctx, itemPath(id)+"assign-candidate/", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func itemPath(id string) string {
	return fmt.Sprintf("%s%s/", resourcePath, url.PathEscape(id))
}
