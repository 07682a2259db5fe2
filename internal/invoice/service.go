// internal/invoice/service.go
package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"recruit-backoffice/internal/common/errors"
	httpclient "recruit-backoffice/internal/common/http"
	"recruit-backoffice/internal/common/logger"
	"recruit-backoffice/internal/common/validation"
)

const resourcePath = "/invoices/"

// Service is the thin wrapper over the upstream invoice resource plus the
// local tax calculator. Upstream payloads pass through as raw JSON; this
// layer never invents a schema the backend does not publish. No retry, no
// caching, callers re-fetch after mutation.
type Service struct {
	rest      *httpclient.RESTClient
	calc      *Calculator
	validator *validation.Validator
	logger    logger.Logger
}

func NewService(rest *httpclient.RESTClient, calc *Calculator, v *validation.Validator, log logger.Logger) *Service {
	return &Service{
		rest:      rest,
		calc:      calc,
		validator: v,
		logger:    log.WithFields(map[string]interface{}{"component": "invoice"}),
	}
}

// Calculate runs the tax math without touching the upstream.
func (s *Service) Calculate(in CalcInput) Breakdown {
	return s.calc.Calculate(in)
}

// Validate runs field validation without submitting anything.
func (s *Service) Validate(form *Form) *validation.ValidationResult {
	return s.validator.ValidateStruct(form)
}

// List proxies the invoice listing with whatever filters the caller sends.
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

// Create validates the form, attaches the derived money block and submits.
// Validation failures never reach the upstream.
func (s *Service) Create(ctx context.Context, form *Form) (json.RawMessage, error) {
	if result := s.validator.ValidateStruct(form); !result.Valid {
		return nil, validationError(result)
	}

	payload := s.withBreakdown(form)
	var out json.RawMessage
	if err := s.rest.Post(ctx, resourcePath, payload, &out); err != nil {
		return nil, err
	}
	s.logger.Info("invoice created", map[string]interface{}{"candidate_id": form.CandidateID})
	return out, nil
}

func (s *Service) Update(ctx context.Context, id string, form *Form) (json.RawMessage, error) {
	if result := s.validator.ValidateStruct(form); !result.Valid {
		return nil, validationError(result)
	}

	var out json.RawMessage
	if err := s.rest.Put(ctx, itemPath(id), s.withBreakdown(form), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PartialUpdate patches only the fields the caller supplies. No derived
// block is attached because the amounts may not be among them.
func (s *Service) PartialUpdate(ctx context.Context, id string, patch map[string]interface{}) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.rest.Patch(ctx, itemPath(id), patch, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.rest.Delete(ctx, itemPath(id))
}

func (s *Service) DashboardStats(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.rest.Get(ctx, resourcePath+"dashboard_stats/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ChangeStatus(ctx context.Context, id, status string) (json.RawMessage, error) {
	if status == "" {
		return nil, errors.NewInvalidParameterError("status", "must not be empty")
	}
	var out json.RawMessage
	body := map[string]string{"status": status}
	if err := s.rest.Post(ctx, itemPath(id)+"change_status/", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) GenerateInvoiceNumber(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.rest.Get(ctx, resourcePath+"generate_invoice_number/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CandidatesForInvoice lists candidates eligible for invoicing.
func (s *Service) CandidatesForInvoice(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.rest.Get(ctx, resourcePath+"candidates_for_invoice/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadInvoice fetches the rendered document. The bytes pass through
// untouched together with the upstream content type.
func (s *Service) DownloadInvoice(ctx context.Context, id string) ([]byte, string, error) {
	return s.rest.Download(ctx, itemPath(id)+"download_invoice/")
}

// withBreakdown merges the form with its derived money block the way the
// backend expects invoice submissions.
func (s *Service) withBreakdown(form *Form) map[string]interface{} {
	breakdown := s.calc.Calculate(CalcInput{
		CTC:              form.CTC,
		PlacementType:    form.PlacementType,
		PlacementPercent: form.PlacementPercent,
		PlacementFee:     form.PlacementFee,
		ClientState:      form.ClientState,
	})

	payload := map[string]interface{}{}
	if data, err := json.Marshal(form); err == nil {
		_ = json.Unmarshal(data, &payload)
	}
	payload["placement_amount"] = breakdown.PlacementAmount.String()
	payload["cgst"] = breakdown.CGST.String()
	payload["sgst"] = breakdown.SGST.String()
	payload["igst"] = breakdown.IGST.String()
	payload["total_gst"] = breakdown.TotalGST.String()
	payload["total_amount"] = breakdown.TotalAmount.String()
	return payload
}

func itemPath(id string) string {
	return fmt.Sprintf("%s%s/", resourcePath, url.PathEscape(id))
}

func validationError(result *validation.ValidationResult) error {
	details := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		details = append(details, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return errors.NewValidationFailedError(strings.Join(details, "; "))
}
