// internal/invoice/service_test.go
package invoice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit-backoffice/internal/common/errors"
	httpclient "recruit-backoffice/internal/common/http"
	"recruit-backoffice/internal/common/logger"
	"recruit-backoffice/internal/common/validation"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	rest := httpclient.NewRESTClient(upstream.URL, 5*time.Second, nil)
	return NewService(rest, testCalculator(), validation.New(), logger.NewTestLogger(t))
}

func validForm() *Form {
	return &Form{
		CandidateID:      "417",
		CandidateName:    "Priya Raman",
		ClientName:       "Acme Industries",
		ClientState:      "Tamil Nadu",
		ClientPAN:        "ABCDE1234F",
		ClientGSTIN:      "22ABCDE1234F1Z5",
		InvoiceDate:      "2025-03-14",
		CTC:              "1200000",
		PlacementType:    PlacementPercentage,
		PlacementPercent: "10",
	}
}

func TestCreateAttachesBreakdown(t *testing.T) {
	var posted map[string]interface{}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/invoices/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 9}`))
	})

	out, err := svc.Create(context.Background(), validForm())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 9}`, string(out))

	assert.Equal(t, "120000.00", posted["placement_amount"])
	assert.Equal(t, "10800.00", posted["cgst"])
	assert.Equal(t, "10800.00", posted["sgst"])
	assert.Equal(t, "0.00", posted["igst"])
	assert.Equal(t, "141600.00", posted["total_amount"])
	assert.Equal(t, "Priya Raman", posted["candidate_name"])
}

func TestCreateBlocksInvalidForms(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("validation failures must never reach the upstream")
	})

	tests := []struct {
		name   string
		mutate func(*Form)
	}{
		{"missing candidate name", func(f *Form) { f.CandidateName = "" }},
		{"bad pan", func(f *Form) { f.ClientPAN = "12345ABCDE" }},
		{"bad gstin", func(f *Form) { f.ClientGSTIN = "33ABCDE1234F1Z5" }},
		{"bad placement type", func(f *Form) { f.PlacementType = "hourly" }},
		{"bad invoice date", func(f *Form) { f.InvoiceDate = "14-03-2025" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)
			_, err := svc.Create(context.Background(), form)
			var stdErr *errors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
		})
	}
}

func TestValidateReportsFields(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})

	form := validForm()
	form.ClientPAN = "bad"
	result := svc.Validate(form)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "client_pan", result.Errors[0].Field)
}

func TestListPassesFilters(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1}]`))
	})

	filters := url.Values{}
	filters.Set("status", "pending")
	out, err := svc.List(context.Background(), filters)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 1}]`, string(out))
}

func TestUpstreamErrorBodyPassesThrough(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"invoice number already exists"}`))
	})

	_, err := svc.Get(context.Background(), "12")
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeUpstreamRequestFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "invoice number already exists")
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := svc.Get(context.Background(), "999")
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeResourceNotFound, stdErr.Code)
}

func TestChangeStatus(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoices/12/change_status/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "paid", body["status"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"paid"}`))
	})

	_, err := svc.ChangeStatus(context.Background(), "12", "paid")
	require.NoError(t, err)

	_, err = svc.ChangeStatus(context.Background(), "12", "")
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeInvalidParameter, stdErr.Code)
}

func TestDownloadInvoice(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoices/12/download_invoice/", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, "%PDF-1.4 stub")
	})

	data, contentType, err := svc.DownloadInvoice(context.Background(), "12")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "%PDF-1.4 stub", string(data))
}

func TestDelete(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/invoices/12/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, svc.Delete(context.Background(), "12"))
}
