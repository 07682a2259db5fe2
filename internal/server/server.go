// internal/server/server.go

// Package server is the HTTP surface: method+pattern routes on the stdlib
// mux, request-id/logging middleware and per-route metrics. Handlers stay
// thin; every decision of consequence lives in the domain services.
package server

import (
	"context"
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recruit-backoffice/internal/calendar"
	"recruit-backoffice/internal/common/logger"
	"recruit-backoffice/internal/common/observability"
	"recruit-backoffice/internal/handoff"
	"recruit-backoffice/internal/invoice"
	"recruit-backoffice/internal/jobopening"
	"recruit-backoffice/internal/notify"
	"recruit-backoffice/internal/scoring"
	"recruit-backoffice/internal/vendor"
)

// Probe reports reachability of one dependency for the health endpoint.
type Probe func(ctx context.Context) error

// Deps carries everything the HTTP layer serves.
type Deps struct {
	Scoring  *scoring.Service
	Calendar *calendar.Service
	Invoices *invoice.Service
	Jobs     *jobopening.Service
	Vendors  *vendor.Service
	Handoff  *handoff.Store
	Notify   *notify.Broadcaster
	Probes   map[string]Probe
	Obs      *observability.Observability
	Logger   logger.Logger
}

type Server struct {
	deps   Deps
	logger logger.Logger
}

func New(deps Deps) *Server {
	return &Server{
		deps:   deps,
		logger: deps.Logger.WithFields(map[string]interface{}{"component": "server"}),
	}
}

// Handler builds the API mux with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	s.route(mux, "POST /v1/scoring/calculate", s.handleScoringCalculate)
	s.route(mux, "GET /v1/candidates/{id}/scoring", s.handleGetCandidateScoring)
	s.route(mux, "PATCH /v1/candidates/{id}/scoring", s.handleUpdateCandidateScoring)

	s.route(mux, "GET /v1/calendar", s.handleCalendarMonth)
	s.route(mux, "GET /v1/calendar/{date}", s.handleCalendarDay)
	s.route(mux, "POST /v1/calendar/refresh", s.handleCalendarRefresh)

	s.route(mux, "POST /v1/invoices/calculate", s.handleInvoiceCalculate)
	s.route(mux, "POST /v1/invoices/validate", s.handleInvoiceValidate)
	s.route(mux, "GET /v1/invoices", s.handleInvoiceList)
	s.route(mux, "POST /v1/invoices", s.handleInvoiceCreate)
	s.route(mux, "GET /v1/invoices/dashboard_stats", s.handleInvoiceDashboardStats)
	s.route(mux, "GET /v1/invoices/generate_invoice_number", s.handleInvoiceNumber)
	s.route(mux, "GET /v1/invoices/candidates_for_invoice", s.handleInvoiceCandidates)
	s.route(mux, "GET /v1/invoices/{id}", s.handleInvoiceGet)
	s.route(mux, "PUT /v1/invoices/{id}", s.handleInvoiceUpdate)
	s.route(mux, "PATCH /v1/invoices/{id}", s.handleInvoicePatch)
	s.route(mux, "DELETE /v1/invoices/{id}", s.handleInvoiceDelete)
	s.route(mux, "POST /v1/invoices/{id}/change_status", s.handleInvoiceChangeStatus)
	s.route(mux, "GET /v1/invoices/{id}/download", s.handleInvoiceDownload)

	s.route(mux, "GET /v1/job-openings", s.handleJobList)
	s.route(mux, "POST /v1/job-openings", s.handleJobCreate)
	s.route(mux, "GET /v1/job-openings/search", s.handleJobSearch)
	s.route(mux, "GET /v1/job-openings/{id}", s.handleJobGet)
	s.route(mux, "PUT /v1/job-openings/{id}", s.handleJobUpdate)
	s.route(mux, "DELETE /v1/job-openings/{id}", s.handleJobDelete)
	s.route(mux, "POST /v1/job-openings/{id}/toggle-status", s.handleJobToggleStatus)
	s.route(mux, "POST /v1/job-openings/{id}/assign-candidate", s.handleJobAssignCandidate)

	s.route(mux, "GET /v1/vendors", s.handleVendorList)
	s.route(mux, "POST /v1/vendors", s.handleVendorOnboard)
	s.route(mux, "POST /v1/vendors/validate", s.handleVendorValidate)

	s.route(mux, "POST /v1/handoff", s.handleHandoffPut)
	s.route(mux, "GET /v1/handoff/{token}", s.handleHandoffClaim)

	s.route(mux, "GET /healthz", s.handleHealth)

	return withRequestID(withLogging(s.logger, mux))
}

// DebugHandler serves metrics and pprof on the side port.
func (s *Server) DebugHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

func (s *Server) route(mux *http.ServeMux, pattern string, handler http.HandlerFunc) {
	mux.HandleFunc(pattern, instrument(s.deps.Obs, pattern, handler))
}
