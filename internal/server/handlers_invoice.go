// internal/server/handlers_invoice.go
package server

import (
	"net/http"

	"recruit-backoffice/internal/invoice"
)

func (s *Server) handleInvoiceCalculate(w http.ResponseWriter, r *http.Request) {
	var in invoice.CalcInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Invoices.Calculate(in))
}

func (s *Server) handleInvoiceValidate(w http.ResponseWriter, r *http.Request) {
	var form invoice.Form
	if err := decodeBody(r, &form); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Invoices.Validate(&form))
}

func (s *Server) handleInvoiceList(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.Invoices.List(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleInvoiceCreate(w http.ResponseWriter, r *http.Request) {
	var form invoice.Form
	if err := decodeBody(r, &form); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	out, err := s.deps.Invoices.Create(r.Context(), &form)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusCreated, out)
}

func (s *Server) handleInvoiceGet(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.Invoices.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleInvoiceUpdate(w http.ResponseWriter, r *http.Request) {
	var form invoice.Form
	if err := decodeBody(r, &form); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	out, err := s.deps.Invoices.Update(r.Context(), r.PathValue("id"), &form)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleInvoicePatch(w http.ResponseWriter, r *http.Request) {
	var patch map[string]interface{}
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	out, err := s.deps.Invoices.PartialUpdate(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleInvoiceDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Invoices.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleInvoiceDashboardStats(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.Invoices.DashboardStats(r.Context())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleInvoiceNumber(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.Invoices.GenerateInvoiceNumber(r.Context())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleInvoiceCandidates(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.Invoices.CandidatesForInvoice(r.Context())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleInvoiceChangeStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	out, err := s.deps.Invoices.ChangeStatus(r.Context(), r.PathValue("id"), body.Status)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleInvoiceDownload(w http.ResponseWriter, r *http.Request) {
	data, contentType, err := s.deps.Invoices.DownloadInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
