// internal/server/handlers_vendor.go
package server

import (
	"net/http"

	"recruit-backoffice/internal/vendor"
)

func (s *Server) handleVendorList(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.Vendors.List(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleVendorOnboard(w http.ResponseWriter, r *http.Request) {
	var form vendor.OnboardingForm
	if err := decodeBody(r, &form); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	out, err := s.deps.Vendors.Onboard(r.Context(), &form)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusCreated, out)
}

func (s *Server) handleVendorValidate(w http.ResponseWriter, r *http.Request) {
	var form vendor.OnboardingForm
	if err := decodeBody(r, &form); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Vendors.Validate(&form))
}
