package server

import (
	"net/http"

	"github.com/qdm12/ipa-dnsrecord/internal/dnsrecord"
)

type recordResponse struct {
	Zone   string           `json:"zone"`
	Name   string           `json:"name"`
	Found  bool             `json:"found"`
	Record dnsrecord.Record `json:"record,omitempty"`
}

func (h *handlers) getRecord(w http.ResponseWriter, r *http.Request) {
	record, found, err := h.finder.FindRecord(r.Context(), h.zone, h.name)
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, recordResponse{
		Zone:   h.zone,
		Name:   h.name,
		Found:  found,
		Record: record,
	})
}
