package server

import (
	"net/http"
)

func (h *handlers) reconcile(w http.ResponseWriter, r *http.Request) {
	result, err := h.trigger.ReconcileNow(r.Context())
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
