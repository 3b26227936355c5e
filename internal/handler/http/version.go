package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/readsync/internal/utils"
)

// getServerVersion answers with the bare version string, or with the full
// build info when the client asks for JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		info := h.services.AppInfoService.GetBuildInfo(r.Context())
		if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
			h.requestLogger(r).Err(err).Msg("error writing build info")
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
