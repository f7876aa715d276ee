package wizardui

import (
	"net/http"
)

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/preview", s.handlePreview)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/download", s.handleDownload)
	mux.HandleFunc("/ws/preview", s.handlePreviewWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
