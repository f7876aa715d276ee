// File: internal/wizardui/handlers_api.go
// Brief: JSON API handlers: decoded state, composition preview, download history.

package wizardui

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/kickstart/internal/compose"
	"github.com/example/kickstart/internal/selection"
)

type stateResponse struct {
	Page             string   `json:"page"`
	DataFormats      []string `json:"dataFormats"`
	PrimaryDatabase  string   `json:"primaryDatabase,omitempty"`
	LoggingFramework string   `json:"loggingFramework,omitempty"`
	PreferredEditor  string   `json:"preferredEditor,omitempty"`
	ProjectName      string   `json:"projectName"`
}

type previewFile struct {
	Path string `json:"path"`
	Size int    `json:"size"`
}

type previewResponse struct {
	Files            []previewFile `json:"files"`
	Dependencies     []string      `json:"dependencies"`
	TestDependencies []string      `json:"testDependencies"`
}

func stateOf(m selection.Model) stateResponse {
	resp := stateResponse{
		Page:             string(m.Page),
		DataFormats:      []string{},
		PrimaryDatabase:  string(m.Database),
		LoggingFramework: string(m.Logging),
		PreferredEditor:  string(m.Editor),
		ProjectName:      m.ProjectName,
	}
	for _, f := range m.SelectedFormats() {
		resp.DataFormats = append(resp.DataFormats, string(f))
	}
	return resp
}

func (s *Server) buildPreview(m selection.Model) previewResponse {
	resp := previewResponse{
		Files:            []previewFile{},
		Dependencies:     []string{},
		TestDependencies: []string{},
	}
	for _, f := range compose.Files(m, s.opts) {
		resp.Files = append(resp.Files, previewFile{Path: f.Path, Size: len(f.Body)})
	}
	for _, d := range compose.Dependencies(m, s.opts) {
		resp.Dependencies = append(resp.Dependencies, d.Name+":"+d.Version)
	}
	for _, d := range compose.TestDependencies(m) {
		resp.TestDependencies = append(resp.TestDependencies, d.Name+":"+d.Version)
	}
	return resp
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, stateOf(s.decodeModel(r)))
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.buildPreview(s.decodeModel(r)))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.store == nil {
		writeJSON(w, http.StatusOK, map[string]any{"downloads": []downloadRecord{}})
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}
	records, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []downloadRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"downloads": records})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func parseInt(v string, def int) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
