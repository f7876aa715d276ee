// File: internal/wizardui/handlers_ws.go
// Brief: WebSocket live preview: client sends query strings, server replies with the composition.

package wizardui

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/example/kickstart/internal/selection"
	"github.com/example/kickstart/internal/urlstate"
)

// handlePreviewWS keeps one re-render loop per client. Each text message is
// a raw query string (the same encoding the address bar carries); the reply
// is the decoded state plus the composition preview for it. Malformed input
// degrades to defaults exactly like the HTTP surface.
func (s *Server) handlePreviewWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		m := urlstate.DecodeQuery(string(payload), selection.New())
		reply := struct {
			State   stateResponse   `json:"state"`
			Preview previewResponse `json:"preview"`
		}{
			State:   stateOf(m),
			Preview: s.buildPreview(m),
		}
		out, err := json.Marshal(reply)
		if err != nil {
			s.logger.Warn("encode preview", zap.Error(err))
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
			return
		}
	}
}
