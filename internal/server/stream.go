package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// handleStream upgrades to WebSocket. Each JSON Request the client sends is
// answered with a planet summary, one message per mesh chunk, the
// placements and a final done message. Failures are reported with an error
// message and the connection stays open.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("websocket read", zap.Error(err))
			}
			return
		}

		if err := s.stream(r, conn, req); err != nil {
			s.log.Debug("websocket write", zap.Error(err))
			return
		}
	}
}

// stream sends one planet. The returned error is a write failure.
func (s *Server) stream(r *http.Request, conn *websocket.Conn, req Request) error {
	p, err := s.generate(r.Context(), req)
	if err != nil {
		return conn.WriteJSON(StatusMessage{Type: msgError, Error: err.Error()})
	}

	summary := Summarize(p)
	summary.Type = msgPlanet
	if err := conn.WriteJSON(summary); err != nil {
		return err
	}
	for i := range p.Chunks {
		if err := conn.WriteJSON(chunkMessage(i, &p.Chunks[i])); err != nil {
			return err
		}
	}
	if err := conn.WriteJSON(PlacementsMessage{Type: msgPlacements, Placements: placementsJSON(p.Placements)}); err != nil {
		return err
	}

	s.log.Debug("planet streamed", zap.String("id", p.ID.String()), zap.Int("chunks", len(p.Chunks)))
	return conn.WriteJSON(StatusMessage{Type: msgDone})
}
