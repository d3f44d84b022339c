package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/heriscience/backend/models"
)

// handleChatWS serves the chat contract over a WebSocket: each inbound
// frame is a Chat_Request, each outbound frame a Chat_Response. The
// session ends when the client closes or a write fails.
func (s *Server) handleChatWS(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Printf("WebSocket upgrade failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to upgrade connection"})
		return
	}
	defer conn.Close()

	for {
		var req models.Chat_Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Printf("WebSocket read error: %v", err)
			}
			return
		}
		if req.Message == "" {
			if err := conn.WriteJSON(gin.H{"error": "No message provided"}); err != nil {
				return
			}
			continue
		}

		response := s.chat.Generate(c.Request.Context(), req.Message, req.Artifact_Context)
		s.persistTurn(req, response)

		if err := conn.WriteJSON(models.Chat_Response{
			Response:   response,
			Powered_By: s.chat.ProviderName(),
		}); err != nil {
			s.logger.Printf("WebSocket write error: %v", err)
			return
		}
	}
}
