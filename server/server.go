// Package server wires the HTTP surface of the backend: health and home
// endpoints, image processing, artifact analysis, historical Q&A, the
// artifact gallery, and chat over HTTP and WebSocket.
package server

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	heriscience "github.com/heriscience/backend"
	"github.com/heriscience/backend/chatbot"
	"github.com/heriscience/backend/stores"
	"github.com/heriscience/backend/wikipedia"
)

// Version is reported by the home endpoint.
const Version = "1.0.0"

// Server holds the service dependencies injected at startup. All fields
// are read-only after construction, so handlers can run concurrently
// without locking.
type Server struct {
	cfg      *heriscience.Config
	chat     *chatbot.Service
	wiki     *wikipedia.Client
	store    stores.ArtifactStore
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// New constructs a Server. wiki and store may be nil: lookups are skipped
// and the gallery/history endpoints answer 503 respectively.
func New(cfg *heriscience.Config, chat *chatbot.Service, wiki *wikipedia.Client, store stores.ArtifactStore) *Server {
	return &Server{
		cfg:    cfg,
		chat:   chat,
		wiki:   wiki,
		store:  store,
		logger: log.New(os.Stdout, "[server] ", log.LstdFlags),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Routes builds the gin engine with all endpoints registered.
func (s *Server) Routes() *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/", s.handleHome)

	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.POST("/auto-analyze", s.handleAutoAnalyze)
		api.POST("/process-image", s.handleProcessImage)
		api.POST("/analyze-artifact", s.handleAnalyzeArtifact)
		api.POST("/historical-info", s.handleHistoricalInfo)

		api.POST("/chat", s.handleChat)
		api.GET("/chat/history/:conversationID", s.handleChatHistory)
		api.GET("/chat/ws", s.handleChatWS)

		api.POST("/artifacts", s.handleSaveArtifact)
		api.GET("/artifacts", s.handleListArtifacts)
		api.GET("/artifacts/:id", s.handleGetArtifact)
	}

	return router
}

// corsMiddleware mirrors the permissive CORS policy of the original
// deployment: every origin may call the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
