package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heriscience/backend/models"
	"github.com/heriscience/backend/processing"
	"github.com/heriscience/backend/stores"

	// Register decoders for uploaded image formats.
	_ "image/gif"
	_ "image/png"
)

const jpegQuality = 90

func (s *Server) handleHome(c *gin.Context) {
	aiModels := "fallback"
	if s.chat.Ready() {
		aiModels = "loaded"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Heri-Science AI Backend",
		"version":   Version,
		"status":    "running",
		"ai_models": aiModels,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	aiStatus := "basic"
	if s.chat.Ready() {
		aiStatus = "ready"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"ai_status": aiStatus,
	})
}

// handleAutoAnalyze decodes a base64 or data-URL image and runs the
// automatic analyzer.
func (s *Server) handleAutoAnalyze(c *gin.Context) {
	var req struct {
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	imageData := req.Image
	if idx := strings.Index(imageData, ","); idx >= 0 {
		imageData = imageData[idx+1:]
	}
	imageBytes, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid base64 image data: " + err.Error()})
		return
	}

	analysis, err := processing.AutoAnalyze(c.Request.Context(), imageBytes)
	if err != nil {
		s.logger.Printf("Auto-analysis error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}

// handleProcessImage runs the super-resolution or restoration pipeline on
// a multipart upload and returns the result as a JPEG data URL.
func (s *Server) handleProcessImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
		return
	}

	processType := c.DefaultPostForm("process_type", "super-resolution")
	mode := c.DefaultPostForm("mode", "auto")
	intensity := 0.75
	if raw := c.PostForm("intensity"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			intensity = parsed
		}
	}

	if processType != "super-resolution" && processType != "restoration" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid process type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode image: " + err.Error()})
		return
	}

	var processed image.Image
	var meta processing.Metadata
	var message string

	switch processType {
	case "super-resolution":
		processed, meta, err = processing.EnhanceSuperResolution(img, intensity, mode)
		if err == nil {
			message = fmt.Sprintf("Super-Resolution Complete! Mode: %s | Time: %s", meta.ProcessingMode, meta.ProcessingTime)
		}
	case "restoration":
		processed, meta, err = processing.RestoreArtifact(img, intensity, mode)
		if err == nil {
			message = fmt.Sprintf("Restoration Complete! Mode: %s | Time: %s", meta.ProcessingMode, meta.ProcessingTime)
		}
	}
	if err != nil {
		s.logger.Printf("Processing error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, processed, &jpeg.Options{Quality: jpegQuality}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode image: " + err.Error()})
		return
	}
	processedURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	// Best effort copy into the processed directory for the cleanup job
	// to manage; failures never block the response.
	s.saveProcessedCopy(buf.Bytes())

	c.JSON(http.StatusOK, gin.H{
		"status":            "success",
		"processedImageUrl": processedURL,
		"message":           message,
		"metadata":          meta,
		"original_size":     fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
		"processed_size":    fmt.Sprintf("%dx%d", processed.Bounds().Dx(), processed.Bounds().Dy()),
	})
}

func (s *Server) saveProcessedCopy(data []byte) {
	if s.cfg.ProcessedDir == "" {
		return
	}
	name := filepath.Join(s.cfg.ProcessedDir, uuid.NewString()+".jpg")
	if err := os.WriteFile(name, data, 0644); err != nil {
		s.logger.Printf("Warning: failed to save processed copy: %v", err)
	}
}

func (s *Server) handleAnalyzeArtifact(c *gin.Context) {
	var req struct {
		ImageURL string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image URL provided"})
		return
	}

	analysis := processing.AnalyzeArtifact(req.ImageURL)
	c.JSON(http.StatusOK, analysis)
}

// handleHistoricalInfo merges an optional Wikipedia lookup with a
// generation-service answer. AI and lookup failures degrade to fallback
// text; the endpoint never errors for upstream outages.
func (s *Server) handleHistoricalInfo(c *gin.Context) {
	var req models.Historical_Info_Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var wikiInfo *models.Wikipedia_Info
	if req.UseWikipedia() && req.Artifact_Context != nil && s.wiki != nil {
		lookupQuery := req.Artifact_Context.Artifact_Type
		if lookupQuery == "" {
			lookupQuery = req.Query
		}
		info, err := s.wiki.Lookup(c.Request.Context(), lookupQuery)
		if err != nil {
			s.logger.Printf("Wikipedia fetch error: %v", err)
			// Continue without Wikipedia info
		} else {
			wikiInfo = info
		}
	}

	reference := ""
	if wikiInfo != nil {
		reference = wikiInfo.Summary
	}
	information := s.chat.GenerateWithReference(c.Request.Context(), req.Query, req.Artifact_Context, reference)

	aiReady := s.chat.Ready()
	provider := s.chat.ProviderName()

	sources := []string{provider, "Wikipedia", "Archaeological databases"}
	if wikiInfo == nil {
		sources = append(sources[:1], sources[2:]...)
	}

	confidence := "Moderate"
	if aiReady && wikiInfo != nil {
		confidence = "Very High"
	} else if wikiInfo != nil {
		confidence = "High"
	}

	poweredBy := "Local AI"
	switch {
	case aiReady && wikiInfo != nil:
		poweredBy = provider + " + Wikipedia"
	case wikiInfo != nil:
		poweredBy = "Wikipedia"
	case aiReady:
		poweredBy = provider
	}

	c.JSON(http.StatusOK, models.Historical_Info_Response{
		Information: information,
		Wikipedia:   wikiInfo,
		Sources:     sources,
		Confidence:  confidence,
		Powered_By:  poweredBy,
	})
}

func (s *Server) handleChat(c *gin.Context) {
	var req models.Chat_Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	response := s.chat.Generate(c.Request.Context(), req.Message, req.Artifact_Context)
	s.persistTurn(req, response)

	c.JSON(http.StatusOK, models.Chat_Response{
		Response:   response,
		Powered_By: s.chat.ProviderName(),
	})
}

// persistTurn records both sides of a chat exchange when a store and a
// conversation ID are present. Storage failures are logged, never surfaced.
func (s *Server) persistTurn(req models.Chat_Request, response string) {
	if s.store == nil || req.Conversation_ID == "" {
		return
	}
	artifactID := ""
	if req.Artifact_Context != nil {
		artifactID = req.Artifact_Context.Image_URL
	}
	if err := s.store.SaveChatMessage(req.Conversation_ID, req.User_ID, artifactID, "user", req.Message); err != nil {
		s.logger.Printf("Warning: failed to save user message: %v", err)
	}
	if err := s.store.SaveChatMessage(req.Conversation_ID, req.User_ID, artifactID, "assistant", response); err != nil {
		s.logger.Printf("Warning: failed to save assistant message: %v", err)
	}
}

func (s *Server) handleChatHistory(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat history storage not configured"})
		return
	}
	conversationID := c.Param("conversationID")

	msgs, err := s.store.FetchChatHistory(conversationID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation_id": conversationID, "messages": msgs})
}

func (s *Server) handleSaveArtifact(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "gallery storage not configured"})
		return
	}

	var artifact stores.Artifact
	if err := c.ShouldBindJSON(&artifact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if artifact.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image URL provided"})
		return
	}
	if artifact.ArtifactID == "" {
		artifact.ArtifactID = uuid.NewString()
	}

	if err := s.store.SaveArtifact(&artifact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "id": artifact.ArtifactID})
}

func (s *Server) handleListArtifacts(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "gallery storage not configured"})
		return
	}

	artifacts, err := s.store.ListArtifacts(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artifacts": artifacts})
}

func (s *Server) handleGetArtifact(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "gallery storage not configured"})
		return
	}

	artifact, err := s.store.GetArtifact(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artifact not found"})
		return
	}
	c.JSON(http.StatusOK, artifact)
}
