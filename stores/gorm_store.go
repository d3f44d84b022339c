package stores

import (
	"fmt"

	"gorm.io/gorm"
)

// gormStore implements the shared ArtifactStore operations on a connected
// *gorm.DB. SQLiteStore and PostgresStore embed it and own connection
// management.
type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) migrate() error {
	if err := s.db.AutoMigrate(&Artifact{}, &ChatMessage{}); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}

// SaveArtifact inserts a new record or updates an existing one by
// artifact ID.
func (s *gormStore) SaveArtifact(artifact *Artifact) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if artifact.ArtifactID == "" {
		return fmt.Errorf("artifact ID is required")
	}

	var count int64
	if err := s.db.Model(&Artifact{}).Where("artifact_id = ?", artifact.ArtifactID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing artifact: %w", err)
	}
	if count > 0 {
		return s.db.Model(&Artifact{}).Where("artifact_id = ?", artifact.ArtifactID).Updates(artifact).Error
	}
	return s.db.Create(artifact).Error
}

// GetArtifact fetches one record by artifact ID.
func (s *gormStore) GetArtifact(artifactID string) (*Artifact, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var artifact Artifact
	if err := s.db.Where("artifact_id = ?", artifactID).First(&artifact).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch artifact %s: %w", artifactID, err)
	}
	return &artifact, nil
}

// ListArtifacts returns records newest first, optionally filtered by user.
func (s *gormStore) ListArtifacts(userID string) ([]Artifact, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := s.db.Order("created_at DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var artifacts []Artifact
	if err := query.Find(&artifacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return artifacts, nil
}

// SaveChatMessage appends one turn to a conversation, assigning the next
// sequence number.
func (s *gormStore) SaveChatMessage(conversationID, userID, artifactID, role, content string) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var count int64
	if err := s.db.Model(&ChatMessage{}).Where("conversation_id = ?", conversationID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count existing messages: %w", err)
	}

	msg := ChatMessage{
		ConversationID: conversationID,
		UserID:         userID,
		ArtifactID:     artifactID,
		Sequence:       int(count) + 1,
		Role:           role,
		Content:        content,
	}
	return s.db.Create(&msg).Error
}

// FetchChatHistory retrieves turns in sequence order.
// limit: maximum number of turns to retrieve (0 = all); when more exist,
// only the last N are returned.
func (s *gormStore) FetchChatHistory(conversationID string, limit int) ([]ChatMessage, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := s.db.Where("conversation_id = ?", conversationID).Order("sequence ASC")
	if limit > 0 {
		var count int64
		if err := s.db.Model(&ChatMessage{}).Where("conversation_id = ?", conversationID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count messages: %w", err)
		}
		if count > int64(limit) {
			query = query.Offset(int(count) - limit)
		}
	}

	var msgs []ChatMessage
	if err := query.Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	return msgs, nil
}

// Close closes the database connection
func (s *gormStore) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (s *gormStore) Ping() error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
