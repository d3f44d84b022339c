// Package stores persists artifact gallery records and chat history behind
// the ArtifactStore interface, with SQLite and PostgreSQL backends.
package stores

import (
	"gorm.io/gorm"
)

// Artifact is a processed-artifact gallery record.
type Artifact struct {
	gorm.Model
	ArtifactID        string  `gorm:"uniqueIndex;not null" json:"id"`
	UserID            string  `gorm:"index" json:"user_id"`
	Name              string  `json:"name"`
	Description       string  `gorm:"type:text" json:"description,omitempty"`
	ImageURL          string  `json:"image_url"`
	ProcessedImageURL string  `json:"processed_image_url,omitempty"`
	Origin            string  `json:"origin,omitempty"`
	Era               string  `json:"era,omitempty"`
	ConditionScore    float64 `json:"condition_score,omitempty"`
	// ProcessingType is "super-resolution", "restoration", or "none".
	ProcessingType string `json:"processing_type,omitempty"`
	// MetadataJSON stores the processing metadata object as JSON.
	MetadataJSON string `gorm:"type:json" json:"-"`
}

// ChatMessage is one persisted turn of a conversation.
type ChatMessage struct {
	gorm.Model
	ConversationID string `gorm:"index;not null" json:"conversation_id"`
	UserID         string `gorm:"index" json:"user_id,omitempty"`
	ArtifactID     string `gorm:"index" json:"artifact_id,omitempty"`
	Sequence       int    `gorm:"not null" json:"sequence"`
	Role           string `gorm:"not null" json:"role"` // "user", "assistant"
	Content        string `gorm:"type:text" json:"content"`
}

// ArtifactStore abstracts database operations for the gallery and chat
// history.
type ArtifactStore interface {
	// Artifact operations
	SaveArtifact(artifact *Artifact) error
	GetArtifact(artifactID string) (*Artifact, error)
	ListArtifacts(userID string) ([]Artifact, error)

	// Chat history operations
	SaveChatMessage(conversationID, userID, artifactID, role, content string) error
	FetchChatHistory(conversationID string, limit int) ([]ChatMessage, error)

	// Connection management
	Connect() error
	Close() error

	// Health check
	Ping() error
}

// StoreConfig holds configuration for database stores
type StoreConfig struct {
	Type       string // "sqlite" or "postgres"
	Connection string // file path or DSN
}

// NewStoreConfig creates a new store configuration
func NewStoreConfig(storeType, connection string) *StoreConfig {
	return &StoreConfig{
		Type:       storeType,
		Connection: connection,
	}
}
