package models

import "strings"

// Chat_Request is the inbound payload for the chat endpoints.
type Chat_Request struct {
	Message          string            `json:"message"`
	Artifact_Context *Artifact_Context `json:"artifact_context,omitempty"`
	// Conversation_ID optionally ties the turn to a persisted conversation.
	Conversation_ID string `json:"conversation_id,omitempty"`
	// User_ID optionally identifies the calling user for history storage.
	User_ID string `json:"user_id,omitempty"`
}

// Artifact_Context carries caller-supplied hints about a historical object.
// All keys are optional; unknown keys sent by clients are ignored.
type Artifact_Context struct {
	Civilization  string `json:"civilization,omitempty"`
	Period        string `json:"period,omitempty"`
	Artifact_Type string `json:"artifact_type,omitempty"`
	Has_Image     bool   `json:"hasImage,omitempty"`
	Image_URL     string `json:"imageUrl,omitempty"`
}

// IsEmpty reports whether no context field carries a value.
func (c *Artifact_Context) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Civilization == "" && c.Period == "" && c.Artifact_Type == "" &&
		!c.Has_Image && c.Image_URL == ""
}

// Summary renders the context as a one-line factual description, used when
// personalizing an outbound prompt. Empty fields are skipped.
func (c *Artifact_Context) Summary() string {
	if c.IsEmpty() {
		return ""
	}
	parts := []string{}
	if c.Artifact_Type != "" {
		parts = append(parts, "artifact type: "+c.Artifact_Type)
	}
	if c.Civilization != "" {
		parts = append(parts, "civilization: "+c.Civilization)
	}
	if c.Period != "" {
		parts = append(parts, "period: "+c.Period)
	}
	return strings.Join(parts, ", ")
}

// Historical_Info_Request is the inbound payload for /api/historical-info.
type Historical_Info_Request struct {
	Query            string            `json:"query"`
	Artifact_Context *Artifact_Context `json:"artifact_context,omitempty"`
	Use_Wikipedia    *bool             `json:"use_wikipedia,omitempty"`
}

// UseWikipedia resolves the optional flag, defaulting to true.
func (r *Historical_Info_Request) UseWikipedia() bool {
	if r.Use_Wikipedia == nil {
		return true
	}
	return *r.Use_Wikipedia
}
