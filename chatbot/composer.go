package chatbot

import (
	"strings"

	"github.com/heriscience/backend/models"
)

// SystemPersona is the fixed persona prepended to every outbound request.
const SystemPersona = `You are an expert archaeological AI assistant for Heri-Science, ` +
	`specialized in analyzing historical artifacts, ancient civilizations, and archaeology. ` +
	`You provide accurate, engaging, and educational responses about historical topics.`

// referenceLimit bounds how much of an externally retrieved reference
// summary is merged into the prompt. Truncation cuts at the character
// boundary with no word safety.
const referenceLimit = 300

// Composer builds outbound prompts and message lists from a user message,
// optional artifact context, and an optional retrieved reference summary.
type Composer struct {
	Persona string
}

// NewComposer returns a Composer carrying the default persona.
func NewComposer() *Composer {
	return &Composer{Persona: SystemPersona}
}

// Compose builds the full outbound request for a transport, populating
// both the single-prompt and the role-tagged shapes.
func (c *Composer) Compose(message string, context *models.Artifact_Context, reference string) models.Generation_Request {
	return models.Generation_Request{
		Prompt:   c.ComposePrompt(message, context, reference),
		Messages: c.ComposeMessages(message, context, reference),
	}
}

// ComposePrompt renders a single prompt string for single-turn generation
// transports.
func (c *Composer) ComposePrompt(message string, context *models.Artifact_Context, reference string) string {
	var b strings.Builder
	b.WriteString(c.Persona)
	b.WriteString("\n\n")
	if summary := context.Summary(); summary != "" {
		b.WriteString("Artifact context: ")
		b.WriteString(summary)
		b.WriteString("\n\n")
	}
	if context != nil && context.Has_Image {
		b.WriteString("Note: The user has uploaded an image of the artifact.\n\n")
	}
	if ref := truncateReference(reference); ref != "" {
		b.WriteString("Relevant background: ")
		b.WriteString(ref)
		b.WriteString("\n\n")
	}
	b.WriteString("User question: ")
	b.WriteString(message)
	return b.String()
}

// ComposeMessages renders an ordered list of role-tagged turns for
// chat-completion style transports.
func (c *Composer) ComposeMessages(message string, context *models.Artifact_Context, reference string) []models.Message {
	messages := []models.Message{{Role: "system", Content: c.Persona}}
	if summary := context.Summary(); summary != "" {
		messages = append(messages, models.Message{Role: "system", Content: "Artifact context: " + summary})
	}
	if ref := truncateReference(reference); ref != "" {
		messages = append(messages, models.Message{Role: "system", Content: "Relevant background: " + ref})
	}
	messages = append(messages, models.Message{Role: "user", Content: message})
	return messages
}

func truncateReference(reference string) string {
	if reference == "" {
		return ""
	}
	if len(reference) > referenceLimit {
		return reference[:referenceLimit] + "..."
	}
	return reference
}
