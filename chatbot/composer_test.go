package chatbot

import (
	"strings"
	"testing"

	"github.com/heriscience/backend/models"
)

func TestComposePrompt_PersonaFirst(t *testing.T) {
	prompt := NewComposer().ComposePrompt("what is this?", nil, "")
	if !strings.HasPrefix(prompt, SystemPersona) {
		t.Error("prompt does not start with the system persona")
	}
	if !strings.Contains(prompt, "User question: what is this?") {
		t.Errorf("prompt missing user question: %s", prompt)
	}
}

func TestComposePrompt_ArtifactSummary(t *testing.T) {
	ctx := &models.Artifact_Context{
		Artifact_Type: "amphora",
		Civilization:  "Greek",
		Period:        "Hellenistic",
	}
	prompt := NewComposer().ComposePrompt("tell me more", ctx, "")
	for _, want := range []string{"amphora", "Greek", "Hellenistic"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing context value %q", want)
		}
	}
}

func TestComposePrompt_ReferenceTruncation(t *testing.T) {
	reference := strings.Repeat("a", 400)
	prompt := NewComposer().ComposePrompt("query", nil, reference)

	want := strings.Repeat("a", 300) + "..."
	if !strings.Contains(prompt, want) {
		t.Error("prompt missing truncated reference with ellipsis marker")
	}
	if strings.Contains(prompt, strings.Repeat("a", 301)) {
		t.Error("reference was not truncated to 300 characters")
	}
}

func TestComposePrompt_ShortReferenceUntouched(t *testing.T) {
	prompt := NewComposer().ComposePrompt("query", nil, "short fact")
	if !strings.Contains(prompt, "Relevant background: short fact") {
		t.Errorf("short reference should pass through untouched: %s", prompt)
	}
	if strings.Contains(prompt, "short fact...") {
		t.Error("short reference should not gain an ellipsis")
	}
}

func TestComposeMessages_Shape(t *testing.T) {
	ctx := &models.Artifact_Context{Artifact_Type: "seal"}
	msgs := NewComposer().ComposeMessages("identify this", ctx, "background text")

	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "system" || msgs[0].Content != SystemPersona {
		t.Error("first message must be the system persona")
	}
	last := msgs[len(msgs)-1]
	if last.Role != "user" || last.Content != "identify this" {
		t.Errorf("last message must be the user turn, got %+v", last)
	}
}

func TestComposeMessages_MinimalShape(t *testing.T) {
	msgs := NewComposer().ComposeMessages("hello", nil, "")
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages (persona + user), got %d", len(msgs))
	}
}
