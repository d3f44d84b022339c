package chatbot

import (
	"strings"
	"testing"

	"github.com/heriscience/backend/models"
)

func TestResolve_GreetingAnyCasing(t *testing.T) {
	for _, msg := range []string{"hello", "HELLO there", "hi there", "Hey, what's up", "Greetings friend"} {
		got := Resolve(msg, nil)
		if !strings.Contains(got, "archaeological AI assistant") {
			t.Errorf("expected greeting template for %q, got: %.60s", msg, got)
		}
	}
}

func TestResolve_GreetingNotInsideWords(t *testing.T) {
	// "this" and "history" contain "hi" but are not greetings.
	got := Resolve("history of mesopotamia", nil)
	if strings.Contains(got, "What would you like to explore?") {
		t.Error("greeting template fired inside the word 'history'")
	}
}

func TestResolve_ArtifactWithContext(t *testing.T) {
	ctx := &models.Artifact_Context{
		Artifact_Type: "vase",
		Civilization:  "Minoan",
		Period:        "Bronze Age",
	}
	got := Resolve("tell me about this", ctx)
	for _, want := range []string{"vase", "Minoan", "Bronze Age"} {
		if !strings.Contains(got, want) {
			t.Errorf("artifact template missing %q:\n%s", want, got)
		}
	}
}

func TestResolve_ArtifactContextPlaceholders(t *testing.T) {
	ctx := &models.Artifact_Context{Has_Image: true}
	got := Resolve("describe it", ctx)
	for _, want := range []string{"Unknown civilization", "Ancient period"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected placeholder %q in:\n%s", want, got)
		}
	}
}

func TestResolve_NoContextSkipsArtifactCategory(t *testing.T) {
	got := Resolve("tell me about civilizations", nil)
	if !strings.Contains(got, "Ancient Civilizations Overview") {
		t.Errorf("expected civilization overview without context, got: %.60s", got)
	}
}

func TestResolve_RegionSpecificBeforeGeneric(t *testing.T) {
	cases := map[string]string{
		"show me egyptian pyramids":        "Gift of the Nile",
		"the roman empire fascinates me":   "Masters of the Ancient World",
		"greek philosophy and the olympic": "Cradle of Western Civilization",
	}
	for msg, want := range cases {
		got := Resolve(msg, nil)
		if !strings.Contains(got, want) {
			t.Errorf("message %q: expected template containing %q, got: %.60s", msg, want, got)
		}
	}
}

func TestResolve_RegionBeatsArtifactContext(t *testing.T) {
	// Region-specific categories outrank artifact-with-context.
	ctx := &models.Artifact_Context{Artifact_Type: "vase"}
	got := Resolve("tell me about egypt", ctx)
	if !strings.Contains(got, "Gift of the Nile") {
		t.Errorf("expected Egypt template to win, got: %.60s", got)
	}
}

func TestResolve_ImageAnalysis(t *testing.T) {
	got := Resolve("can you analyze this picture", nil)
	if !strings.Contains(got, "Image Analysis") {
		t.Errorf("expected image analysis template, got: %.60s", got)
	}
}

func TestResolve_CreativeMode(t *testing.T) {
	got := Resolve("give me a creative narrative", nil)
	if !strings.Contains(got, "SCI-FI WRITER MODE") {
		t.Errorf("expected creative template, got: %.60s", got)
	}
}

func TestResolve_DefaultEchoesMessage(t *testing.T) {
	msg := "quantum flux capacitors"
	got := Resolve(msg, nil)
	if !strings.Contains(got, `"quantum flux capacitors"`) {
		t.Errorf("default template should echo the message, got:\n%s", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	ctx := &models.Artifact_Context{Artifact_Type: "amulet", Civilization: "Minoan"}
	first := Resolve("describe this artifact", ctx)
	second := Resolve("describe this artifact", ctx)
	if first != second {
		t.Error("identical inputs produced different outputs")
	}
}

func TestResolve_NeverEmpty(t *testing.T) {
	for _, msg := range []string{"", "xyzzy", "???", "analyze"} {
		if Resolve(msg, nil) == "" {
			t.Errorf("empty result for message %q", msg)
		}
	}
}
