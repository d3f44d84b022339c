package stores

import (
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStoreSimple(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGetArtifact(t *testing.T) {
	store := tempStore(t)

	artifact := &Artifact{
		ArtifactID:     "art-1",
		UserID:         "u1",
		Name:           "Minoan vase",
		ImageURL:       "https://example.com/vase.jpg",
		Origin:         "Crete",
		Era:            "Bronze Age",
		ProcessingType: "restoration",
	}
	if err := store.SaveArtifact(artifact); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.GetArtifact("art-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Minoan vase" || got.Era != "Bronze Age" {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestSaveArtifact_Upsert(t *testing.T) {
	store := tempStore(t)

	first := &Artifact{ArtifactID: "art-1", Name: "before", ImageURL: "a.jpg"}
	if err := store.SaveArtifact(first); err != nil {
		t.Fatal(err)
	}
	second := &Artifact{ArtifactID: "art-1", Name: "after", ImageURL: "a.jpg"}
	if err := store.SaveArtifact(second); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := store.GetArtifact("art-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "after" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
	all, err := store.ListArtifacts("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("upsert must not duplicate, got %d records", len(all))
	}
}

func TestSaveArtifact_RequiresID(t *testing.T) {
	store := tempStore(t)
	if err := store.SaveArtifact(&Artifact{Name: "no id"}); err == nil {
		t.Error("expected error for missing artifact ID")
	}
}

func TestListArtifacts_FilterByUser(t *testing.T) {
	store := tempStore(t)

	records := []*Artifact{
		{ArtifactID: "a1", UserID: "alice", ImageURL: "1.jpg"},
		{ArtifactID: "a2", UserID: "bob", ImageURL: "2.jpg"},
		{ArtifactID: "a3", UserID: "alice", ImageURL: "3.jpg"},
	}
	for _, r := range records {
		if err := store.SaveArtifact(r); err != nil {
			t.Fatal(err)
		}
	}

	mine, err := store.ListArtifacts("alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 artifacts for alice, got %d", len(mine))
	}
	all, err := store.ListArtifacts("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 artifacts total, got %d", len(all))
	}
}

func TestChatHistorySequencing(t *testing.T) {
	store := tempStore(t)

	turns := []struct{ role, content string }{
		{"user", "what is this?"},
		{"assistant", "a vase"},
		{"user", "how old?"},
		{"assistant", "Bronze Age"},
	}
	for _, turn := range turns {
		if err := store.SaveChatMessage("conv-1", "u1", "", turn.role, turn.content); err != nil {
			t.Fatalf("save message failed: %v", err)
		}
	}

	msgs, err := store.FetchChatHistory("conv-1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	for i, msg := range msgs {
		if msg.Sequence != i+1 {
			t.Errorf("message %d has sequence %d", i, msg.Sequence)
		}
		if msg.Content != turns[i].content {
			t.Errorf("message %d out of order: %q", i, msg.Content)
		}
	}
}

func TestChatHistoryLimit(t *testing.T) {
	store := tempStore(t)

	for i := 0; i < 6; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		if err := store.SaveChatMessage("conv-1", "", "", role, "turn"); err != nil {
			t.Fatal(err)
		}
	}

	msgs, err := store.FetchChatHistory("conv-1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected last 2 messages, got %d", len(msgs))
	}
	if msgs[0].Sequence != 5 || msgs[1].Sequence != 6 {
		t.Errorf("expected sequences 5 and 6, got %d and %d", msgs[0].Sequence, msgs[1].Sequence)
	}
}

func TestFetchChatHistory_EmptyConversation(t *testing.T) {
	store := tempStore(t)
	msgs, err := store.FetchChatHistory("missing", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected no messages, got %d", len(msgs))
	}
}

func TestPing(t *testing.T) {
	store := tempStore(t)
	if err := store.Ping(); err != nil {
		t.Errorf("ping failed: %v", err)
	}
}
