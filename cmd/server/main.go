package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	heriscience "github.com/heriscience/backend"
	"github.com/heriscience/backend/chatbot"
	"github.com/heriscience/backend/models/gemini"
	"github.com/heriscience/backend/models/openai"
	"github.com/heriscience/backend/server"
	"github.com/heriscience/backend/stores"
	"github.com/heriscience/backend/wikipedia"
)

func main() {
	// Load .env file if it exists (not present in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := heriscience.NewConfig()

	for _, dir := range []string{cfg.UploadDir, cfg.ProcessedDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("failed to create %s directory: %v", dir, err)
		}
	}

	transport := selectTransport()
	chat := chatbot.NewService(transport).WithTimeout(cfg.GenerationTimeout)
	if chat.Ready() {
		log.Printf("Generation provider: %s", chat.ProviderName())
	} else {
		log.Println("No generation credentials found, using fallback responses")
	}

	var store stores.ArtifactStore
	if cfg.StoreType != "none" {
		var err error
		store, err = stores.NewStore(stores.NewStoreConfig(cfg.StoreType, cfg.StoreConnection))
		if err != nil {
			// The service runs without a gallery rather than failing hard.
			log.Printf("Warning: store unavailable (%v), gallery and history disabled", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	cleanupLogger := log.New(os.Stdout, "[cleanup] ", log.LstdFlags)
	cleaner, err := server.ScheduleCleanup(
		[]string{cfg.UploadDir, cfg.ProcessedDir},
		cfg.CleanupMaxAge, cfg.CleanupSpec, cleanupLogger)
	if err != nil {
		log.Fatalf("failed to schedule cleanup: %v", err)
	}
	defer cleaner.Stop()

	srv := server.New(cfg, chat, &wikipedia.Client{}, store)

	log.Printf("Heri-Science backend listening on :%s", cfg.Port)
	if err := srv.Routes().Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// selectTransport picks the generation transport from the environment.
// AI_PROVIDER forces one; otherwise whichever credential is present wins,
// Gemini first. No credential means fallback-only operation.
func selectTransport() chatbot.Transport {
	switch os.Getenv("AI_PROVIDER") {
	case "gemini":
		return &gemini.Gemini_Model{}
	case "openai":
		return &openai.OpenAI_Model{}
	}
	if os.Getenv(gemini.DefaultAPIKeyEnv) != "" {
		return &gemini.Gemini_Model{}
	}
	if os.Getenv(openai.DefaultAPIKeyEnv) != "" {
		return &openai.OpenAI_Model{}
	}
	return nil
}
