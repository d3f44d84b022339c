package server

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// ScheduleCleanup starts a cron-driven purge of stale files in the given
// directories. The original deployment created upload and processed
// directories and never cleaned them; this bounds their growth. The
// returned cron can be stopped by the caller on shutdown.
func ScheduleCleanup(dirs []string, maxAge time.Duration, spec string, logger *log.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		for _, dir := range dirs {
			purgeStaleFiles(dir, maxAge, logger)
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func purgeStaleFiles(dir string, maxAge time.Duration, logger *log.Logger) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Printf("Warning: cleanup could not read %s: %v", dir, err)
		return
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				logger.Printf("Warning: cleanup failed to remove %s: %v", entry.Name(), err)
				continue
			}
			removed++
		}
	}
	if removed > 0 {
		logger.Printf("Cleanup removed %d stale files from %s", removed, dir)
	}
}
