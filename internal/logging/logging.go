// Package logging builds the per-run logger. The logger is constructed once
// per run and passed down the pipeline; nothing reads a global.
package logging

import (
	"os"

	"github.com/dyike/BriefingGo/config"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
)

// NewRunLogger returns a logger writing to the console and to the run log
// file. The file is overwritten at the start of every run; only the latest
// run is kept.
func NewRunLogger(cfg *config.Config) arbor.ILogger {
	logger := arbor.NewLogger().WithConsoleWriter(models.WriterConfiguration{
		Type:             models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		TextOutput:       true,
		DisableTimestamp: false,
	})

	if cfg.LogFilePath != "" {
		// Fresh file per run.
		_ = os.Remove(cfg.LogFilePath)

		logger = logger.WithFileWriter(models.WriterConfiguration{
			Type:             models.LogWriterTypeFile,
			FileName:         cfg.LogFilePath,
			TimeFormat:       "15:04:05",
			MaxSize:          10 * 1024 * 1024, // 10 MB
			MaxBackups:       1,
			TextOutput:       true,
			DisableTimestamp: false,
		})
	}

	level := "info"
	if cfg.Debug {
		level = "debug"
	}
	return logger.WithLevelFromString(level)
}
