package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/HealingGarden_Go/internal/config"
	"github.com/osse101/HealingGarden_Go/internal/logger"
)

// SetupLogger initializes the application logger. With a log directory set,
// output goes to stdout and to a new session file in that directory, and only
// the most recent session files are kept. The returned closer releases the
// session file and is never nil.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (io.Closer, error) {
	addSource := cfg.Environment == logger.EnvironmentDev
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, cfg.Version, cfg.Environment, addSource)

	var out io.Writer = stdout
	var closer io.Closer = nopCloser{}

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		out = io.MultiWriter(stdout, f)
		closer = f
	}

	logger.InitLoggerWithWriter(logCfg, out)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", cfg.LogFormat)
	slog.Info(LogMsgStartingGarden,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"backend", cfg.SaveBackend)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"timezone", cfg.Timezone,
		"catalog", cfg.CatalogPath,
		"profile_cache_size", cfg.ProfileCacheSize)

	return closer, nil
}

// cleanupLogs removes the oldest session files so that at most keep remain.
// Session names embed their start time, so name order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i], "error", err)
		}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
