// Package app wires the application dependencies for one process
// invocation: configuration, the run-scoped logger with its per-run
// log file, and the diagnostics recorder. It is created once in the
// CLI layer and closed when the command finishes.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/seurahaku/harava/internal/config"
	"github.com/seurahaku/harava/internal/diag"
	"github.com/seurahaku/harava/internal/runctx"
)

// Application holds the dependencies shared by all CLI commands
type Application struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Run      *runctx.RunContext
	Recorder *diag.Recorder

	// LogPath is the per-run log file, "" when it could not be opened.
	// Error reports point the operator here.
	LogPath string

	logFile   *os.File
	startTime time.Time
}

// New builds an Application from a validated config. Logging is
// configured once here: level and console format from the config,
// plus a per-run file under the logs directory that always receives
// debug-level JSON lines. The global zerolog logger is replaced so
// every package logs through the same sinks.
func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	rc := runctx.New()

	level := zerolog.InfoLevel
	switch cfg.Logging.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	var console io.Writer
	if cfg.Logging.JSON {
		console = os.Stderr
	} else {
		console = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	consoleLeveled := leveledWriter{Writer: console, min: level}

	app := &Application{
		Config:    cfg,
		Run:       rc,
		Recorder:  diag.NewRecorder(cfg.Output.DebugDir),
		startTime: time.Now(),
	}

	// File sink failure degrades to console-only logging; a missing
	// logs directory must not keep a run from starting.
	sink := io.Writer(consoleLeveled)
	if file, path, err := openLogFile(cfg.Output.LogsDir, rc.StartedAt); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot open log file: %v\n", err)
	} else {
		app.logFile = file
		app.LogPath = path
		sink = zerolog.MultiLevelWriter(consoleLeveled, file)
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(sink).With().
		Timestamp().
		Str("run_id", rc.RunID).
		Logger()
	log.Logger = logger
	app.Logger = logger

	logger.Debug().
		Str("level", cfg.Logging.Level).
		Bool("json", cfg.Logging.JSON).
		Str("log_file", app.LogPath).
		Msg("Application initialized")

	return app, nil
}

// Close flushes and closes the per-run log file
func (a *Application) Close() error {
	a.Logger.Debug().Dur("uptime", a.Uptime()).Msg("Application shutdown")
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// Uptime returns how long this invocation has been running
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}

// openLogFile creates logs/harava_<timestamp>.log for this run
func openLogFile(dir string, startedAt time.Time) (*os.File, string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("harava_%s.log", startedAt.Format("20060102_150405")))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, "", err
	}
	return file, path, nil
}

// leveledWriter filters one sink by level, so the console honors the
// configured verbosity while the file sink keeps everything.
type leveledWriter struct {
	io.Writer
	min zerolog.Level
}

func (w leveledWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < w.min && level != zerolog.NoLevel {
		return len(p), nil
	}
	return w.Writer.Write(p)
}
