package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config describes how the numfield tools log.
type Config struct {
	Level     string `yaml:"level" json:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format    string `yaml:"format" json:"format" validate:"omitempty,oneof=text json"`
	AddSource bool   `yaml:"add_source" json:"add_source"`

	// SourcePath is trimmed from source file names when AddSource is set.
	SourcePath string `yaml:"source_path" json:"source_path"`

	// Output defaults to os.Stderr so command output on stdout stays clean.
	Output io.Writer `yaml:"-" json:"-"`
}

// DefaultConfig logs warnings and errors as text.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "text",
	}
}

func New(conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf),
	}

	out := conf.Output
	if out == nil {
		out = os.Stderr
	}

	return slog.New(getHandler(conf.Format, out, opts))
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(format) {
	case "json":
		return slog.NewJSONHandler(out, opts)

	default:
		return slog.NewTextHandler(out, opts)
	}
}

func replaceAttr(conf Config) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.SourceKey {
			return attr
		}

		source, ok := attr.Value.Any().(*slog.Source)
		if !ok || source == nil {
			return attr
		}

		file := source.File
		if conf.SourcePath != "" {
			if index := strings.Index(file, conf.SourcePath); index >= 0 {
				file = file[index+len(conf.SourcePath):]
			}
		}

		return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", file, source.Line))
	}
}
