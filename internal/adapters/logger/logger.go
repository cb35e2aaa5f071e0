package logger

import (
	"fmt"

	"go.uber.org/zap"
)

type option func(*zap.Config)

// OutputPath appends a log file to stdout output when path is not empty.
func OutputPath(path string) option {
	return func(cfg *zap.Config) {
		if path != "" {
			cfg.OutputPaths = append(cfg.OutputPaths, path)
		}
	}
}

func New(level string, options ...option) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	for _, opt := range options {
		opt(&cfg)
	}

	lgr, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed build logger: %w", err)
	}

	return lgr, nil
}
