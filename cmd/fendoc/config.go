// SPDX-License-Identifier: MIT
// Copyright (c) 2026 FenLang Authors
// Source: github.com/fenlang/fendoc

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional fendoc.yaml configuration file.
type fileConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	LogLevel string `yaml:"log_level"`
}

// runSettings is the merged configuration one generate run executes with.
type runSettings struct {
	Input    string
	Output   string
	LogLevel slog.Level
}

// loadFileConfig reads and decodes one configuration file.
func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	var config fileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fileConfig{}, fmt.Errorf("decode config file %q: %w", path, err)
	}

	return config, nil
}

// resolveRunSettings merges CLI arguments over config file values.
func resolveRunSettings(config fileConfig, input, output, logLevel string) (runSettings, error) {
	input = firstNonEmpty(input, config.Input)
	output = firstNonEmpty(output, config.Output)

	if input == "" {
		return runSettings{}, errors.New("input root not set; pass it as an argument or set input in the config file")
	}

	if output == "" {
		return runSettings{}, errors.New("output root not set; pass it as an argument or set output in the config file")
	}

	return runSettings{
		Input:    input,
		Output:   output,
		LogLevel: normalizeLogLevel(firstNonEmpty(logLevel, config.LogLevel)),
	}, nil
}

// normalizeLogLevel maps a level name to its slog level, defaulting to info.
func normalizeLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// firstNonEmpty returns the first value with non-blank content.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}

	return ""
}
