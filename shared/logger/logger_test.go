package logger_test

import (
	"bytes"
	"context"
	"errors"
	"shareit/config"
	"shareit/shared/constant"
	"shareit/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	for _, env := range []string{constant.ServerEnvDevelopment, constant.ServerEnvProduction} {
		cfg := &config.Config{}
		cfg.Server.Env = env

		logger.InitLogger(cfg)

		assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
		assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
	}

	logger.InitLogger(nil)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("insert booking failed"))

	assert.Contains(t, buf.String(), "insert booking failed")
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name     string
		logLevel string
		expected zerolog.Level
	}{
		{name: "debug", logLevel: "debug", expected: zerolog.DebugLevel},
		{name: "info", logLevel: "info", expected: zerolog.InfoLevel},
		{name: "warn", logLevel: "warn", expected: zerolog.WarnLevel},
		{name: "invalid falls back to trace", logLevel: "verbose", expected: zerolog.TraceLevel},
		{name: "empty falls back to trace", logLevel: "", expected: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestWithRequestID(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	ctx := logger.WithRequestID(context.Background(), "req-123")
	log.Ctx(ctx).Info().Msg("handled")

	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), "handled")
}
