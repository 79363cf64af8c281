package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streamkit/kinesis-commands-go/kinesis/oteladapters"
)

func Test_SlogBridgeLogger_WithHandler_WritesAllLevels(t *testing.T) {
	var buffer bytes.Buffer

	handler := slog.NewTextHandler(&buffer, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	ctx := context.Background()
	logger.DebugContext(ctx, "debug message", "action", "PutRecord")
	logger.InfoContext(ctx, "info message")
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message", "error", "boom")

	output := buffer.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "action=PutRecord")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error=boom")
}

func Test_NewSlogBridgeLogger_Construction(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("kinesis-client")

	assert.NotNil(t, logger, "NewSlogBridgeLogger should return non-nil logger")
}
