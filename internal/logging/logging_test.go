package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/axialmap/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestSilentByDefault(t *testing.T) {
	logging.Set(nil)
	assert.False(t, logging.L().Enabled(context.Background(), slog.LevelError))
}

func TestSetAndFor(t *testing.T) {
	var buf bytes.Buffer
	logging.Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer logging.Set(nil)

	logging.For("explore").Debug("vertex processed", "ref", 3)
	assert.Contains(t, buf.String(), "component=explore")
	assert.Contains(t, buf.String(), "ref=3")
}
