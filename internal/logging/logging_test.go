package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/logging"
)

func TestSetup(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, logging.Setup(&buf, "debug", "json"))

		slog.Debug("numbered", "number", "INV/AC/2024/0001")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "numbered", line["msg"])
		assert.Equal(t, "INV/AC/2024/0001", line["number"])
	})

	t.Run("LevelFilters", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, logging.Setup(&buf, "warn", "text"))

		slog.Info("hidden")
		slog.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("BadLevel", func(t *testing.T) {
		assert.Error(t, logging.Setup(&bytes.Buffer{}, "loud", "text"))
	})

	t.Run("BadFormat", func(t *testing.T) {
		assert.Error(t, logging.Setup(&bytes.Buffer{}, "info", "xml"))
	})
}
