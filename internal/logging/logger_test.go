package logging_test

import (
	"bytes"
	"encoding/json"
	"shelf/internal/logging"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"verbose", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("writes JSON lines to non-terminal writers", func(t *testing.T) {
		var buf bytes.Buffer
		log := logging.New(&buf, "info")

		log.Info().Str("title", "Dune").Msg("book added")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "Dune", entry["title"])
		assert.Equal(t, "book added", entry["message"])
		assert.Contains(t, entry, "time")
	})

	t.Run("drops entries below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logging.New(&buf, "warn")

		log.Info().Msg("hidden")
		log.Debug().Msg("hidden")

		assert.Empty(t, buf.String())
	})
}
