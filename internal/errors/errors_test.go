package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"invalid input matches sentinel", NewInvalidInputError("resume text is empty"), ErrInvalidInput, true},
		{"model unavailable matches sentinel", NewModelUnavailableError("boom", nil), ErrModelUnavailable, true},
		{"wrapped error matches", fmt.Errorf("analyze: %w", NewInvalidInputError("x")), ErrInvalidInput, true},
		{"different code does not match", NewInvalidInputError("x"), ErrModelUnavailable, false},
		{"plain error does not match", stderrors.New("x"), ErrInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stderrors.Is(tt.err, tt.target))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := stderrors.New("model file missing")
	err := NewModelUnavailableError("recognizer failed to load", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "MODEL_UNAVAILABLE: recognizer failed to load (caused by: model file missing)", err.Error())
}

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		_, err := ParseLevel(level)
		assert.NoError(t, err, level)
	}

	_, err := ParseLevel("verbose")
	assert.EqualError(t, err, "invalid log level: verbose")
}

func TestLoggerLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelDebug)

	logger.LogError(NewInvalidInputError("job description is empty").WithContext("request_id", "abc"), "analysis rejected")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "analysis rejected", entry["msg"])
	assert.Equal(t, "INVALID_INPUT", entry["error_code"])
	assert.Equal(t, "validation", entry["error_type"])
	assert.Equal(t, "abc", entry["request_id"])
}
