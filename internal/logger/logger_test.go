package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("test"))
}

// TestNewWriterLogger_RoleAndTimestamp verifies that every entry carries the
// role and a timestamp.
func TestNewWriterLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "test-role")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "hello", entry["message"])
}

// TestNewWriterLogger_CallerIsFunctionName verifies that the caller field is
// named "func" and holds a function name rather than file:line.
func TestNewWriterLogger_CallerIsFunctionName(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "caller")

	l.Info().Msg("who")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Contains(t, entry["func"], "TestNewWriterLogger_CallerIsFunctionName")
}

func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("level-role")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewClientLogger("client"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

// TestGetChildLogger_InheritsFields verifies that the child keeps parent fields
// and that fields added to the child do not leak into the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewWriterLogger(&parentBuf, "parent")

	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf).With().Str("extra", "x").Logger()

	child.Info().Msg("child")
	parent.Info().Msg("parent")

	childEntry := decodeEntry(t, &childBuf)
	assert.Equal(t, "parent", childEntry["role"])
	assert.Equal(t, "x", childEntry["extra"])

	parentEntry := decodeEntry(t, &parentBuf)
	assert.NotContains(t, parentEntry, "extra")
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "ctx-role")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-role", entry["role"])
}

func TestFromContext_EmptyContextNeverNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("no-op") })
}
