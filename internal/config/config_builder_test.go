package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func boolPtr(v bool) *bool { return &v }

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win and zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:1"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:2"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultDismissAfter, cfg.Notifications.DismissAfter)
}

// TestBuild_ExplicitFalseSurvivesMerge verifies that StreamOnStart=false from
// a later source overrides the default true.
func TestBuild_ExplicitFalseSurvivesMerge(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{StreamOnStart: boolPtr(false)}})

	cfg, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Workers.StreamOnStart)
	assert.False(t, *cfg.Workers.StreamOnStart)
}

func TestBuild_NegativeDurationRejected(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Notifications: Notifications{DismissAfter: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrNegativeDuration)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathSkipsFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter":       map[string]any{"http_address": "https://api.example.com", "request_timeout": "3s"},
		"notifications": map[string]any{"dismiss_after": "7s"},
	})

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()
	require.NoError(t, b.err)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.Notifications.DismissAfter)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	require.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

// ── client view ──────────────────────────────────────────────────────────────

func TestNewClientConfig_DefaultsAreValid(t *testing.T) {
	cfg := newClientConfig(defaultConfig())

	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultDismissAfter, cfg.Notifications.DismissAfter)
	assert.True(t, cfg.Workers.StreamOnStart)
}

func TestNewClientConfig_NilStreamOnStartMeansTrue(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{})
	assert.True(t, cfg.Workers.StreamOnStart)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig { return newClientConfig(defaultConfig()) }

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"valid", func(c *ClientConfig) {}, nil},
		{"empty address", func(c *ClientConfig) { c.Adapter.HTTPAddress = " " }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"zero dismiss", func(c *ClientConfig) { c.Notifications.DismissAfter = 0 }, ErrInvalidNotificationConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
